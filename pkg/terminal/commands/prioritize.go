package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/api"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/config"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/priority"
)

type PrioritizeCmd struct {
	profilePath string
	inputPath   string
	format      string
}

func NewPrioritizeCmd() *cobra.Command {
	pc := &PrioritizeCmd{}
	cmd := &cobra.Command{
		Use:   "prioritize",
		Short: "Rank candidate use cases by composite score",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilePath, "profile", "", "Path to an optional scoring profile")
	addCommonFlags(cmd, &pc.inputPath, &pc.format)

	return cmd
}

func (pc *PrioritizeCmd) run(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(pc.format)
	if err != nil {
		return err
	}

	weights := priority.DefaultWeights()
	if pc.profilePath != "" {
		profile, err := config.LoadScoringProfile(pc.profilePath)
		if err != nil {
			return err
		}
		weights = profile.PriorityWeightsOrDefault()
	}

	var req api.PrioritizeRequest
	if err := readInput(pc.inputPath, &req); err != nil {
		return err
	}

	ranked := priority.PrioritizeUseCases(req.ToDomain(), weights, priority.DefaultBands())
	return reporter.Handle(priorityReport(ranked))
}

func priorityReport(ranked []domain.UseCasePriority) *domain.Report {
	section := domain.ReportSection{Title: "Ranked Use Cases"}
	for i, p := range ranked {
		section.Details = append(section.Details, domain.ReportRow{
			Name:        fmt.Sprintf("%d. %s", i+1, p.UseCase.Name),
			Value:       fmt.Sprintf("%.2f", p.CompositeScore),
			Unit:        fmt.Sprintf("wave %d", p.ImplementationWave),
			Description: string(p.Quadrant),
		})
	}

	return &domain.Report{
		Title:       "Use Case Prioritization",
		GeneratedAt: time.Now().UTC(),
		Sections:    []domain.ReportSection{section},
	}
}
