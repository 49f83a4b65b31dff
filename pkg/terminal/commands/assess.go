package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/api"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/config"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/feasibility"
)

type AssessCmd struct {
	bankPath    string
	profilePath string
	inputPath   string
	format      string
}

func NewAssessCmd() *cobra.Command {
	ac := &AssessCmd{}
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score assessment responses into a feasibility report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.bankPath, "bank", "configs/questionbank.yaml", "Path to the question bank")
	cmd.Flags().StringVar(&ac.profilePath, "profile", "", "Path to an optional scoring profile")
	addCommonFlags(cmd, &ac.inputPath, &ac.format)

	return cmd
}

func (ac *AssessCmd) run(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(ac.format)
	if err != nil {
		return err
	}

	questions, err := feasibility.LoadQuestionBank(ac.bankPath)
	if err != nil {
		return err
	}

	settings := feasibility.DefaultSettings()
	if ac.profilePath != "" {
		profile, err := config.LoadScoringProfile(ac.profilePath)
		if err != nil {
			return err
		}
		settings = profile.FeasibilitySettings()
	}

	var req api.SaveResponsesRequest
	if err := readInput(ac.inputPath, &req); err != nil {
		return err
	}

	latest := feasibility.LatestResponses(req.ToDomain(time.Now().UTC()))
	score := feasibility.CalculateFeasibility(latest, questions, settings)

	return reporter.Handle(feasibilityReport(score))
}

func feasibilityReport(score domain.FeasibilityScore) *domain.Report {
	section := domain.ReportSection{
		Title: "Domain Scores",
		Summary: map[string]string{
			"Overall Score": fmt.Sprintf("%d / 100", score.OverallScore),
			"Rating":        score.Rating,
		},
	}
	for _, ds := range score.DomainScores {
		verdict := "fail"
		if ds.Passed {
			verdict = "pass"
		}
		section.Details = append(section.Details, domain.ReportRow{
			Name:        string(ds.Domain),
			Value:       strconv.Itoa(ds.Percentage),
			Unit:        "%",
			Description: fmt.Sprintf("%s (threshold %d%%)", verdict, ds.PassThreshold),
		})
	}

	report := &domain.Report{
		Title:       "AI Adoption Feasibility Assessment",
		GeneratedAt: time.Now().UTC(),
		Sections:    []domain.ReportSection{section},
	}

	if len(score.Recommendations) > 0 {
		report.Sections = append(report.Sections, domain.ReportSection{
			Title: "Recommendations",
			Summary: map[string]string{
				"Actions": strings.Join(score.Recommendations, "; "),
			},
		})
	}

	return report
}
