package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/api"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/risk"
)

type RisksCmd struct {
	inputPath string
	format    string
}

func NewRisksCmd() *cobra.Command {
	rc := &RisksCmd{}
	cmd := &cobra.Command{
		Use:   "risks",
		Short: "Summarize a risk register into tiers and a heat map",
		RunE:  rc.run,
	}

	addCommonFlags(cmd, &rc.inputPath, &rc.format)

	return cmd
}

func (rc *RisksCmd) run(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(rc.format)
	if err != nil {
		return err
	}

	var req api.SaveRisksRequest
	if err := readInput(rc.inputPath, &req); err != nil {
		return err
	}

	summary := risk.SummarizeRisks(req.ToDomain(), risk.DefaultTierBands())
	return reporter.Handle(riskReport(summary))
}

func riskReport(summary domain.RiskSummary) *domain.Report {
	tiers := domain.ReportSection{
		Title: "Risk Portfolio",
		Summary: map[string]string{
			"Total Risks": strconv.Itoa(summary.TotalRisks),
			"Critical":    strconv.Itoa(summary.ByTier[domain.RiskTierCritical]),
			"High":        strconv.Itoa(summary.ByTier[domain.RiskTierHigh]),
			"Medium":      strconv.Itoa(summary.ByTier[domain.RiskTierMedium]),
			"Low":         strconv.Itoa(summary.ByTier[domain.RiskTierLow]),
		},
	}
	for _, category := range domain.RiskCategories {
		tiers.Details = append(tiers.Details, domain.ReportRow{
			Name:  string(category),
			Value: strconv.Itoa(summary.ByCategory[category]),
			Unit:  "risks",
		})
	}

	top := domain.ReportSection{Title: "Top Risks"}
	for _, r := range summary.TopRisks {
		top.Details = append(top.Details, domain.ReportRow{
			Name:        r.ID,
			Value:       fmt.Sprintf("%d x %d", r.Likelihood, r.Impact),
			Unit:        string(r.Tier),
			Description: r.Description,
		})
	}

	return &domain.Report{
		Title:       "Risk Classification Summary",
		GeneratedAt: time.Now().UTC(),
		Sections:    []domain.ReportSection{tiers, top},
	}
}
