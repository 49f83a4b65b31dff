package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/api"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/decision"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/finance"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/governance"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/risk"
)

// briefInput is the self-contained offline form of the brief endpoint: the
// full evidence bundle in one file instead of project state in the store.
type briefInput struct {
	ROI        *api.RoiRequest      `json:"roi"`
	Risks      []api.RiskItem       `json:"risks"`
	Governance api.GovernanceBundle `json:"governance"`
}

type BriefCmd struct {
	projectID string
	inputPath string
	format    string
}

func NewBriefCmd() *cobra.Command {
	bc := &BriefCmd{}
	cmd := &cobra.Command{
		Use:   "brief",
		Short: "Generate an executive decision brief from an evidence bundle",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.projectID, "project", "", "Project identifier")
	_ = cmd.MarkFlagRequired("project")
	addCommonFlags(cmd, &bc.inputPath, &bc.format)

	return cmd
}

func (bc *BriefCmd) run(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(bc.format)
	if err != nil {
		return err
	}

	var input briefInput
	if err := readInput(bc.inputPath, &input); err != nil {
		return err
	}

	bands := risk.DefaultTierBands()
	risks := api.SaveRisksRequest{Risks: input.Risks}.ToDomain()
	for i := range risks {
		risks[i].Tier = risk.Classify(risks[i].Likelihood, risks[i].Impact, bands)
	}

	gates := input.Governance.GatesToDomain()
	summary := risk.SummarizeRisks(risks, bands)
	readiness := governance.EvaluateReadiness(
		gates,
		input.Governance.ControlsToDomain(),
		risks,
		input.Governance.ExceptionsToDomain(),
		governance.DefaultSettings(),
	)

	inputs := decision.BriefInputs{
		ProjectID:   bc.projectID,
		RiskSummary: &summary,
		Risks:       risks,
		Readiness:   &readiness,
		Gates:       gates,
	}
	if input.ROI != nil {
		results := finance.CalculateRoi(input.ROI.ToDomain(), finance.DefaultSettings())
		inputs.ROI = &results
	}

	generator := decision.NewBriefGenerator(decision.DefaultBriefThresholds(), decision.DefaultNextSteps())
	return reporter.Handle(briefReport(generator.Generate(inputs)))
}

func briefReport(brief domain.ExecutiveDecisionBrief) *domain.Report {
	verdict := domain.ReportSection{
		Title: "Recommendation",
		Summary: map[string]string{
			"Verdict":    string(brief.Recommendation),
			"Value":      brief.ValueSummary,
			"Risk":       brief.RiskPosture,
			"Governance": brief.GovernanceStatus,
			"Trace":      brief.TraceID,
		},
	}
	for _, r := range brief.Rationale {
		verdict.Details = append(verdict.Details, domain.ReportRow{Name: "rationale", Description: r})
	}
	for _, g := range brief.EvidenceGaps {
		verdict.Details = append(verdict.Details, domain.ReportRow{Name: "evidence gap", Description: g})
	}
	for _, f := range brief.RiskFactors {
		verdict.Details = append(verdict.Details, domain.ReportRow{Name: "risk factor", Description: f})
	}

	return &domain.Report{
		Title:       "Executive Decision Brief: " + brief.ProjectID,
		GeneratedAt: brief.GeneratedAt,
		Sections: []domain.ReportSection{
			verdict,
			{
				Title: "Next Steps",
				Summary: map[string]string{
					"Actions": strings.Join(brief.NextSteps, "; "),
				},
			},
		},
	}
}
