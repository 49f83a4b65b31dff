package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/api"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/finance"
)

type RoiCmd struct {
	inputPath   string
	format      string
	sensitivity bool
	enhanced    bool
}

func NewRoiCmd() *cobra.Command {
	rc := &RoiCmd{}
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Run the ROI model for a pilot deployment",
		RunE:  rc.run,
	}

	cmd.Flags().BoolVar(&rc.sensitivity, "sensitivity", false, "Include the velocity-lift sensitivity sweep")
	cmd.Flags().BoolVar(&rc.enhanced, "enhanced", false, "Run the enhanced TCO/IRR/scenario model")
	addCommonFlags(cmd, &rc.inputPath, &rc.format)

	return cmd
}

func (rc *RoiCmd) run(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(rc.format)
	if err != nil {
		return err
	}

	settings := finance.DefaultSettings()

	if rc.enhanced {
		var req api.EnhancedRoiRequest
		if err := readInput(rc.inputPath, &req); err != nil {
			return err
		}
		results := finance.CalculateEnhancedRoi(req.ToDomain(), settings, finance.DefaultScenarios())
		return reporter.Handle(enhancedRoiReport(results))
	}

	var req api.RoiRequest
	if err := readInput(rc.inputPath, &req); err != nil {
		return err
	}
	inputs := req.ToDomain()
	report := roiReport(finance.CalculateRoi(inputs, settings))

	if rc.sensitivity {
		report.Sections = append(report.Sections, sensitivitySection(finance.CalculateSensitivity(inputs, settings)))
	}

	return reporter.Handle(report)
}

func roiReport(results domain.RoiResults) *domain.Report {
	section := domain.ReportSection{
		Title: "Annual Model",
		Summary: map[string]string{
			"ROI":     finance.FormatPercent(results.RoiPercentage),
			"Payback": fmt.Sprintf("%d months", results.PaybackMonths),
		},
		Details: []domain.ReportRow{
			{Name: "Monthly Savings", Value: finance.FormatCurrency(float64(results.MonthlySavings)), Unit: "USD"},
			{Name: "Annual Savings", Value: finance.FormatCurrency(float64(results.AnnualSavings)), Unit: "USD"},
			{Name: "Annual License Cost", Value: finance.FormatCurrency(float64(results.AnnualLicenseCost)), Unit: "USD"},
			{Name: "Total Annual Cost", Value: finance.FormatCurrency(float64(results.TotalAnnualCost)), Unit: "USD"},
			{Name: "Net Annual Benefit", Value: finance.FormatCurrency(float64(results.NetAnnualBenefit)), Unit: "USD"},
			{Name: "3-Year NPV", Value: finance.FormatCurrency(float64(results.ThreeYearNPV)), Unit: "USD"},
			{Name: "Effective Capacity", Value: fmt.Sprintf("%.1f", results.EffectiveCapacity), Unit: "FTE"},
		},
	}

	return &domain.Report{
		Title:       "ROI Analysis",
		GeneratedAt: time.Now().UTC(),
		Sections:    []domain.ReportSection{section},
	}
}

func sensitivitySection(rows []domain.SensitivityRow) domain.ReportSection {
	section := domain.ReportSection{Title: "Sensitivity Sweep"}
	for _, row := range rows {
		section.Details = append(section.Details, domain.ReportRow{
			Name:        fmt.Sprintf("+%.0f%% velocity", row.VelocityLift),
			Value:       finance.FormatCurrency(float64(row.AnnualSavings)),
			Unit:        "USD",
			Description: fmt.Sprintf("ROI %s, payback %d months", finance.FormatPercent(row.RoiPercentage), row.PaybackMonths),
		})
	}
	return section
}

func enhancedRoiReport(results domain.EnhancedRoiResults) *domain.Report {
	report := roiReport(results.RoiResults)
	report.Title = "Enhanced ROI Analysis"

	report.Sections = append(report.Sections,
		domain.ReportSection{
			Title: "Total Cost of Ownership",
			Details: []domain.ReportRow{
				{Name: "Initial Investment", Value: finance.FormatCurrency(float64(results.TCO.Initial)), Unit: "USD"},
				{Name: "Annual Run Cost", Value: finance.FormatCurrency(float64(results.TCO.Annual)), Unit: "USD"},
				{Name: "3-Year TCO", Value: finance.FormatCurrency(float64(results.TCO.ThreeYear)), Unit: "USD"},
			},
		},
		domain.ReportSection{
			Title: "Benefit Breakdown",
			Details: []domain.ReportRow{
				{Name: "Productivity", Value: finance.FormatCurrency(float64(results.Benefits.Productivity)), Unit: "USD"},
				{Name: "Revenue", Value: finance.FormatCurrency(float64(results.Benefits.Revenue)), Unit: "USD"},
				{Name: "Error Savings", Value: finance.FormatCurrency(float64(results.Benefits.ErrorSavings)), Unit: "USD"},
				{Name: "Total Annual Benefit", Value: finance.FormatCurrency(float64(results.Benefits.TotalAnnualBenefit)), Unit: "USD"},
			},
		},
		scenarioSection(results),
	)

	return report
}

func scenarioSection(results domain.EnhancedRoiResults) domain.ReportSection {
	section := domain.ReportSection{
		Title: "Scenario Analysis",
		Summary: map[string]string{
			"IRR":          fmt.Sprintf("%.1f%%", results.IRR*100),
			"Expected NPV": finance.FormatCurrency(float64(results.Scenarios.ExpectedNPV)),
		},
	}
	for _, s := range results.Scenarios.Scenarios {
		section.Details = append(section.Details, domain.ReportRow{
			Name:        s.Name,
			Value:       finance.FormatCurrency(float64(s.NPV)),
			Unit:        "USD",
			Description: "probability " + strconv.FormatFloat(s.Probability, 'f', 2, 64),
		})
	}
	return section
}
