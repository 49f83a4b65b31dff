package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/api"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/maturity"
)

type MaturityCmd struct {
	inputPath string
	format    string
}

func NewMaturityCmd() *cobra.Command {
	mc := &MaturityCmd{}
	cmd := &cobra.Command{
		Use:   "maturity",
		Short: "Score governance maturity across the six dimensions",
		RunE:  mc.run,
	}

	addCommonFlags(cmd, &mc.inputPath, &mc.format)

	return cmd
}

func (mc *MaturityCmd) run(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(mc.format)
	if err != nil {
		return err
	}

	var req api.MaturityRequest
	if err := readInput(mc.inputPath, &req); err != nil {
		return err
	}

	var scores []domain.MaturityDimensionScore
	for _, dim := range req.Dimensions {
		scores = append(scores, maturity.CalculateDimensionScore(
			domain.MaturityDimension(dim.Dimension),
			domain.MaturitySubscores{
				Documentation:  dim.Documentation,
				Implementation: dim.Implementation,
				Enforcement:    dim.Enforcement,
				Measurement:    dim.Measurement,
				Improvement:    dim.Improvement,
			},
		))
	}

	assessment := maturity.CalculateOverallMaturity(scores)
	assessment.Industry = req.Industry
	assessment.Recommendations = maturity.GetMaturityRecommendations(scores, maturity.DefaultRecommendations())

	return reporter.Handle(maturityReport(assessment))
}

func maturityReport(assessment domain.MaturityAssessment) *domain.Report {
	section := domain.ReportSection{
		Title: "Dimension Scores",
		Summary: map[string]string{
			"Overall Score": fmt.Sprintf("%d / 100", assessment.OverallScore),
			"Overall Level": strconv.Itoa(assessment.OverallLevel),
		},
	}
	if assessment.Industry != "" {
		section.Summary["Industry"] = assessment.Industry
	}
	for _, ds := range assessment.DimensionScores {
		section.Details = append(section.Details, domain.ReportRow{
			Name:        string(ds.Dimension),
			Value:       strconv.Itoa(ds.Score),
			Unit:        fmt.Sprintf("L%d", ds.Level),
			Description: fmt.Sprintf("key gap: %s", ds.KeyGap),
		})
	}

	report := &domain.Report{
		Title:       "Governance Maturity Assessment",
		GeneratedAt: time.Now().UTC(),
		Sections:    []domain.ReportSection{section},
	}

	if len(assessment.Recommendations) > 0 {
		report.Sections = append(report.Sections, domain.ReportSection{
			Title: "Recommendations",
			Summary: map[string]string{
				"Actions": strings.Join(assessment.Recommendations, "; "),
			},
		})
	}

	return report
}
