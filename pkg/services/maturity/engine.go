package maturity

import (
	"math"
	"sort"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

const recommendationLevelThreshold = 3

// Recommendations holds the canned improvement guidance per dimension,
// emitted for any dimension below level 3. Three entries per dimension.
type Recommendations map[domain.MaturityDimension][3]string

func DefaultRecommendations() Recommendations {
	return Recommendations{
		domain.MaturityPolicy: {
			"Publish an AI acceptable-use policy and circulate it to every pilot team",
			"Assign a named owner for policy exceptions and reviews",
			"Schedule quarterly policy reviews tied to tooling changes",
		},
		domain.MaturityRisk: {
			"Stand up a risk register covering all seven risk categories",
			"Define likelihood/impact scoring criteria and train reviewers on them",
			"Review open risks in every governance checkpoint",
		},
		domain.MaturityData: {
			"Classify the repositories and datasets exposed to AI tooling",
			"Document data-handling rules for prompts and completions",
			"Gate new data sources behind a classification review",
		},
		domain.MaturitySecurity: {
			"Enable secret scanning and dependency checks on AI-assisted changes",
			"Require human review on generated code touching authentication or crypto",
			"Track control pass rates and alert when they fall below target",
		},
		domain.MaturityCompliance: {
			"Map the pilot against applicable regulatory obligations",
			"Collect audit evidence continuously rather than at gate time",
			"Run a mock audit before the production go/no-go decision",
		},
		domain.MaturityEnablement: {
			"Deliver role-based training before expanding seats",
			"Measure tool adoption and share usage patterns across teams",
			"Create a feedback channel from developers to the governance board",
		},
	}
}

// CalculateMaturityLevel bands a 0-100 score into levels 1-5:
// 0-19 -> 1, 20-39 -> 2, 40-59 -> 3, 60-79 -> 4, 80-100 -> 5.
func CalculateMaturityLevel(score int) int {
	switch {
	case score >= 80:
		return 5
	case score >= 60:
		return 4
	case score >= 40:
		return 3
	case score >= 20:
		return 2
	default:
		return 1
	}
}

// CalculateDimensionScore sums the five subscores (each clamped to 0-20)
// into a 0-100 dimension score and its level.
func CalculateDimensionScore(dimension domain.MaturityDimension, sub domain.MaturitySubscores) domain.MaturityDimensionScore {
	total := clamp(sub.Documentation) +
		clamp(sub.Implementation) +
		clamp(sub.Enforcement) +
		clamp(sub.Measurement) +
		clamp(sub.Improvement)

	return domain.MaturityDimensionScore{
		Dimension: dimension,
		Score:     total,
		Level:     CalculateMaturityLevel(total),
		Subscores: sub,
		KeyGap:    keyGap(sub),
	}
}

// CalculateOverallMaturity computes the equal-weighted mean of dimension
// scores. An empty input yields score 0, level 1.
func CalculateOverallMaturity(scores []domain.MaturityDimensionScore) domain.MaturityAssessment {
	assessment := domain.MaturityAssessment{
		DimensionScores: scores,
		OverallLevel:    1,
	}
	if len(scores) == 0 {
		return assessment
	}

	sum := 0
	for _, ds := range scores {
		sum += ds.Score
	}
	overall := int(math.Round(float64(sum) / float64(len(scores))))
	assessment.OverallScore = overall
	assessment.OverallLevel = CalculateMaturityLevel(overall)
	return assessment
}

// GetMaturityRecommendations emits the canned guidance for every dimension
// below level 3, weakest dimension first, deduplicated.
func GetMaturityRecommendations(scores []domain.MaturityDimensionScore, recs Recommendations) []string {
	ordered := append([]domain.MaturityDimensionScore(nil), scores...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score < ordered[j].Score
	})

	var out []string
	seen := map[string]bool{}
	for _, ds := range ordered {
		if ds.Level >= recommendationLevelThreshold {
			continue
		}
		for _, rec := range recs[ds.Dimension] {
			if rec != "" && !seen[rec] {
				seen[rec] = true
				out = append(out, rec)
			}
		}
	}
	return out
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 20 {
		return 20
	}
	return v
}

// keyGap names the weakest practice facet of a dimension.
func keyGap(sub domain.MaturitySubscores) string {
	facets := []struct {
		name  string
		score int
	}{
		{"documentation", clamp(sub.Documentation)},
		{"implementation", clamp(sub.Implementation)},
		{"enforcement", clamp(sub.Enforcement)},
		{"measurement", clamp(sub.Measurement)},
		{"improvement", clamp(sub.Improvement)},
	}
	weakest := facets[0]
	for _, f := range facets[1:] {
		if f.score < weakest.score {
			weakest = f
		}
	}
	return weakest.name
}
