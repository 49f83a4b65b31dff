package priority

import (
	"math"
	"sort"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// Weights is the dimension weighting scheme for composite use-case scores.
type Weights map[domain.PriorityDimension]float64

func DefaultWeights() Weights {
	return Weights{
		domain.PriorityStrategicValue:       0.40,
		domain.PriorityTechnicalFeasibility: 0.25,
		domain.PriorityImplementationRisk:   0.20,
		domain.PriorityTimeToValue:          0.15,
	}
}

// Bands hold the quadrant and wave cutoffs on the 0-10 composite scale.
type Bands struct {
	StrategicImperativeMin float64
	HighValueMin           float64
	FoundationBuilderMin   float64
	WaveOneMin             float64
	WaveTwoMin             float64
}

func DefaultBands() Bands {
	return Bands{
		StrategicImperativeMin: 8.0,
		HighValueMin:           6.5,
		FoundationBuilderMin:   5.0,
		WaveOneMin:             7.0,
		WaveTwoMin:             5.0,
	}
}

// CalculateCompositeScore computes the weighted 0-10 composite. Dimension
// inputs are clamped to [0, 10]; the result is normalized by the weights of
// the dimensions actually present, so partial sets still land on the 0-10
// scale. Rounded to 2 decimals.
func CalculateCompositeScore(scores []domain.UseCaseDimensionScore, weights Weights) float64 {
	var weighted, weightSum float64
	for _, ds := range scores {
		w, ok := weights[ds.Dimension]
		if !ok {
			continue
		}
		weighted += clamp(ds.Score) * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return math.Round(weighted/weightSum*100) / 100
}

func GetQuadrant(score float64, bands Bands) domain.Quadrant {
	switch {
	case score >= bands.StrategicImperativeMin:
		return domain.QuadrantStrategicImperative
	case score >= bands.HighValueMin:
		return domain.QuadrantHighValue
	case score >= bands.FoundationBuilderMin:
		return domain.QuadrantFoundationBuilder
	default:
		return domain.QuadrantWatchList
	}
}

func GetImplementationWave(score float64, bands Bands) int {
	switch {
	case score >= bands.WaveOneMin:
		return 1
	case score >= bands.WaveTwoMin:
		return 2
	default:
		return 3
	}
}

// PrioritizeUseCases scores every candidate and returns a new slice sorted
// descending by composite score. The input is never mutated and the sort is
// stable, so equal scores keep their input order.
func PrioritizeUseCases(cases []domain.UseCase, weights Weights, bands Bands) []domain.UseCasePriority {
	priorities := make([]domain.UseCasePriority, 0, len(cases))
	for _, uc := range cases {
		score := CalculateCompositeScore(uc.DimensionScores, weights)
		priorities = append(priorities, domain.UseCasePriority{
			UseCase:            uc,
			CompositeScore:     score,
			Quadrant:           GetQuadrant(score, bands),
			ImplementationWave: GetImplementationWave(score, bands),
		})
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].CompositeScore > priorities[j].CompositeScore
	})
	return priorities
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
