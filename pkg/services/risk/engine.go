package risk

import (
	"math"
	"sort"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// TierBands define the score ranges for risk tiers. Bands are inclusive and
// monotonic: 1-4 low, 5-9 medium, 10-15 high, 16-25 critical.
type TierBands struct {
	MediumMin   float64
	HighMin     float64
	CriticalMin float64
}

func DefaultTierBands() TierBands {
	return TierBands{MediumMin: 5, HighMin: 10, CriticalMin: 16}
}

// CalculateRiskScore computes the residual risk score: likelihood x impact
// discounted by control effectiveness, rounded to 2 decimals. Inputs are
// clamped to their valid ranges before multiplying.
func CalculateRiskScore(likelihood, impact int, controlEffectiveness float64) float64 {
	l := clampInt(likelihood, 1, 5)
	i := clampInt(impact, 1, 5)
	ce := clampFloat(controlEffectiveness, 0, 1)
	return math.Round(float64(l*i)*(1-ce)*100) / 100
}

// GetRiskTier classifies a score into a tier using the given bands.
func GetRiskTier(score float64, bands TierBands) domain.RiskTier {
	switch {
	case score >= bands.CriticalMin:
		return domain.RiskTierCritical
	case score >= bands.HighMin:
		return domain.RiskTierHigh
	case score >= bands.MediumMin:
		return domain.RiskTierMedium
	default:
		return domain.RiskTierLow
	}
}

// Classify clamps likelihood and impact to the 1-5 scale before deriving the
// tier from the inherent score. Callers should never feed raw ratings into
// GetRiskTier directly.
func Classify(likelihood, impact int, bands TierBands) domain.RiskTier {
	l := clampInt(likelihood, 1, 5)
	i := clampInt(impact, 1, 5)
	return GetRiskTier(float64(l*i), bands)
}

// BuildHeatMap produces the 5x5 likelihood/impact grid. Cells carry the raw
// likelihood x impact product: the map shows inherent risk, because control
// effectiveness is itself under review and must not hide a cell from the
// governance board. Residual scoring lives in CalculateRiskScore.
func BuildHeatMap(risks []domain.RiskClassification, bands TierBands) [][]domain.HeatMapCell {
	grid := make([][]domain.HeatMapCell, 5)
	for l := 1; l <= 5; l++ {
		row := make([]domain.HeatMapCell, 5)
		for i := 1; i <= 5; i++ {
			score := l * i
			row[i-1] = domain.HeatMapCell{
				Likelihood: l,
				Impact:     i,
				Score:      score,
				Rating:     GetRiskTier(float64(score), bands),
			}
		}
		grid[l-1] = row
	}

	for _, r := range risks {
		l := clampInt(r.Likelihood, 1, 5)
		i := clampInt(r.Impact, 1, 5)
		cell := &grid[l-1][i-1]
		cell.Risks = append(cell.Risks, r.Description)
	}

	return grid
}

// SummarizeRisks builds the portfolio summary: counts per tier and per
// category, the heat map, and the five largest risks by inherent score
// (ties keep input order).
func SummarizeRisks(risks []domain.RiskClassification, bands TierBands) domain.RiskSummary {
	summary := domain.RiskSummary{
		TotalRisks: len(risks),
		ByTier:     map[domain.RiskTier]int{},
		ByCategory: map[domain.RiskCategory]int{},
		HeatMap:    BuildHeatMap(risks, bands),
	}

	for _, c := range domain.RiskCategories {
		summary.ByCategory[c] = 0
	}

	classified := make([]domain.RiskClassification, len(risks))
	for idx, r := range risks {
		r.Likelihood = clampInt(r.Likelihood, 1, 5)
		r.Impact = clampInt(r.Impact, 1, 5)
		r.Tier = Classify(r.Likelihood, r.Impact, bands)
		classified[idx] = r

		summary.ByTier[r.Tier]++
		if r.Category.IsValid() {
			summary.ByCategory[r.Category]++
		}
	}

	sort.SliceStable(classified, func(a, b int) bool {
		return classified[a].Likelihood*classified[a].Impact > classified[b].Likelihood*classified[b].Impact
	})
	top := len(classified)
	if top > 5 {
		top = 5
	}
	summary.TopRisks = classified[:top]

	return summary
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
