package risk

import (
	"testing"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateRiskScore_ResidualDiscount(t *testing.T) {
	// 4x4 raw = 16; with 50% effective controls the residual is 8
	assert.Equal(t, 16.0, CalculateRiskScore(4, 4, 0))
	assert.Equal(t, 8.0, CalculateRiskScore(4, 4, 0.5))
	assert.Equal(t, 12.5, CalculateRiskScore(5, 5, 0.5))
}

func TestCalculateRiskScore_ClampsInputs(t *testing.T) {
	assert.Equal(t, 25.0, CalculateRiskScore(9, 7, -1))
	assert.Equal(t, 1.0, CalculateRiskScore(0, -3, 0))
	assert.Equal(t, 0.0, CalculateRiskScore(5, 5, 2))
}

func TestGetRiskTier_Bands(t *testing.T) {
	bands := DefaultTierBands()
	assert.Equal(t, domain.RiskTierLow, GetRiskTier(1, bands))
	assert.Equal(t, domain.RiskTierLow, GetRiskTier(4, bands))
	assert.Equal(t, domain.RiskTierMedium, GetRiskTier(5, bands))
	assert.Equal(t, domain.RiskTierMedium, GetRiskTier(9, bands))
	assert.Equal(t, domain.RiskTierHigh, GetRiskTier(10, bands))
	assert.Equal(t, domain.RiskTierHigh, GetRiskTier(15, bands))
	assert.Equal(t, domain.RiskTierCritical, GetRiskTier(16, bands))
	assert.Equal(t, domain.RiskTierCritical, GetRiskTier(25, bands))
}

func TestGetRiskTier_Monotonic(t *testing.T) {
	bands := DefaultTierBands()
	order := map[domain.RiskTier]int{
		domain.RiskTierLow: 0, domain.RiskTierMedium: 1, domain.RiskTierHigh: 2, domain.RiskTierCritical: 3,
	}
	prev := -1
	for score := 1; score <= 25; score++ {
		rank := order[GetRiskTier(float64(score), bands)]
		assert.GreaterOrEqual(t, rank, prev, "tier regressed at score %d", score)
		prev = rank
	}
}

func TestClassify_ClampsRatings(t *testing.T) {
	bands := DefaultTierBands()

	// 9x2 would read as critical unclamped; on the 1-5 scale it is 5x2 = 10
	assert.Equal(t, domain.RiskTierHigh, Classify(9, 2, bands))
	// 0x5 would read as low unclamped; clamped it is 1x5 = 5
	assert.Equal(t, domain.RiskTierMedium, Classify(0, 5, bands))
	assert.Equal(t, domain.RiskTierCritical, Classify(6, 6, bands))

	// in-range ratings pass through untouched
	assert.Equal(t, domain.RiskTierMedium, Classify(3, 3, bands))
	assert.Equal(t, domain.RiskTierLow, Classify(2, 2, bands))
}

func TestBuildHeatMap_InherentScores(t *testing.T) {
	risks := []domain.RiskClassification{
		{Description: "prompt data exfiltration", Likelihood: 4, Impact: 4},
		{Description: "license cost overrun", Likelihood: 9, Impact: -2}, // clamps to (5, 1)
	}

	grid := BuildHeatMap(risks, DefaultTierBands())
	assert.Len(t, grid, 5)
	for _, row := range grid {
		assert.Len(t, row, 5)
	}

	// cell scores are raw likelihood x impact, not control-adjusted
	cell := grid[3][3]
	assert.Equal(t, 16, cell.Score)
	assert.Equal(t, domain.RiskTierCritical, cell.Rating)
	assert.Equal(t, []string{"prompt data exfiltration"}, cell.Risks)

	clamped := grid[4][0]
	assert.Equal(t, 5, clamped.Score)
	assert.Equal(t, []string{"license cost overrun"}, clamped.Risks)

	assert.Empty(t, grid[0][0].Risks)
}

func TestSummarizeRisks_TiersCategoriesAndTopFive(t *testing.T) {
	risks := []domain.RiskClassification{
		{ID: "r1", Description: "a", Category: domain.RiskCategorySecurity, Likelihood: 4, Impact: 4},
		{ID: "r2", Description: "b", Category: domain.RiskCategorySecurity, Likelihood: 1, Impact: 2},
		{ID: "r3", Description: "c", Category: domain.RiskCategoryCompliance, Likelihood: 3, Impact: 4},
		{ID: "r4", Description: "d", Category: domain.RiskCategoryFinancial, Likelihood: 2, Impact: 3},
		{ID: "r5", Description: "e", Category: domain.RiskCategoryOperational, Likelihood: 3, Impact: 3},
		{ID: "r6", Description: "f", Category: domain.RiskCategoryTechnical, Likelihood: 2, Impact: 2},
	}

	summary := SummarizeRisks(risks, DefaultTierBands())

	assert.Equal(t, 6, summary.TotalRisks)
	assert.Equal(t, 1, summary.ByTier[domain.RiskTierCritical]) // 16
	assert.Equal(t, 1, summary.ByTier[domain.RiskTierHigh])     // 12
	assert.Equal(t, 2, summary.ByTier[domain.RiskTierMedium])   // 9, 6
	assert.Equal(t, 2, summary.ByTier[domain.RiskTierLow])      // 4, 2
	assert.Equal(t, 2, summary.ByCategory[domain.RiskCategorySecurity])
	assert.Equal(t, 0, summary.ByCategory[domain.RiskCategoryLegal])

	assert.Len(t, summary.TopRisks, 5)
	assert.Equal(t, "r1", summary.TopRisks[0].ID)
	assert.Equal(t, "r3", summary.TopRisks[1].ID)
	assert.Equal(t, "r5", summary.TopRisks[2].ID)
	// r2 (score 2) drops out of the top five
	for _, r := range summary.TopRisks {
		assert.NotEqual(t, "r2", r.ID)
	}
}

func TestSummarizeRisks_TiesKeepInputOrder(t *testing.T) {
	risks := []domain.RiskClassification{
		{ID: "first", Likelihood: 2, Impact: 3},
		{ID: "second", Likelihood: 3, Impact: 2},
	}

	summary := SummarizeRisks(risks, DefaultTierBands())
	assert.Equal(t, "first", summary.TopRisks[0].ID)
	assert.Equal(t, "second", summary.TopRisks[1].ID)
}

func TestSummarizeRisks_Empty(t *testing.T) {
	summary := SummarizeRisks(nil, DefaultTierBands())
	assert.Equal(t, 0, summary.TotalRisks)
	assert.Empty(t, summary.TopRisks)
	assert.Len(t, summary.HeatMap, 5)
}
