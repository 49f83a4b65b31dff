package finance

import (
	"math"
	"testing"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func enhancedInputs() domain.EnhancedRoiInputs {
	return domain.EnhancedRoiInputs{
		RoiInputs:             pilotInputs(),
		InfrastructureCost:    20000,
		DataEngineeringCost:   15000,
		ChangeManagementCost:  10000,
		OngoingInfrastructure: 12000,
		SupportFTE:            0.5,
		SupportSalary:         120000,
		RevenueIncreasePct:    10,
		ErrorReductionPct:     20,
		AnnualErrorCost:       50000,
	}
}

func TestCalculateEnhancedRoi_TCOBreakdown(t *testing.T) {
	results := CalculateEnhancedRoi(enhancedInputs(), DefaultSettings(), DefaultScenarios())

	// 25k impl + 10k training + 20k infra + 15k data eng + 10k change mgmt
	assert.Equal(t, 80000, results.TCO.Initial)
	// 12k license + 12k ongoing infra + 0.5 FTE * 120k support
	assert.Equal(t, 84000, results.TCO.Annual)
	assert.Equal(t, 332000, results.TCO.ThreeYear)
}

func TestCalculateEnhancedRoi_BenefitBreakdown(t *testing.T) {
	results := CalculateEnhancedRoi(enhancedInputs(), DefaultSettings(), DefaultScenarios())

	assert.Equal(t, 1200000, results.Benefits.Productivity)
	assert.Equal(t, 120000, results.Benefits.Revenue)      // 10% of productivity
	assert.Equal(t, 10000, results.Benefits.ErrorSavings)  // 20% of 50k error cost
	assert.Equal(t, 1080000, results.Benefits.CostReduction)
	assert.Equal(t, 1330000, results.Benefits.TotalAnnualBenefit)
}

func TestCalculateEnhancedRoi_FiveYearCashflow(t *testing.T) {
	results := CalculateEnhancedRoi(enhancedInputs(), DefaultSettings(), DefaultScenarios())

	assert.Len(t, results.FiveYearCash, 5)
	// year 0: -80k initial + half of the 1,246k net (adoption ramp)
	assert.InDelta(t, 543000, results.FiveYearCash[0], 1e-6)
	for y := 1; y <= 4; y++ {
		assert.InDelta(t, 1246000, results.FiveYearCash[y], 1e-6)
	}
}

func TestCalculateEnhancedRoi_BaseModelUnchanged(t *testing.T) {
	enhanced := CalculateEnhancedRoi(enhancedInputs(), DefaultSettings(), DefaultScenarios())
	base := CalculateRoi(pilotInputs(), DefaultSettings())
	assert.Equal(t, base, enhanced.RoiResults)
}

func TestDefaultScenarios_ProbabilitiesSumToOne(t *testing.T) {
	sum := 0.0
	names := []string{}
	for _, s := range DefaultScenarios() {
		sum += s.Probability
		names = append(names, s.Name)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, []string{"optimistic", "base", "conservative", "pessimistic"}, names)
}

func TestCalculateEnhancedRoi_ExpectedNPVIsProbabilityWeighted(t *testing.T) {
	results := CalculateEnhancedRoi(enhancedInputs(), DefaultSettings(), DefaultScenarios())

	assert.Len(t, results.Scenarios.Scenarios, 4)
	weighted := 0.0
	for _, s := range results.Scenarios.Scenarios {
		weighted += s.Probability * float64(s.NPV)
	}
	// per-scenario NPVs are rounded, so allow rounding slack
	assert.InDelta(t, float64(results.Scenarios.ExpectedNPV), weighted, 2)

	// the optimistic scenario must beat the pessimistic one
	assert.Greater(t, results.Scenarios.Scenarios[0].NPV, results.Scenarios.Scenarios[3].NPV)
}

func TestCalculateIRR_FindsRoot(t *testing.T) {
	cash := []float64{-100000, 50000, 50000, 50000}
	irr := CalculateIRR(cash, DefaultIRRSettings())

	assert.InDelta(t, 0, npvAt(cash, irr), 1e-3)
	assert.Greater(t, irr, 0.20)
	assert.Less(t, irr, 0.30)
}

func TestCalculateIRR_EmptySeries(t *testing.T) {
	assert.Equal(t, 0.0, CalculateIRR(nil, DefaultIRRSettings()))
}

func TestCalculateIRR_AllPositiveNeverThrows(t *testing.T) {
	// no sign change: there is no root, the solver must still return a
	// finite clamped rate instead of diverging
	cash := []float64{100000, 50000, 50000}
	settings := DefaultIRRSettings()
	irr := CalculateIRR(cash, settings)

	assert.False(t, math.IsNaN(irr))
	assert.False(t, math.IsInf(irr, 0))
	assert.GreaterOrEqual(t, irr, settings.RateFloor)
	assert.LessOrEqual(t, irr, settings.RateCeiling)
}

func TestCalculateIRR_DeepLossClampsAtFloor(t *testing.T) {
	cash := []float64{-1000000, 1, 1, 1, 1}
	settings := DefaultIRRSettings()
	irr := CalculateIRR(cash, settings)

	assert.GreaterOrEqual(t, irr, settings.RateFloor)
	assert.LessOrEqual(t, irr, settings.RateCeiling)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,153,000", FormatCurrency(1153000))
	assert.Equal(t, "$0", FormatCurrency(0.4))
	assert.Equal(t, "-$47,000", FormatCurrency(-47000))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+2,453.2%", FormatPercent(2453.2))
	assert.Equal(t, "-5.0%", FormatPercent(-5))
	assert.Equal(t, "+0.0%", FormatPercent(0))
}
