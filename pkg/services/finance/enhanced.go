package finance

import (
	"math"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// ScenarioDef is a named what-if with a probability and multipliers applied
// to benefits and costs. Probabilities across a set must sum to 1.0.
type ScenarioDef struct {
	Name              string
	Probability       float64
	RevenueMultiplier float64
	CostMultiplier    float64
}

// DefaultScenarios returns the four standard planning scenarios.
func DefaultScenarios() []ScenarioDef {
	return []ScenarioDef{
		{Name: "optimistic", Probability: 0.20, RevenueMultiplier: 1.30, CostMultiplier: 0.90},
		{Name: "base", Probability: 0.50, RevenueMultiplier: 1.00, CostMultiplier: 1.00},
		{Name: "conservative", Probability: 0.25, RevenueMultiplier: 0.80, CostMultiplier: 1.10},
		{Name: "pessimistic", Probability: 0.05, RevenueMultiplier: 0.60, CostMultiplier: 1.30},
	}
}

// CalculateEnhancedRoi extends the base model with TCO, a benefit breakdown,
// a 5-year cashflow series (half-year ramp in year 0), IRR, and the
// probability-weighted scenario analysis.
func CalculateEnhancedRoi(inputs domain.EnhancedRoiInputs, settings Settings, scenarios []ScenarioDef) domain.EnhancedRoiResults {
	base := CalculateRoi(inputs.RoiInputs, settings)

	initial := inputs.ImplementationCost + inputs.TrainingCost +
		inputs.InfrastructureCost + inputs.DataEngineeringCost + inputs.ChangeManagementCost
	annualCost := float64(base.AnnualLicenseCost) + inputs.OngoingInfrastructure +
		inputs.SupportFTE*inputs.SupportSalary

	tco := domain.TCOBreakdown{
		Initial:   int(math.Round(initial)),
		Annual:    int(math.Round(annualCost)),
		ThreeYear: int(math.Round(initial + annualCost*3)),
	}

	productivity := float64(base.AnnualSavings)
	revenue := inputs.RevenueIncreasePct / 100 * productivity
	errorSavings := inputs.ErrorReductionPct / 100 * inputs.AnnualErrorCost
	totalBenefit := productivity + revenue + errorSavings

	benefits := domain.BenefitBreakdown{
		Productivity:       base.AnnualSavings,
		Revenue:            int(math.Round(revenue)),
		ErrorSavings:       int(math.Round(errorSavings)),
		CostReduction:      int(math.Round(productivity - revenue)),
		TotalAnnualBenefit: int(math.Round(totalBenefit)),
	}

	cash := cashflowSeries(initial, totalBenefit, annualCost, 1, 1)
	irr := CalculateIRR(cash, DefaultIRRSettings())

	analysis := scenarioAnalysis(initial, totalBenefit, annualCost, scenarios, settings)

	return domain.EnhancedRoiResults{
		RoiResults:   base,
		TCO:          tco,
		Benefits:     benefits,
		FiveYearCash: cash,
		IRR:          irr,
		Scenarios:    analysis,
	}
}

// cashflowSeries builds the 5-year series: year 0 carries the initial spend
// plus half a year of net benefit (adoption ramp), years 1-4 the full net.
func cashflowSeries(initial, totalBenefit, annualCost, revMult, costMult float64) []float64 {
	net := totalBenefit*revMult - annualCost*costMult
	series := make([]float64, 5)
	series[0] = -initial*costMult + net*0.5
	for y := 1; y <= 4; y++ {
		series[y] = net
	}
	return series
}

func scenarioAnalysis(initial, totalBenefit, annualCost float64, defs []ScenarioDef, settings Settings) domain.ScenarioAnalysis {
	analysis := domain.ScenarioAnalysis{}
	expected := 0.0
	for _, def := range defs {
		cash := cashflowSeries(initial, totalBenefit, annualCost, def.RevenueMultiplier, def.CostMultiplier)
		npv := 0.0
		for y, amount := range cash {
			npv += amount / math.Pow(1+settings.DiscountRate, float64(y))
		}

		adjBenefit := totalBenefit * def.RevenueMultiplier
		adjCost := annualCost * def.CostMultiplier
		roiPct := 0.0
		if adjCost != 0 {
			roiPct = math.Round((adjBenefit-adjCost)/adjCost*1000) / 10
		}

		analysis.Scenarios = append(analysis.Scenarios, domain.Scenario{
			Name:              def.Name,
			Probability:       def.Probability,
			RevenueMultiplier: def.RevenueMultiplier,
			CostMultiplier:    def.CostMultiplier,
			NPV:               int(math.Round(npv)),
			RoiPercentage:     roiPct,
		})
		expected += def.Probability * npv
	}
	analysis.ExpectedNPV = int(math.Round(expected))
	return analysis
}
