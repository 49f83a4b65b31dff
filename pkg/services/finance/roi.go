package finance

import (
	"math"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// Settings carry the financial-model constants.
type Settings struct {
	DiscountRate     float64 // annual, for NPV
	NPVYears         int
	PaybackSentinel  int // returned when recurring cost is never recovered
	SensitivityLifts []float64
}

func DefaultSettings() Settings {
	return Settings{
		DiscountRate:     0.10,
		NPVYears:         3,
		PaybackSentinel:  999,
		SensitivityLifts: []float64{10, 20, 30, 40, 50, 60, 70, 80},
	}
}

// CalculateRoi runs the base ROI model. All money outputs are rounded to
// integers; AnnualSavings is always exactly 12x MonthlySavings. Payback
// returns the sentinel instead of infinity when monthly net never turns
// positive, and a zero total cost yields 0% ROI rather than a division error.
func CalculateRoi(inputs domain.RoiInputs, settings Settings) domain.RoiResults {
	capacity := float64(inputs.TeamSize) * inputs.ProjectedVelocityLift / 100
	monthlySavings := int(math.Round(capacity * inputs.AvgSalary / 12))
	annualSavings := monthlySavings * 12

	annualLicense := int(math.Round(inputs.LicenseCostPerUser * float64(inputs.TeamSize) * 12))
	totalAnnualCost := annualLicense + int(math.Round(inputs.ImplementationCost)) + int(math.Round(inputs.TrainingCost))
	netAnnualBenefit := annualSavings - totalAnnualCost

	payback := settings.PaybackSentinel
	monthlyNet := float64(monthlySavings) - float64(annualLicense)/12
	if monthlyNet > 0 {
		payback = int(math.Ceil((inputs.ImplementationCost + inputs.TrainingCost) / monthlyNet))
	}

	upfront := inputs.ImplementationCost + inputs.TrainingCost
	npv := -upfront
	for y := 1; y <= settings.NPVYears; y++ {
		npv += float64(netAnnualBenefit) / math.Pow(1+settings.DiscountRate, float64(y))
	}

	roiPct := 0.0
	if totalAnnualCost != 0 {
		roiPct = math.Round(float64(netAnnualBenefit)/float64(totalAnnualCost)*1000) / 10
	}

	return domain.RoiResults{
		MonthlySavings:    monthlySavings,
		AnnualSavings:     annualSavings,
		AnnualLicenseCost: annualLicense,
		TotalAnnualCost:   totalAnnualCost,
		NetAnnualBenefit:  netAnnualBenefit,
		PaybackMonths:     payback,
		ThreeYearNPV:      int(math.Round(npv)),
		RoiPercentage:     roiPct,
		EffectiveCapacity: capacity,
	}
}

// CalculateSensitivity sweeps the velocity lift across the configured
// points (10..80 by default) and recomputes the model at each one.
func CalculateSensitivity(inputs domain.RoiInputs, settings Settings) []domain.SensitivityRow {
	rows := make([]domain.SensitivityRow, 0, len(settings.SensitivityLifts))
	for _, lift := range settings.SensitivityLifts {
		adjusted := inputs
		adjusted.ProjectedVelocityLift = lift
		results := CalculateRoi(adjusted, settings)
		rows = append(rows, domain.SensitivityRow{
			VelocityLift:   lift,
			MonthlySavings: results.MonthlySavings,
			AnnualSavings:  results.AnnualSavings,
			PaybackMonths:  results.PaybackMonths,
			RoiPercentage:  results.RoiPercentage,
		})
	}
	return rows
}
