package domain

// RoiInputs are the base financial-model inputs for a pilot deployment.
type RoiInputs struct {
	TeamSize              int
	AvgSalary             float64
	CurrentVelocity       float64
	ProjectedVelocityLift float64 // percent, e.g. 40 for +40%
	LicenseCostPerUser    float64 // per user per month
	ImplementationCost    float64
	TrainingCost          float64
}

type RoiResults struct {
	MonthlySavings    int
	AnnualSavings     int
	AnnualLicenseCost int
	TotalAnnualCost   int
	NetAnnualBenefit  int
	PaybackMonths     int // 999 when recurring cost is never recovered
	ThreeYearNPV      int
	RoiPercentage     float64 // 1 decimal
	EffectiveCapacity float64 // additional full-time-equivalents
}

type SensitivityRow struct {
	VelocityLift   float64
	MonthlySavings int
	AnnualSavings  int
	PaybackMonths  int
	RoiPercentage  float64
}

// EnhancedRoiInputs extend the base model with TCO and benefit drivers.
type EnhancedRoiInputs struct {
	RoiInputs

	InfrastructureCost    float64 // one-time
	DataEngineeringCost   float64 // one-time
	ChangeManagementCost  float64 // one-time
	OngoingInfrastructure float64 // annual
	SupportFTE            float64
	SupportSalary         float64

	RevenueIncreasePct float64 // percent of productivity gain
	ErrorReductionPct  float64 // percent of annual error cost
	AnnualErrorCost    float64
}

type TCOBreakdown struct {
	Initial   int
	Annual    int
	ThreeYear int
}

type BenefitBreakdown struct {
	Productivity       int
	Revenue            int
	ErrorSavings       int
	CostReduction      int
	TotalAnnualBenefit int
}

type Scenario struct {
	Name              string
	Probability       float64
	RevenueMultiplier float64
	CostMultiplier    float64
	NPV               int
	RoiPercentage     float64
}

type ScenarioAnalysis struct {
	Scenarios   []Scenario
	ExpectedNPV int
}

type EnhancedRoiResults struct {
	RoiResults

	TCO          TCOBreakdown
	Benefits     BenefitBreakdown
	FiveYearCash []float64 // year 0 includes half-year ramp
	IRR          float64   // annual rate, e.g. 0.42 for 42%
	Scenarios    ScenarioAnalysis
}
