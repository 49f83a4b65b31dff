package domain

type MaturityDimension string

const (
	MaturityPolicy     MaturityDimension = "policy_management"
	MaturityRisk       MaturityDimension = "risk_management"
	MaturityData       MaturityDimension = "data_governance"
	MaturitySecurity   MaturityDimension = "security_controls"
	MaturityCompliance MaturityDimension = "compliance_audit"
	MaturityEnablement MaturityDimension = "workforce_enablement"
)

// MaturityDimensions lists the six governance dimensions.
var MaturityDimensions = []MaturityDimension{
	MaturityPolicy,
	MaturityRisk,
	MaturityData,
	MaturitySecurity,
	MaturityCompliance,
	MaturityEnablement,
}

// MaturitySubscores are the five practice facets per dimension, each 0-20.
type MaturitySubscores struct {
	Documentation  int
	Implementation int
	Enforcement    int
	Measurement    int
	Improvement    int
}

type MaturityDimensionScore struct {
	Dimension MaturityDimension
	Level     int // 1-5
	Score     int // 0-100
	Subscores MaturitySubscores
	KeyGap    string
}

type MaturityAssessment struct {
	DimensionScores []MaturityDimensionScore
	OverallScore    int
	OverallLevel    int
	Industry        string
	Recommendations []string
}
