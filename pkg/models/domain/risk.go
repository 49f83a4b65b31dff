package domain

type RiskCategory string

const (
	RiskCategorySecurity     RiskCategory = "security"
	RiskCategoryCompliance   RiskCategory = "compliance"
	RiskCategoryOperational  RiskCategory = "operational"
	RiskCategoryFinancial    RiskCategory = "financial"
	RiskCategoryReputational RiskCategory = "reputational"
	RiskCategoryLegal        RiskCategory = "legal"
	RiskCategoryTechnical    RiskCategory = "technical"
)

// RiskCategories lists the seven fixed portfolio categories.
var RiskCategories = []RiskCategory{
	RiskCategorySecurity,
	RiskCategoryCompliance,
	RiskCategoryOperational,
	RiskCategoryFinancial,
	RiskCategoryReputational,
	RiskCategoryLegal,
	RiskCategoryTechnical,
}

func (c RiskCategory) IsValid() bool {
	for _, known := range RiskCategories {
		if c == known {
			return true
		}
	}
	return false
}

type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

type RiskStatus string

const (
	RiskStatusOpen       RiskStatus = "open"
	RiskStatusMitigating RiskStatus = "mitigating"
	RiskStatusMitigated  RiskStatus = "mitigated"
	RiskStatusAccepted   RiskStatus = "accepted"
)

type RiskClassification struct {
	ID          string
	Category    RiskCategory
	Description string
	Likelihood  int // 1-5
	Impact      int // 1-5
	Mitigation  string
	Owner       string
	Tier        RiskTier
	Status      RiskStatus
}

// HeatMapCell is one cell of the 5x5 likelihood/impact grid. Score is the
// raw likelihood*impact product, not discounted by control effectiveness.
type HeatMapCell struct {
	Likelihood int
	Impact     int
	Score      int
	Rating     RiskTier
	Risks      []string
}

type RiskSummary struct {
	TotalRisks int
	ByTier     map[RiskTier]int
	ByCategory map[RiskCategory]int
	HeatMap    [][]HeatMapCell // [likelihood-1][impact-1]
	TopRisks   []RiskClassification
}
