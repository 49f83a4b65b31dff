package domain

import "time"

type Verdict string

const (
	VerdictGo            Verdict = "go"
	VerdictConditionalGo Verdict = "conditional_go"
	VerdictNoGo          Verdict = "no_go"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// KPISummary is the pre-aggregated KPI attainment input. It is produced by
// an upstream aggregation module and treated as opaque here.
type KPISummary struct {
	AttainmentPct int // 0-100, share of pilot KPIs meeting target
	KPICount      int
	OnTrackCount  int
	Populated     bool
}

// DecisionSignals are the overlapping inputs both recommendation engines
// read: KPI attainment, risk posture, control results and gate state.
type DecisionSignals struct {
	KPI                KPISummary
	Risks              []RiskClassification
	RisksPopulated     bool
	ControlPassRate    int
	ControlsPopulated  bool
	GatesApproved      int
	GatesTotal         int
	EvidenceComplete   bool
	DataClassification bool // classification review signed off
	Feasibility        *FeasibilityScore
	ROI                *RoiResults
}

type DecisionRecommendation struct {
	Verdict    Verdict
	Confidence Confidence
	Wins       []string
	Concerns   []string
	NextSteps  []string
}

type ExecutiveDecisionBrief struct {
	ProjectID        string
	GeneratedAt      time.Time
	TraceID          string
	Recommendation   Verdict
	Rationale        []string
	EvidenceGaps     []string
	RiskFactors      []string
	ValueSummary     string
	RiskPosture      string
	GovernanceStatus string
	NextSteps        []string
}
