package decision

import (
	"fmt"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// SynthesisThresholds are the cutoffs for the decision synthesis service.
// The executive brief generator carries its own, deliberately separate
// table (BriefThresholds): the two engines serve different personas and
// their divergence is kept auditable rather than merged.
type SynthesisThresholds struct {
	KpiNoGoBelow        int // attainment % forcing no_go
	KpiGoAtLeast        int // attainment % needed for an unconditional go
	PassRateNoGoBelow   int
	PassRateGoAtLeast   int
	MaxOpenHighForGo    int
	HighConfidenceMin   int // populated sources for high confidence
	MediumConfidenceMin int
}

func DefaultSynthesisThresholds() SynthesisThresholds {
	return SynthesisThresholds{
		KpiNoGoBelow:        40,
		KpiGoAtLeast:        75,
		PassRateNoGoBelow:   60,
		PassRateGoAtLeast:   80,
		MaxOpenHighForGo:    0,
		HighConfidenceMin:   5,
		MediumConfidenceMin: 3,
	}
}

// NextSteps are the templated follow-ups per verdict bucket.
type NextSteps map[domain.Verdict][]string

func DefaultNextSteps() NextSteps {
	return NextSteps{
		domain.VerdictGo: {
			"Confirm production rollout scope and seat allocation with the steering committee",
			"Schedule the 90-day post-rollout KPI review",
			"Transition pilot governance artifacts into the standing review cadence",
		},
		domain.VerdictConditionalGo: {
			"Resolve the listed concerns and re-run the decision synthesis",
			"Limit expansion to current pilot teams until conditions clear",
			"Assign owners and dates to every open condition",
		},
		domain.VerdictNoGo: {
			"Remediate the blocking findings before requesting another review",
			"Keep the pilot in its current scope; no new seats",
			"Present a remediation plan at the next governance board meeting",
		},
	}
}

// Synthesizer combines KPI attainment, risk posture and governance state
// into a single recommendation with confidence and rationale.
type Synthesizer struct {
	thresholds SynthesisThresholds
	nextSteps  NextSteps
}

func NewSynthesizer(thresholds SynthesisThresholds, nextSteps NextSteps) *Synthesizer {
	return &Synthesizer{thresholds: thresholds, nextSteps: nextSteps}
}

func (s *Synthesizer) Recommend(signals domain.DecisionSignals) domain.DecisionRecommendation {
	t := s.thresholds
	rec := domain.DecisionRecommendation{
		Confidence: s.confidence(signals),
	}

	openCritical, openHigh := openSevereRisks(signals.Risks)

	noGo := false
	if signals.KPI.Populated && signals.KPI.AttainmentPct < t.KpiNoGoBelow {
		noGo = true
		rec.Concerns = append(rec.Concerns,
			fmt.Sprintf("KPI attainment %d%% is below the %d%% floor", signals.KPI.AttainmentPct, t.KpiNoGoBelow))
	}
	if signals.ControlsPopulated && signals.ControlPassRate < t.PassRateNoGoBelow {
		noGo = true
		rec.Concerns = append(rec.Concerns,
			fmt.Sprintf("control pass rate %d%% is below the %d%% floor", signals.ControlPassRate, t.PassRateNoGoBelow))
	}
	if openCritical > 0 {
		noGo = true
		rec.Concerns = append(rec.Concerns,
			fmt.Sprintf("%d critical risk(s) remain open", openCritical))
	}

	conditional := false
	if signals.KPI.Populated && signals.KPI.AttainmentPct >= t.KpiNoGoBelow && signals.KPI.AttainmentPct < t.KpiGoAtLeast {
		conditional = true
		rec.Concerns = append(rec.Concerns,
			fmt.Sprintf("KPI attainment %d%% is below the %d%% go target", signals.KPI.AttainmentPct, t.KpiGoAtLeast))
	}
	if signals.ControlsPopulated && signals.ControlPassRate >= t.PassRateNoGoBelow && signals.ControlPassRate < t.PassRateGoAtLeast {
		conditional = true
		rec.Concerns = append(rec.Concerns,
			fmt.Sprintf("control pass rate %d%% is below the %d%% go target", signals.ControlPassRate, t.PassRateGoAtLeast))
	}
	if openHigh > t.MaxOpenHighForGo {
		conditional = true
		rec.Concerns = append(rec.Concerns,
			fmt.Sprintf("%d high risk(s) remain open", openHigh))
	}
	if signals.GatesTotal > 0 && signals.GatesApproved < signals.GatesTotal {
		conditional = true
		rec.Concerns = append(rec.Concerns,
			fmt.Sprintf("%d of %d governance gates approved", signals.GatesApproved, signals.GatesTotal))
	}
	if !signals.DataClassification {
		conditional = true
		rec.Concerns = append(rec.Concerns, "data classification review is not signed off")
	}
	if !signals.EvidenceComplete {
		conditional = true
		rec.Concerns = append(rec.Concerns, "gate evidence is incomplete")
	}
	feasibilityClean := true
	if signals.Feasibility != nil {
		for _, ds := range signals.Feasibility.DomainScores {
			if !ds.Passed {
				feasibilityClean = false
				conditional = true
				rec.Concerns = append(rec.Concerns,
					fmt.Sprintf("%s feasibility at %d%% is below its %d%% threshold", ds.Domain, ds.Percentage, ds.PassThreshold))
			}
		}
	}

	if signals.KPI.Populated && signals.KPI.AttainmentPct >= t.KpiGoAtLeast {
		rec.Wins = append(rec.Wins,
			fmt.Sprintf("KPI attainment at %d%% meets the go target", signals.KPI.AttainmentPct))
	}
	if signals.ControlsPopulated && signals.ControlPassRate >= t.PassRateGoAtLeast {
		rec.Wins = append(rec.Wins,
			fmt.Sprintf("controls passing at %d%%", signals.ControlPassRate))
	}
	if signals.RisksPopulated && openCritical == 0 && openHigh == 0 {
		rec.Wins = append(rec.Wins, "no open high or critical risks")
	}
	if signals.GatesTotal > 0 && signals.GatesApproved == signals.GatesTotal {
		rec.Wins = append(rec.Wins, "all governance gates approved")
	}
	if signals.Feasibility != nil && feasibilityClean {
		rec.Wins = append(rec.Wins,
			fmt.Sprintf("feasibility rated %s with every domain above threshold", signals.Feasibility.Rating))
	}
	if signals.ROI != nil && signals.ROI.NetAnnualBenefit > 0 {
		rec.Wins = append(rec.Wins,
			fmt.Sprintf("positive net annual benefit with %d-month payback", signals.ROI.PaybackMonths))
	}

	switch {
	case noGo:
		rec.Verdict = domain.VerdictNoGo
	case conditional:
		rec.Verdict = domain.VerdictConditionalGo
	default:
		rec.Verdict = domain.VerdictGo
	}
	rec.NextSteps = s.nextSteps[rec.Verdict]
	return rec
}

// confidence counts the populated data sources out of five: KPIs, risk
// summary, controls, gates, and financials.
func (s *Synthesizer) confidence(signals domain.DecisionSignals) domain.Confidence {
	populated := 0
	if signals.KPI.Populated {
		populated++
	}
	if signals.RisksPopulated {
		populated++
	}
	if signals.ControlsPopulated {
		populated++
	}
	if signals.GatesTotal > 0 {
		populated++
	}
	if signals.ROI != nil {
		populated++
	}

	switch {
	case populated >= s.thresholds.HighConfidenceMin:
		return domain.ConfidenceHigh
	case populated >= s.thresholds.MediumConfidenceMin:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func openSevereRisks(risks []domain.RiskClassification) (critical, high int) {
	for _, r := range risks {
		open := r.Status == domain.RiskStatusOpen || r.Status == domain.RiskStatusMitigating
		if !open {
			continue
		}
		switch r.Tier {
		case domain.RiskTierCritical:
			critical++
		case domain.RiskTierHigh:
			high++
		}
	}
	return critical, high
}
