package decision

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/finance"
)

// BriefThresholds are the executive brief's own cutoffs. They are stricter
// on controls and add financial gates the synthesis service does not have;
// the two tables are kept separate on purpose (see SynthesisThresholds).
type BriefThresholds struct {
	MinRoiPct          float64
	MaxPaybackMonths   int
	MinControlPassRate int
}

func DefaultBriefThresholds() BriefThresholds {
	return BriefThresholds{
		MinRoiPct:          50,
		MaxPaybackMonths:   18,
		MinControlPassRate: 90,
	}
}

// BriefInputs gather everything the executive brief reads.
type BriefInputs struct {
	ProjectID   string
	ROI         *domain.RoiResults
	RiskSummary *domain.RiskSummary
	Risks       []domain.RiskClassification
	Readiness   *domain.ReadinessReport
	Gates       []domain.GovernanceGate
}

// BriefGenerator produces the persona-facing decision brief. Its verdict
// logic is narrower than the synthesis service: it only weighs financials,
// risk posture and gate readiness.
type BriefGenerator struct {
	thresholds BriefThresholds
	nextSteps  NextSteps
	now        func() time.Time
}

func NewBriefGenerator(thresholds BriefThresholds, nextSteps NextSteps) *BriefGenerator {
	return &BriefGenerator{thresholds: thresholds, nextSteps: nextSteps, now: time.Now}
}

// WithClock overrides the clock for testing.
func (g *BriefGenerator) WithClock(now func() time.Time) *BriefGenerator {
	g.now = now
	return g
}

func (g *BriefGenerator) Generate(inputs BriefInputs) domain.ExecutiveDecisionBrief {
	t := g.thresholds
	brief := domain.ExecutiveDecisionBrief{
		ProjectID:   inputs.ProjectID,
		GeneratedAt: g.now().UTC(),
		TraceID:     uuid.NewString(),
	}

	noGo := false
	conditional := false

	if inputs.ROI == nil {
		conditional = true
		brief.EvidenceGaps = append(brief.EvidenceGaps, "no financial model available")
		brief.ValueSummary = "Financial impact not yet modeled"
	} else {
		roi := inputs.ROI
		brief.ValueSummary = fmt.Sprintf("Net annual benefit %s (%s ROI, payback %d months)",
			finance.FormatCurrency(float64(roi.NetAnnualBenefit)),
			finance.FormatPercent(roi.RoiPercentage),
			roi.PaybackMonths)

		if roi.NetAnnualBenefit <= 0 {
			noGo = true
			brief.RiskFactors = append(brief.RiskFactors, "the pilot does not produce a positive net annual benefit")
		} else {
			brief.Rationale = append(brief.Rationale,
				fmt.Sprintf("annual savings of %s against %s total cost",
					finance.FormatCurrency(float64(roi.AnnualSavings)),
					finance.FormatCurrency(float64(roi.TotalAnnualCost))))
		}
		if roi.RoiPercentage < t.MinRoiPct {
			conditional = true
			brief.RiskFactors = append(brief.RiskFactors,
				fmt.Sprintf("ROI of %s is below the %s target",
					finance.FormatPercent(roi.RoiPercentage), finance.FormatPercent(t.MinRoiPct)))
		}
		if roi.PaybackMonths > t.MaxPaybackMonths {
			conditional = true
			brief.RiskFactors = append(brief.RiskFactors,
				fmt.Sprintf("payback of %d months exceeds the %d-month target",
					roi.PaybackMonths, t.MaxPaybackMonths))
		}
	}

	brief.RiskPosture = riskPosture(inputs.RiskSummary)
	openCritical, openHigh := openSevereRisks(inputs.Risks)
	if openCritical > 0 {
		noGo = true
		brief.RiskFactors = append(brief.RiskFactors,
			fmt.Sprintf("%d critical risk(s) are still open", openCritical))
	}
	if openHigh > 0 {
		conditional = true
		brief.RiskFactors = append(brief.RiskFactors,
			fmt.Sprintf("%d high risk(s) are still open", openHigh))
	}

	if inputs.Readiness == nil {
		conditional = true
		brief.EvidenceGaps = append(brief.EvidenceGaps, "governance readiness has not been evaluated")
		brief.GovernanceStatus = "Readiness not evaluated"
	} else {
		r := inputs.Readiness
		brief.GovernanceStatus = fmt.Sprintf("%d gate(s) tracked, control pass rate %d%%, %d blocker(s)",
			len(inputs.Gates), r.ControlPassRate, len(r.Blockers))
		if !r.Ready {
			noGo = true
			brief.RiskFactors = append(brief.RiskFactors, r.Blockers...)
		} else {
			brief.Rationale = append(brief.Rationale, "all governance gates cleared with no blockers")
		}
		if r.ControlPassRate < t.MinControlPassRate {
			conditional = true
			brief.RiskFactors = append(brief.RiskFactors,
				fmt.Sprintf("control pass rate %d%% is below the brief's %d%% bar",
					r.ControlPassRate, t.MinControlPassRate))
		}
	}

	for _, gate := range inputs.Gates {
		for _, artifact := range gate.RequiredArtifacts {
			if !artifact.Provided {
				brief.EvidenceGaps = append(brief.EvidenceGaps,
					fmt.Sprintf("gate %q is missing artifact %q", gate.Name, artifact.Name))
			}
		}
	}

	switch {
	case noGo:
		brief.Recommendation = domain.VerdictNoGo
	case conditional:
		brief.Recommendation = domain.VerdictConditionalGo
	default:
		brief.Recommendation = domain.VerdictGo
		brief.Rationale = append(brief.Rationale, "financials, risk posture and governance all meet their targets")
	}
	brief.NextSteps = g.nextSteps[brief.Recommendation]
	return brief
}

func riskPosture(summary *domain.RiskSummary) string {
	if summary == nil || summary.TotalRisks == 0 {
		return "No risks recorded"
	}
	return fmt.Sprintf("%d risk(s): %d critical, %d high, %d medium, %d low",
		summary.TotalRisks,
		summary.ByTier[domain.RiskTierCritical],
		summary.ByTier[domain.RiskTierHigh],
		summary.ByTier[domain.RiskTierMedium],
		summary.ByTier[domain.RiskTierLow])
}
