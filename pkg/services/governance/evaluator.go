package governance

import (
	"fmt"
	"math"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// Settings hold the readiness thresholds.
type Settings struct {
	MinControlPassRate int
}

func DefaultSettings() Settings {
	return Settings{MinControlPassRate: 80}
}

// EvaluateReadiness aggregates gate, control, risk and exception state into
// a pass/blockers verdict. Blockers accumulate; ready means zero blockers.
func EvaluateReadiness(
	gates []domain.GovernanceGate,
	controls []domain.ControlCheck,
	risks []domain.RiskClassification,
	exceptions []domain.RiskException,
	settings Settings,
) domain.ReadinessReport {
	report := domain.ReadinessReport{}

	for _, gate := range gates {
		switch gate.Decision {
		case domain.GateDecisionPending:
			report.Blockers = append(report.Blockers,
				fmt.Sprintf("gate %q has no decision yet", gate.Name))
		case domain.GateDecisionRejected:
			report.Blockers = append(report.Blockers,
				fmt.Sprintf("gate %q was rejected", gate.Name))
		default:
			if !evidenceComplete(gate) {
				report.Blockers = append(report.Blockers,
					fmt.Sprintf("gate %q is missing required evidence", gate.Name))
			}
		}
	}

	report.ControlPassRate = controlPassRate(controls)
	if report.ControlPassRate < settings.MinControlPassRate {
		report.Blockers = append(report.Blockers,
			fmt.Sprintf("control pass rate %d%% is below the %d%% minimum",
				report.ControlPassRate, settings.MinControlPassRate))
	}

	approved := map[string]bool{}
	for _, ex := range exceptions {
		if ex.Status == domain.ExceptionStatusApproved {
			approved[ex.RiskID] = true
			report.OpenExceptions++
		}
	}

	for _, r := range risks {
		open := r.Status == domain.RiskStatusOpen || r.Status == domain.RiskStatusMitigating
		if !open {
			continue
		}
		report.OpenRisks++
		severe := r.Tier == domain.RiskTierHigh || r.Tier == domain.RiskTierCritical
		if severe && !approved[r.ID] {
			report.Blockers = append(report.Blockers,
				fmt.Sprintf("open %s risk %q has no approved exception", r.Tier, r.Description))
		}
	}

	report.Ready = len(report.Blockers) == 0
	return report
}

// EvidenceComplete reports whether every required artifact of a gate has
// been provided.
func EvidenceComplete(gate domain.GovernanceGate) bool {
	return evidenceComplete(gate)
}

func evidenceComplete(gate domain.GovernanceGate) bool {
	for _, artifact := range gate.RequiredArtifacts {
		if !artifact.Provided {
			return false
		}
	}
	return true
}

// ControlPassRate returns the rounded percentage of passing controls, 0
// when there are none.
func ControlPassRate(controls []domain.ControlCheck) int {
	return controlPassRate(controls)
}

func controlPassRate(controls []domain.ControlCheck) int {
	if len(controls) == 0 {
		return 0
	}
	passed := 0
	for _, c := range controls {
		if c.Result == domain.ControlResultPass {
			passed++
		}
	}
	return int(math.Round(float64(passed) / float64(len(controls)) * 100))
}
