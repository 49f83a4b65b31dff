package governance

import (
	"testing"
	"time"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func approvedGate(name string) domain.GovernanceGate {
	return domain.GovernanceGate{
		Name:     name,
		Decision: domain.GateDecisionApproved,
		RequiredArtifacts: []domain.RequiredArtifact{
			{Name: "evidence", Provided: true},
		},
	}
}

func passingControls(n int) []domain.ControlCheck {
	controls := make([]domain.ControlCheck, n)
	for i := range controls {
		controls[i] = domain.ControlCheck{Result: domain.ControlResultPass}
	}
	return controls
}

func TestEvaluateReadiness_AllClear(t *testing.T) {
	report := EvaluateReadiness(
		[]domain.GovernanceGate{approvedGate("design review"), approvedGate("security review")},
		passingControls(10),
		nil, nil,
		DefaultSettings(),
	)

	assert.True(t, report.Ready)
	assert.Empty(t, report.Blockers)
	assert.Equal(t, 100, report.ControlPassRate)
}

func TestEvaluateReadiness_PendingGateBlocks(t *testing.T) {
	gates := []domain.GovernanceGate{
		{Name: "security review", Decision: domain.GateDecisionPending},
	}

	report := EvaluateReadiness(gates, passingControls(4), nil, nil, DefaultSettings())
	assert.False(t, report.Ready)
	assert.Contains(t, report.Blockers[0], "no decision yet")
}

func TestEvaluateReadiness_RejectedGateBlocks(t *testing.T) {
	gates := []domain.GovernanceGate{
		{Name: "data review", Decision: domain.GateDecisionRejected},
	}

	report := EvaluateReadiness(gates, nil, nil, nil, DefaultSettings())
	assert.False(t, report.Ready)
	assert.Contains(t, report.Blockers[0], "rejected")
}

func TestEvaluateReadiness_IncompleteEvidenceBlocks(t *testing.T) {
	gate := approvedGate("design review")
	gate.RequiredArtifacts = append(gate.RequiredArtifacts,
		domain.RequiredArtifact{Name: "threat model", Provided: false})

	report := EvaluateReadiness([]domain.GovernanceGate{gate}, nil, nil, nil, DefaultSettings())
	assert.False(t, report.Ready)
	assert.Contains(t, report.Blockers[0], "missing required evidence")
}

func TestEvaluateReadiness_LowPassRateBlocks(t *testing.T) {
	controls := append(passingControls(7),
		domain.ControlCheck{Result: domain.ControlResultFail},
		domain.ControlCheck{Result: domain.ControlResultFail},
		domain.ControlCheck{Result: domain.ControlResultFail},
	)

	report := EvaluateReadiness(nil, controls, nil, nil, DefaultSettings())
	assert.Equal(t, 70, report.ControlPassRate)
	assert.False(t, report.Ready)
	assert.Contains(t, report.Blockers[0], "below the 80% minimum")
}

func TestEvaluateReadiness_NoControlsBlocksOnPassRate(t *testing.T) {
	report := EvaluateReadiness(nil, nil, nil, nil, DefaultSettings())
	assert.Equal(t, 0, report.ControlPassRate)
	assert.False(t, report.Ready)
	assert.Contains(t, report.Blockers[0], "control pass rate 0%")
}

func TestEvaluateReadiness_OpenSevereRiskNeedsException(t *testing.T) {
	risks := []domain.RiskClassification{
		{ID: "r1", Description: "model exfiltration", Tier: domain.RiskTierCritical, Status: domain.RiskStatusOpen},
		{ID: "r2", Description: "tool sprawl", Tier: domain.RiskTierMedium, Status: domain.RiskStatusMitigating},
	}

	report := EvaluateReadiness(nil, passingControls(5), risks, nil, DefaultSettings())
	assert.False(t, report.Ready)
	assert.Equal(t, 2, report.OpenRisks)
	assert.Len(t, report.Blockers, 1) // medium risks never block
	assert.Contains(t, report.Blockers[0], "model exfiltration")
}

func TestEvaluateReadiness_ApprovedExceptionClearsSevereRisk(t *testing.T) {
	risks := []domain.RiskClassification{
		{ID: "r1", Description: "model exfiltration", Tier: domain.RiskTierCritical, Status: domain.RiskStatusOpen},
	}
	exceptions := []domain.RiskException{
		{RiskID: "r1", Status: domain.ExceptionStatusApproved, ExpiresAt: time.Now().Add(30 * 24 * time.Hour)},
	}

	report := EvaluateReadiness(nil, passingControls(5), risks, exceptions, DefaultSettings())
	assert.True(t, report.Ready)
	assert.Equal(t, 1, report.OpenExceptions)
}

func TestEvaluateReadiness_RequestedExceptionDoesNotClear(t *testing.T) {
	risks := []domain.RiskClassification{
		{ID: "r1", Description: "model exfiltration", Tier: domain.RiskTierHigh, Status: domain.RiskStatusOpen},
	}
	exceptions := []domain.RiskException{
		{RiskID: "r1", Status: domain.ExceptionStatusRequested},
	}

	report := EvaluateReadiness(nil, passingControls(5), risks, exceptions, DefaultSettings())
	assert.False(t, report.Ready)
	assert.Equal(t, 0, report.OpenExceptions)
}

func TestControlPassRate_Rounds(t *testing.T) {
	controls := append(passingControls(1), domain.ControlCheck{Result: domain.ControlResultFail}, domain.ControlCheck{Result: domain.ControlResultFail})
	// 1/3 -> 33
	assert.Equal(t, 33, ControlPassRate(controls))
}
