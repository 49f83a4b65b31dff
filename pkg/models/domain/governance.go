package domain

import "time"

type GateDecision string

const (
	GateDecisionPending  GateDecision = "pending"
	GateDecisionApproved GateDecision = "approved"
	GateDecisionRejected GateDecision = "rejected"
)

type RequiredArtifact struct {
	Name     string
	Provided bool
}

// GovernanceGate is a named checkpoint (e.g. design review) with a decision
// and the evidence artifacts it requires.
type GovernanceGate struct {
	ID                string
	Name              string
	Decision          GateDecision
	RequiredArtifacts []RequiredArtifact
}

type ControlResult string

const (
	ControlResultPass ControlResult = "pass"
	ControlResultFail ControlResult = "fail"
)

type ControlCheck struct {
	ID     string
	Name   string
	Result ControlResult
}

type ExceptionStatus string

const (
	ExceptionStatusRequested ExceptionStatus = "requested"
	ExceptionStatusApproved  ExceptionStatus = "approved"
	ExceptionStatusExpired   ExceptionStatus = "expired"
)

type RiskException struct {
	ID        string
	RiskID    string
	Status    ExceptionStatus
	ExpiresAt time.Time
}

type ReadinessReport struct {
	Ready           bool
	ControlPassRate int
	OpenRisks       int
	OpenExceptions  int
	Blockers        []string
}
