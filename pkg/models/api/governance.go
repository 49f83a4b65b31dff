package api

import (
	"time"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

type ArtifactInput struct {
	Name     string `json:"name"`
	Provided bool   `json:"provided"`
}

type GateInput struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Decision          string          `json:"decision"`
	RequiredArtifacts []ArtifactInput `json:"required_artifacts"`
}

type ControlInput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Result string `json:"result"`
}

type ExceptionInput struct {
	ID        string    `json:"id"`
	RiskID    string    `json:"risk_id"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GovernanceBundle carries a project's full governance state in one request.
type GovernanceBundle struct {
	Gates      []GateInput      `json:"gates"`
	Controls   []ControlInput   `json:"controls"`
	Exceptions []ExceptionInput `json:"exceptions"`
}

func (b GovernanceBundle) GatesToDomain() []domain.GovernanceGate {
	gates := make([]domain.GovernanceGate, 0, len(b.Gates))
	for _, g := range b.Gates {
		artifacts := make([]domain.RequiredArtifact, 0, len(g.RequiredArtifacts))
		for _, a := range g.RequiredArtifacts {
			artifacts = append(artifacts, domain.RequiredArtifact{Name: a.Name, Provided: a.Provided})
		}
		gates = append(gates, domain.GovernanceGate{
			ID:                g.ID,
			Name:              g.Name,
			Decision:          domain.GateDecision(g.Decision),
			RequiredArtifacts: artifacts,
		})
	}
	return gates
}

func (b GovernanceBundle) ControlsToDomain() []domain.ControlCheck {
	controls := make([]domain.ControlCheck, 0, len(b.Controls))
	for _, c := range b.Controls {
		controls = append(controls, domain.ControlCheck{
			ID:     c.ID,
			Name:   c.Name,
			Result: domain.ControlResult(c.Result),
		})
	}
	return controls
}

func (b GovernanceBundle) ExceptionsToDomain() []domain.RiskException {
	exceptions := make([]domain.RiskException, 0, len(b.Exceptions))
	for _, e := range b.Exceptions {
		exceptions = append(exceptions, domain.RiskException{
			ID:        e.ID,
			RiskID:    e.RiskID,
			Status:    domain.ExceptionStatus(e.Status),
			ExpiresAt: e.ExpiresAt,
		})
	}
	return exceptions
}
