package governance

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// Store persists the governance-process state: gates with their evidence
// artifacts, control check results, and approved risk exceptions.
type Store interface {
	AddGates(ctx context.Context, projectID string, gates []domain.GovernanceGate) error
	ListGates(ctx context.Context, projectID string) ([]domain.GovernanceGate, error)
	AddControls(ctx context.Context, projectID string, controls []domain.ControlCheck) error
	ListControls(ctx context.Context, projectID string) ([]domain.ControlCheck, error)
	AddExceptions(ctx context.Context, projectID string, exceptions []domain.RiskException) error
	ListExceptions(ctx context.Context, projectID string) ([]domain.RiskException, error)
}

type governanceStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &governanceStore{db: db}, nil
}

func (s *governanceStore) AddGates(ctx context.Context, projectID string, gates []domain.GovernanceGate) error {
	if len(gates) == 0 {
		return nil
	}

	query := `INSERT INTO governance_gates (id, project_id, name, decision, artifacts) VALUES (?, ?, ?, ?, ?)`
	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, gate := range gates {
		artifacts, err := json.Marshal(gate.RequiredArtifacts)
		if err != nil {
			return fmt.Errorf("marshal artifacts: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, gate.ID, projectID, gate.Name, string(gate.Decision), string(artifacts)); err != nil {
			return fmt.Errorf("insert gate: %w", err)
		}
	}
	return nil
}

func (s *governanceStore) ListGates(ctx context.Context, projectID string) ([]domain.GovernanceGate, error) {
	query := `SELECT id, name, decision, artifacts FROM governance_gates WHERE project_id = ? ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("query gates: %w", err)
	}
	defer rows.Close()

	var gates []domain.GovernanceGate
	for rows.Next() {
		var gate domain.GovernanceGate
		var decision, artifacts string
		if err := rows.Scan(&gate.ID, &gate.Name, &decision, &artifacts); err != nil {
			return nil, fmt.Errorf("scan gate: %w", err)
		}
		gate.Decision = domain.GateDecision(decision)
		if err := json.Unmarshal([]byte(artifacts), &gate.RequiredArtifacts); err != nil {
			return nil, fmt.Errorf("unmarshal artifacts: %w", err)
		}
		gates = append(gates, gate)
	}
	return gates, rows.Err()
}

func (s *governanceStore) AddControls(ctx context.Context, projectID string, controls []domain.ControlCheck) error {
	if len(controls) == 0 {
		return nil
	}

	query := `INSERT INTO control_checks (id, project_id, name, result) VALUES (?, ?, ?, ?)`
	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, control := range controls {
		if _, err := stmt.ExecContext(ctx, control.ID, projectID, control.Name, string(control.Result)); err != nil {
			return fmt.Errorf("insert control: %w", err)
		}
	}
	return nil
}

func (s *governanceStore) ListControls(ctx context.Context, projectID string) ([]domain.ControlCheck, error) {
	query := `SELECT id, name, result FROM control_checks WHERE project_id = ? ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("query controls: %w", err)
	}
	defer rows.Close()

	var controls []domain.ControlCheck
	for rows.Next() {
		var control domain.ControlCheck
		var result string
		if err := rows.Scan(&control.ID, &control.Name, &result); err != nil {
			return nil, fmt.Errorf("scan control: %w", err)
		}
		control.Result = domain.ControlResult(result)
		controls = append(controls, control)
	}
	return controls, rows.Err()
}

func (s *governanceStore) AddExceptions(ctx context.Context, projectID string, exceptions []domain.RiskException) error {
	if len(exceptions) == 0 {
		return nil
	}

	query := `INSERT INTO risk_exceptions (id, project_id, risk_id, status, expires_at) VALUES (?, ?, ?, ?, ?)`
	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, ex := range exceptions {
		if _, err := stmt.ExecContext(ctx, ex.ID, projectID, ex.RiskID, string(ex.Status), ex.ExpiresAt); err != nil {
			return fmt.Errorf("insert exception: %w", err)
		}
	}
	return nil
}

func (s *governanceStore) ListExceptions(ctx context.Context, projectID string) ([]domain.RiskException, error) {
	query := `SELECT id, risk_id, status, expires_at FROM risk_exceptions WHERE project_id = ? ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("query exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []domain.RiskException
	for rows.Next() {
		var ex domain.RiskException
		var status string
		if err := rows.Scan(&ex.ID, &ex.RiskID, &status, &ex.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scan exception: %w", err)
		}
		ex.Status = domain.ExceptionStatus(status)
		exceptions = append(exceptions, ex)
	}
	return exceptions, rows.Err()
}
