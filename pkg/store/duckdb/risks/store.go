package risks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// Store persists risk classifications per project. Tier is derived at read
// time by the risk engine and is not stored.
type Store interface {
	Add(ctx context.Context, projectID string, records []domain.RiskClassification) error
	List(ctx context.Context, projectID string) ([]domain.RiskClassification, error)
}

type riskStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &riskStore{db: db}, nil
}

func (s *riskStore) Add(ctx context.Context, projectID string, records []domain.RiskClassification) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO risk_classifications (
			id, project_id, category, description, likelihood, impact, mitigation, owner, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.ID,
			projectID,
			string(record.Category),
			record.Description,
			record.Likelihood,
			record.Impact,
			record.Mitigation,
			record.Owner,
			string(record.Status),
		)
		if err != nil {
			return fmt.Errorf("insert risk: %w", err)
		}
	}

	return nil
}

func (s *riskStore) List(ctx context.Context, projectID string) ([]domain.RiskClassification, error) {
	query := `
		SELECT id, category, description, likelihood, impact, mitigation, owner, status
		FROM risk_classifications
		WHERE project_id = ?
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("query risks: %w", err)
	}
	defer rows.Close()

	var records []domain.RiskClassification
	for rows.Next() {
		var record domain.RiskClassification
		var category, status string
		if err := rows.Scan(
			&record.ID, &category, &record.Description,
			&record.Likelihood, &record.Impact,
			&record.Mitigation, &record.Owner, &status,
		); err != nil {
			return nil, fmt.Errorf("scan risk: %w", err)
		}
		record.Category = domain.RiskCategory(category)
		record.Status = domain.RiskStatus(status)
		records = append(records, record)
	}
	return records, rows.Err()
}
