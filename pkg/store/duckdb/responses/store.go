package responses

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// Store persists survey responses. Reads resolve latest-wins per question
// in SQL so callers always see at most one response per question.
type Store interface {
	Add(ctx context.Context, projectID string, records []domain.AssessmentResponse) error
	GetLatest(ctx context.Context, projectID string) ([]domain.AssessmentResponse, error)
}

type responseStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &responseStore{db: db}, nil
}

func (s *responseStore) Add(ctx context.Context, projectID string, records []domain.AssessmentResponse) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO assessment_responses (
			id, project_id, question_id, value, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		value, err := json.Marshal(record.Value)
		if err != nil {
			return fmt.Errorf("marshal response value: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			record.ID,
			projectID,
			record.QuestionID,
			string(value),
			record.CreatedAt,
			record.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert response: %w", err)
		}
	}

	return nil
}

func (s *responseStore) GetLatest(ctx context.Context, projectID string) ([]domain.AssessmentResponse, error) {
	query := `
		SELECT id, question_id, value, created_at, updated_at
		FROM assessment_responses
		WHERE project_id = ?
		QUALIFY ROW_NUMBER() OVER (PARTITION BY question_id ORDER BY updated_at DESC) = 1
		ORDER BY question_id
	`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	var records []domain.AssessmentResponse
	for rows.Next() {
		var record domain.AssessmentResponse
		var rawValue string
		record.ProjectID = projectID
		if err := rows.Scan(&record.ID, &record.QuestionID, &rawValue, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		if err := json.Unmarshal([]byte(rawValue), &record.Value); err != nil {
			return nil, fmt.Errorf("unmarshal response value: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
