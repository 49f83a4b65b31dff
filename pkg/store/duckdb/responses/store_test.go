package responses

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseStore_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStore(db)
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO assessment_responses")).
		ExpectExec().
		WithArgs("resp1", "pilot-7", "sec_q1", `"yes"`, created, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Add(context.Background(), "pilot-7", []domain.AssessmentResponse{
		{ID: "resp1", QuestionID: "sec_q1", Value: "yes", CreatedAt: created, UpdatedAt: created},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseStore_GetLatest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStore(db)
	require.NoError(t, err)

	updated := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "question_id", "value", "created_at", "updated_at"}).
		AddRow("resp2", "sec_q1", `"no"`, updated, updated).
		AddRow("resp3", "sec_q2", `["sso","mfa"]`, updated, updated)

	mock.ExpectQuery(regexp.QuoteMeta("FROM assessment_responses")).
		WithArgs("pilot-7").
		WillReturnRows(rows)

	records, err := store.GetLatest(context.Background(), "pilot-7")
	assert.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "pilot-7", records[0].ProjectID)
	assert.Equal(t, "no", records[0].Value)
	assert.Equal(t, []any{"sso", "mfa"}, records[1].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}
