package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const responsesSchema = `
	CREATE TABLE IF NOT EXISTS assessment_responses (
		id VARCHAR NOT NULL,
		project_id VARCHAR NOT NULL,
		question_id VARCHAR NOT NULL,
		value JSON,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		PRIMARY KEY (project_id, id)
	);
`

const risksSchema = `
	CREATE TABLE IF NOT EXISTS risk_classifications (
		id VARCHAR NOT NULL,
		project_id VARCHAR NOT NULL,
		category VARCHAR,
		description VARCHAR,
		likelihood INTEGER,
		impact INTEGER,
		mitigation VARCHAR,
		owner VARCHAR,
		status VARCHAR,
		PRIMARY KEY (project_id, id)
	);
`

const gatesSchema = `
	CREATE TABLE IF NOT EXISTS governance_gates (
		id VARCHAR NOT NULL,
		project_id VARCHAR NOT NULL,
		name VARCHAR,
		decision VARCHAR,
		artifacts JSON,
		PRIMARY KEY (project_id, id)
	);
`

const controlsSchema = `
	CREATE TABLE IF NOT EXISTS control_checks (
		id VARCHAR NOT NULL,
		project_id VARCHAR NOT NULL,
		name VARCHAR,
		result VARCHAR,
		PRIMARY KEY (project_id, id)
	);
`

const exceptionsSchema = `
	CREATE TABLE IF NOT EXISTS risk_exceptions (
		id VARCHAR NOT NULL,
		project_id VARCHAR NOT NULL,
		risk_id VARCHAR,
		status VARCHAR,
		expires_at TIMESTAMP,
		PRIMARY KEY (project_id, id)
	);
`

var bootQueries = []string{
	responsesSchema,
	risksSchema,
	gatesSchema,
	controlsSchema,
	exceptionsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return sql.OpenDB(c), nil
}
