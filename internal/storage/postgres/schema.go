package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS projects (
	id                BIGSERIAL PRIMARY KEY,
	guid              UUID NOT NULL UNIQUE,
	name              TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	creation_time     TIMESTAMPTZ NOT NULL DEFAULT now(),
	modification_time TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	// Deleting a project leaves its plans in place: project_id is cleared
	// and project_guid keeps the old reference.
	`CREATE TABLE IF NOT EXISTS plans (
	id                BIGSERIAL PRIMARY KEY,
	guid              UUID NOT NULL UNIQUE,
	project_id        BIGINT NULL REFERENCES projects(id) ON DELETE SET NULL,
	project_guid      UUID NOT NULL,
	name              TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	enabled           BOOLEAN NOT NULL DEFAULT FALSE,
	creation_time     TIMESTAMPTZ NOT NULL DEFAULT now(),
	modification_time TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS plans_project_guid_idx ON plans (project_guid)`,
}

// EnsureSchema creates the projects and plans tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
