package db

import (
	"context"
	"fmt"
)

// schema holds the DDL for all tables. Statements are idempotent so Migrate
// is safe to run at every startup.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS analyses (
		id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		resume_source   TEXT NOT NULL,
		job_source      TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'running',
		overall_score   DOUBLE PRECISION,
		recommendation  TEXT,
		report          JSONB,
		error           TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at    TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS fetched_pages (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		url          TEXT NOT NULL UNIQUE,
		raw_html     TEXT,
		parsed_text  TEXT,
		http_status  INTEGER,
		fetch_error  TEXT,
		fetched_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at   TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS model_artifacts (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name        TEXT NOT NULL,
		version     INTEGER NOT NULL,
		payload     BYTEA NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS model_artifacts_name_idx ON model_artifacts (name, created_at DESC)`,
}

// Migrate creates any missing tables and indexes
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
