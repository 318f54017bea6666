package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are applied in order on startup. Everything is
// IF NOT EXISTS so a restart against an existing database is a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                VARCHAR PRIMARY KEY,
		email             VARCHAR NOT NULL UNIQUE,
		first_name        VARCHAR,
		last_name         VARCHAR,
		profile_image_url VARCHAR,
		role              VARCHAR NOT NULL DEFAULT 'applicant',
		company_name      VARCHAR,
		company_website   VARCHAR,
		is_approved       BOOLEAN NOT NULL DEFAULT FALSE,
		phone             VARCHAR,
		location          VARCHAR,
		resume_url        VARCHAR,
		skills            TEXT[],
		experience        TEXT,
		education         TEXT,
		bio               TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id               UUID PRIMARY KEY,
		recruiter_id     VARCHAR NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title            VARCHAR NOT NULL,
		company_name     VARCHAR NOT NULL,
		company_logo     VARCHAR,
		location         VARCHAR NOT NULL,
		job_type         VARCHAR NOT NULL,
		experience_level VARCHAR NOT NULL,
		description      TEXT NOT NULL,
		requirements     TEXT[] NOT NULL,
		responsibilities TEXT[] NOT NULL,
		skills           TEXT[] NOT NULL,
		salary_min       INTEGER,
		salary_max       INTEGER,
		salary_currency  VARCHAR NOT NULL DEFAULT 'USD',
		is_active        BOOLEAN NOT NULL DEFAULT TRUE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id           UUID PRIMARY KEY,
		job_id       UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		applicant_id VARCHAR NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		resume_url   VARCHAR NOT NULL,
		cover_letter TEXT,
		status       VARCHAR NOT NULL DEFAULT 'Submitted',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT applications_job_applicant_unique UNIQUE (job_id, applicant_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_recruiter ON jobs (recruiter_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_active_created ON jobs (is_active, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job ON applications (job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications (applicant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_users_pending_recruiters ON users (role, is_approved)`,
}

// EnsureSchema creates the tables and indexes the repositories expect.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	log.Println("Database schema ensured")
	return nil
}
