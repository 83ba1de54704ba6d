// Package db provides PostgreSQL persistence for analysis runs, cached job
// postings, and trained classifier artifacts.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/candidate-fit/internal/types"
)

// Analysis run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateAnalysis records the start of an analysis run and returns its ID
func (db *DB) CreateAnalysis(ctx context.Context, resumeSource, jobSource string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (resume_source, job_source, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		resumeSource, jobSource,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create analysis: %w", err)
	}
	return id, nil
}

// CompleteAnalysis stores the finished report on an analysis run
func (db *DB) CompleteAnalysis(ctx context.Context, id uuid.UUID, report *types.AnalysisReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE analyses
		 SET status = 'completed', overall_score = $1, recommendation = $2,
		     report = $3, completed_at = NOW()
		 WHERE id = $4`,
		report.OverallScore, report.Recommendation, reportJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete analysis: %w", err)
	}
	return nil
}

// FailAnalysis marks an analysis run as failed with a reason
func (db *DB) FailAnalysis(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE analyses SET status = 'failed', error = $1, completed_at = NOW() WHERE id = $2`,
		reason, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark analysis failed: %w", err)
	}
	return nil
}

// GetAnalysis retrieves an analysis run by ID. Returns nil when absent.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRun, error) {
	var run AnalysisRun
	var reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_source, job_source, status, overall_score, recommendation,
		        report, error, created_at, completed_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.ResumeSource, &run.JobSource, &run.Status, &run.OverallScore,
		&run.Recommendation, &reportJSON, &run.Error, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if len(reportJSON) > 0 {
		var report types.AnalysisReport
		if err := json.Unmarshal(reportJSON, &report); err == nil {
			run.Report = &report
		}
	}

	return &run, nil
}

// AnalysisFilters holds optional filters for listing analysis runs
type AnalysisFilters struct {
	Status         string
	Recommendation string
	MinScore       float64
	Limit          int
}

// ListAnalyses retrieves recent analysis runs, newest first. The report
// payload is omitted from listings.
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisRun, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, resume_source, job_source, status, overall_score,
		       recommendation, error, created_at, completed_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Recommendation != "" {
		query += fmt.Sprintf(" AND recommendation ILIKE $%d", argNum)
		args = append(args, "%"+filters.Recommendation+"%")
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var runs []AnalysisRun
	for rows.Next() {
		var run AnalysisRun
		if err := rows.Scan(&run.ID, &run.ResumeSource, &run.JobSource, &run.Status,
			&run.OverallScore, &run.Recommendation, &run.Error, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteAnalysis deletes an analysis run
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
