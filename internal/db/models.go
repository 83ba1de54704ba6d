package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SaveModelArtifact stores a serialized classifier model under a name.
// Each save creates a new row; the newest row is the active model.
func (db *DB) SaveModelArtifact(ctx context.Context, name string, version int, payload []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO model_artifacts (name, version, payload) VALUES ($1, $2, $3)`,
		name, version, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save model artifact %s: %w", name, err)
	}
	return nil
}

// GetLatestModelArtifact returns the most recently saved model under name.
// Returns nil when no model has been saved.
func (db *DB) GetLatestModelArtifact(ctx context.Context, name string) (*ModelArtifact, error) {
	var artifact ModelArtifact
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, version, payload, created_at
		 FROM model_artifacts WHERE name = $1
		 ORDER BY created_at DESC LIMIT 1`,
		name,
	).Scan(&artifact.ID, &artifact.Name, &artifact.Version, &artifact.Payload, &artifact.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get model artifact %s: %w", name, err)
	}
	return &artifact, nil
}
