package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists artifacts in a PostgreSQL table keyed by
// (job_id, name). The expected schema:
//
//	CREATE TABLE artifacts (
//	    id           UUID PRIMARY KEY,
//	    job_id       TEXT NOT NULL,
//	    name         TEXT NOT NULL,
//	    content      TEXT NOT NULL,
//	    content_type TEXT NOT NULL,
//	    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    UNIQUE (job_id, name)
//	)
type PostgresStore struct {
	pool      *pgxpool.Pool
	schemaDir string
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL, schemaDir string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &StorageError{Message: "failed to connect to database", Cause: err}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &StorageError{Message: "failed to ping database", Cause: err}
	}

	if schemaDir == "" {
		schemaDir = ResolveSchemaDir()
	}
	return &PostgresStore{pool: pool, schemaDir: schemaDir}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ReadJSON loads a JSON artifact into out.
func (s *PostgresStore) ReadJSON(ctx context.Context, jobID, name string, out any) error {
	var content string
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM artifacts WHERE job_id = $1 AND name = $2 AND content_type = 'json'`,
		jobID, name,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &MissingArtifactError{JobID: jobID, Name: name}
		}
		return &StorageError{Message: fmt.Sprintf("failed to load artifact %s", name), Cause: err}
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &StorageError{Message: fmt.Sprintf("failed to unmarshal artifact %s", name), Cause: err}
	}
	return nil
}

// WriteJSON validates and upserts a JSON artifact.
func (s *PostgresStore) WriteJSON(ctx context.Context, jobID, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Message: fmt.Sprintf("failed to marshal artifact %s", name), Cause: err}
	}

	if err := validateArtifact(s.schemaDir, name, data); err != nil {
		return err
	}

	return s.upsert(ctx, jobID, name, string(data), "json")
}

// ReadText loads a text artifact.
func (s *PostgresStore) ReadText(ctx context.Context, jobID, name string) (string, error) {
	var content string
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM artifacts WHERE job_id = $1 AND name = $2 AND content_type = 'text'`,
		jobID, name,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &MissingArtifactError{JobID: jobID, Name: name}
		}
		return "", &StorageError{Message: fmt.Sprintf("failed to load artifact %s", name), Cause: err}
	}
	return content, nil
}

// WriteText upserts a text artifact and returns its row reference.
func (s *PostgresStore) WriteText(ctx context.Context, jobID, name, content string) (string, error) {
	if err := s.upsert(ctx, jobID, name, content, "text"); err != nil {
		return "", err
	}
	return fmt.Sprintf("artifacts/%s/%s", jobID, name), nil
}

func (s *PostgresStore) upsert(ctx context.Context, jobID, name, content, contentType string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO artifacts (id, job_id, name, content, content_type)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (job_id, name) DO UPDATE SET content = $4, content_type = $5, created_at = NOW()`,
		uuid.New(), jobID, name, content, contentType,
	)
	if err != nil {
		return &StorageError{Message: fmt.Sprintf("failed to save artifact %s", name), Cause: err}
	}
	return nil
}
