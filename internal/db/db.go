// Package db provides PostgreSQL session and artifact storage.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

	// Verify connection
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

// EnsureSchema creates the sessions and artifacts tables when they do
// not exist yet. The tool targets a local single-user database, so
// schema setup happens in-process instead of via a migration step.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			status TEXT NOT NULL DEFAULT 'running',
			resume_name TEXT,
			company_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS artifacts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			content JSONB,
			text_content TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (session_id, kind)
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// CreateSession creates a new session record and returns its ID
func (db *DB) CreateSession(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sessions (status) VALUES ($1) RETURNING id`,
		StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// CompleteSession marks a session as finished with the given status
func (db *DB) CompleteSession(ctx context.Context, sessionID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sessions SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	return nil
}

// SetSessionNames records the parsed résumé owner and the scraped
// company on the session row so listings stay cheap.
func (db *DB) SetSessionNames(ctx context.Context, sessionID uuid.UUID, resumeName, companyName string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sessions SET
			resume_name = COALESCE(NULLIF($1, ''), resume_name),
			company_name = COALESCE(NULLIF($2, ''), company_name)
		 WHERE id = $3`,
		resumeName, companyName, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to set session names: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID. Returns nil when not found.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	var s Session
	var resumeName, companyName *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, status, resume_name, company_name, created_at, completed_at
		 FROM sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.Status, &resumeName, &companyName, &s.CreatedAt, &s.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if resumeName != nil {
		s.ResumeName = *resumeName
	}
	if companyName != nil {
		s.CompanyName = *companyName
	}
	return &s, nil
}

// ListSessions retrieves recent sessions, newest first
func (db *DB) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, status, resume_name, company_name, created_at, completed_at
		 FROM sessions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var resumeName, companyName *string
		if err := rows.Scan(&s.ID, &s.Status, &resumeName, &companyName, &s.CreatedAt, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if resumeName != nil {
			s.ResumeName = *resumeName
		}
		if companyName != nil {
			s.CompanyName = *companyName
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
