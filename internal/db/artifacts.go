package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveArtifact stores a JSON artifact for a session, replacing any
// earlier artifact of the same kind.
func (db *DB) SaveArtifact(ctx context.Context, sessionID uuid.UUID, kind string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO artifacts (session_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, kind) DO UPDATE SET content = $3, text_content = NULL, created_at = NOW()`,
		sessionID, kind, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", kind, err)
	}
	return nil
}

// SaveTextArtifact stores a text artifact for a session, replacing any
// earlier artifact of the same kind.
func (db *DB) SaveTextArtifact(ctx context.Context, sessionID uuid.UUID, kind, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO artifacts (session_id, kind, text_content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, kind) DO UPDATE SET text_content = $3, content = NULL, created_at = NOW()`,
		sessionID, kind, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save text artifact %s: %w", kind, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by session ID and kind.
// Returns nil when not found.
func (db *DB) GetArtifact(ctx context.Context, sessionID uuid.UUID, kind string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM artifacts WHERE session_id = $1 AND kind = $2`,
		sessionID, kind,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", kind, err)
	}
	return content, nil
}

// GetTextArtifact retrieves a text artifact by session ID and kind.
// Returns the empty string when not found.
func (db *DB) GetTextArtifact(ctx context.Context, sessionID uuid.UUID, kind string) (string, error) {
	var text string
	err := db.pool.QueryRow(ctx,
		`SELECT text_content FROM artifacts WHERE session_id = $1 AND kind = $2`,
		sessionID, kind,
	).Scan(&text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get text artifact %s: %w", kind, err)
	}
	return text, nil
}

// ListArtifacts retrieves all artifacts for a session.
func (db *DB) ListArtifacts(ctx context.Context, sessionID uuid.UUID) ([]Artifact, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, kind, content, text_content, created_at
		 FROM artifacts WHERE session_id = $1 ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []Artifact
	for rows.Next() {
		var a Artifact
		var contentBytes []byte
		var textContent *string
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Kind, &contentBytes, &textContent, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		if len(contentBytes) > 0 {
			var content any
			if err := json.Unmarshal(contentBytes, &content); err == nil {
				a.Content = content
			}
		}
		if textContent != nil {
			a.TextContent = *textContent
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
