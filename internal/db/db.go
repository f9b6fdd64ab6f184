// Package db provides PostgreSQL storage for analysis results. Results are
// stored as opaque JSON blobs keyed by user identity; the analysis core
// itself never touches the database.
package db

import (
	"context"
	"encoding/json"
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

// SaveAnalysis stores one analysis run for a user. The parsed resume,
// analysis, and rubric are stored as JSON; contentHash identifies the source
// text so re-analyses of the same document can be correlated.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, contentHash string, parsed, analysis, rubric any) (uuid.UUID, error) {
	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	rubricJSON, err := json.Marshal(rubric)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal rubric: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, content_hash, parsed, analysis, rubric)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, contentHash, parsedJSON, analysisJSON, rubricJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves one stored analysis by ID. Returns nil when the ID
// does not exist.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, content_hash, parsed, analysis, rubric, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.ContentHash, &a.Parsed, &a.Analysis, &a.Rubric, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// ListAnalyses retrieves a user's recent analyses, newest first, without the
// JSON payloads.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, content_hash, (analysis->>'overall_score')::int, analysis->>'rating', created_at
		 FROM analyses WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.ContentHash, &s.OverallScore, &s.Rating, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteAnalysis removes one stored analysis.
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
