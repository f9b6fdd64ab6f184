package db

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is a stored analysis run. The JSON payloads are kept opaque; the
// database never interprets them beyond the summary projection.
type Analysis struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ContentHash string    `json:"content_hash"`
	Parsed      []byte    `json:"parsed"`
	Analysis    []byte    `json:"analysis"`
	Rubric      []byte    `json:"rubric"`
	CreatedAt   time.Time `json:"created_at"`
}

// AnalysisSummary is a lightweight view of a stored analysis for listing.
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	ContentHash  string    `json:"content_hash"`
	OverallScore int       `json:"overall_score"`
	Rating       string    `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}
