package models

import (
	"encoding/json"
	"time"
)

// Analysis stores a bias-analysis result submitted by a user. Result and
// Sources are opaque JSON supplied by the caller and persisted verbatim.
// Records are immutable once created.
type Analysis struct {
	ID         string          `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"user_id"`
	SourceText string          `db:"source_text" json:"source_text"`
	Result     json.RawMessage `db:"result" json:"result"`
	Sources    json.RawMessage `db:"sources" json:"sources"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// Feedback is a vote attached to an analysis by its owner. Documented
// vote values are "up" and "down".
type Feedback struct {
	ID         string    `db:"id" json:"id"`
	AnalysisID string    `db:"analysis_id" json:"analysis_id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Vote       string    `db:"vote" json:"vote"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
