package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/biasbuster/api/internal/models"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// AnalysisStore owns the analyses and feedbacks tables. Every read and
// write is scoped to the owning user.
type AnalysisStore struct {
	db *sqlx.DB
}

func NewAnalysisStore(db *sqlx.DB) *AnalysisStore {
	return &AnalysisStore{db: db}
}

// Create persists a new analysis owned by ownerID. Result and sources
// are stored as serialized JSON text and returned verbatim on reads.
func (s *AnalysisStore) Create(ctx context.Context, ownerID, sourceText string, result, sources json.RawMessage) (*models.Analysis, error) {
	a := &models.Analysis{
		ID:         uuid.NewString(),
		UserID:     ownerID,
		SourceText: sourceText,
		Result:     result,
		Sources:    sources,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO analyses (id, user_id, source_text, result, sources, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), a.ID, a.UserID, a.SourceText, string(a.Result), string(a.Sources), a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert analysis: %w", err)
	}

	return a, nil
}

// ListByOwner returns the owner's analyses in insertion order, skipping
// offset and returning at most limit. Limits outside (0, 100] fall back
// to the default of 10 or the cap of 100; a negative offset means zero.
func (s *AnalysisStore) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]models.Analysis, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	analyses := []models.Analysis{}
	err := s.db.SelectContext(ctx, &analyses, s.db.Rebind(`
		SELECT id, user_id, source_text, result, sources, created_at
		FROM analyses
		WHERE user_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`), ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	return analyses, nil
}

// GetOwned returns the analysis only if it exists and belongs to
// ownerID. A missing record and one owned by another user both yield
// ErrNotFound so nothing leaks about other users' data.
func (s *AnalysisStore) GetOwned(ctx context.Context, id, ownerID string) (*models.Analysis, error) {
	var a models.Analysis
	err := s.db.GetContext(ctx, &a, s.db.Rebind(`
		SELECT id, user_id, source_text, result, sources, created_at
		FROM analyses
		WHERE id = ? AND user_id = ?
	`), id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return &a, nil
}

// CreateFeedback records a vote against an analysis the voter owns.
// Nothing prevents the same user voting twice on the same analysis.
func (s *AnalysisStore) CreateFeedback(ctx context.Context, ownerID, analysisID, vote string) (*models.Feedback, error) {
	if _, err := s.GetOwned(ctx, analysisID, ownerID); err != nil {
		return nil, err
	}

	f := &models.Feedback{
		ID:         uuid.NewString(),
		AnalysisID: analysisID,
		UserID:     ownerID,
		Vote:       vote,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO feedbacks (id, analysis_id, user_id, vote, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), f.ID, f.AnalysisID, f.UserID, f.Vote, f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	return f, nil
}
