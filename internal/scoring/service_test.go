package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
	"github.com/Ajauregui69/livo-backend/internal/repository"
)

type scoreDocs struct {
	processed map[uuid.UUID][]*ent.Document
}

func (d *scoreDocs) Create(context.Context, repository.CreateDocumentParams) (*ent.Document, error) {
	panic("not used")
}
func (d *scoreDocs) GetByID(context.Context, uuid.UUID) (*ent.Document, error) { panic("not used") }
func (d *scoreDocs) ListBySubject(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return nil, nil
}
func (d *scoreDocs) ListProcessedBySubject(_ context.Context, subjectID uuid.UUID) ([]*ent.Document, error) {
	return d.processed[subjectID], nil
}
func (d *scoreDocs) ClaimForProcessing(context.Context, uuid.UUID) error { return nil }
func (d *scoreDocs) MarkProcessed(context.Context, uuid.UUID, map[string]string, string) error {
	return nil
}
func (d *scoreDocs) MarkFailed(context.Context, uuid.UUID, string) error { return nil }
func (d *scoreDocs) SetStatus(context.Context, uuid.UUID, constants.DocumentStatus) error {
	return nil
}
func (d *scoreDocs) Delete(context.Context, uuid.UUID) error { return nil }

type scoreFields struct {
	fields map[string]string
}

func (f *scoreFields) ReplaceForDocument(context.Context, uuid.UUID, []extractor.FieldValue) error {
	return nil
}
func (f *scoreFields) ListByDocument(context.Context, uuid.UUID) ([]*ent.ExtractedField, error) {
	return nil, nil
}
func (f *scoreFields) GetByName(context.Context, uuid.UUID, string) (*ent.ExtractedField, error) {
	return nil, common.WrapError(common.ErrNotFound, "extracted field not found")
}
func (f *scoreFields) SetReviewedValue(context.Context, uuid.UUID, string, bool) error { return nil }
func (f *scoreFields) CreateManual(context.Context, uuid.UUID, string, string, string) (*ent.ExtractedField, error) {
	return nil, nil
}
func (f *scoreFields) EffectiveForSubject(context.Context, uuid.UUID) (map[string]string, error) {
	return f.fields, nil
}

type scoreStore struct {
	active  *ent.CreditScore
	rotated int
	updated int
}

func (s *scoreStore) ActiveForSubject(context.Context, uuid.UUID) (*ent.CreditScore, error) {
	if s.active == nil {
		return nil, common.WrapError(common.ErrNotFound, "no active score for subject")
	}
	return s.active, nil
}

func (s *scoreStore) apply(rec repository.ScoreRecord, id uuid.UUID) *ent.CreditScore {
	s.active = &ent.CreditScore{
		ID:         id,
		SubjectID:  rec.SubjectID,
		Score:      rec.Score,
		RiskTier:   rec.RiskTier,
		Active:     true,
		ComputedAt: rec.ComputedAt,
		ExpiresAt:  rec.ExpiresAt,
	}
	return s.active
}

func (s *scoreStore) UpdateInPlace(_ context.Context, id uuid.UUID, rec repository.ScoreRecord) (*ent.CreditScore, error) {
	s.updated++
	return s.apply(rec, id), nil
}

func (s *scoreStore) Rotate(_ context.Context, rec repository.ScoreRecord) (*ent.CreditScore, error) {
	s.rotated++
	return s.apply(rec, uuid.New()), nil
}

func (s *scoreStore) Expire(context.Context, uuid.UUID) error {
	if s.active == nil {
		return common.WrapError(common.ErrNotFound, "no active score for subject")
	}
	s.active = nil
	return nil
}

func (s *scoreStore) History(context.Context, uuid.UUID) ([]*ent.CreditScore, error) {
	return nil, nil
}

func newScoringService(subjectID uuid.UUID, fields map[string]string) (*Service, *scoreStore) {
	docs := &scoreDocs{processed: map[uuid.UUID][]*ent.Document{
		subjectID: {{ID: uuid.New(), SubjectID: subjectID, Status: string(constants.DocStatusProcessed)}},
	}}
	store := &scoreStore{}
	svc := NewService(docs, &scoreFields{fields: fields}, store, 30*24*time.Hour, nil)
	return svc, store
}

func TestScoreRequiresProcessedDocuments(t *testing.T) {
	svc := NewService(&scoreDocs{processed: map[uuid.UUID][]*ent.Document{}}, &scoreFields{}, &scoreStore{}, 0, nil)

	_, err := svc.Score(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrScoringInput))
}

func TestScoreRotatesWhenNoneActive(t *testing.T) {
	subjectID := uuid.New()
	svc, store := newScoringService(subjectID, map[string]string{constants.FieldMonthlyIncome: "20000"})

	score, err := svc.Score(context.Background(), subjectID)
	require.NoError(t, err)
	assert.Equal(t, 1, store.rotated)
	assert.Equal(t, 0, store.updated)
	assert.True(t, score.Active)
}

func TestFreshScoreUpdatedInPlace(t *testing.T) {
	subjectID := uuid.New()
	svc, store := newScoringService(subjectID, map[string]string{constants.FieldMonthlyIncome: "20000"})

	first, err := svc.Score(context.Background(), subjectID)
	require.NoError(t, err)

	second, err := svc.Score(context.Background(), subjectID)
	require.NoError(t, err)

	assert.Equal(t, 1, store.rotated, "second computation must not open a new row")
	assert.Equal(t, 1, store.updated)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Score, second.Score, "rescoring identical inputs must be idempotent")
}

func TestStaleScoreRotated(t *testing.T) {
	subjectID := uuid.New()
	svc, store := newScoringService(subjectID, map[string]string{constants.FieldMonthlyIncome: "20000"})

	_, err := svc.Score(context.Background(), subjectID)
	require.NoError(t, err)

	// Age the active row beyond the freshness window.
	store.active.ComputedAt = time.Now().Add(-31 * 24 * time.Hour)

	_, err = svc.Score(context.Background(), subjectID)
	require.NoError(t, err)
	assert.Equal(t, 2, store.rotated)
	assert.Equal(t, 0, store.updated)
}

func TestExpiredScoreTreatedAsAbsent(t *testing.T) {
	subjectID := uuid.New()
	svc, store := newScoringService(subjectID, map[string]string{constants.FieldMonthlyIncome: "20000"})

	_, err := svc.Score(context.Background(), subjectID)
	require.NoError(t, err)

	store.active.ExpiresAt = time.Now().Add(-time.Hour)
	_, err = svc.Active(context.Background(), subjectID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
