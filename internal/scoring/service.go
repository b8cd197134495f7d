package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/repository"
)

// Service computes and persists subject scores. At most one active score
// exists per subject; recomputation inside the freshness window refreshes the
// active row in place instead of rotating it.
type Service struct {
	documents repository.DocumentRepository
	fields    repository.FieldRepository
	scores    repository.ScoreRepository

	freshness time.Duration
	validity  time.Duration
	log       *slog.Logger
}

const defaultValidity = 90 * 24 * time.Hour

func NewService(
	documents repository.DocumentRepository,
	fields repository.FieldRepository,
	scores repository.ScoreRepository,
	freshness time.Duration,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if freshness <= 0 {
		freshness = 30 * 24 * time.Hour
	}
	return &Service{
		documents: documents,
		fields:    fields,
		scores:    scores,
		freshness: freshness,
		validity:  defaultValidity,
		log:       logger,
	}
}

// Score recomputes the subject's score from every processed document and
// persists it under the one-active-score policy.
func (s *Service) Score(ctx context.Context, subjectID uuid.UUID) (*ent.CreditScore, error) {
	docs, err := s.documents.ListProcessedBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, common.WrapError(common.ErrScoringInput, "subject has no processed documents")
	}

	fields, err := s.fields.EffectiveForSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := Compute(Inputs{Fields: fields, Now: now})
	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to encode score breakdown")
	}

	rec := repository.ScoreRecord{
		SubjectID:              subjectID,
		Score:                  result.Score,
		RiskTier:               string(result.RiskTier),
		EstimatedMonthlyIncome: result.EstimatedMonthlyIncome,
		MaxLoan:                result.MaxLoan,
		SuggestedDownPayment:   result.SuggestedDownPayment,
		Recommendations:        result.Recommendations,
		Breakdown:              breakdown,
		ComputedAt:             now,
		ExpiresAt:              now.Add(s.validity),
	}

	active, err := s.scores.ActiveForSubject(ctx, subjectID)
	switch {
	case err == nil && s.fresh(active, now):
		s.log.Info("refreshing score in place", "subject_id", subjectID, "score", result.Score)
		return s.scores.UpdateInPlace(ctx, active.ID, rec)
	case err == nil || errors.Is(err, common.ErrNotFound):
		return s.scores.Rotate(ctx, rec)
	default:
		return nil, err
	}
}

// Active returns the subject's current score, treating an expired one as
// absent.
func (s *Service) Active(ctx context.Context, subjectID uuid.UUID) (*ent.CreditScore, error) {
	score, err := s.scores.ActiveForSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if time.Now().After(score.ExpiresAt) {
		return nil, common.WrapError(common.ErrNotFound, "active score has expired")
	}
	return score, nil
}

// Expire invalidates the subject's active score ahead of its expiry.
func (s *Service) Expire(ctx context.Context, subjectID uuid.UUID) error {
	return s.scores.Expire(ctx, subjectID)
}

func (s *Service) History(ctx context.Context, subjectID uuid.UUID) ([]*ent.CreditScore, error) {
	return s.scores.History(ctx, subjectID)
}

func (s *Service) fresh(score *ent.CreditScore, now time.Time) bool {
	return now.Sub(score.ComputedAt) < s.freshness && now.Before(score.ExpiresAt)
}
