package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/gen/ent/creditscore"
	"github.com/Ajauregui69/livo-backend/internal/common"
)

type ScoreRecord struct {
	SubjectID              uuid.UUID
	Score                  int
	RiskTier               string
	EstimatedMonthlyIncome decimal.Decimal
	MaxLoan                decimal.Decimal
	SuggestedDownPayment   decimal.Decimal
	Recommendations        []string
	Breakdown              json.RawMessage
	ComputedAt             time.Time
	ExpiresAt              time.Time
}

type ScoreRepository interface {
	ActiveForSubject(ctx context.Context, subjectID uuid.UUID) (*ent.CreditScore, error)
	// UpdateInPlace refreshes an existing active score without opening a new
	// history row. Used while the previous computation is still fresh.
	UpdateInPlace(ctx context.Context, id uuid.UUID, rec ScoreRecord) (*ent.CreditScore, error)
	// Rotate deactivates any active score for the subject and inserts rec as
	// the new active one.
	Rotate(ctx context.Context, rec ScoreRecord) (*ent.CreditScore, error)
	Expire(ctx context.Context, subjectID uuid.UUID) error
	History(ctx context.Context, subjectID uuid.UUID) ([]*ent.CreditScore, error)
}

type scoreRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScoreRepository(entc *ent.Client, log *slog.Logger) ScoreRepository {
	return &scoreRepo{ent: entc, log: log}
}

func (r *scoreRepo) ActiveForSubject(ctx context.Context, subjectID uuid.UUID) (*ent.CreditScore, error) {
	score, err := r.ent.CreditScore.
		Query().
		Where(
			creditscore.SubjectID(subjectID),
			creditscore.Active(true),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "no active score for subject")
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to load active score")
	}
	return score, nil
}

func (r *scoreRepo) UpdateInPlace(ctx context.Context, id uuid.UUID, rec ScoreRecord) (*ent.CreditScore, error) {
	score, err := r.ent.CreditScore.
		UpdateOneID(id).
		SetScore(rec.Score).
		SetRiskTier(rec.RiskTier).
		SetEstimatedMonthlyIncome(rec.EstimatedMonthlyIncome).
		SetMaxLoan(rec.MaxLoan).
		SetSuggestedDownPayment(rec.SuggestedDownPayment).
		SetRecommendations(rec.Recommendations).
		SetBreakdown(rec.Breakdown).
		SetComputedAt(rec.ComputedAt).
		SetExpiresAt(rec.ExpiresAt).
		Save(ctx)
	if err != nil {
		r.log.Error("score in-place update failed", "score_id", id, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to refresh score")
	}
	r.log.Info("score refreshed", "score_id", id, "subject_id", rec.SubjectID, "score", rec.Score)
	return score, nil
}

func (r *scoreRepo) Rotate(ctx context.Context, rec ScoreRecord) (*ent.CreditScore, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to open transaction")
	}
	if _, err := tx.CreditScore.
		Update().
		Where(
			creditscore.SubjectID(rec.SubjectID),
			creditscore.Active(true),
		).
		SetActive(false).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, common.WrapError(common.ErrDatabase, "failed to deactivate previous score")
	}
	score, err := tx.CreditScore.
		Create().
		SetSubjectID(rec.SubjectID).
		SetScore(rec.Score).
		SetRiskTier(rec.RiskTier).
		SetEstimatedMonthlyIncome(rec.EstimatedMonthlyIncome).
		SetMaxLoan(rec.MaxLoan).
		SetSuggestedDownPayment(rec.SuggestedDownPayment).
		SetRecommendations(rec.Recommendations).
		SetBreakdown(rec.Breakdown).
		SetActive(true).
		SetComputedAt(rec.ComputedAt).
		SetExpiresAt(rec.ExpiresAt).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("score insert failed", "subject_id", rec.SubjectID, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to store score")
	}
	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to commit score")
	}
	r.log.Info("score rotated", "score_id", score.ID, "subject_id", rec.SubjectID, "score", rec.Score, "tier", rec.RiskTier)
	return score, nil
}

func (r *scoreRepo) Expire(ctx context.Context, subjectID uuid.UUID) error {
	n, err := r.ent.CreditScore.
		Update().
		Where(
			creditscore.SubjectID(subjectID),
			creditscore.Active(true),
		).
		SetActive(false).
		SetExpiresAt(time.Now()).
		Save(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, "failed to expire score")
	}
	if n == 0 {
		return common.WrapError(common.ErrNotFound, "no active score for subject")
	}
	r.log.Info("score expired", "subject_id", subjectID)
	return nil
}

func (r *scoreRepo) History(ctx context.Context, subjectID uuid.UUID) ([]*ent.CreditScore, error) {
	out, err := r.ent.CreditScore.
		Query().
		Where(creditscore.SubjectID(subjectID)).
		Order(ent.Desc(creditscore.FieldComputedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to load score history")
	}
	return out, nil
}
