package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/gen/ent/documentreview"
	"github.com/Ajauregui69/livo-backend/internal/common"
)

type CreateReviewParams struct {
	DocumentID      uuid.UUID
	ConfidenceScore *float64
	ExtractionNotes string
	AutoExtracted   map[string]string
}

type ReviewRepository interface {
	Create(ctx context.Context, p CreateReviewParams) (*ent.DocumentReview, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentReview, error)
	ListPending(ctx context.Context, limit int) ([]*ent.DocumentReview, error)
	OpenForDocument(ctx context.Context, documentID uuid.UUID) (*ent.DocumentReview, error)

	// The transition methods guard on the current status inside the UPDATE so
	// two reviewers racing on one item cannot both win.
	Assign(ctx context.Context, id, reviewerID uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, reviewedFields map[string]string, corrections map[string]bool, notes string) error
	Skip(ctx context.Context, id uuid.UUID, notes string) error
}

type reviewRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReviewRepository(entc *ent.Client, log *slog.Logger) ReviewRepository {
	return &reviewRepo{ent: entc, log: log}
}

func (r *reviewRepo) Create(ctx context.Context, p CreateReviewParams) (*ent.DocumentReview, error) {
	// One open review per document at a time.
	open, err := r.ent.DocumentReview.
		Query().
		Where(
			documentreview.DocumentID(p.DocumentID),
			documentreview.StatusIn(
				string(constants.ReviewStatusPending),
				string(constants.ReviewStatusInReview),
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to check open reviews")
	}
	if open {
		return nil, common.WrapError(common.ErrConflict, "document already has an open review")
	}

	create := r.ent.DocumentReview.
		Create().
		SetDocumentID(p.DocumentID).
		SetStatus(string(constants.ReviewStatusPending)).
		SetExtractionNotes(p.ExtractionNotes)
	if p.ConfidenceScore != nil {
		create.SetConfidenceScore(*p.ConfidenceScore)
	}
	if p.AutoExtracted != nil {
		create.SetAutoExtracted(p.AutoExtracted)
	}
	review, err := create.Save(ctx)
	if err != nil {
		r.log.Error("review create failed", "document_id", p.DocumentID, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to create review")
	}
	r.log.Info("review opened", "review_id", review.ID, "document_id", p.DocumentID)
	return review, nil
}

func (r *reviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentReview, error) {
	review, err := r.ent.DocumentReview.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "review not found")
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to load review")
	}
	return review, nil
}

func (r *reviewRepo) ListPending(ctx context.Context, limit int) ([]*ent.DocumentReview, error) {
	q := r.ent.DocumentReview.
		Query().
		Where(documentreview.Status(string(constants.ReviewStatusPending))).
		Order(ent.Asc(documentreview.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	out, err := q.All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to list pending reviews")
	}
	return out, nil
}

func (r *reviewRepo) OpenForDocument(ctx context.Context, documentID uuid.UUID) (*ent.DocumentReview, error) {
	review, err := r.ent.DocumentReview.
		Query().
		Where(
			documentreview.DocumentID(documentID),
			documentreview.StatusIn(
				string(constants.ReviewStatusPending),
				string(constants.ReviewStatusInReview),
			),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "document has no open review")
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to load open review")
	}
	return review, nil
}

func (r *reviewRepo) Assign(ctx context.Context, id, reviewerID uuid.UUID) error {
	n, err := r.ent.DocumentReview.
		Update().
		Where(
			documentreview.ID(id),
			documentreview.Status(string(constants.ReviewStatusPending)),
		).
		SetStatus(string(constants.ReviewStatusInReview)).
		SetReviewerID(reviewerID).
		SetAssignedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("review assign failed", "review_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to assign review")
	}
	if n == 0 {
		return common.WrapError(common.ErrReviewState, "review is not pending")
	}
	r.log.Info("review assigned", "review_id", id, "reviewer_id", reviewerID)
	return nil
}

func (r *reviewRepo) Complete(ctx context.Context, id uuid.UUID, reviewedFields map[string]string, corrections map[string]bool, notes string) error {
	upd := r.ent.DocumentReview.
		Update().
		Where(
			documentreview.ID(id),
			documentreview.Status(string(constants.ReviewStatusInReview)),
		).
		SetStatus(string(constants.ReviewStatusCompleted)).
		SetReviewedAt(time.Now())
	if reviewedFields != nil {
		upd.SetReviewedFields(reviewedFields)
	}
	if corrections != nil {
		upd.SetCorrections(corrections)
	}
	if notes != "" {
		upd.SetExtractionNotes(notes)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("review complete failed", "review_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to complete review")
	}
	if n == 0 {
		return common.WrapError(common.ErrReviewState, "review is not in review")
	}
	r.log.Info("review completed", "review_id", id, "fields", len(reviewedFields))
	return nil
}

func (r *reviewRepo) Skip(ctx context.Context, id uuid.UUID, notes string) error {
	upd := r.ent.DocumentReview.
		Update().
		Where(
			documentreview.ID(id),
			documentreview.StatusIn(
				string(constants.ReviewStatusPending),
				string(constants.ReviewStatusInReview),
			),
		).
		SetStatus(string(constants.ReviewStatusSkipped)).
		SetReviewedAt(time.Now())
	if notes != "" {
		upd.SetExtractionNotes(notes)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("review skip failed", "review_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to skip review")
	}
	if n == 0 {
		return common.WrapError(common.ErrReviewState, "review is already closed")
	}
	r.log.Info("review skipped", "review_id", id)
	return nil
}
