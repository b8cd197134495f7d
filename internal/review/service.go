// Package review drives the human-review state machine for low-confidence
// extractions. Machine output stays immutable; human corrections land in the
// reviewed_value overlay and the document snapshot.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/repository"
)

type Service struct {
	reviews   repository.ReviewRepository
	documents repository.DocumentRepository
	fields    repository.FieldRepository
	log       *slog.Logger
}

func NewService(reviews repository.ReviewRepository, documents repository.DocumentRepository, fields repository.FieldRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reviews: reviews, documents: documents, fields: fields, log: logger}
}

// Open queues a document for human review.
func (s *Service) Open(ctx context.Context, documentID uuid.UUID, confidence *float64, notes string, autoExtracted map[string]string) (*ent.DocumentReview, error) {
	if _, err := s.documents.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	return s.reviews.Create(ctx, repository.CreateReviewParams{
		DocumentID:      documentID,
		ConfidenceScore: confidence,
		ExtractionNotes: notes,
		AutoExtracted:   autoExtracted,
	})
}

// Assign moves a pending review to in_review. Reassigning an item someone
// already holds is rejected.
func (s *Service) Assign(ctx context.Context, reviewID, reviewerID uuid.UUID) error {
	if reviewerID == uuid.Nil {
		return common.WrapError(common.ErrInvalidInput, "reviewer id is required")
	}
	return s.reviews.Assign(ctx, reviewID, reviewerID)
}

// Complete submits the reviewer's corrections. Each submitted value is written
// to the matching extracted field (created when no machine counterpart
// exists), the corrected flag is set only where the human value differs from
// the machine value, and the parent document becomes processed with the
// reviewed snapshot.
func (s *Service) Complete(ctx context.Context, reviewID uuid.UUID, reviewedFields map[string]string, notes string) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	// Status check up front so an invalid transition mutates nothing.
	if rv.Status != string(constants.ReviewStatusInReview) {
		return common.WrapError(common.ErrReviewState,
			fmt.Sprintf("cannot complete a review in status %q", rv.Status))
	}
	if len(reviewedFields) == 0 {
		return common.WrapError(common.ErrInvalidInput, "completion requires at least one reviewed field")
	}

	corrections := make(map[string]bool, len(reviewedFields))
	for name, value := range reviewedFields {
		existing, err := s.fields.GetByName(ctx, rv.DocumentID, name)
		if errors.Is(err, common.ErrNotFound) {
			if _, err := s.fields.CreateManual(ctx, rv.DocumentID, name, guessFieldType(name), value); err != nil {
				return err
			}
			corrections[name] = true
			continue
		}
		if err != nil {
			return err
		}
		machine := ""
		if existing.ExtractedValue != nil {
			machine = *existing.ExtractedValue
		}
		corrected := value != machine
		if err := s.fields.SetReviewedValue(ctx, existing.ID, value, corrected); err != nil {
			return err
		}
		corrections[name] = corrected
	}

	if err := s.reviews.Complete(ctx, reviewID, reviewedFields, corrections, notes); err != nil {
		return err
	}

	// Snapshot replaced by the reviewed values; untouched machine fields keep
	// their extracted values.
	snapshot := make(map[string]string)
	for k, v := range rv.AutoExtracted {
		snapshot[k] = v
	}
	for k, v := range reviewedFields {
		snapshot[k] = v
	}
	if err := s.documents.MarkProcessed(ctx, rv.DocumentID, snapshot, "completed by human review"); err != nil {
		return err
	}
	s.log.Info("review completed", "review_id", reviewID, "document_id", rv.DocumentID, "corrections", countTrue(corrections))
	return nil
}

// Skip closes the review without touching the document.
func (s *Service) Skip(ctx context.Context, reviewID uuid.UUID, notes string) error {
	return s.reviews.Skip(ctx, reviewID, notes)
}

func (s *Service) Get(ctx context.Context, reviewID uuid.UUID) (*ent.DocumentReview, error) {
	return s.reviews.GetByID(ctx, reviewID)
}

func (s *Service) ListPending(ctx context.Context, limit int) ([]*ent.DocumentReview, error) {
	return s.reviews.ListPending(ctx, limit)
}

// OpenForDocument returns the document's non-terminal review, if any.
func (s *Service) OpenForDocument(ctx context.Context, documentID uuid.UUID) (*ent.DocumentReview, error) {
	return s.reviews.OpenForDocument(ctx, documentID)
}

func countTrue(m map[string]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// guessFieldType classifies manually added fields by naming convention.
func guessFieldType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "income"),
		strings.Contains(lower, "balance"),
		strings.Contains(lower, "payment"),
		strings.Contains(lower, "salary"):
		return string(constants.FieldCurrency)
	case strings.Contains(lower, "date"):
		return string(constants.FieldDate)
	case strings.Contains(lower, "count"):
		return string(constants.FieldNumber)
	default:
		return string(constants.FieldText)
	}
}
