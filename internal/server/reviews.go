package server

import (
	"context"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reviewsv1 "github.com/Ajauregui69/livo-backend/gen/proto/reviews/v1"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/review"
)

type ReviewService struct {
	reviewsv1.UnimplementedReviewsServiceServer
	reviews *review.Service
	logger  *slog.Logger
}

func NewReviewService(reviews *review.Service, logger *slog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, logger: logger}
}

func (s *ReviewService) ListPendingReviews(ctx context.Context, req *reviewsv1.ListPendingReviewsRequest) (*reviewsv1.ListPendingReviewsResponse, error) {
	items, err := s.reviews.ListPending(ctx, int(req.GetLimit()))
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	out := make([]*reviewsv1.Review, 0, len(items))
	for _, rv := range items {
		out = append(out, toPBReview(rv))
	}
	return &reviewsv1.ListPendingReviewsResponse{Reviews: out}, nil
}

func (s *ReviewService) GetReview(ctx context.Context, req *reviewsv1.GetReviewRequest) (*reviewsv1.GetReviewResponse, error) {
	id, err := parseUUIDField(req.GetReviewId(), "review_id")
	if err != nil {
		return nil, err
	}
	rv, err := s.reviews.Get(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &reviewsv1.GetReviewResponse{Review: toPBReview(rv)}, nil
}

func (s *ReviewService) AssignReview(ctx context.Context, req *reviewsv1.AssignReviewRequest) (*reviewsv1.AssignReviewResponse, error) {
	id, err := parseUUIDField(req.GetReviewId(), "review_id")
	if err != nil {
		return nil, err
	}
	reviewerID, err := parseUUIDField(req.GetReviewerId(), "reviewer_id")
	if err != nil {
		return nil, err
	}
	if err := s.reviews.Assign(ctx, id, reviewerID); err != nil {
		s.logger.Error("assign review failed", "review_id", id, "reviewer_id", reviewerID, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &reviewsv1.AssignReviewResponse{}, nil
}

func (s *ReviewService) CompleteReview(ctx context.Context, req *reviewsv1.CompleteReviewRequest) (*reviewsv1.CompleteReviewResponse, error) {
	id, err := parseUUIDField(req.GetReviewId(), "review_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetReviewedFields()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "reviewed_fields is required")
	}
	if err := s.reviews.Complete(ctx, id, req.GetReviewedFields(), req.GetNotes()); err != nil {
		s.logger.Error("complete review failed", "review_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("review completed via api", "review_id", id, "fields", len(req.GetReviewedFields()))
	return &reviewsv1.CompleteReviewResponse{}, nil
}

func (s *ReviewService) SkipReview(ctx context.Context, req *reviewsv1.SkipReviewRequest) (*reviewsv1.SkipReviewResponse, error) {
	id, err := parseUUIDField(req.GetReviewId(), "review_id")
	if err != nil {
		return nil, err
	}
	if err := s.reviews.Skip(ctx, id, req.GetNotes()); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &reviewsv1.SkipReviewResponse{}, nil
}

func toPBReview(rv *ent.DocumentReview) *reviewsv1.Review {
	out := &reviewsv1.Review{
		Id:             rv.ID.String(),
		DocumentId:     rv.DocumentID.String(),
		Status:         rv.Status,
		AutoExtracted:  rv.AutoExtracted,
		ReviewedFields: rv.ReviewedFields,
		CreatedAt:      rv.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rv.ExtractionNotes != nil {
		out.ExtractionNotes = *rv.ExtractionNotes
	}
	if rv.ConfidenceScore != nil {
		out.ConfidenceScore = *rv.ConfidenceScore
	}
	if rv.ReviewerID != nil {
		out.ReviewerId = rv.ReviewerID.String()
	}
	if rv.AssignedAt != nil {
		out.AssignedAt = rv.AssignedAt.UTC().Format(time.RFC3339)
	}
	if rv.ReviewedAt != nil {
		out.ReviewedAt = rv.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return out
}
