package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
)

func TestReviewMessageOptionalFields(t *testing.T) {
	id := uuid.New()
	docID := uuid.New()

	// Freshly opened review: every nillable column is still nil.
	pb := toPBReview(&ent.DocumentReview{
		ID:         id,
		DocumentID: docID,
		Status:     string(constants.ReviewStatusPending),
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, id.String(), pb.Id)
	assert.Equal(t, docID.String(), pb.DocumentId)
	assert.Empty(t, pb.ExtractionNotes)
	assert.Zero(t, pb.ConfidenceScore)
	assert.Empty(t, pb.ReviewerId)
	assert.Empty(t, pb.AssignedAt)
	assert.Empty(t, pb.ReviewedAt)

	notes := "low confidence"
	conf := 55.0
	reviewer := uuid.New()
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	pb = toPBReview(&ent.DocumentReview{
		ID:              id,
		DocumentID:      docID,
		Status:          string(constants.ReviewStatusInReview),
		ExtractionNotes: &notes,
		ConfidenceScore: &conf,
		ReviewerID:      &reviewer,
		AssignedAt:      &at,
		CreatedAt:       at,
	})
	assert.Equal(t, "low confidence", pb.ExtractionNotes)
	assert.InDelta(t, 55.0, pb.ConfidenceScore, 0.001)
	assert.Equal(t, reviewer.String(), pb.ReviewerId)
	assert.Equal(t, "2026-03-02T09:30:00Z", pb.AssignedAt)
}
