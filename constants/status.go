package constants

// DocumentStatus is the canonical lifecycle status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusUploaded   DocumentStatus = "uploaded"   // stored, not yet picked up
	DocStatusProcessing DocumentStatus = "processing" // extraction pass in progress or awaiting review
	DocStatusProcessed  DocumentStatus = "processed"  // extraction (or review) finished
	DocStatusFailed     DocumentStatus = "failed"     // terminal failure, see processing_notes
)

// ReviewStatus is the lifecycle status for rows in document_reviews.
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusInReview  ReviewStatus = "in_review"
	ReviewStatusCompleted ReviewStatus = "completed"
	ReviewStatusSkipped   ReviewStatus = "skipped"
)

// Terminal reports whether a review status accepts no further transitions.
func (s ReviewStatus) Terminal() bool {
	return s == ReviewStatusCompleted || s == ReviewStatusSkipped
}

// RiskTier buckets a credit score for loan gating.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)
