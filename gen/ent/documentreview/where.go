// Code generated by ent, DO NOT EDIT.

package documentreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Ajauregui69/livo-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldDocumentID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldStatus, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldConfidenceScore, v))
}

// ExtractionNotes applies equality check predicate on the "extraction_notes" field. It's identical to ExtractionNotesEQ.
func ExtractionNotes(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldExtractionNotes, v))
}

// ReviewerID applies equality check predicate on the "reviewer_id" field. It's identical to ReviewerIDEQ.
func ReviewerID(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldReviewerID, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldAssignedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldDocumentID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldContainsFold(FieldStatus, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldConfidenceScore))
}

// ExtractionNotesEQ applies the EQ predicate on the "extraction_notes" field.
func ExtractionNotesEQ(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldExtractionNotes, v))
}

// ExtractionNotesNEQ applies the NEQ predicate on the "extraction_notes" field.
func ExtractionNotesNEQ(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldExtractionNotes, v))
}

// ExtractionNotesIn applies the In predicate on the "extraction_notes" field.
func ExtractionNotesIn(vs ...string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldExtractionNotes, vs...))
}

// ExtractionNotesNotIn applies the NotIn predicate on the "extraction_notes" field.
func ExtractionNotesNotIn(vs ...string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldExtractionNotes, vs...))
}

// ExtractionNotesGT applies the GT predicate on the "extraction_notes" field.
func ExtractionNotesGT(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldExtractionNotes, v))
}

// ExtractionNotesGTE applies the GTE predicate on the "extraction_notes" field.
func ExtractionNotesGTE(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldExtractionNotes, v))
}

// ExtractionNotesLT applies the LT predicate on the "extraction_notes" field.
func ExtractionNotesLT(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldExtractionNotes, v))
}

// ExtractionNotesLTE applies the LTE predicate on the "extraction_notes" field.
func ExtractionNotesLTE(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldExtractionNotes, v))
}

// ExtractionNotesContains applies the Contains predicate on the "extraction_notes" field.
func ExtractionNotesContains(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldContains(FieldExtractionNotes, v))
}

// ExtractionNotesHasPrefix applies the HasPrefix predicate on the "extraction_notes" field.
func ExtractionNotesHasPrefix(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldHasPrefix(FieldExtractionNotes, v))
}

// ExtractionNotesHasSuffix applies the HasSuffix predicate on the "extraction_notes" field.
func ExtractionNotesHasSuffix(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldHasSuffix(FieldExtractionNotes, v))
}

// ExtractionNotesIsNil applies the IsNil predicate on the "extraction_notes" field.
func ExtractionNotesIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldExtractionNotes))
}

// ExtractionNotesNotNil applies the NotNil predicate on the "extraction_notes" field.
func ExtractionNotesNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldExtractionNotes))
}

// ExtractionNotesEqualFold applies the EqualFold predicate on the "extraction_notes" field.
func ExtractionNotesEqualFold(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEqualFold(FieldExtractionNotes, v))
}

// ExtractionNotesContainsFold applies the ContainsFold predicate on the "extraction_notes" field.
func ExtractionNotesContainsFold(v string) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldContainsFold(FieldExtractionNotes, v))
}

// AutoExtractedIsNil applies the IsNil predicate on the "auto_extracted" field.
func AutoExtractedIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldAutoExtracted))
}

// AutoExtractedNotNil applies the NotNil predicate on the "auto_extracted" field.
func AutoExtractedNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldAutoExtracted))
}

// ReviewedFieldsIsNil applies the IsNil predicate on the "reviewed_fields" field.
func ReviewedFieldsIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldReviewedFields))
}

// ReviewedFieldsNotNil applies the NotNil predicate on the "reviewed_fields" field.
func ReviewedFieldsNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldReviewedFields))
}

// CorrectionsIsNil applies the IsNil predicate on the "corrections" field.
func CorrectionsIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldCorrections))
}

// CorrectionsNotNil applies the NotNil predicate on the "corrections" field.
func CorrectionsNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldCorrections))
}

// ReviewerIDEQ applies the EQ predicate on the "reviewer_id" field.
func ReviewerIDEQ(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewerIDNEQ applies the NEQ predicate on the "reviewer_id" field.
func ReviewerIDNEQ(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldReviewerID, v))
}

// ReviewerIDIn applies the In predicate on the "reviewer_id" field.
func ReviewerIDIn(vs ...uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldReviewerID, vs...))
}

// ReviewerIDNotIn applies the NotIn predicate on the "reviewer_id" field.
func ReviewerIDNotIn(vs ...uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldReviewerID, vs...))
}

// ReviewerIDGT applies the GT predicate on the "reviewer_id" field.
func ReviewerIDGT(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldReviewerID, v))
}

// ReviewerIDGTE applies the GTE predicate on the "reviewer_id" field.
func ReviewerIDGTE(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldReviewerID, v))
}

// ReviewerIDLT applies the LT predicate on the "reviewer_id" field.
func ReviewerIDLT(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldReviewerID, v))
}

// ReviewerIDLTE applies the LTE predicate on the "reviewer_id" field.
func ReviewerIDLTE(v uuid.UUID) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldReviewerID, v))
}

// ReviewerIDIsNil applies the IsNil predicate on the "reviewer_id" field.
func ReviewerIDIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldReviewerID))
}

// ReviewerIDNotNil applies the NotNil predicate on the "reviewer_id" field.
func ReviewerIDNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldReviewerID))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldAssignedAt, v))
}

// AssignedAtIsNil applies the IsNil predicate on the "assigned_at" field.
func AssignedAtIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldAssignedAt))
}

// AssignedAtNotNil applies the NotNil predicate on the "assigned_at" field.
func AssignedAtNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldAssignedAt))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DocumentReview {
	return predicate.DocumentReview(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentReview {
	return predicate.DocumentReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentReview {
	return predicate.DocumentReview(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentReview) predicate.DocumentReview {
	return predicate.DocumentReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentReview) predicate.DocumentReview {
	return predicate.DocumentReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentReview) predicate.DocumentReview {
	return predicate.DocumentReview(sql.NotPredicates(p))
}
