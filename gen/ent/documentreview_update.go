// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/gen/ent/documentreview"
	"github.com/Ajauregui69/livo-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentReviewUpdate is the builder for updating DocumentReview entities.
type DocumentReviewUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentReviewMutation
}

// Where appends a list predicates to the DocumentReviewUpdate builder.
func (_u *DocumentReviewUpdate) Where(ps ...predicate.DocumentReview) *DocumentReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentReviewUpdate) SetDocumentID(v uuid.UUID) *DocumentReviewUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableDocumentID(v *uuid.UUID) *DocumentReviewUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentReviewUpdate) SetStatus(v string) *DocumentReviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableStatus(v *string) *DocumentReviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentReviewUpdate) SetConfidenceScore(v float64) *DocumentReviewUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableConfidenceScore(v *float64) *DocumentReviewUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentReviewUpdate) AddConfidenceScore(v float64) *DocumentReviewUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *DocumentReviewUpdate) ClearConfidenceScore() *DocumentReviewUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetExtractionNotes sets the "extraction_notes" field.
func (_u *DocumentReviewUpdate) SetExtractionNotes(v string) *DocumentReviewUpdate {
	_u.mutation.SetExtractionNotes(v)
	return _u
}

// SetNillableExtractionNotes sets the "extraction_notes" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableExtractionNotes(v *string) *DocumentReviewUpdate {
	if v != nil {
		_u.SetExtractionNotes(*v)
	}
	return _u
}

// ClearExtractionNotes clears the value of the "extraction_notes" field.
func (_u *DocumentReviewUpdate) ClearExtractionNotes() *DocumentReviewUpdate {
	_u.mutation.ClearExtractionNotes()
	return _u
}

// SetAutoExtracted sets the "auto_extracted" field.
func (_u *DocumentReviewUpdate) SetAutoExtracted(v map[string]string) *DocumentReviewUpdate {
	_u.mutation.SetAutoExtracted(v)
	return _u
}

// ClearAutoExtracted clears the value of the "auto_extracted" field.
func (_u *DocumentReviewUpdate) ClearAutoExtracted() *DocumentReviewUpdate {
	_u.mutation.ClearAutoExtracted()
	return _u
}

// SetReviewedFields sets the "reviewed_fields" field.
func (_u *DocumentReviewUpdate) SetReviewedFields(v map[string]string) *DocumentReviewUpdate {
	_u.mutation.SetReviewedFields(v)
	return _u
}

// ClearReviewedFields clears the value of the "reviewed_fields" field.
func (_u *DocumentReviewUpdate) ClearReviewedFields() *DocumentReviewUpdate {
	_u.mutation.ClearReviewedFields()
	return _u
}

// SetCorrections sets the "corrections" field.
func (_u *DocumentReviewUpdate) SetCorrections(v map[string]bool) *DocumentReviewUpdate {
	_u.mutation.SetCorrections(v)
	return _u
}

// ClearCorrections clears the value of the "corrections" field.
func (_u *DocumentReviewUpdate) ClearCorrections() *DocumentReviewUpdate {
	_u.mutation.ClearCorrections()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *DocumentReviewUpdate) SetReviewerID(v uuid.UUID) *DocumentReviewUpdate {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableReviewerID(v *uuid.UUID) *DocumentReviewUpdate {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *DocumentReviewUpdate) ClearReviewerID() *DocumentReviewUpdate {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *DocumentReviewUpdate) SetAssignedAt(v time.Time) *DocumentReviewUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableAssignedAt(v *time.Time) *DocumentReviewUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *DocumentReviewUpdate) ClearAssignedAt() *DocumentReviewUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DocumentReviewUpdate) SetReviewedAt(v time.Time) *DocumentReviewUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableReviewedAt(v *time.Time) *DocumentReviewUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DocumentReviewUpdate) ClearReviewedAt() *DocumentReviewUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentReviewUpdate) SetCreatedAt(v time.Time) *DocumentReviewUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentReviewUpdate) SetNillableCreatedAt(v *time.Time) *DocumentReviewUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentReviewUpdate) SetUpdatedAt(v time.Time) *DocumentReviewUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentReviewUpdate) SetDocument(v *Document) *DocumentReviewUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentReviewMutation object of the builder.
func (_u *DocumentReviewUpdate) Mutation() *DocumentReviewMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentReviewUpdate) ClearDocument() *DocumentReviewUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentReviewUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentReviewUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentreview.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentReviewUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentReview.document"`)
	}
	return nil
}

func (_u *DocumentReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentreview.Table, documentreview.Columns, sqlgraph.NewFieldSpec(documentreview.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(documentreview.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(documentreview.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(documentreview.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(documentreview.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionNotes(); ok {
		_spec.SetField(documentreview.FieldExtractionNotes, field.TypeString, value)
	}
	if _u.mutation.ExtractionNotesCleared() {
		_spec.ClearField(documentreview.FieldExtractionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AutoExtracted(); ok {
		_spec.SetField(documentreview.FieldAutoExtracted, field.TypeJSON, value)
	}
	if _u.mutation.AutoExtractedCleared() {
		_spec.ClearField(documentreview.FieldAutoExtracted, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewedFields(); ok {
		_spec.SetField(documentreview.FieldReviewedFields, field.TypeJSON, value)
	}
	if _u.mutation.ReviewedFieldsCleared() {
		_spec.ClearField(documentreview.FieldReviewedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Corrections(); ok {
		_spec.SetField(documentreview.FieldCorrections, field.TypeJSON, value)
	}
	if _u.mutation.CorrectionsCleared() {
		_spec.ClearField(documentreview.FieldCorrections, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(documentreview.FieldReviewerID, field.TypeUUID, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(documentreview.FieldReviewerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(documentreview.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(documentreview.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(documentreview.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(documentreview.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documentreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentreview.DocumentTable,
			Columns: []string{documentreview.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentreview.DocumentTable,
			Columns: []string{documentreview.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentReviewUpdateOne is the builder for updating a single DocumentReview entity.
type DocumentReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentReviewMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentReviewUpdateOne) SetDocumentID(v uuid.UUID) *DocumentReviewUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentReviewUpdateOne) SetStatus(v string) *DocumentReviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableStatus(v *string) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentReviewUpdateOne) SetConfidenceScore(v float64) *DocumentReviewUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableConfidenceScore(v *float64) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentReviewUpdateOne) AddConfidenceScore(v float64) *DocumentReviewUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *DocumentReviewUpdateOne) ClearConfidenceScore() *DocumentReviewUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetExtractionNotes sets the "extraction_notes" field.
func (_u *DocumentReviewUpdateOne) SetExtractionNotes(v string) *DocumentReviewUpdateOne {
	_u.mutation.SetExtractionNotes(v)
	return _u
}

// SetNillableExtractionNotes sets the "extraction_notes" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableExtractionNotes(v *string) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetExtractionNotes(*v)
	}
	return _u
}

// ClearExtractionNotes clears the value of the "extraction_notes" field.
func (_u *DocumentReviewUpdateOne) ClearExtractionNotes() *DocumentReviewUpdateOne {
	_u.mutation.ClearExtractionNotes()
	return _u
}

// SetAutoExtracted sets the "auto_extracted" field.
func (_u *DocumentReviewUpdateOne) SetAutoExtracted(v map[string]string) *DocumentReviewUpdateOne {
	_u.mutation.SetAutoExtracted(v)
	return _u
}

// ClearAutoExtracted clears the value of the "auto_extracted" field.
func (_u *DocumentReviewUpdateOne) ClearAutoExtracted() *DocumentReviewUpdateOne {
	_u.mutation.ClearAutoExtracted()
	return _u
}

// SetReviewedFields sets the "reviewed_fields" field.
func (_u *DocumentReviewUpdateOne) SetReviewedFields(v map[string]string) *DocumentReviewUpdateOne {
	_u.mutation.SetReviewedFields(v)
	return _u
}

// ClearReviewedFields clears the value of the "reviewed_fields" field.
func (_u *DocumentReviewUpdateOne) ClearReviewedFields() *DocumentReviewUpdateOne {
	_u.mutation.ClearReviewedFields()
	return _u
}

// SetCorrections sets the "corrections" field.
func (_u *DocumentReviewUpdateOne) SetCorrections(v map[string]bool) *DocumentReviewUpdateOne {
	_u.mutation.SetCorrections(v)
	return _u
}

// ClearCorrections clears the value of the "corrections" field.
func (_u *DocumentReviewUpdateOne) ClearCorrections() *DocumentReviewUpdateOne {
	_u.mutation.ClearCorrections()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *DocumentReviewUpdateOne) SetReviewerID(v uuid.UUID) *DocumentReviewUpdateOne {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableReviewerID(v *uuid.UUID) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *DocumentReviewUpdateOne) ClearReviewerID() *DocumentReviewUpdateOne {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *DocumentReviewUpdateOne) SetAssignedAt(v time.Time) *DocumentReviewUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableAssignedAt(v *time.Time) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *DocumentReviewUpdateOne) ClearAssignedAt() *DocumentReviewUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DocumentReviewUpdateOne) SetReviewedAt(v time.Time) *DocumentReviewUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableReviewedAt(v *time.Time) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DocumentReviewUpdateOne) ClearReviewedAt() *DocumentReviewUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentReviewUpdateOne) SetCreatedAt(v time.Time) *DocumentReviewUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentReviewUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentReviewUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentReviewUpdateOne) SetUpdatedAt(v time.Time) *DocumentReviewUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentReviewUpdateOne) SetDocument(v *Document) *DocumentReviewUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentReviewMutation object of the builder.
func (_u *DocumentReviewUpdateOne) Mutation() *DocumentReviewMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentReviewUpdateOne) ClearDocument() *DocumentReviewUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentReviewUpdate builder.
func (_u *DocumentReviewUpdateOne) Where(ps ...predicate.DocumentReview) *DocumentReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentReviewUpdateOne) Select(field string, fields ...string) *DocumentReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentReview entity.
func (_u *DocumentReviewUpdateOne) Save(ctx context.Context) (*DocumentReview, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentReviewUpdateOne) SaveX(ctx context.Context) *DocumentReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentReviewUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentreview.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentReviewUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentReview.document"`)
	}
	return nil
}

func (_u *DocumentReviewUpdateOne) sqlSave(ctx context.Context) (_node *DocumentReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentreview.Table, documentreview.Columns, sqlgraph.NewFieldSpec(documentreview.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentreview.FieldID)
		for _, f := range fields {
			if !documentreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(documentreview.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(documentreview.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(documentreview.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(documentreview.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionNotes(); ok {
		_spec.SetField(documentreview.FieldExtractionNotes, field.TypeString, value)
	}
	if _u.mutation.ExtractionNotesCleared() {
		_spec.ClearField(documentreview.FieldExtractionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AutoExtracted(); ok {
		_spec.SetField(documentreview.FieldAutoExtracted, field.TypeJSON, value)
	}
	if _u.mutation.AutoExtractedCleared() {
		_spec.ClearField(documentreview.FieldAutoExtracted, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewedFields(); ok {
		_spec.SetField(documentreview.FieldReviewedFields, field.TypeJSON, value)
	}
	if _u.mutation.ReviewedFieldsCleared() {
		_spec.ClearField(documentreview.FieldReviewedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Corrections(); ok {
		_spec.SetField(documentreview.FieldCorrections, field.TypeJSON, value)
	}
	if _u.mutation.CorrectionsCleared() {
		_spec.ClearField(documentreview.FieldCorrections, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(documentreview.FieldReviewerID, field.TypeUUID, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(documentreview.FieldReviewerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(documentreview.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(documentreview.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(documentreview.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(documentreview.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documentreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentreview.DocumentTable,
			Columns: []string{documentreview.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentreview.DocumentTable,
			Columns: []string{documentreview.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
