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
	"github.com/Ajauregui69/livo-backend/gen/ent/extractedfield"
	"github.com/Ajauregui69/livo-backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractedFieldUpdate is the builder for updating ExtractedField entities.
type ExtractedFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdate) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedFieldUpdate) SetDocumentID(v uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractedFieldUpdate) SetFieldName(v string) *ExtractedFieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableFieldName(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractedFieldUpdate) SetFieldType(v string) *ExtractedFieldUpdate {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableFieldType(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractedFieldUpdate) SetExtractedValue(v string) *ExtractedFieldUpdate {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableExtractedValue(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractedFieldUpdate) ClearExtractedValue() *ExtractedFieldUpdate {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetReviewedValue sets the "reviewed_value" field.
func (_u *ExtractedFieldUpdate) SetReviewedValue(v string) *ExtractedFieldUpdate {
	_u.mutation.SetReviewedValue(v)
	return _u
}

// SetNillableReviewedValue sets the "reviewed_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableReviewedValue(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetReviewedValue(*v)
	}
	return _u
}

// ClearReviewedValue clears the value of the "reviewed_value" field.
func (_u *ExtractedFieldUpdate) ClearReviewedValue() *ExtractedFieldUpdate {
	_u.mutation.ClearReviewedValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedFieldUpdate) SetConfidence(v float64) *ExtractedFieldUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableConfidence(v *float64) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedFieldUpdate) AddConfidence(v float64) *ExtractedFieldUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractedFieldUpdate) ClearConfidence() *ExtractedFieldUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ExtractedFieldUpdate) SetExtractionMethod(v string) *ExtractedFieldUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableExtractionMethod(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *ExtractedFieldUpdate) SetCorrected(v bool) *ExtractedFieldUpdate {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableCorrected(v *bool) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedFieldUpdate) SetCreatedAt(v time.Time) *ExtractedFieldUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableCreatedAt(v *time.Time) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedFieldUpdate) SetUpdatedAt(v time.Time) *ExtractedFieldUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdate) SetDocument(v *Document) *ExtractedFieldUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdate) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdate) ClearDocument() *ExtractedFieldUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedFieldUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedFieldUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractedfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractedfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractedfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := extractedfield.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.document"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractedfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractedfield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractedfield.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractedfield.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedValue(); ok {
		_spec.SetField(extractedfield.FieldReviewedValue, field.TypeString, value)
	}
	if _u.mutation.ReviewedValueCleared() {
		_spec.ClearField(extractedfield.FieldReviewedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extractedfield.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(extractedfield.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(extractedfield.FieldCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractedfield.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedfield.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
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
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
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
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedFieldUpdateOne is the builder for updating a single ExtractedField entity.
type ExtractedFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedFieldUpdateOne) SetDocumentID(v uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractedFieldUpdateOne) SetFieldName(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableFieldName(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractedFieldUpdateOne) SetFieldType(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableFieldType(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractedFieldUpdateOne) SetExtractedValue(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableExtractedValue(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractedFieldUpdateOne) ClearExtractedValue() *ExtractedFieldUpdateOne {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetReviewedValue sets the "reviewed_value" field.
func (_u *ExtractedFieldUpdateOne) SetReviewedValue(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetReviewedValue(v)
	return _u
}

// SetNillableReviewedValue sets the "reviewed_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableReviewedValue(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetReviewedValue(*v)
	}
	return _u
}

// ClearReviewedValue clears the value of the "reviewed_value" field.
func (_u *ExtractedFieldUpdateOne) ClearReviewedValue() *ExtractedFieldUpdateOne {
	_u.mutation.ClearReviewedValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedFieldUpdateOne) SetConfidence(v float64) *ExtractedFieldUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableConfidence(v *float64) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedFieldUpdateOne) AddConfidence(v float64) *ExtractedFieldUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractedFieldUpdateOne) ClearConfidence() *ExtractedFieldUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ExtractedFieldUpdateOne) SetExtractionMethod(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableExtractionMethod(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *ExtractedFieldUpdateOne) SetCorrected(v bool) *ExtractedFieldUpdateOne {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableCorrected(v *bool) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedFieldUpdateOne) SetCreatedAt(v time.Time) *ExtractedFieldUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedFieldUpdateOne) SetUpdatedAt(v time.Time) *ExtractedFieldUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdateOne) SetDocument(v *Document) *ExtractedFieldUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdateOne) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdateOne) ClearDocument() *ExtractedFieldUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdateOne) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedFieldUpdateOne) Select(field string, fields ...string) *ExtractedFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedField entity.
func (_u *ExtractedFieldUpdateOne) Save(ctx context.Context) (*ExtractedField, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) SaveX(ctx context.Context) *ExtractedField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedFieldUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractedfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractedfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractedfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := extractedfield.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.document"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedfield.FieldID)
		for _, f := range fields {
			if !extractedfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedfield.FieldID {
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
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractedfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractedfield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractedfield.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractedfield.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedValue(); ok {
		_spec.SetField(extractedfield.FieldReviewedValue, field.TypeString, value)
	}
	if _u.mutation.ReviewedValueCleared() {
		_spec.ClearField(extractedfield.FieldReviewedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extractedfield.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(extractedfield.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(extractedfield.FieldCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractedfield.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedfield.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
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
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
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
	_node = &ExtractedField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
