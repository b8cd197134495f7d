// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/gen/ent/documentreview"
	"github.com/google/uuid"
)

// DocumentReviewCreate is the builder for creating a DocumentReview entity.
type DocumentReviewCreate struct {
	config
	mutation *DocumentReviewMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentReviewCreate) SetDocumentID(v uuid.UUID) *DocumentReviewCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentReviewCreate) SetStatus(v string) *DocumentReviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableStatus(v *string) *DocumentReviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *DocumentReviewCreate) SetConfidenceScore(v float64) *DocumentReviewCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableConfidenceScore(v *float64) *DocumentReviewCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetExtractionNotes sets the "extraction_notes" field.
func (_c *DocumentReviewCreate) SetExtractionNotes(v string) *DocumentReviewCreate {
	_c.mutation.SetExtractionNotes(v)
	return _c
}

// SetNillableExtractionNotes sets the "extraction_notes" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableExtractionNotes(v *string) *DocumentReviewCreate {
	if v != nil {
		_c.SetExtractionNotes(*v)
	}
	return _c
}

// SetAutoExtracted sets the "auto_extracted" field.
func (_c *DocumentReviewCreate) SetAutoExtracted(v map[string]string) *DocumentReviewCreate {
	_c.mutation.SetAutoExtracted(v)
	return _c
}

// SetReviewedFields sets the "reviewed_fields" field.
func (_c *DocumentReviewCreate) SetReviewedFields(v map[string]string) *DocumentReviewCreate {
	_c.mutation.SetReviewedFields(v)
	return _c
}

// SetCorrections sets the "corrections" field.
func (_c *DocumentReviewCreate) SetCorrections(v map[string]bool) *DocumentReviewCreate {
	_c.mutation.SetCorrections(v)
	return _c
}

// SetReviewerID sets the "reviewer_id" field.
func (_c *DocumentReviewCreate) SetReviewerID(v uuid.UUID) *DocumentReviewCreate {
	_c.mutation.SetReviewerID(v)
	return _c
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableReviewerID(v *uuid.UUID) *DocumentReviewCreate {
	if v != nil {
		_c.SetReviewerID(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *DocumentReviewCreate) SetAssignedAt(v time.Time) *DocumentReviewCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableAssignedAt(v *time.Time) *DocumentReviewCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *DocumentReviewCreate) SetReviewedAt(v time.Time) *DocumentReviewCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableReviewedAt(v *time.Time) *DocumentReviewCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentReviewCreate) SetCreatedAt(v time.Time) *DocumentReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableCreatedAt(v *time.Time) *DocumentReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentReviewCreate) SetUpdatedAt(v time.Time) *DocumentReviewCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableUpdatedAt(v *time.Time) *DocumentReviewCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentReviewCreate) SetID(v uuid.UUID) *DocumentReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentReviewCreate) SetNillableID(v *uuid.UUID) *DocumentReviewCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentReviewCreate) SetDocument(v *Document) *DocumentReviewCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentReviewMutation object of the builder.
func (_c *DocumentReviewCreate) Mutation() *DocumentReviewMutation {
	return _c.mutation
}

// Save creates the DocumentReview in the database.
func (_c *DocumentReviewCreate) Save(ctx context.Context) (*DocumentReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentReviewCreate) SaveX(ctx context.Context) *DocumentReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentReviewCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := documentreview.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documentreview.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentreview.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentReviewCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentReview.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DocumentReview.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentReview.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentReview.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentReview.document"`)}
	}
	return nil
}

func (_c *DocumentReviewCreate) sqlSave(ctx context.Context) (*DocumentReview, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentReviewCreate) createSpec() (*DocumentReview, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentreview.Table, sqlgraph.NewFieldSpec(documentreview.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(documentreview.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(documentreview.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.ExtractionNotes(); ok {
		_spec.SetField(documentreview.FieldExtractionNotes, field.TypeString, value)
		_node.ExtractionNotes = &value
	}
	if value, ok := _c.mutation.AutoExtracted(); ok {
		_spec.SetField(documentreview.FieldAutoExtracted, field.TypeJSON, value)
		_node.AutoExtracted = value
	}
	if value, ok := _c.mutation.ReviewedFields(); ok {
		_spec.SetField(documentreview.FieldReviewedFields, field.TypeJSON, value)
		_node.ReviewedFields = value
	}
	if value, ok := _c.mutation.Corrections(); ok {
		_spec.SetField(documentreview.FieldCorrections, field.TypeJSON, value)
		_node.Corrections = value
	}
	if value, ok := _c.mutation.ReviewerID(); ok {
		_spec.SetField(documentreview.FieldReviewerID, field.TypeUUID, value)
		_node.ReviewerID = &value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(documentreview.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(documentreview.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documentreview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentReviewCreateBulk is the builder for creating many DocumentReview entities in bulk.
type DocumentReviewCreateBulk struct {
	config
	err      error
	builders []*DocumentReviewCreate
}

// Save creates the DocumentReview entities in the database.
func (_c *DocumentReviewCreateBulk) Save(ctx context.Context) ([]*DocumentReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentReviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentReviewCreateBulk) SaveX(ctx context.Context) []*DocumentReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
