// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractionrule"
	"github.com/google/uuid"
)

// ExtractionRuleCreate is the builder for creating a ExtractionRule entity.
type ExtractionRuleCreate struct {
	config
	mutation *ExtractionRuleMutation
	hooks    []Hook
}

// SetRuleName sets the "rule_name" field.
func (_c *ExtractionRuleCreate) SetRuleName(v string) *ExtractionRuleCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *ExtractionRuleCreate) SetDocType(v string) *ExtractionRuleCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ExtractionRuleCreate) SetFieldName(v string) *ExtractionRuleCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *ExtractionRuleCreate) SetPattern(v string) *ExtractionRuleCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetPatternType sets the "pattern_type" field.
func (_c *ExtractionRuleCreate) SetPatternType(v string) *ExtractionRuleCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillablePatternType(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetPatternType(*v)
	}
	return _c
}

// SetFieldType sets the "field_type" field.
func (_c *ExtractionRuleCreate) SetFieldType(v string) *ExtractionRuleCreate {
	_c.mutation.SetFieldType(v)
	return _c
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableFieldType(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetFieldType(*v)
	}
	return _c
}

// SetContextKeywords sets the "context_keywords" field.
func (_c *ExtractionRuleCreate) SetContextKeywords(v []string) *ExtractionRuleCreate {
	_c.mutation.SetContextKeywords(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ExtractionRuleCreate) SetPriority(v int) *ExtractionRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillablePriority(v *int) *ExtractionRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ExtractionRuleCreate) SetActive(v bool) *ExtractionRuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableActive(v *bool) *ExtractionRuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *ExtractionRuleCreate) SetSuccessCount(v int) *ExtractionRuleCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableSuccessCount(v *int) *ExtractionRuleCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *ExtractionRuleCreate) SetFailureCount(v int) *ExtractionRuleCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableFailureCount(v *int) *ExtractionRuleCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExtractionRuleCreate) SetDescription(v string) *ExtractionRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableDescription(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionRuleCreate) SetCreatedAt(v time.Time) *ExtractionRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableCreatedAt(v *time.Time) *ExtractionRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionRuleCreate) SetUpdatedAt(v time.Time) *ExtractionRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRuleCreate) SetID(v uuid.UUID) *ExtractionRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableID(v *uuid.UUID) *ExtractionRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_c *ExtractionRuleCreate) Mutation() *ExtractionRuleMutation {
	return _c.mutation
}

// Save creates the ExtractionRule in the database.
func (_c *ExtractionRuleCreate) Save(ctx context.Context) (*ExtractionRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRuleCreate) SaveX(ctx context.Context) *ExtractionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRuleCreate) defaults() {
	if _, ok := _c.mutation.PatternType(); !ok {
		v := extractionrule.DefaultPatternType
		_c.mutation.SetPatternType(v)
	}
	if _, ok := _c.mutation.FieldType(); !ok {
		v := extractionrule.DefaultFieldType
		_c.mutation.SetFieldType(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := extractionrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := extractionrule.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := extractionrule.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := extractionrule.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRuleCreate) check() error {
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "ExtractionRule.rule_name"`)}
	}
	if v, ok := _c.mutation.RuleName(); ok {
		if err := extractionrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "ExtractionRule.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := extractionrule.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ExtractionRule.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := extractionrule.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "ExtractionRule.pattern"`)}
	}
	if v, ok := _c.mutation.Pattern(); ok {
		if err := extractionrule.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "ExtractionRule.pattern_type"`)}
	}
	if _, ok := _c.mutation.FieldType(); !ok {
		return &ValidationError{Name: "field_type", err: errors.New(`ent: missing required field "ExtractionRule.field_type"`)}
	}
	if v, ok := _c.mutation.FieldType(); ok {
		if err := extractionrule.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ExtractionRule.priority"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ExtractionRule.active"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "ExtractionRule.success_count"`)}
	}
	if v, ok := _c.mutation.SuccessCount(); ok {
		if err := extractionrule.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.success_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "ExtractionRule.failure_count"`)}
	}
	if v, ok := _c.mutation.FailureCount(); ok {
		if err := extractionrule.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.failure_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionRule.updated_at"`)}
	}
	return nil
}

func (_c *ExtractionRuleCreate) sqlSave(ctx context.Context) (*ExtractionRule, error) {
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

func (_c *ExtractionRuleCreate) createSpec() (*ExtractionRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrule.Table, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(extractionrule.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(extractionrule.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(extractionrule.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(extractionrule.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(extractionrule.FieldPatternType, field.TypeString, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.FieldType(); ok {
		_spec.SetField(extractionrule.FieldFieldType, field.TypeString, value)
		_node.FieldType = value
	}
	if value, ok := _c.mutation.ContextKeywords(); ok {
		_spec.SetField(extractionrule.FieldContextKeywords, field.TypeJSON, value)
		_node.ContextKeywords = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(extractionrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(extractionrule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(extractionrule.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(extractionrule.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(extractionrule.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ExtractionRuleCreateBulk is the builder for creating many ExtractionRule entities in bulk.
type ExtractionRuleCreateBulk struct {
	config
	err      error
	builders []*ExtractionRuleCreate
}

// Save creates the ExtractionRule entities in the database.
func (_c *ExtractionRuleCreateBulk) Save(ctx context.Context) ([]*ExtractionRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRuleMutation)
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
func (_c *ExtractionRuleCreateBulk) SaveX(ctx context.Context) []*ExtractionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
