// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractionrule"
	"github.com/Ajauregui69/livo-backend/gen/ent/predicate"
)

// ExtractionRuleUpdate is the builder for updating ExtractionRule entities.
type ExtractionRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRuleMutation
}

// Where appends a list predicates to the ExtractionRuleUpdate builder.
func (_u *ExtractionRuleUpdate) Where(ps ...predicate.ExtractionRule) *ExtractionRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *ExtractionRuleUpdate) SetRuleName(v string) *ExtractionRuleUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableRuleName(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ExtractionRuleUpdate) SetDocType(v string) *ExtractionRuleUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableDocType(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionRuleUpdate) SetFieldName(v string) *ExtractionRuleUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableFieldName(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *ExtractionRuleUpdate) SetPattern(v string) *ExtractionRuleUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillablePattern(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *ExtractionRuleUpdate) SetPatternType(v string) *ExtractionRuleUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillablePatternType(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractionRuleUpdate) SetFieldType(v string) *ExtractionRuleUpdate {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableFieldType(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetContextKeywords sets the "context_keywords" field.
func (_u *ExtractionRuleUpdate) SetContextKeywords(v []string) *ExtractionRuleUpdate {
	_u.mutation.SetContextKeywords(v)
	return _u
}

// AppendContextKeywords appends value to the "context_keywords" field.
func (_u *ExtractionRuleUpdate) AppendContextKeywords(v []string) *ExtractionRuleUpdate {
	_u.mutation.AppendContextKeywords(v)
	return _u
}

// ClearContextKeywords clears the value of the "context_keywords" field.
func (_u *ExtractionRuleUpdate) ClearContextKeywords() *ExtractionRuleUpdate {
	_u.mutation.ClearContextKeywords()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ExtractionRuleUpdate) SetPriority(v int) *ExtractionRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillablePriority(v *int) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExtractionRuleUpdate) AddPriority(v int) *ExtractionRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ExtractionRuleUpdate) SetActive(v bool) *ExtractionRuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableActive(v *bool) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *ExtractionRuleUpdate) SetSuccessCount(v int) *ExtractionRuleUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableSuccessCount(v *int) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *ExtractionRuleUpdate) AddSuccessCount(v int) *ExtractionRuleUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ExtractionRuleUpdate) SetFailureCount(v int) *ExtractionRuleUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableFailureCount(v *int) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ExtractionRuleUpdate) AddFailureCount(v int) *ExtractionRuleUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractionRuleUpdate) SetDescription(v string) *ExtractionRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableDescription(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractionRuleUpdate) ClearDescription() *ExtractionRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRuleUpdate) SetUpdatedAt(v time.Time) *ExtractionRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_u *ExtractionRuleUpdate) Mutation() *ExtractionRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRuleUpdate) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := extractionrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocType(); ok {
		if err := extractionrule.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionrule.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := extractionrule.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractionrule.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := extractionrule.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := extractionrule.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrule.Table, extractionrule.Columns, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(extractionrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(extractionrule.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionrule.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(extractionrule.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(extractionrule.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractionrule.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextKeywords(); ok {
		_spec.SetField(extractionrule.FieldContextKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldContextKeywords, value)
		})
	}
	if _u.mutation.ContextKeywordsCleared() {
		_spec.ClearField(extractionrule.FieldContextKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(extractionrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(extractionrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(extractionrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(extractionrule.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(extractionrule.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(extractionrule.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(extractionrule.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extractionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRuleUpdateOne is the builder for updating a single ExtractionRule entity.
type ExtractionRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRuleMutation
}

// SetRuleName sets the "rule_name" field.
func (_u *ExtractionRuleUpdateOne) SetRuleName(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableRuleName(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ExtractionRuleUpdateOne) SetDocType(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableDocType(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionRuleUpdateOne) SetFieldName(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableFieldName(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *ExtractionRuleUpdateOne) SetPattern(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillablePattern(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *ExtractionRuleUpdateOne) SetPatternType(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillablePatternType(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractionRuleUpdateOne) SetFieldType(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableFieldType(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetContextKeywords sets the "context_keywords" field.
func (_u *ExtractionRuleUpdateOne) SetContextKeywords(v []string) *ExtractionRuleUpdateOne {
	_u.mutation.SetContextKeywords(v)
	return _u
}

// AppendContextKeywords appends value to the "context_keywords" field.
func (_u *ExtractionRuleUpdateOne) AppendContextKeywords(v []string) *ExtractionRuleUpdateOne {
	_u.mutation.AppendContextKeywords(v)
	return _u
}

// ClearContextKeywords clears the value of the "context_keywords" field.
func (_u *ExtractionRuleUpdateOne) ClearContextKeywords() *ExtractionRuleUpdateOne {
	_u.mutation.ClearContextKeywords()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ExtractionRuleUpdateOne) SetPriority(v int) *ExtractionRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillablePriority(v *int) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExtractionRuleUpdateOne) AddPriority(v int) *ExtractionRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ExtractionRuleUpdateOne) SetActive(v bool) *ExtractionRuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableActive(v *bool) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *ExtractionRuleUpdateOne) SetSuccessCount(v int) *ExtractionRuleUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableSuccessCount(v *int) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *ExtractionRuleUpdateOne) AddSuccessCount(v int) *ExtractionRuleUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ExtractionRuleUpdateOne) SetFailureCount(v int) *ExtractionRuleUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableFailureCount(v *int) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ExtractionRuleUpdateOne) AddFailureCount(v int) *ExtractionRuleUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractionRuleUpdateOne) SetDescription(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableDescription(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractionRuleUpdateOne) ClearDescription() *ExtractionRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRuleUpdateOne) SetUpdatedAt(v time.Time) *ExtractionRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_u *ExtractionRuleUpdateOne) Mutation() *ExtractionRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionRuleUpdate builder.
func (_u *ExtractionRuleUpdateOne) Where(ps ...predicate.ExtractionRule) *ExtractionRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRuleUpdateOne) Select(field string, fields ...string) *ExtractionRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRule entity.
func (_u *ExtractionRuleUpdateOne) Save(ctx context.Context) (*ExtractionRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRuleUpdateOne) SaveX(ctx context.Context) *ExtractionRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := extractionrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocType(); ok {
		if err := extractionrule.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionrule.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := extractionrule.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractionrule.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := extractionrule.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := extractionrule.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionRuleUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrule.Table, extractionrule.Columns, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrule.FieldID)
		for _, f := range fields {
			if !extractionrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrule.FieldID {
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
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(extractionrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(extractionrule.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionrule.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(extractionrule.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(extractionrule.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractionrule.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextKeywords(); ok {
		_spec.SetField(extractionrule.FieldContextKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrule.FieldContextKeywords, value)
		})
	}
	if _u.mutation.ContextKeywordsCleared() {
		_spec.ClearField(extractionrule.FieldContextKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(extractionrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(extractionrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(extractionrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(extractionrule.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(extractionrule.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(extractionrule.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(extractionrule.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extractionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ExtractionRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
