// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Ajauregui69/livo-backend/gen/ent/creditscore"
	"github.com/Ajauregui69/livo-backend/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditScoreUpdate is the builder for updating CreditScore entities.
type CreditScoreUpdate struct {
	config
	hooks    []Hook
	mutation *CreditScoreMutation
}

// Where appends a list predicates to the CreditScoreUpdate builder.
func (_u *CreditScoreUpdate) Where(ps ...predicate.CreditScore) *CreditScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *CreditScoreUpdate) SetSubjectID(v uuid.UUID) *CreditScoreUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableSubjectID(v *uuid.UUID) *CreditScoreUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CreditScoreUpdate) SetScore(v int) *CreditScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableScore(v *int) *CreditScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CreditScoreUpdate) AddScore(v int) *CreditScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *CreditScoreUpdate) SetRiskTier(v string) *CreditScoreUpdate {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableRiskTier(v *string) *CreditScoreUpdate {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetEstimatedMonthlyIncome sets the "estimated_monthly_income" field.
func (_u *CreditScoreUpdate) SetEstimatedMonthlyIncome(v decimal.Decimal) *CreditScoreUpdate {
	_u.mutation.SetEstimatedMonthlyIncome(v)
	return _u
}

// SetNillableEstimatedMonthlyIncome sets the "estimated_monthly_income" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableEstimatedMonthlyIncome(v *decimal.Decimal) *CreditScoreUpdate {
	if v != nil {
		_u.SetEstimatedMonthlyIncome(*v)
	}
	return _u
}

// SetMaxLoan sets the "max_loan" field.
func (_u *CreditScoreUpdate) SetMaxLoan(v decimal.Decimal) *CreditScoreUpdate {
	_u.mutation.SetMaxLoan(v)
	return _u
}

// SetNillableMaxLoan sets the "max_loan" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableMaxLoan(v *decimal.Decimal) *CreditScoreUpdate {
	if v != nil {
		_u.SetMaxLoan(*v)
	}
	return _u
}

// SetSuggestedDownPayment sets the "suggested_down_payment" field.
func (_u *CreditScoreUpdate) SetSuggestedDownPayment(v decimal.Decimal) *CreditScoreUpdate {
	_u.mutation.SetSuggestedDownPayment(v)
	return _u
}

// SetNillableSuggestedDownPayment sets the "suggested_down_payment" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableSuggestedDownPayment(v *decimal.Decimal) *CreditScoreUpdate {
	if v != nil {
		_u.SetSuggestedDownPayment(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *CreditScoreUpdate) SetRecommendations(v []string) *CreditScoreUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *CreditScoreUpdate) AppendRecommendations(v []string) *CreditScoreUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *CreditScoreUpdate) ClearRecommendations() *CreditScoreUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *CreditScoreUpdate) SetBreakdown(v json.RawMessage) *CreditScoreUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// AppendBreakdown appends value to the "breakdown" field.
func (_u *CreditScoreUpdate) AppendBreakdown(v json.RawMessage) *CreditScoreUpdate {
	_u.mutation.AppendBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *CreditScoreUpdate) ClearBreakdown() *CreditScoreUpdate {
	_u.mutation.ClearBreakdown()
	return _u
}

// SetActive sets the "active" field.
func (_u *CreditScoreUpdate) SetActive(v bool) *CreditScoreUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableActive(v *bool) *CreditScoreUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *CreditScoreUpdate) SetComputedAt(v time.Time) *CreditScoreUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableComputedAt(v *time.Time) *CreditScoreUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CreditScoreUpdate) SetExpiresAt(v time.Time) *CreditScoreUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableExpiresAt(v *time.Time) *CreditScoreUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CreditScoreUpdate) SetCreatedAt(v time.Time) *CreditScoreUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableCreatedAt(v *time.Time) *CreditScoreUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditScoreUpdate) SetUpdatedAt(v time.Time) *CreditScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreditScoreMutation object of the builder.
func (_u *CreditScoreUpdate) Mutation() *CreditScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creditscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditScoreUpdate) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := creditscore.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CreditScore.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := creditscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "CreditScore.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *CreditScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditscore.Table, creditscore.Columns, sqlgraph.NewFieldSpec(creditscore.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(creditscore.FieldSubjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(creditscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(creditscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(creditscore.FieldRiskTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedMonthlyIncome(); ok {
		_spec.SetField(creditscore.FieldEstimatedMonthlyIncome, field.TypeOther, value)
	}
	if value, ok := _u.mutation.MaxLoan(); ok {
		_spec.SetField(creditscore.FieldMaxLoan, field.TypeOther, value)
	}
	if value, ok := _u.mutation.SuggestedDownPayment(); ok {
		_spec.SetField(creditscore.FieldSuggestedDownPayment, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(creditscore.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creditscore.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(creditscore.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(creditscore.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBreakdown(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creditscore.FieldBreakdown, value)
		})
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(creditscore.FieldBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(creditscore.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(creditscore.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(creditscore.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(creditscore.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creditscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditScoreUpdateOne is the builder for updating a single CreditScore entity.
type CreditScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditScoreMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *CreditScoreUpdateOne) SetSubjectID(v uuid.UUID) *CreditScoreUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableSubjectID(v *uuid.UUID) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CreditScoreUpdateOne) SetScore(v int) *CreditScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableScore(v *int) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CreditScoreUpdateOne) AddScore(v int) *CreditScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *CreditScoreUpdateOne) SetRiskTier(v string) *CreditScoreUpdateOne {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableRiskTier(v *string) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetEstimatedMonthlyIncome sets the "estimated_monthly_income" field.
func (_u *CreditScoreUpdateOne) SetEstimatedMonthlyIncome(v decimal.Decimal) *CreditScoreUpdateOne {
	_u.mutation.SetEstimatedMonthlyIncome(v)
	return _u
}

// SetNillableEstimatedMonthlyIncome sets the "estimated_monthly_income" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableEstimatedMonthlyIncome(v *decimal.Decimal) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetEstimatedMonthlyIncome(*v)
	}
	return _u
}

// SetMaxLoan sets the "max_loan" field.
func (_u *CreditScoreUpdateOne) SetMaxLoan(v decimal.Decimal) *CreditScoreUpdateOne {
	_u.mutation.SetMaxLoan(v)
	return _u
}

// SetNillableMaxLoan sets the "max_loan" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableMaxLoan(v *decimal.Decimal) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetMaxLoan(*v)
	}
	return _u
}

// SetSuggestedDownPayment sets the "suggested_down_payment" field.
func (_u *CreditScoreUpdateOne) SetSuggestedDownPayment(v decimal.Decimal) *CreditScoreUpdateOne {
	_u.mutation.SetSuggestedDownPayment(v)
	return _u
}

// SetNillableSuggestedDownPayment sets the "suggested_down_payment" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableSuggestedDownPayment(v *decimal.Decimal) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetSuggestedDownPayment(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *CreditScoreUpdateOne) SetRecommendations(v []string) *CreditScoreUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *CreditScoreUpdateOne) AppendRecommendations(v []string) *CreditScoreUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *CreditScoreUpdateOne) ClearRecommendations() *CreditScoreUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *CreditScoreUpdateOne) SetBreakdown(v json.RawMessage) *CreditScoreUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// AppendBreakdown appends value to the "breakdown" field.
func (_u *CreditScoreUpdateOne) AppendBreakdown(v json.RawMessage) *CreditScoreUpdateOne {
	_u.mutation.AppendBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *CreditScoreUpdateOne) ClearBreakdown() *CreditScoreUpdateOne {
	_u.mutation.ClearBreakdown()
	return _u
}

// SetActive sets the "active" field.
func (_u *CreditScoreUpdateOne) SetActive(v bool) *CreditScoreUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableActive(v *bool) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *CreditScoreUpdateOne) SetComputedAt(v time.Time) *CreditScoreUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableComputedAt(v *time.Time) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CreditScoreUpdateOne) SetExpiresAt(v time.Time) *CreditScoreUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableExpiresAt(v *time.Time) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CreditScoreUpdateOne) SetCreatedAt(v time.Time) *CreditScoreUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableCreatedAt(v *time.Time) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditScoreUpdateOne) SetUpdatedAt(v time.Time) *CreditScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreditScoreMutation object of the builder.
func (_u *CreditScoreUpdateOne) Mutation() *CreditScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the CreditScoreUpdate builder.
func (_u *CreditScoreUpdateOne) Where(ps ...predicate.CreditScore) *CreditScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditScoreUpdateOne) Select(field string, fields ...string) *CreditScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditScore entity.
func (_u *CreditScoreUpdateOne) Save(ctx context.Context) (*CreditScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditScoreUpdateOne) SaveX(ctx context.Context) *CreditScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creditscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := creditscore.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CreditScore.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := creditscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "CreditScore.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *CreditScoreUpdateOne) sqlSave(ctx context.Context) (_node *CreditScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditscore.Table, creditscore.Columns, sqlgraph.NewFieldSpec(creditscore.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditscore.FieldID)
		for _, f := range fields {
			if !creditscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditscore.FieldID {
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
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(creditscore.FieldSubjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(creditscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(creditscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(creditscore.FieldRiskTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedMonthlyIncome(); ok {
		_spec.SetField(creditscore.FieldEstimatedMonthlyIncome, field.TypeOther, value)
	}
	if value, ok := _u.mutation.MaxLoan(); ok {
		_spec.SetField(creditscore.FieldMaxLoan, field.TypeOther, value)
	}
	if value, ok := _u.mutation.SuggestedDownPayment(); ok {
		_spec.SetField(creditscore.FieldSuggestedDownPayment, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(creditscore.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creditscore.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(creditscore.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(creditscore.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBreakdown(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creditscore.FieldBreakdown, value)
		})
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(creditscore.FieldBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(creditscore.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(creditscore.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(creditscore.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(creditscore.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creditscore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CreditScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
