// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ajauregui69/livo-backend/gen/ent/creditscore"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditScoreCreate is the builder for creating a CreditScore entity.
type CreditScoreCreate struct {
	config
	mutation *CreditScoreMutation
	hooks    []Hook
}

// SetSubjectID sets the "subject_id" field.
func (_c *CreditScoreCreate) SetSubjectID(v uuid.UUID) *CreditScoreCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CreditScoreCreate) SetScore(v int) *CreditScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *CreditScoreCreate) SetRiskTier(v string) *CreditScoreCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetEstimatedMonthlyIncome sets the "estimated_monthly_income" field.
func (_c *CreditScoreCreate) SetEstimatedMonthlyIncome(v decimal.Decimal) *CreditScoreCreate {
	_c.mutation.SetEstimatedMonthlyIncome(v)
	return _c
}

// SetNillableEstimatedMonthlyIncome sets the "estimated_monthly_income" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableEstimatedMonthlyIncome(v *decimal.Decimal) *CreditScoreCreate {
	if v != nil {
		_c.SetEstimatedMonthlyIncome(*v)
	}
	return _c
}

// SetMaxLoan sets the "max_loan" field.
func (_c *CreditScoreCreate) SetMaxLoan(v decimal.Decimal) *CreditScoreCreate {
	_c.mutation.SetMaxLoan(v)
	return _c
}

// SetNillableMaxLoan sets the "max_loan" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableMaxLoan(v *decimal.Decimal) *CreditScoreCreate {
	if v != nil {
		_c.SetMaxLoan(*v)
	}
	return _c
}

// SetSuggestedDownPayment sets the "suggested_down_payment" field.
func (_c *CreditScoreCreate) SetSuggestedDownPayment(v decimal.Decimal) *CreditScoreCreate {
	_c.mutation.SetSuggestedDownPayment(v)
	return _c
}

// SetNillableSuggestedDownPayment sets the "suggested_down_payment" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableSuggestedDownPayment(v *decimal.Decimal) *CreditScoreCreate {
	if v != nil {
		_c.SetSuggestedDownPayment(*v)
	}
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *CreditScoreCreate) SetRecommendations(v []string) *CreditScoreCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *CreditScoreCreate) SetBreakdown(v json.RawMessage) *CreditScoreCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *CreditScoreCreate) SetActive(v bool) *CreditScoreCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableActive(v *bool) *CreditScoreCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *CreditScoreCreate) SetComputedAt(v time.Time) *CreditScoreCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableComputedAt(v *time.Time) *CreditScoreCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *CreditScoreCreate) SetExpiresAt(v time.Time) *CreditScoreCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditScoreCreate) SetCreatedAt(v time.Time) *CreditScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableCreatedAt(v *time.Time) *CreditScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CreditScoreCreate) SetUpdatedAt(v time.Time) *CreditScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableUpdatedAt(v *time.Time) *CreditScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditScoreCreate) SetID(v uuid.UUID) *CreditScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableID(v *uuid.UUID) *CreditScoreCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CreditScoreMutation object of the builder.
func (_c *CreditScoreCreate) Mutation() *CreditScoreMutation {
	return _c.mutation
}

// Save creates the CreditScore in the database.
func (_c *CreditScoreCreate) Save(ctx context.Context) (*CreditScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditScoreCreate) SaveX(ctx context.Context) *CreditScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditScoreCreate) defaults() {
	if _, ok := _c.mutation.EstimatedMonthlyIncome(); !ok {
		v := creditscore.DefaultEstimatedMonthlyIncome
		_c.mutation.SetEstimatedMonthlyIncome(v)
	}
	if _, ok := _c.mutation.MaxLoan(); !ok {
		v := creditscore.DefaultMaxLoan
		_c.mutation.SetMaxLoan(v)
	}
	if _, ok := _c.mutation.SuggestedDownPayment(); !ok {
		v := creditscore.DefaultSuggestedDownPayment
		_c.mutation.SetSuggestedDownPayment(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := creditscore.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := creditscore.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creditscore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := creditscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := creditscore.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditScoreCreate) check() error {
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "CreditScore.subject_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CreditScore.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := creditscore.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CreditScore.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "CreditScore.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := creditscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "CreditScore.risk_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedMonthlyIncome(); !ok {
		return &ValidationError{Name: "estimated_monthly_income", err: errors.New(`ent: missing required field "CreditScore.estimated_monthly_income"`)}
	}
	if _, ok := _c.mutation.MaxLoan(); !ok {
		return &ValidationError{Name: "max_loan", err: errors.New(`ent: missing required field "CreditScore.max_loan"`)}
	}
	if _, ok := _c.mutation.SuggestedDownPayment(); !ok {
		return &ValidationError{Name: "suggested_down_payment", err: errors.New(`ent: missing required field "CreditScore.suggested_down_payment"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "CreditScore.active"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "CreditScore.computed_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "CreditScore.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditScore.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditScore.updated_at"`)}
	}
	return nil
}

func (_c *CreditScoreCreate) sqlSave(ctx context.Context) (*CreditScore, error) {
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

func (_c *CreditScoreCreate) createSpec() (*CreditScore, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creditscore.Table, sqlgraph.NewFieldSpec(creditscore.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(creditscore.FieldSubjectID, field.TypeUUID, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(creditscore.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(creditscore.FieldRiskTier, field.TypeString, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.EstimatedMonthlyIncome(); ok {
		_spec.SetField(creditscore.FieldEstimatedMonthlyIncome, field.TypeOther, value)
		_node.EstimatedMonthlyIncome = value
	}
	if value, ok := _c.mutation.MaxLoan(); ok {
		_spec.SetField(creditscore.FieldMaxLoan, field.TypeOther, value)
		_node.MaxLoan = value
	}
	if value, ok := _c.mutation.SuggestedDownPayment(); ok {
		_spec.SetField(creditscore.FieldSuggestedDownPayment, field.TypeOther, value)
		_node.SuggestedDownPayment = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(creditscore.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(creditscore.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(creditscore.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(creditscore.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(creditscore.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creditscore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(creditscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CreditScoreCreateBulk is the builder for creating many CreditScore entities in bulk.
type CreditScoreCreateBulk struct {
	config
	err      error
	builders []*CreditScoreCreate
}

// Save creates the CreditScore entities in the database.
func (_c *CreditScoreCreateBulk) Save(ctx context.Context) ([]*CreditScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditScoreMutation)
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
func (_c *CreditScoreCreateBulk) SaveX(ctx context.Context) []*CreditScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
