// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Ajauregui69/livo-backend/gen/ent/creditscore"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/gen/ent/documentreview"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractedfield"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractionrule"
	"github.com/Ajauregui69/livo-backend/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCreditScore    = "CreditScore"
	TypeDocument       = "Document"
	TypeDocumentReview = "DocumentReview"
	TypeExtractedField = "ExtractedField"
	TypeExtractionRule = "ExtractionRule"
)

// CreditScoreMutation represents an operation that mutates the CreditScore nodes in the graph.
type CreditScoreMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	subject_id               *uuid.UUID
	score                    *int
	addscore                 *int
	risk_tier                *string
	estimated_monthly_income *decimal.Decimal
	max_loan                 *decimal.Decimal
	suggested_down_payment   *decimal.Decimal
	recommendations          *[]string
	appendrecommendations    []string
	breakdown                *json.RawMessage
	appendbreakdown          json.RawMessage
	active                   *bool
	computed_at              *time.Time
	expires_at               *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*CreditScore, error)
	predicates               []predicate.CreditScore
}

var _ ent.Mutation = (*CreditScoreMutation)(nil)

// creditscoreOption allows management of the mutation configuration using functional options.
type creditscoreOption func(*CreditScoreMutation)

// newCreditScoreMutation creates new mutation for the CreditScore entity.
func newCreditScoreMutation(c config, op Op, opts ...creditscoreOption) *CreditScoreMutation {
	m := &CreditScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditScoreID sets the ID field of the mutation.
func withCreditScoreID(id uuid.UUID) creditscoreOption {
	return func(m *CreditScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditScore
		)
		m.oldValue = func(ctx context.Context) (*CreditScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditScore sets the old CreditScore of the mutation.
func withCreditScore(node *CreditScore) creditscoreOption {
	return func(m *CreditScoreMutation) {
		m.oldValue = func(context.Context) (*CreditScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditScore entities.
func (m *CreditScoreMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditScoreMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditScoreMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubjectID sets the "subject_id" field.
func (m *CreditScoreMutation) SetSubjectID(u uuid.UUID) {
	m.subject_id = &u
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *CreditScoreMutation) SubjectID() (r uuid.UUID, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldSubjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *CreditScoreMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetScore sets the "score" field.
func (m *CreditScoreMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *CreditScoreMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *CreditScoreMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *CreditScoreMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *CreditScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetRiskTier sets the "risk_tier" field.
func (m *CreditScoreMutation) SetRiskTier(s string) {
	m.risk_tier = &s
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *CreditScoreMutation) RiskTier() (r string, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldRiskTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *CreditScoreMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetEstimatedMonthlyIncome sets the "estimated_monthly_income" field.
func (m *CreditScoreMutation) SetEstimatedMonthlyIncome(d decimal.Decimal) {
	m.estimated_monthly_income = &d
}

// EstimatedMonthlyIncome returns the value of the "estimated_monthly_income" field in the mutation.
func (m *CreditScoreMutation) EstimatedMonthlyIncome() (r decimal.Decimal, exists bool) {
	v := m.estimated_monthly_income
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMonthlyIncome returns the old "estimated_monthly_income" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldEstimatedMonthlyIncome(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMonthlyIncome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMonthlyIncome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMonthlyIncome: %w", err)
	}
	return oldValue.EstimatedMonthlyIncome, nil
}

// ResetEstimatedMonthlyIncome resets all changes to the "estimated_monthly_income" field.
func (m *CreditScoreMutation) ResetEstimatedMonthlyIncome() {
	m.estimated_monthly_income = nil
}

// SetMaxLoan sets the "max_loan" field.
func (m *CreditScoreMutation) SetMaxLoan(d decimal.Decimal) {
	m.max_loan = &d
}

// MaxLoan returns the value of the "max_loan" field in the mutation.
func (m *CreditScoreMutation) MaxLoan() (r decimal.Decimal, exists bool) {
	v := m.max_loan
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxLoan returns the old "max_loan" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldMaxLoan(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxLoan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxLoan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxLoan: %w", err)
	}
	return oldValue.MaxLoan, nil
}

// ResetMaxLoan resets all changes to the "max_loan" field.
func (m *CreditScoreMutation) ResetMaxLoan() {
	m.max_loan = nil
}

// SetSuggestedDownPayment sets the "suggested_down_payment" field.
func (m *CreditScoreMutation) SetSuggestedDownPayment(d decimal.Decimal) {
	m.suggested_down_payment = &d
}

// SuggestedDownPayment returns the value of the "suggested_down_payment" field in the mutation.
func (m *CreditScoreMutation) SuggestedDownPayment() (r decimal.Decimal, exists bool) {
	v := m.suggested_down_payment
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedDownPayment returns the old "suggested_down_payment" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldSuggestedDownPayment(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedDownPayment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedDownPayment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedDownPayment: %w", err)
	}
	return oldValue.SuggestedDownPayment, nil
}

// ResetSuggestedDownPayment resets all changes to the "suggested_down_payment" field.
func (m *CreditScoreMutation) ResetSuggestedDownPayment() {
	m.suggested_down_payment = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *CreditScoreMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *CreditScoreMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *CreditScoreMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *CreditScoreMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *CreditScoreMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[creditscore.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *CreditScoreMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[creditscore.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *CreditScoreMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, creditscore.FieldRecommendations)
}

// SetBreakdown sets the "breakdown" field.
func (m *CreditScoreMutation) SetBreakdown(jm json.RawMessage) {
	m.breakdown = &jm
	m.appendbreakdown = nil
}

// Breakdown returns the value of the "breakdown" field in the mutation.
func (m *CreditScoreMutation) Breakdown() (r json.RawMessage, exists bool) {
	v := m.breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakdown returns the old "breakdown" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldBreakdown(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakdown: %w", err)
	}
	return oldValue.Breakdown, nil
}

// AppendBreakdown adds jm to the "breakdown" field.
func (m *CreditScoreMutation) AppendBreakdown(jm json.RawMessage) {
	m.appendbreakdown = append(m.appendbreakdown, jm...)
}

// AppendedBreakdown returns the list of values that were appended to the "breakdown" field in this mutation.
func (m *CreditScoreMutation) AppendedBreakdown() (json.RawMessage, bool) {
	if len(m.appendbreakdown) == 0 {
		return nil, false
	}
	return m.appendbreakdown, true
}

// ClearBreakdown clears the value of the "breakdown" field.
func (m *CreditScoreMutation) ClearBreakdown() {
	m.breakdown = nil
	m.appendbreakdown = nil
	m.clearedFields[creditscore.FieldBreakdown] = struct{}{}
}

// BreakdownCleared returns if the "breakdown" field was cleared in this mutation.
func (m *CreditScoreMutation) BreakdownCleared() bool {
	_, ok := m.clearedFields[creditscore.FieldBreakdown]
	return ok
}

// ResetBreakdown resets all changes to the "breakdown" field.
func (m *CreditScoreMutation) ResetBreakdown() {
	m.breakdown = nil
	m.appendbreakdown = nil
	delete(m.clearedFields, creditscore.FieldBreakdown)
}

// SetActive sets the "active" field.
func (m *CreditScoreMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *CreditScoreMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *CreditScoreMutation) ResetActive() {
	m.active = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *CreditScoreMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *CreditScoreMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *CreditScoreMutation) ResetComputedAt() {
	m.computed_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *CreditScoreMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *CreditScoreMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *CreditScoreMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditScoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditScoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditScoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreditScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreditScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreditScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CreditScoreMutation builder.
func (m *CreditScoreMutation) Where(ps ...predicate.CreditScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditScore).
func (m *CreditScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditScoreMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.subject_id != nil {
		fields = append(fields, creditscore.FieldSubjectID)
	}
	if m.score != nil {
		fields = append(fields, creditscore.FieldScore)
	}
	if m.risk_tier != nil {
		fields = append(fields, creditscore.FieldRiskTier)
	}
	if m.estimated_monthly_income != nil {
		fields = append(fields, creditscore.FieldEstimatedMonthlyIncome)
	}
	if m.max_loan != nil {
		fields = append(fields, creditscore.FieldMaxLoan)
	}
	if m.suggested_down_payment != nil {
		fields = append(fields, creditscore.FieldSuggestedDownPayment)
	}
	if m.recommendations != nil {
		fields = append(fields, creditscore.FieldRecommendations)
	}
	if m.breakdown != nil {
		fields = append(fields, creditscore.FieldBreakdown)
	}
	if m.active != nil {
		fields = append(fields, creditscore.FieldActive)
	}
	if m.computed_at != nil {
		fields = append(fields, creditscore.FieldComputedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, creditscore.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, creditscore.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creditscore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creditscore.FieldSubjectID:
		return m.SubjectID()
	case creditscore.FieldScore:
		return m.Score()
	case creditscore.FieldRiskTier:
		return m.RiskTier()
	case creditscore.FieldEstimatedMonthlyIncome:
		return m.EstimatedMonthlyIncome()
	case creditscore.FieldMaxLoan:
		return m.MaxLoan()
	case creditscore.FieldSuggestedDownPayment:
		return m.SuggestedDownPayment()
	case creditscore.FieldRecommendations:
		return m.Recommendations()
	case creditscore.FieldBreakdown:
		return m.Breakdown()
	case creditscore.FieldActive:
		return m.Active()
	case creditscore.FieldComputedAt:
		return m.ComputedAt()
	case creditscore.FieldExpiresAt:
		return m.ExpiresAt()
	case creditscore.FieldCreatedAt:
		return m.CreatedAt()
	case creditscore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creditscore.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case creditscore.FieldScore:
		return m.OldScore(ctx)
	case creditscore.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case creditscore.FieldEstimatedMonthlyIncome:
		return m.OldEstimatedMonthlyIncome(ctx)
	case creditscore.FieldMaxLoan:
		return m.OldMaxLoan(ctx)
	case creditscore.FieldSuggestedDownPayment:
		return m.OldSuggestedDownPayment(ctx)
	case creditscore.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case creditscore.FieldBreakdown:
		return m.OldBreakdown(ctx)
	case creditscore.FieldActive:
		return m.OldActive(ctx)
	case creditscore.FieldComputedAt:
		return m.OldComputedAt(ctx)
	case creditscore.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case creditscore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creditscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CreditScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creditscore.FieldSubjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case creditscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case creditscore.FieldRiskTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case creditscore.FieldEstimatedMonthlyIncome:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMonthlyIncome(v)
		return nil
	case creditscore.FieldMaxLoan:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxLoan(v)
		return nil
	case creditscore.FieldSuggestedDownPayment:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedDownPayment(v)
		return nil
	case creditscore.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case creditscore.FieldBreakdown:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakdown(v)
		return nil
	case creditscore.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case creditscore.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	case creditscore.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case creditscore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creditscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CreditScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, creditscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case creditscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case creditscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown CreditScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creditscore.FieldRecommendations) {
		fields = append(fields, creditscore.FieldRecommendations)
	}
	if m.FieldCleared(creditscore.FieldBreakdown) {
		fields = append(fields, creditscore.FieldBreakdown)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditScoreMutation) ClearField(name string) error {
	switch name {
	case creditscore.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case creditscore.FieldBreakdown:
		m.ClearBreakdown()
		return nil
	}
	return fmt.Errorf("unknown CreditScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditScoreMutation) ResetField(name string) error {
	switch name {
	case creditscore.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case creditscore.FieldScore:
		m.ResetScore()
		return nil
	case creditscore.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case creditscore.FieldEstimatedMonthlyIncome:
		m.ResetEstimatedMonthlyIncome()
		return nil
	case creditscore.FieldMaxLoan:
		m.ResetMaxLoan()
		return nil
	case creditscore.FieldSuggestedDownPayment:
		m.ResetSuggestedDownPayment()
		return nil
	case creditscore.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case creditscore.FieldBreakdown:
		m.ResetBreakdown()
		return nil
	case creditscore.FieldActive:
		m.ResetActive()
		return nil
	case creditscore.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	case creditscore.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case creditscore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creditscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CreditScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CreditScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CreditScore edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	subject_id       *uuid.UUID
	doc_type         *string
	storage_key      *string
	file_name        *string
	mime_type        *string
	status           *string
	extracted_data   *map[string]string
	processing_notes *string
	processed_at     *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	fields           map[uuid.UUID]struct{}
	removedfields    map[uuid.UUID]struct{}
	clearedfields    bool
	reviews          map[uuid.UUID]struct{}
	removedreviews   map[uuid.UUID]struct{}
	clearedreviews   bool
	done             bool
	oldValue         func(context.Context) (*Document, error)
	predicates       []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubjectID sets the "subject_id" field.
func (m *DocumentMutation) SetSubjectID(u uuid.UUID) {
	m.subject_id = &u
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *DocumentMutation) SubjectID() (r uuid.UUID, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSubjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *DocumentMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *DocumentMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *DocumentMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *DocumentMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetExtractedData sets the "extracted_data" field.
func (m *DocumentMutation) SetExtractedData(value map[string]string) {
	m.extracted_data = &value
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *DocumentMutation) ExtractedData() (r map[string]string, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedData(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *DocumentMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.clearedFields[document.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *DocumentMutation) ResetExtractedData() {
	m.extracted_data = nil
	delete(m.clearedFields, document.FieldExtractedData)
}

// SetProcessingNotes sets the "processing_notes" field.
func (m *DocumentMutation) SetProcessingNotes(s string) {
	m.processing_notes = &s
}

// ProcessingNotes returns the value of the "processing_notes" field in the mutation.
func (m *DocumentMutation) ProcessingNotes() (r string, exists bool) {
	v := m.processing_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingNotes returns the old "processing_notes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingNotes: %w", err)
	}
	return oldValue.ProcessingNotes, nil
}

// ClearProcessingNotes clears the value of the "processing_notes" field.
func (m *DocumentMutation) ClearProcessingNotes() {
	m.processing_notes = nil
	m.clearedFields[document.FieldProcessingNotes] = struct{}{}
}

// ProcessingNotesCleared returns if the "processing_notes" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingNotesCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingNotes]
	return ok
}

// ResetProcessingNotes resets all changes to the "processing_notes" field.
func (m *DocumentMutation) ResetProcessingNotes() {
	m.processing_notes = nil
	delete(m.clearedFields, document.FieldProcessingNotes)
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by ids.
func (m *DocumentMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the ExtractedField entity.
func (m *DocumentMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the ExtractedField entity was cleared.
func (m *DocumentMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the ExtractedField entity by IDs.
func (m *DocumentMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the ExtractedField entity.
func (m *DocumentMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *DocumentMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *DocumentMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddReviewIDs adds the "reviews" edge to the DocumentReview entity by ids.
func (m *DocumentMutation) AddReviewIDs(ids ...uuid.UUID) {
	if m.reviews == nil {
		m.reviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reviews[ids[i]] = struct{}{}
	}
}

// ClearReviews clears the "reviews" edge to the DocumentReview entity.
func (m *DocumentMutation) ClearReviews() {
	m.clearedreviews = true
}

// ReviewsCleared reports if the "reviews" edge to the DocumentReview entity was cleared.
func (m *DocumentMutation) ReviewsCleared() bool {
	return m.clearedreviews
}

// RemoveReviewIDs removes the "reviews" edge to the DocumentReview entity by IDs.
func (m *DocumentMutation) RemoveReviewIDs(ids ...uuid.UUID) {
	if m.removedreviews == nil {
		m.removedreviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reviews, ids[i])
		m.removedreviews[ids[i]] = struct{}{}
	}
}

// RemovedReviews returns the removed IDs of the "reviews" edge to the DocumentReview entity.
func (m *DocumentMutation) RemovedReviewsIDs() (ids []uuid.UUID) {
	for id := range m.removedreviews {
		ids = append(ids, id)
	}
	return
}

// ReviewsIDs returns the "reviews" edge IDs in the mutation.
func (m *DocumentMutation) ReviewsIDs() (ids []uuid.UUID) {
	for id := range m.reviews {
		ids = append(ids, id)
	}
	return
}

// ResetReviews resets all changes to the "reviews" edge.
func (m *DocumentMutation) ResetReviews() {
	m.reviews = nil
	m.clearedreviews = false
	m.removedreviews = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.subject_id != nil {
		fields = append(fields, document.FieldSubjectID)
	}
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.storage_key != nil {
		fields = append(fields, document.FieldStorageKey)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.mime_type != nil {
		fields = append(fields, document.FieldMimeType)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.extracted_data != nil {
		fields = append(fields, document.FieldExtractedData)
	}
	if m.processing_notes != nil {
		fields = append(fields, document.FieldProcessingNotes)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSubjectID:
		return m.SubjectID()
	case document.FieldDocType:
		return m.DocType()
	case document.FieldStorageKey:
		return m.StorageKey()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldMimeType:
		return m.MimeType()
	case document.FieldStatus:
		return m.Status()
	case document.FieldExtractedData:
		return m.ExtractedData()
	case document.FieldProcessingNotes:
		return m.ProcessingNotes()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldMimeType:
		return m.OldMimeType(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case document.FieldProcessingNotes:
		return m.OldProcessingNotes(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldSubjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldExtractedData:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case document.FieldProcessingNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingNotes(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldExtractedData) {
		fields = append(fields, document.FieldExtractedData)
	}
	if m.FieldCleared(document.FieldProcessingNotes) {
		fields = append(fields, document.FieldProcessingNotes)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case document.FieldProcessingNotes:
		m.ClearProcessingNotes()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldMimeType:
		m.ResetMimeType()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case document.FieldProcessingNotes:
		m.ResetProcessingNotes()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.fields != nil {
		edges = append(edges, document.EdgeFields)
	}
	if m.reviews != nil {
		edges = append(edges, document.EdgeReviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.reviews))
		for id := range m.reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfields != nil {
		edges = append(edges, document.EdgeFields)
	}
	if m.removedreviews != nil {
		edges = append(edges, document.EdgeReviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.removedreviews))
		for id := range m.removedreviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfields {
		edges = append(edges, document.EdgeFields)
	}
	if m.clearedreviews {
		edges = append(edges, document.EdgeReviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeFields:
		return m.clearedfields
	case document.EdgeReviews:
		return m.clearedreviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeFields:
		m.ResetFields()
		return nil
	case document.EdgeReviews:
		m.ResetReviews()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentReviewMutation represents an operation that mutates the DocumentReview nodes in the graph.
type DocumentReviewMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	status              *string
	confidence_score    *float64
	addconfidence_score *float64
	extraction_notes    *string
	auto_extracted      *map[string]string
	reviewed_fields     *map[string]string
	corrections         *map[string]bool
	reviewer_id         *uuid.UUID
	assigned_at         *time.Time
	reviewed_at         *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	done                bool
	oldValue            func(context.Context) (*DocumentReview, error)
	predicates          []predicate.DocumentReview
}

var _ ent.Mutation = (*DocumentReviewMutation)(nil)

// documentreviewOption allows management of the mutation configuration using functional options.
type documentreviewOption func(*DocumentReviewMutation)

// newDocumentReviewMutation creates new mutation for the DocumentReview entity.
func newDocumentReviewMutation(c config, op Op, opts ...documentreviewOption) *DocumentReviewMutation {
	m := &DocumentReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentReviewID sets the ID field of the mutation.
func withDocumentReviewID(id uuid.UUID) documentreviewOption {
	return func(m *DocumentReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentReview
		)
		m.oldValue = func(ctx context.Context) (*DocumentReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentReview sets the old DocumentReview of the mutation.
func withDocumentReview(node *DocumentReview) documentreviewOption {
	return func(m *DocumentReviewMutation) {
		m.oldValue = func(context.Context) (*DocumentReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentReview entities.
func (m *DocumentReviewMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentReviewMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentReviewMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentReviewMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentReviewMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentReviewMutation) ResetDocumentID() {
	m.document = nil
}

// SetStatus sets the "status" field.
func (m *DocumentReviewMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentReviewMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentReviewMutation) ResetStatus() {
	m.status = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *DocumentReviewMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *DocumentReviewMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *DocumentReviewMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *DocumentReviewMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *DocumentReviewMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[documentreview.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *DocumentReviewMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *DocumentReviewMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, documentreview.FieldConfidenceScore)
}

// SetExtractionNotes sets the "extraction_notes" field.
func (m *DocumentReviewMutation) SetExtractionNotes(s string) {
	m.extraction_notes = &s
}

// ExtractionNotes returns the value of the "extraction_notes" field in the mutation.
func (m *DocumentReviewMutation) ExtractionNotes() (r string, exists bool) {
	v := m.extraction_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionNotes returns the old "extraction_notes" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldExtractionNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionNotes: %w", err)
	}
	return oldValue.ExtractionNotes, nil
}

// ClearExtractionNotes clears the value of the "extraction_notes" field.
func (m *DocumentReviewMutation) ClearExtractionNotes() {
	m.extraction_notes = nil
	m.clearedFields[documentreview.FieldExtractionNotes] = struct{}{}
}

// ExtractionNotesCleared returns if the "extraction_notes" field was cleared in this mutation.
func (m *DocumentReviewMutation) ExtractionNotesCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldExtractionNotes]
	return ok
}

// ResetExtractionNotes resets all changes to the "extraction_notes" field.
func (m *DocumentReviewMutation) ResetExtractionNotes() {
	m.extraction_notes = nil
	delete(m.clearedFields, documentreview.FieldExtractionNotes)
}

// SetAutoExtracted sets the "auto_extracted" field.
func (m *DocumentReviewMutation) SetAutoExtracted(value map[string]string) {
	m.auto_extracted = &value
}

// AutoExtracted returns the value of the "auto_extracted" field in the mutation.
func (m *DocumentReviewMutation) AutoExtracted() (r map[string]string, exists bool) {
	v := m.auto_extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoExtracted returns the old "auto_extracted" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldAutoExtracted(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoExtracted: %w", err)
	}
	return oldValue.AutoExtracted, nil
}

// ClearAutoExtracted clears the value of the "auto_extracted" field.
func (m *DocumentReviewMutation) ClearAutoExtracted() {
	m.auto_extracted = nil
	m.clearedFields[documentreview.FieldAutoExtracted] = struct{}{}
}

// AutoExtractedCleared returns if the "auto_extracted" field was cleared in this mutation.
func (m *DocumentReviewMutation) AutoExtractedCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldAutoExtracted]
	return ok
}

// ResetAutoExtracted resets all changes to the "auto_extracted" field.
func (m *DocumentReviewMutation) ResetAutoExtracted() {
	m.auto_extracted = nil
	delete(m.clearedFields, documentreview.FieldAutoExtracted)
}

// SetReviewedFields sets the "reviewed_fields" field.
func (m *DocumentReviewMutation) SetReviewedFields(value map[string]string) {
	m.reviewed_fields = &value
}

// ReviewedFields returns the value of the "reviewed_fields" field in the mutation.
func (m *DocumentReviewMutation) ReviewedFields() (r map[string]string, exists bool) {
	v := m.reviewed_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedFields returns the old "reviewed_fields" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldReviewedFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedFields: %w", err)
	}
	return oldValue.ReviewedFields, nil
}

// ClearReviewedFields clears the value of the "reviewed_fields" field.
func (m *DocumentReviewMutation) ClearReviewedFields() {
	m.reviewed_fields = nil
	m.clearedFields[documentreview.FieldReviewedFields] = struct{}{}
}

// ReviewedFieldsCleared returns if the "reviewed_fields" field was cleared in this mutation.
func (m *DocumentReviewMutation) ReviewedFieldsCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldReviewedFields]
	return ok
}

// ResetReviewedFields resets all changes to the "reviewed_fields" field.
func (m *DocumentReviewMutation) ResetReviewedFields() {
	m.reviewed_fields = nil
	delete(m.clearedFields, documentreview.FieldReviewedFields)
}

// SetCorrections sets the "corrections" field.
func (m *DocumentReviewMutation) SetCorrections(value map[string]bool) {
	m.corrections = &value
}

// Corrections returns the value of the "corrections" field in the mutation.
func (m *DocumentReviewMutation) Corrections() (r map[string]bool, exists bool) {
	v := m.corrections
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrections returns the old "corrections" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldCorrections(ctx context.Context) (v map[string]bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrections: %w", err)
	}
	return oldValue.Corrections, nil
}

// ClearCorrections clears the value of the "corrections" field.
func (m *DocumentReviewMutation) ClearCorrections() {
	m.corrections = nil
	m.clearedFields[documentreview.FieldCorrections] = struct{}{}
}

// CorrectionsCleared returns if the "corrections" field was cleared in this mutation.
func (m *DocumentReviewMutation) CorrectionsCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldCorrections]
	return ok
}

// ResetCorrections resets all changes to the "corrections" field.
func (m *DocumentReviewMutation) ResetCorrections() {
	m.corrections = nil
	delete(m.clearedFields, documentreview.FieldCorrections)
}

// SetReviewerID sets the "reviewer_id" field.
func (m *DocumentReviewMutation) SetReviewerID(u uuid.UUID) {
	m.reviewer_id = &u
}

// ReviewerID returns the value of the "reviewer_id" field in the mutation.
func (m *DocumentReviewMutation) ReviewerID() (r uuid.UUID, exists bool) {
	v := m.reviewer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerID returns the old "reviewer_id" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldReviewerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerID: %w", err)
	}
	return oldValue.ReviewerID, nil
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (m *DocumentReviewMutation) ClearReviewerID() {
	m.reviewer_id = nil
	m.clearedFields[documentreview.FieldReviewerID] = struct{}{}
}

// ReviewerIDCleared returns if the "reviewer_id" field was cleared in this mutation.
func (m *DocumentReviewMutation) ReviewerIDCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldReviewerID]
	return ok
}

// ResetReviewerID resets all changes to the "reviewer_id" field.
func (m *DocumentReviewMutation) ResetReviewerID() {
	m.reviewer_id = nil
	delete(m.clearedFields, documentreview.FieldReviewerID)
}

// SetAssignedAt sets the "assigned_at" field.
func (m *DocumentReviewMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *DocumentReviewMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (m *DocumentReviewMutation) ClearAssignedAt() {
	m.assigned_at = nil
	m.clearedFields[documentreview.FieldAssignedAt] = struct{}{}
}

// AssignedAtCleared returns if the "assigned_at" field was cleared in this mutation.
func (m *DocumentReviewMutation) AssignedAtCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldAssignedAt]
	return ok
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *DocumentReviewMutation) ResetAssignedAt() {
	m.assigned_at = nil
	delete(m.clearedFields, documentreview.FieldAssignedAt)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *DocumentReviewMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *DocumentReviewMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *DocumentReviewMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[documentreview.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *DocumentReviewMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[documentreview.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *DocumentReviewMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, documentreview.FieldReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentReviewMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentReviewMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DocumentReview entity.
// If the DocumentReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentReviewMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentReviewMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentReviewMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentreview.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentReviewMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentReviewMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentReviewMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentReviewMutation builder.
func (m *DocumentReviewMutation) Where(ps ...predicate.DocumentReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentReview).
func (m *DocumentReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentReviewMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.document != nil {
		fields = append(fields, documentreview.FieldDocumentID)
	}
	if m.status != nil {
		fields = append(fields, documentreview.FieldStatus)
	}
	if m.confidence_score != nil {
		fields = append(fields, documentreview.FieldConfidenceScore)
	}
	if m.extraction_notes != nil {
		fields = append(fields, documentreview.FieldExtractionNotes)
	}
	if m.auto_extracted != nil {
		fields = append(fields, documentreview.FieldAutoExtracted)
	}
	if m.reviewed_fields != nil {
		fields = append(fields, documentreview.FieldReviewedFields)
	}
	if m.corrections != nil {
		fields = append(fields, documentreview.FieldCorrections)
	}
	if m.reviewer_id != nil {
		fields = append(fields, documentreview.FieldReviewerID)
	}
	if m.assigned_at != nil {
		fields = append(fields, documentreview.FieldAssignedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, documentreview.FieldReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, documentreview.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, documentreview.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentreview.FieldDocumentID:
		return m.DocumentID()
	case documentreview.FieldStatus:
		return m.Status()
	case documentreview.FieldConfidenceScore:
		return m.ConfidenceScore()
	case documentreview.FieldExtractionNotes:
		return m.ExtractionNotes()
	case documentreview.FieldAutoExtracted:
		return m.AutoExtracted()
	case documentreview.FieldReviewedFields:
		return m.ReviewedFields()
	case documentreview.FieldCorrections:
		return m.Corrections()
	case documentreview.FieldReviewerID:
		return m.ReviewerID()
	case documentreview.FieldAssignedAt:
		return m.AssignedAt()
	case documentreview.FieldReviewedAt:
		return m.ReviewedAt()
	case documentreview.FieldCreatedAt:
		return m.CreatedAt()
	case documentreview.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentreview.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentreview.FieldStatus:
		return m.OldStatus(ctx)
	case documentreview.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case documentreview.FieldExtractionNotes:
		return m.OldExtractionNotes(ctx)
	case documentreview.FieldAutoExtracted:
		return m.OldAutoExtracted(ctx)
	case documentreview.FieldReviewedFields:
		return m.OldReviewedFields(ctx)
	case documentreview.FieldCorrections:
		return m.OldCorrections(ctx)
	case documentreview.FieldReviewerID:
		return m.OldReviewerID(ctx)
	case documentreview.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case documentreview.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case documentreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case documentreview.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentreview.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentreview.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case documentreview.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case documentreview.FieldExtractionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionNotes(v)
		return nil
	case documentreview.FieldAutoExtracted:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoExtracted(v)
		return nil
	case documentreview.FieldReviewedFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedFields(v)
		return nil
	case documentreview.FieldCorrections:
		v, ok := value.(map[string]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrections(v)
		return nil
	case documentreview.FieldReviewerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerID(v)
		return nil
	case documentreview.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case documentreview.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case documentreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case documentreview.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentReviewMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, documentreview.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentreview.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentreview.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentreview.FieldConfidenceScore) {
		fields = append(fields, documentreview.FieldConfidenceScore)
	}
	if m.FieldCleared(documentreview.FieldExtractionNotes) {
		fields = append(fields, documentreview.FieldExtractionNotes)
	}
	if m.FieldCleared(documentreview.FieldAutoExtracted) {
		fields = append(fields, documentreview.FieldAutoExtracted)
	}
	if m.FieldCleared(documentreview.FieldReviewedFields) {
		fields = append(fields, documentreview.FieldReviewedFields)
	}
	if m.FieldCleared(documentreview.FieldCorrections) {
		fields = append(fields, documentreview.FieldCorrections)
	}
	if m.FieldCleared(documentreview.FieldReviewerID) {
		fields = append(fields, documentreview.FieldReviewerID)
	}
	if m.FieldCleared(documentreview.FieldAssignedAt) {
		fields = append(fields, documentreview.FieldAssignedAt)
	}
	if m.FieldCleared(documentreview.FieldReviewedAt) {
		fields = append(fields, documentreview.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentReviewMutation) ClearField(name string) error {
	switch name {
	case documentreview.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case documentreview.FieldExtractionNotes:
		m.ClearExtractionNotes()
		return nil
	case documentreview.FieldAutoExtracted:
		m.ClearAutoExtracted()
		return nil
	case documentreview.FieldReviewedFields:
		m.ClearReviewedFields()
		return nil
	case documentreview.FieldCorrections:
		m.ClearCorrections()
		return nil
	case documentreview.FieldReviewerID:
		m.ClearReviewerID()
		return nil
	case documentreview.FieldAssignedAt:
		m.ClearAssignedAt()
		return nil
	case documentreview.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentReviewMutation) ResetField(name string) error {
	switch name {
	case documentreview.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentreview.FieldStatus:
		m.ResetStatus()
		return nil
	case documentreview.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case documentreview.FieldExtractionNotes:
		m.ResetExtractionNotes()
		return nil
	case documentreview.FieldAutoExtracted:
		m.ResetAutoExtracted()
		return nil
	case documentreview.FieldReviewedFields:
		m.ResetReviewedFields()
		return nil
	case documentreview.FieldCorrections:
		m.ResetCorrections()
		return nil
	case documentreview.FieldReviewerID:
		m.ResetReviewerID()
		return nil
	case documentreview.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case documentreview.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case documentreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case documentreview.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documentreview.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentreview.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documentreview.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case documentreview.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentReviewMutation) ClearEdge(name string) error {
	switch name {
	case documentreview.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentReviewMutation) ResetEdge(name string) error {
	switch name {
	case documentreview.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentReview edge %s", name)
}

// ExtractedFieldMutation represents an operation that mutates the ExtractedField nodes in the graph.
type ExtractedFieldMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	field_name        *string
	field_type        *string
	extracted_value   *string
	reviewed_value    *string
	confidence        *float64
	addconfidence     *float64
	extraction_method *string
	corrected         *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	document          *uuid.UUID
	cleareddocument   bool
	done              bool
	oldValue          func(context.Context) (*ExtractedField, error)
	predicates        []predicate.ExtractedField
}

var _ ent.Mutation = (*ExtractedFieldMutation)(nil)

// extractedfieldOption allows management of the mutation configuration using functional options.
type extractedfieldOption func(*ExtractedFieldMutation)

// newExtractedFieldMutation creates new mutation for the ExtractedField entity.
func newExtractedFieldMutation(c config, op Op, opts ...extractedfieldOption) *ExtractedFieldMutation {
	m := &ExtractedFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedFieldID sets the ID field of the mutation.
func withExtractedFieldID(id uuid.UUID) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedField
		)
		m.oldValue = func(ctx context.Context) (*ExtractedField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedField sets the old ExtractedField of the mutation.
func withExtractedField(node *ExtractedField) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		m.oldValue = func(context.Context) (*ExtractedField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedField entities.
func (m *ExtractedFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedFieldMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedFieldMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedFieldMutation) ResetDocumentID() {
	m.document = nil
}

// SetFieldName sets the "field_name" field.
func (m *ExtractedFieldMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ExtractedFieldMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ExtractedFieldMutation) ResetFieldName() {
	m.field_name = nil
}

// SetFieldType sets the "field_type" field.
func (m *ExtractedFieldMutation) SetFieldType(s string) {
	m.field_type = &s
}

// FieldType returns the value of the "field_type" field in the mutation.
func (m *ExtractedFieldMutation) FieldType() (r string, exists bool) {
	v := m.field_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldType returns the old "field_type" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldFieldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldType: %w", err)
	}
	return oldValue.FieldType, nil
}

// ResetFieldType resets all changes to the "field_type" field.
func (m *ExtractedFieldMutation) ResetFieldType() {
	m.field_type = nil
}

// SetExtractedValue sets the "extracted_value" field.
func (m *ExtractedFieldMutation) SetExtractedValue(s string) {
	m.extracted_value = &s
}

// ExtractedValue returns the value of the "extracted_value" field in the mutation.
func (m *ExtractedFieldMutation) ExtractedValue() (r string, exists bool) {
	v := m.extracted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedValue returns the old "extracted_value" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldExtractedValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedValue: %w", err)
	}
	return oldValue.ExtractedValue, nil
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (m *ExtractedFieldMutation) ClearExtractedValue() {
	m.extracted_value = nil
	m.clearedFields[extractedfield.FieldExtractedValue] = struct{}{}
}

// ExtractedValueCleared returns if the "extracted_value" field was cleared in this mutation.
func (m *ExtractedFieldMutation) ExtractedValueCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldExtractedValue]
	return ok
}

// ResetExtractedValue resets all changes to the "extracted_value" field.
func (m *ExtractedFieldMutation) ResetExtractedValue() {
	m.extracted_value = nil
	delete(m.clearedFields, extractedfield.FieldExtractedValue)
}

// SetReviewedValue sets the "reviewed_value" field.
func (m *ExtractedFieldMutation) SetReviewedValue(s string) {
	m.reviewed_value = &s
}

// ReviewedValue returns the value of the "reviewed_value" field in the mutation.
func (m *ExtractedFieldMutation) ReviewedValue() (r string, exists bool) {
	v := m.reviewed_value
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedValue returns the old "reviewed_value" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldReviewedValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedValue: %w", err)
	}
	return oldValue.ReviewedValue, nil
}

// ClearReviewedValue clears the value of the "reviewed_value" field.
func (m *ExtractedFieldMutation) ClearReviewedValue() {
	m.reviewed_value = nil
	m.clearedFields[extractedfield.FieldReviewedValue] = struct{}{}
}

// ReviewedValueCleared returns if the "reviewed_value" field was cleared in this mutation.
func (m *ExtractedFieldMutation) ReviewedValueCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldReviewedValue]
	return ok
}

// ResetReviewedValue resets all changes to the "reviewed_value" field.
func (m *ExtractedFieldMutation) ResetReviewedValue() {
	m.reviewed_value = nil
	delete(m.clearedFields, extractedfield.FieldReviewedValue)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractedFieldMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractedFieldMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractedFieldMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractedFieldMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ExtractedFieldMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[extractedfield.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ExtractedFieldMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractedFieldMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, extractedfield.FieldConfidence)
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *ExtractedFieldMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *ExtractedFieldMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldExtractionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *ExtractedFieldMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetCorrected sets the "corrected" field.
func (m *ExtractedFieldMutation) SetCorrected(b bool) {
	m.corrected = &b
}

// Corrected returns the value of the "corrected" field in the mutation.
func (m *ExtractedFieldMutation) Corrected() (r bool, exists bool) {
	v := m.corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrected returns the old "corrected" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrected: %w", err)
	}
	return oldValue.Corrected, nil
}

// ResetCorrected resets all changes to the "corrected" field.
func (m *ExtractedFieldMutation) ResetCorrected() {
	m.corrected = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedFieldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedFieldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedFieldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractedFieldMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractedFieldMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractedFieldMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractedFieldMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractedfield.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractedFieldMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractedFieldMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractedFieldMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractedFieldMutation builder.
func (m *ExtractedFieldMutation) Where(ps ...predicate.ExtractedField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedField).
func (m *ExtractedFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedFieldMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document != nil {
		fields = append(fields, extractedfield.FieldDocumentID)
	}
	if m.field_name != nil {
		fields = append(fields, extractedfield.FieldFieldName)
	}
	if m.field_type != nil {
		fields = append(fields, extractedfield.FieldFieldType)
	}
	if m.extracted_value != nil {
		fields = append(fields, extractedfield.FieldExtractedValue)
	}
	if m.reviewed_value != nil {
		fields = append(fields, extractedfield.FieldReviewedValue)
	}
	if m.confidence != nil {
		fields = append(fields, extractedfield.FieldConfidence)
	}
	if m.extraction_method != nil {
		fields = append(fields, extractedfield.FieldExtractionMethod)
	}
	if m.corrected != nil {
		fields = append(fields, extractedfield.FieldCorrected)
	}
	if m.created_at != nil {
		fields = append(fields, extractedfield.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractedfield.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldDocumentID:
		return m.DocumentID()
	case extractedfield.FieldFieldName:
		return m.FieldName()
	case extractedfield.FieldFieldType:
		return m.FieldType()
	case extractedfield.FieldExtractedValue:
		return m.ExtractedValue()
	case extractedfield.FieldReviewedValue:
		return m.ReviewedValue()
	case extractedfield.FieldConfidence:
		return m.Confidence()
	case extractedfield.FieldExtractionMethod:
		return m.ExtractionMethod()
	case extractedfield.FieldCorrected:
		return m.Corrected()
	case extractedfield.FieldCreatedAt:
		return m.CreatedAt()
	case extractedfield.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedfield.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractedfield.FieldFieldName:
		return m.OldFieldName(ctx)
	case extractedfield.FieldFieldType:
		return m.OldFieldType(ctx)
	case extractedfield.FieldExtractedValue:
		return m.OldExtractedValue(ctx)
	case extractedfield.FieldReviewedValue:
		return m.OldReviewedValue(ctx)
	case extractedfield.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractedfield.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case extractedfield.FieldCorrected:
		return m.OldCorrected(ctx)
	case extractedfield.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractedfield.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractedfield.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case extractedfield.FieldFieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldType(v)
		return nil
	case extractedfield.FieldExtractedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedValue(v)
		return nil
	case extractedfield.FieldReviewedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedValue(v)
		return nil
	case extractedfield.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractedfield.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case extractedfield.FieldCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrected(v)
		return nil
	case extractedfield.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractedfield.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedFieldMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extractedfield.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedfield.FieldExtractedValue) {
		fields = append(fields, extractedfield.FieldExtractedValue)
	}
	if m.FieldCleared(extractedfield.FieldReviewedValue) {
		fields = append(fields, extractedfield.FieldReviewedValue)
	}
	if m.FieldCleared(extractedfield.FieldConfidence) {
		fields = append(fields, extractedfield.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ClearField(name string) error {
	switch name {
	case extractedfield.FieldExtractedValue:
		m.ClearExtractedValue()
		return nil
	case extractedfield.FieldReviewedValue:
		m.ClearReviewedValue()
		return nil
	case extractedfield.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ResetField(name string) error {
	switch name {
	case extractedfield.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractedfield.FieldFieldName:
		m.ResetFieldName()
		return nil
	case extractedfield.FieldFieldType:
		m.ResetFieldType()
		return nil
	case extractedfield.FieldExtractedValue:
		m.ResetExtractedValue()
		return nil
	case extractedfield.FieldReviewedValue:
		m.ResetReviewedValue()
		return nil
	case extractedfield.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractedfield.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case extractedfield.FieldCorrected:
		m.ResetCorrected()
		return nil
	case extractedfield.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractedfield.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extractedfield.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedfield.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extractedfield.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedfield.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedFieldMutation) ClearEdge(name string) error {
	switch name {
	case extractedfield.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedFieldMutation) ResetEdge(name string) error {
	switch name {
	case extractedfield.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField edge %s", name)
}

// ExtractionRuleMutation represents an operation that mutates the ExtractionRule nodes in the graph.
type ExtractionRuleMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	rule_name              *string
	doc_type               *string
	field_name             *string
	pattern                *string
	pattern_type           *string
	field_type             *string
	context_keywords       *[]string
	appendcontext_keywords []string
	priority               *int
	addpriority            *int
	active                 *bool
	success_count          *int
	addsuccess_count       *int
	failure_count          *int
	addfailure_count       *int
	description            *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ExtractionRule, error)
	predicates             []predicate.ExtractionRule
}

var _ ent.Mutation = (*ExtractionRuleMutation)(nil)

// extractionruleOption allows management of the mutation configuration using functional options.
type extractionruleOption func(*ExtractionRuleMutation)

// newExtractionRuleMutation creates new mutation for the ExtractionRule entity.
func newExtractionRuleMutation(c config, op Op, opts ...extractionruleOption) *ExtractionRuleMutation {
	m := &ExtractionRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRuleID sets the ID field of the mutation.
func withExtractionRuleID(id uuid.UUID) extractionruleOption {
	return func(m *ExtractionRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRule
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRule sets the old ExtractionRule of the mutation.
func withExtractionRule(node *ExtractionRule) extractionruleOption {
	return func(m *ExtractionRuleMutation) {
		m.oldValue = func(context.Context) (*ExtractionRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionRule entities.
func (m *ExtractionRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleName sets the "rule_name" field.
func (m *ExtractionRuleMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *ExtractionRuleMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *ExtractionRuleMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetDocType sets the "doc_type" field.
func (m *ExtractionRuleMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *ExtractionRuleMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *ExtractionRuleMutation) ResetDocType() {
	m.doc_type = nil
}

// SetFieldName sets the "field_name" field.
func (m *ExtractionRuleMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ExtractionRuleMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ExtractionRuleMutation) ResetFieldName() {
	m.field_name = nil
}

// SetPattern sets the "pattern" field.
func (m *ExtractionRuleMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *ExtractionRuleMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *ExtractionRuleMutation) ResetPattern() {
	m.pattern = nil
}

// SetPatternType sets the "pattern_type" field.
func (m *ExtractionRuleMutation) SetPatternType(s string) {
	m.pattern_type = &s
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *ExtractionRuleMutation) PatternType() (r string, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldPatternType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *ExtractionRuleMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetFieldType sets the "field_type" field.
func (m *ExtractionRuleMutation) SetFieldType(s string) {
	m.field_type = &s
}

// FieldType returns the value of the "field_type" field in the mutation.
func (m *ExtractionRuleMutation) FieldType() (r string, exists bool) {
	v := m.field_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldType returns the old "field_type" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldFieldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldType: %w", err)
	}
	return oldValue.FieldType, nil
}

// ResetFieldType resets all changes to the "field_type" field.
func (m *ExtractionRuleMutation) ResetFieldType() {
	m.field_type = nil
}

// SetContextKeywords sets the "context_keywords" field.
func (m *ExtractionRuleMutation) SetContextKeywords(s []string) {
	m.context_keywords = &s
	m.appendcontext_keywords = nil
}

// ContextKeywords returns the value of the "context_keywords" field in the mutation.
func (m *ExtractionRuleMutation) ContextKeywords() (r []string, exists bool) {
	v := m.context_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldContextKeywords returns the old "context_keywords" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldContextKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextKeywords: %w", err)
	}
	return oldValue.ContextKeywords, nil
}

// AppendContextKeywords adds s to the "context_keywords" field.
func (m *ExtractionRuleMutation) AppendContextKeywords(s []string) {
	m.appendcontext_keywords = append(m.appendcontext_keywords, s...)
}

// AppendedContextKeywords returns the list of values that were appended to the "context_keywords" field in this mutation.
func (m *ExtractionRuleMutation) AppendedContextKeywords() ([]string, bool) {
	if len(m.appendcontext_keywords) == 0 {
		return nil, false
	}
	return m.appendcontext_keywords, true
}

// ClearContextKeywords clears the value of the "context_keywords" field.
func (m *ExtractionRuleMutation) ClearContextKeywords() {
	m.context_keywords = nil
	m.appendcontext_keywords = nil
	m.clearedFields[extractionrule.FieldContextKeywords] = struct{}{}
}

// ContextKeywordsCleared returns if the "context_keywords" field was cleared in this mutation.
func (m *ExtractionRuleMutation) ContextKeywordsCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldContextKeywords]
	return ok
}

// ResetContextKeywords resets all changes to the "context_keywords" field.
func (m *ExtractionRuleMutation) ResetContextKeywords() {
	m.context_keywords = nil
	m.appendcontext_keywords = nil
	delete(m.clearedFields, extractionrule.FieldContextKeywords)
}

// SetPriority sets the "priority" field.
func (m *ExtractionRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ExtractionRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ExtractionRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ExtractionRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ExtractionRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetActive sets the "active" field.
func (m *ExtractionRuleMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ExtractionRuleMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ExtractionRuleMutation) ResetActive() {
	m.active = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *ExtractionRuleMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *ExtractionRuleMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *ExtractionRuleMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *ExtractionRuleMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *ExtractionRuleMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFailureCount sets the "failure_count" field.
func (m *ExtractionRuleMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *ExtractionRuleMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *ExtractionRuleMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *ExtractionRuleMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *ExtractionRuleMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetDescription sets the "description" field.
func (m *ExtractionRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractionRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExtractionRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[extractionrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExtractionRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractionRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, extractionrule.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ExtractionRuleMutation builder.
func (m *ExtractionRuleMutation) Where(ps ...predicate.ExtractionRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRule).
func (m *ExtractionRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRuleMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.rule_name != nil {
		fields = append(fields, extractionrule.FieldRuleName)
	}
	if m.doc_type != nil {
		fields = append(fields, extractionrule.FieldDocType)
	}
	if m.field_name != nil {
		fields = append(fields, extractionrule.FieldFieldName)
	}
	if m.pattern != nil {
		fields = append(fields, extractionrule.FieldPattern)
	}
	if m.pattern_type != nil {
		fields = append(fields, extractionrule.FieldPatternType)
	}
	if m.field_type != nil {
		fields = append(fields, extractionrule.FieldFieldType)
	}
	if m.context_keywords != nil {
		fields = append(fields, extractionrule.FieldContextKeywords)
	}
	if m.priority != nil {
		fields = append(fields, extractionrule.FieldPriority)
	}
	if m.active != nil {
		fields = append(fields, extractionrule.FieldActive)
	}
	if m.success_count != nil {
		fields = append(fields, extractionrule.FieldSuccessCount)
	}
	if m.failure_count != nil {
		fields = append(fields, extractionrule.FieldFailureCount)
	}
	if m.description != nil {
		fields = append(fields, extractionrule.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, extractionrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrule.FieldRuleName:
		return m.RuleName()
	case extractionrule.FieldDocType:
		return m.DocType()
	case extractionrule.FieldFieldName:
		return m.FieldName()
	case extractionrule.FieldPattern:
		return m.Pattern()
	case extractionrule.FieldPatternType:
		return m.PatternType()
	case extractionrule.FieldFieldType:
		return m.FieldType()
	case extractionrule.FieldContextKeywords:
		return m.ContextKeywords()
	case extractionrule.FieldPriority:
		return m.Priority()
	case extractionrule.FieldActive:
		return m.Active()
	case extractionrule.FieldSuccessCount:
		return m.SuccessCount()
	case extractionrule.FieldFailureCount:
		return m.FailureCount()
	case extractionrule.FieldDescription:
		return m.Description()
	case extractionrule.FieldCreatedAt:
		return m.CreatedAt()
	case extractionrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrule.FieldRuleName:
		return m.OldRuleName(ctx)
	case extractionrule.FieldDocType:
		return m.OldDocType(ctx)
	case extractionrule.FieldFieldName:
		return m.OldFieldName(ctx)
	case extractionrule.FieldPattern:
		return m.OldPattern(ctx)
	case extractionrule.FieldPatternType:
		return m.OldPatternType(ctx)
	case extractionrule.FieldFieldType:
		return m.OldFieldType(ctx)
	case extractionrule.FieldContextKeywords:
		return m.OldContextKeywords(ctx)
	case extractionrule.FieldPriority:
		return m.OldPriority(ctx)
	case extractionrule.FieldActive:
		return m.OldActive(ctx)
	case extractionrule.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case extractionrule.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case extractionrule.FieldDescription:
		return m.OldDescription(ctx)
	case extractionrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrule.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case extractionrule.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case extractionrule.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case extractionrule.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case extractionrule.FieldPatternType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case extractionrule.FieldFieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldType(v)
		return nil
	case extractionrule.FieldContextKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextKeywords(v)
		return nil
	case extractionrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case extractionrule.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case extractionrule.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case extractionrule.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case extractionrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extractionrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, extractionrule.FieldPriority)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, extractionrule.FieldSuccessCount)
	}
	if m.addfailure_count != nil {
		fields = append(fields, extractionrule.FieldFailureCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionrule.FieldPriority:
		return m.AddedPriority()
	case extractionrule.FieldSuccessCount:
		return m.AddedSuccessCount()
	case extractionrule.FieldFailureCount:
		return m.AddedFailureCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case extractionrule.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case extractionrule.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionrule.FieldContextKeywords) {
		fields = append(fields, extractionrule.FieldContextKeywords)
	}
	if m.FieldCleared(extractionrule.FieldDescription) {
		fields = append(fields, extractionrule.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRuleMutation) ClearField(name string) error {
	switch name {
	case extractionrule.FieldContextKeywords:
		m.ClearContextKeywords()
		return nil
	case extractionrule.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRuleMutation) ResetField(name string) error {
	switch name {
	case extractionrule.FieldRuleName:
		m.ResetRuleName()
		return nil
	case extractionrule.FieldDocType:
		m.ResetDocType()
		return nil
	case extractionrule.FieldFieldName:
		m.ResetFieldName()
		return nil
	case extractionrule.FieldPattern:
		m.ResetPattern()
		return nil
	case extractionrule.FieldPatternType:
		m.ResetPatternType()
		return nil
	case extractionrule.FieldFieldType:
		m.ResetFieldType()
		return nil
	case extractionrule.FieldContextKeywords:
		m.ResetContextKeywords()
		return nil
	case extractionrule.FieldPriority:
		m.ResetPriority()
		return nil
	case extractionrule.FieldActive:
		m.ResetActive()
		return nil
	case extractionrule.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case extractionrule.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case extractionrule.FieldDescription:
		m.ResetDescription()
		return nil
	case extractionrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionRule edge %s", name)
}
