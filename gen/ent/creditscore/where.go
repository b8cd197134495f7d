// Code generated by ent, DO NOT EDIT.

package creditscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Ajauregui69/livo-backend/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldID, id))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldSubjectID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldScore, v))
}

// RiskTier applies equality check predicate on the "risk_tier" field. It's identical to RiskTierEQ.
func RiskTier(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldRiskTier, v))
}

// EstimatedMonthlyIncome applies equality check predicate on the "estimated_monthly_income" field. It's identical to EstimatedMonthlyIncomeEQ.
func EstimatedMonthlyIncome(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldEstimatedMonthlyIncome, v))
}

// MaxLoan applies equality check predicate on the "max_loan" field. It's identical to MaxLoanEQ.
func MaxLoan(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldMaxLoan, v))
}

// SuggestedDownPayment applies equality check predicate on the "suggested_down_payment" field. It's identical to SuggestedDownPaymentEQ.
func SuggestedDownPayment(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldSuggestedDownPayment, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldActive, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldComputedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v uuid.UUID) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldSubjectID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldScore, v))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldRiskTier, vs...))
}

// RiskTierGT applies the GT predicate on the "risk_tier" field.
func RiskTierGT(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldRiskTier, v))
}

// RiskTierGTE applies the GTE predicate on the "risk_tier" field.
func RiskTierGTE(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldRiskTier, v))
}

// RiskTierLT applies the LT predicate on the "risk_tier" field.
func RiskTierLT(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldRiskTier, v))
}

// RiskTierLTE applies the LTE predicate on the "risk_tier" field.
func RiskTierLTE(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldRiskTier, v))
}

// RiskTierContains applies the Contains predicate on the "risk_tier" field.
func RiskTierContains(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldContains(FieldRiskTier, v))
}

// RiskTierHasPrefix applies the HasPrefix predicate on the "risk_tier" field.
func RiskTierHasPrefix(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldHasPrefix(FieldRiskTier, v))
}

// RiskTierHasSuffix applies the HasSuffix predicate on the "risk_tier" field.
func RiskTierHasSuffix(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldHasSuffix(FieldRiskTier, v))
}

// RiskTierEqualFold applies the EqualFold predicate on the "risk_tier" field.
func RiskTierEqualFold(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEqualFold(FieldRiskTier, v))
}

// RiskTierContainsFold applies the ContainsFold predicate on the "risk_tier" field.
func RiskTierContainsFold(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldContainsFold(FieldRiskTier, v))
}

// EstimatedMonthlyIncomeEQ applies the EQ predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeEQ(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldEstimatedMonthlyIncome, v))
}

// EstimatedMonthlyIncomeNEQ applies the NEQ predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeNEQ(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldEstimatedMonthlyIncome, v))
}

// EstimatedMonthlyIncomeIn applies the In predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeIn(vs ...decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldEstimatedMonthlyIncome, vs...))
}

// EstimatedMonthlyIncomeNotIn applies the NotIn predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeNotIn(vs ...decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldEstimatedMonthlyIncome, vs...))
}

// EstimatedMonthlyIncomeGT applies the GT predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeGT(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldEstimatedMonthlyIncome, v))
}

// EstimatedMonthlyIncomeGTE applies the GTE predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeGTE(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldEstimatedMonthlyIncome, v))
}

// EstimatedMonthlyIncomeLT applies the LT predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeLT(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldEstimatedMonthlyIncome, v))
}

// EstimatedMonthlyIncomeLTE applies the LTE predicate on the "estimated_monthly_income" field.
func EstimatedMonthlyIncomeLTE(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldEstimatedMonthlyIncome, v))
}

// MaxLoanEQ applies the EQ predicate on the "max_loan" field.
func MaxLoanEQ(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldMaxLoan, v))
}

// MaxLoanNEQ applies the NEQ predicate on the "max_loan" field.
func MaxLoanNEQ(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldMaxLoan, v))
}

// MaxLoanIn applies the In predicate on the "max_loan" field.
func MaxLoanIn(vs ...decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldMaxLoan, vs...))
}

// MaxLoanNotIn applies the NotIn predicate on the "max_loan" field.
func MaxLoanNotIn(vs ...decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldMaxLoan, vs...))
}

// MaxLoanGT applies the GT predicate on the "max_loan" field.
func MaxLoanGT(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldMaxLoan, v))
}

// MaxLoanGTE applies the GTE predicate on the "max_loan" field.
func MaxLoanGTE(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldMaxLoan, v))
}

// MaxLoanLT applies the LT predicate on the "max_loan" field.
func MaxLoanLT(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldMaxLoan, v))
}

// MaxLoanLTE applies the LTE predicate on the "max_loan" field.
func MaxLoanLTE(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldMaxLoan, v))
}

// SuggestedDownPaymentEQ applies the EQ predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentEQ(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldSuggestedDownPayment, v))
}

// SuggestedDownPaymentNEQ applies the NEQ predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentNEQ(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldSuggestedDownPayment, v))
}

// SuggestedDownPaymentIn applies the In predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentIn(vs ...decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldSuggestedDownPayment, vs...))
}

// SuggestedDownPaymentNotIn applies the NotIn predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentNotIn(vs ...decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldSuggestedDownPayment, vs...))
}

// SuggestedDownPaymentGT applies the GT predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentGT(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldSuggestedDownPayment, v))
}

// SuggestedDownPaymentGTE applies the GTE predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentGTE(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldSuggestedDownPayment, v))
}

// SuggestedDownPaymentLT applies the LT predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentLT(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldSuggestedDownPayment, v))
}

// SuggestedDownPaymentLTE applies the LTE predicate on the "suggested_down_payment" field.
func SuggestedDownPaymentLTE(v decimal.Decimal) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldSuggestedDownPayment, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotNull(FieldRecommendations))
}

// BreakdownIsNil applies the IsNil predicate on the "breakdown" field.
func BreakdownIsNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIsNull(FieldBreakdown))
}

// BreakdownNotNil applies the NotNil predicate on the "breakdown" field.
func BreakdownNotNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotNull(FieldBreakdown))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldActive, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldComputedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditScore) predicate.CreditScore {
	return predicate.CreditScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditScore) predicate.CreditScore {
	return predicate.CreditScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditScore) predicate.CreditScore {
	return predicate.CreditScore(sql.NotPredicates(p))
}
