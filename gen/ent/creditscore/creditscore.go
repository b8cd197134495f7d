// Code generated by ent, DO NOT EDIT.

package creditscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the creditscore type in the database.
	Label = "credit_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRiskTier holds the string denoting the risk_tier field in the database.
	FieldRiskTier = "risk_tier"
	// FieldEstimatedMonthlyIncome holds the string denoting the estimated_monthly_income field in the database.
	FieldEstimatedMonthlyIncome = "estimated_monthly_income"
	// FieldMaxLoan holds the string denoting the max_loan field in the database.
	FieldMaxLoan = "max_loan"
	// FieldSuggestedDownPayment holds the string denoting the suggested_down_payment field in the database.
	FieldSuggestedDownPayment = "suggested_down_payment"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the creditscore in the database.
	Table = "credit_scores"
)

// Columns holds all SQL columns for creditscore fields.
var Columns = []string{
	FieldID,
	FieldSubjectID,
	FieldScore,
	FieldRiskTier,
	FieldEstimatedMonthlyIncome,
	FieldMaxLoan,
	FieldSuggestedDownPayment,
	FieldRecommendations,
	FieldBreakdown,
	FieldActive,
	FieldComputedAt,
	FieldExpiresAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// RiskTierValidator is a validator for the "risk_tier" field. It is called by the builders before save.
	RiskTierValidator func(string) error
	// DefaultEstimatedMonthlyIncome holds the default value on creation for the "estimated_monthly_income" field.
	DefaultEstimatedMonthlyIncome decimal.Decimal
	// DefaultMaxLoan holds the default value on creation for the "max_loan" field.
	DefaultMaxLoan decimal.Decimal
	// DefaultSuggestedDownPayment holds the default value on creation for the "suggested_down_payment" field.
	DefaultSuggestedDownPayment decimal.Decimal
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CreditScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRiskTier orders the results by the risk_tier field.
func ByRiskTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskTier, opts...).ToFunc()
}

// ByEstimatedMonthlyIncome orders the results by the estimated_monthly_income field.
func ByEstimatedMonthlyIncome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMonthlyIncome, opts...).ToFunc()
}

// ByMaxLoan orders the results by the max_loan field.
func ByMaxLoan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxLoan, opts...).ToFunc()
}

// BySuggestedDownPayment orders the results by the suggested_down_payment field.
func BySuggestedDownPayment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedDownPayment, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
