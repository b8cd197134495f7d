// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Ajauregui69/livo-backend/gen/ent/creditscore"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditScore is the model entity for the CreditScore schema.
type CreditScore struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID uuid.UUID `json:"subject_id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// RiskTier holds the value of the "risk_tier" field.
	RiskTier string `json:"risk_tier,omitempty"`
	// EstimatedMonthlyIncome holds the value of the "estimated_monthly_income" field.
	EstimatedMonthlyIncome decimal.Decimal `json:"estimated_monthly_income,omitempty"`
	// MaxLoan holds the value of the "max_loan" field.
	MaxLoan decimal.Decimal `json:"max_loan,omitempty"`
	// SuggestedDownPayment holds the value of the "suggested_down_payment" field.
	SuggestedDownPayment decimal.Decimal `json:"suggested_down_payment,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// Breakdown holds the value of the "breakdown" field.
	Breakdown json.RawMessage `json:"breakdown,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditscore.FieldRecommendations, creditscore.FieldBreakdown:
			values[i] = new([]byte)
		case creditscore.FieldEstimatedMonthlyIncome, creditscore.FieldMaxLoan, creditscore.FieldSuggestedDownPayment:
			values[i] = new(decimal.Decimal)
		case creditscore.FieldActive:
			values[i] = new(sql.NullBool)
		case creditscore.FieldScore:
			values[i] = new(sql.NullInt64)
		case creditscore.FieldRiskTier:
			values[i] = new(sql.NullString)
		case creditscore.FieldComputedAt, creditscore.FieldExpiresAt, creditscore.FieldCreatedAt, creditscore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case creditscore.FieldID, creditscore.FieldSubjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditScore fields.
func (_m *CreditScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditscore.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case creditscore.FieldSubjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value != nil {
				_m.SubjectID = *value
			}
		case creditscore.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case creditscore.FieldRiskTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tier", values[i])
			} else if value.Valid {
				_m.RiskTier = value.String
			}
		case creditscore.FieldEstimatedMonthlyIncome:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_monthly_income", values[i])
			} else if value != nil {
				_m.EstimatedMonthlyIncome = *value
			}
		case creditscore.FieldMaxLoan:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field max_loan", values[i])
			} else if value != nil {
				_m.MaxLoan = *value
			}
		case creditscore.FieldSuggestedDownPayment:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_down_payment", values[i])
			} else if value != nil {
				_m.SuggestedDownPayment = *value
			}
		case creditscore.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case creditscore.FieldBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Breakdown); err != nil {
					return fmt.Errorf("unmarshal field breakdown: %w", err)
				}
			}
		case creditscore.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case creditscore.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		case creditscore.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case creditscore.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case creditscore.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditScore.
// This includes values selected through modifiers, order, etc.
func (_m *CreditScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CreditScore.
// Note that you need to call CreditScore.Unwrap() before calling this method if this CreditScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreditScore) Update() *CreditScoreUpdateOne {
	return NewCreditScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreditScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreditScore) Unwrap() *CreditScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreditScore) String() string {
	var builder strings.Builder
	builder.WriteString("CreditScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("risk_tier=")
	builder.WriteString(_m.RiskTier)
	builder.WriteString(", ")
	builder.WriteString("estimated_monthly_income=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedMonthlyIncome))
	builder.WriteString(", ")
	builder.WriteString("max_loan=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxLoan))
	builder.WriteString(", ")
	builder.WriteString("suggested_down_payment=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuggestedDownPayment))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakdown))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditScores is a parsable slice of CreditScore.
type CreditScores []*CreditScore
