// Package scoring derives a 0-1000 credit score from the fields extracted
// across a subject's processed documents. All monetary math uses exact
// decimals so recomputation never drifts.
package scoring

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ajauregui69/livo-backend/constants"
)

// Factor weights. They sum to 1; the weighted sum lands on 0-100 and is
// scaled by 10 onto the 0-1000 score range.
const (
	weightIncome     = 0.40
	weightEmployment = 0.25
	weightBanking    = 0.20
	weightDebt       = 0.15

	scaleFactor = 10

	tierLowMin    = 700
	tierMediumMin = 500
)

// paymentCapacityRate is the share of monthly income assumed available for a
// loan payment.
var paymentCapacityRate = decimal.NewFromFloat(0.30)

// FactorBreakdown records each factor's normalized value for auditability.
type FactorBreakdown struct {
	Income     float64 `json:"income"`
	Employment float64 `json:"employment"`
	Banking    float64 `json:"banking"`
	Debt       float64 `json:"debt"`
}

// Result is one full score computation.
type Result struct {
	Score                  int
	RiskTier               constants.RiskTier
	EstimatedMonthlyIncome decimal.Decimal
	MaxLoan                decimal.Decimal
	SuggestedDownPayment   decimal.Decimal
	Recommendations        []string
	Breakdown              FactorBreakdown
}

// Inputs is the effective field set for a subject: reviewed-or-extracted
// values keyed by field name, across all processed documents.
type Inputs struct {
	Fields map[string]string
	Now    time.Time
}

// Compute runs the four-factor model. It is pure and idempotent: identical
// inputs always produce identical results.
func Compute(in Inputs) Result {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	income := monthlyIncome(in.Fields)
	bd := FactorBreakdown{
		Income:     incomeFactor(income),
		Employment: employmentFactor(in.Fields, now),
		Banking:    bankingFactor(in.Fields),
		Debt:       debtFactor(in.Fields, income),
	}

	weighted := bd.Income*weightIncome +
		bd.Employment*weightEmployment +
		bd.Banking*weightBanking +
		bd.Debt*weightDebt
	score := int(weighted*scaleFactor + 0.5)
	if score > 1000 {
		score = 1000
	}
	if score < 0 {
		score = 0
	}

	tier := riskTier(score)
	maxLoan := loanCapacity(income, score)
	down := downPayment(maxLoan, score)

	return Result{
		Score:                  score,
		RiskTier:               tier,
		EstimatedMonthlyIncome: income.Round(2),
		MaxLoan:                maxLoan.Round(2),
		SuggestedDownPayment:   down.Round(2),
		Recommendations:        recommendations(bd, tier),
		Breakdown:              bd,
	}
}

// monthlyIncome prefers the direct figure and falls back to annual / 12.
func monthlyIncome(fields map[string]string) decimal.Decimal {
	if v, ok := parseAmount(fields[constants.FieldMonthlyIncome]); ok && v.IsPositive() {
		return v
	}
	if v, ok := parseAmount(fields[constants.FieldAnnualIncome]); ok && v.IsPositive() {
		return v.Div(decimal.NewFromInt(12))
	}
	return decimal.Zero
}

func incomeFactor(monthly decimal.Decimal) float64 {
	if !monthly.IsPositive() {
		return 0
	}
	m, _ := monthly.Float64()
	switch {
	case m >= 50000:
		return 100
	case m >= 30000:
		return 90
	case m >= 20000:
		return 75
	case m >= 15000:
		return 60
	case m >= 10000:
		return 40
	default:
		return 20
	}
}

func employmentFactor(fields map[string]string, now time.Time) float64 {
	factor := 50.0
	if strings.TrimSpace(fields[constants.FieldEmployerName]) != "" {
		factor += 20
	}
	if start, ok := parseDate(fields[constants.FieldEmploymentStartDate]); ok {
		years := now.Sub(start).Hours() / (24 * 365.25)
		switch {
		case years >= 5:
			factor += 30
		case years >= 3:
			factor += 20
		case years >= 1:
			factor += 10
		}
	}
	if factor > 100 {
		factor = 100
	}
	return factor
}

func bankingFactor(fields map[string]string) float64 {
	balance, haveBalance := parseAmount(fields[constants.FieldAverageBalance])
	if !haveBalance {
		balance, haveBalance = parseAmount(fields[constants.FieldCurrentBalance])
	}

	factor := 50.0
	if haveBalance {
		b, _ := balance.Float64()
		switch {
		case b >= 50000:
			factor += 30
		case b >= 20000:
			factor += 20
		case b >= 10000:
			factor += 10
		case b >= 5000:
			// no adjustment
		default:
			factor -= 10
		}
	}

	if n, ok := parseAmount(fields[constants.FieldOverdraftCount]); ok {
		overdrafts, _ := n.Float64()
		switch {
		case overdrafts > 5:
			factor -= 30
		case overdrafts > 2:
			factor -= 15
		case overdrafts > 0:
			factor -= 5
		}
	}

	if factor > 100 {
		factor = 100
	}
	if factor < 0 {
		factor = 0
	}
	return factor
}

// debtFactor maps the debt-to-income ratio onto a factor. Subjects with no
// debt data at all get a neutral 50 rather than a perfect score.
func debtFactor(fields map[string]string, income decimal.Decimal) float64 {
	debt, ok := parseAmount(fields[constants.FieldMonthlyDebtPayments])
	if !ok {
		return 50
	}
	if !income.IsPositive() {
		return 50
	}
	ratio, _ := debt.Div(income).Float64()
	switch {
	case ratio < 0.20:
		return 100
	case ratio < 0.30:
		return 85
	case ratio < 0.40:
		return 60
	case ratio < 0.50:
		return 35
	default:
		return 10
	}
}

func riskTier(score int) constants.RiskTier {
	switch {
	case score >= tierLowMin:
		return constants.RiskLow
	case score >= tierMediumMin:
		return constants.RiskMedium
	default:
		return constants.RiskHigh
	}
}

// loanCapacity multiplies the monthly payment capacity by a term selected
// from the score band.
func loanCapacity(income decimal.Decimal, score int) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	months := int64(12)
	switch {
	case score >= 800:
		months = 60
	case score >= 700:
		months = 48
	case score >= 600:
		months = 36
	case score >= 500:
		months = 24
	}
	capacity := income.Mul(paymentCapacityRate)
	return capacity.Mul(decimal.NewFromInt(months))
}

func downPayment(maxLoan decimal.Decimal, score int) decimal.Decimal {
	pct := int64(40)
	switch {
	case score >= 800:
		pct = 10
	case score >= 700:
		pct = 15
	case score >= 600:
		pct = 20
	case score >= 500:
		pct = 30
	}
	return maxLoan.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100))
}
