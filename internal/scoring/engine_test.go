package scoring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajauregui69/livo-backend/constants"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestComputeWorkedExample(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res := Compute(Inputs{
		Now: now,
		Fields: map[string]string{
			constants.FieldMonthlyIncome:       "20000",
			constants.FieldAverageBalance:      "60000",
			constants.FieldOverdraftCount:      "0",
			constants.FieldEmployerName:        "Constructora Norte SA",
			constants.FieldEmploymentStartDate: "2022-03-01", // 4 years tenure
		},
	})

	assert.InDelta(t, 75, res.Breakdown.Income, 0.001)
	assert.InDelta(t, 90, res.Breakdown.Employment, 0.001)
	assert.InDelta(t, 80, res.Breakdown.Banking, 0.001)
	assert.InDelta(t, 50, res.Breakdown.Debt, 0.001)

	assert.Equal(t, 760, res.Score)
	assert.Equal(t, constants.RiskLow, res.RiskTier)
	assert.Equal(t, "288000", res.MaxLoan.String())
	assert.Equal(t, "43200", res.SuggestedDownPayment.String())
}

func TestComputeIdempotent(t *testing.T) {
	in := Inputs{
		Now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Fields: map[string]string{
			constants.FieldMonthlyIncome:  "31500.50",
			constants.FieldAverageBalance: "12000",
		},
	}
	first := Compute(in)
	second := Compute(in)
	assert.Equal(t, first, second)
}

func TestIncomeFallsBackToAnnual(t *testing.T) {
	res := Compute(Inputs{
		Now:    time.Now(),
		Fields: map[string]string{constants.FieldAnnualIncome: "360000"},
	})
	// 360000 / 12 = 30000 monthly
	assert.Equal(t, "30000", res.EstimatedMonthlyIncome.String())
	assert.InDelta(t, 90, res.Breakdown.Income, 0.001)
}

func TestIncomeBuckets(t *testing.T) {
	cases := []struct {
		income string
		want   float64
	}{
		{"55000", 100},
		{"30000", 90},
		{"20000", 75},
		{"15000", 60},
		{"10000", 40},
		{"8000", 20},
	}
	for _, tc := range cases {
		res := Compute(Inputs{Fields: map[string]string{constants.FieldMonthlyIncome: tc.income}})
		assert.InDelta(t, tc.want, res.Breakdown.Income, 0.001, "income %s", tc.income)
	}
}

func TestUnknownIncomeScoresZeroFactor(t *testing.T) {
	res := Compute(Inputs{Fields: map[string]string{}})
	assert.InDelta(t, 0, res.Breakdown.Income, 0.001)
	assert.True(t, res.MaxLoan.IsZero())
	assert.Equal(t, constants.RiskHigh, res.RiskTier)
}

func TestEmploymentTenureCapped(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res := Compute(Inputs{
		Now: now,
		Fields: map[string]string{
			constants.FieldEmployerName:        "Acme",
			constants.FieldEmploymentStartDate: "2010-01-15",
		},
	})
	// 50 + 20 + 30 = 100, already at the cap
	assert.InDelta(t, 100, res.Breakdown.Employment, 0.001)
}

func TestBankingOverdraftPenalty(t *testing.T) {
	cases := []struct {
		overdrafts string
		want       float64
	}{
		{"0", 80}, // 50 + 30
		{"1", 75},
		{"3", 65},
		{"7", 50},
	}
	for _, tc := range cases {
		res := Compute(Inputs{Fields: map[string]string{
			constants.FieldAverageBalance: "60000",
			constants.FieldOverdraftCount: tc.overdrafts,
		}})
		assert.InDelta(t, tc.want, res.Breakdown.Banking, 0.001, "overdrafts %s", tc.overdrafts)
	}
}

func TestBankingClampedAtZero(t *testing.T) {
	res := Compute(Inputs{Fields: map[string]string{
		constants.FieldAverageBalance: "1000", // 50 - 10
		constants.FieldOverdraftCount: "9",    // -30
	}})
	assert.InDelta(t, 10, res.Breakdown.Banking, 0.001)
}

func TestDebtRatioMapping(t *testing.T) {
	cases := []struct {
		debt string
		want float64
	}{
		{"3000", 100}, // 15%
		{"5000", 85},  // 25%
		{"7000", 60},  // 35%
		{"9000", 35},  // 45%
		{"12000", 10}, // 60%
	}
	for _, tc := range cases {
		res := Compute(Inputs{Fields: map[string]string{
			constants.FieldMonthlyIncome:       "20000",
			constants.FieldMonthlyDebtPayments: tc.debt,
		}})
		assert.InDelta(t, tc.want, res.Breakdown.Debt, 0.001, "debt %s", tc.debt)
	}
}

func TestParseAmountTolerance(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"$45,000.00", "45000"},
		{"45,000.50 MXN", "45000.5"},
		{" 12000 ", "12000"},
	}
	for _, tc := range cases {
		d, ok := parseAmount(tc.raw)
		require.True(t, ok, "parse %q", tc.raw)
		assert.True(t, d.Equal(mustDecimal(t, tc.want)), "parse %q got %s", tc.raw, d)
	}

	_, ok := parseAmount("not a number")
	assert.False(t, ok)
	_, ok = parseAmount("")
	assert.False(t, ok)
}

func TestRecommendationsDeterministic(t *testing.T) {
	in := Inputs{
		Now:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Fields: map[string]string{constants.FieldMonthlyIncome: "9000"},
	}
	first := Compute(in)
	second := Compute(in)
	require.Equal(t, first.Recommendations, second.Recommendations)

	// Weak income, employment and debt-neutral banking all trigger advice,
	// plus the tier message.
	assert.NotEmpty(t, first.Recommendations)
	assert.Contains(t, first.Recommendations[0], "co-applicant")
}
