package rules

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajauregui69/livo-backend/constants"
)

type memStats struct {
	mu        sync.Mutex
	successes map[uuid.UUID]int
	failures  map[uuid.UUID]int
}

func newMemStats() *memStats {
	return &memStats{
		successes: make(map[uuid.UUID]int),
		failures:  make(map[uuid.UUID]int),
	}
}

func (s *memStats) RecordSuccess(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes[id]++
	return nil
}

func (s *memStats) RecordFailure(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[id]++
	return nil
}

func mkRule(field, pattern string, priority int, opts ...func(*Rule)) Rule {
	r := Rule{
		ID:        uuid.New(),
		Name:      field + "-rule",
		DocType:   constants.Payroll,
		FieldName: field,
		Pattern:   pattern,
		FieldType: constants.FieldText,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
	for _, o := range opts {
		o(&r)
	}
	return r
}

const payrollText = "PAYROLL STATEMENT\nEmployee: Jane Roe\nNet Salary: 20,000.00\nEmployer: Acme Corp\n"

func TestExtractFirstMatchWins(t *testing.T) {
	t.Parallel()

	stats := newMemStats()
	engine := NewEngine(stats, nil)

	high := mkRule("monthly_income", `Net Salary:\s*([0-9,\.]+)`, 10)
	low := mkRule("monthly_income", `Salary:\s*([0-9,\.]+)`, 1)

	out := engine.Extract(context.Background(), constants.Payroll, payrollText, []Rule{low, high})

	require.Len(t, out.Fields, 1)
	assert.Equal(t, "20,000.00", out.Fields[0].Value)
	assert.Equal(t, "rule:"+high.ID.String(), out.Fields[0].Method)

	// the lower-priority rule for a satisfied field is skipped entirely
	assert.Equal(t, 1, stats.successes[high.ID])
	assert.Zero(t, stats.successes[low.ID])
	assert.Zero(t, stats.failures[low.ID])
}

func TestExtractDeterministic(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)
	ruleSet := []Rule{
		mkRule("monthly_income", `Net Salary:\s*([0-9,\.]+)`, 5),
		mkRule("employer_name", `Employer:\s*(.+)`, 5),
	}

	first := engine.Extract(context.Background(), constants.Payroll, payrollText, ruleSet)
	second := engine.Extract(context.Background(), constants.Payroll, payrollText, ruleSet)

	require.Equal(t, len(first.Fields), len(second.Fields))
	for i := range first.Fields {
		assert.Equal(t, first.Fields[i].Value, second.Fields[i].Value)
		assert.Equal(t, first.Fields[i].Name, second.Fields[i].Name)
	}
}

func TestExtractCaptureGroupFallsBackToFullMatch(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)
	rule := mkRule("employer_name", `Acme \w+`, 0)

	out := engine.Extract(context.Background(), constants.OtherDocument, payrollText, []Rule{rule})
	require.Len(t, out.Fields, 1)
	assert.Equal(t, "Acme Corp", out.Fields[0].Value)
}

func TestExtractMalformedPatternIsolated(t *testing.T) {
	t.Parallel()

	stats := newMemStats()
	engine := NewEngine(stats, nil)

	bad := mkRule("monthly_income", `Net Salary: ([0-9`, 10)
	good := mkRule("employer_name", `Employer:\s*(.+)`, 1)

	out := engine.Extract(context.Background(), constants.Payroll, payrollText, []Rule{bad, good})

	require.Len(t, out.Fields, 1)
	assert.Equal(t, "employer_name", out.Fields[0].Name)
	assert.Equal(t, 1, stats.failures[bad.ID])
	assert.Equal(t, 1, stats.successes[good.ID])
	require.NotEmpty(t, out.Notes)
	assert.Contains(t, out.Notes[0], "malformed pattern")
}

func TestConfidenceComponents(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)
	text := "net salary and employer mentioned here"

	tests := []struct {
		name string
		rule Rule
		want float64
	}{
		{
			name: "base only",
			rule: Rule{},
			want: 50,
		},
		{
			name: "all keywords present",
			rule: Rule{ContextKeywords: []string{"salary", "employer"}},
			want: 80,
		},
		{
			name: "half keywords present",
			rule: Rule{ContextKeywords: []string{"salary", "overdraft"}},
			want: 65,
		},
		{
			name: "perfect history",
			rule: Rule{SuccessCount: 10},
			want: 70,
		},
		{
			name: "keywords plus strong history",
			rule: Rule{ContextKeywords: []string{"salary"}, SuccessCount: 9, FailureCount: 1},
			want: 98,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := engine.confidence(tc.rule, text)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestConfidenceMonotonicity(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)
	text := "salary employer balance"

	// more keywords present, success rate fixed
	fewer := engine.confidence(Rule{ContextKeywords: []string{"salary", "missing"}, SuccessCount: 1, FailureCount: 1}, text)
	more := engine.confidence(Rule{ContextKeywords: []string{"salary", "employer"}, SuccessCount: 1, FailureCount: 1}, text)
	assert.GreaterOrEqual(t, more, fewer)

	// higher success rate, keywords fixed
	worse := engine.confidence(Rule{ContextKeywords: []string{"salary"}, SuccessCount: 1, FailureCount: 3}, text)
	better := engine.confidence(Rule{ContextKeywords: []string{"salary"}, SuccessCount: 3, FailureCount: 1}, text)
	assert.GreaterOrEqual(t, better, worse)
}

func TestNeedsReviewBoundary(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)

	// Three matching rules with no keywords and no history yield exactly
	// confidence 50 each -> overall 50 -> review.
	text := "a: 1\nb: 2\nc: 3\n"
	ruleSet := []Rule{
		mkRule("a", `a: (\d)`, 0),
		mkRule("b", `b: (\d)`, 0),
		mkRule("c", `c: (\d)`, 0),
	}
	out := engine.Extract(context.Background(), constants.BankStatement, text, ruleSet)
	require.Len(t, out.Fields, 3)
	assert.True(t, out.NeedsReview)

	// With perfect history every field lands on exactly 70: not a trigger.
	for i := range ruleSet {
		ruleSet[i].SuccessCount = 5
	}
	out = engine.Extract(context.Background(), constants.BankStatement, text, ruleSet)
	assert.InDelta(t, 70.0, out.Confidence, 0.001)
	assert.False(t, out.NeedsReview)

	// One point below the threshold (50 + 20*19/20 = 69) triggers review.
	for i := range ruleSet {
		ruleSet[i].SuccessCount = 19
		ruleSet[i].FailureCount = 1
	}
	out = engine.Extract(context.Background(), constants.BankStatement, text, ruleSet)
	assert.InDelta(t, 69.0, out.Confidence, 0.001)
	assert.True(t, out.NeedsReview)
}

func TestReviewThresholdConfigurable(t *testing.T) {
	t.Parallel()

	text := "a: 1\nb: 2\nc: 3\n"
	ruleSet := []Rule{
		mkRule("a", `a: (\d)`, 0),
		mkRule("b", `b: (\d)`, 0),
		mkRule("c", `c: (\d)`, 0),
	}

	// Confidence 50 everywhere: below the default floor, at a lowered one.
	strict := NewEngine(nil, nil)
	out := strict.Extract(context.Background(), constants.BankStatement, text, ruleSet)
	assert.True(t, out.NeedsReview)

	lenient := NewEngine(nil, nil, WithReviewThreshold(50))
	out = lenient.Extract(context.Background(), constants.BankStatement, text, ruleSet)
	assert.False(t, out.NeedsReview)

	// Out-of-range overrides keep the default.
	bogus := NewEngine(nil, nil, WithReviewThreshold(-1))
	out = bogus.Extract(context.Background(), constants.BankStatement, text, ruleSet)
	assert.True(t, out.NeedsReview)
}

func TestNeedsReviewMinFieldCount(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)
	text := "a: 1\n"
	rule := mkRule("a", `a: (\d)`, 0)
	rule.SuccessCount = 5 // confidence 70, above threshold

	// bank_statement requires >= 3 fields
	out := engine.Extract(context.Background(), constants.BankStatement, text, []Rule{rule})
	require.Len(t, out.Fields, 1)
	assert.True(t, out.NeedsReview)
}

func TestExtractNoMatchesZeroConfidence(t *testing.T) {
	t.Parallel()

	stats := newMemStats()
	engine := NewEngine(stats, nil)
	rule := mkRule("monthly_income", `Gross Pay:\s*(\d+)`, 0)

	out := engine.Extract(context.Background(), constants.Payroll, "nothing relevant", []Rule{rule})
	assert.Empty(t, out.Fields)
	assert.Zero(t, out.Confidence)
	assert.True(t, out.NeedsReview)
	assert.Equal(t, 1, stats.failures[rule.ID])
}
