package rules

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
)

// Confidence model: every match starts at the base, earns up to 30 points
// for context keywords found in the source text and up to 20 points for the
// rule's historical success rate.
const (
	baseConfidence         = 50.0
	keywordWeight          = 30.0
	successWeight          = 20.0
	maxConfidence          = 100.0
	defaultReviewThreshold = 70.0
)

// Rule is the in-memory projection of an extraction_rules row.
type Rule struct {
	ID              uuid.UUID
	Name            string
	DocType         constants.DocType
	FieldName       string
	Pattern         string
	FieldType       constants.FieldType
	ContextKeywords []string
	Priority        int
	SuccessCount    int
	FailureCount    int
	CreatedAt       time.Time
}

// SuccessRate is successes / attempts, 0 when the rule has never run.
func (r Rule) SuccessRate() float64 {
	attempts := r.SuccessCount + r.FailureCount
	if attempts == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(attempts)
}

// StatsRecorder persists per-rule attempt counters. Increments must be
// atomic against the rule store: many documents referencing the same rule
// may be processed concurrently.
type StatsRecorder interface {
	RecordSuccess(ctx context.Context, ruleID uuid.UUID) error
	RecordFailure(ctx context.Context, ruleID uuid.UUID) error
}

// Engine applies ordered extraction rules to acquired text.
type Engine struct {
	stats     StatsRecorder
	logger    *slog.Logger
	threshold float64
}

type EngineOption func(*Engine)

// WithReviewThreshold overrides the confidence floor below which an outcome
// is routed to human review. Values outside (0, 100] keep the default.
func WithReviewThreshold(v float64) EngineOption {
	return func(e *Engine) {
		if v > 0 && v <= maxConfidence {
			e.threshold = v
		}
	}
}

func NewEngine(stats StatsRecorder, logger *slog.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{stats: stats, logger: logger, threshold: defaultReviewThreshold}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extract applies rules in (priority desc, created_at asc) order. The first
// successful rule per field name wins; later rules for a satisfied field are
// skipped entirely (no attempt, no counter change). Malformed patterns are
// isolated to the offending rule: its failure counter increments and the
// remaining rules still run.
func (e *Engine) Extract(ctx context.Context, docType constants.DocType, text string, ruleSet []Rule) extractor.Outcome {
	ordered := make([]Rule, len(ruleSet))
	copy(ordered, ruleSet)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	out := extractor.Outcome{Source: "rules"}
	satisfied := make(map[string]struct{}, len(ordered))
	lowerText := strings.ToLower(text)

	for _, rule := range ordered {
		if _, done := satisfied[rule.FieldName]; done {
			continue
		}

		value, matchErr := applyPattern(rule.Pattern, text)
		if matchErr != nil {
			out.Notes = append(out.Notes, fmt.Sprintf("rule %q: %v", rule.Name, matchErr))
			e.recordFailure(ctx, rule)
			continue
		}
		if value == "" {
			e.recordFailure(ctx, rule)
			continue
		}

		conf := e.confidence(rule, lowerText)
		out.Fields = append(out.Fields, extractor.FieldValue{
			Name:       rule.FieldName,
			Value:      value,
			Type:       rule.FieldType,
			Confidence: conf,
			Method:     "rule:" + rule.ID.String(),
		})
		satisfied[rule.FieldName] = struct{}{}
		e.recordSuccess(ctx, rule)
	}

	if len(out.Fields) > 0 {
		var sum float64
		for _, f := range out.Fields {
			sum += f.Confidence
		}
		out.Confidence = sum / float64(len(out.Fields))
	}
	out.NeedsReview = out.Confidence < e.threshold ||
		len(out.Fields) < constants.MinFieldCount(docType)
	return out
}

// applyPattern compiles and applies a rule pattern. The extracted value is
// the first capture group when present, else the full match, trimmed.
func applyPattern(pattern, text string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("malformed pattern: %w", err)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", nil
	}
	value := m[0]
	if len(m) > 1 && m[1] != "" {
		value = m[1]
	}
	return strings.TrimSpace(value), nil
}

// confidence is monotonically non-decreasing in both the fraction of context
// keywords present and the historical success rate.
func (e *Engine) confidence(rule Rule, lowerText string) float64 {
	conf := baseConfidence

	if n := len(rule.ContextKeywords); n > 0 {
		found := 0
		for _, kw := range rule.ContextKeywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lowerText, strings.ToLower(kw)) {
				found++
			}
		}
		conf += keywordWeight * float64(found) / float64(n)
	}

	conf += successWeight * rule.SuccessRate()

	if conf > maxConfidence {
		conf = maxConfidence
	}
	return conf
}

func (e *Engine) recordSuccess(ctx context.Context, rule Rule) {
	if e.stats == nil {
		return
	}
	if err := e.stats.RecordSuccess(ctx, rule.ID); err != nil {
		e.logger.Warn("failed to record rule success", "rule_id", rule.ID, "error", err)
	}
}

func (e *Engine) recordFailure(ctx context.Context, rule Rule) {
	if e.stats == nil {
		return
	}
	if err := e.stats.RecordFailure(ctx, rule.ID); err != nil {
		e.logger.Warn("failed to record rule failure", "rule_id", rule.ID, "error", err)
	}
}
