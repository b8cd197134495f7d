package rules

import (
	"context"
	"errors"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
)

// ErrNoRules signals that no active rules exist for a document type. The
// pipeline treats it as the manual-review escape hatch, never as a crash.
var ErrNoRules = errors.New("no active extraction rules for document type")

// Source loads the active rules for a document type, ordered for the engine.
type Source interface {
	ActiveRules(ctx context.Context, docType constants.DocType) ([]Rule, error)
}

// Extractor adapts the engine to the shared FieldExtractor contract.
type Extractor struct {
	source Source
	engine *Engine
}

func NewExtractor(source Source, engine *Engine) *Extractor {
	return &Extractor{source: source, engine: engine}
}

func (x *Extractor) ExtractFields(ctx context.Context, docType constants.DocType, text string) (extractor.Outcome, error) {
	ruleSet, err := x.source.ActiveRules(ctx, docType)
	if err != nil {
		return extractor.Outcome{}, err
	}
	if len(ruleSet) == 0 {
		return extractor.Outcome{}, ErrNoRules
	}
	return x.engine.Extract(ctx, docType, text, ruleSet), nil
}
