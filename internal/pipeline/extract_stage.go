package processor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
	"github.com/Ajauregui69/livo-backend/internal/rules"
)

// ExtractStage picks the extractor for a document: the AI adapter when
// configured, falling back to the rule engine on any AI failure. Output from
// the two paths never merges; whichever ran is the exclusive source.
type ExtractStage struct {
	AI     extractor.FieldExtractor // nil disables the AI path
	Rules  extractor.FieldExtractor
	Logger *slog.Logger
}

func NewExtractStage(ai, ruleEngine extractor.FieldExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{AI: ai, Rules: ruleEngine, Logger: logger}
}

// Run returns the extraction outcome for the document's text.
// rules.ErrNoRules passes through untouched so the caller can route the
// document to manual review.
func (p *ExtractStage) Run(ctx context.Context, docType constants.DocType, text string) (extractor.Outcome, error) {
	if p.AI != nil {
		out, err := p.AI.ExtractFields(ctx, docType, text)
		if err == nil {
			p.Logger.Info("extract.ai.ok", "doc_type", docType, "fields", len(out.Fields), "confidence", out.Confidence)
			return out, nil
		}
		p.Logger.Warn("extract.ai.failed; falling back to rules", "doc_type", docType, "err", err)
	}

	out, err := p.Rules.ExtractFields(ctx, docType, text)
	if errors.Is(err, rules.ErrNoRules) {
		return extractor.Outcome{}, err
	}
	if err != nil {
		return extractor.Outcome{}, err
	}
	p.Logger.Info("extract.rules.ok", "doc_type", docType, "fields", len(out.Fields), "confidence", out.Confidence)
	return out, nil
}
