package extractor

import (
	"context"

	"github.com/Ajauregui69/livo-backend/constants"
)

// FieldValue is one extracted observation with its provenance.
type FieldValue struct {
	Name       string
	Value      string
	Type       constants.FieldType
	Confidence float64 // 0..100
	Method     string  // "rule:<uuid>" | constants.MethodAI
}

// Outcome is the shared output contract of every extractor variant. The
// AI adapter and the rule engine produce the same shape so the pipeline can
// select between them by availability alone.
type Outcome struct {
	Fields      []FieldValue
	Confidence  float64 // overall 0..100, arithmetic mean of per-field values
	NeedsReview bool
	Notes       []string
	Source      string // "rules" | "ai"
}

// FieldMap flattens the outcome into a name -> value snapshot.
func (o Outcome) FieldMap() map[string]string {
	m := make(map[string]string, len(o.Fields))
	for _, f := range o.Fields {
		m[f.Name] = f.Value
	}
	return m
}

// FieldExtractor is Stage 2 of a document pass: text -> structured fields.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, docType constants.DocType, text string) (Outcome, error)
}
