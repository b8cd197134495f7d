// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CreditScore is the predicate function for creditscore builders.
type CreditScore func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentReview is the predicate function for documentreview builders.
type DocumentReview func(*sql.Selector)

// ExtractedField is the predicate function for extractedfield builders.
type ExtractedField func(*sql.Selector)

// ExtractionRule is the predicate function for extractionrule builders.
type ExtractionRule func(*sql.Selector)
