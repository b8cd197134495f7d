// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/gen/ent/documentreview"
	"github.com/google/uuid"
)

// DocumentReview is the model entity for the DocumentReview schema.
type DocumentReview struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// ExtractionNotes holds the value of the "extraction_notes" field.
	ExtractionNotes *string `json:"extraction_notes,omitempty"`
	// AutoExtracted holds the value of the "auto_extracted" field.
	AutoExtracted map[string]string `json:"auto_extracted,omitempty"`
	// ReviewedFields holds the value of the "reviewed_fields" field.
	ReviewedFields map[string]string `json:"reviewed_fields,omitempty"`
	// Corrections holds the value of the "corrections" field.
	Corrections map[string]bool `json:"corrections,omitempty"`
	// ReviewerID holds the value of the "reviewer_id" field.
	ReviewerID *uuid.UUID `json:"reviewer_id,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentReviewQuery when eager-loading is set.
	Edges        DocumentReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentReviewEdges holds the relations/edges for other nodes in the graph.
type DocumentReviewEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentReviewEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentreview.FieldReviewerID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case documentreview.FieldAutoExtracted, documentreview.FieldReviewedFields, documentreview.FieldCorrections:
			values[i] = new([]byte)
		case documentreview.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case documentreview.FieldStatus, documentreview.FieldExtractionNotes:
			values[i] = new(sql.NullString)
		case documentreview.FieldAssignedAt, documentreview.FieldReviewedAt, documentreview.FieldCreatedAt, documentreview.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case documentreview.FieldID, documentreview.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentReview fields.
func (_m *DocumentReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentreview.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentreview.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case documentreview.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case documentreview.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case documentreview.FieldExtractionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_notes", values[i])
			} else if value.Valid {
				_m.ExtractionNotes = new(string)
				*_m.ExtractionNotes = value.String
			}
		case documentreview.FieldAutoExtracted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field auto_extracted", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AutoExtracted); err != nil {
					return fmt.Errorf("unmarshal field auto_extracted: %w", err)
				}
			}
		case documentreview.FieldReviewedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReviewedFields); err != nil {
					return fmt.Errorf("unmarshal field reviewed_fields: %w", err)
				}
			}
		case documentreview.FieldCorrections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field corrections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Corrections); err != nil {
					return fmt.Errorf("unmarshal field corrections: %w", err)
				}
			}
		case documentreview.FieldReviewerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_id", values[i])
			} else if value.Valid {
				_m.ReviewerID = new(uuid.UUID)
				*_m.ReviewerID = *value.S.(*uuid.UUID)
			}
		case documentreview.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = new(time.Time)
				*_m.AssignedAt = value.Time
			}
		case documentreview.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case documentreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case documentreview.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentReview.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentReview entity.
func (_m *DocumentReview) QueryDocument() *DocumentQuery {
	return NewDocumentReviewClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocumentReview.
// Note that you need to call DocumentReview.Unwrap() before calling this method if this DocumentReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentReview) Update() *DocumentReviewUpdateOne {
	return NewDocumentReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentReview) Unwrap() *DocumentReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentReview) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractionNotes; v != nil {
		builder.WriteString("extraction_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("auto_extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoExtracted))
	builder.WriteString(", ")
	builder.WriteString("reviewed_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewedFields))
	builder.WriteString(", ")
	builder.WriteString("corrections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Corrections))
	builder.WriteString(", ")
	if v := _m.ReviewerID; v != nil {
		builder.WriteString("reviewer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AssignedAt; v != nil {
		builder.WriteString("assigned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentReviews is a parsable slice of DocumentReview.
type DocumentReviews []*DocumentReview
