package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
)

// DocumentReview wraps one document's extraction pass for human correction.
// At most one non-terminal review may exist per document.
type DocumentReview struct{ ent.Schema }

func (DocumentReview) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_reviews"},
	}
}

func (DocumentReview) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("status").Default(string(constants.ReviewStatusPending)),
		field.Float("confidence_score").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("extraction_notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// nil (not an empty map) when extraction produced nothing to review
		field.JSON("auto_extracted", map[string]string{}).Optional(),
		field.JSON("reviewed_fields", map[string]string{}).Optional(),
		field.JSON("corrections", map[string]bool{}).Optional(),
		field.UUID("reviewer_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("assigned_at").Optional().Nillable(),
		field.Time("reviewed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DocumentReview) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY reviews -> ONE document
		edge.From("document", Document.Type).
			Ref("reviews").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (DocumentReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "status"),
		index.Fields("status", "created_at"),
	}
}
