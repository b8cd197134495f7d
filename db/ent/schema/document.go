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
	"github.com/Ajauregui69/livo-backend/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("subject_id", uuid.UUID{}),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocTypeStrings()...)),
		field.String("storage_key").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("mime_type").NotEmpty(),
		field.String("status").Default(string(constants.DocStatusUploaded)),
		// snapshot of the effective field values; overwritten when a review completes
		field.JSON("extracted_data", map[string]string{}).Optional(),
		field.String("processing_notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY extracted fields
		edge.To("fields", ExtractedField.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// ONE document -> MANY reviews (at most one non-terminal)
		edge.To("reviews", DocumentReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id", "status"),
		index.Fields("subject_id", "created_at"),
	}
}
