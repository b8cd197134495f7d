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

// ExtractedField is one (document, field_name) observation. The machine
// value lives in extracted_value; a human correction, when present, lives in
// reviewed_value and takes precedence.
type ExtractedField struct{ ent.Schema }

func (ExtractedField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_fields"},
	}
}

func (ExtractedField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		field.String("field_type").Default(string(constants.FieldText)).
			Validate(utils.EnumValidator(constants.FieldTypes...)),
		field.String("extracted_value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("reviewed_value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// 0..100; nil when the provenance carries no estimate (manual entries)
		field.Float("confidence").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("extraction_method").NotEmpty(),
		field.Bool("corrected").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractedField) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY fields -> ONE document
		edge.From("document", Document.Type).
			Ref("fields").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (ExtractedField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "field_name").Unique(),
	}
}
