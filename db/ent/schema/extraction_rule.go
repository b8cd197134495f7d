package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/db/ent/schema/utils"
)

// ExtractionRule is a reusable pattern for one (doc_type, field_name) pair.
// Rules are data, not code: they are created and edited independently of
// deploys, and their success/failure counters are bumped on every attempt.
type ExtractionRule struct{ ent.Schema }

func (ExtractionRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_rules"},
	}
}

func (ExtractionRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// "rule_name" rather than plain "name": a field called "name" would
		// collide with the generated FieldName predicate for "field_name".
		field.String("rule_name").NotEmpty(),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocTypeStrings()...)),
		field.String("field_name").NotEmpty(),
		field.String("pattern").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("pattern_type").Default("regex"),
		field.String("field_type").Default(string(constants.FieldText)).
			Validate(utils.EnumValidator(constants.FieldTypes...)),
		field.JSON("context_keywords", []string{}).Optional(),
		field.Int("priority").Default(0),
		field.Bool("active").Default(true),
		field.Int("success_count").Default(0).NonNegative(),
		field.Int("failure_count").Default(0).NonNegative(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_type", "active", "priority"),
		index.Fields("doc_type", "field_name"),
	}
}
