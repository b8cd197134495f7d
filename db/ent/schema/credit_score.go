package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditScore is the persisted result of a scoring pass. Derived data: it is
// recomputed on demand from the subject's documents, with one active row per
// subject at a time.
type CreditScore struct{ ent.Schema }

func (CreditScore) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "credit_scores"},
	}
}

func (CreditScore) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("subject_id", uuid.UUID{}),
		field.Int("score").Min(0).Max(1000),
		field.String("risk_tier").NotEmpty(),
		field.Other("estimated_monthly_income", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(14,2)",
				dialect.SQLite:   "decimal(14,2)",
			}).
			Default(decimal.Decimal{}),
		field.Other("max_loan", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(14,2)",
				dialect.SQLite:   "decimal(14,2)",
			}).
			Default(decimal.Decimal{}),
		field.Other("suggested_down_payment", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(14,2)",
				dialect.SQLite:   "decimal(14,2)",
			}).
			Default(decimal.Decimal{}),
		field.JSON("recommendations", []string{}).Optional(),
		// per-factor breakdown for auditability
		field.JSON("breakdown", json.RawMessage{}).Optional(),
		field.Bool("active").Default(true),
		field.Time("computed_at").Default(time.Now),
		field.Time("expires_at"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CreditScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id", "active"),
		index.Fields("expires_at"),
	}
}
