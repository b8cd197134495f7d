// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CreditScoresColumns holds the columns for the "credit_scores" table.
	CreditScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "subject_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeInt},
		{Name: "risk_tier", Type: field.TypeString},
		{Name: "estimated_monthly_income", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(14,2)", "sqlite3": "decimal(14,2)"}},
		{Name: "max_loan", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(14,2)", "sqlite3": "decimal(14,2)"}},
		{Name: "suggested_down_payment", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(14,2)", "sqlite3": "decimal(14,2)"}},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CreditScoresTable holds the schema information for the "credit_scores" table.
	CreditScoresTable = &schema.Table{
		Name:       "credit_scores",
		Columns:    CreditScoresColumns,
		PrimaryKey: []*schema.Column{CreditScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "creditscore_subject_id_active",
				Unique:  false,
				Columns: []*schema.Column{CreditScoresColumns[1], CreditScoresColumns[9]},
			},
			{
				Name:    "creditscore_expires_at",
				Unique:  false,
				Columns: []*schema.Column{CreditScoresColumns[11]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "subject_id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_subject_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[6]},
			},
			{
				Name:    "document_subject_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[10]},
			},
		},
	}
	// DocumentReviewsColumns holds the columns for the "document_reviews" table.
	DocumentReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "extraction_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "auto_extracted", Type: field.TypeJSON, Nullable: true},
		{Name: "reviewed_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "corrections", Type: field.TypeJSON, Nullable: true},
		{Name: "reviewer_id", Type: field.TypeUUID, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentReviewsTable holds the schema information for the "document_reviews" table.
	DocumentReviewsTable = &schema.Table{
		Name:       "document_reviews",
		Columns:    DocumentReviewsColumns,
		PrimaryKey: []*schema.Column{DocumentReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_reviews_documents_reviews",
				Columns:    []*schema.Column{DocumentReviewsColumns[12]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentreview_document_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentReviewsColumns[12], DocumentReviewsColumns[1]},
			},
			{
				Name:    "documentreview_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentReviewsColumns[1], DocumentReviewsColumns[10]},
			},
		},
	}
	// ExtractedFieldsColumns holds the columns for the "extracted_fields" table.
	ExtractedFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "field_type", Type: field.TypeString, Default: "text"},
		{Name: "extracted_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "reviewed_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "extraction_method", Type: field.TypeString},
		{Name: "corrected", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractedFieldsTable holds the schema information for the "extracted_fields" table.
	ExtractedFieldsTable = &schema.Table{
		Name:       "extracted_fields",
		Columns:    ExtractedFieldsColumns,
		PrimaryKey: []*schema.Column{ExtractedFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_fields_documents_fields",
				Columns:    []*schema.Column{ExtractedFieldsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedfield_document_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{ExtractedFieldsColumns[10], ExtractedFieldsColumns[1]},
			},
		},
	}
	// ExtractionRulesColumns holds the columns for the "extraction_rules" table.
	ExtractionRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "field_name", Type: field.TypeString},
		{Name: "pattern", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "pattern_type", Type: field.TypeString, Default: "regex"},
		{Name: "field_type", Type: field.TypeString, Default: "text"},
		{Name: "context_keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExtractionRulesTable holds the schema information for the "extraction_rules" table.
	ExtractionRulesTable = &schema.Table{
		Name:       "extraction_rules",
		Columns:    ExtractionRulesColumns,
		PrimaryKey: []*schema.Column{ExtractionRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrule_doc_type_active_priority",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRulesColumns[2], ExtractionRulesColumns[9], ExtractionRulesColumns[8]},
			},
			{
				Name:    "extractionrule_doc_type_field_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRulesColumns[2], ExtractionRulesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CreditScoresTable,
		DocumentsTable,
		DocumentReviewsTable,
		ExtractedFieldsTable,
		ExtractionRulesTable,
	}
)

func init() {
	CreditScoresTable.Annotation = &entsql.Annotation{
		Table: "credit_scores",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentReviewsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentReviewsTable.Annotation = &entsql.Annotation{
		Table: "document_reviews",
	}
	ExtractedFieldsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractedFieldsTable.Annotation = &entsql.Annotation{
		Table: "extracted_fields",
	}
	ExtractionRulesTable.Annotation = &entsql.Annotation{
		Table: "extraction_rules",
	}
}
