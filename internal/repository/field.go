package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractedfield"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
)

type FieldRepository interface {
	// ReplaceForDocument drops any previous extraction and stores the new
	// field set so reprocessing never accretes stale values.
	ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []extractor.FieldValue) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.ExtractedField, error)
	GetByName(ctx context.Context, documentID uuid.UUID, fieldName string) (*ent.ExtractedField, error)
	SetReviewedValue(ctx context.Context, id uuid.UUID, value string, corrected bool) error
	CreateManual(ctx context.Context, documentID uuid.UUID, fieldName, fieldType, value string) (*ent.ExtractedField, error)
	// EffectiveForSubject returns the reviewed-else-extracted value of every
	// field across the subject's processed documents, later documents winning.
	EffectiveForSubject(ctx context.Context, subjectID uuid.UUID) (map[string]string, error)
}

type fieldRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFieldRepository(entc *ent.Client, log *slog.Logger) FieldRepository {
	return &fieldRepo{ent: entc, log: log}
}

func (r *fieldRepo) ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []extractor.FieldValue) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, "failed to open transaction")
	}
	if _, err := tx.ExtractedField.
		Delete().
		Where(extractedfield.DocumentID(documentID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return common.WrapError(common.ErrDatabase, "failed to clear previous fields")
	}
	builders := make([]*ent.ExtractedFieldCreate, 0, len(fields))
	for _, f := range fields {
		builders = append(builders, tx.ExtractedField.
			Create().
			SetDocumentID(documentID).
			SetFieldName(f.Name).
			SetFieldType(string(f.Type)).
			SetExtractedValue(f.Value).
			SetConfidence(f.Confidence).
			SetExtractionMethod(f.Method))
	}
	if _, err := tx.ExtractedField.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.log.Error("field bulk insert failed", "document_id", documentID, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to store extracted fields")
	}
	if err := tx.Commit(); err != nil {
		return common.WrapError(common.ErrDatabase, "failed to commit extracted fields")
	}
	r.log.Info("fields replaced", "document_id", documentID, "count", len(fields))
	return nil
}

func (r *fieldRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.ExtractedField, error) {
	out, err := r.ent.ExtractedField.
		Query().
		Where(extractedfield.DocumentID(documentID)).
		Order(ent.Asc(extractedfield.FieldFieldName)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to list extracted fields")
	}
	return out, nil
}

func (r *fieldRepo) GetByName(ctx context.Context, documentID uuid.UUID, fieldName string) (*ent.ExtractedField, error) {
	f, err := r.ent.ExtractedField.
		Query().
		Where(
			extractedfield.DocumentID(documentID),
			extractedfield.FieldName(fieldName),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "extracted field not found")
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to load extracted field")
	}
	return f, nil
}

func (r *fieldRepo) SetReviewedValue(ctx context.Context, id uuid.UUID, value string, corrected bool) error {
	_, err := r.ent.ExtractedField.
		UpdateOneID(id).
		SetReviewedValue(value).
		SetCorrected(corrected).
		Save(ctx)
	if err != nil {
		r.log.Error("field review update failed", "field_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to store reviewed value")
	}
	return nil
}

func (r *fieldRepo) CreateManual(ctx context.Context, documentID uuid.UUID, fieldName, fieldType, value string) (*ent.ExtractedField, error) {
	f, err := r.ent.ExtractedField.
		Create().
		SetDocumentID(documentID).
		SetFieldName(fieldName).
		SetFieldType(fieldType).
		SetReviewedValue(value).
		SetExtractionMethod(constants.MethodManual).
		SetCorrected(true).
		Save(ctx)
	if err != nil {
		r.log.Error("manual field create failed", "document_id", documentID, "field", fieldName, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to create manual field")
	}
	return f, nil
}

func (r *fieldRepo) EffectiveForSubject(ctx context.Context, subjectID uuid.UUID) (map[string]string, error) {
	rows, err := r.ent.ExtractedField.
		Query().
		Where(extractedfield.HasDocumentWith(
			document.SubjectID(subjectID),
			document.Status(string(constants.DocStatusProcessed)),
		)).
		WithDocument().
		All(ctx)
	if err != nil {
		r.log.Error("subject field query failed", "subject_id", subjectID, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to load subject fields")
	}
	type dated struct {
		value string
		at    int64
	}
	latest := make(map[string]dated, len(rows))
	for _, row := range rows {
		value := ""
		if row.ReviewedValue != nil && *row.ReviewedValue != "" {
			value = *row.ReviewedValue
		} else if row.ExtractedValue != nil {
			value = *row.ExtractedValue
		}
		if value == "" {
			continue
		}
		at := int64(0)
		if row.Edges.Document != nil {
			at = row.Edges.Document.CreatedAt.UnixNano()
		}
		if cur, ok := latest[row.FieldName]; !ok || at >= cur.at {
			latest[row.FieldName] = dated{value: value, at: at}
		}
	}
	out := make(map[string]string, len(latest))
	for name, d := range latest {
		out[name] = d.value
	}
	return out, nil
}
