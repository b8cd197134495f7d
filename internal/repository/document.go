package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/internal/common"
)

type CreateDocumentParams struct {
	SubjectID  uuid.UUID
	DocType    string
	StorageKey string
	FileName   string
	MimeType   string
}

type DocumentRepository interface {
	Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*ent.Document, error)
	ListProcessedBySubject(ctx context.Context, subjectID uuid.UUID) ([]*ent.Document, error)
	// ClaimForProcessing flips the document to PROCESSING unless another
	// worker already holds it. Returns common.ErrConflict when contended.
	ClaimForProcessing(ctx context.Context, id uuid.UUID) error
	MarkProcessed(ctx context.Context, id uuid.UUID, snapshot map[string]string, notes string) error
	MarkFailed(ctx context.Context, id uuid.UUID, notes string) error
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error) {
	doc, err := r.ent.Document.
		Create().
		SetSubjectID(p.SubjectID).
		SetDocType(p.DocType).
		SetStorageKey(p.StorageKey).
		SetFileName(p.FileName).
		SetMimeType(p.MimeType).
		SetStatus(string(constants.DocStatusUploaded)).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "subject_id", p.SubjectID, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to create document")
	}
	r.log.Info("document created", "document_id", doc.ID, "subject_id", p.SubjectID, "doc_type", p.DocType)
	return doc, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, err := r.ent.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "document not found")
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to load document")
	}
	return doc, nil
}

func (r *documentRepo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*ent.Document, error) {
	docs, err := r.ent.Document.
		Query().
		Where(document.SubjectID(subjectID)).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("document list failed", "subject_id", subjectID, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to list documents")
	}
	return docs, nil
}

func (r *documentRepo) ListProcessedBySubject(ctx context.Context, subjectID uuid.UUID) ([]*ent.Document, error) {
	docs, err := r.ent.Document.
		Query().
		Where(
			document.SubjectID(subjectID),
			document.Status(string(constants.DocStatusProcessed)),
		).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to list processed documents")
	}
	return docs, nil
}

func (r *documentRepo) ClaimForProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.
		Update().
		Where(
			document.ID(id),
			document.StatusNEQ(string(constants.DocStatusProcessing)),
		).
		SetStatus(string(constants.DocStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("document claim failed", "document_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to claim document")
	}
	if n == 0 {
		return common.WrapError(common.ErrConflict, "document is already being processed")
	}
	r.log.Info("document claimed", "document_id", id)
	return nil
}

func (r *documentRepo) MarkProcessed(ctx context.Context, id uuid.UUID, snapshot map[string]string, notes string) error {
	upd := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocStatusProcessed)).
		SetProcessedAt(time.Now())
	if snapshot != nil {
		upd.SetExtractedData(snapshot)
	}
	if notes != "" {
		upd.SetProcessingNotes(notes)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("document mark processed failed", "document_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to mark document processed")
	}
	r.log.Info("document processed", "document_id", id, "fields", len(snapshot))
	return nil
}

func (r *documentRepo) MarkFailed(ctx context.Context, id uuid.UUID, notes string) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocStatusFailed)).
		SetProcessingNotes(notes).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("document mark failed errored", "document_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to mark document failed")
	}
	r.log.Warn("document failed", "document_id", id, "notes", notes)
	return nil
}

func (r *documentRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, "failed to update document status")
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.Status == string(constants.DocStatusProcessing) {
		return common.WrapError(common.ErrConflict, "cannot delete a document while it is processing")
	}
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.log.Error("document delete failed", "document_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, "failed to delete document")
	}
	r.log.Info("document deleted", "document_id", id)
	return nil
}
