package server

import (
	"bytes"
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	documentsv1 "github.com/Ajauregui69/livo-backend/gen/proto/documents/v1"
	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/async"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/export"
	"github.com/Ajauregui69/livo-backend/internal/repository"
	"github.com/Ajauregui69/livo-backend/internal/storage"
)

type DocumentService struct {
	documentsv1.UnimplementedDocumentsServiceServer
	documentRepo repository.DocumentRepository
	fieldRepo    repository.FieldRepository
	store        *storage.LocalStore
	queue        async.Queue
	exporter     *export.Service
	logger       *slog.Logger
}

func NewDocumentService(
	documentRepo repository.DocumentRepository,
	fieldRepo repository.FieldRepository,
	store *storage.LocalStore,
	queue async.Queue,
	exporter *export.Service,
	logger *slog.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		fieldRepo:    fieldRepo,
		store:        store,
		queue:        queue,
		exporter:     exporter,
		logger:       logger,
	}
}

func (s *DocumentService) UploadDocument(ctx context.Context, req *documentsv1.UploadDocumentRequest) (*documentsv1.UploadDocumentResponse, error) {
	subjectID, err := parseUUIDField(req.GetSubjectId(), "subject_id")
	if err != nil {
		return nil, err
	}
	docType, known := constants.CanonicalDocType(req.GetDocType())
	if !known {
		s.logger.Error("upload request with unknown doc_type", "doc_type", req.GetDocType())
		return nil, status.Errorf(codes.InvalidArgument, "doc_type must be one of: %s", strings.Join(constants.DocTypeStrings(), ", "))
	}
	if strings.TrimSpace(req.GetFileName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	key, size, err := s.store.Save(ctx, subjectID.String(), req.GetFileName(), bytes.NewReader(req.GetContent()))
	if err != nil {
		s.logger.Error("failed to store document bytes", "subject_id", subjectID, "error", err)
		return nil, status.Errorf(codes.Internal, "store bytes: %v", err)
	}

	doc, err := s.documentRepo.Create(ctx, repository.CreateDocumentParams{
		SubjectID:  subjectID,
		DocType:    string(docType),
		StorageKey: key,
		FileName:   req.GetFileName(),
		MimeType:   req.GetMimeType(),
	})
	if err != nil {
		// best effort cleanup of the orphaned object
		_ = s.store.Delete(ctx, key)
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("document uploaded", "document_id", doc.ID, "subject_id", subjectID, "bytes", size)

	_ = s.queue.Enqueue(ctx, async.Job{DocumentID: doc.ID, SubmittedAt: time.Now(), TraceID: common.RequestIDFromContext(ctx)})

	return &documentsv1.UploadDocumentResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *documentsv1.GetDocumentRequest) (*documentsv1.GetDocumentResponse, error) {
	id, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &documentsv1.GetDocumentResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *documentsv1.ListDocumentsRequest) (*documentsv1.ListDocumentsResponse, error) {
	subjectID, err := parseUUIDField(req.GetSubjectId(), "subject_id")
	if err != nil {
		return nil, err
	}
	docs, err := s.documentRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	out := make([]*documentsv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &documentsv1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentService) ListDocumentFields(ctx context.Context, req *documentsv1.ListDocumentFieldsRequest) (*documentsv1.ListDocumentFieldsResponse, error) {
	id, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	fields, err := s.fieldRepo.ListByDocument(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	out := make([]*documentsv1.ExtractedField, 0, len(fields))
	for _, f := range fields {
		out = append(out, toPBField(f))
	}
	return &documentsv1.ListDocumentFieldsResponse{Fields: out}, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, req *documentsv1.DeleteDocumentRequest) (*documentsv1.DeleteDocumentResponse, error) {
	id, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return nil, common.ToStatusError(err)
	}
	if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
		s.logger.Warn("failed to delete stored bytes", "document_id", id, "storage_key", doc.StorageKey, "error", err)
	}
	return &documentsv1.DeleteDocumentResponse{}, nil
}

func (s *DocumentService) ReprocessDocument(ctx context.Context, req *documentsv1.ReprocessDocumentRequest) (*documentsv1.ReprocessDocumentResponse, error) {
	id, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	if doc.Status == string(constants.DocStatusProcessing) {
		return nil, status.Error(codes.FailedPrecondition, "document is already being processed")
	}
	s.logger.Info("reprocess requested", "document_id", id)
	_ = s.queue.Enqueue(ctx, async.Job{DocumentID: id, Reprocess: true, SubmittedAt: time.Now(), TraceID: common.RequestIDFromContext(ctx)})
	return &documentsv1.ReprocessDocumentResponse{}, nil
}

func (s *DocumentService) ExportSubjectReport(ctx context.Context, req *documentsv1.ExportSubjectReportRequest) (*documentsv1.ExportSubjectReportResponse, error) {
	subjectID, err := parseUUIDField(req.GetSubjectId(), "subject_id")
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.SubjectReportXLSX(ctx, subjectID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &documentsv1.ExportSubjectReportResponse{Xlsx: data}, nil
}

func toPBDocument(d *ent.Document) *documentsv1.Document {
	out := &documentsv1.Document{
		Id:            d.ID.String(),
		SubjectId:     d.SubjectID.String(),
		DocType:       d.DocType,
		Status:        d.Status,
		FileName:      d.FileName,
		MimeType:      d.MimeType,
		ExtractedData: d.ExtractedData,
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.ProcessingNotes != nil {
		out.ProcessingNotes = *d.ProcessingNotes
	}
	if d.ProcessedAt != nil {
		out.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func toPBField(f *ent.ExtractedField) *documentsv1.ExtractedField {
	out := &documentsv1.ExtractedField{
		Id:               f.ID.String(),
		DocumentId:       f.DocumentID.String(),
		FieldName:        f.FieldName,
		FieldType:        f.FieldType,
		ExtractionMethod: f.ExtractionMethod,
		Corrected:        f.Corrected,
	}
	if f.ExtractedValue != nil {
		out.ExtractedValue = *f.ExtractedValue
	}
	if f.ReviewedValue != nil {
		out.ReviewedValue = *f.ReviewedValue
	}
	if f.Confidence != nil {
		out.Confidence = *f.Confidence
	}
	return out
}

func parseUUIDField(raw, name string) (uuid.UUID, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", name)
	}
	return id, nil
}
