package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
	"github.com/Ajauregui69/livo-backend/internal/repository"
	"github.com/Ajauregui69/livo-backend/internal/review"
	"github.com/Ajauregui69/livo-backend/internal/rules"
	"github.com/Ajauregui69/livo-backend/internal/textract"
)

type memDocs struct {
	docs      map[uuid.UUID]*ent.Document
	snapshots map[uuid.UUID]map[string]string
	notes     map[uuid.UUID]string
}

func newMemDocs() *memDocs {
	return &memDocs{
		docs:      make(map[uuid.UUID]*ent.Document),
		snapshots: make(map[uuid.UUID]map[string]string),
		notes:     make(map[uuid.UUID]string),
	}
}

func (m *memDocs) add(docType, mimeType string) *ent.Document {
	doc := &ent.Document{
		ID:         uuid.New(),
		SubjectID:  uuid.New(),
		DocType:    docType,
		StorageKey: "subjects/x/doc.pdf",
		FileName:   "doc.pdf",
		MimeType:   mimeType,
		Status:     string(constants.DocStatusUploaded),
	}
	m.docs[doc.ID] = doc
	return doc
}

func (m *memDocs) Create(context.Context, repository.CreateDocumentParams) (*ent.Document, error) {
	panic("not used")
}

func (m *memDocs) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "document not found")
	}
	return doc, nil
}

func (m *memDocs) ListBySubject(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return nil, nil
}

func (m *memDocs) ListProcessedBySubject(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return nil, nil
}

func (m *memDocs) ClaimForProcessing(_ context.Context, id uuid.UUID) error {
	doc := m.docs[id]
	if doc.Status == string(constants.DocStatusProcessing) {
		return common.WrapError(common.ErrConflict, "document is already being processed")
	}
	doc.Status = string(constants.DocStatusProcessing)
	return nil
}

func (m *memDocs) MarkProcessed(_ context.Context, id uuid.UUID, snapshot map[string]string, notes string) error {
	m.docs[id].Status = string(constants.DocStatusProcessed)
	m.snapshots[id] = snapshot
	m.notes[id] = notes
	return nil
}

func (m *memDocs) MarkFailed(_ context.Context, id uuid.UUID, notes string) error {
	m.docs[id].Status = string(constants.DocStatusFailed)
	m.notes[id] = notes
	return nil
}

func (m *memDocs) SetStatus(_ context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	m.docs[id].Status = string(status)
	return nil
}

func (m *memDocs) Delete(context.Context, uuid.UUID) error { return nil }

type memFields struct {
	byDoc map[uuid.UUID][]extractor.FieldValue
}

func newMemFields() *memFields {
	return &memFields{byDoc: make(map[uuid.UUID][]extractor.FieldValue)}
}

func (m *memFields) ReplaceForDocument(_ context.Context, id uuid.UUID, fields []extractor.FieldValue) error {
	m.byDoc[id] = fields
	return nil
}

func (m *memFields) ListByDocument(context.Context, uuid.UUID) ([]*ent.ExtractedField, error) {
	return nil, nil
}

func (m *memFields) GetByName(context.Context, uuid.UUID, string) (*ent.ExtractedField, error) {
	return nil, common.WrapError(common.ErrNotFound, "extracted field not found")
}

func (m *memFields) SetReviewedValue(context.Context, uuid.UUID, string, bool) error { return nil }

func (m *memFields) CreateManual(context.Context, uuid.UUID, string, string, string) (*ent.ExtractedField, error) {
	return nil, nil
}

func (m *memFields) EffectiveForSubject(context.Context, uuid.UUID) (map[string]string, error) {
	return nil, nil
}

type memReviews struct {
	created []repository.CreateReviewParams
}

func (m *memReviews) Create(_ context.Context, p repository.CreateReviewParams) (*ent.DocumentReview, error) {
	m.created = append(m.created, p)
	return &ent.DocumentReview{
		ID:            uuid.New(),
		DocumentID:    p.DocumentID,
		Status:        string(constants.ReviewStatusPending),
		AutoExtracted: p.AutoExtracted,
	}, nil
}

func (m *memReviews) GetByID(context.Context, uuid.UUID) (*ent.DocumentReview, error) {
	return nil, common.WrapError(common.ErrNotFound, "review not found")
}

func (m *memReviews) ListPending(context.Context, int) ([]*ent.DocumentReview, error) {
	return nil, nil
}

func (m *memReviews) OpenForDocument(context.Context, uuid.UUID) (*ent.DocumentReview, error) {
	return nil, common.WrapError(common.ErrNotFound, "document has no open review")
}

func (m *memReviews) Assign(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (m *memReviews) Complete(context.Context, uuid.UUID, map[string]string, map[string]bool, string) error {
	return nil
}

func (m *memReviews) Skip(context.Context, uuid.UUID, string) error { return nil }

type memStore struct {
	data map[string][]byte
	err  error
}

func (s *memStore) Fetch(_ context.Context, key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.data[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return b, nil
}

func (s *memStore) Delete(context.Context, string) error { return nil }

type stubAcquirer struct {
	res textract.Result
}

func (a *stubAcquirer) Acquire(context.Context, []byte, string, string) (textract.Result, error) {
	return a.res, nil
}

type stubExtractor struct {
	out extractor.Outcome
	err error
}

func (e *stubExtractor) ExtractFields(context.Context, constants.DocType, string) (extractor.Outcome, error) {
	return e.out, e.err
}

func newProcessor(docs *memDocs, fields *memFields, reviews *memReviews, store *memStore, acq TextAcquirer, ai, ruleEx extractor.FieldExtractor) *Processor {
	svc := review.NewService(reviews, docs, fields, nil)
	return NewProcessor(
		docs,
		fields,
		svc,
		NewAcquireStage(store, acq, nil),
		NewExtractStage(ai, ruleEx, nil),
		nil,
	)
}

func TestProcessHighConfidence(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("payroll", "application/pdf")
	fields := newMemFields()
	reviews := &memReviews{}
	store := &memStore{data: map[string][]byte{doc.StorageKey: []byte("%PDF")}}
	acq := &stubAcquirer{res: textract.Result{Text: "NOMINA Sueldo mensual $45,000", Method: "pdf_native"}}
	ruleEx := &stubExtractor{out: extractor.Outcome{
		Fields: []extractor.FieldValue{
			{Name: "monthly_income", Value: "45000", Type: "currency", Confidence: 90, Method: "rule:abc"},
			{Name: "employer_name", Value: "Acme SA", Type: "text", Confidence: 85, Method: "rule:def"},
		},
		Confidence: 87.5,
		Source:     "rules",
	}}

	p := newProcessor(docs, fields, reviews, store, acq, nil, ruleEx)
	require.NoError(t, p.Process(context.Background(), doc.ID))

	assert.Equal(t, string(constants.DocStatusProcessed), doc.Status)
	assert.Equal(t, "45000", docs.snapshots[doc.ID]["monthly_income"])
	assert.Len(t, fields.byDoc[doc.ID], 2)
	assert.Empty(t, reviews.created)
}

func TestProcessLowConfidenceQueuesReview(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("bank_statement", "application/pdf")
	fields := newMemFields()
	reviews := &memReviews{}
	store := &memStore{data: map[string][]byte{doc.StorageKey: []byte("%PDF")}}
	acq := &stubAcquirer{res: textract.Result{Text: "ESTADO DE CUENTA"}}
	ruleEx := &stubExtractor{out: extractor.Outcome{
		Fields: []extractor.FieldValue{
			{Name: "average_balance", Value: "12000", Type: "currency", Confidence: 55, Method: "rule:abc"},
		},
		Confidence:  55,
		NeedsReview: true,
		Source:      "rules",
	}}

	p := newProcessor(docs, fields, reviews, store, acq, nil, ruleEx)
	require.NoError(t, p.Process(context.Background(), doc.ID))

	// Low confidence parks the document, it does not finish it.
	assert.Equal(t, string(constants.DocStatusProcessing), doc.Status)
	require.Len(t, reviews.created, 1)
	require.NotNil(t, reviews.created[0].ConfidenceScore)
	assert.InDelta(t, 55, *reviews.created[0].ConfidenceScore, 0.001)
	assert.Equal(t, "12000", reviews.created[0].AutoExtracted["average_balance"])
}

func TestProcessNoRulesEscapeHatch(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("other", "application/pdf")
	fields := newMemFields()
	reviews := &memReviews{}
	store := &memStore{data: map[string][]byte{doc.StorageKey: []byte("%PDF")}}
	acq := &stubAcquirer{res: textract.Result{Text: "some scanned letter"}}
	ruleEx := &stubExtractor{err: rules.ErrNoRules}

	p := newProcessor(docs, fields, reviews, store, acq, nil, ruleEx)
	require.NoError(t, p.Process(context.Background(), doc.ID))

	assert.Equal(t, string(constants.DocStatusProcessing), doc.Status, "document must never fail for missing rules")
	require.Len(t, reviews.created, 1)
	assert.Nil(t, reviews.created[0].AutoExtracted)
	assert.Nil(t, reviews.created[0].ConfidenceScore)
	assert.Empty(t, fields.byDoc[doc.ID])
}

func TestProcessFetchErrorFailsDocument(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("payroll", "application/pdf")
	store := &memStore{err: errors.New("connection refused")}
	p := newProcessor(docs, newMemFields(), &memReviews{}, store, &stubAcquirer{}, nil, &stubExtractor{})

	require.NoError(t, p.Process(context.Background(), doc.ID))
	assert.Equal(t, string(constants.DocStatusFailed), doc.Status)
	assert.Contains(t, docs.notes[doc.ID], "connection refused")
}

func TestProcessUnsupportedMimeFails(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("payroll", "application/zip")
	store := &memStore{data: map[string][]byte{doc.StorageKey: []byte("PK")}}
	acq := &stubAcquirer{res: textract.Result{Unsupported: true}}
	p := newProcessor(docs, newMemFields(), &memReviews{}, store, acq, nil, &stubExtractor{})

	require.NoError(t, p.Process(context.Background(), doc.ID))
	assert.Equal(t, string(constants.DocStatusFailed), doc.Status)
	assert.Contains(t, docs.notes[doc.ID], "unsupported")
}

func TestProcessEmptyTextQueuesReview(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("id_document", "image/png")
	reviews := &memReviews{}
	store := &memStore{data: map[string][]byte{doc.StorageKey: []byte("png")}}
	acq := &stubAcquirer{res: textract.Result{Empty: true, Warnings: []string{"ocr failed: exit status 1"}}}
	p := newProcessor(docs, newMemFields(), reviews, store, acq, nil, &stubExtractor{})

	require.NoError(t, p.Process(context.Background(), doc.ID))
	assert.Equal(t, string(constants.DocStatusProcessing), doc.Status)
	require.Len(t, reviews.created, 1)
	assert.Contains(t, reviews.created[0].ExtractionNotes, "no text")
}

func TestProcessRejectsConcurrentPass(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("payroll", "application/pdf")
	doc.Status = string(constants.DocStatusProcessing)
	p := newProcessor(docs, newMemFields(), &memReviews{}, &memStore{}, &stubAcquirer{}, nil, &stubExtractor{})

	err := p.Process(context.Background(), doc.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestAIFallsBackToRules(t *testing.T) {
	docs := newMemDocs()
	doc := docs.add("payroll", "application/pdf")
	fields := newMemFields()
	store := &memStore{data: map[string][]byte{doc.StorageKey: []byte("%PDF")}}
	acq := &stubAcquirer{res: textract.Result{Text: "NOMINA"}}
	ai := &stubExtractor{err: errors.New("model timeout")}
	ruleEx := &stubExtractor{out: extractor.Outcome{
		Fields:     []extractor.FieldValue{{Name: "monthly_income", Value: "30000", Type: "currency", Confidence: 80, Method: "rule:a"}},
		Confidence: 80,
		Source:     "rules",
	}}

	p := newProcessor(docs, fields, &memReviews{}, store, acq, ai, ruleEx)
	require.NoError(t, p.Process(context.Background(), doc.ID))

	assert.Equal(t, string(constants.DocStatusProcessed), doc.Status)
	assert.Equal(t, "30000", docs.snapshots[doc.ID]["monthly_income"])
}
