package review

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
)

type fakeReviews struct {
	items map[uuid.UUID]*ent.DocumentReview

	completedFields map[string]string
	corrections     map[string]bool
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{items: make(map[uuid.UUID]*ent.DocumentReview)}
}

func (f *fakeReviews) Create(_ context.Context, p repository.CreateReviewParams) (*ent.DocumentReview, error) {
	for _, rv := range f.items {
		if rv.DocumentID == p.DocumentID && !constants.ReviewStatus(rv.Status).Terminal() {
			return nil, common.WrapError(common.ErrConflict, "document already has an open review")
		}
	}
	rv := &ent.DocumentReview{
		ID:            uuid.New(),
		DocumentID:    p.DocumentID,
		Status:        string(constants.ReviewStatusPending),
		AutoExtracted: p.AutoExtracted,
	}
	f.items[rv.ID] = rv
	return rv, nil
}

func (f *fakeReviews) GetByID(_ context.Context, id uuid.UUID) (*ent.DocumentReview, error) {
	rv, ok := f.items[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "review not found")
	}
	return rv, nil
}

func (f *fakeReviews) ListPending(_ context.Context, _ int) ([]*ent.DocumentReview, error) {
	var out []*ent.DocumentReview
	for _, rv := range f.items {
		if rv.Status == string(constants.ReviewStatusPending) {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviews) OpenForDocument(_ context.Context, documentID uuid.UUID) (*ent.DocumentReview, error) {
	for _, rv := range f.items {
		if rv.DocumentID == documentID && !constants.ReviewStatus(rv.Status).Terminal() {
			return rv, nil
		}
	}
	return nil, common.WrapError(common.ErrNotFound, "document has no open review")
}

func (f *fakeReviews) Assign(_ context.Context, id, reviewerID uuid.UUID) error {
	rv, ok := f.items[id]
	if !ok || rv.Status != string(constants.ReviewStatusPending) {
		return common.WrapError(common.ErrReviewState, "review is not pending")
	}
	rv.Status = string(constants.ReviewStatusInReview)
	rv.ReviewerID = &reviewerID
	return nil
}

func (f *fakeReviews) Complete(_ context.Context, id uuid.UUID, reviewedFields map[string]string, corrections map[string]bool, _ string) error {
	rv, ok := f.items[id]
	if !ok || rv.Status != string(constants.ReviewStatusInReview) {
		return common.WrapError(common.ErrReviewState, "review is not in review")
	}
	rv.Status = string(constants.ReviewStatusCompleted)
	f.completedFields = reviewedFields
	f.corrections = corrections
	return nil
}

func (f *fakeReviews) Skip(_ context.Context, id uuid.UUID, _ string) error {
	rv, ok := f.items[id]
	if !ok || constants.ReviewStatus(rv.Status).Terminal() {
		return common.WrapError(common.ErrReviewState, "review is already closed")
	}
	rv.Status = string(constants.ReviewStatusSkipped)
	return nil
}

type fakeDocuments struct {
	statuses  map[uuid.UUID]constants.DocumentStatus
	snapshots map[uuid.UUID]map[string]string
}

func newFakeDocuments(ids ...uuid.UUID) *fakeDocuments {
	f := &fakeDocuments{
		statuses:  make(map[uuid.UUID]constants.DocumentStatus),
		snapshots: make(map[uuid.UUID]map[string]string),
	}
	for _, id := range ids {
		f.statuses[id] = constants.DocStatusProcessing
	}
	return f
}

func (f *fakeDocuments) Create(context.Context, repository.CreateDocumentParams) (*ent.Document, error) {
	panic("not used")
}

func (f *fakeDocuments) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	st, ok := f.statuses[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "document not found")
	}
	return &ent.Document{ID: id, Status: string(st)}, nil
}

func (f *fakeDocuments) ListBySubject(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return nil, nil
}

func (f *fakeDocuments) ListProcessedBySubject(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return nil, nil
}

func (f *fakeDocuments) ClaimForProcessing(context.Context, uuid.UUID) error { return nil }

func (f *fakeDocuments) MarkProcessed(_ context.Context, id uuid.UUID, snapshot map[string]string, _ string) error {
	f.statuses[id] = constants.DocStatusProcessed
	f.snapshots[id] = snapshot
	return nil
}

func (f *fakeDocuments) MarkFailed(_ context.Context, id uuid.UUID, _ string) error {
	f.statuses[id] = constants.DocStatusFailed
	return nil
}

func (f *fakeDocuments) SetStatus(_ context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeDocuments) Delete(context.Context, uuid.UUID) error { return nil }

type fakeFields struct {
	byDoc map[uuid.UUID]map[string]*ent.ExtractedField
}

func newFakeFields() *fakeFields {
	return &fakeFields{byDoc: make(map[uuid.UUID]map[string]*ent.ExtractedField)}
}

func (f *fakeFields) add(documentID uuid.UUID, name, value string) *ent.ExtractedField {
	if f.byDoc[documentID] == nil {
		f.byDoc[documentID] = make(map[string]*ent.ExtractedField)
	}
	fld := &ent.ExtractedField{
		ID:             uuid.New(),
		DocumentID:     documentID,
		FieldName:      name,
		ExtractedValue: &value,
	}
	f.byDoc[documentID][name] = fld
	return fld
}

func (f *fakeFields) ReplaceForDocument(context.Context, uuid.UUID, []extractor.FieldValue) error {
	panic("not used")
}

func (f *fakeFields) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*ent.ExtractedField, error) {
	var out []*ent.ExtractedField
	for _, fld := range f.byDoc[documentID] {
		out = append(out, fld)
	}
	return out, nil
}

func (f *fakeFields) GetByName(_ context.Context, documentID uuid.UUID, name string) (*ent.ExtractedField, error) {
	fld, ok := f.byDoc[documentID][name]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "extracted field not found")
	}
	return fld, nil
}

func (f *fakeFields) SetReviewedValue(_ context.Context, id uuid.UUID, value string, corrected bool) error {
	for _, fields := range f.byDoc {
		for _, fld := range fields {
			if fld.ID == id {
				v := value
				fld.ReviewedValue = &v
				fld.Corrected = corrected
				return nil
			}
		}
	}
	return common.WrapError(common.ErrNotFound, "extracted field not found")
}

func (f *fakeFields) CreateManual(_ context.Context, documentID uuid.UUID, name, _, value string) (*ent.ExtractedField, error) {
	fld := f.add(documentID, name, "")
	fld.ExtractedValue = nil
	v := value
	fld.ReviewedValue = &v
	fld.Corrected = true
	return fld, nil
}

func (f *fakeFields) EffectiveForSubject(context.Context, uuid.UUID) (map[string]string, error) {
	return nil, nil
}

func newService(t *testing.T, docID uuid.UUID) (*Service, *fakeReviews, *fakeDocuments, *fakeFields) {
	t.Helper()
	reviews := newFakeReviews()
	docs := newFakeDocuments(docID)
	fields := newFakeFields()
	return NewService(reviews, docs, fields, nil), reviews, docs, fields
}

func TestCompleteRequiresAssignment(t *testing.T) {
	docID := uuid.New()
	svc, reviews, docs, _ := newService(t, docID)

	rv, err := svc.Open(context.Background(), docID, nil, "low confidence", map[string]string{"monthly_income": "45000"})
	require.NoError(t, err)

	err = svc.Complete(context.Background(), rv.ID, map[string]string{"monthly_income": "47000"}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReviewState))

	// Rejection must leave everything untouched.
	assert.Equal(t, string(constants.ReviewStatusPending), reviews.items[rv.ID].Status)
	assert.Equal(t, constants.DocStatusProcessing, docs.statuses[docID])
	assert.Nil(t, reviews.completedFields)
}

func TestCompleteWritesCorrections(t *testing.T) {
	docID := uuid.New()
	svc, reviews, docs, fields := newService(t, docID)

	fields.add(docID, "monthly_income", "45000")
	fields.add(docID, "employer_name", "Acme SA")

	rv, err := svc.Open(context.Background(), docID, nil, "", map[string]string{
		"monthly_income": "45000",
		"employer_name":  "Acme SA",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Assign(context.Background(), rv.ID, uuid.New()))

	err = svc.Complete(context.Background(), rv.ID, map[string]string{
		"monthly_income":  "47000",   // changed
		"employer_name":   "Acme SA", // confirmed as-is
		"average_balance": "12000",   // no machine counterpart
	}, "fixed income figure")
	require.NoError(t, err)

	income, err := fields.GetByName(context.Background(), docID, "monthly_income")
	require.NoError(t, err)
	require.NotNil(t, income.ReviewedValue)
	assert.Equal(t, "47000", *income.ReviewedValue)
	assert.True(t, income.Corrected)

	employer, err := fields.GetByName(context.Background(), docID, "employer_name")
	require.NoError(t, err)
	assert.False(t, employer.Corrected, "unchanged value must not be flagged as corrected")

	balance, err := fields.GetByName(context.Background(), docID, "average_balance")
	require.NoError(t, err)
	assert.True(t, balance.Corrected)
	assert.Nil(t, balance.ExtractedValue)

	assert.Equal(t, constants.DocStatusProcessed, docs.statuses[docID])
	assert.Equal(t, "47000", docs.snapshots[docID]["monthly_income"])
	assert.Equal(t, "12000", docs.snapshots[docID]["average_balance"])
	assert.Equal(t, string(constants.ReviewStatusCompleted), reviews.items[rv.ID].Status)
}

func TestReassignRejected(t *testing.T) {
	docID := uuid.New()
	svc, _, _, _ := newService(t, docID)

	rv, err := svc.Open(context.Background(), docID, nil, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Assign(context.Background(), rv.ID, uuid.New()))

	err = svc.Assign(context.Background(), rv.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReviewState))
}

func TestSkipLeavesDocumentAlone(t *testing.T) {
	docID := uuid.New()
	svc, reviews, docs, _ := newService(t, docID)

	rv, err := svc.Open(context.Background(), docID, nil, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Skip(context.Background(), rv.ID, "not worth reviewing"))

	assert.Equal(t, string(constants.ReviewStatusSkipped), reviews.items[rv.ID].Status)
	assert.Equal(t, constants.DocStatusProcessing, docs.statuses[docID])

	// Terminal states accept nothing further.
	err = svc.Skip(context.Background(), rv.ID, "")
	assert.Error(t, err)
}

func TestSecondOpenReviewRejected(t *testing.T) {
	docID := uuid.New()
	svc, _, _, _ := newService(t, docID)

	_, err := svc.Open(context.Background(), docID, nil, "", nil)
	require.NoError(t, err)
	_, err = svc.Open(context.Background(), docID, nil, "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
}
