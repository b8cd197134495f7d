package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/sqlite"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/gen/ent/enttest"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
)

// sqliteDriver adapts modernc.org/sqlite to the "sqlite3" name ent expects,
// with foreign keys switched on per connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(t *testing.T) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func createDocument(t *testing.T, repo DocumentRepository, subjectID uuid.UUID) *ent.Document {
	t.Helper()
	doc, err := repo.Create(context.Background(), CreateDocumentParams{
		SubjectID:  subjectID,
		DocType:    string(constants.Payroll),
		StorageKey: "subjects/test/doc.pdf",
		FileName:   "doc.pdf",
		MimeType:   "application/pdf",
	})
	require.NoError(t, err)
	return doc
}

func TestDocumentClaimIsExclusive(t *testing.T) {
	client := newClient(t)
	repo := NewDocumentRepository(client, testLogger())
	doc := createDocument(t, repo, uuid.New())

	require.NoError(t, repo.ClaimForProcessing(context.Background(), doc.ID))

	err := repo.ClaimForProcessing(context.Background(), doc.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))

	// A finished pass releases the claim for reprocessing.
	require.NoError(t, repo.MarkProcessed(context.Background(), doc.ID, map[string]string{"a": "1"}, "done"))
	require.NoError(t, repo.ClaimForProcessing(context.Background(), doc.ID))
}

func TestDocumentDeleteBlockedWhileProcessing(t *testing.T) {
	client := newClient(t)
	repo := NewDocumentRepository(client, testLogger())
	doc := createDocument(t, repo, uuid.New())

	require.NoError(t, repo.ClaimForProcessing(context.Background(), doc.ID))
	err := repo.Delete(context.Background(), doc.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))

	require.NoError(t, repo.MarkFailed(context.Background(), doc.ID, "storage unreachable"))
	require.NoError(t, repo.Delete(context.Background(), doc.ID))

	_, err = repo.GetByID(context.Background(), doc.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRuleCountersAreCumulative(t *testing.T) {
	client := newClient(t)
	repo := NewRuleRepository(client, testLogger())

	rule, err := repo.Create(context.Background(), CreateRuleParams{
		Name:      "payroll monthly income",
		DocType:   string(constants.Payroll),
		FieldName: "monthly_income",
		Pattern:   `(?i)sueldo\s+mensual[:\s]+\$?([\d,]+(?:\.\d{2})?)`,
		FieldType: string(constants.FieldCurrency),
		Priority:  10,
	})
	require.NoError(t, err)

	require.NoError(t, repo.RecordSuccess(context.Background(), rule.ID))
	require.NoError(t, repo.RecordSuccess(context.Background(), rule.ID))
	require.NoError(t, repo.RecordFailure(context.Background(), rule.ID))

	rows, err := repo.List(context.Background(), string(constants.Payroll))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].SuccessCount)
	assert.Equal(t, 1, rows[0].FailureCount)
}

func TestActiveRulesOrderingAndFiltering(t *testing.T) {
	client := newClient(t)
	repo := NewRuleRepository(client, testLogger())
	ctx := context.Background()

	low, err := repo.Create(ctx, CreateRuleParams{
		Name: "low", DocType: string(constants.Payroll), FieldName: "monthly_income",
		Pattern: `low`, FieldType: string(constants.FieldCurrency), Priority: 1,
	})
	require.NoError(t, err)
	high, err := repo.Create(ctx, CreateRuleParams{
		Name: "high", DocType: string(constants.Payroll), FieldName: "monthly_income",
		Pattern: `high`, FieldType: string(constants.FieldCurrency), Priority: 10,
	})
	require.NoError(t, err)
	disabled, err := repo.Create(ctx, CreateRuleParams{
		Name: "disabled", DocType: string(constants.Payroll), FieldName: "employer_name",
		Pattern: `x`, FieldType: string(constants.FieldText), Priority: 99,
	})
	require.NoError(t, err)
	require.NoError(t, repo.SetActive(ctx, disabled.ID, false))

	rules, err := repo.ActiveRules(ctx, constants.Payroll)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, high.ID, rules[0].ID, "higher priority must run first")
	assert.Equal(t, low.ID, rules[1].ID)
}

func TestReplaceForDocumentDropsStaleFields(t *testing.T) {
	client := newClient(t)
	docRepo := NewDocumentRepository(client, testLogger())
	fieldRepo := NewFieldRepository(client, testLogger())
	ctx := context.Background()
	doc := createDocument(t, docRepo, uuid.New())

	first := []extractor.FieldValue{
		{Name: "monthly_income", Value: "40000", Type: constants.FieldCurrency, Confidence: 80, Method: "rule:a"},
		{Name: "employer_name", Value: "Acme", Type: constants.FieldText, Confidence: 70, Method: "rule:b"},
	}
	require.NoError(t, fieldRepo.ReplaceForDocument(ctx, doc.ID, first))

	second := []extractor.FieldValue{
		{Name: "monthly_income", Value: "45000", Type: constants.FieldCurrency, Confidence: 90, Method: "rule:a"},
	}
	require.NoError(t, fieldRepo.ReplaceForDocument(ctx, doc.ID, second))

	fields, err := fieldRepo.ListByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	require.NotNil(t, fields[0].ExtractedValue)
	assert.Equal(t, "45000", *fields[0].ExtractedValue)
}

func TestReviewTransitionsGuarded(t *testing.T) {
	client := newClient(t)
	docRepo := NewDocumentRepository(client, testLogger())
	reviewRepo := NewReviewRepository(client, testLogger())
	ctx := context.Background()
	doc := createDocument(t, docRepo, uuid.New())

	conf := 55.0
	rv, err := reviewRepo.Create(ctx, CreateReviewParams{
		DocumentID:      doc.ID,
		ConfidenceScore: &conf,
		ExtractionNotes: "low confidence",
		AutoExtracted:   map[string]string{"monthly_income": "40000"},
	})
	require.NoError(t, err)

	// A second open review for the same document is rejected.
	_, err = reviewRepo.Create(ctx, CreateReviewParams{DocumentID: doc.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))

	// Completing from pending fails; the row must stay pending.
	err = reviewRepo.Complete(ctx, rv.ID, map[string]string{"monthly_income": "41000"}, nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReviewState))

	reviewer := uuid.New()
	require.NoError(t, reviewRepo.Assign(ctx, rv.ID, reviewer))

	// Assigning an already-assigned review fails.
	err = reviewRepo.Assign(ctx, rv.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReviewState))

	require.NoError(t, reviewRepo.Complete(ctx, rv.ID, map[string]string{"monthly_income": "41000"}, map[string]bool{"monthly_income": true}, "fixed"))

	got, err := reviewRepo.GetByID(ctx, rv.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ReviewStatusCompleted), got.Status)
	require.NotNil(t, got.ReviewerID)
	assert.Equal(t, reviewer, *got.ReviewerID)

	// Terminal reviews cannot be skipped afterwards.
	err = reviewRepo.Skip(ctx, rv.ID, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReviewState))
}

func TestScoreRotateKeepsOneActive(t *testing.T) {
	client := newClient(t)
	repo := NewScoreRepository(client, testLogger())
	ctx := context.Background()
	subjectID := uuid.New()

	rec := ScoreRecord{
		SubjectID:              subjectID,
		Score:                  760,
		RiskTier:               string(constants.RiskLow),
		EstimatedMonthlyIncome: decimal.NewFromInt(20000),
		MaxLoan:                decimal.NewFromInt(288000),
		SuggestedDownPayment:   decimal.NewFromInt(43200),
		Recommendations:        []string{"Your profile qualifies for preferred financing terms."},
		Breakdown:              []byte(`{"income":75,"employment":90,"banking":80,"debt":50}`),
		ComputedAt:             time.Now(),
		ExpiresAt:              time.Now().Add(90 * 24 * time.Hour),
	}
	first, err := repo.Rotate(ctx, rec)
	require.NoError(t, err)

	rec.Score = 710
	second, err := repo.Rotate(ctx, rec)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	active, err := repo.ActiveForSubject(ctx, subjectID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.Equal(t, 710, active.Score)

	history, err := repo.History(ctx, subjectID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, repo.Expire(ctx, subjectID))
	_, err = repo.ActiveForSubject(ctx, subjectID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestEffectiveForSubjectPrefersReviewedValues(t *testing.T) {
	client := newClient(t)
	docRepo := NewDocumentRepository(client, testLogger())
	fieldRepo := NewFieldRepository(client, testLogger())
	ctx := context.Background()
	subjectID := uuid.New()
	doc := createDocument(t, docRepo, subjectID)

	require.NoError(t, fieldRepo.ReplaceForDocument(ctx, doc.ID, []extractor.FieldValue{
		{Name: "monthly_income", Value: "40000", Type: constants.FieldCurrency, Confidence: 60, Method: "rule:a"},
		{Name: "employer_name", Value: "Acme", Type: constants.FieldText, Confidence: 80, Method: "rule:b"},
	}))
	income, err := fieldRepo.GetByName(ctx, doc.ID, "monthly_income")
	require.NoError(t, err)
	require.NoError(t, fieldRepo.SetReviewedValue(ctx, income.ID, "42000", true))

	// Only processed documents count toward the subject's effective fields.
	effective, err := fieldRepo.EffectiveForSubject(ctx, subjectID)
	require.NoError(t, err)
	assert.Empty(t, effective)

	require.NoError(t, docRepo.MarkProcessed(ctx, doc.ID, map[string]string{"monthly_income": "42000"}, ""))

	effective, err = fieldRepo.EffectiveForSubject(ctx, subjectID)
	require.NoError(t, err)
	assert.Equal(t, "42000", effective["monthly_income"], "reviewed value wins over extracted")
	assert.Equal(t, "Acme", effective["employer_name"])
}
