package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/repository"
	"github.com/Ajauregui69/livo-backend/internal/scoring"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// subject underwriting reports.
type Service struct {
	documents repository.DocumentRepository
	fields    repository.FieldRepository
	scores    *scoring.Service
	logger    *slog.Logger
}

func NewService(documents repository.DocumentRepository, fields repository.FieldRepository, scores *scoring.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{documents: documents, fields: fields, scores: scores, logger: logger}
}

// SubjectReportXLSX returns an XLSX workbook summarizing a subject's
// documents, extracted fields and current score.
func (s *Service) SubjectReportXLSX(ctx context.Context, subjectID uuid.UUID) ([]byte, error) {
	start := time.Now()

	docs, err := s.documents.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, common.WrapError(common.ErrNotFound, "subject has no documents")
	}

	f := excelize.NewFile()
	const docSheet = "Documents"
	const fieldSheet = "Fields"
	const scoreSheet = "Score"

	// excelize creates "Sheet1"; rename it instead of leaving it around.
	if err := f.SetSheetName("Sheet1", docSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(fieldSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(scoreSheet); err != nil {
		return nil, err
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	writeHeaders := func(sheet string, headers []string) {
		for i, h := range headers {
			write(sheet, i+1, 1, h)
		}
	}

	writeHeaders(docSheet, []string{"File Name", "Type", "Status", "Uploaded", "Processed", "Notes"})
	row := 2
	for _, d := range docs {
		write(docSheet, 1, row, d.FileName)
		write(docSheet, 2, row, d.DocType)
		write(docSheet, 3, row, d.Status)
		write(docSheet, 4, row, d.CreatedAt.Format("2006-01-02"))
		if d.ProcessedAt != nil {
			write(docSheet, 5, row, d.ProcessedAt.Format("2006-01-02"))
		}
		if d.ProcessingNotes != nil {
			write(docSheet, 6, row, *d.ProcessingNotes)
		}
		row++
	}

	writeHeaders(fieldSheet, []string{"Document", "Field", "Type", "Extracted Value", "Reviewed Value", "Confidence", "Method", "Corrected"})
	row = 2
	for _, d := range docs {
		fields, err := s.fields.ListByDocument(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("query fields for %s: %w", d.ID, err)
		}
		for _, fv := range fields {
			write(fieldSheet, 1, row, d.FileName)
			write(fieldSheet, 2, row, fv.FieldName)
			write(fieldSheet, 3, row, fv.FieldType)
			if fv.ExtractedValue != nil {
				write(fieldSheet, 4, row, *fv.ExtractedValue)
			}
			if fv.ReviewedValue != nil {
				write(fieldSheet, 5, row, *fv.ReviewedValue)
			}
			if fv.Confidence != nil {
				write(fieldSheet, 6, row, *fv.Confidence)
			}
			write(fieldSheet, 7, row, fv.ExtractionMethod)
			write(fieldSheet, 8, row, fv.Corrected)
			row++
		}
	}

	writeHeaders(scoreSheet, []string{"Score", "Risk Tier", "Monthly Income", "Max Loan", "Down Payment", "Computed", "Expires", "Recommendations"})
	score, err := s.scores.Active(ctx, subjectID)
	switch {
	case err == nil:
		write(scoreSheet, 1, 2, score.Score)
		write(scoreSheet, 2, 2, score.RiskTier)
		write(scoreSheet, 3, 2, score.EstimatedMonthlyIncome.String())
		write(scoreSheet, 4, 2, score.MaxLoan.String())
		write(scoreSheet, 5, 2, score.SuggestedDownPayment.String())
		write(scoreSheet, 6, 2, score.ComputedAt.Format("2006-01-02"))
		write(scoreSheet, 7, 2, score.ExpiresAt.Format("2006-01-02"))
		write(scoreSheet, 8, 2, strings.Join(score.Recommendations, "\n"))
	case errors.Is(err, common.ErrNotFound):
		write(scoreSheet, 1, 2, "no active score")
	default:
		return nil, fmt.Errorf("query score: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	s.logger.Info("subject report exported",
		"subject_id", subjectID,
		"documents", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
