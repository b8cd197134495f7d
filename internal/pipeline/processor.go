package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/constants"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/extractor"
	"github.com/Ajauregui69/livo-backend/internal/repository"
	"github.com/Ajauregui69/livo-backend/internal/review"
	"github.com/Ajauregui69/livo-backend/internal/rules"
)

// Processor runs a document's full extraction pass: claim, acquire text,
// extract fields, then either finalize or queue for human review.
type Processor struct {
	Documents repository.DocumentRepository
	Fields    repository.FieldRepository
	Reviews   *review.Service
	Acquire   *AcquireStage
	Extract   *ExtractStage
	Logger    *slog.Logger
}

func NewProcessor(
	documents repository.DocumentRepository,
	fields repository.FieldRepository,
	reviews *review.Service,
	acquire *AcquireStage,
	extract *ExtractStage,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Documents: documents,
		Fields:    fields,
		Reviews:   reviews,
		Acquire:   acquire,
		Extract:   extract,
		Logger:    logger,
	}
}

// Process runs one extraction pass. A document already in processing is
// rejected so rule counters are never double-incremented. Acquisition
// failures are recorded as document state rather than returned; errors
// surface only for infrastructure faults the caller may want to retry.
func (p *Processor) Process(ctx context.Context, documentID uuid.UUID) error {
	doc, err := p.Documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if err := p.Documents.ClaimForProcessing(ctx, documentID); err != nil {
		return err
	}

	res, err := p.Acquire.Run(ctx, doc)
	if err != nil {
		note := fmt.Sprintf("text acquisition failed: %v", err)
		if markErr := p.Documents.MarkFailed(ctx, documentID, note); markErr != nil {
			return markErr
		}
		return nil
	}
	if res.Unsupported {
		note := fmt.Sprintf("unsupported mime type %q", doc.MimeType)
		return p.Documents.MarkFailed(ctx, documentID, note)
	}
	if res.Empty {
		// A blank page is reviewable, not broken.
		notes := "no text could be extracted"
		if len(res.Warnings) > 0 {
			notes += ": " + strings.Join(res.Warnings, "; ")
		}
		_, err := p.Reviews.Open(ctx, documentID, nil, notes, nil)
		return err
	}

	out, err := p.Extract.Run(ctx, constants.DocType(doc.DocType), res.Text)
	if errors.Is(err, rules.ErrNoRules) {
		// No rules for this type: the document waits for a human with no
		// machine-extracted snapshot. It stays in processing, never failed.
		p.Logger.Info("no active rules; queued for review", "document_id", documentID, "doc_type", doc.DocType)
		_, err := p.Reviews.Open(ctx, documentID, nil, "no extraction rules exist for this document type", nil)
		return err
	}
	if err != nil {
		return err
	}

	if len(out.Fields) > 0 {
		if err := p.Fields.ReplaceForDocument(ctx, documentID, out.Fields); err != nil {
			return err
		}
	}

	if out.NeedsReview {
		conf := out.Confidence
		_, err := p.Reviews.Open(ctx, documentID, &conf, strings.Join(out.Notes, "; "), out.FieldMap())
		return err
	}

	notes := fmt.Sprintf("extracted %d fields via %s (confidence %.1f)", len(out.Fields), out.Source, out.Confidence)
	return p.Documents.MarkProcessed(ctx, documentID, out.FieldMap(), notes)
}

// Reprocess re-runs extraction for a document that previously failed or was
// processed. A document with an open review must be resolved by a human
// first.
func (p *Processor) Reprocess(ctx context.Context, documentID uuid.UUID) error {
	if _, err := p.Reviews.OpenForDocument(ctx, documentID); err == nil {
		return common.WrapError(common.ErrConflict, "document has an open review")
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}
	return p.Process(ctx, documentID)
}

var _ extractor.FieldExtractor = (*rules.Extractor)(nil)
