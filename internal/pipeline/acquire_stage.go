package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/storage"
	"github.com/Ajauregui69/livo-backend/internal/textract"
)

// TextAcquirer is the slice of textract.Acquirer the pipeline needs.
type TextAcquirer interface {
	Acquire(ctx context.Context, data []byte, mimeType, fileName string) (textract.Result, error)
}

type AcquireStage struct {
	Store    storage.ByteStore
	Acquirer TextAcquirer
	Logger   *slog.Logger
}

func NewAcquireStage(store storage.ByteStore, acquirer TextAcquirer, logger *slog.Logger) *AcquireStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AcquireStage{Store: store, Acquirer: acquirer, Logger: logger}
}

// Run fetches the document's bytes and produces its text. A fetch error is
// fatal for the pass; acquisition itself degrades to an empty result instead
// of erroring.
func (p *AcquireStage) Run(ctx context.Context, doc *ent.Document) (textract.Result, error) {
	data, err := p.Store.Fetch(ctx, doc.StorageKey)
	if err != nil {
		p.Logger.Error("acquire.fetch.failed", "document_id", doc.ID, "storage_key", doc.StorageKey, "err", err)
		return textract.Result{}, fmt.Errorf("fetch bytes: %w", err)
	}

	res, err := p.Acquirer.Acquire(ctx, data, doc.MimeType, doc.FileName)
	if err != nil {
		return res, fmt.Errorf("acquire text: %w", err)
	}
	p.Logger.Info("acquire.ok",
		"document_id", doc.ID,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
		"confidence", res.Confidence,
		"empty", res.Empty,
	)
	return res, nil
}
