package textract

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ajauregui69/livo-backend/constants"
)

// Heuristic floor below which a PDF is assumed to have no real text layer
// and gets rasterized for OCR instead.
const minNativeTextLen = 50

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language string // default "eng"
	DPI      int    // rasterization DPI for scanned PDFs, default 300
	MaxPages int    // 0 = no limit

	TessdataDir         string
	EnableTSVConfidence bool

	ArtifactCacheDir string
}

// Result is the outcome of a text acquisition pass. Empty and Unsupported
// are valid results, not errors: the caller decides whether they are
// terminal for the document or a candidate for manual review.
type Result struct {
	Text        string
	Pages       int
	Source      string // constants.PDF | constants.IMAGE
	Method      string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language    string
	Duration    time.Duration
	Warnings    []string
	Confidence  float32 // OCR engine confidence 0..1, 0 when unknown
	Empty       bool
	Unsupported bool
}

// Acquirer turns document bytes into text: native PDF text layer first, OCR
// fallback for scans and images.
type Acquirer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewAcquirer(cfg Config, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	return &Acquirer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Acquire picks a strategy based on mime type (extension as fallback).
func (a *Acquirer) Acquire(ctx context.Context, data []byte, mimeType, fileName string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	format := constants.MapMimeToFormat(mimeType, ext)
	a.logger.Debug("starting text acquisition",
		"file", fileName, "mime", mimeType, "format", format, "bytes", len(data))

	switch format {
	case constants.PDF:
		res, err := a.acquirePDF(ctx, data)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := a.acquireImage(ctx, data, ext)
		res.Duration = time.Since(start)
		return res, err
	default:
		a.logger.Warn("unsupported document format", "mime", mimeType, "ext", ext)
		return Result{Unsupported: true, Empty: true, Duration: time.Since(start)}, nil
	}
}

// acquirePDF reads the native text layer page by page; if the result is too
// short to be a real text layer, it falls back to rasterize+OCR. OCR engine
// errors degrade to an empty result rather than propagating.
func (a *Acquirer) acquirePDF(ctx context.Context, data []byte) (Result, error) {
	text, pages, err := nativePDFText(data)
	if err != nil {
		a.logger.Warn("native pdf text extraction failed", "error", err)
	}
	if err == nil && len(strings.TrimSpace(text)) >= minNativeTextLen {
		return Result{
			Text:   text,
			Pages:  pages,
			Source: constants.PDF,
			Method: "pdf-text",
		}, nil
	}

	ocrText, ocrPages, conf, warns, ocrErr := a.pdfToOCR(ctx, data)
	if ocrErr != nil {
		a.logger.Warn("pdf ocr fallback failed", "error", ocrErr)
		warns = append(warns, ocrErr.Error())
		ocrText = ""
	}
	res := Result{
		Text:       ocrText,
		Pages:      ocrPages,
		Source:     constants.PDF,
		Method:     "pdf-ocr",
		Language:   a.cfg.Language,
		Warnings:   warns,
		Confidence: conf,
	}
	if strings.TrimSpace(res.Text) == "" {
		res.Text = ""
		res.Empty = true
	}
	return res, nil
}

func (a *Acquirer) acquireImage(ctx context.Context, data []byte, ext string) (Result, error) {
	text, conf, warns, err := a.imageOCR(ctx, data, ext)
	if err != nil {
		a.logger.Warn("image ocr failed", "error", err)
		warns = append(warns, err.Error())
		text = ""
	}
	res := Result{
		Text:       text,
		Pages:      1,
		Source:     constants.IMAGE,
		Method:     "image-ocr",
		Language:   a.cfg.Language,
		Warnings:   warns,
		Confidence: conf,
	}
	if strings.TrimSpace(res.Text) == "" {
		res.Text = ""
		res.Empty = true
	}
	return res, nil
}
