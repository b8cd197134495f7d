package textract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner answers pdftoppm by writing page images next to the prefix and
// tesseract with canned text per page.
type fakeRunner struct {
	pages       int
	pageText    string
	tsv         string
	pdftoppmErr error
	tessErr     error
	calls       []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, name)
	switch {
	case strings.Contains(name, "pdftoppm"):
		if r.pdftoppmErr != nil {
			return nil, []byte("pdftoppm: cannot render"), r.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= r.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case strings.Contains(name, "tesseract"):
		if r.tessErr != nil {
			return nil, []byte("tesseract: error"), r.tessErr
		}
		if args[len(args)-1] == "tsv" {
			return []byte(r.tsv), nil, nil
		}
		return []byte(r.pageText), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newTestAcquirer(t *testing.T, runner Runner) *Acquirer {
	t.Helper()
	a := NewAcquirer(Config{ArtifactCacheDir: t.TempDir()}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.runner = runner
	return a
}

func TestAcquireUnsupportedFormat(t *testing.T) {
	a := newTestAcquirer(t, &fakeRunner{})

	res, err := a.Acquire(context.Background(), []byte("PK..."), "application/zip", "archive.zip")
	require.NoError(t, err)
	assert.True(t, res.Unsupported)
	assert.True(t, res.Empty)
}

func TestAcquireImageRunsOCR(t *testing.T) {
	runner := &fakeRunner{pageText: "SUELDO MENSUAL: $20,000.00"}
	a := newTestAcquirer(t, runner)

	res, err := a.Acquire(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png", "payslip.png")
	require.NoError(t, err)
	assert.False(t, res.Empty)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Contains(t, res.Text, "SUELDO MENSUAL")
	assert.Equal(t, 1, res.Pages)
}

func TestAcquireScannedPDFFallsBackToOCR(t *testing.T) {
	runner := &fakeRunner{pages: 2, pageText: "page text"}
	a := newTestAcquirer(t, runner)

	// Not a real PDF: the native text pass fails, forcing rasterize+OCR.
	res, err := a.Acquire(context.Background(), []byte("scanned"), "application/pdf", "statement.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "page text\npage text", res.Text)
}

func TestAcquirePDFOCRFailureDegradesToEmpty(t *testing.T) {
	runner := &fakeRunner{pdftoppmErr: errors.New("exit status 1")}
	a := newTestAcquirer(t, runner)

	res, err := a.Acquire(context.Background(), []byte("scanned"), "application/pdf", "statement.pdf")
	require.NoError(t, err, "OCR failures degrade, they do not propagate")
	assert.True(t, res.Empty)
	assert.NotEmpty(t, res.Warnings)
}

func TestAcquireImageOCRFailureDegradesToEmpty(t *testing.T) {
	runner := &fakeRunner{tessErr: errors.New("exit status 1")}
	a := newTestAcquirer(t, runner)

	res, err := a.Acquire(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg", "id.jpg")
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.NotEmpty(t, res.Warnings)
}

func TestTSVConfidenceMean(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t12\t90\tSUELDO",
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t12\t70\tMENSUAL",
		"5\t1\t1\t1\t1\t3\t130\t10\t50\t12\t-1\t",
	}, "\n")
	runner := &fakeRunner{pageText: "SUELDO MENSUAL", tsv: tsv}
	a := newTestAcquirer(t, runner)
	a.cfg.EnableTSVConfidence = true

	res, err := a.Acquire(context.Background(), []byte{0x89}, "image/png", "payslip.png")
	require.NoError(t, err)
	assert.InDelta(t, 0.80, res.Confidence, 0.001)
}

func TestPDFOCRLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{pages: 1, pageText: "x"}
	a := NewAcquirer(Config{ArtifactCacheDir: dir}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.runner = runner

	_, err := a.Acquire(context.Background(), []byte("scanned"), "application/pdf", "doc.pdf")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		t.Errorf("leftover artifact %s", filepath.Join(dir, e.Name()))
	}
}
