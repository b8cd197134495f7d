package textract

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner lets tests stub the external OCR binaries.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// tesseract can dump page-sized warnings on stderr; log records stay bounded.
const maxLoggedStderr = 4 << 10

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var out, errb bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errb

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		slog.Error("ocr command failed",
			"bin", name,
			"elapsed_ms", elapsed.Milliseconds(),
			"err", err,
			"stderr", clip(errb.String(), maxLoggedStderr))
	} else {
		slog.Debug("ocr command done",
			"bin", name,
			"elapsed_ms", elapsed.Milliseconds(),
			"stdout_bytes", out.Len())
	}
	return out.Bytes(), errb.Bytes(), err
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + " [clipped]"
}
