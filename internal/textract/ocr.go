package textract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// pdfToOCR rasterizes each page with pdftoppm and runs tesseract on the
// rendered images sequentially. Temp files are ephemeral and removed before
// return.
func (a *Acquirer) pdfToOCR(ctx context.Context, data []byte) (text string, pages int, conf float32, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp(a.cfg.ArtifactCacheDir, "livo-pp-*")
	if err != nil {
		tmpDir, err = os.MkdirTemp("", "livo-pp-*")
		if err != nil {
			return "", 0, 0, nil, err
		}
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			a.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rmErr)
		}
	}()

	in := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return "", 0, 0, nil, err
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm, "-r", strconv.Itoa(a.cfg.DPI), "-png", in, prefix)
	if err != nil {
		return "", 0, 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if a.cfg.MaxPages > 0 && len(matches) > a.cfg.MaxPages {
		matches = matches[:a.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	var confSum float64
	var confN int
	for _, img := range matches {
		txt, w, ocrErr := a.tesseractOCR(ctx, img)
		if ocrErr != nil {
			warns = append(warns, ocrErr.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
		warns = append(warns, w...)

		if a.cfg.EnableTSVConfidence {
			if c, _, cErr := a.tesseractTSVConfidence(ctx, img); cErr == nil && c > 0 {
				confSum += float64(c)
				confN++
			}
		}
	}
	if confN > 0 {
		conf = float32(confSum / float64(confN))
	}
	return b.String(), len(matches), conf, warns, nil
}

// imageOCR writes the image bytes to a temp file and OCRs it.
func (a *Acquirer) imageOCR(ctx context.Context, data []byte, ext string) (string, float32, []string, error) {
	if ext == "" {
		ext = "png"
	}
	tmp, err := os.CreateTemp(a.cfg.ArtifactCacheDir, "livo-img-*."+ext)
	if err != nil {
		tmp, err = os.CreateTemp("", "livo-img-*."+ext)
		if err != nil {
			return "", 0, nil, err
		}
	}
	path := tmp.Name()
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil {
			a.logger.Warn("failed to remove temp image", "path", path, "error", rmErr)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", 0, nil, err
	}
	if err := tmp.Close(); err != nil {
		return "", 0, nil, err
	}

	txt, warns, err := a.tesseractOCR(ctx, path)
	if err != nil {
		return "", 0, warns, err
	}

	var conf float32
	if a.cfg.EnableTSVConfidence {
		if c, w, cErr := a.tesseractTSVConfidence(ctx, path); cErr == nil {
			conf = c
			warns = append(warns, w...)
		} else {
			warns = append(warns, cErr.Error())
		}
	}
	return txt, conf, warns, nil
}

func (a *Acquirer) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", a.cfg.Language}
	if a.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", a.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (a *Acquirer) tesseractTSVConfidence(ctx context.Context, path string) (float32, []string, error) {
	args := []string{path, "stdout", "-l", a.cfg.Language}
	if a.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", a.cfg.TessdataDir)
	}
	// TSV output
	args = append(args, "tsv")

	out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	lines := strings.Split(string(out), "\n")
	// TSV columns: level page block par line word left top width height conf text
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		} // skip header
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	mean := sum / n // 0..100
	return float32(mean / 100.0), nil, nil
}
