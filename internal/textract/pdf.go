package textract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// nativePDFText reads the PDF text layer page by page, concatenated with
// newline separators. Pages that fail to decode are skipped; the remaining
// pages still count.
func nativePDFText(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	var b strings.Builder
	total := reader.NumPage()
	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}
	return b.String(), total, nil
}
