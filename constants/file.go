package constants

import "strings"

// Source formats for the format column and text acquisition dispatch.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed source formats.
var FileTypes = []string{PDF, IMAGE}

var imageMimes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/tiff": {},
	"image/webp": {},
	"image/bmp":  {},
}

var imageExts = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "tif": {}, "tiff": {}, "webp": {}, "bmp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapMimeToFormat resolves a mime type (with the extension as fallback) to a
// source format. Empty string means unsupported.
func MapMimeToFormat(mimeType, ext string) string {
	mt := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch {
	case mt == "application/pdf":
		return PDF
	case strings.HasPrefix(mt, "image/"):
		if _, ok := imageMimes[mt]; ok {
			return IMAGE
		}
		return ""
	}
	// fall back to the extension for generic mime types
	e := NormalizeExt(ext)
	if e == "pdf" {
		return PDF
	}
	if _, ok := imageExts[e]; ok {
		return IMAGE
	}
	return ""
}
