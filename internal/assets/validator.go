// Package assets validates upload candidates before any network call.
// Validation is purely local and synchronous; a rejected file issues
// zero requests.
package assets

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/interiorpro/adminconsole/internal/domain"
)

// Kind selects the allow-list an upload is checked against.
type Kind string

const (
	Image Kind = "image"
	Video Kind = "video"
)

// MaxUploadBytes is the fixed upload ceiling (50 MiB).
const MaxUploadBytes = 50 * 1024 * 1024

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var videoTypes = map[string]bool{
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
}

// Validate checks size and MIME type of an upload candidate. The
// declared type wins when present; otherwise the content is sniffed.
func Validate(kind Kind, declaredMIME string, size int64, data []byte) error {
	if size > MaxUploadBytes {
		return domain.E(domain.KindFileTooLarge, "File size too large. Maximum size is 50MB.")
	}
	mt := normalizeMIME(declaredMIME)
	if mt == "" && len(data) > 0 {
		mt = normalizeMIME(mimetype.Detect(data).String())
	}
	switch kind {
	case Image:
		if !imageTypes[mt] {
			return domain.E(domain.KindUnsupportedFormat,
				"Invalid image format. Please use JPEG, PNG, GIF, or WebP.")
		}
	case Video:
		if !videoTypes[mt] {
			return domain.E(domain.KindUnsupportedFormat,
				"Invalid video format. Please use MP4, WebM, or OGG.")
		}
	default:
		return domain.E(domain.KindValidation, fmt.Sprintf("unknown asset kind %q", kind))
	}
	return nil
}

// normalizeMIME strips parameters like "; charset=binary" and lowers
// the case so allow-list lookups are exact.
func normalizeMIME(mt string) string {
	mt = strings.TrimSpace(strings.ToLower(mt))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
