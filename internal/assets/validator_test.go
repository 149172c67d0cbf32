package assets

import (
	"testing"

	"github.com/interiorpro/adminconsole/internal/domain"
)

func TestRejectsOversizeFile(t *testing.T) {
	err := Validate(Image, "image/png", 60*1024*1024, nil)
	if !domain.IsKind(err, domain.KindFileTooLarge) {
		t.Fatalf("60 MiB file: got %v, want FileTooLarge", err)
	}
}

func TestAcceptsFileAtCeiling(t *testing.T) {
	if err := Validate(Image, "image/png", MaxUploadBytes, nil); err != nil {
		t.Fatalf("file at the 50 MiB ceiling should pass: %v", err)
	}
}

func TestRejectsPdfDeclaredAsImage(t *testing.T) {
	err := Validate(Image, "application/pdf", 1024, nil)
	if !domain.IsKind(err, domain.KindUnsupportedFormat) {
		t.Fatalf("pdf as image: got %v, want UnsupportedFormat", err)
	}
}

func TestAcceptsEachImageType(t *testing.T) {
	for _, mt := range []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"} {
		if err := Validate(Image, mt, 10, nil); err != nil {
			t.Errorf("%s should be accepted: %v", mt, err)
		}
	}
}

func TestAcceptsEachVideoType(t *testing.T) {
	for _, mt := range []string{"video/mp4", "video/webm", "video/ogg"} {
		if err := Validate(Video, mt, 10, nil); err != nil {
			t.Errorf("%s should be accepted: %v", mt, err)
		}
	}
}

func TestRejectsImageTypeForVideoUpload(t *testing.T) {
	err := Validate(Video, "image/png", 10, nil)
	if !domain.IsKind(err, domain.KindUnsupportedFormat) {
		t.Fatalf("image type as video: got %v, want UnsupportedFormat", err)
	}
}

func TestSniffsContentWhenDeclaredTypeMissing(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	if err := Validate(Image, "", int64(len(pngHeader)), pngHeader); err != nil {
		t.Fatalf("png content with no declared type should pass: %v", err)
	}

	text := []byte("definitely not an image")
	err := Validate(Image, "", int64(len(text)), text)
	if !domain.IsKind(err, domain.KindUnsupportedFormat) {
		t.Fatalf("text content with no declared type: got %v, want UnsupportedFormat", err)
	}
}

func TestDeclaredTypeParametersIgnored(t *testing.T) {
	if err := Validate(Image, "image/PNG; charset=binary", 10, nil); err != nil {
		t.Fatalf("type with parameters should normalize: %v", err)
	}
}
