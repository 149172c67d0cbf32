package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/interiorpro/adminconsole/internal/domain"
)

// Upload posts one file as a multipart request to /api/upload and
// returns the server-assigned URL reference. The request is bound to
// the fixed upload timeout; callers validate size and type locally
// before invoking it.
func (c *Client) Upload(ctx context.Context, filename string, data []byte, declaredMIME string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	body, contentType, err := multipartFile(filename, data, declaredMIME)
	if err != nil {
		return "", domain.Wrap(domain.KindValidation, "Could not prepare upload", err)
	}

	var (
		code int
		raw  []byte
	)
	err = gout.POST(c.origin + "/api/upload").
		WithContext(ctx).
		SetHeader(gout.H{"Content-Type": contentType}).
		SetBody(body).
		Code(&code).
		BindBody(&raw).
		Do()
	if err != nil {
		return "", classifyTransport(err)
	}
	if err := classifyStatus(code, raw); err != nil {
		return "", err
	}

	var resp struct {
		Success  bool   `json:"success"`
		FilePath string `json:"filePath"`
		URL      string `json:"url"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", domain.Wrap(domain.KindServer, "Malformed upload response",
			errors.Wrap(err, "decode upload body"))
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Upload failed"
		}
		return "", domain.E(domain.KindServer, msg)
	}
	fileURL := resp.FilePath
	if fileURL == "" {
		fileURL = resp.URL
	}
	if fileURL == "" {
		return "", domain.E(domain.KindServer, "No file URL returned from server")
	}
	zap.L().Info("asset uploaded",
		zap.String("file", filepath.Base(filename)), zap.String("url", fileURL))
	return fileURL, nil
}

// multipartFile builds a single-field multipart body carrying the file
// under the "file" field with its declared content type.
func multipartFile(filename string, data []byte, declaredMIME string) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="file"; filename="`+escapeQuotes(filepath.Base(filename))+`"`)
	if declaredMIME == "" {
		declaredMIME = "application/octet-stream"
	}
	header.Set("Content-Type", declaredMIME)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
