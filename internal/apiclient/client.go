// Package apiclient is the HTTP client for the remote product service.
// Every call is bound to the caller's context, failures are classified
// into the domain error taxonomy, and no retries are performed; each
// failure is surfaced once to the caller for operator-visible
// reporting.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/interiorpro/adminconsole/internal/domain"
)

type Client struct {
	origin        string
	uploadTimeout time.Duration
}

// New creates a client for the service at origin (no trailing slash).
func New(origin string, uploadTimeout time.Duration) *Client {
	if uploadTimeout <= 0 {
		uploadTimeout = 30 * time.Second
	}
	return &Client{
		origin:        strings.TrimRight(origin, "/"),
		uploadTimeout: uploadTimeout,
	}
}

func (c *Client) productsURL() string { return c.origin + "/api/products" }

func (c *Client) productURL(id domain.ID) string {
	return fmt.Sprintf("%s/api/products/%s", c.origin, id)
}

// List fetches the full catalog. Ordering is the server's; callers
// apply their own sort policy.
func (c *Client) List(ctx context.Context) ([]domain.Product, error) {
	var envelope struct {
		Data []domain.Product `json:"data"`
	}
	if err := c.doJSON(ctx, gout.GET(c.productsURL()), &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Create submits the editable fields; the server assigns id and
// creation timestamp.
func (c *Client) Create(ctx context.Context, fields domain.Fields) (*domain.Product, error) {
	var created domain.Product
	df := gout.POST(c.productsURL()).SetJSON(fields)
	if err := c.doJSON(ctx, df, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the editable fields of an existing product.
func (c *Client) Update(ctx context.Context, id domain.ID, fields domain.Fields) (*domain.Product, error) {
	var updated domain.Product
	df := gout.PUT(c.productURL(id)).SetJSON(fields)
	if err := c.doJSON(ctx, df, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a product by id.
func (c *Client) Delete(ctx context.Context, id domain.ID) error {
	return c.doJSON(ctx, gout.DELETE(c.productURL(id)), nil)
}

// Probe checks that an asset URL is reachable. Relative references
// (the usual /uploads/... paths) are resolved against the service
// origin. Used for the render-time image check; failures are advisory.
func (c *Client) Probe(ctx context.Context, url string) error {
	if strings.HasPrefix(url, "/") {
		url = c.origin + url
	}
	var code int
	if err := gout.HEAD(url).WithContext(ctx).Code(&code).Do(); err != nil {
		return classifyTransport(err)
	}
	return classifyStatus(code, nil)
}

// doJSON runs the request, classifies transport and status failures,
// and decodes a 2xx body into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, df *dataflow.DataFlow, out interface{}) error {
	var (
		code int
		raw  []byte
	)
	err := df.WithContext(ctx).Code(&code).BindBody(&raw).Do()
	if err != nil {
		return classifyTransport(err)
	}
	if err := classifyStatus(code, raw); err != nil {
		zap.L().Warn("product api request failed",
			zap.Int("status", code), zap.String("kind", domain.KindOf(err).String()))
		return err
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return domain.Wrap(domain.KindServer, "Malformed server response",
				errors.Wrap(err, "decode response body"))
		}
	}
	return nil
}

func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.Wrap(domain.KindTimeout, "Request timed out", err)
	}
	return domain.Wrap(domain.KindNetwork, "", err)
}

func classifyStatus(code int, body []byte) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return domain.E(domain.KindNotFound, serverMessage(body, "Product not found"))
	case code >= 500:
		return domain.E(domain.KindServer, serverMessage(body, "Server error"))
	case code >= 400:
		return domain.E(domain.KindValidation, serverMessage(body, "Request rejected"))
	default:
		return domain.E(domain.KindServer, fmt.Sprintf("unexpected status %d", code))
	}
}

// serverMessage pulls the operator-facing text out of an error body.
// The service uses {"message": ...}; {"error": ...} is accepted for
// upload-style responses.
func serverMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return fallback
}
