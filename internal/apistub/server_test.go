package apistub

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/interiorpro/adminconsole/internal/apiclient"
	"github.com/interiorpro/adminconsole/internal/domain"
)

// The stub is exercised through the real client so the pair stays in
// agreement about paths, envelopes, and error shapes.
func newStubAndClient(t *testing.T) (*Server, *apiclient.Client) {
	t.Helper()
	stub, err := NewServer(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)
	return stub, apiclient.New(srv.URL, 30*time.Second)
}

func TestCreateThenListRoundTrip(t *testing.T) {
	_, client := newStubAndClient(t)
	ctx := context.Background()

	created, err := client.Create(ctx, domain.Fields{
		Name: "Desk Lamp", Price: 49.90, Brand: "HomeEssentials", Category: "Home",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Errorf("server-assigned fields missing: %+v", created)
	}

	products, err := client.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || products[0].ID != created.ID {
		t.Fatalf("list after create: %+v", products)
	}
}

func TestUpdateChangesOnlyTargetProduct(t *testing.T) {
	stub, client := newStubAndClient(t)
	ctx := context.Background()

	stub.Seed(domain.Product{ID: "1", Name: "Lamp", Price: 10, Brand: "HomeEssentials", Category: "Home"})
	stub.Seed(domain.Product{ID: "2", Name: "Chair", Price: 80, Brand: "HomeEssentials", Category: "Home"})

	updated, err := client.Update(ctx, "1", domain.Fields{
		Name: "Lamp v2", Price: 12, Brand: "HomeEssentials", Category: "Home",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Lamp v2" || updated.Price != 12 {
		t.Errorf("updated product: %+v", updated)
	}

	products, err := client.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range products {
		if p.ID == "2" && p.Name != "Chair" {
			t.Errorf("untargeted product changed: %+v", p)
		}
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	_, client := newStubAndClient(t)
	_, err := client.Update(context.Background(), "99", domain.Fields{
		Name: "Ghost", Brand: "Other", Category: "Other",
	})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
	if err.Error() != "Product not found" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestDeleteUnknownProduct(t *testing.T) {
	_, client := newStubAndClient(t)
	err := client.Delete(context.Background(), "99")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestCreateRejectsMissingName(t *testing.T) {
	_, client := newStubAndClient(t)
	_, err := client.Create(context.Background(), domain.Fields{
		Brand: "Other", Category: "Other",
	})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("got %v, want Validation", err)
	}
	if err.Error() != "Name is required" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestUploadStoresFileAndServesIt(t *testing.T) {
	dir := t.TempDir()
	stub, err := NewServer(dir)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(stub.Handler())
	defer srv.Close()
	client := apiclient.New(srv.URL, 30*time.Second)

	url, err := client.Upload(context.Background(), "lamp.png", []byte("png bytes"), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("url: got %q", url)
	}

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if string(stored) != "png bytes" {
		t.Errorf("stored content: got %q", stored)
	}

	// The uploaded asset must answer the reachability probe.
	if err := client.Probe(context.Background(), url); err != nil {
		t.Errorf("probe: %v", err)
	}
}
