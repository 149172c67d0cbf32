package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/interiorpro/adminconsole/internal/domain"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 30*time.Second), srv
}

func TestListDecodesEnvelope(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"product_id":1,"product_name":"Lamp","price_new":12.5,` +
			`"brand":"HomeEssentials","category":"Home","created_at":"2026-03-01T12:00:00Z"}]}`))
	}))
	defer srv.Close()

	products, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	if p.ID != "1" || p.Name != "Lamp" || p.Price != 12.5 || p.CreatedAt.IsZero() {
		t.Errorf("decoded product: %+v", p)
	}
}

func TestServerErrorCarriesMessage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"database exploded"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := client.List(context.Background())
	if !domain.IsKind(err, domain.KindServer) {
		t.Fatalf("got %v, want Server", err)
	}
	if err.Error() != "database exploded" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestNotFoundOnDelete(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Product not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	err := client.Delete(context.Background(), "99")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestValidationErrorOnCreate(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Name is required"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := client.Create(context.Background(), domain.Fields{})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("got %v, want Validation", err)
	}
	if err.Error() != "Name is required" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestNetworkErrorWhenServerGone(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := client.List(context.Background())
	if !domain.IsKind(err, domain.KindNetwork) {
		t.Fatalf("got %v, want Network", err)
	}
}

func TestCreateSendsEditableFields(t *testing.T) {
	var received domain.Fields
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"product_id":"7","product_name":"Lamp","price_new":12.5}`))
	}))
	defer srv.Close()

	created, err := client.Create(context.Background(), domain.Fields{
		Name: "Lamp", Price: 12.5, Brand: "HomeEssentials", Category: "Home",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "7" {
		t.Errorf("created id: got %s", created.ID)
	}
	if received.Name != "Lamp" || received.Price != 12.5 {
		t.Errorf("server saw fields %+v", received)
	}
}

func TestUpdateTargetsProductPath(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/products/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"product_id":"42","product_name":"Lamp v2"}`))
	}))
	defer srv.Close()

	updated, err := client.Update(context.Background(), "42", domain.Fields{Name: "Lamp v2"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Lamp v2" {
		t.Errorf("updated name: got %q", updated.Name)
	}
}

func TestProbeReportsUnreachableAsset(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/uploads/ok.png" {
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if err := client.Probe(context.Background(), "/uploads/ok.png"); err != nil {
		t.Errorf("reachable asset: %v", err)
	}
	if err := client.Probe(context.Background(), "/uploads/missing.png"); err == nil {
		t.Error("missing asset should fail the probe")
	}
}
