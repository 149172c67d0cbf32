package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/interiorpro/adminconsole/internal/domain"
)

func TestUploadSendsMultipartFileField(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("file field missing: %v", err)
			http.Error(w, `{"success":false,"error":"no file"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "lamp.png" {
			t.Errorf("filename: got %q", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("part content type: got %q", ct)
		}
		body, _ := io.ReadAll(file)
		if string(body) != "png bytes" {
			t.Errorf("file body: got %q", body)
		}
		w.Write([]byte(`{"success":true,"filePath":"/uploads/abc123.png"}`))
	}))
	defer srv.Close()

	url, err := client.Upload(context.Background(), "/tmp/lamp.png", []byte("png bytes"), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "/uploads/abc123.png" {
		t.Errorf("url: got %q", url)
	}
}

func TestUploadFallsBackToURLField(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"url":"/uploads/alt.png"}`))
	}))
	defer srv.Close()

	url, err := client.Upload(context.Background(), "a.png", []byte("x"), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "/uploads/alt.png" {
		t.Errorf("url: got %q", url)
	}
}

func TestUploadFailureEnvelope(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"disk full"}`))
	}))
	defer srv.Close()

	_, err := client.Upload(context.Background(), "a.png", []byte("x"), "image/png")
	if !domain.IsKind(err, domain.KindServer) {
		t.Fatalf("got %v, want Server", err)
	}
	if err.Error() != "disk full" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestUploadWithoutURLIsAnError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	_, err := client.Upload(context.Background(), "a.png", []byte("x"), "image/png")
	if err == nil || err.Error() != "No file URL returned from server" {
		t.Fatalf("got %v", err)
	}
}

func TestUploadHonorsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"success":true,"filePath":"/uploads/late.png"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, 50*time.Millisecond)
	_, err := client.Upload(context.Background(), "a.png", []byte("x"), "image/png")
	if !domain.IsKind(err, domain.KindTimeout) {
		t.Fatalf("got %v, want Timeout", err)
	}
}
