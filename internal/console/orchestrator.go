package console

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/interiorpro/adminconsole/internal/assets"
	"github.com/interiorpro/adminconsole/internal/domain"
	"github.com/interiorpro/adminconsole/internal/store"
)

// Client is the slice of the product API the orchestrator needs.
// Satisfied by apiclient.Client; tests inject fakes.
type Client interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, fields domain.Fields) (*domain.Product, error)
	Update(ctx context.Context, id domain.ID, fields domain.Fields) (*domain.Product, error)
	Delete(ctx context.Context, id domain.ID) error
	Upload(ctx context.Context, filename string, data []byte, declaredMIME string) (string, error)
	Probe(ctx context.Context, url string) error
}

// Orchestrator sequences user-initiated actions against the API client
// and keeps the product store consistent. All failures become toasts;
// none crash the view. No automatic retries anywhere: the operator
// re-issues the action.
type Orchestrator struct {
	client Client
	store  *store.Store
	notify *Notifier

	// listSeq orders list fetches so a late response for an older
	// fetch can never overwrite a newer one.
	listSeq    atomic.Uint64
	mu         sync.Mutex
	submitting bool
}

func NewOrchestrator(client Client, st *store.Store, notify *Notifier) *Orchestrator {
	return &Orchestrator{client: client, store: st, notify: notify}
}

func (o *Orchestrator) Store() *store.Store { return o.store }

// Refresh fetches the full catalog and replaces the store wholesale.
// Only the response for the latest issued fetch is applied: a newer
// fetch in flight supersedes this one even before it answers, so a
// superseded response is discarded without touching the store. The
// check and the replace happen under one lock so a discarded response
// can never sneak in between a winner's check and its replace.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	seq := o.listSeq.Add(1)
	products, err := o.client.List(ctx)
	if err != nil {
		o.notify.Publish(ToastError, "Failed to load products!")
		zap.L().Warn("product list fetch failed", zap.Error(err))
		return err
	}

	o.mu.Lock()
	if latest := o.listSeq.Load(); seq != latest {
		o.mu.Unlock()
		zap.L().Debug("discarding superseded product list",
			zap.Uint64("seq", seq), zap.Uint64("latest", latest))
		return nil
	}
	o.store.Replace(products)
	o.mu.Unlock()

	o.notify.Publish(ToastSuccess, "Loaded %d products successfully!", len(products))
	return nil
}

// Submit sends the draft as a create or update. Only one submission
// may be in flight per draft; the store is only changed through the
// authoritative re-fetch that follows a successful call, so
// server-computed fields (id, timestamp) are never guessed locally.
// The draft is reset on success and kept on failure.
func (o *Orchestrator) Submit(ctx context.Context, draft *store.Draft) error {
	fields, err := draft.Fields()
	if err != nil {
		o.notify.Publish(ToastError, "%s", err.Error())
		return err
	}

	o.mu.Lock()
	if o.submitting {
		o.mu.Unlock()
		return domain.E(domain.KindValidation, "A submission is already in progress")
	}
	o.submitting = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.submitting = false
		o.mu.Unlock()
	}()

	editing := draft.Mode == store.DraftEditing
	switch draft.Mode {
	case store.DraftEditing:
		_, err = o.client.Update(ctx, draft.ID, fields)
	case store.DraftCreating:
		_, err = o.client.Create(ctx, fields)
	default:
		return domain.E(domain.KindValidation, "No form is open")
	}
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Failed to save product"
		}
		o.notify.Publish(ToastError, "Error: %s", msg)
		zap.L().Warn("product save failed",
			zap.Bool("editing", editing), zap.Error(err))
		return err
	}

	_ = o.Refresh(ctx)
	draft.Reset()
	if editing {
		o.notify.Publish(ToastSuccess, "Product updated successfully!")
	} else {
		o.notify.Publish(ToastSuccess, "Product created successfully!")
	}
	return nil
}

// Submitting reports whether a draft submission is in flight. The view
// disables the submit control while true.
func (o *Orchestrator) Submitting() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.submitting
}

// Delete removes the product optimistically, then calls the API. On
// failure the optimistic removal is not reversed by re-insertion; a
// fresh authoritative fetch reconciles the store instead. Callers must
// have taken the operator through an explicit confirmation first.
func (o *Orchestrator) Delete(ctx context.Context, id domain.ID) error {
	o.store.Remove(id)
	if err := o.client.Delete(ctx, id); err != nil {
		o.notify.Publish(ToastError, "Error deleting product!")
		zap.L().Warn("product delete failed", zap.String("id", id.String()), zap.Error(err))
		_ = o.Refresh(ctx)
		return err
	}
	o.notify.Publish(ToastSuccess, "Product deleted successfully!")
	return nil
}

// AttachAsset validates the file locally, uploads it, and stores the
// returned URL reference in the draft. Local precondition failures
// never reach the network layer. For images the uploaded URL is
// probed afterwards; an unreachable image is a non-fatal warning and
// does not block saving.
func (o *Orchestrator) AttachAsset(ctx context.Context, draft *store.Draft, kind assets.Kind, filename string, data []byte, declaredMIME string) (string, error) {
	if err := assets.Validate(kind, declaredMIME, int64(len(data)), data); err != nil {
		o.notify.Publish(ToastError, "%s", err.Error())
		return "", err
	}

	o.notify.Publish(ToastLoading, "Uploading %s...", string(kind))
	url, err := o.client.Upload(ctx, filename, data, declaredMIME)
	if err != nil {
		o.notify.Publish(ToastError, "Upload failed: %s", err.Error())
		return "", err
	}

	switch kind {
	case assets.Image:
		draft.ImageURL = url
		o.notify.Publish(ToastSuccess, "Image uploaded successfully!")
		if err := o.client.Probe(ctx, url); err != nil {
			o.notify.Publish(ToastWarning,
				"Image uploaded but may not be accessible. Check the URL.")
		}
	case assets.Video:
		draft.VideoURL = url
		o.notify.Publish(ToastSuccess, "Video uploaded successfully!")
	}
	return url, nil
}
