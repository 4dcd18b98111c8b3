package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/solarcodion/code-challenge/internal/catalog"
	"github.com/solarcodion/code-challenge/internal/domain"
)

// CatalogLoader loads the current token catalog.
type CatalogLoader interface {
	Load(ctx context.Context) ([]domain.Token, error)
}

// CatalogWorker periodically refreshes the served catalog cache. The
// interactive form still loads the catalog once per session; this
// worker only keeps the HTTP read endpoints fresh.
type CatalogWorker struct {
	loader   CatalogLoader
	cache    *catalog.Cache
	interval time.Duration
}

// NewCatalogWorker creates a new CatalogWorker.
func NewCatalogWorker(loader CatalogLoader, cache *catalog.Cache, interval time.Duration) *CatalogWorker {
	return &CatalogWorker{
		loader:   loader,
		cache:    cache,
		interval: interval,
	}
}

// Run starts the refresh loop. It blocks until the context is
// cancelled. A failed refresh keeps the previous catalog.
func (w *CatalogWorker) Run(ctx context.Context) {
	slog.Info("CatalogWorker: starting")

	// Refresh immediately on startup
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("CatalogWorker: shutting down")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CatalogWorker) refresh(ctx context.Context) {
	tokens, err := w.loader.Load(ctx)
	if err != nil {
		slog.Error("CatalogWorker: refresh failed", "error", err)
		return
	}
	w.cache.Set(tokens)
	slog.Info("CatalogWorker: refresh completed", "tokens", len(tokens))
}
