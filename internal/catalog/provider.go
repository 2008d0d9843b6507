package catalog

import (
	"context"
	"sync"

	"github.com/thomas-vilte/spicalc/internal/logger"
)

// Provider hands out the catalog to commands. Loading is deferred until a
// command needs it so configuration commands keep working when the catalog
// file is broken.
type Provider func(ctx context.Context) (*Catalog, error)

// NewProvider loads path once (or the embedded catalog when path is blank)
// and returns the same result on every call.
func NewProvider(path string) Provider {
	var (
		once sync.Once
		cat  *Catalog
		err  error
	)
	return func(ctx context.Context) (*Catalog, error) {
		once.Do(func() {
			if path == "" {
				cat, err = Default()
			} else {
				cat, err = LoadFile(path)
			}
			if err == nil {
				logger.Debug(ctx, "catalog loaded", "path", cat.Source(), "branches", cat.Len())
			}
		})
		return cat, err
	}
}

// Static wraps an already loaded catalog, mostly for tests.
func Static(cat *Catalog) Provider {
	return func(context.Context) (*Catalog, error) {
		return cat, nil
	}
}
