package providers

import (
	"context"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

// DocumentProvider performs a GET against an upstream JSON endpoint and returns the decoded object.
// Implementations report transport, non-2xx and decoding failures as *FetchError.
type DocumentProvider interface {
	FetchDocument(ctx context.Context, url string) (jsonshape.Document, error)
}

// DocumentProviderFunc adapts a function into a DocumentProvider.
type DocumentProviderFunc func(ctx context.Context, url string) (jsonshape.Document, error)

func (f DocumentProviderFunc) FetchDocument(ctx context.Context, url string) (jsonshape.Document, error) {
	return f(ctx, url)
}
