package fetch

import (
	"context"
	"net/http"
)

// Options are passed through to the underlying fetch implementation; the
// cache layers never interpret them.
type Options struct {
	// Method defaults to GET.
	Method string
	Header http.Header
	Body   []byte
}

// Fetcher retrieves a raw payload for a URL. Implementations must return an
// error for unsuccessful fetches; the cache layers never store anything when
// a fetch fails.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts Options) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string, opts Options) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string, opts Options) ([]byte, error) {
	return f(ctx, url, opts)
}
