// Package fetch implements the network side of image loading: turning a
// resource locator into raw bytes.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrUnsupportedScheme = errors.New("fetch: unsupported scheme")
	ErrBadStatus         = errors.New("fetch: unexpected status")
	ErrEmptyBody         = errors.New("fetch: empty body")
	ErrTooLarge          = errors.New("fetch: body exceeds max size")
	ErrInvalidFileID     = errors.New("fetch: invalid telegram file id")
)

type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Router dispatches to a Fetcher by URL scheme.
type Router struct {
	schemes map[string]Fetcher
}

func NewRouter() *Router {
	return &Router{schemes: make(map[string]Fetcher)}
}

// NewDefaultRouter serves http and https with hf and, when tf is not
// nil, the tg scheme.
func NewDefaultRouter(hf *HTTPFetcher, tf *TelegramFetcher) *Router {
	r := NewRouter()
	r.Register("http", hf)
	r.Register("https", hf)
	if tf != nil {
		r.Register(TelegramScheme, tf)
	}
	return r
}

func (r *Router) Register(scheme string, f Fetcher) {
	r.schemes[strings.ToLower(scheme)] = f
}

func (r *Router) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	f, ok := r.schemes[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	return f.Fetch(ctx, rawURL)
}
