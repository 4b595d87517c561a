package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const DefaultMaxFileSize = 10 * 1024 * 1024

type HTTPFetcher struct {
	client      *http.Client
	maxFileSize int64
	logger      *zap.Logger
}

// NewHTTPFetcher builds a fetcher with no client timeout. A maxFileSize
// of zero or less falls back to DefaultMaxFileSize.
func NewHTTPFetcher(client *http.Client, maxFileSize int64, logger *zap.Logger) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPFetcher{
		client:      client,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > f.maxFileSize {
		return nil, fmt.Errorf("%w: limit %s", ErrTooLarge, humanize.IBytes(uint64(f.maxFileSize)))
	}
	if len(data) == 0 {
		return nil, ErrEmptyBody
	}

	f.logger.Debug("fetched",
		zap.String("url", rawURL),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
		zap.String("content_type", resp.Header.Get("Content-Type")))

	return data, nil
}
