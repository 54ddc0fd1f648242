package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxMediaFetchSize caps how much media a single fetch will read. Posts
// larger than this are treated as fetch failures rather than truncated.
const maxMediaFetchSize = 32 << 20 // 32 MiB

// ErrMediaTooLarge indicates that a media payload exceeded the fetch cap.
var ErrMediaTooLarge = errors.New("media payload too large")

// HTTPFetcher downloads media over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

var _ MediaFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a MediaFetcher with sensible timeouts.
// Pass a nil client to use the default.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{client: client}
}

// Fetch retrieves the media bytes at the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building media request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching media: unexpected status %d", resp.StatusCode)
	}

	// Read one byte past the cap to tell "exactly at the cap" from "over it"
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaFetchSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading media body: %w", err)
	}
	if len(body) > maxMediaFetchSize {
		return nil, ErrMediaTooLarge
	}
	return body, nil
}
