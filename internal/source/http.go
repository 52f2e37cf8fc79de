package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrStatus reports a non-2xx response from the generation backend.
var ErrStatus = errors.New("unexpected response status")

// HTTPSource streams the body of an HTTP response. The caller must Close it
// when the session ends.
type HTTPSource struct {
	inner Source
	body  interface{ Close() error }
}

// OpenHTTP issues a GET against url and returns a source over the response
// body. A nil client uses http.DefaultClient. When sse is set the body is
// treated as a text/event-stream feed and only text deltas are yielded;
// otherwise raw body bytes are chunked at chunkSize.
func OpenHTTP(ctx context.Context, client *http.Client, url string, chunkSize int, sse bool) (*HTTPSource, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if sse {
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	var inner Source
	if sse {
		inner = NewSSESource(resp.Body, nil)
	} else {
		inner = NewReaderSource(resp.Body, chunkSize)
	}
	return &HTTPSource{inner: inner, body: resp.Body}, nil
}

// Next yields the next chunk from the response body.
func (s *HTTPSource) Next(ctx context.Context) ([]byte, error) {
	return s.inner.Next(ctx)
}

// Close closes the underlying response body.
func (s *HTTPSource) Close() error {
	return s.body.Close()
}
