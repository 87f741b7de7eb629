// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// maxBodySize caps a single content document.
	maxBodySize = 8 << 20

	// maxErrorBodySize caps how much of an error response is kept for logs.
	maxErrorBodySize = 1 << 10
)

// HTTPFetcher fetches content with plain GET requests below a base URL.
type HTTPFetcher struct {
	base    *url.URL
	client  *http.Client
	limiter *rate.Limiter
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithRateLimit caps outgoing requests per second. A zero limit disables it.
func WithRateLimit(perSecond float64, burst int) HTTPOption {
	return func(f *HTTPFetcher) {
		if perSecond <= 0 {
			f.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewHTTPFetcher creates a fetcher rooted at baseURL.
func NewHTTPFetcher(baseURL string, timeout time.Duration, opts ...HTTPOption) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid content base URL: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	f := &HTTPFetcher{
		base:   u,
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch GETs path below the base URL. 404 and 410 map to ErrNotFound.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("fetch %s: rate limiter: %w", path, err)
		}
	}

	target := f.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: failed to create request: %w", path, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("fetch %s: %w", path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: failed to read body: %w", path, err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("fetch %s: body exceeds %d bytes", path, maxBodySize)
	}
	return body, nil
}

// readBodyForError reads at most maxErrorBodySize bytes for error messages.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	s := strings.TrimSpace(string(body))
	if len(body) == maxErrorBodySize {
		s += "... (truncated)"
	}
	return s
}
