// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

// Package transport is the boundary between the content store and wherever
// course files are hosted.
//
// Paths are slash-separated and relative to the content root, for example
// "courses/go-basics/meta.json". A path ending in "/" asks for a directory
// listing, returned as a JSON array of {name, type} where directory names
// carry a trailing "/".
//
// Implementations return an error wrapping ErrNotFound for missing resources.
// Every other error is a transport failure. The content store treats both the
// same way (the item is absent) but logs and counts them separately.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/curriculum/internal/metrics"
)

// ErrNotFound marks a missing resource.
var ErrNotFound = errors.New("content not found")

// Fetcher retrieves raw content bytes by path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, path string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

// IsNotFound reports whether err means the resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Outcome classifies a fetch result for logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}

// StatusError is returned for unexpected HTTP status codes.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d: %s", e.Path, e.StatusCode, e.Body)
}

// Instrument wraps f so every fetch is recorded in the content_fetch metrics.
func Instrument(f Fetcher) Fetcher {
	return FetcherFunc(func(ctx context.Context, path string) ([]byte, error) {
		start := time.Now()
		data, err := f.Fetch(ctx, path)
		metrics.RecordFetch(Outcome(err), time.Since(start))
		return data, err
	})
}
