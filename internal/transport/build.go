// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package transport

import (
	"github.com/tomtom215/curriculum/internal/config"
	"github.com/tomtom215/curriculum/internal/logging"
)

// New builds the fetcher chain from configuration:
// HTTP (with optional rate limit and breaker) when a base URL is set,
// otherwise the local content directory. Both are instrumented.
func New(content config.ContentConfig, tc config.TransportConfig) (Fetcher, error) {
	log := logging.WithComponent("transport")

	if content.BaseURL == "" {
		f, err := NewDirFetcher(content.RootDir)
		if err != nil {
			return nil, err
		}
		log.Info().Str("root_dir", content.RootDir).Msg("Serving content from local directory")
		return Instrument(f), nil
	}

	hf, err := NewHTTPFetcher(content.BaseURL, tc.Timeout, WithRateLimit(tc.RateLimit, tc.RateBurst))
	if err != nil {
		return nil, err
	}

	var f Fetcher = hf
	if tc.CircuitBreaker.Enabled {
		f = NewBreakerFetcher("content-host", f, tc.CircuitBreaker)
	}
	log.Info().
		Str("base_url", content.BaseURL).
		Bool("circuit_breaker", tc.CircuitBreaker.Enabled).
		Float64("rate_limit", tc.RateLimit).
		Msg("Serving content over HTTP")
	return Instrument(f), nil
}
