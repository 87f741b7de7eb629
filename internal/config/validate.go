// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if err := c.validateContent(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateContent() error {
	if c.Content.BaseURL == "" && c.Content.RootDir == "" {
		return fmt.Errorf("one of CONTENT_BASE_URL or CONTENT_ROOT_DIR is required")
	}
	if c.Content.BaseURL != "" {
		if err := validateHTTPURL(c.Content.BaseURL, "CONTENT_BASE_URL"); err != nil {
			return err
		}
	}
	if c.Content.ListConcurrency < 1 {
		return fmt.Errorf("CONTENT_LIST_CONCURRENCY must be at least 1, got %d", c.Content.ListConcurrency)
	}
	if c.Transport.RateLimit < 0 {
		return fmt.Errorf("TRANSPORT_RATE_LIMIT must not be negative")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.RelatedLimit < 1 {
		return fmt.Errorf("RECOMMEND_RELATED_LIMIT must be at least 1, got %d", r.RelatedLimit)
	}
	if r.RelatedThreshold < 0 || r.RelatedThreshold > 1 {
		return fmt.Errorf("RECOMMEND_RELATED_THRESHOLD must be between 0 and 1, got %v", r.RelatedThreshold)
	}
	if r.PathMaxLength < 1 {
		return fmt.Errorf("RECOMMEND_PATH_MAX_LENGTH must be at least 1, got %d", r.PathMaxLength)
	}
	return nil
}

func (c *Config) validateSearch() error {
	s := c.Search
	switch s.Backend {
	case "corpus", "bleve":
	default:
		return fmt.Errorf("SEARCH_BACKEND must be corpus or bleve, got %q", s.Backend)
	}
	if s.Debounce < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE must not be negative")
	}
	if s.PageSize < 1 || s.PageSize > s.MaxPageSize {
		return fmt.Errorf("SEARCH_PAGE_SIZE must be between 1 and %d, got %d", s.MaxPageSize, s.PageSize)
	}
	if s.RecentLimit < 0 {
		return fmt.Errorf("SEARCH_RECENT_LIMIT must not be negative")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be at least 1 when rate limiting is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL accepts http(s) URLs with a host. A path prefix is allowed
// because content is often served from a sub-directory of a CDN.
func validateHTTPURL(rawURL, fieldName string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters", fieldName)
	}
	return nil
}
