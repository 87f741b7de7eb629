// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Search.Debounce != 300*time.Millisecond {
		t.Errorf("Search.Debounce = %v, want 300ms", cfg.Search.Debounce)
	}
	if cfg.Search.RecentLimit != 5 {
		t.Errorf("Search.RecentLimit = %d, want 5", cfg.Search.RecentLimit)
	}
	if cfg.Recommend.RelatedLimit != 5 || cfg.Recommend.RelatedThreshold != 0.2 {
		t.Errorf("unexpected recommend defaults %+v", cfg.Recommend)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q", got)
	}
}

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
content:
  base_url: https://content.example.com/static/
search:
  backend: bleve
  page_size: 20
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SEARCH_PAGE_SIZE", "25")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SEARCH_DEBOUNCE", "150ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Content.BaseURL != "https://content.example.com/static/" {
		t.Errorf("BaseURL = %q", cfg.Content.BaseURL)
	}
	if cfg.Search.Backend != "bleve" {
		t.Errorf("Backend = %q, want bleve from file", cfg.Search.Backend)
	}
	if cfg.Search.PageSize != 25 {
		t.Errorf("PageSize = %d, want env override 25", cfg.Search.PageSize)
	}
	if cfg.Search.Debounce != 150*time.Millisecond {
		t.Errorf("Debounce = %v, want 150ms", cfg.Search.Debounce)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	// Untouched defaults survive both layers.
	if cfg.Recommend.PathMaxLength != 5 {
		t.Errorf("PathMaxLength = %d", cfg.Recommend.PathMaxLength)
	}
}

func TestEnvTransformIgnoresUnmapped(t *testing.T) {
	t.Parallel()

	if got := envTransformFunc("HOME"); got != "" {
		t.Errorf("HOME mapped to %q", got)
	}
	if got := envTransformFunc("CONTENT_BASE_URL"); got != "content.base_url" {
		t.Errorf("CONTENT_BASE_URL mapped to %q", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"no content source", func(c *Config) { c.Content.RootDir = ""; c.Content.BaseURL = "" }, "CONTENT_BASE_URL"},
		{"bad scheme", func(c *Config) { c.Content.BaseURL = "ftp://x" }, "scheme"},
		{"threshold above one", func(c *Config) { c.Recommend.RelatedThreshold = 1.5 }, "RECOMMEND_RELATED_THRESHOLD"},
		{"unknown backend", func(c *Config) { c.Search.Backend = "elastic" }, "SEARCH_BACKEND"},
		{"page size over max", func(c *Config) { c.Search.PageSize = 1000 }, "SEARCH_PAGE_SIZE"},
		{"port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"rate limit disabled ok", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
