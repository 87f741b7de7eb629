// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

// Package config loads Curriculum configuration with Koanf v2.
//
// Sources are layered, later ones winning:
//  1. Defaults from defaultConfig()
//  2. An optional YAML file (CONFIG_PATH, config.yaml, /etc/curriculum/config.yaml)
//  3. Environment variables listed in envMappings
//
// Config is immutable after Load and safe for concurrent reads.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Content   ContentConfig   `koanf:"content"`
	Transport TransportConfig `koanf:"transport"`
	Recommend RecommendConfig `koanf:"recommend"`
	Search    SearchConfig    `koanf:"search"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ContentConfig locates the course content tree.
//
// Exactly one of BaseURL or RootDir is used; BaseURL wins when both are set.
type ContentConfig struct {
	BaseURL         string `koanf:"base_url"`
	RootDir         string `koanf:"root_dir"`
	ReadmeFallback  bool   `koanf:"readme_fallback"`
	ListConcurrency int    `koanf:"list_concurrency"`
}

// TransportConfig tunes the HTTP fetcher used when BaseURL is set.
type TransportConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	RateLimit      float64              `koanf:"rate_limit"` // requests per second, 0 disables
	RateBurst      int                  `koanf:"rate_burst"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig mirrors gobreaker.Settings.
type CircuitBreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// RecommendConfig holds related-content and learning path defaults.
type RecommendConfig struct {
	RelatedLimit     int     `koanf:"related_limit"`
	RelatedThreshold float64 `koanf:"related_threshold"`
	PathMaxLength    int     `koanf:"path_max_length"`
}

// SearchConfig holds search query settings.
type SearchConfig struct {
	Backend      string        `koanf:"backend"` // corpus or bleve
	Debounce     time.Duration `koanf:"debounce"`
	PageSize     int           `koanf:"page_size"`
	MaxPageSize  int           `koanf:"max_page_size"`
	RecentLimit  int           `koanf:"recent_limit"`
	IndexRefresh time.Duration `koanf:"index_refresh"` // 0 builds the bleve index once
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting for the public API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig is passed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
