// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/curriculum/internal/logging"
)

const defaultRebuildTimeout = 5 * time.Minute

// Indexer rebuilds a search index from the content corpus.
// Satisfied by *search.IndexSearcher.
type Indexer interface {
	Rebuild(ctx context.Context) error
}

// IndexerFunc adapts a function to Indexer. The corpus search backend has no
// index, so it passes a function that warms the content caches instead.
type IndexerFunc func(ctx context.Context) error

// Rebuild calls f(ctx).
func (f IndexerFunc) Rebuild(ctx context.Context) error {
	return f(ctx)
}

// IndexRefreshConfig controls when the index is rebuilt.
type IndexRefreshConfig struct {
	// Interval between rebuilds. Zero builds once on start and then idles
	// until shutdown.
	Interval time.Duration

	// Timeout bounds a single rebuild. Default: 5m
	Timeout time.Duration

	// Refresh, when set, runs before every scheduled rebuild. Content and
	// result caches never expire on their own, so it drops them to let the
	// rebuild see content added or changed since the last one. The initial
	// build runs against cold caches and skips it.
	Refresh func()
}

// IndexRefreshService builds the search index on start and keeps it fresh.
//
// A failed initial build returns an error so the supervisor restarts the
// service with backoff. Failed periodic rebuilds are only logged; the
// previous index stays in place.
type IndexRefreshService struct {
	indexer  Indexer
	config   IndexRefreshConfig
	logger   zerolog.Logger
	name     string
	rebuilds atomic.Int64
}

// NewIndexRefreshService creates the refresh service.
func NewIndexRefreshService(indexer Indexer, cfg IndexRefreshConfig) *IndexRefreshService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRebuildTimeout
	}
	return &IndexRefreshService{
		indexer: indexer,
		config:  cfg,
		logger:  logging.WithComponent("index-refresh"),
		name:    "index-refresh-service",
	}
}

// Serve implements suture.Service.
func (s *IndexRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("Index refresh service starting")

	if err := s.rebuild(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("initial index build: %w", err)
	}

	if s.config.Interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Index refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if s.config.Refresh != nil {
				s.config.Refresh()
			}
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("Scheduled index rebuild failed, keeping previous index")
			}
		}
	}
}

func (s *IndexRefreshService) rebuild(ctx context.Context) error {
	rebuildCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.indexer.Rebuild(rebuildCtx); err != nil {
		return err
	}
	n := s.rebuilds.Add(1)

	s.logger.Debug().
		Int64("rebuilds", n).
		Dur("duration", time.Since(start)).
		Msg("Index rebuilt")
	return nil
}

// Rebuilds returns the number of successful rebuilds so far.
func (s *IndexRefreshService) Rebuilds() int64 {
	return s.rebuilds.Load()
}

// String implements fmt.Stringer for supervisor logs.
func (s *IndexRefreshService) String() string {
	return s.name
}
