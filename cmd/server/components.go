// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/tomtom215/curriculum/internal/api"
	"github.com/tomtom215/curriculum/internal/config"
	"github.com/tomtom215/curriculum/internal/content"
	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/recommend"
	"github.com/tomtom215/curriculum/internal/search"
	"github.com/tomtom215/curriculum/internal/supervisor/services"
	"github.com/tomtom215/curriculum/internal/transport"
)

// components holds everything main wires into the supervisor tree.
type components struct {
	store   *content.Store
	handler *api.Handler
	indexer services.Indexer
	closers []io.Closer

	// refresh drops cached content and search results before a scheduled
	// index rebuild.
	refresh func()
}

// newComponents builds the content, recommendation and search layers from cfg.
func newComponents(cfg *config.Config) (*components, error) {
	fetcher, err := transport.New(cfg.Content, cfg.Transport)
	if err != nil {
		return nil, fmt.Errorf("content transport: %w", err)
	}

	store := content.NewStore(fetcher, content.Options{
		ReadmeFallback:  cfg.Content.ReadmeFallback,
		ListConcurrency: cfg.Content.ListConcurrency,
	})

	resolver := recommend.NewResolver(store, recommend.Config{
		RelatedLimit:     cfg.Recommend.RelatedLimit,
		RelatedThreshold: cfg.Recommend.RelatedThreshold,
		PathMaxLength:    cfg.Recommend.PathMaxLength,
	})

	searcher, err := search.NewSearcher(cfg.Search.Backend, store)
	if err != nil {
		return nil, err
	}
	query := search.NewQuery(searcher, search.Config{
		Debounce:    cfg.Search.Debounce,
		PageSize:    cfg.Search.PageSize,
		MaxPageSize: cfg.Search.MaxPageSize,
		RecentLimit: cfg.Search.RecentLimit,
	})

	c := &components{
		store: store,
		refresh: func() {
			store.Reset()
			query.ClearSearchCache()
		},
	}

	opts := []api.HandlerOption{api.WithSessionOrigins(cfg.Security.CORSOrigins)}
	if index, ok := searcher.(*search.IndexSearcher); ok {
		c.indexer = index
		c.closers = append(c.closers, index)
		opts = append(opts, api.WithIndexRebuilder(index))
	} else {
		c.indexer = services.IndexerFunc(c.warmCaches)
	}

	c.handler = api.NewHandler(store, resolver, query, opts...)
	return c, nil
}

// warmCaches loads the whole corpus so the first requests hit the caches.
func (c *components) warmCaches(ctx context.Context) error {
	items := c.store.AllContent(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Int("items", len(items)).Msg("Content caches warmed")
	return nil
}

// Close releases resources held by the components.
func (c *components) Close() {
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing component")
		}
	}
}
