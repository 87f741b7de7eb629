// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/metrics"
	"github.com/tomtom215/curriculum/internal/models"
)

// indexBatchSize is the number of documents per bleve batch.
const indexBatchSize = 100

// indexDocument is the indexed projection of a content item. Only the fields
// the corpus backend matches on are indexed; type filtering happens after the
// query so a search for "course" does not match every course.
type indexDocument struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// IndexSearcher answers queries from an in-memory bleve index over the corpus.
// The index is built on first use and replaced by Rebuild.
type IndexSearcher struct {
	corpus Corpus

	mu    sync.RWMutex
	index bleve.Index
	items map[string]models.ContentMetadata
}

// NewIndexSearcher creates an index searcher over corpus. No index is built
// until the first search or Rebuild.
func NewIndexSearcher(corpus Corpus) *IndexSearcher {
	return &IndexSearcher{corpus: corpus}
}

// Rebuild indexes the current corpus into a fresh index and swaps it in.
func (s *IndexSearcher) Rebuild(ctx context.Context) error {
	items := s.corpus.AllContent(ctx)

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}

	byID := make(map[string]models.ContentMetadata, len(items))
	batch := index.NewBatch()
	for i := range items {
		item := &items[i]
		if _, dup := byID[item.ID]; dup {
			continue
		}
		byID[item.ID] = *item

		doc := indexDocument{
			Title:       item.Title,
			Description: item.Description,
			Tags:        item.Tags,
		}
		if err := batch.Index(item.ID, doc); err != nil {
			_ = index.Close()
			return fmt.Errorf("failed to index %s: %w", item.ID, err)
		}
		if batch.Size() >= indexBatchSize {
			if err := index.Batch(batch); err != nil {
				_ = index.Close()
				return fmt.Errorf("failed to index batch: %w", err)
			}
			batch = index.NewBatch()
		}
	}
	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			_ = index.Close()
			return fmt.Errorf("failed to index final batch: %w", err)
		}
	}

	s.mu.Lock()
	old := s.index
	s.index = index
	s.items = byID
	s.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}

	metrics.SearchIndexDocuments.Set(float64(len(byID)))
	logger := logging.CtxWith(ctx).Str("component", "search").Logger()
	logger.Info().Int("documents", len(byID)).Msg("Search index rebuilt")
	return nil
}

// SearchContent implements Searcher. All hits are returned, best first.
func (s *IndexSearcher) SearchContent(ctx context.Context, query string, types []models.ContentType) ([]models.ContentMetadata, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.ContentMetadata{}, nil
	}

	s.mu.RLock()
	built := s.index != nil
	s.mu.RUnlock()
	if !built {
		if err := s.Rebuild(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.index == nil || len(s.items) == 0 {
		return []models.ContentMetadata{}, nil
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = len(s.items)
	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search index query failed: %w", err)
	}

	matches := make([]models.ContentMetadata, 0, len(res.Hits))
	for _, hit := range res.Hits {
		item, ok := s.items[hit.ID]
		if !ok || !typeAllowed(item.Type, types) {
			continue
		}
		matches = append(matches, item)
	}
	return matches, nil
}

// DocumentCount returns the number of indexed documents.
func (s *IndexSearcher) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close releases the index.
func (s *IndexSearcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	s.items = nil
	return err
}
