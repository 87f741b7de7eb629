// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/curriculum/internal/models"
)

// Backend names accepted by NewSearcher.
const (
	BackendCorpus = "corpus"
	BackendBleve  = "bleve"
)

// Searcher returns every content item matching query, in relevance order.
// An empty types list matches all content types.
type Searcher interface {
	SearchContent(ctx context.Context, query string, types []models.ContentType) ([]models.ContentMetadata, error)
}

// Corpus supplies the content searched over. Satisfied by *content.Store.
type Corpus interface {
	AllContent(ctx context.Context) []models.ContentMetadata
}

// NewSearcher returns the searcher for the named backend.
func NewSearcher(backend string, corpus Corpus) (Searcher, error) {
	switch backend {
	case BackendCorpus, "":
		return NewCorpusSearcher(corpus), nil
	case BackendBleve:
		return NewIndexSearcher(corpus), nil
	default:
		return nil, fmt.Errorf("unknown search backend %q", backend)
	}
}

// CorpusSearcher matches the query as a case-insensitive substring of an
// item's title, description or any tag. Results keep corpus order.
type CorpusSearcher struct {
	corpus Corpus
}

// NewCorpusSearcher creates a substring searcher over corpus.
func NewCorpusSearcher(corpus Corpus) *CorpusSearcher {
	return &CorpusSearcher{corpus: corpus}
}

// SearchContent implements Searcher.
func (s *CorpusSearcher) SearchContent(ctx context.Context, query string, types []models.ContentType) ([]models.ContentMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]models.ContentMetadata, 0)
	if needle == "" {
		return matches, nil
	}

	for _, item := range s.corpus.AllContent(ctx) {
		if !typeAllowed(item.Type, types) {
			continue
		}
		if matchesText(&item, needle) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func matchesText(item *models.ContentMetadata, needle string) bool {
	if strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func typeAllowed(t models.ContentType, types []models.ContentType) bool {
	if len(types) == 0 {
		return true
	}
	for _, allowed := range types {
		if t == allowed {
			return true
		}
	}
	return false
}
