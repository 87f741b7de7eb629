// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package search

import (
	"context"
	"sync"
	"testing"

	"github.com/tomtom215/curriculum/internal/models"
)

type staticCorpus struct {
	mu    sync.Mutex
	items []models.ContentMetadata
}

func (c *staticCorpus) AllContent(context.Context) []models.ContentMetadata {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *staticCorpus) set(items []models.ContentMetadata) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

func searchCorpus() *staticCorpus {
	return &staticCorpus{items: []models.ContentMetadata{
		{ID: "go", Title: "Go Fundamentals", Type: models.ContentTypeCourse, Tags: []string{"backend"}},
		{ID: "go/conc/intro", Title: "Goroutines", Description: "Lightweight concurrency primitives", Type: models.ContentTypeLesson},
		{ID: "ex/chan", Title: "Channel Pipelines", Type: models.ContentTypeExercise, Tags: []string{"concurrency"}},
		{ID: "rust", Title: "Rust Ownership", Type: models.ContentTypeCourse, Tags: []string{"systems"}},
	}}
}

func resultIDs(items []models.ContentMetadata) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[it.ID] = true
	}
	return out
}

func TestCorpusSearcher(t *testing.T) {
	t.Parallel()

	s := NewCorpusSearcher(searchCorpus())
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		types []models.ContentType
		want  []string
	}{
		{"title", "fundamentals", nil, []string{"go"}},
		{"description", "CONCURRENCY", nil, []string{"go/conc/intro", "ex/chan"}},
		{"tag", "systems", nil, []string{"rust"}},
		{"type filter", "concurrency", []models.ContentType{models.ContentTypeExercise}, []string{"ex/chan"}},
		{"substring", "go", nil, []string{"go", "go/conc/intro"}},
		{"blank", "  ", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := s.SearchContent(ctx, tt.query, tt.types)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results %+v, want %v", len(got), got, tt.want)
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestIndexSearcher(t *testing.T) {
	t.Parallel()

	corpus := searchCorpus()
	s := NewIndexSearcher(corpus)
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	got, err := s.SearchContent(ctx, "concurrency", nil)
	if err != nil {
		t.Fatal(err)
	}
	ids := resultIDs(got)
	if len(got) != 2 || !ids["go/conc/intro"] || !ids["ex/chan"] {
		t.Errorf("concurrency hits = %v", ids)
	}
	if s.DocumentCount() != 4 {
		t.Errorf("DocumentCount() = %d, want 4", s.DocumentCount())
	}

	got, err = s.SearchContent(ctx, "concurrency", []models.ContentType{models.ContentTypeLesson})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "go/conc/intro" {
		t.Errorf("typed hits = %+v", got)
	}

	got, err = s.SearchContent(ctx, "haskell", nil)
	if err != nil || len(got) != 0 {
		t.Errorf("no-match search = %+v, %v", got, err)
	}

	corpus.set(append(corpus.AllContent(ctx), models.ContentMetadata{
		ID: "hs", Title: "Haskell Basics", Type: models.ContentTypeCourse,
	}))
	if err := s.Rebuild(ctx); err != nil {
		t.Fatal(err)
	}
	got, err = s.SearchContent(ctx, "haskell", nil)
	if err != nil || len(got) != 1 || got[0].ID != "hs" {
		t.Errorf("after rebuild = %+v, %v", got, err)
	}
}

func TestNewSearcher(t *testing.T) {
	t.Parallel()

	corpus := searchCorpus()
	if s, err := NewSearcher(BackendCorpus, corpus); err != nil {
		t.Error(err)
	} else if _, ok := s.(*CorpusSearcher); !ok {
		t.Errorf("corpus backend = %T", s)
	}
	if s, err := NewSearcher(BackendBleve, corpus); err != nil {
		t.Error(err)
	} else if _, ok := s.(*IndexSearcher); !ok {
		t.Errorf("bleve backend = %T", s)
	}
	if _, err := NewSearcher("solr", corpus); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestBackendsAgree(t *testing.T) {
	t.Parallel()

	corpus := searchCorpus()
	index := NewIndexSearcher(corpus)
	defer func() { _ = index.Close() }()
	backends := map[string]Searcher{
		BackendCorpus: NewCorpusSearcher(corpus),
		BackendBleve:  index,
	}
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"course", nil},
		{"lesson", nil},
		{"exercise", nil},
		{"concurrency", []string{"go/conc/intro", "ex/chan"}},
		{"systems", []string{"rust"}},
		{"pipelines", []string{"ex/chan"}},
		{"goroutines", []string{"go/conc/intro"}},
	}
	for _, tt := range tests {
		for name, s := range backends {
			got, err := s.SearchContent(ctx, tt.query, nil)
			if err != nil {
				t.Fatalf("%s %q: %v", name, tt.query, err)
			}
			ids := resultIDs(got)
			if len(ids) != len(tt.want) {
				t.Errorf("%s %q = %v, want %v", name, tt.query, ids, tt.want)
				continue
			}
			for _, id := range tt.want {
				if !ids[id] {
					t.Errorf("%s %q missing %s (got %v)", name, tt.query, id, ids)
				}
			}
		}
	}
}
