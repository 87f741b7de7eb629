// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

// Package content implements the ContentStore: on-demand loading of courses,
// modules, lessons and exercises through a transport.Fetcher, with one cache
// layer per content kind.
//
// Loaders never return errors. Missing or malformed data is logged, counted
// and reported as nil (single items) or left out (lists). A course loads with
// whatever modules and lessons succeeded.
//
// Cache layers live as long as the Store and are only emptied by Reset. The
// store does not coalesce in-flight loads: concurrent misses on the same key
// each fetch, and the last Set wins.
package content

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tomtom215/curriculum/internal/cache"
	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/metrics"
	"github.com/tomtom215/curriculum/internal/models"
	"github.com/tomtom215/curriculum/internal/transport"
)

// Cache layer names, also used as metric labels.
const (
	layerCourses      = "courses"
	layerLessons      = "lessons"
	layerExercises    = "exercises"
	layerCourseList   = "course_list"
	layerExerciseList = "exercise_list"
	layerCorpus       = "corpus"

	listKey = "all"
)

// Options tunes a Store.
type Options struct {
	// ReadmeFallback fills an empty course description from README.md.
	ReadmeFallback bool

	// ListConcurrency bounds parallel course meta fetches in ListCourses.
	ListConcurrency int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{ReadmeFallback: true, ListConcurrency: 4}
}

// Store loads and caches course content.
type Store struct {
	fetcher transport.Fetcher
	opts    Options

	courses      *cache.Store[*models.CourseStructure]
	lessons      *cache.Store[*models.Lesson]
	exercises    *cache.Store[*models.Exercise]
	courseList   *cache.Store[[]models.ContentMetadata]
	exerciseList *cache.Store[[]models.ContentMetadata]
	corpus       *cache.Store[[]models.ContentMetadata]
}

// NewStore creates a Store reading through fetcher.
func NewStore(fetcher transport.Fetcher, opts Options) *Store {
	if opts.ListConcurrency < 1 {
		opts.ListConcurrency = 1
	}
	return &Store{
		fetcher:      fetcher,
		opts:         opts,
		courses:      cache.New[*models.CourseStructure](layerCourses),
		lessons:      cache.New[*models.Lesson](layerLessons),
		exercises:    cache.New[*models.Exercise](layerExercises),
		courseList:   cache.New[[]models.ContentMetadata](layerCourseList),
		exerciseList: cache.New[[]models.ContentMetadata](layerExerciseList),
		corpus:       cache.New[[]models.ContentMetadata](layerCorpus),
	}
}

// Reset empties every cache layer. The next load of anything refetches it.
func (s *Store) Reset() {
	s.courses.Clear()
	s.lessons.Clear()
	s.exercises.Clear()
	s.courseList.Clear()
	s.exerciseList.Clear()
	s.corpus.Clear()
	metrics.ContentCacheResets.Inc()
}

// CacheStats returns per-layer cache statistics.
func (s *Store) CacheStats() []cache.Stats {
	return []cache.Stats{
		s.courses.GetStats(),
		s.lessons.GetStats(),
		s.exercises.GetStats(),
		s.courseList.GetStats(),
		s.exerciseList.GetStats(),
		s.corpus.GetStats(),
	}
}

// lookup reads a cache layer and records the result in metrics.
func lookup[V any](c *cache.Store[V], key string) (V, bool) {
	v, ok := c.Get(key)
	metrics.RecordCacheLookup(c.Name(), ok)
	return v, ok
}

func (s *Store) logger(ctx context.Context) zerolog.Logger {
	return logging.CtxWith(ctx).Str("component", "content").Logger()
}

// fetch retrieves path and logs the failure class when it fails.
func (s *Store) fetch(ctx context.Context, kind, path string) ([]byte, bool) {
	data, err := s.fetcher.Fetch(ctx, path)
	if err == nil {
		return data, true
	}

	reason := transport.Outcome(err)
	metrics.RecordSkipped(kind, reason)
	log := s.logger(ctx)
	if transport.IsNotFound(err) {
		log.Warn().Str("kind", kind).Str("path", path).Msg("Content not found")
	} else {
		log.Warn().Err(err).Str("kind", kind).Str("path", path).Msg("Content fetch failed")
	}
	return nil, false
}

// fetchJSON fetches path and decodes it into v. Decode failures are malformed content.
func (s *Store) fetchJSON(ctx context.Context, kind, path string, v any) bool {
	data, ok := s.fetch(ctx, kind, path)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.malformed(ctx, kind, path, err)
		return false
	}
	return true
}

func (s *Store) malformed(ctx context.Context, kind, path string, err error) {
	if !errors.Is(err, ErrMalformed) {
		err = errors.Join(ErrMalformed, err)
	}
	metrics.RecordSkipped(kind, "malformed")
	log := s.logger(ctx)
	log.Warn().Err(err).Str("kind", kind).Str("path", path).Msg("Skipping malformed content")
}

// listDirectory fetches a listing and returns its entries.
func (s *Store) listDirectory(ctx context.Context, kind, path string) ([]models.DirectoryEntry, bool) {
	var entries []models.DirectoryEntry
	if !s.fetchJSON(ctx, kind, path, &entries) {
		return nil, false
	}
	return entries, true
}
