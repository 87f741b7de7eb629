// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"context"
	"time"

	"github.com/tomtom215/curriculum/internal/cache"
	"github.com/tomtom215/curriculum/internal/models"
	"github.com/tomtom215/curriculum/internal/recommend"
	"github.com/tomtom215/curriculum/internal/search"
)

// ContentStore is the content surface used by the handlers. Satisfied by
// *content.Store.
type ContentStore interface {
	ListCourses(ctx context.Context) []models.ContentMetadata
	LoadCourseStructure(ctx context.Context, courseID string) *models.CourseStructure
	LoadLesson(ctx context.Context, courseID, moduleID, lessonID string) *models.Lesson
	LoadExercise(ctx context.Context, categoryOrPath, exerciseID string) *models.Exercise
	ListExercises(ctx context.Context) []models.ContentMetadata
	FindByID(ctx context.Context, id string) (models.ContentMetadata, bool)
	Reset()
	CacheStats() []cache.Stats
}

// IndexRebuilder rebuilds a search index after the content caches are reset.
// Satisfied by *search.IndexSearcher.
type IndexRebuilder interface {
	Rebuild(ctx context.Context) error
}

// Handler holds the dependencies of every API endpoint.
type Handler struct {
	store     ContentStore
	resolver  *recommend.Resolver
	query     *search.Query
	rebuilder IndexRebuilder
	wsOrigins []string
	startTime time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithIndexRebuilder rebuilds the search index on POST /cache/reset.
func WithIndexRebuilder(r IndexRebuilder) HandlerOption {
	return func(h *Handler) { h.rebuilder = r }
}

// WithSessionOrigins restricts which browser origins may open search
// sessions. "*" allows any origin.
func WithSessionOrigins(origins []string) HandlerOption {
	return func(h *Handler) { h.wsOrigins = origins }
}

// NewHandler creates the API handler set.
func NewHandler(store ContentStore, resolver *recommend.Resolver, query *search.Query, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:     store,
		resolver:  resolver,
		query:     query,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
