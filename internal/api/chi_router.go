// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/curriculum/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config uses the defaults.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.AccessLog)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, r, "Route not found")
	})

	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Health Endpoints
	// ========================
	// Not rate limited so liveness checks keep working under load.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Get("/live", router.handler.HealthLive)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.chiMiddleware.RateLimit())

		// ========================
		// Content Endpoints
		// ========================
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", router.handler.ListCourses)
			r.Get("/{courseID}", router.handler.GetCourse)
			r.Get("/{courseID}/relationships", router.handler.CourseRelationships)
			r.Get("/{courseID}/modules/{moduleID}/lessons/{lessonID}", router.handler.GetLesson)
		})
		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", router.handler.ListExercises)
			r.Get("/{category}/{exerciseID}", router.handler.GetExercise)
		})

		// ========================
		// Recommendation Endpoints
		// ========================
		// Content ids contain slashes, so they travel as query parameters.
		r.Route("/content", func(r chi.Router) {
			r.Get("/related", router.handler.RelatedContent)
			r.Get("/prerequisites", router.handler.Prerequisites)
			r.Get("/path", router.handler.LearningPath)
			r.Get("/relationships", router.handler.Relationships)
		})

		// ========================
		// Search Endpoints
		// ========================
		r.Route("/search", func(r chi.Router) {
			r.Get("/", router.handler.Search)
			r.Get("/recent", router.handler.RecentSearches)
			r.Get("/ws", router.handler.SearchSession)
			r.Delete("/cache", router.handler.ClearSearchCache)
		})

		// ========================
		// Cache Management
		// ========================
		r.Post("/cache/reset", router.handler.ResetCaches)
	})

	return r
}
