// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/curriculum/internal/models"
	"github.com/tomtom215/curriculum/internal/recommend"
)

// RelatedContent returns the items most similar to ?id=.
func (h *Handler) RelatedContent(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	defaults := h.resolver.DefaultOptions()

	limit, err := intParam(r, "limit", defaults.Limit)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	threshold, err := floatParam(r, "threshold", defaults.Threshold)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	req := RelatedRequest{ID: strings.TrimSpace(r.URL.Query().Get("id")), Limit: limit, Threshold: threshold}
	if !validateRequest(rw, &req) {
		return
	}
	if _, ok := h.store.FindByID(r.Context(), req.ID); !ok {
		rw.NotFound("Content not found: " + req.ID)
		return
	}

	rw.Success(h.resolver.FindRelatedContent(r.Context(), req.ID, recommend.Options{
		Limit:     req.Limit,
		Threshold: req.Threshold,
	}))
}

// Prerequisites returns the declared prerequisites of ?id=, in declared order.
func (h *Handler) Prerequisites(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := ItemRequest{ID: strings.TrimSpace(r.URL.Query().Get("id"))}
	if !validateRequest(rw, &req) {
		return
	}
	if _, ok := h.store.FindByID(r.Context(), req.ID); !ok {
		rw.NotFound("Content not found: " + req.ID)
		return
	}
	rw.Success(h.resolver.GetPrerequisites(r.Context(), req.ID))
}

// LearningPath returns a path from ?start= towards the optional ?goal=.
func (h *Handler) LearningPath(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	maxLength, err := intParam(r, "max_length", recommend.DefaultPathMaxLength)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req := PathRequest{
		Start:     strings.TrimSpace(r.URL.Query().Get("start")),
		Goal:      strings.TrimSpace(r.URL.Query().Get("goal")),
		MaxLength: maxLength,
	}
	if !validateRequest(rw, &req) {
		return
	}

	ctx := r.Context()
	if _, ok := h.store.FindByID(ctx, req.Start); !ok {
		rw.NotFound("Content not found: " + req.Start)
		return
	}
	if req.Goal != "" {
		if _, ok := h.store.FindByID(ctx, req.Goal); !ok {
			rw.NotFound("Content not found: " + req.Goal)
			return
		}
	}

	rw.Success(h.resolver.GenerateLearningPath(ctx, req.Start, req.Goal, recommend.PathOptions{MaxLength: req.MaxLength}))
}

// Relationships returns the corpus-wide relationship graph. ?type= narrows it
// to "similar" (tag) or "prerequisite" edges.
func (h *Handler) Relationships(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := RelationshipsRequest{Type: r.URL.Query().Get("type")}
	if !validateRequest(rw, &req) {
		return
	}

	ctx := r.Context()
	rels := make([]models.ContentRelationship, 0)
	if req.Type == "" || req.Type == string(models.RelationshipSimilar) {
		rels = append(rels, h.resolver.GenerateTagRelationships(ctx)...)
	}
	if req.Type == "" || req.Type == string(models.RelationshipPrerequisite) {
		rels = append(rels, h.resolver.GeneratePrerequisiteRelationships(ctx)...)
	}
	rw.Success(rels)
}
