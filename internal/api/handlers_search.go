// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"net/http"

	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/models"
	"github.com/tomtom215/curriculum/internal/search"
)

// SearchResponse is the payload of GET /search.
type SearchResponse struct {
	Query string                   `json:"query"`
	Items []models.ContentMetadata `json:"items"`

	// Highlights maps item id to its title with query terms marked.
	Highlights map[string]string `json:"highlights,omitempty"`
}

// Search runs a paginated search over content metadata.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, err := intParam(r, "page", 1)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	pageSize, err := intParam(r, "page_size", h.query.DefaultPageSize())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	req := SearchRequest{
		Query:    r.URL.Query().Get("q"),
		Types:    listParam(r, "type"),
		Sort:     r.URL.Query().Get("sort"),
		Tags:     listParam(r, "tags"),
		Page:     page,
		PageSize: pageSize,
	}
	if !validateRequest(rw, &req) {
		return
	}

	types := make([]models.ContentType, 0, len(req.Types))
	for _, t := range req.Types {
		types = append(types, models.ContentType(t))
	}

	results, err := h.query.Search(r.Context(), req.Query, search.Options{
		Types:      types,
		SortBy:     search.SortBy(req.Sort),
		FilterTags: req.Tags,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("query", req.Query).Msg("Search failed")
		rw.InternalError("Search failed")
		return
	}

	highlights := make(map[string]string, len(results.Items))
	for _, item := range results.Items {
		highlights[item.ID] = search.HighlightSearchResult(item.Title, req.Query)
	}

	rw.SuccessWithPagination(SearchResponse{
		Query:      req.Query,
		Items:      results.Items,
		Highlights: highlights,
	}, &PaginationMeta{
		Page:       results.CurrentPage,
		PageSize:   req.PageSize,
		TotalPages: results.TotalPages,
		Total:      results.TotalResults,
		Count:      len(results.Items),
		HasMore:    results.CurrentPage < results.TotalPages,
	})
}

// RecentSearches returns the most recent distinct queries, newest first.
func (h *Handler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.query.RecentSearches())
}

// ClearSearchCache drops every cached search page.
func (h *Handler) ClearSearchCache(w http.ResponseWriter, r *http.Request) {
	h.query.ClearSearchCache()
	NewResponseWriter(w, r).Success(map[string]bool{"cleared": true})
}
