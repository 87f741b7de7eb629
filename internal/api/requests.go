// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/curriculum/internal/validation"
)

// RelatedRequest holds the query parameters of GET /content/related.
type RelatedRequest struct {
	ID        string  `validate:"required,contentid"`
	Limit     int     `validate:"min=1,max=50"`
	Threshold float64 `validate:"gte=0,lte=1"`
}

// ItemRequest holds the id parameter of single-item content endpoints.
type ItemRequest struct {
	ID string `validate:"required,contentid"`
}

// PathRequest holds the query parameters of GET /content/path.
type PathRequest struct {
	Start     string `validate:"required,contentid"`
	Goal      string `validate:"omitempty,contentid"`
	MaxLength int    `validate:"min=1,max=20"`
}

// RelationshipsRequest holds the query parameters of GET /content/relationships.
type RelationshipsRequest struct {
	Type string `validate:"omitempty,oneof=similar prerequisite"`
}

// SearchRequest holds the query parameters of GET /search.
type SearchRequest struct {
	Query    string   `validate:"max=200"`
	Types    []string `validate:"max=3,dive,oneof=course lesson exercise"`
	Sort     string   `validate:"omitempty,oneof=relevance title date"`
	Tags     []string `validate:"max=20,dive,min=1,max=64"`
	Page     int      `validate:"min=1,max=10000"`
	PageSize int      `validate:"min=1,max=100"`
}

// paramError reports an unparseable query parameter.
type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.value, e.name)
}

// intParam parses an integer query parameter, returning def when absent.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{name: name, value: raw}
	}
	return v, nil
}

// floatParam parses a float query parameter, returning def when absent.
func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{name: name, value: raw}
	}
	return v, nil
}

// listParam splits a comma-separated query parameter, dropping empty items.
func listParam(r *http.Request, name string) []string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateRequest validates req and writes a 400 response on failure.
// Returns false when the handler should stop.
func validateRequest(rw *ResponseWriter, req interface{}) bool {
	if err := validation.ValidateStruct(req); err != nil {
		apiErr := err.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}
