// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package search

import (
	"sort"
	"strings"

	"github.com/tomtom215/curriculum/internal/models"
)

// SortBy selects the result ordering.
type SortBy string

// Sort orders. Relevance keeps the searcher's order.
const (
	SortRelevance SortBy = "relevance"
	SortTitle     SortBy = "title"
	SortDate      SortBy = "date"
)

// Valid reports whether s is a known sort order. Empty means relevance.
func (s SortBy) Valid() bool {
	switch s {
	case "", SortRelevance, SortTitle, SortDate:
		return true
	default:
		return false
	}
}

// sortItems returns a sorted copy of items. Title order is case-insensitive;
// date order is most recently updated first with undated items last.
func sortItems(items []models.ContentMetadata, by SortBy) []models.ContentMetadata {
	out := make([]models.ContentMetadata, len(items))
	copy(out, items)

	switch by {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Updated.After(out[j].Updated.Time)
		})
	}
	return out
}

// filterByTags keeps items sharing at least one tag with tags. An empty tag
// list keeps everything.
func filterByTags(items []models.ContentMetadata, tags []string) []models.ContentMetadata {
	if len(tags) == 0 {
		return items
	}
	wanted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		wanted[t] = struct{}{}
	}

	out := make([]models.ContentMetadata, 0, len(items))
	for _, item := range items {
		for _, t := range item.Tags {
			if _, ok := wanted[t]; ok {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// paginate slices one 1-indexed page. There is always at least one page.
func paginate(items []models.ContentMetadata, page, pageSize int) models.SearchResults {
	total := len(items)
	totalPages := max(1, (total+pageSize-1)/pageSize)

	offset := (page - 1) * pageSize
	pageItems := []models.ContentMetadata{}
	if offset < total {
		end := min(offset+pageSize, total)
		pageItems = items[offset:end]
	}

	return models.SearchResults{
		Items:        pageItems,
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}

// emptyResults is the result of a blank query.
func emptyResults() models.SearchResults {
	return models.SearchResults{Items: []models.ContentMetadata{}, CurrentPage: 1, TotalPages: 1}
}
