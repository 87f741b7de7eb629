// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package models

// RelationshipType is the kind of edge between two content items.
type RelationshipType string

const (
	RelationshipSimilar      RelationshipType = "similar"
	RelationshipPrerequisite RelationshipType = "prerequisite"
	RelationshipNext         RelationshipType = "next"
	RelationshipPrevious     RelationshipType = "previous"
)

// RelatedContentItem is a recommendation entry.
type RelatedContentItem struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	Type           ContentType `json:"type"`
	Tags           []string    `json:"tags,omitempty"`
	Similarity     float64     `json:"similarity"` // 0..1
	IsPrerequisite bool        `json:"isPrerequisite,omitempty"`
}

// ContentRelationship is a directed edge in the content graph.
type ContentRelationship struct {
	SourceID         string           `json:"sourceId"`
	TargetID         string           `json:"targetId"`
	RelationshipType RelationshipType `json:"relationshipType"`
	Strength         float64          `json:"strength"` // 0..1
}

// SearchResults is one page of search hits.
type SearchResults struct {
	Items        []ContentMetadata `json:"items"`
	CurrentPage  int               `json:"currentPage"` // 1-indexed
	TotalPages   int               `json:"totalPages"`
	TotalResults int               `json:"totalResults"`
}

// RelatedItemFrom builds a RelatedContentItem from metadata with the given score.
func RelatedItemFrom(m *ContentMetadata, similarity float64) RelatedContentItem {
	return RelatedContentItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Type:        m.Type,
		Tags:        m.Tags,
		Similarity:  similarity,
	}
}
