// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package content

import (
	"context"

	"github.com/tomtom215/curriculum/internal/models"
)

// AllContent returns every indexable item: courses, their lessons and all
// exercises. The list is cached as a whole and reused until Reset.
func (s *Store) AllContent(ctx context.Context) []models.ContentMetadata {
	if cached, ok := lookup(s.corpus, listKey); ok {
		return cached
	}

	courses := s.ListCourses(ctx)
	items := make([]models.ContentMetadata, 0, len(courses))
	for i := range courses {
		items = append(items, courses[i])

		structure := s.LoadCourseStructure(ctx, courses[i].ID)
		if structure == nil {
			continue
		}
		for _, m := range structure.Modules {
			for _, l := range m.Lessons {
				items = append(items, l.ContentMetadata)
			}
		}
	}
	items = append(items, s.ListExercises(ctx)...)

	log := s.logger(ctx)
	log.Info().Int("items", len(items)).Int("courses", len(courses)).Msg("Content corpus assembled")

	s.corpus.Set(listKey, items)
	return items
}

// FindByID returns the corpus item with the given id.
func (s *Store) FindByID(ctx context.Context, id string) (models.ContentMetadata, bool) {
	for _, item := range s.AllContent(ctx) {
		if item.ID == id {
			return item, true
		}
	}
	return models.ContentMetadata{}, false
}
