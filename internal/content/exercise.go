// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/curriculum/internal/models"
)

// LoadExercise loads an exercise either as (category, id) or, with an empty
// exerciseID, from a combined "category/id" path. Both forms share the cache
// entry keyed by the resolved "category/id".
func (s *Store) LoadExercise(ctx context.Context, categoryOrPath, exerciseID string) *models.Exercise {
	category, id := resolveExercise(categoryOrPath, exerciseID)
	if id == "" {
		return nil
	}
	key := exerciseKey(category, id)
	if cached, ok := lookup(s.exercises, key); ok {
		return cached
	}

	path := exercisePath(category, id)
	data, ok := s.fetch(ctx, "exercise", path)
	if !ok {
		return nil
	}

	doc, err := ParseMarkdown(data)
	if err != nil {
		s.malformed(ctx, "exercise", path, err)
		return nil
	}

	meta := doc.Meta
	if meta.Title == "" {
		meta.Title = FirstHeading(doc.Body)
	}
	if meta.Title == "" {
		s.malformed(ctx, "exercise", path, fmt.Errorf("exercise %s has no title", key))
		return nil
	}
	if meta.ID == "" {
		meta.ID = key
	}
	meta.Type = models.ContentTypeExercise

	exercise := &models.Exercise{
		ContentMetadata: meta,
		Category:        category,
		Content:         doc.Body,
		Frontmatter:     doc.Frontmatter,
	}
	s.exercises.Set(key, exercise)
	return exercise
}

// ListExercises walks exercises/ and exercises/{category}/ and loads every
// markdown file found. Unloadable exercises are left out.
func (s *Store) ListExercises(ctx context.Context) []models.ContentMetadata {
	if cached, ok := lookup(s.exerciseList, listKey); ok {
		return cached
	}

	categories, ok := s.listDirectory(ctx, "exercise", exercisesListingPath())
	if !ok {
		return []models.ContentMetadata{}
	}

	exercises := make([]models.ContentMetadata, 0)
	for _, c := range categories {
		category, ok := directoryName(c)
		if !ok {
			continue
		}
		files, ok := s.listDirectory(ctx, "exercise", exerciseCategoryListingPath(category))
		if !ok {
			continue
		}
		for _, f := range files {
			if f.Type != models.EntryFile || !strings.HasSuffix(f.Name, markdownExt) {
				continue
			}
			if ex := s.LoadExercise(ctx, category, f.Name); ex != nil {
				exercises = append(exercises, ex.ContentMetadata)
			}
		}
	}

	s.exerciseList.Set(listKey, exercises)
	return exercises
}
