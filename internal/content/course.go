// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package content

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/curriculum/internal/models"
	"golang.org/x/sync/errgroup"
)

// LoadCourseStructure loads a course with all of its modules and lessons.
//
// Modules and lessons are fetched one at a time in declared order; a missing
// module meta or lesson file is skipped. Both levels are then sorted ascending
// by order. Returns nil when the course meta is missing or malformed.
func (s *Store) LoadCourseStructure(ctx context.Context, courseID string) *models.CourseStructure {
	if cached, ok := lookup(s.courses, courseID); ok {
		return cached
	}

	meta := s.fetchCourseMeta(ctx, courseID)
	if meta == nil {
		return nil
	}

	description := meta.Description
	if description == "" && s.opts.ReadmeFallback {
		description = s.readmeDescription(ctx, courseID)
	}

	course := &models.CourseStructure{
		ID:          meta.ID,
		Title:       meta.Title,
		Description: description,
		Icon:        meta.Icon,
		Gradient:    meta.Gradient,
		Tags:        meta.Tags,
		Difficulty:  meta.Difficulty,
		Modules:     make([]models.Module, 0, len(meta.Modules)),
	}

	for _, moduleID := range meta.Modules {
		module := s.loadModule(ctx, courseID, moduleID)
		if module == nil {
			continue
		}
		course.Modules = append(course.Modules, *module)
	}
	sort.SliceStable(course.Modules, func(i, j int) bool {
		return course.Modules[i].Order < course.Modules[j].Order
	})

	s.courses.Set(courseID, course)
	return course
}

// loadModule fetches one module meta and its lessons, sequentially.
func (s *Store) loadModule(ctx context.Context, courseID, moduleID string) *models.Module {
	var mm models.ModuleMetadata
	if !s.fetchJSON(ctx, "module", moduleMetaPath(courseID, moduleID), &mm) {
		return nil
	}
	if mm.ID == "" {
		mm.ID = moduleID
	}
	if mm.Title == "" {
		mm.Title = moduleID
	}

	module := &models.Module{
		ID:          mm.ID,
		Title:       mm.Title,
		Description: mm.Description,
		Order:       mm.Order,
		Lessons:     make([]models.LessonMetadata, 0, len(mm.Lessons)),
	}
	for _, file := range mm.Lessons {
		lesson := s.LoadLesson(ctx, courseID, moduleID, file)
		if lesson == nil {
			continue
		}
		module.Lessons = append(module.Lessons, lesson.LessonMetadata)
	}
	sort.SliceStable(module.Lessons, func(i, j int) bool {
		return module.Lessons[i].Order < module.Lessons[j].Order
	})
	return module
}

// fetchCourseMeta fetches and validates courses/{id}/meta.json.
func (s *Store) fetchCourseMeta(ctx context.Context, courseID string) *models.ContentMetadata {
	path := courseMetaPath(courseID)
	var meta models.ContentMetadata
	if !s.fetchJSON(ctx, "course", path, &meta) {
		return nil
	}
	if strings.TrimSpace(meta.Title) == "" {
		s.malformed(ctx, "course", path, fmt.Errorf("course %s has no title", courseID))
		return nil
	}
	// The directory name is the course id; everything else addresses courses by it.
	if meta.ID != "" && meta.ID != courseID {
		log := s.logger(ctx)
		log.Warn().Str("course_id", courseID).Str("meta_id", meta.ID).Msg("Course meta id differs from directory, using directory name")
	}
	meta.ID = courseID
	if meta.Type == "" {
		meta.Type = models.ContentTypeCourse
	}
	return &meta
}

// readmeDescription returns the first paragraph of the optional README.
func (s *Store) readmeDescription(ctx context.Context, courseID string) string {
	data, err := s.fetcher.Fetch(ctx, courseReadmePath(courseID))
	if err != nil {
		// The README is optional, so a miss is not worth a warning.
		log := s.logger(ctx)
		log.Debug().Err(err).Str("course_id", courseID).Msg("No README for description fallback")
		return ""
	}
	return FirstParagraph(string(data))
}

// ListCourses returns the metadata of every course in the listing, in listing
// order. Courses whose meta cannot be loaded are omitted.
func (s *Store) ListCourses(ctx context.Context) []models.ContentMetadata {
	if cached, ok := lookup(s.courseList, listKey); ok {
		return cached
	}

	entries, ok := s.listDirectory(ctx, "course", coursesListingPath())
	if !ok {
		return []models.ContentMetadata{}
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if id, ok := directoryName(e); ok {
			ids = append(ids, id)
		}
	}

	// Each slot is written by exactly one goroutine; order is restored by index.
	metas := make([]*models.ContentMetadata, len(ids))
	var g errgroup.Group
	g.SetLimit(s.opts.ListConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			metas[i] = s.fetchCourseMeta(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	courses := make([]models.ContentMetadata, 0, len(metas))
	for _, m := range metas {
		if m != nil {
			courses = append(courses, *m)
		}
	}

	log := s.logger(ctx)
	log.Debug().Int("listed", len(ids)).Int("loaded", len(courses)).Msg("Course listing loaded")

	s.courseList.Set(listKey, courses)
	return courses
}
