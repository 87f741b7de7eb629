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

// LoadLesson loads one lesson file. lessonID may be given with or without the
// ".md" extension; both resolve to the same cache entry
// "courseID/moduleID/lessonID".
//
// The lesson title comes from frontmatter, falling back to the first "# "
// heading. A lesson with neither is malformed and yields nil.
func (s *Store) LoadLesson(ctx context.Context, courseID, moduleID, lessonID string) *models.Lesson {
	lessonID = strings.TrimSuffix(lessonID, markdownExt)
	key := lessonKey(courseID, moduleID, lessonID)
	if cached, ok := lookup(s.lessons, key); ok {
		return cached
	}

	file := withMarkdownExt(lessonID)
	path := lessonPath(courseID, moduleID, file)
	data, ok := s.fetch(ctx, "lesson", path)
	if !ok {
		return nil
	}

	doc, err := ParseMarkdown(data)
	if err != nil {
		s.malformed(ctx, "lesson", path, err)
		return nil
	}

	meta := doc.Meta
	if meta.Title == "" {
		meta.Title = FirstHeading(doc.Body)
	}
	if meta.Title == "" {
		s.malformed(ctx, "lesson", path, fmt.Errorf("lesson %s has no title", key))
		return nil
	}
	if meta.ID == "" {
		meta.ID = key
	}
	meta.Type = models.ContentTypeLesson

	lesson := &models.Lesson{
		LessonMetadata: models.LessonMetadata{
			ContentMetadata: meta,
			CourseID:        courseID,
			ModuleID:        moduleID,
			File:            file,
		},
		Content:     doc.Body,
		Frontmatter: doc.Frontmatter,
	}
	s.lessons.Set(key, lesson)
	return lesson
}
