// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package content

import (
	"strings"

	"github.com/tomtom215/curriculum/internal/models"
)

const markdownExt = ".md"

func coursesListingPath() string { return "courses/" }

// directoryName returns the name of a listing entry that denotes a directory.
// Directory entries carry a trailing slash; entries without one are not
// treated as directories even when typed as such.
func directoryName(e models.DirectoryEntry) (string, bool) {
	if e.Type != models.EntryDirectory || !strings.HasSuffix(e.Name, "/") {
		return "", false
	}
	name := strings.TrimSuffix(e.Name, "/")
	return name, name != ""
}

func courseMetaPath(courseID string) string {
	return "courses/" + courseID + "/meta.json"
}

func courseReadmePath(courseID string) string {
	return "courses/" + courseID + "/README.md"
}

func moduleMetaPath(courseID, moduleID string) string {
	return "courses/" + courseID + "/modules/" + moduleID + "/meta.json"
}

func lessonPath(courseID, moduleID, file string) string {
	return "courses/" + courseID + "/modules/" + moduleID + "/lessons/" + file
}

func exercisesListingPath() string { return "exercises/" }

func exerciseCategoryListingPath(category string) string {
	return "exercises/" + category + "/"
}

func exercisePath(category, id string) string {
	if category == "" {
		return "exercises/" + id + markdownExt
	}
	return "exercises/" + category + "/" + id + markdownExt
}

// lessonKey is the composite cache key and default id of a lesson.
func lessonKey(courseID, moduleID, lessonID string) string {
	return courseID + "/" + moduleID + "/" + lessonID
}

// exerciseKey is the resolved cache key and default id of an exercise.
func exerciseKey(category, id string) string {
	if category == "" {
		return id
	}
	return category + "/" + id
}

// withMarkdownExt appends ".md" when absent.
func withMarkdownExt(name string) string {
	if strings.HasSuffix(name, markdownExt) {
		return name
	}
	return name + markdownExt
}

// resolveExercise turns (category, id) or a single "category/id" path into
// its parts. A ".md" suffix on the id is ignored.
func resolveExercise(categoryOrPath, exerciseID string) (category, id string) {
	if exerciseID != "" {
		return strings.Trim(categoryOrPath, "/"), strings.TrimSuffix(exerciseID, markdownExt)
	}
	p := strings.Trim(categoryOrPath, "/")
	p = strings.TrimPrefix(p, "exercises/")
	p = strings.TrimSuffix(p, markdownExt)
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i], p[i+1:]
	}
	return "", p
}
