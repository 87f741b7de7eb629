// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package models

// ContentType identifies the kind of indexable item.
type ContentType string

const (
	ContentTypeCourse   ContentType = "course"
	ContentTypeLesson   ContentType = "lesson"
	ContentTypeExercise ContentType = "exercise"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeCourse, ContentTypeLesson, ContentTypeExercise:
		return true
	}
	return false
}

// Difficulty is an ordered level. The empty value means absent.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank returns 1..3 on the beginner..advanced scale, or 0 when absent or unknown.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	}
	return 0
}

// ContentMetadata describes any indexable content item.
type ContentMetadata struct {
	ID            string      `json:"id" yaml:"id"`
	Title         string      `json:"title" yaml:"title"`
	Type          ContentType `json:"type" yaml:"type"`
	Slug          string      `json:"slug,omitempty" yaml:"slug"`
	Description   string      `json:"description,omitempty" yaml:"description"`
	Tags          []string    `json:"tags,omitempty" yaml:"tags"`
	Difficulty    Difficulty  `json:"difficulty,omitempty" yaml:"difficulty"`
	Prerequisites []string    `json:"prerequisites,omitempty" yaml:"prerequisites"`
	EstimatedTime FlexString  `json:"estimatedTime,omitempty" yaml:"estimatedTime"`
	Order         int         `json:"order" yaml:"order"`
	Created       Timestamp   `json:"created" yaml:"created"`
	Updated       Timestamp   `json:"updated" yaml:"updated"`

	// Course-only fields.
	Modules  []string `json:"modules,omitempty" yaml:"modules"`
	Icon     string   `json:"icon,omitempty" yaml:"icon"`
	Gradient string   `json:"gradient,omitempty" yaml:"gradient"`
}

// CourseStructure is a fully loaded course.
type CourseStructure struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon,omitempty"`
	Gradient    string     `json:"gradient,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Modules     []Module   `json:"modules"`
}

// ModuleMetadata is the decoded modules/{id}/meta.json.
type ModuleMetadata struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Order       int      `json:"order"`
	Lessons     []string `json:"lessons"`
}

// Module is a module with its lessons sorted ascending by order.
type Module struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Order       int              `json:"order"`
	Lessons     []LessonMetadata `json:"lessons"`
}

// LessonMetadata is the frontmatter-derived header of a lesson.
type LessonMetadata struct {
	ContentMetadata
	CourseID string `json:"courseId"`
	ModuleID string `json:"moduleId"`
	File     string `json:"file"`
}

// Lesson is a lesson with its markdown body.
type Lesson struct {
	LessonMetadata
	Content     string      `json:"content"`
	Frontmatter Frontmatter `json:"frontmatter,omitempty"`
}

// Exercise is a standalone exercise document.
type Exercise struct {
	ContentMetadata
	Category    string      `json:"category"`
	Content     string      `json:"content"`
	Frontmatter Frontmatter `json:"frontmatter,omitempty"`
}

// DirectoryEntry is one element of a directory listing.
type DirectoryEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Directory listing entry types.
const (
	EntryDirectory = "directory"
	EntryFile      = "file"
)
