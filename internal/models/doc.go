// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

/*
Package models defines the content data structures shared by the store,
recommendation, search and API packages.

Content Hierarchy:

  - CourseStructure: a course with its ordered modules
  - Module: an ordered list of LessonMetadata
  - Lesson: LessonMetadata plus markdown body and frontmatter
  - Exercise: standalone markdown item grouped by category

Every indexable item is described by ContentMetadata, which is also the unit
scored by the similarity engine and returned by search.

Wire Format:

Metadata arrives as meta.json (camelCase keys) or as a YAML frontmatter block at
the top of a markdown file. Both decode into ContentMetadata; fields that are
not modeled survive in Frontmatter as FrontmatterValue.

Lenient Fields:

  - Timestamp accepts RFC 3339 or YYYY-MM-DD
  - FlexString accepts a string or a number ("15 min" or 15)
*/
package models
