// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

// Package cache provides the process-lifetime keyed caches used by the
// content store and the search layer.
//
// Entries are never evicted by size or age. They are created on the first
// successful load and only disappear through Delete or Clear, which callers
// invoke on an explicit reset.
//
// A Store is safe for concurrent use. The lock is held only for the map
// operation itself, so two goroutines that miss the same key both compute the
// value and the later Set wins. Callers that need request coalescing must add
// it themselves.
package cache
