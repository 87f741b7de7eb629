// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

// Package search provides the cached, paginated and debounced search layer
// over content metadata.
//
// A Query owns a single debounce slot. PerformSearch records the query, marks
// the state as loading and schedules the worker after the debounce delay; a
// newer call supersedes the pending one, which then never runs. The worker
// sorts, tag-filters and paginates whatever the Searcher returns, caches the
// page under the (query, options) key and publishes it to subscribers.
//
// Two Searcher implementations are provided: CorpusSearcher performs a
// case-insensitive substring match over the corpus, IndexSearcher queries an
// in-memory bleve index built from the same corpus.
package search
