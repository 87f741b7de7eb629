// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

// Package recommend scores content-to-content similarity and derives related
// content, prerequisite chains, relationship graphs and learning paths from
// the content corpus.
//
// # Scoring
//
// CalculateSimilarity is a fixed weighted sum over content metadata:
//
//	sim(a, b) = 0.7  * |tags(a) ∩ tags(b)| / max(|tags(a)|, |tags(b)|)
//	          + 0.15 if difficulties are equal (0.05 if adjacent)
//	          + 0.1  * |words(a) ∩ words(b)| / max(|words(a)|, |words(b)|)
//	          + 0.05 if types are equal
//
// The overlaps are counted over a's tags and words, so the score is not
// guaranteed to be symmetric. Identical ids score 0 and the total is capped at 1.
//
// Relationship graphs use a separate tag cosine (TagRelationshipScore); the two
// measures are not interchangeable.
//
// # Learning Paths
//
// GenerateLearningPath is a bounded two-hop heuristic, not a graph search:
// without a goal it appends the start item's closest neighbours, and with a
// goal it inserts "bridge" items similar to both ends before the goal. It never
// follows prerequisite edges, so prerequisite cycles cannot make it loop.
//
// # Thread Safety
//
// Resolver holds no mutable state of its own; all caching happens in the
// CorpusProvider. It is safe for concurrent use when the provider is.
package recommend
