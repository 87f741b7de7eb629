// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package recommend

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/curriculum/internal/models"
)

// Similarity weights.
const (
	tagWeight            = 0.7
	sameDifficultyWeight = 0.15
	nearDifficultyWeight = 0.05
	titleWeight          = 0.1
	sameTypeWeight       = 0.05

	// minKeywordLength excludes short title words ("the", "and", "go").
	minKeywordLength = 4
)

// CalculateSimilarity scores how related b is to a, in [0, 1].
//
// Deterministic for a given pair. Tag and title overlaps are counted over a's
// side, so CalculateSimilarity(a, b) may differ from CalculateSimilarity(b, a).
func CalculateSimilarity(a, b *models.ContentMetadata) float64 {
	if a == nil || b == nil || a.ID == b.ID {
		return 0
	}

	score := tagWeight * tagOverlap(a.Tags, b.Tags)
	score += difficultyScore(a.Difficulty, b.Difficulty)
	score += titleWeight * keywordOverlap(a.Title, b.Title)
	if a.Type != "" && a.Type == b.Type {
		score += sameTypeWeight
	}

	return clamp(score)
}

// tagOverlap counts a's tags present in b, over the longer tag list.
func tagOverlap(a, b []string) float64 {
	denominator := max(len(a), len(b))
	if denominator == 0 {
		return 0
	}
	inB := toSet(b)
	shared := 0
	for _, tag := range a {
		if _, ok := inB[tag]; ok {
			shared++
		}
	}
	return float64(shared) / float64(denominator)
}

// difficultyScore rewards equal or adjacent difficulties. Both must be set.
func difficultyScore(a, b models.Difficulty) float64 {
	ra, rb := a.Rank(), b.Rank()
	if ra == 0 || rb == 0 {
		return 0
	}
	switch ra - rb {
	case 0:
		return sameDifficultyWeight
	case 1, -1:
		return nearDifficultyWeight
	default:
		return 0
	}
}

// keywordOverlap counts a's title keywords present in b's title, over the
// larger keyword count.
func keywordOverlap(a, b string) float64 {
	wa, wb := titleKeywords(a), titleKeywords(b)
	denominator := max(len(wa), len(wb))
	if denominator == 0 {
		return 0
	}
	inB := toSet(wb)
	shared := 0
	for _, w := range wa {
		if _, ok := inB[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(denominator)
}

// titleKeywords lowercases the title and keeps words of four or more runes.
func titleKeywords(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	words := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minKeywordLength {
			words = append(words, f)
		}
	}
	return words
}

// TagRelationshipScore is the cosine overlap |a ∩ b| / sqrt(|a|·|b|) over
// distinct tags. Used for the relationship graph only.
func TagRelationshipScore(a, b []string) float64 {
	sa, sb := toSet(a), toSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	shared := 0
	for tag := range sa {
		if _, ok := sb[tag]; ok {
			shared++
		}
	}
	return clamp(float64(shared) / math.Sqrt(float64(len(sa)*len(sb))))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func clamp(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
