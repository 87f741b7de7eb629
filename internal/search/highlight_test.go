// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package search

import "testing"

func TestHighlightSearchResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{"preserves casing", "This is a JavaScript tutorial", "javascript", "This is a <mark>JavaScript</mark> tutorial"},
		{"empty query", "unchanged text", "", "unchanged text"},
		{"whitespace query", "unchanged text", "   ", "unchanged text"},
		{"short tokens dropped", "a b c", "a b", "a b c"},
		{"every occurrence", "Go go GO", "go", "<mark>Go</mark> <mark>go</mark> <mark>GO</mark>"},
		{"multiple tokens", "Intro to Go channels", "intro channels", "<mark>Intro</mark> to Go <mark>channels</mark>"},
		{"regex metacharacters escaped", "use c++ today", "c++", "use <mark>c++</mark> today"},
		{"overlapping tokens double wrap", "Go channels", "channels chan", "Go <mark><mark>chan</mark>nels</mark>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HighlightSearchResult(tt.text, tt.query); got != tt.want {
				t.Errorf("HighlightSearchResult() = %q, want %q", got, tt.want)
			}
		})
	}
}
