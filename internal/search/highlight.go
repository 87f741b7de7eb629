// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minHighlightToken is the shortest query token that gets highlighted.
const minHighlightToken = 2

// HighlightSearchResult wraps every case-insensitive occurrence of each query
// token in <mark></mark>, keeping the original casing.
//
// Tokens are applied one after another, so a token that also matches inside
// an earlier token's markup or highlight is wrapped again.
func HighlightSearchResult(text, query string) string {
	for _, token := range strings.Fields(query) {
		if utf8.RuneCountInString(token) < minHighlightToken {
			continue
		}
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(token))
		text = re.ReplaceAllString(text, "<mark>$0</mark>")
	}
	return text
}
