// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package content

import (
	"errors"
	"testing"

	"github.com/tomtom215/curriculum/internal/models"
)

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantBody  string
		wantKeys  int
	}{
		{
			name:      "frontmatter and body",
			input:     "---\ntitle: Closures\ndifficulty: intermediate\n---\n# Closures\n\nBody",
			wantTitle: "Closures",
			wantBody:  "# Closures\n\nBody",
			wantKeys:  2,
		},
		{
			name:     "no frontmatter",
			input:    "# Heading\ntext",
			wantBody: "# Heading\ntext",
		},
		{
			name:      "crlf and bom",
			input:     "\xef\xbb\xbf---\r\ntitle: Windows\r\n---\r\nline",
			wantTitle: "Windows",
			wantBody:  "line",
			wantKeys:  1,
		},
		{
			name:     "empty header",
			input:    "---\n---\nonly body",
			wantBody: "only body",
		},
		{
			name:     "unterminated header is body",
			input:    "---\ntitle: x\nno close",
			wantBody: "---\ntitle: x\nno close",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := ParseMarkdown([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseMarkdown() error = %v", err)
			}
			if doc.Meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", doc.Meta.Title, tt.wantTitle)
			}
			if doc.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", doc.Body, tt.wantBody)
			}
			if len(doc.Frontmatter) != tt.wantKeys {
				t.Errorf("Frontmatter keys = %d, want %d", len(doc.Frontmatter), tt.wantKeys)
			}
		})
	}
}

func TestParseMarkdownTypedFields(t *testing.T) {
	t.Parallel()

	doc, err := ParseMarkdown([]byte("---\ntitle: T\ntags: [a, b]\nprerequisites: [x]\nestimatedTime: 15 min\norder: 3\n---\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Meta.Tags) != 2 || doc.Meta.Prerequisites[0] != "x" {
		t.Errorf("lists = %v / %v", doc.Meta.Tags, doc.Meta.Prerequisites)
	}
	if doc.Meta.EstimatedTime != "15 min" || doc.Meta.Order != 3 {
		t.Errorf("estimatedTime/order = %q/%d", doc.Meta.EstimatedTime, doc.Meta.Order)
	}
	if v, _ := doc.Frontmatter.Lookup("order"); v.Kind != models.KindNumber || v.Num != 3 {
		t.Errorf("order value = %+v", v)
	}
}

func TestParseMarkdownMalformed(t *testing.T) {
	t.Parallel()

	_, err := ParseMarkdown([]byte("---\ntitle: [unclosed\n---\nbody"))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestFirstParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"heading then paragraph", "# Title\n\nFirst line\nsecond line\n\nNext", "First line second line"},
		{"paragraph ends at heading", "Intro text\n## Section\nmore", "Intro text"},
		{"frontmatter skipped", "---\ntitle: x\n---\nHello", "Hello"},
		{"only headings", "# A\n## B", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FirstParagraph(tt.input); got != tt.want {
				t.Errorf("FirstParagraph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	if got := FirstHeading("intro\n## Sub\n#  Main Title \n"); got != "Main Title" {
		t.Errorf("FirstHeading() = %q", got)
	}
	if got := FirstHeading("#NoSpace"); got != "" {
		t.Errorf("FirstHeading() = %q, want empty", got)
	}
}

func TestResolveExercise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b         string
		wantCategory string
		wantID       string
	}{
		{"go", "fizzbuzz", "go", "fizzbuzz"},
		{"go", "fizzbuzz.md", "go", "fizzbuzz"},
		{"go/fizzbuzz", "", "go", "fizzbuzz"},
		{"exercises/go/fizzbuzz.md", "", "go", "fizzbuzz"},
		{"standalone", "", "", "standalone"},
	}
	for _, tt := range tests {
		c, id := resolveExercise(tt.a, tt.b)
		if c != tt.wantCategory || id != tt.wantID {
			t.Errorf("resolveExercise(%q, %q) = %q, %q", tt.a, tt.b, c, id)
		}
	}
}
