// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/curriculum/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrMalformed marks content whose metadata cannot be decoded or lacks a
// required field.
var ErrMalformed = errors.New("malformed content metadata")

const frontmatterDelimiter = "---"

// Document is a parsed markdown file.
type Document struct {
	Meta        models.ContentMetadata
	Frontmatter models.Frontmatter
	Body        string
}

// ParseMarkdown splits a markdown file into its YAML frontmatter and body.
// A file without a leading "---" line has empty metadata and is all body.
func ParseMarkdown(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	header, body, ok := splitFrontmatter(text)
	doc := &Document{Frontmatter: models.Frontmatter{}, Body: body}
	if !ok {
		return doc, nil
	}

	if err := yaml.Unmarshal([]byte(header), &doc.Meta); err != nil {
		return nil, fmt.Errorf("%w: frontmatter: %v", ErrMalformed, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(header), &raw); err != nil {
		return nil, fmt.Errorf("%w: frontmatter: %v", ErrMalformed, err)
	}
	for k, v := range raw {
		doc.Frontmatter[k] = models.NewFrontmatterValue(v)
	}
	return doc, nil
}

// splitFrontmatter returns the YAML header and the body. ok is false when the
// text does not open with a delimiter line or the block is never closed.
func splitFrontmatter(text string) (header, body string, ok bool) {
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return "", text, false
	}
	rest := text[len(frontmatterDelimiter)+1:]

	// Closing delimiter may be the very first line of rest (empty header).
	if strings.HasPrefix(rest, frontmatterDelimiter+"\n") || rest == frontmatterDelimiter {
		return "", strings.TrimPrefix(strings.TrimPrefix(rest, frontmatterDelimiter), "\n"), true
	}

	idx := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	if idx < 0 {
		if strings.HasSuffix(rest, "\n"+frontmatterDelimiter) {
			return rest[:len(rest)-len(frontmatterDelimiter)-1], "", true
		}
		return "", text, false
	}
	return rest[:idx], rest[idx+len(frontmatterDelimiter)+2:], true
}

// FirstHeading returns the text of the first "# " heading in body, or "".
func FirstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}

// FirstParagraph returns the first prose paragraph of a markdown document,
// skipping frontmatter, headings and blank lines. Lines are joined with a space.
func FirstParagraph(markdown string) string {
	text := strings.ReplaceAll(markdown, "\r\n", "\n")
	if _, body, ok := splitFrontmatter(text); ok {
		text = body
	}

	var para []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			if len(para) > 0 {
				return strings.Join(para, " ")
			}
		case strings.HasPrefix(trimmed, "#"):
			if len(para) > 0 {
				return strings.Join(para, " ")
			}
		default:
			para = append(para, trimmed)
		}
	}
	return strings.Join(para, " ")
}
