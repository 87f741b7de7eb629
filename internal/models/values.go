// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Timestamp is a time that decodes from RFC 3339 or YYYY-MM-DD.
// The zero value encodes as null.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses s with the accepted layouts. Empty input yields the zero value.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. YAML resolves bare dates to
// !!timestamp, so the node value is parsed rather than decoded.
func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("timestamp must be a scalar, line %d", node.Line)
	}
	if node.Tag == "!!null" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// FlexString holds a value authored either as a string or as a number.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number: %w", err)
		}
		*f = FlexString(n.String())
		return nil
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FlexString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar, line %d", node.Line)
	}
	if node.Tag == "!!null" {
		*f = ""
		return nil
	}
	*f = FlexString(node.Value)
	return nil
}

// ValueKind tags a FrontmatterValue.
type ValueKind uint8

const (
	KindRaw ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// FrontmatterValue is one frontmatter field: a string, number, bool or list of
// strings. Anything else (maps, mixed lists) is kept untouched in Raw.
type FrontmatterValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
	List []string
	Raw  any
}

// NewFrontmatterValue classifies a value decoded by yaml.v3.
func NewFrontmatterValue(v any) FrontmatterValue {
	switch x := v.(type) {
	case string:
		return FrontmatterValue{Kind: KindString, Str: x}
	case bool:
		return FrontmatterValue{Kind: KindBool, Bool: x}
	case int:
		return FrontmatterValue{Kind: KindNumber, Num: float64(x)}
	case int64:
		return FrontmatterValue{Kind: KindNumber, Num: float64(x)}
	case uint64:
		return FrontmatterValue{Kind: KindNumber, Num: float64(x)}
	case float64:
		return FrontmatterValue{Kind: KindNumber, Num: x}
	case time.Time:
		if x.Equal(x.Truncate(24*time.Hour)) && x.Location() == time.UTC {
			return FrontmatterValue{Kind: KindString, Str: x.Format(dateLayout)}
		}
		return FrontmatterValue{Kind: KindString, Str: x.Format(time.RFC3339)}
	case []any:
		list := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return FrontmatterValue{Kind: KindRaw, Raw: v}
			}
			list = append(list, s)
		}
		return FrontmatterValue{Kind: KindList, List: list}
	default:
		return FrontmatterValue{Kind: KindRaw, Raw: v}
	}
}

// String renders scalar values as text. Lists are comma-joined.
func (v FrontmatterValue) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindList:
		return strings.Join(v.List, ", ")
	default:
		if v.Raw == nil {
			return ""
		}
		return fmt.Sprint(v.Raw)
	}
}

// MarshalJSON encodes the natural JSON form of the value.
func (v FrontmatterValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindList:
		return json.Marshal(v.List)
	default:
		return json.Marshal(v.Raw)
	}
}

// Frontmatter is the full key/value header of a markdown document.
type Frontmatter map[string]FrontmatterValue

// Lookup returns the value for key and whether it is present.
func (f Frontmatter) Lookup(key string) (FrontmatterValue, bool) {
	v, ok := f[key]
	return v, ok
}
