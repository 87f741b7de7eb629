// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
)

// Store is a named, unbounded key/value cache.
type Store[V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[string]V
	stats   Stats
}

// Stats tracks cache performance.
type Stats struct {
	Name      string  `json:"name"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Clears    int64   `json:"clears"`
	TotalKeys int     `json:"total_keys"`
	HitRate   float64 `json:"hit_rate"` // percentage of lookups that hit
}

// New creates an empty Store. The name labels stats and metrics.
func New[V any](name string) *Store[V] {
	return &Store[V]{
		name:    name,
		entries: make(map[string]V),
	}
}

// Name returns the store name.
func (s *Store[V]) Name() string {
	return s.name
}

// Get returns the value for key and whether it was present.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	if ok {
		s.stats.Hits++
	} else {
		s.stats.Misses++
	}
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// Clear drops every entry.
func (s *Store[V]) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]V)
	s.stats.Clears++
	s.mu.Unlock()
}

// GetStats returns a snapshot of the counters.
func (s *Store[V]) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.stats
	st.Name = s.name
	st.TotalKeys = len(s.entries)
	if lookups := st.Hits + st.Misses; lookups > 0 {
		st.HitRate = float64(st.Hits) / float64(lookups) * 100
	}
	return st
}

// GenerateKey derives a compact key from a prefix and the JSON encoding of params.
// Structurally equal params always produce the same key.
func GenerateKey(prefix string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", prefix, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}
