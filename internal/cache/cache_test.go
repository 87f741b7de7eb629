// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreBasicOperations(t *testing.T) {
	t.Parallel()

	s := New[string]("lessons")

	if _, ok := s.Get("go/intro/hello"); ok {
		t.Fatal("expected miss on empty store")
	}

	s.Set("go/intro/hello", "Hello")
	v, ok := s.Get("go/intro/hello")
	if !ok || v != "Hello" {
		t.Fatalf("Get() = %q, %v", v, ok)
	}

	s.Set("go/intro/hello", "Hello again")
	if v, _ := s.Get("go/intro/hello"); v != "Hello again" {
		t.Errorf("Set did not replace value, got %q", v)
	}

	stats := s.GetStats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.TotalKeys != 1 || stats.Name != "lessons" {
		t.Errorf("unexpected stats %+v", stats)
	}
	if want := 200.0 / 3; stats.HitRate < want-0.01 || stats.HitRate > want+0.01 {
		t.Errorf("HitRate = %v, want %.2f", stats.HitRate, want)
	}
}

func TestStatsHitRateWithoutLookups(t *testing.T) {
	t.Parallel()

	s := New[string]("empty")
	s.Set("k", "v")
	if rate := s.GetStats().HitRate; rate != 0 {
		t.Errorf("HitRate = %v, want 0 before any lookup", rate)
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	s := New[int]("courses")
	for i := 0; i < 10; i++ {
		s.Set(fmt.Sprintf("k%d", i), i)
	}
	s.Clear()

	stats := s.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("TotalKeys = %d after Clear", stats.TotalKeys)
	}
	if stats.Clears != 1 {
		t.Errorf("Clears = %d, want 1", stats.Clears)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := New[int]("concurrent")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%5)
			if _, ok := s.Get(key); !ok {
				s.Set(key, n)
			}
		}(i)
	}
	wg.Wait()

	st := s.GetStats()
	if st.TotalKeys != 5 {
		t.Errorf("TotalKeys = %d, want 5", st.TotalKeys)
	}
	if st.Hits+st.Misses != 50 {
		t.Errorf("lookups = %d, want 50", st.Hits+st.Misses)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type opts struct {
		Query string `json:"query"`
		Page  int    `json:"page"`
	}

	a := GenerateKey("search", opts{"go", 1})
	b := GenerateKey("search", opts{"go", 1})
	c := GenerateKey("search", opts{"go", 2})

	if a != b {
		t.Errorf("equal params produced %q and %q", a, b)
	}
	if a == c {
		t.Error("different params produced the same key")
	}
	if len(a) != len("search:")+32 {
		t.Errorf("unexpected key %q", a)
	}
}
