// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/tomtom215/curriculum/internal/models"
	"github.com/tomtom215/curriculum/internal/transport"
)

// countingFetcher counts fetches per path.
type countingFetcher struct {
	next  transport.Fetcher
	mu    sync.Mutex
	calls map[string]int
}

func newCountingFetcher(next transport.Fetcher) *countingFetcher {
	return &countingFetcher{next: next, calls: make(map[string]int)}
}

func (c *countingFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	c.mu.Lock()
	c.calls[path]++
	c.mu.Unlock()
	return c.next.Fetch(ctx, path)
}

func (c *countingFetcher) count(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[path]
}

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

// testContent is a small content tree with deliberate gaps:
// module "missing" has no meta.json and lesson "ghost" has no file.
func testContent() fstest.MapFS {
	return fstest.MapFS{
		"courses/go/meta.json": file(`{
			"id": "go", "title": "Go Fundamentals", "type": "course",
			"tags": ["go", "backend"], "difficulty": "beginner",
			"modules": ["types", "missing", "intro"]
		}`),
		"courses/go/README.md": file("# Go Fundamentals\n\nLearn Go from\nscratch.\n\nSecond paragraph."),
		"courses/go/modules/intro/meta.json": file(`{
			"id": "intro", "title": "Introduction", "order": 1,
			"lessons": ["setup.md", "hello", "ghost.md"]
		}`),
		"courses/go/modules/intro/lessons/setup.md": file("---\ntitle: Setup\norder: 2\nestimatedTime: 10\ntags: [go, tooling]\n---\nInstall Go."),
		"courses/go/modules/intro/lessons/hello.md": file("---\ntitle: Hello World\norder: 1\nvideo: true\n---\nfmt.Println"),
		"courses/go/modules/types/meta.json": file(`{
			"id": "types", "title": "Types", "order": 0,
			"lessons": ["structs.md", "ints.md"]
		}`),
		"courses/go/modules/types/lessons/structs.md": file("# Structs\n\nNo frontmatter here."),
		"courses/go/modules/types/lessons/ints.md":    file("---\ntitle: Integers\n---\nint64"),

		"courses/rust/meta.json": file(`{"title": "Rust", "description": "Memory safety", "modules": []}`),
		"courses/broken/meta.json": file(`{"title": `),
		"courses/notes.txt":        file("not a course"),

		"exercises/go/fizzbuzz.md": file("---\ntitle: FizzBuzz\ndifficulty: beginner\ntags: [go, loops]\n---\nWrite it."),
		"exercises/go/untitled.md": file("no title anywhere"),
		"exercises/sql/joins.md":   file("---\nid: sql-joins\ntitle: Joins\n---\nSELECT"),
	}
}

func newTestStore(t *testing.T) (*Store, *countingFetcher) {
	t.Helper()
	cf := newCountingFetcher(transport.NewFSFetcher(testContent()))
	return NewStore(cf, DefaultOptions()), cf
}

func TestLoadCourseStructure(t *testing.T) {
	t.Parallel()

	s, cf := newTestStore(t)
	ctx := context.Background()

	course := s.LoadCourseStructure(ctx, "go")
	if course == nil {
		t.Fatal("expected course")
	}
	if course.Description != "Learn Go from scratch." {
		t.Errorf("Description = %q, want README first paragraph", course.Description)
	}

	// "missing" module is skipped, the rest sorted by order.
	if len(course.Modules) != 2 {
		t.Fatalf("modules = %d, want 2", len(course.Modules))
	}
	if course.Modules[0].ID != "types" || course.Modules[1].ID != "intro" {
		t.Errorf("module order = %s, %s", course.Modules[0].ID, course.Modules[1].ID)
	}

	intro := course.Modules[1]
	if len(intro.Lessons) != 2 {
		t.Fatalf("intro lessons = %d, want 2 (ghost skipped)", len(intro.Lessons))
	}
	if intro.Lessons[0].Title != "Hello World" || intro.Lessons[1].Title != "Setup" {
		t.Errorf("lesson order = %q, %q", intro.Lessons[0].Title, intro.Lessons[1].Title)
	}

	// Both lessons in "types" default to order 0 and keep declared order.
	types := course.Modules[0]
	if types.Lessons[0].Title != "Structs" || types.Lessons[1].Title != "Integers" {
		t.Errorf("stable order broken: %q, %q", types.Lessons[0].Title, types.Lessons[1].Title)
	}

	for _, m := range course.Modules {
		for i := 1; i < len(m.Lessons); i++ {
			if m.Lessons[i-1].Order > m.Lessons[i].Order {
				t.Errorf("module %s lessons not ascending", m.ID)
			}
		}
	}

	again := s.LoadCourseStructure(ctx, "go")
	if again != course {
		t.Error("second load should return the cached structure")
	}
	if n := cf.count("courses/go/meta.json"); n != 1 {
		t.Errorf("course meta fetched %d times, want 1", n)
	}
}

func TestLoadCourseStructureMissingOrMalformed(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	if c := s.LoadCourseStructure(ctx, "nope"); c != nil {
		t.Errorf("expected nil for missing course, got %+v", c)
	}
	if c := s.LoadCourseStructure(ctx, "broken"); c != nil {
		t.Errorf("expected nil for malformed course, got %+v", c)
	}

	rust := s.LoadCourseStructure(ctx, "rust")
	if rust == nil || rust.ID != "rust" || len(rust.Modules) != 0 {
		t.Fatalf("rust = %+v", rust)
	}
	if rust.Description != "Memory safety" {
		t.Errorf("explicit description replaced: %q", rust.Description)
	}
}

func TestReadmeFallbackDisabled(t *testing.T) {
	t.Parallel()

	s := NewStore(transport.NewFSFetcher(testContent()), Options{ReadmeFallback: false, ListConcurrency: 1})
	course := s.LoadCourseStructure(context.Background(), "go")
	if course == nil || course.Description != "" {
		t.Errorf("expected empty description without fallback, got %+v", course)
	}
}

func TestLoadLesson(t *testing.T) {
	t.Parallel()

	s, cf := newTestStore(t)
	ctx := context.Background()

	lesson := s.LoadLesson(ctx, "go", "intro", "setup")
	if lesson == nil {
		t.Fatal("expected lesson")
	}
	if lesson.ID != "go/intro/setup" || lesson.Type != models.ContentTypeLesson {
		t.Errorf("id/type = %q/%q", lesson.ID, lesson.Type)
	}
	if lesson.EstimatedTime != "10" || lesson.Order != 2 || lesson.Content != "Install Go." {
		t.Errorf("unexpected lesson %+v", lesson)
	}
	if v, ok := lesson.Frontmatter.Lookup("tags"); !ok || v.Kind != models.KindList {
		t.Errorf("frontmatter tags = %+v", v)
	}

	// ".md" and bare ids share one cache entry.
	if s.LoadLesson(ctx, "go", "intro", "setup.md") != lesson {
		t.Error("expected cached lesson for setup.md")
	}
	if n := cf.count("courses/go/modules/intro/lessons/setup.md"); n != 1 {
		t.Errorf("lesson fetched %d times", n)
	}

	hello := s.LoadLesson(ctx, "go", "intro", "hello")
	if v, _ := hello.Frontmatter.Lookup("video"); v.Kind != models.KindBool || !v.Bool {
		t.Errorf("extra frontmatter field lost: %+v", v)
	}

	if s.LoadLesson(ctx, "go", "intro", "ghost") != nil {
		t.Error("missing lesson should be nil")
	}
}

func TestLoadExercise(t *testing.T) {
	t.Parallel()

	s, cf := newTestStore(t)
	ctx := context.Background()

	a := s.LoadExercise(ctx, "go", "fizzbuzz")
	if a == nil || a.ID != "go/fizzbuzz" || a.Category != "go" || a.Difficulty != models.DifficultyBeginner {
		t.Fatalf("exercise = %+v", a)
	}
	if b := s.LoadExercise(ctx, "go/fizzbuzz", ""); b != a {
		t.Error("combined path should resolve to the cached exercise")
	}
	if b := s.LoadExercise(ctx, "exercises/go/fizzbuzz.md", ""); b != a {
		t.Error("full path should resolve to the cached exercise")
	}
	if n := cf.count("exercises/go/fizzbuzz.md"); n != 1 {
		t.Errorf("exercise fetched %d times", n)
	}

	if s.LoadExercise(ctx, "go", "untitled") != nil {
		t.Error("exercise without title should be skipped")
	}
	if j := s.LoadExercise(ctx, "sql", "joins"); j == nil || j.ID != "sql-joins" {
		t.Errorf("declared id not honored: %+v", j)
	}
}

func TestListCourses(t *testing.T) {
	t.Parallel()

	s, cf := newTestStore(t)
	ctx := context.Background()

	courses := s.ListCourses(ctx)
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	// fs.ReadDir is sorted: broken, go, rust. broken is malformed.
	if len(ids) != 2 || ids[0] != "go" || ids[1] != "rust" {
		t.Errorf("course ids = %v", ids)
	}
	if courses[1].Type != models.ContentTypeCourse {
		t.Errorf("default type not applied: %q", courses[1].Type)
	}

	s.ListCourses(ctx)
	if n := cf.count("courses/"); n != 1 {
		t.Errorf("listing fetched %d times, want 1", n)
	}
}

func TestListCoursesOmitsNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/courses/":
			_, _ = w.Write([]byte(`[
				{"name": "a/", "type": "directory"},
				{"name": "b/", "type": "directory"},
				{"name": "c/", "type": "directory"},
				{"name": "d", "type": "directory"},
				{"name": "index.json", "type": "file"}
			]`))
		case "/courses/a/meta.json":
			_, _ = w.Write([]byte(`{"title": "A"}`))
		case "/courses/b/meta.json":
			_, _ = w.Write([]byte(`{"title": "B"}`))
		case "/courses/d/meta.json":
			_, _ = w.Write([]byte(`{"title": "D"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	f, err := transport.NewHTTPFetcher(server.URL, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(f, DefaultOptions())

	// c has no meta and d lacks the directory slash.
	courses := s.ListCourses(context.Background())
	if len(courses) != 2 {
		t.Fatalf("courses = %d, want 2", len(courses))
	}
	if courses[0].ID != "a" || courses[1].ID != "b" {
		t.Errorf("order = %s, %s", courses[0].ID, courses[1].ID)
	}
}

func TestListExercisesAndCorpus(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	exercises := s.ListExercises(ctx)
	if len(exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(exercises))
	}

	corpus := s.AllContent(ctx)
	counts := map[models.ContentType]int{}
	for _, item := range corpus {
		counts[item.Type]++
	}
	if counts[models.ContentTypeCourse] != 2 || counts[models.ContentTypeLesson] != 4 || counts[models.ContentTypeExercise] != 2 {
		t.Errorf("corpus counts = %v", counts)
	}

	if item, ok := s.FindByID(ctx, "go/intro/hello"); !ok || item.Title != "Hello World" {
		t.Errorf("FindByID = %+v, %v", item, ok)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	s, cf := newTestStore(t)
	ctx := context.Background()

	s.ListCourses(ctx)
	s.LoadCourseStructure(ctx, "rust")
	s.Reset()
	s.ListCourses(ctx)
	s.LoadCourseStructure(ctx, "rust")

	if n := cf.count("courses/"); n != 2 {
		t.Errorf("listing fetched %d times, want 2 after reset", n)
	}
	for _, st := range s.CacheStats() {
		if st.Clears != 1 {
			t.Errorf("layer %s clears = %d", st.Name, st.Clears)
		}
	}
}

func TestConcurrentLoadsBothFetch(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	base := transport.NewFSFetcher(testContent())
	gate := transport.FetcherFunc(func(ctx context.Context, path string) ([]byte, error) {
		if path == "courses/rust/meta.json" {
			started.Done()
			<-release
		}
		return base.Fetch(ctx, path)
	})
	cf := newCountingFetcher(gate)
	s := NewStore(cf, DefaultOptions())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.LoadCourseStructure(context.Background(), "rust")
		}()
	}
	started.Wait()
	close(release)
	wg.Wait()

	if n := cf.count("courses/rust/meta.json"); n != 2 {
		t.Errorf("meta fetched %d times, want 2 (no coalescing)", n)
	}
}
