// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/curriculum/internal/cache"
	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/metrics"
	"github.com/tomtom215/curriculum/internal/models"
)

// Defaults for Config fields left zero.
const (
	DefaultDebounce    = 300 * time.Millisecond
	DefaultPageSize    = 10
	DefaultMaxPageSize = 100
	DefaultRecentLimit = 5
)

// Config configures a Query.
type Config struct {
	Debounce    time.Duration
	PageSize    int
	MaxPageSize int
	RecentLimit int
}

// DefaultConfig returns the default query configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:    DefaultDebounce,
		PageSize:    DefaultPageSize,
		MaxPageSize: DefaultMaxPageSize,
		RecentLimit: DefaultRecentLimit,
	}
}

// Options narrows and shapes one search.
type Options struct {
	Types      []models.ContentType `json:"types,omitempty"`
	SortBy     SortBy               `json:"sortBy,omitempty"`
	FilterTags []string             `json:"filterTags,omitempty"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
}

// State is the published state of a Query.
type State struct {
	Query          string               `json:"query"`
	Loading        bool                 `json:"loading"`
	Results        models.SearchResults `json:"results"`
	Error          string               `json:"error,omitempty"`
	RecentSearches []string             `json:"recentSearches"`
}

// Scheduler runs fn once after delay.
type Scheduler func(delay time.Duration, fn func())

// AfterFunc is the default Scheduler, backed by time.AfterFunc.
func AfterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// QueryOption configures a Query.
type QueryOption func(*Query)

// WithScheduler replaces the debounce scheduler.
func WithScheduler(s Scheduler) QueryOption {
	return func(q *Query) { q.schedule = s }
}

// Query is a debounced, cached search session. Safe for concurrent use.
type Query struct {
	searcher Searcher
	cfg      Config
	schedule Scheduler
	results  *cache.Store[models.SearchResults]

	mu          sync.Mutex
	generation  uint64
	state       State
	recent      []string
	subscribers map[int]func(State)
	nextSubID   int
}

// NewQuery creates a search session over searcher. Zero config fields take
// their defaults.
func NewQuery(searcher Searcher, cfg Config, opts ...QueryOption) *Query {
	def := DefaultConfig()
	if cfg.Debounce < 0 {
		cfg.Debounce = 0
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = def.MaxPageSize
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = def.RecentLimit
	}

	q := &Query{
		searcher:    searcher,
		cfg:         cfg,
		schedule:    AfterFunc,
		results:     cache.New[models.SearchResults]("search"),
		state:       State{Results: emptyResults(), RecentSearches: []string{}},
		subscribers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// NewSession returns an independent Query over the same searcher, config and
// scheduler. It starts with empty state, an empty result cache and no recent
// searches.
func (q *Query) NewSession() *Query {
	s := NewQuery(q.searcher, q.cfg)
	s.schedule = q.schedule
	return s
}

func (q *Query) logger(ctx context.Context) zerolog.Logger {
	return logging.CtxWith(ctx).Str("component", "search").Logger()
}

// Snapshot returns a copy of the current state.
func (q *Query) Snapshot() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

func (q *Query) snapshotLocked() State {
	s := q.state
	s.RecentSearches = append([]string{}, q.recent...)
	return s
}

// Subscribe registers fn to receive every published state and returns a
// function that removes it. fn is called without internal locks held.
func (q *Query) Subscribe(fn func(State)) (unsubscribe func()) {
	q.mu.Lock()
	id := q.nextSubID
	q.nextSubID++
	q.subscribers[id] = fn
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.subscribers, id)
		q.mu.Unlock()
	}
}

func (q *Query) publish(s State) {
	q.mu.Lock()
	subs := make([]func(State), 0, len(q.subscribers))
	for _, fn := range q.subscribers {
		subs = append(subs, fn)
	}
	q.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

// RecentSearches returns the most recent distinct queries, newest first.
func (q *Query) RecentSearches() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string{}, q.recent...)
}

// PerformSearch records query, marks the state as loading and runs the search
// after the debounce delay. A later PerformSearch or ChangePage before the
// delay elapses supersedes this call entirely. ctx must outlive the delay.
func (q *Query) PerformSearch(ctx context.Context, query string, opts Options) {
	q.mu.Lock()
	q.generation++
	gen := q.generation
	q.state.Query = query
	q.state.Loading = true
	q.state.Error = ""
	snapshot := q.snapshotLocked()
	q.mu.Unlock()

	q.publish(snapshot)

	q.schedule(q.cfg.Debounce, func() {
		if !q.isCurrent(gen) {
			metrics.SearchSuperseded.Inc()
			return
		}
		results, err := q.execute(ctx, query, opts)
		q.finish(ctx, gen, results, err)
	})
}

// ChangePage repeats the current query with a different page.
func (q *Query) ChangePage(ctx context.Context, page int, opts Options) {
	q.mu.Lock()
	current := q.state.Query
	q.mu.Unlock()

	opts.Page = page
	q.PerformSearch(ctx, current, opts)
}

// DefaultPageSize returns the page size used when Options.PageSize is zero.
func (q *Query) DefaultPageSize() int {
	return q.cfg.PageSize
}

// ClearSearchCache drops every cached result page.
func (q *Query) ClearSearchCache() {
	q.results.Clear()
}

// CacheStats reports result cache usage.
func (q *Query) CacheStats() cache.Stats {
	return q.results.GetStats()
}

// Search runs the search worker synchronously and returns its page. It shares
// the result cache and recent list with PerformSearch but does not touch the
// published state.
func (q *Query) Search(ctx context.Context, query string, opts Options) (models.SearchResults, error) {
	return q.execute(ctx, query, opts)
}

func (q *Query) isCurrent(gen uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return gen == q.generation
}

// finish publishes a worker outcome unless a newer search has started since.
func (q *Query) finish(ctx context.Context, gen uint64, results models.SearchResults, err error) {
	q.mu.Lock()
	if gen != q.generation {
		q.mu.Unlock()
		metrics.SearchSuperseded.Inc()
		return
	}
	q.state.Loading = false
	if err != nil {
		q.state.Error = err.Error()
	} else {
		q.state.Error = ""
		q.state.Results = results
	}
	snapshot := q.snapshotLocked()
	q.mu.Unlock()

	if err != nil {
		log := q.logger(ctx)
		log.Warn().Err(err).Str("query", snapshot.Query).Msg("Search failed")
	}
	q.publish(snapshot)
}

// normalize applies page and page size defaults and bounds.
func (q *Query) normalize(opts Options) Options {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize <= 0 {
		opts.PageSize = q.cfg.PageSize
	}
	if opts.PageSize > q.cfg.MaxPageSize {
		opts.PageSize = q.cfg.MaxPageSize
	}
	if opts.SortBy == "" {
		opts.SortBy = SortRelevance
	}
	return opts
}

type cacheKeyParams struct {
	Query   string  `json:"query"`
	Options Options `json:"options"`
}

// execute is the search worker: cache lookup, collaborator call, then sort,
// filter, paginate, cache and record the query.
func (q *Query) execute(ctx context.Context, query string, opts Options) (models.SearchResults, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		metrics.RecordSearch("empty_query")
		return emptyResults(), nil
	}

	opts = q.normalize(opts)
	key := cache.GenerateKey("search", cacheKeyParams{Query: trimmed, Options: opts})
	if cached, ok := q.results.Get(key); ok {
		metrics.RecordSearch("cache_hit")
		return cached, nil
	}

	start := time.Now()
	items, err := q.searcher.SearchContent(ctx, trimmed, opts.Types)
	if err != nil {
		metrics.RecordSearch("error")
		return models.SearchResults{}, err
	}

	items = sortItems(items, opts.SortBy)
	items = filterByTags(items, opts.FilterTags)
	results := paginate(items, opts.Page, opts.PageSize)

	q.results.Set(key, results)
	q.addRecent(trimmed)

	metrics.RecordSearch("collaborator")
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	log := q.logger(ctx)
	log.Debug().
		Str("query", trimmed).
		Int("total", results.TotalResults).
		Int("page", results.CurrentPage).
		Msg("Search executed")
	return results, nil
}

// addRecent moves query to the front of the recent list, capped at the limit.
func (q *Query) addRecent(query string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	recent := make([]string, 0, q.cfg.RecentLimit)
	recent = append(recent, query)
	for _, r := range q.recent {
		if r != query && len(recent) < q.cfg.RecentLimit {
			recent = append(recent, r)
		}
	}
	q.recent = recent
}
