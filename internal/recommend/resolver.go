// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package recommend

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/models"
)

const (
	// DefaultRelatedLimit is the number of related items returned when unset.
	DefaultRelatedLimit = 5

	// DefaultRelatedThreshold is the minimum similarity for related content.
	DefaultRelatedThreshold = 0.2

	// DefaultPathMaxLength bounds a learning path including start and goal.
	DefaultPathMaxLength = 5

	// pathThreshold is the similarity cut for learning path neighbours and bridges.
	pathThreshold = 0.3

	// tagRelationshipThreshold is the minimum tag cosine for a "similar" edge.
	tagRelationshipThreshold = 0.3
)

// CorpusProvider supplies the content corpus. It is satisfied by *content.Store.
type CorpusProvider interface {
	// AllContent returns every course, lesson and exercise. Never nil on failure.
	AllContent(ctx context.Context) []models.ContentMetadata

	// LoadCourseStructure returns a course with ordered modules and lessons, or nil.
	LoadCourseStructure(ctx context.Context, courseID string) *models.CourseStructure
}

// Config holds resolver defaults.
type Config struct {
	RelatedLimit     int
	RelatedThreshold float64
	PathMaxLength    int
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		RelatedLimit:     DefaultRelatedLimit,
		RelatedThreshold: DefaultRelatedThreshold,
		PathMaxLength:    DefaultPathMaxLength,
	}
}

// Options controls FindRelatedContent.
type Options struct {
	// Limit caps the number of results. Values <= 0 use the configured default.
	Limit int

	// Threshold is the inclusive minimum similarity.
	Threshold float64
}

// PathOptions controls GenerateLearningPath.
type PathOptions struct {
	// MaxLength caps the path length. Values <= 0 use the configured default;
	// paths with a goal always hold at least start and goal.
	MaxLength int
}

// Resolver derives related content, prerequisites, relationship graphs and
// learning paths from a CorpusProvider.
type Resolver struct {
	provider CorpusProvider
	cfg      Config
}

// NewResolver creates a resolver over provider. Zero config fields take defaults.
func NewResolver(provider CorpusProvider, cfg Config) *Resolver {
	def := DefaultConfig()
	if cfg.RelatedLimit <= 0 {
		cfg.RelatedLimit = def.RelatedLimit
	}
	if cfg.RelatedThreshold <= 0 {
		cfg.RelatedThreshold = def.RelatedThreshold
	}
	if cfg.PathMaxLength <= 0 {
		cfg.PathMaxLength = def.PathMaxLength
	}
	return &Resolver{provider: provider, cfg: cfg}
}

// DefaultOptions returns the configured related-content options.
func (r *Resolver) DefaultOptions() Options {
	return Options{Limit: r.cfg.RelatedLimit, Threshold: r.cfg.RelatedThreshold}
}

func (r *Resolver) logger(ctx context.Context) zerolog.Logger {
	return logging.CtxWith(ctx).Str("component", "recommend").Logger()
}

// corpusIndex returns the corpus and an id -> position index. The first item
// wins when ids collide.
func (r *Resolver) corpusIndex(ctx context.Context) ([]models.ContentMetadata, map[string]int) {
	items := r.provider.AllContent(ctx)
	index := make(map[string]int, len(items))
	for i := range items {
		if _, dup := index[items[i].ID]; !dup {
			index[items[i].ID] = i
		}
	}
	return items, index
}

// scored pairs a corpus position with its similarity.
type scored struct {
	pos   int
	score float64
}

// rankAgainst scores every corpus item except source against it, keeps scores
// at or above threshold and sorts descending. Ties keep corpus order.
func rankAgainst(items []models.ContentMetadata, source *models.ContentMetadata, threshold float64) []scored {
	ranked := make([]scored, 0, len(items))
	for i := range items {
		if items[i].ID == source.ID {
			continue
		}
		s := CalculateSimilarity(source, &items[i])
		if s >= threshold {
			ranked = append(ranked, scored{pos: i, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// FindRelatedContent returns the items most similar to id, best first.
// Returns an empty list when id is not in the corpus.
func (r *Resolver) FindRelatedContent(ctx context.Context, id string, opts Options) []models.RelatedContentItem {
	if opts.Limit <= 0 {
		opts.Limit = r.cfg.RelatedLimit
	}

	items, index := r.corpusIndex(ctx)
	pos, ok := index[id]
	if !ok {
		log := r.logger(ctx)
		log.Debug().Str("content_id", id).Msg("Related content requested for unknown item")
		return []models.RelatedContentItem{}
	}

	ranked := rankAgainst(items, &items[pos], opts.Threshold)
	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}

	related := make([]models.RelatedContentItem, 0, len(ranked))
	for _, s := range ranked {
		related = append(related, models.RelatedItemFrom(&items[s.pos], s.score))
	}
	return related
}

// GetPrerequisites resolves id's declared prerequisites in declared order.
// Unknown prerequisite ids are dropped. Only direct prerequisites are returned.
func (r *Resolver) GetPrerequisites(ctx context.Context, id string) []models.RelatedContentItem {
	items, index := r.corpusIndex(ctx)
	pos, ok := index[id]
	if !ok {
		return []models.RelatedContentItem{}
	}

	declared := items[pos].Prerequisites
	prereqs := make([]models.RelatedContentItem, 0, len(declared))
	for _, pid := range declared {
		p, ok := index[pid]
		if !ok {
			log := r.logger(ctx)
			log.Debug().Str("content_id", id).Str("prerequisite", pid).Msg("Dropping unresolvable prerequisite")
			continue
		}
		item := models.RelatedItemFrom(&items[p], 1)
		item.IsPrerequisite = true
		prereqs = append(prereqs, item)
	}
	return prereqs
}

// GenerateTagRelationships emits a "similar" edge for every unordered pair of
// items whose tag cosine is at least 0.3. Source is the earlier corpus item.
func (r *Resolver) GenerateTagRelationships(ctx context.Context) []models.ContentRelationship {
	items := r.provider.AllContent(ctx)

	rels := make([]models.ContentRelationship, 0)
	for i := 0; i < len(items); i++ {
		if len(items[i].Tags) == 0 {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			score := TagRelationshipScore(items[i].Tags, items[j].Tags)
			if score < tagRelationshipThreshold {
				continue
			}
			rels = append(rels, models.ContentRelationship{
				SourceID:         items[i].ID,
				TargetID:         items[j].ID,
				RelationshipType: models.RelationshipSimilar,
				Strength:         score,
			})
		}
	}

	log := r.logger(ctx)
	log.Debug().Int("items", len(items)).Int("relationships", len(rels)).Msg("Tag relationships generated")
	return rels
}

// GeneratePrerequisiteRelationships emits one "prerequisite" edge per declared,
// resolvable prerequisite. Source is the dependent item, target its prerequisite.
func (r *Resolver) GeneratePrerequisiteRelationships(ctx context.Context) []models.ContentRelationship {
	items, index := r.corpusIndex(ctx)

	rels := make([]models.ContentRelationship, 0)
	for i := range items {
		for _, pid := range items[i].Prerequisites {
			if _, ok := index[pid]; !ok {
				continue
			}
			rels = append(rels, models.ContentRelationship{
				SourceID:         items[i].ID,
				TargetID:         pid,
				RelationshipType: models.RelationshipPrerequisite,
				Strength:         1,
			})
		}
	}
	return rels
}

// GenerateSequenceRelationships links consecutive lessons of a course in
// module and lesson order with "next" and "previous" edges. Returns an empty
// list when the course cannot be loaded.
func (r *Resolver) GenerateSequenceRelationships(ctx context.Context, courseID string) []models.ContentRelationship {
	course := r.provider.LoadCourseStructure(ctx, courseID)
	if course == nil {
		return []models.ContentRelationship{}
	}

	var order []string
	for _, m := range course.Modules {
		for _, l := range m.Lessons {
			order = append(order, l.ID)
		}
	}

	rels := make([]models.ContentRelationship, 0, 2*max(len(order)-1, 0))
	for i := 1; i < len(order); i++ {
		prev, next := order[i-1], order[i]
		rels = append(rels,
			models.ContentRelationship{SourceID: prev, TargetID: next, RelationshipType: models.RelationshipNext, Strength: 1},
			models.ContentRelationship{SourceID: next, TargetID: prev, RelationshipType: models.RelationshipPrevious, Strength: 1},
		)
	}
	return rels
}

// GenerateLearningPath builds a path that starts at startID.
//
// With an empty goalID the start item's neighbours scoring at least 0.3 follow
// it, best first. With a goal, bridge items scoring above 0.3 against both the
// start and the goal are ranked by their summed score and placed between them;
// the goal is always last. The result never exceeds MaxLength (at least 2 when
// a goal is given). Returns an empty path when start is unknown and only the
// start when the goal is unknown.
func (r *Resolver) GenerateLearningPath(ctx context.Context, startID, goalID string, opts PathOptions) []models.RelatedContentItem {
	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = r.cfg.PathMaxLength
	}

	items, index := r.corpusIndex(ctx)
	sp, ok := index[startID]
	if !ok {
		return []models.RelatedContentItem{}
	}
	start := &items[sp]
	path := []models.RelatedContentItem{models.RelatedItemFrom(start, 1)}

	if goalID == "" {
		for _, s := range rankAgainst(items, start, pathThreshold) {
			if len(path) >= maxLength {
				break
			}
			path = append(path, models.RelatedItemFrom(&items[s.pos], s.score))
		}
		return path
	}

	if goalID == startID {
		return path
	}
	gp, ok := index[goalID]
	if !ok {
		log := r.logger(ctx)
		log.Debug().Str("start", startID).Str("goal", goalID).Msg("Learning path goal not found")
		return path
	}
	goal := &items[gp]
	maxLength = max(maxLength, 2)

	bridges := make([]scored, 0)
	for i := range items {
		if i == sp || i == gp {
			continue
		}
		fromStart := CalculateSimilarity(start, &items[i])
		toGoal := CalculateSimilarity(goal, &items[i])
		if fromStart > pathThreshold && toGoal > pathThreshold {
			bridges = append(bridges, scored{pos: i, score: fromStart + toGoal})
		}
	}
	sort.SliceStable(bridges, func(i, j int) bool {
		return bridges[i].score > bridges[j].score
	})
	if room := maxLength - 2; len(bridges) > room {
		bridges = bridges[:room]
	}

	for _, b := range bridges {
		path = append(path, models.RelatedItemFrom(&items[b.pos], clamp(b.score/2)))
	}
	path = append(path, models.RelatedItemFrom(goal, CalculateSimilarity(start, goal)))
	return path
}
