package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/shelfrank/internal/domain/filter"
	"github.com/okian/shelfrank/internal/domain/model"
	"github.com/okian/shelfrank/internal/domain/rank"
	"github.com/okian/shelfrank/internal/domain/scoring"
	"github.com/okian/shelfrank/internal/domain/types"
	"github.com/okian/shelfrank/pkg/metrics"
)

// Default store configuration constants.
const (
	defaultPageLimit = 30
	defaultMaxLimit  = 500
)

// snapshot is one immutable view of the corpus. Queries read a snapshot
// without locking item data; Reload swaps the whole snapshot under the
// write lock.
type snapshot struct {
	items  []model.Book
	byID   map[string]int
	mean   float64
	facets types.Facets
}

// MemStore implements Store over an in-memory snapshot.
type MemStore struct {
	mu   sync.RWMutex
	snap *snapshot

	defaultLimit  int
	maxLimit      int
	anchorVotes   float64
	powerExponent float64
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithDefaultLimit sets the page size used when a query has none.
func WithDefaultLimit(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

// WithMaxLimit caps the page size of any query.
func WithMaxLimit(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithAnchorVotes sets the default m used when a query supplies none.
func WithAnchorVotes(m float64) Option {
	return func(s *MemStore) {
		if m >= 0 {
			s.anchorVotes = m
		}
	}
}

// WithPowerExponent sets the default p used when a query supplies none.
func WithPowerExponent(p float64) Option {
	return func(s *MemStore) {
		if p >= 0 {
			s.powerExponent = p
		}
	}
}

// NewMemStore creates an empty store with configuration options.
func NewMemStore(ctx context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		snap:          emptySnapshot(),
		defaultLimit:  defaultPageLimit,
		maxLimit:      defaultMaxLimit,
		anchorVotes:   100,
		powerExponent: 1.0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func emptySnapshot() *snapshot {
	return &snapshot{byID: make(map[string]int)}
}

// Reload atomically replaces the corpus snapshot. The store takes
// ownership of items; C and the facet lists are rebuilt once here so every
// subsequent scoring pass treats them as constants.
func (s *MemStore) Reload(ctx context.Context, items []model.Book) {
	snap := &snapshot{
		items: items,
		byID:  make(map[string]int, len(items)),
		mean:  scoring.CorpusMean(items),
	}
	for i := range items {
		snap.byID[items[i].ID] = i
	}
	snap.facets = buildFacets(items)

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	metrics.UpdateCorpusSize(len(items))
	metrics.UpdateCorpusMeanRating(snap.mean)
}

func (s *MemStore) current() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Count returns the snapshot size.
func (s *MemStore) Count(ctx context.Context) int {
	return len(s.current().items)
}

// CorpusMean returns C for the current snapshot.
func (s *MemStore) CorpusMean(ctx context.Context) float64 {
	return s.current().mean
}

// Facets lists the distinct filterable values of the snapshot.
func (s *MemStore) Facets(ctx context.Context) types.Facets {
	return s.current().facets
}

// Get returns a single entry by id, scored with the store defaults.
func (s *MemStore) Get(ctx context.Context, id string) (model.Book, error) {
	snap := s.current()
	i, ok := snap.byID[id]
	if !ok {
		return model.Book{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	b := snap.items[i]
	eng := scoring.New(
		scoring.WithAnchorVotes(s.anchorVotes),
		scoring.WithPowerExponent(s.powerExponent),
	)
	eng.Score(&b, snap.mean)
	return b, nil
}

// Query scores, filters, ranks and pages the current snapshot. The source
// snapshot is never mutated; matching entries are copied before scoring.
func (s *MemStore) Query(ctx context.Context, q types.Query) (Result, error) {
	start := time.Now()

	key, ok := rank.ParseKey(q.Sort)
	if !ok {
		return Result{}, fmt.Errorf("unknown sort key %q: %w", q.Sort, ErrInvalidQuery)
	}
	order, ok := rank.ParseOrder(q.Order)
	if !ok {
		return Result{}, fmt.Errorf("unknown sort order %q: %w", q.Order, ErrInvalidQuery)
	}

	snap := s.current()

	pred := filter.And(
		filter.Search(q.Search),
		filter.MinRating(q.MinRating),
		filter.MinVotes(q.MinVotes),
		filter.MinLiked(q.MinLiked),
		filter.Languages(q.Languages),
		filter.Formats(q.Formats),
		filter.GenresAny(q.Genres),
		filter.PagesBetween(q.PagesMin, q.PagesMax),
		filter.DurationBetween(q.DurationMin, q.DurationMax),
		filter.PriceBetween(q.PriceMin, q.PriceMax),
		filter.YearBetween(q.YearMin, q.YearMax),
	)

	matched := make([]model.Book, 0, len(snap.items)/4)
	for i := range snap.items {
		if pred(&snap.items[i]) {
			matched = append(matched, snap.items[i])
		}
	}

	eng := scoring.New(
		scoring.WithAnchorVotes(q.AnchorVotes.Or(s.anchorVotes)),
		scoring.WithPowerExponent(q.PowerExponent.Or(s.powerExponent)),
	)
	scoreStart := time.Now()
	if err := eng.Apply(ctx, matched, snap.mean); err != nil {
		return Result{}, fmt.Errorf("scoring pass: %w", err)
	}
	metrics.RecordScoringPass(float64(time.Since(scoreStart).Milliseconds()))

	rank.Sort(matched, key, order)

	limit := q.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	page := matched
	if offset >= len(matched) {
		page = nil
	} else {
		page = matched[offset:]
		if len(page) > limit {
			page = page[:limit]
		}
	}

	metrics.RecordQuery(float64(time.Since(start).Milliseconds()), len(matched))

	return Result{
		Items:      page,
		Total:      len(snap.items),
		Matched:    len(matched),
		CorpusMean: snap.mean,
	}, nil
}

// buildFacets collects the distinct genres, languages and formats of a
// snapshot plus its publication year bounds.
func buildFacets(items []model.Book) types.Facets {
	genres := make(map[string]string)
	languages := make(map[string]string)
	formats := make(map[string]string)
	var yearMin, yearMax int

	for i := range items {
		b := &items[i]
		for _, g := range b.Genres {
			if g != "" {
				genres[strings.ToLower(g)] = g
			}
		}
		if b.Language != "" {
			languages[strings.ToLower(b.Language)] = b.Language
		}
		if b.Format != "" {
			formats[strings.ToLower(b.Format)] = b.Format
		}
		if b.PubYear.Valid {
			y := int(b.PubYear.Value)
			if yearMin == 0 || y < yearMin {
				yearMin = y
			}
			if y > yearMax {
				yearMax = y
			}
		}
	}

	return types.Facets{
		Genres:    sortedValues(genres),
		Languages: sortedValues(languages),
		Formats:   sortedValues(formats),
		YearMin:   yearMin,
		YearMax:   yearMax,
	}
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
