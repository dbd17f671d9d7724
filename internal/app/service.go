// Package service provides the core catalog service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/okian/shelfrank/internal/adapters/dataset"
	repository "github.com/okian/shelfrank/internal/adapters/repository"
	"github.com/okian/shelfrank/internal/domain/model"
	"github.com/okian/shelfrank/internal/domain/types"
	"github.com/okian/shelfrank/pkg/logger"
)

// searchURLBase is the storefront search used for outbound item links.
const searchURLBase = "https://www.audible.in/search"

// Service implements the API dependencies for the catalog system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	loader *dataset.Loader

	// Configuration
	dataPath      string
	anchorVotes   float64
	powerExponent float64
	defaultLimit  int
	maxLimit      int

	// State
	started  bool
	lastLoad types.LoadSummary
	loadedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPath sets the dataset file read on start and reload.
func WithDataPath(path string) Option {
	return func(s *Service) {
		s.dataPath = path
	}
}

// WithAnchorVotes sets the default m for the weighted score.
func WithAnchorVotes(m float64) Option {
	return func(s *Service) {
		if m >= 0 {
			s.anchorVotes = m
		}
	}
}

// WithPowerExponent sets the default p for the power score.
func WithPowerExponent(p float64) Option {
	return func(s *Service) {
		if p >= 0 {
			s.powerExponent = p
		}
	}
}

// WithDefaultLimit sets the page size used when a query has none.
func WithDefaultLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

// WithMaxLimit caps the page size of any query.
func WithMaxLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the backing store. Used by tests to inject a
// pre-loaded corpus without a dataset file.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		anchorVotes:   100,
		powerExponent: 1.0,
		defaultLimit:  30,
		maxLimit:      500,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components and performs the initial
// dataset load.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting catalog service...")

	if s.store == nil {
		s.store = repository.NewMemStore(ctx,
			repository.WithAnchorVotes(s.anchorVotes),
			repository.WithPowerExponent(s.powerExponent),
			repository.WithDefaultLimit(s.defaultLimit),
			repository.WithMaxLimit(s.maxLimit),
		)
	}
	s.loader = dataset.New(dataset.WithLogger(s.logger))

	if s.dataPath != "" {
		if _, err := s.reload(ctx); err != nil {
			return fmt.Errorf("initial dataset load: %w", err)
		}
	}

	s.started = true
	s.logger.Info(ctx, "catalog service started",
		logger.String("dataPath", s.dataPath),
		logger.Int("corpusSize", s.store.Count(ctx)),
		logger.Float64("anchorVotes", s.anchorVotes),
		logger.Float64("powerExponent", s.powerExponent),
	)
	return nil
}

// Stop shuts the service down. The store holds no external resources, so
// this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "catalog service stopped")
}

// Reload re-reads the dataset from disk and swaps the corpus snapshot.
func (s *Service) Reload(ctx context.Context) (types.LoadSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx)
}

// reload must be called with the write lock held.
func (s *Service) reload(ctx context.Context) (types.LoadSummary, error) {
	if s.dataPath == "" {
		return types.LoadSummary{}, ErrNoDataPath
	}
	items, stats, err := s.loader.Load(ctx, s.dataPath)
	if err != nil {
		return types.LoadSummary{}, fmt.Errorf("load dataset: %w", err)
	}
	s.store.Reload(ctx, items)
	s.lastLoad = types.LoadSummary{Rows: stats.Rows, Loaded: stats.Loaded, Skipped: stats.Skipped}
	s.loadedAt = time.Now()
	return s.lastLoad, nil
}

// Query returns one scored, filtered, ranked page of the catalog.
func (s *Service) Query(ctx context.Context, q types.Query) (types.Result, error) {
	res, err := s.store.Query(ctx, q)
	if err != nil {
		return types.Result{}, err
	}

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	items := make([]types.Book, len(res.Items))
	for i := range res.Items {
		items[i] = toView(&res.Items[i], offset+i+1)
	}
	return types.Result{
		Total:      res.Total,
		Matched:    res.Matched,
		CorpusMean: res.CorpusMean,
		Items:      items,
	}, nil
}

// Get returns a single catalog entry by id.
func (s *Service) Get(ctx context.Context, id string) (types.Book, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return types.Book{}, err
	}
	return toView(&b, 0), nil
}

// Facets lists the distinct filterable values of the corpus.
func (s *Service) Facets(ctx context.Context) types.Facets {
	return s.store.Facets(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":        s.started,
		"data_path":      s.dataPath,
		"anchor_votes":   s.anchorVotes,
		"power_exponent": s.powerExponent,
	}
	if s.store != nil {
		stats["corpus_size"] = s.store.Count(ctx)
		stats["corpus_mean"] = s.store.CorpusMean(ctx)
	}
	if !s.loadedAt.IsZero() {
		stats["loaded_at"] = s.loadedAt.UTC().Format(time.RFC3339)
		stats["rows_loaded"] = s.lastLoad.Loaded
		stats["rows_skipped"] = s.lastLoad.Skipped
	}
	return stats
}

// toView converts a domain record into the API read shape. Rank zero means
// the entry was fetched outside a ranked listing.
func toView(b *model.Book, rank int) types.Book {
	return types.Book{
		Rank:          rank,
		ID:            b.ID,
		Title:         b.Title,
		Authors:       b.Authors,
		Narrator:      b.Narrator,
		Publisher:     b.Publisher,
		Series:        b.Series,
		Language:      b.Language,
		Format:        b.Format,
		Genres:        b.Genres,
		CoverURL:      b.CoverURL,
		AvgRating:     b.AvgRating,
		RatingCount:   b.RatingCount,
		LikedPercent:  b.LikedPercent,
		Price:         b.Price,
		Pages:         b.Pages,
		DurationMin:   b.DurationMin,
		PubYear:       b.PubYear,
		WeightedScore: b.WeightedScore,
		PowerScore:    b.PowerScore,
		SearchURL:     searchURL(b),
	}
}

// searchURL builds the outbound storefront search link for an entry.
func searchURL(b *model.Book) string {
	v := url.Values{}
	v.Set("keywords", b.Title)
	if b.Authors != "" {
		v.Set("searchAuthor", b.Authors)
	}
	return searchURLBase + "?" + v.Encode()
}
