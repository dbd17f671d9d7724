// Package scoring computes the derived ranking scores for catalog entries.
//
// Two scores are produced per item:
//
//   - the weighted (Bayesian-average) score, which blends an item's own
//     rating with the corpus mean C, damped by m virtual average votes;
//   - the power score, the rating scaled by the vote count raised to an
//     exponent p, trading off quality against popularity.
//
// Scoring is a pure pass over one corpus snapshot: no item's score depends
// on another's, only on the precomputed constant C, so the pass is chunked
// across goroutines for large corpora.
package scoring

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/okian/shelfrank/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultAnchorVotes   = 100.0
	defaultPowerExponent = 1.0
	minChunkSize         = 2048
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithAnchorVotes sets m, the number of virtual average votes blended into
// the weighted score. Negative values are ignored.
func WithAnchorVotes(m float64) Option {
	return func(e *Engine) {
		if m >= 0 {
			e.anchorVotes = m
		}
	}
}

// WithPowerExponent sets p, the vote-count exponent of the power score.
// Negative values are ignored.
func WithPowerExponent(p float64) Option {
	return func(e *Engine) {
		if p >= 0 {
			e.powerExponent = p
		}
	}
}

// WithParallelism bounds the number of goroutines used by Apply.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

// Engine computes derived scores for one snapshot with fixed parameters.
type Engine struct {
	anchorVotes   float64 // m
	powerExponent float64 // p
	parallelism   int
}

// New creates an Engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		anchorVotes:   defaultAnchorVotes,
		powerExponent: defaultPowerExponent,
		parallelism:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnchorVotes returns the configured m.
func (e *Engine) AnchorVotes() float64 { return e.anchorVotes }

// PowerExponent returns the configured p.
func (e *Engine) PowerExponent() float64 { return e.powerExponent }

// CorpusMean returns the mean rating across rated items. Items without a
// rating never contribute. An entirely unrated corpus yields 0, the
// documented default so the weighted formula stays defined.
func CorpusMean(items []model.Book) float64 {
	var sum float64
	var n int
	for i := range items {
		if items[i].AvgRating.Valid {
			sum += items[i].AvgRating.Value
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// WeightedScore computes the damped rating estimate
//
//	(v/(v+m))*r + (m/(v+m))*C
//
// for a single item. Unrated items stay absent. With m == 0 the raw rating
// is returned unsmoothed; this also covers the degenerate m == 0, v == 0
// combination, which must fall back to the raw rating rather than divide
// by zero. With m > 0 and v == 0 the general formula already reduces to C.
func WeightedScore(r model.Maybe, votes int, m, c float64) model.Maybe {
	if !r.Valid {
		return model.None()
	}
	if m <= 0 {
		return r
	}
	v := float64(votes)
	return model.Some((v/(v+m))*r.Value + (m/(v+m))*c)
}

// PowerScore computes r * v^p for a single item. Unrated items score 0.
// With p == 0 the raw rating is returned; with p > 0 a zero vote count
// scores 0 under any exponent. Fractional p uses real-valued
// exponentiation; votes are never negative so no complex results arise.
func PowerScore(r model.Maybe, votes int, p float64) float64 {
	if !r.Valid {
		return 0
	}
	if p == 0 {
		return r.Value
	}
	if votes == 0 {
		return 0
	}
	return r.Value * math.Pow(float64(votes), p)
}

// Score fills the derived fields of a single book.
func (e *Engine) Score(b *model.Book, corpusMean float64) {
	b.WeightedScore = WeightedScore(b.AvgRating, b.RatingCount, e.anchorVotes, corpusMean)
	b.PowerScore = PowerScore(b.AvgRating, b.RatingCount, e.powerExponent)
}

// Apply runs one scoring pass over items, writing WeightedScore and
// PowerScore on every entry. Large corpora are chunked across goroutines;
// ctx cancellation aborts the pass.
func (e *Engine) Apply(ctx context.Context, items []model.Book, corpusMean float64) error {
	if len(items) == 0 {
		return nil
	}

	chunk := (len(items) + e.parallelism - 1) / e.parallelism
	if chunk < minChunkSize {
		chunk = minChunkSize
	}

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(items); start += chunk {
		end := start + chunk
		if end > len(items) {
			end = len(items)
		}
		part := items[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("scoring pass canceled: %w", err)
			}
			for i := range part {
				e.Score(&part[i], corpusMean)
			}
			return nil
		})
	}
	return g.Wait()
}
