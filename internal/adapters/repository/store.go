// Package repository holds the in-memory corpus store and its query path.
package repository

import (
	"context"

	"github.com/okian/shelfrank/internal/domain/model"
	"github.com/okian/shelfrank/internal/domain/types"
)

// Result is one scored, filtered, ranked page of the corpus.
type Result struct {
	Items      []model.Book // the requested page, in rank order
	Total      int          // corpus size
	Matched    int          // items passing all filters
	CorpusMean float64      // C for this snapshot
}

// Store provides read access to the scored catalog corpus plus snapshot
// replacement on dataset reloads.
type Store interface {
	// Query scores, filters, ranks and pages the current snapshot.
	Query(ctx context.Context, q types.Query) (Result, error)

	// Get returns a single entry by id. Returns ErrNotFound when unknown.
	Get(ctx context.Context, id string) (model.Book, error)

	// Facets lists the distinct filterable values of the snapshot.
	Facets(ctx context.Context) types.Facets

	// Reload atomically replaces the corpus snapshot.
	Reload(ctx context.Context, items []model.Book)

	// Count returns the snapshot size.
	Count(ctx context.Context) int

	// CorpusMean returns C for the current snapshot.
	CorpusMean(ctx context.Context) float64
}
