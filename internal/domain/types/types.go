// Package types contains common types shared between the store, the
// service layer and the HTTP API.
package types

import "github.com/okian/shelfrank/internal/domain/model"

// Query describes one catalog request: filter thresholds, sort selection
// and the tunable scoring parameters, all supplied per invocation.
type Query struct {
	// Case-insensitive substring search across title, authors, publisher
	// and series. OR across fields, AND with every other predicate.
	Search string

	// Quality and engagement thresholds.
	MinRating float64
	MinVotes  int
	MinLiked  float64

	// Multi-select filters. An empty selection means no constraint.
	Languages []string
	Formats   []string
	Genres    []string

	// Numeric range bounds; absent bounds are unconstrained.
	PagesMin    model.Maybe
	PagesMax    model.Maybe
	DurationMin model.Maybe
	DurationMax model.Maybe
	PriceMin    model.Maybe
	PriceMax    model.Maybe
	YearMin     model.Maybe
	YearMax     model.Maybe

	// Sort key name and optional explicit direction ("asc" or "desc").
	// An empty key selects the recommended ordering.
	Sort  string
	Order string

	// Scoring parameters. Absent values fall back to configured defaults.
	AnchorVotes   model.Maybe // m: virtual average votes for the weighted score
	PowerExponent model.Maybe // p: vote-count exponent for the power score

	// Pagination.
	Limit  int
	Offset int
}

// Book is the read shape returned for one catalog entry.
type Book struct {
	Rank         int         `json:"rank"`
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Authors      string      `json:"authors"`
	Narrator     string      `json:"narrator,omitempty"`
	Publisher    string      `json:"publisher,omitempty"`
	Series       string      `json:"series,omitempty"`
	Language     string      `json:"language,omitempty"`
	Format       string      `json:"format,omitempty"`
	Genres       []string    `json:"genres,omitempty"`
	CoverURL     string      `json:"cover_url,omitempty"`
	AvgRating    model.Maybe `json:"average_rating"`
	RatingCount  int         `json:"rating_count"`
	LikedPercent model.Maybe `json:"liked_percent"`
	Price        model.Maybe `json:"price"`
	Pages        model.Maybe `json:"pages"`
	DurationMin  model.Maybe `json:"duration_minutes"`
	PubYear      model.Maybe `json:"publication_year"`

	WeightedScore model.Maybe `json:"weighted_score"`
	PowerScore    float64     `json:"power_score"`

	SearchURL string `json:"search_url,omitempty"`
}

// Result is one page of a catalog query.
type Result struct {
	Total      int     `json:"total"`       // corpus size
	Matched    int     `json:"matched"`     // items passing all filters
	CorpusMean float64 `json:"corpus_mean"` // C for this snapshot
	Items      []Book  `json:"items"`
}

// LoadSummary reports the outcome of a dataset load or reload.
type LoadSummary struct {
	Rows    int `json:"rows"`
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

// Facets lists the distinct values available for the multi-select filters
// plus the publication year bounds of the corpus.
type Facets struct {
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
	Formats   []string `json:"formats"`
	YearMin   int      `json:"year_min"`
	YearMax   int      `json:"year_max"`
}
