// Package dataset loads catalog corpora from CSV exports.
//
// The loader is the data-loading collaborator of the scoring core: it
// turns semi-structured text columns into typed fields via the parse
// package and fails soft on malformed rows, so one bad line never aborts
// a corpus load.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/shelfrank/internal/domain/dedupe"
	"github.com/okian/shelfrank/internal/domain/model"
	"github.com/okian/shelfrank/internal/domain/parse"
	"github.com/okian/shelfrank/pkg/logger"
	"github.com/okian/shelfrank/pkg/metrics"
)

// Stats summarizes one dataset load.
type Stats struct {
	Rows    int // data rows seen
	Loaded  int // rows converted into catalog entries
	Skipped int // malformed or duplicate rows dropped
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// Loader reads CSV exports into catalog entries.
type Loader struct {
	logger logger.Logger
}

// New creates a Loader with configuration options.
func New(opts ...Option) *Loader {
	ld := &Loader{}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Load reads the CSV file at path and converts its rows into catalog
// entries. The header row drives the column mapping; rows without a title
// or with unreadable structure are counted and skipped.
func (ld *Loader) Load(ctx context.Context, path string) ([]model.Book, Stats, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read header: %w", ErrNoHeader)
	}
	idx := mapHeader(header)
	if _, ok := idx[colTitle]; !ok {
		return nil, Stats{}, fmt.Errorf("header %v: %w", header, ErrNoTitleColumn)
	}

	var stats Stats
	var items []model.Book
	seen := dedupe.New()
	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, fmt.Errorf("dataset load canceled: %w", err)
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Rows++
			stats.Skipped++
			metrics.RecordDatasetRowSkipped()
			continue
		}
		stats.Rows++

		b, ok := ld.row(idx, record, stats.Rows)
		if !ok {
			stats.Skipped++
			metrics.RecordDatasetRowSkipped()
			continue
		}
		// Exports repeat ids across re-released editions; first row wins.
		if seen.SeenAndRecord(b.ID) {
			stats.Skipped++
			metrics.RecordDatasetRowSkipped()
			continue
		}
		items = append(items, b)
		stats.Loaded++
	}

	metrics.RecordDatasetLoad(float64(time.Since(start).Milliseconds()))
	metrics.UpdateDatasetRowsLoaded(stats.Loaded)

	if ld.logger != nil {
		ld.logger.Info(ctx, "dataset loaded",
			logger.String("path", path),
			logger.Int("rows", stats.Rows),
			logger.Int("loaded", stats.Loaded),
			logger.Int("skipped", stats.Skipped),
		)
	}
	return items, stats, nil
}

// cell returns the record value of a canonical column, or "".
func cell(idx map[column]int, record []string, c column) string {
	i, ok := idx[c]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// row converts one CSV record into a catalog entry. Only a missing title
// rejects the row; every other malformed field degrades to absent/zero.
func (ld *Loader) row(idx map[column]int, record []string, n int) (model.Book, bool) {
	title := cell(idx, record, colTitle)
	if title == "" {
		return model.Book{}, false
	}

	b := model.Book{
		Title:     title,
		Authors:   parse.Author(cell(idx, record, colAuthors)),
		Narrator:  parse.Narrator(cell(idx, record, colNarrator)),
		Publisher: cell(idx, record, colPublisher),
		Series:    cell(idx, record, colSeries),
		Language:  cell(idx, record, colLanguage),
		Format:    cell(idx, record, colFormat),
		Genres:    parse.Genres(cell(idx, record, colGenres)),
		CoverURL:  cell(idx, record, colCover),
	}

	b.ID = cell(idx, record, colID)
	if b.ID == "" {
		b.ID = "row-" + strconv.Itoa(n)
	}

	// The audiobook export carries rating and votes in one combined star
	// string; the books export has separate numeric columns.
	if stars := cell(idx, record, colStars); stars != "" {
		if rating, votes, ok := parse.Stars(stars); ok {
			b.AvgRating = model.Some(rating)
			b.RatingCount = votes
		}
	} else {
		if v, err := strconv.ParseFloat(cell(idx, record, colRating), 64); err == nil && v >= 0 && v <= 5 {
			b.AvgRating = model.Some(v)
		}
		if v, ok := parse.Number(cell(idx, record, colVotes)); ok && v >= 0 {
			b.RatingCount = int(v)
		}
	}

	if v, ok := parse.Number(cell(idx, record, colPages)); ok && v > 0 {
		b.Pages = model.Some(v)
	}
	if v, ok := parse.Duration(cell(idx, record, colDuration)); ok && v > 0 {
		b.DurationMin = model.Some(float64(v))
	}
	if v, ok := parse.Price(cell(idx, record, colPrice)); ok {
		b.Price = model.Some(v)
	}
	if v, ok := parse.Number(cell(idx, record, colLiked)); ok && v >= 0 && v <= 100 {
		b.LikedPercent = model.Some(v)
	}

	// Prefer the first publication date, matching the corpus exports.
	if y, ok := parse.Year(cell(idx, record, colFirstPubDate)); ok {
		b.PubYear = model.Some(float64(y))
	} else if y, ok := parse.Year(cell(idx, record, colPubDate)); ok {
		b.PubYear = model.Some(float64(y))
	}

	return b, true
}
