package testcorpus

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/shelfrank/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// corpusHeader is the books-schema header the loader recognizes.
var corpusHeader = []string{
	"bookId", "title", "author", "rating", "numRatings",
	"pages", "genres", "language", "bookFormat", "publishDate",
}

// writeCorpus writes the generated records as a CSV file.
func writeCorpus(ctx context.Context, config *Config, records []Record, stats *Stats) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to write")
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(corpusHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range records {
		r := &records[i]
		row := []string{
			r.ID, r.Title, r.Author, r.Rating, r.NumRatings,
			r.Pages, r.Genres, r.Language, r.Format, r.PubDate,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
		stats.RowsWritten++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}

	logger.Get().Info(ctx, "corpus written",
		logger.String("filename", config.OutputFile),
		logger.Int("rows", stats.RowsWritten),
	)
	return nil
}
