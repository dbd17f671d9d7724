package testcorpus

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/shelfrank/pkg/logger"
)

// Run executes a corpus generation run and the optional service check.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting corpus run",
		logger.Int("books", config.NumBooks),
		logger.String("output", config.OutputFile),
		logger.String("baseURL", config.BaseURL),
		logger.Any("verify", config.Verify),
	)

	// Step 1: Generate records
	records := generateBooks(ctx, config, stats)

	// Step 2: Write the CSV corpus
	if err := writeCorpus(ctx, config, records, stats); err != nil {
		return fmt.Errorf("corpus write failed: %w", err)
	}

	// Step 3: Optionally verify a running service
	if config.Verify {
		if err := verifyService(ctx, config, stats); err != nil {
			return fmt.Errorf("service verification failed: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("booksGenerated", stats.BooksGenerated),
		logger.Int("rowsWritten", stats.RowsWritten),
		logger.Int("queriesRun", stats.QueriesRun),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()),
	)
}
