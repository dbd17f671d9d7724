// Package refresh runs the background dataset refresher.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/shelfrank/internal/domain/types"
	"github.com/okian/shelfrank/pkg/logger"
)

// Default refresher configuration constants.
const (
	defaultInterval         = time.Hour
	refresherShutdownWindow = 5 * time.Second
)

// Reloader re-reads the dataset and swaps the corpus snapshot.
type Reloader interface {
	Reload(ctx context.Context) (types.LoadSummary, error)
}

// Refresher periodically reloads the dataset so a replaced corpus file is
// picked up without a restart. Failed reloads keep the previous snapshot.
type Refresher struct {
	reloader Reloader
	interval time.Duration

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// New creates a refresher with configuration options.
func New(reloader Reloader, opts ...Option) *Refresher {
	r := &Refresher{
		reloader: reloader,
		interval: defaultInterval,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get().Named("refresher")
	}
	return r
}

// Start launches the refresh loop in its own goroutine.
func (r *Refresher) Start(ctx context.Context) {
	go r.run(ctx)
}

// run loops until the context is canceled or Shutdown is called.
func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case <-ticker.C:
			summary, err := r.reloader.Reload(ctx)
			if err != nil {
				r.logger.Error(ctx, "scheduled reload failed; keeping previous snapshot", logger.Error(err))
				continue
			}
			r.logger.Info(ctx, "scheduled reload complete",
				logger.Int("loaded", summary.Loaded),
				logger.Int("skipped", summary.Skipped),
			)
		}
	}
}

// Shutdown gracefully stops the refresher.
func (r *Refresher) Shutdown(ctx context.Context) error {
	close(r.shutdown)

	shutdownCtx, cancel := context.WithTimeout(ctx, refresherShutdownWindow)
	defer cancel()

	select {
	case <-r.done:
		return nil
	case <-shutdownCtx.Done():
		r.logger.Warn(ctx, "refresher shutdown timed out")
		return fmt.Errorf("refresher shutdown timed out: %w", shutdownCtx.Err())
	}
}
