package refresh

import (
	"time"

	"github.com/okian/shelfrank/pkg/logger"
)

// Option applies a configuration option to the Refresher.
type Option func(*Refresher)

// WithInterval sets the time between scheduled reloads.
func WithInterval(d time.Duration) Option {
	return func(r *Refresher) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithLogger sets a custom logger for the refresher.
func WithLogger(l logger.Logger) Option {
	return func(r *Refresher) {
		if l != nil {
			r.logger = l
		}
	}
}
