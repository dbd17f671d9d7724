// Command gen-corpus generates a synthetic catalog CSV and optionally
// verifies the ranking invariants of a running service against it.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/shelfrank/internal/testcorpus"
	"github.com/okian/shelfrank/pkg/logger"
)

func main() {
	var (
		numBooks = flag.Int("n", 600, "number of catalog entries to generate")
		output   = flag.String("out", "corpus.csv", "output CSV file")
		baseURL  = flag.String("base-url", "http://localhost:9080", "base URL of a running service")
		verify   = flag.Bool("verify", false, "query the service and check ranking invariants")
		timeout  = flag.Duration("timeout", 10*time.Second, "HTTP request timeout")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config := &testcorpus.Config{
		BaseURL:    *baseURL,
		NumBooks:   *numBooks,
		OutputFile: *output,
		Verify:     *verify,
		Timeout:    *timeout,
		Verbose:    *verbose,
	}

	if err := testcorpus.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "corpus run failed", logger.Error(err))
		os.Exit(1)
	}
}
