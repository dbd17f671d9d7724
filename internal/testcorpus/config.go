package testcorpus

import "time"

// Config holds configuration for a corpus generation run.
type Config struct {
	BaseURL    string        // Base URL of a running service, used when Verify is set
	NumBooks   int           // Number of catalog entries to generate
	OutputFile string        // Output CSV file
	Verify     bool          // Query a running service and check ranking invariants
	Timeout    time.Duration // HTTP request timeout
	LogFile    string        // Log file for run output
	Verbose    bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	BooksGenerated int
	RowsWritten    int
	QueriesRun     int
	ChecksFailed   int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
