package dataset

import "errors"

// Sentinel kinds for dataset load errors.
var (
	ErrNoHeader      = errors.New("dataset has no header row")
	ErrNoTitleColumn = errors.New("dataset has no title column")
)
