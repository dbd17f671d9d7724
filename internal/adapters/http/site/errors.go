package site

import "errors"

// Error constants
var (
	ErrServe = errors.New("explorer site serve failed")
)
