package repository

import "errors"

// Sentinel kinds for corpus store errors.
var (
	ErrNotFound     = errors.New("book not found")
	ErrInvalidQuery = errors.New("invalid query")
)
