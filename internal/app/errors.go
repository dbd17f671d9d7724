package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoDataPath = errors.New("no dataset path configured")
)
