package repository

import "errors"

// Sentinel kinds for results store errors.
var (
	ErrNotFound = errors.New("result not found")
)
