package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from
// callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")

	// ErrInvalidThresholds covers non-monotonic band cuts and malformed
	// refinement profiles. Always fatal at startup.
	ErrInvalidThresholds = errors.New("invalid threshold config")
)
