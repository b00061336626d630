package level

import "errors"

// Sentinel kinds for band classification errors.
var (
	ErrInvalidThresholds = errors.New("invalid band thresholds")
)
