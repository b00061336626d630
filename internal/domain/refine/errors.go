package refine

import "errors"

// Sentinel kinds for refiner configuration errors. Both are fatal at
// startup, never per book.
var (
	ErrInvalidWeights = errors.New("invalid refiner weights")
	ErrInvalidBounds  = errors.New("invalid normalization bounds")
)
