package textmetrics

import "errors"

// Sentinel kinds for extraction errors.
var (
	// ErrEmptyInput flags text with no extractable words. The batch layer
	// records it per book and keeps going.
	ErrEmptyInput = errors.New("text contains no extractable words")
)
