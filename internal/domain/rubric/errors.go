package rubric

import "errors"

// Sentinel kinds for rubric errors.
var (
	// ErrLevelNotFound flags a lookup for a letter the store does not
	// hold; with a validated store it indicates caller misuse.
	ErrLevelNotFound = errors.New("level not found in rubric")

	// ErrIncompleteRubric and ErrDuplicateLevel reject malformed rubric
	// data at load time, before any book is evaluated.
	ErrIncompleteRubric = errors.New("incomplete rubric")
	ErrDuplicateLevel   = errors.New("duplicate rubric level")
)
