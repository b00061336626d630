package rubricio

import "errors"

// Sentinel kinds for rubric loading errors.
var (
	ErrReadRubric  = errors.New("rubric read failed")
	ErrParseRubric = errors.New("rubric parse failed")
)
