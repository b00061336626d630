package app

import "errors"

// ErrNoRubric indicates the service was started without a rubric store.
var ErrNoRubric = errors.New("no rubric store configured")
