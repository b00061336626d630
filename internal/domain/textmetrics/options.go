package textmetrics

import "strings"

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithLongWordMinLen sets the character threshold above which a word counts
// as long.
func WithLongWordMinLen(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.longWordMinLen = n
		}
	}
}

// WithSampleLimit caps how many characters of a book are analyzed.
// Zero or negative disables the cap.
func WithSampleLimit(n int) Option {
	return func(e *Extractor) {
		e.sampleLimit = n
	}
}

// WithExtraMarkers adds connective/subordination markers on top of the
// built-in list. Markers are matched case-insensitively per token.
func WithExtraMarkers(markers ...string) Option {
	return func(e *Extractor) {
		for _, m := range markers {
			m = strings.ToLower(strings.TrimSpace(m))
			if m != "" {
				e.markers[m] = struct{}{}
			}
		}
	}
}

// WithMarkers replaces the marker list entirely.
func WithMarkers(markers []string) Option {
	return func(e *Extractor) {
		set := make(map[string]struct{}, len(markers))
		for _, m := range markers {
			m = strings.ToLower(strings.TrimSpace(m))
			if m != "" {
				set[m] = struct{}{}
			}
		}
		e.markers = set
	}
}
