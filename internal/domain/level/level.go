// Package level defines the A-Z reading scale (Fountas & Pinnell) and its
// five coarse bands, plus the band classifier driven by average sentence
// length.
package level

import (
	"fmt"
	"strings"
)

// Level is a single reading level letter, "A" (easiest) through "Z".
type Level string

// Valid reports whether l is a single letter within A-Z.
func (l Level) Valid() bool {
	return len(l) == 1 && l[0] >= 'A' && l[0] <= 'Z'
}

// Before reports whether l orders strictly before other on the scale.
func (l Level) Before(other Level) bool {
	return l < other
}

// All returns the 26 levels in ascending difficulty order.
func All() []Level {
	out := make([]Level, 0, 26)
	for c := byte('A'); c <= 'Z'; c++ {
		out = append(out, Level(string(c)))
	}
	return out
}

// Band is one of the five coarse ranges partitioning the A-Z scale.
type Band int

// Bands in ascending difficulty order. They cover A-Z with no gaps or
// overlaps.
const (
	BandAD Band = iota
	BandEI
	BandJM
	BandNS
	BandTZ
)

// bandRanges maps each band to its first and last letter.
var bandRanges = [...]struct{ first, last byte }{
	BandAD: {'A', 'D'},
	BandEI: {'E', 'I'},
	BandJM: {'J', 'M'},
	BandNS: {'N', 'S'},
	BandTZ: {'T', 'Z'},
}

// Bands returns the five bands in ascending order.
func Bands() []Band {
	return []Band{BandAD, BandEI, BandJM, BandNS, BandTZ}
}

// String renders the band as its letter range, e.g. "A-D".
func (b Band) String() string {
	if b < BandAD || b > BandTZ {
		return "?"
	}
	r := bandRanges[b]
	return string(r.first) + "-" + string(r.last)
}

// MarshalJSON serializes the band as its letter range string.
func (b Band) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON parses a band from its letter range string.
func (b *Band) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	for _, cand := range Bands() {
		if cand.String() == s {
			*b = cand
			return nil
		}
	}
	return fmt.Errorf("unknown band %q", s)
}

// First returns the easiest letter of the band.
func (b Band) First() Level {
	return Level(string(bandRanges[b].first))
}

// Last returns the hardest letter of the band.
func (b Band) Last() Level {
	return Level(string(bandRanges[b].last))
}

// Letters returns the band's letters in ascending difficulty order.
func (b Band) Letters() []Level {
	r := bandRanges[b]
	out := make([]Level, 0, r.last-r.first+1)
	for c := r.first; c <= r.last; c++ {
		out = append(out, Level(string(c)))
	}
	return out
}

// Contains reports whether l falls inside the band's range.
func (b Band) Contains(l Level) bool {
	if !l.Valid() {
		return false
	}
	r := bandRanges[b]
	return l[0] >= r.first && l[0] <= r.last
}

// BandOf returns the band containing l. The second return is false for an
// invalid level.
func BandOf(l Level) (Band, bool) {
	for _, b := range Bands() {
		if b.Contains(l) {
			return b, true
		}
	}
	return 0, false
}
