package level

import "fmt"

// Default cut points on average sentence length separating the five bands.
// A text averaging at most DefaultCuts[i] words per sentence lands in band
// i; anything above the last cut lands in T-Z.
var defaultCuts = []float64{6, 10, 14, 19}

// DefaultCuts returns a copy of the default band cut points.
func DefaultCuts() []float64 {
	out := make([]float64, len(defaultCuts))
	copy(out, defaultCuts)
	return out
}

// Classifier maps average sentence length onto a Band using ordered
// threshold cuts. The mapping is monotonic: a longer average never yields
// an earlier band.
type Classifier struct {
	cuts []float64
}

// ClassifierOption applies a configuration option to the Classifier.
type ClassifierOption func(*Classifier)

// WithCuts overrides the band cut points. Exactly four strictly increasing
// non-negative values are required; NewClassifier validates them.
func WithCuts(cuts []float64) ClassifierOption {
	return func(c *Classifier) {
		if len(cuts) > 0 {
			c.cuts = make([]float64, len(cuts))
			copy(c.cuts, cuts)
		}
	}
}

// NewClassifier creates a band classifier, validating the configured cuts.
// Invalid cuts return ErrInvalidThresholds; this is a configuration-time
// failure, never a per-book one.
func NewClassifier(opts ...ClassifierOption) (*Classifier, error) {
	c := &Classifier{cuts: DefaultCuts()}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.cuts) != len(Bands())-1 {
		return nil, fmt.Errorf("%w: need %d cuts, got %d", ErrInvalidThresholds, len(Bands())-1, len(c.cuts))
	}
	prev := 0.0
	for _, cut := range c.cuts {
		if cut <= prev {
			return nil, fmt.Errorf("%w: cuts must be positive and strictly increasing", ErrInvalidThresholds)
		}
		prev = cut
	}

	return c, nil
}

// Band returns the band for the given average sentence length.
func (c *Classifier) Band(avgSentenceLength float64) Band {
	for i, cut := range c.cuts {
		if avgSentenceLength <= cut {
			return Band(i)
		}
	}
	return BandTZ
}
