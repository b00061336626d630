// Package refine selects a specific letter within a band from the
// secondary text metrics.
package refine

import (
	"fmt"
	"math"

	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/model"
)

// Weights for the four secondary metrics in the composite score.
type Weights struct {
	TypeTokenRatio    float64
	LongWordRatio     float64
	CommasPerSentence float64
	ConnectiveDensity float64
}

// DefaultWeights returns the hand-tuned default weighting.
func DefaultWeights() Weights {
	return Weights{
		TypeTokenRatio:    0.6,
		LongWordRatio:     0.8,
		CommasPerSentence: 0.7,
		ConnectiveDensity: 0.5,
	}
}

// Range bounds a metric's expected values for normalization.
type Range struct {
	Min float64
	Max float64
}

// Bounds holds the normalization range per secondary metric.
type Bounds struct {
	TypeTokenRatio    Range
	LongWordRatio     Range
	CommasPerSentence Range
	ConnectiveDensity Range
}

// DefaultBounds returns the default normalization expectations.
func DefaultBounds() Bounds {
	return Bounds{
		TypeTokenRatio:    Range{Min: 0, Max: 0.5},
		LongWordRatio:     Range{Min: 0, Max: 0.2},
		CommasPerSentence: Range{Min: 0, Max: 2.0},
		ConnectiveDensity: Range{Min: 0, Max: 0.5},
	}
}

// Refiner maps a band plus secondary metrics onto a single letter. It is a
// pure function of its inputs: identical metrics always yield the
// identical letter.
type Refiner struct {
	weights Weights
	bounds  Bounds
}

// Option applies a configuration option to the Refiner.
type Option func(*Refiner)

// WithWeights overrides the metric weights.
func WithWeights(w Weights) Option {
	return func(r *Refiner) { r.weights = w }
}

// WithBounds overrides the normalization bounds.
func WithBounds(b Bounds) Option {
	return func(r *Refiner) { r.bounds = b }
}

// NewRefiner creates a refiner, validating weights and bounds. Violations
// return ErrInvalidWeights or ErrInvalidBounds at configuration time.
func NewRefiner(opts ...Option) (*Refiner, error) {
	r := &Refiner{
		weights: DefaultWeights(),
		bounds:  DefaultBounds(),
	}

	for _, opt := range opts {
		opt(r)
	}

	w := r.weights
	for _, v := range []float64{w.TypeTokenRatio, w.LongWordRatio, w.CommasPerSentence, w.ConnectiveDensity} {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: weights must be non-negative", ErrInvalidWeights)
		}
	}
	if w.TypeTokenRatio+w.LongWordRatio+w.CommasPerSentence+w.ConnectiveDensity <= 0 {
		return nil, fmt.Errorf("%w: at least one weight must be positive", ErrInvalidWeights)
	}
	b := r.bounds
	for _, rg := range []Range{b.TypeTokenRatio, b.LongWordRatio, b.CommasPerSentence, b.ConnectiveDensity} {
		if !(rg.Min < rg.Max) {
			return nil, fmt.Errorf("%w: min must be below max", ErrInvalidBounds)
		}
	}

	return r, nil
}

// Refine picks the letter within b for the given metrics. A score of 0
// maps to the band's easiest letter and 1 to its hardest; exact midpoints
// round toward the easier letter.
func (r *Refiner) Refine(b level.Band, m model.TextMetrics) level.Level {
	return r.Pick(b.Letters(), m)
}

// Pick selects one letter from an ordered range. A single-letter range is
// returned as-is regardless of the metrics.
func (r *Refiner) Pick(letters []level.Level, m model.TextMetrics) level.Level {
	if len(letters) == 1 {
		return letters[0]
	}

	score := r.Score(m)
	pos := score * float64(len(letters)-1)
	idx := int(math.Ceil(pos - 0.5))
	if idx < 0 {
		idx = 0
	}
	if idx > len(letters)-1 {
		idx = len(letters) - 1
	}
	return letters[idx]
}

// Score computes the weighted composite of the normalized secondary
// metrics, in [0,1].
func (r *Refiner) Score(m model.TextMetrics) float64 {
	w := r.weights
	total := w.TypeTokenRatio + w.LongWordRatio + w.CommasPerSentence + w.ConnectiveDensity

	sum := w.TypeTokenRatio*normalize(m.TypeTokenRatio, r.bounds.TypeTokenRatio) +
		w.LongWordRatio*normalize(m.LongWordRatio, r.bounds.LongWordRatio) +
		w.CommasPerSentence*normalize(m.CommasPerSentence, r.bounds.CommasPerSentence) +
		w.ConnectiveDensity*normalize(m.ConnectiveDensity, r.bounds.ConnectiveDensity)

	return sum / total
}

// normalize clamp-scales x into [0,1] against rg.
func normalize(x float64, rg Range) float64 {
	v := (x - rg.Min) / (rg.Max - rg.Min)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
