// Package config defines service configuration structures and loading
// hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and NIVELA_ env vars.
// - Threshold and weighting profiles are plain data here; the domain
//   constructors revalidate them.
package config

import (
	"context"
	"runtime"
)

// Range bounds a metric's expected values for normalization.
type Range struct {
	Min float64 `koanf:"min"`
	Max float64 `koanf:"max"`
}

// RefineWeights holds the secondary-metric weights for letter refinement.
type RefineWeights struct {
	TypeTokenRatio    float64 `koanf:"type_token_ratio"`
	LongWordRatio     float64 `koanf:"long_word_ratio"`
	CommasPerSentence float64 `koanf:"commas_per_sentence"`
	ConnectiveDensity float64 `koanf:"connective_density"`
}

// RefineBounds holds normalization ranges per secondary metric.
type RefineBounds struct {
	TypeTokenRatio    Range `koanf:"type_token_ratio"`
	LongWordRatio     Range `koanf:"long_word_ratio"`
	CommasPerSentence Range `koanf:"commas_per_sentence"`
	ConnectiveDensity Range `koanf:"connective_density"`
}

// RefineConfig groups the refinement tuning profile.
type RefineConfig struct {
	Weights RefineWeights `koanf:"weights"`
	Bounds  RefineBounds  `koanf:"bounds"`
}

// Config contains process configuration. The heuristic constants are
// deliberately injectable so profiles can be tuned without code changes.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// RubricPath points to the YAML rubric file loaded at startup.
	RubricPath string `koanf:"rubric_path"`

	// WorkerCount sets the number of batch evaluation workers.
	WorkerCount int `koanf:"worker_count"`

	// SampleLimit caps the characters analyzed per book.
	SampleLimit int `koanf:"sample_limit"`

	// LongWordMinLen is the character threshold for the long-word ratio.
	LongWordMinLen int `koanf:"long_word_min_len"`

	// ExtraConnectives extends the built-in connective marker list, e.g.
	// for rubrics applied to non-English manuscripts.
	ExtraConnectives []string `koanf:"extra_connectives"`

	// BandCuts are the four average-sentence-length thresholds separating
	// the A-D, E-I, J-M, N-S, and T-Z bands. Must be strictly increasing.
	BandCuts []float64 `koanf:"band_cuts"`

	// Refine tunes the within-band letter selection.
	Refine RefineConfig `koanf:"refine"`
}

// New creates a Config with hand-tuned defaults. The cuts and weights are
// heuristics, not ground truth; override them per collection as needed.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		RubricPath:     "rubric.yaml",
		WorkerCount:    runtime.NumCPU() * 2,
		SampleLimit:    50_000,
		LongWordMinLen: 7,
		BandCuts:       []float64{6, 10, 14, 19},
		Refine: RefineConfig{
			Weights: RefineWeights{
				TypeTokenRatio:    0.6,
				LongWordRatio:     0.8,
				CommasPerSentence: 0.7,
				ConnectiveDensity: 0.5,
			},
			Bounds: RefineBounds{
				TypeTokenRatio:    Range{Min: 0, Max: 0.5},
				LongWordRatio:     Range{Min: 0, Max: 0.2},
				CommasPerSentence: Range{Min: 0, Max: 2.0},
				ConnectiveDensity: Range{Min: 0, Max: 0.5},
			},
		},
	}
}
