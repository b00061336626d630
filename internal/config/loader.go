package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if NIVELA_CONFIG is set
//  3. env (prefix NIVELA_)
//
// Threshold violations fail here, before any book is processed.
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("NIVELA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: NIVELA_ADDR, NIVELA_WORKER_COUNT, ...
	// Underscores are preserved to match the koanf struct tags.
	envProvider := env.Provider("NIVELA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "nivela_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parts of the configuration that would otherwise
// invalidate every evaluated book.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	if c.LongWordMinLen < 1 {
		return fmt.Errorf("%w: long_word_min_len must be positive", ErrInvalidConfig)
	}

	if len(c.BandCuts) != 4 {
		return fmt.Errorf("%w: band_cuts needs exactly 4 values", ErrInvalidThresholds)
	}
	prev := 0.0
	for _, cut := range c.BandCuts {
		if cut <= prev {
			return fmt.Errorf("%w: band_cuts must be positive and strictly increasing", ErrInvalidThresholds)
		}
		prev = cut
	}

	w := c.Refine.Weights
	sum := 0.0
	for _, v := range []float64{w.TypeTokenRatio, w.LongWordRatio, w.CommasPerSentence, w.ConnectiveDensity} {
		if v < 0 {
			return fmt.Errorf("%w: refine weights must be non-negative", ErrInvalidThresholds)
		}
		sum += v
	}
	if sum <= 0 {
		return fmt.Errorf("%w: refine weights must not all be zero", ErrInvalidThresholds)
	}

	b := c.Refine.Bounds
	for _, rg := range []Range{b.TypeTokenRatio, b.LongWordRatio, b.CommasPerSentence, b.ConnectiveDensity} {
		if rg.Min >= rg.Max {
			return fmt.Errorf("%w: refine bounds min must be below max", ErrInvalidThresholds)
		}
	}

	return nil
}
