// Package textmetrics computes quantitative linguistic statistics from raw
// manuscript text.
package textmetrics

import (
	"context"
	"strings"
	"unicode"

	"github.com/acervo/nivela/internal/domain/model"
)

// Default extraction configuration constants.
const (
	defaultLongWordMinLen = 7
	defaultSampleLimit    = 50_000 // characters analyzed per book
)

// Extractor turns raw text into a model.TextMetrics record. It is pure and
// safe for concurrent use once constructed.
type Extractor struct {
	longWordMinLen int
	sampleLimit    int
	markers        map[string]struct{}
}

// NewExtractor creates an extractor with configuration options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		longWordMinLen: defaultLongWordMinLen,
		sampleLimit:    defaultSampleLimit,
		markers:        defaultMarkers(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract computes the metric set for text. It returns ErrEmptyInput when
// no words survive segmentation; there is no other failure mode.
func (e *Extractor) Extract(_ context.Context, text string) (model.TextMetrics, error) {
	sample := e.sample(text)

	sentences := splitSentences(sample)
	if len(sentences) == 0 {
		// No terminal punctuation at all: treat the whole text as a
		// single sentence so counts never divide by zero.
		sentences = []string{sample}
	}

	var (
		totalWords int
		longWords  int
		connective int
		distinct   = make(map[string]struct{})
	)
	for _, s := range sentences {
		words := splitWords(s)
		totalWords += len(words)
		hasMarker := false
		for _, w := range words {
			if len([]rune(w)) >= e.longWordMinLen {
				longWords++
			}
			lw := strings.ToLower(w)
			distinct[lw] = struct{}{}
			if _, ok := e.markers[lw]; ok {
				hasMarker = true
			}
		}
		if hasMarker {
			connective++
		}
	}

	if totalWords == 0 {
		return model.TextMetrics{}, ErrEmptyInput
	}

	sentCount := float64(len(sentences))
	return model.TextMetrics{
		AvgSentenceLength: float64(totalWords) / sentCount,
		TypeTokenRatio:    float64(len(distinct)) / float64(totalWords),
		LongWordRatio:     float64(longWords) / float64(totalWords),
		CommasPerSentence: float64(strings.Count(sample, ",")) / sentCount,
		ConnectiveDensity: float64(connective) / sentCount,
		Sentences:         len(sentences),
		Words:             totalWords,
	}, nil
}

// sample collapses whitespace and caps the analyzed text length.
func (e *Extractor) sample(text string) string {
	s := strings.Join(strings.Fields(text), " ")
	if e.sampleLimit > 0 {
		if r := []rune(s); len(r) > e.sampleLimit {
			s = string(r[:e.sampleLimit])
		}
	}
	return s
}

// splitSentences cuts text on terminal punctuation, discarding empty
// fragments.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitWords cuts a sentence on whitespace and strips surrounding
// punctuation from each token. Inner apostrophes and hyphens survive.
func splitWords(s string) []string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
