// Package model contains domain models passed between layers.
package model

import (
	"fmt"

	"github.com/acervo/nivela/internal/domain/level"
)

// Book is one manuscript submitted for leveling. The text is already
// extracted plain text; extraction from PDF/EPUB happens upstream.
type Book struct {
	ID       string // ISBN when the filename carries one, otherwise the filename
	Filename string
	Text     string
}

// TextMetrics is the fixed set of linguistic statistics computed once per
// book. Immutable once computed.
type TextMetrics struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	TypeTokenRatio    float64 `json:"type_token_ratio"`
	LongWordRatio     float64 `json:"long_word_ratio"`
	CommasPerSentence float64 `json:"commas_per_sentence"`
	ConnectiveDensity float64 `json:"connective_density"`
	Sentences         int     `json:"sentences"`
	Words             int     `json:"words"`
}

// Evidence renders the metric values in their stable order:
// avg sentence length, type-token ratio, long word ratio, commas per
// sentence, connective density.
func (m TextMetrics) Evidence() string {
	return fmt.Sprintf(
		"avg_sentence_length=%.1f | type_token_ratio=%.2f | long_word_ratio=%.2f | commas_per_sentence=%.2f | connective_density=%.2f",
		m.AvgSentenceLength,
		m.TypeTokenRatio,
		m.LongWordRatio,
		m.CommasPerSentence,
		m.ConnectiveDensity,
	)
}

// LevelAssignment is the engine's output for one book.
type LevelAssignment struct {
	Level         level.Level `json:"level"`
	Band          level.Band  `json:"band"`
	Justification string      `json:"justification"`
	Evidence      TextMetrics `json:"evidence"`
}
