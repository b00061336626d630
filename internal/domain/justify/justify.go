// Package justify composes the human-readable explanation attached to a
// level assignment. The output is informational text; nothing downstream
// parses it.
package justify

import (
	"fmt"
	"strings"

	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/internal/domain/rubric"
)

// Qualitative cutoffs on average sentence length.
const (
	lowComplexityMax  = 6
	highComplexityMin = 15
)

// Build produces the justification for an assignment: the level and band,
// the rubric's three descriptor fields for that level, and the metric
// values as evidence in their stable order.
func Build(d rubric.Descriptor, b level.Band, m model.TextMetrics) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Assigned level %s within band %s. ", d.Level, b)
	fmt.Fprintf(&sb, "Average of %.1f words per sentence indicates %s sentence complexity. ",
		m.AvgSentenceLength, complexity(m.AvgSentenceLength))

	if m.CommasPerSentence > 0.3 || m.ConnectiveDensity > 0.3 {
		sb.WriteString("Connectives and comma use point to compound or subordinate clauses. ")
	} else {
		sb.WriteString("Few connectives or subordinate clauses; sentences are mostly simple and direct. ")
	}

	fmt.Fprintf(&sb, "Rubric for level %s (sentence and structure: %s | vocabulary: %s | imagery: %s). ",
		d.Level, d.SentenceStructure, d.Vocabulary, d.Imagery)
	fmt.Fprintf(&sb, "Evidence: %s", m.Evidence())

	return sb.String()
}

func complexity(avgSentenceLength float64) string {
	switch {
	case avgSentenceLength >= highComplexityMin:
		return "high"
	case avgSentenceLength <= lowComplexityMax:
		return "low"
	default:
		return "moderate"
	}
}
