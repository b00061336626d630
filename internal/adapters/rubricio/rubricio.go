// Package rubricio loads rubric files into the in-memory rubric store.
// The engine itself never parses rubric sources; this adapter sits at the
// boundary and rejects malformed data before any book is evaluated.
package rubricio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/rubric"
)

// entry mirrors one row of the rubric file.
type entry struct {
	Level             string `yaml:"level"`
	SentenceStructure string `yaml:"sentence_structure"`
	Vocabulary        string `yaml:"vocabulary"`
	Imagery           string `yaml:"imagery"`
}

// fileSchema is the top-level rubric document.
type fileSchema struct {
	Levels []entry `yaml:"levels"`
}

// Load parses a YAML rubric document and builds a validated store.
func Load(r io.Reader) (*rubric.Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadRubric, err)
	}

	var doc fileSchema
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseRubric, err)
	}
	if len(doc.Levels) == 0 {
		return nil, fmt.Errorf("%w: no levels found", ErrParseRubric)
	}

	descriptors := make([]rubric.Descriptor, 0, len(doc.Levels))
	for _, e := range doc.Levels {
		descriptors = append(descriptors, rubric.Descriptor{
			Level:             level.Level(strings.ToUpper(strings.TrimSpace(e.Level))),
			SentenceStructure: strings.TrimSpace(e.SentenceStructure),
			Vocabulary:        strings.TrimSpace(e.Vocabulary),
			Imagery:           strings.TrimSpace(e.Imagery),
		})
	}

	store, err := rubric.NewStore(descriptors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseRubric, err)
	}
	return store, nil
}

// LoadFile loads a rubric from a file path.
func LoadFile(path string) (*rubric.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadRubric, err)
	}
	defer f.Close()
	return Load(f)
}
