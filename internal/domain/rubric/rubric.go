// Package rubric holds the pedagogical reference table describing, per
// level, expected sentence structure, vocabulary, and imagery.
package rubric

import (
	"context"
	"fmt"

	"github.com/acervo/nivela/internal/domain/level"
)

// Descriptor is the rubric's free-form text for one level.
type Descriptor struct {
	Level             level.Level
	SentenceStructure string
	Vocabulary        string
	Imagery           string
}

// Store is a read-only lookup of level descriptors. It is loaded once and
// safe for concurrent reads without locking; it never mutates after
// construction.
type Store struct {
	byLevel map[level.Level]Descriptor
}

// NewStore builds a store from descriptors, requiring every letter A-Z to
// appear exactly once. Violations return ErrIncompleteRubric or
// ErrDuplicateLevel.
func NewStore(descriptors []Descriptor) (*Store, error) {
	byLevel := make(map[level.Level]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if !d.Level.Valid() {
			return nil, fmt.Errorf("%w: %q is not a level letter", ErrIncompleteRubric, d.Level)
		}
		if _, dup := byLevel[d.Level]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLevel, d.Level)
		}
		byLevel[d.Level] = d
	}
	for _, l := range level.All() {
		if _, ok := byLevel[l]; !ok {
			return nil, fmt.Errorf("%w: missing level %s", ErrIncompleteRubric, l)
		}
	}
	return &Store{byLevel: byLevel}, nil
}

// Descriptor returns the entry for l. A well-formed store only fails for
// letters outside A-Z, with ErrLevelNotFound.
func (s *Store) Descriptor(_ context.Context, l level.Level) (Descriptor, error) {
	d, ok := s.byLevel[l]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrLevelNotFound, l)
	}
	return d, nil
}

// Len returns the number of descriptors held.
func (s *Store) Len() int {
	return len(s.byLevel)
}
