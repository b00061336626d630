// Package repository defines the results store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/model"
)

// Record is one stored leveling outcome, success or typed failure.
type Record struct {
	// ResultID uniquely identifies this evaluation record.
	ResultID string
	BookID   string
	Filename string

	// Assignment is nil when the book failed to evaluate.
	Assignment *model.LevelAssignment

	// Err holds the per-book failure message, empty on success.
	Err string

	CreatedAt time.Time
}

// Failed reports whether the record captures a per-book failure.
func (r Record) Failed() bool {
	return r.Err != ""
}

// Store provides read/write access to evaluated results.
type Store interface {
	// Put stores a record, assigning its ResultID and CreatedAt.
	// Re-submitting a book id replaces the earlier record in place.
	Put(ctx context.Context, rec Record) Record

	// Get returns the record for a book id.
	// Returns ErrNotFound when the book was never evaluated.
	Get(ctx context.Context, bookID string) (Record, error)

	// List returns all records in first-evaluation order.
	List(ctx context.Context) []Record

	// Count returns the number of stored records.
	Count(ctx context.Context) int

	// Distribution returns how many stored successes landed on each level.
	Distribution(ctx context.Context) map[level.Level]int
}
