package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSyllabusItemNotFound is returned when a chapter id has no catalog row.
var ErrSyllabusItemNotFound = errors.New("syllabus item not found")

// SyllabusRepository persists the fixed curriculum checklist.
type SyllabusRepository interface {
	// Count returns the number of catalog rows currently stored.
	Count(ctx context.Context) (int64, error)

	// Seed inserts the catalog rows. Callers gate this on Count() == 0; the
	// catalog is never re-synced against later edits.
	Seed(ctx context.Context, items []*entity.SyllabusItem) error

	// List returns the whole catalog ordered by id.
	List(ctx context.Context) ([]*entity.SyllabusItem, error)

	// UpdateStatus sets the status of one chapter.
	UpdateStatus(ctx context.Context, id int64, status entity.SyllabusStatus) error

	// StatsByPhase aggregates total and completed counts per phase label.
	StatsByPhase(ctx context.Context) ([]*entity.PhaseStat, error)
}
