package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// SyllabusUsecase defines the curriculum checklist use cases.
type SyllabusUsecase interface {
	// EnsureCatalog seeds the built-in curriculum on first run. It is a no-op
	// when the table already has rows, so later status edits survive restarts.
	EnsureCatalog(ctx context.Context) error

	// ListSyllabus returns the whole checklist in catalog order.
	ListSyllabus(ctx context.Context) ([]*entity.SyllabusItem, error)

	// UpdateStatus moves one chapter to a new progress state.
	UpdateStatus(ctx context.Context, id int64, status entity.SyllabusStatus) error
}
