package impl

import (
	"context"
	"log/slog"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
)

type syllabusService struct {
	txManager    repository.TransactionManager
	syllabusRepo repository.SyllabusRepository
	logger       *slog.Logger
}

// NewSyllabusService creates a new syllabus service instance.
func NewSyllabusService(
	txManager repository.TransactionManager,
	syllabusRepo repository.SyllabusRepository,
	logger *slog.Logger,
) usecase.SyllabusUsecase {
	return &syllabusService{
		txManager:    txManager,
		syllabusRepo: syllabusRepo,
		logger:       logger,
	}
}

// EnsureCatalog seeds the built-in curriculum on first run. The count check
// and the insert run in one transaction so a crash mid-seed cannot leave a
// half-written catalog behind.
func (s *syllabusService) EnsureCatalog(ctx context.Context) error {
	return s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		count, err := repos.SyllabusRepo().Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count syllabus items")
		}

		if count > 0 {
			return nil
		}

		items := entity.DefaultCatalog()
		if err := repos.SyllabusRepo().Seed(ctx, items); err != nil {
			return errors.Wrap(err, "failed to seed syllabus catalog")
		}

		s.logger.Info("seeded syllabus catalog", slog.Int("items", len(items)))

		return nil
	})
}

// ListSyllabus returns the whole checklist in catalog order.
func (s *syllabusService) ListSyllabus(ctx context.Context) ([]*entity.SyllabusItem, error) {
	items, err := s.syllabusRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list syllabus")
	}

	return items, nil
}

// UpdateStatus moves one chapter to a new progress state.
func (s *syllabusService) UpdateStatus(ctx context.Context, id int64, status entity.SyllabusStatus) error {
	if !status.Valid() {
		return domainerrors.ErrInvalidStatus
	}

	if err := s.syllabusRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrSyllabusItemNotFound) {
			return domainerrors.ErrSyllabusItemNotFound
		}

		return errors.Wrap(err, "failed to update syllabus status")
	}

	return nil
}
