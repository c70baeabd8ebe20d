package impl

import (
	"context"
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCatalogSeedsOnce(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSyllabusService(env.txManager, env.syllabusRepo, env.logger)

	require.NoError(t, svc.EnsureCatalog(context.Background()))

	items, err := svc.ListSyllabus(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 35)

	// Every chapter starts untouched.
	for _, item := range items {
		assert.Equal(t, entity.StatusNotStarted, item.Status)
	}

	// The catalog keeps its authoring order.
	assert.Equal(t, "Phase 1 (Wk 1-2)", items[0].Phase)
	assert.Equal(t, "Units & Dimensions, Kinematics, NLM, Friction", items[0].Chapter)
	assert.Equal(t, "Phase 4 (Days 111-120)", items[34].Phase)
}

func TestEnsureCatalogPreservesEdits(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSyllabusService(env.txManager, env.syllabusRepo, env.logger)

	require.NoError(t, svc.EnsureCatalog(context.Background()))

	items, err := svc.ListSyllabus(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), items[0].ID, entity.StatusCompleted))

	// A second run must not duplicate rows or reset progress.
	require.NoError(t, svc.EnsureCatalog(context.Background()))

	items, err = svc.ListSyllabus(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 35)
	assert.Equal(t, entity.StatusCompleted, items[0].Status)
}

func TestUpdateStatusValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSyllabusService(env.txManager, env.syllabusRepo, env.logger)

	require.NoError(t, svc.EnsureCatalog(context.Background()))

	err := svc.UpdateStatus(context.Background(), 1, entity.SyllabusStatus("Done"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 9999, entity.StatusInProgress)
	assert.ErrorIs(t, err, domainerrors.ErrSyllabusItemNotFound)

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, entity.StatusInProgress))

	items, listErr := svc.ListSyllabus(context.Background())
	require.NoError(t, listErr)
	assert.Equal(t, entity.StatusInProgress, items[0].Status)
}
