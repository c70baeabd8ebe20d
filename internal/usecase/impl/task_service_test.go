package impl

import (
	"context"
	"testing"

	domainerrors "tracker/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListTasks(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTaskService(env.taskRepo)

	first, err := svc.CreateTask(context.Background(), "Kinematics PYQs", "2026-09-01")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.IsCompleted)

	second, err := svc.CreateTask(context.Background(), "Mole concept revision", "2026-09-01")
	require.NoError(t, err)

	_, err = svc.CreateTask(context.Background(), "Different day", "2026-09-02")
	require.NoError(t, err)

	tasks, err := svc.ListTasks(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Insertion order within the day.
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
}

func TestCreateTaskRejectsBlankName(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTaskService(env.taskRepo)

	_, err := svc.CreateTask(context.Background(), "   ", "2026-09-01")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSetTaskCompleted(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTaskService(env.taskRepo)

	task, err := svc.CreateTask(context.Background(), "Waves numericals", "2026-09-01")
	require.NoError(t, err)

	require.NoError(t, svc.SetTaskCompleted(context.Background(), task.ID, true))

	tasks, err := svc.ListTasks(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].IsCompleted)

	// Unknown ids are silently ignored.
	assert.NoError(t, svc.SetTaskCompleted(context.Background(), 9999, true))
}

func TestDeleteTask(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTaskService(env.taskRepo)

	task, err := svc.CreateTask(context.Background(), "Error notebook", "2026-09-01")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(context.Background(), task.ID))

	tasks, err := svc.ListTasks(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.NoError(t, svc.DeleteTask(context.Background(), task.ID))
}
