package impl

import (
	"context"
	"testing"

	"tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTasks(t *testing.T, env *testEnv, date string, completed, pending int) {
	t.Helper()

	svc := NewTaskService(env.taskRepo)
	for i := 0; i < completed; i++ {
		task, err := svc.CreateTask(context.Background(), "done", date)
		require.NoError(t, err)
		require.NoError(t, svc.SetTaskCompleted(context.Background(), task.ID, true))
	}
	for i := 0; i < pending; i++ {
		_, err := svc.CreateTask(context.Background(), "open", date)
		require.NoError(t, err)
	}
}

func TestEfficiencyHistoryAndSummary(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.taskRepo, env.syllabusRepo, testConfig())

	seedTasks(t, env, "2026-08-30", 1, 2) // 33.3%
	seedTasks(t, env, "2026-08-31", 3, 1) // 75%
	seedTasks(t, env, "2026-09-01", 2, 0) // 100%

	report, err := svc.Efficiency(context.Background())
	require.NoError(t, err)

	history := report.History
	require.Len(t, history, 3)

	// Newest first.
	assert.Equal(t, "2026-09-01", history[0].Date)
	assert.InDelta(t, 100.0, history[0].Percent, 0.01)
	assert.Equal(t, "2026-08-31", history[1].Date)
	assert.InDelta(t, 75.0, history[1].Percent, 0.01)
	assert.Equal(t, "2026-08-30", history[2].Date)
	assert.InDelta(t, 33.3, history[2].Percent, 0.01)

	summary := report.Summary
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.DaysTracked)
	assert.Equal(t, 9, summary.TotalTasks)
	require.NotNil(t, summary.BestDay)
	assert.Equal(t, "2026-09-01", summary.BestDay.Date)
	assert.InDelta(t, 69.4, summary.AveragePercent, 0.05)

	// The two most recent days are at or above 50%, the third breaks the run.
	assert.Equal(t, 2, summary.Streak)
}

func TestEfficiencyEmptyHistory(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.taskRepo, env.syllabusRepo, testConfig())

	report, err := svc.Efficiency(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.History)
	assert.Equal(t, 0, report.Summary.DaysTracked)
	assert.Nil(t, report.Summary.BestDay)
	assert.Equal(t, 0, report.Summary.Streak)
}

func TestStreakStopsBelowThreshold(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.taskRepo, env.syllabusRepo, testConfig())

	seedTasks(t, env, "2026-08-30", 4, 0) // 100%, unreachable past the gap
	seedTasks(t, env, "2026-08-31", 1, 3) // 25%
	seedTasks(t, env, "2026-09-01", 1, 1) // 50%, counts

	report, err := svc.Efficiency(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Streak)
}

func TestStreakZeroWhenLatestDayBelowThreshold(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.taskRepo, env.syllabusRepo, testConfig())

	seedTasks(t, env, "2026-08-31", 19, 1) // 95%
	seedTasks(t, env, "2026-09-01", 3, 7)  // 30%

	report, err := svc.Efficiency(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Summary.Streak)
}

func TestProjectionWithoutData(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.taskRepo, env.syllabusRepo, testConfig())

	report, err := svc.Efficiency(context.Background())
	require.NoError(t, err)

	require.NotNil(t, report.Projection)
	assert.Equal(t, "Start your journey!", report.Projection.Label)
	assert.Zero(t, report.Projection.OverallPercent)
}

func TestProjectionFallsToLowestTierWithDefaultKeys(t *testing.T) {
	env := newTestEnv(t)

	// Seed the real catalog and complete everything. The default tier keys
	// ("A".."D") match none of the seeded phase labels, so the projection
	// stays at the floor tier no matter the progress.
	syllabusSvc := NewSyllabusService(env.txManager, env.syllabusRepo, env.logger)
	require.NoError(t, syllabusSvc.EnsureCatalog(context.Background()))

	items, err := syllabusSvc.ListSyllabus(context.Background())
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, syllabusSvc.UpdateStatus(context.Background(), item.ID, entity.StatusCompleted))
	}

	svc := NewReportService(env.taskRepo, env.syllabusRepo, testConfig())
	report, err := svc.Efficiency(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Projected: 20-50 Marks", report.Projection.Label)
	assert.InDelta(t, 100.0, report.Projection.OverallPercent, 0.01)
}

func TestProjectionTiersWithConfiguredKeys(t *testing.T) {
	env := newTestEnv(t)

	syllabusSvc := NewSyllabusService(env.txManager, env.syllabusRepo, env.logger)
	require.NoError(t, syllabusSvc.EnsureCatalog(context.Background()))

	// Complete all of the final phase (2 of 2 chapters, above the 70% bar).
	items, err := syllabusSvc.ListSyllabus(context.Background())
	require.NoError(t, err)
	for _, item := range items {
		if item.Phase == "Phase 4 (Days 111-120)" {
			require.NoError(t, syllabusSvc.UpdateStatus(context.Background(), item.ID, entity.StatusCompleted))
		}
	}

	cfg := testConfig()
	cfg.Projection.PhaseD = "Phase 4 (Days 111-120)"

	svc := NewReportService(env.taskRepo, env.syllabusRepo, cfg)
	report, err := svc.Efficiency(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Projected: 120-150 Marks", report.Projection.Label)
}

func TestPhases(t *testing.T) {
	env := newTestEnv(t)

	syllabusSvc := NewSyllabusService(env.txManager, env.syllabusRepo, env.logger)
	require.NoError(t, syllabusSvc.EnsureCatalog(context.Background()))

	svc := NewReportService(env.taskRepo, env.syllabusRepo, testConfig())
	stats, err := svc.Phases(context.Background())
	require.NoError(t, err)

	var total int
	byPhase := make(map[string]*entity.PhaseStat)
	for _, stat := range stats {
		total += stat.Total
		byPhase[stat.Phase] = stat
	}
	assert.Equal(t, 35, total)

	phase4, ok := byPhase["Phase 4 (Days 111-120)"]
	require.True(t, ok)
	assert.Equal(t, 2, phase4.Total)
	assert.Equal(t, 0, phase4.Completed)
}
