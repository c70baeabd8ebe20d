package impl

import (
	"context"
	"math"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
)

// Streak counts days at or above this completion percentage.
const streakThreshold = 50.0

// Projection tiers fire when a phase's completed count exceeds this share of
// its total.
const projectionThreshold = 0.7

// Projection labels, highest tier first. The zero-data label invites the user
// to start instead of projecting from nothing.
const (
	projectionTierD  = "Projected: 120-150 Marks"
	projectionTierC  = "Projected: 95-125 Marks"
	projectionTierB  = "Projected: 80-100 Marks"
	projectionTierA  = "Projected: 50-70 Marks"
	projectionFloor  = "Projected: 20-50 Marks"
	projectionNoData = "Start your journey!"
)

type reportService struct {
	taskRepo     repository.TaskRepository
	syllabusRepo repository.SyllabusRepository
	projection   config.ProjectionConfig
}

// NewReportService creates a new report service instance.
func NewReportService(
	taskRepo repository.TaskRepository,
	syllabusRepo repository.SyllabusRepository,
	cfg *config.Config,
) usecase.ReportUsecase {
	return &reportService{
		taskRepo:     taskRepo,
		syllabusRepo: syllabusRepo,
		projection:   cfg.Projection,
	}
}

// Efficiency builds the per-day completion history with its summary, streak
// and projected outcome.
func (s *reportService) Efficiency(ctx context.Context) (*usecase.EfficiencyReport, error) {
	history, err := s.taskRepo.EfficiencyHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load efficiency history")
	}

	stats, err := s.syllabusRepo.StatsByPhase(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load phase stats")
	}

	return &usecase.EfficiencyReport{
		History:    history,
		Summary:    summarize(history),
		Projection: s.project(stats),
	}, nil
}

// Phases aggregates syllabus completion per phase label.
func (s *reportService) Phases(ctx context.Context) ([]*entity.PhaseStat, error) {
	stats, err := s.syllabusRepo.StatsByPhase(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load phase stats")
	}

	return stats, nil
}

// summarize derives the stat cards from the history. History rows arrive
// newest first, which the streak walk depends on.
func summarize(history []*entity.EfficiencyDay) *entity.EfficiencySummary {
	summary := &entity.EfficiencySummary{
		DaysTracked: len(history),
	}

	if len(history) == 0 {
		return summary
	}

	var percentSum float64
	for _, day := range history {
		percentSum += day.Percent
		summary.TotalTasks += day.Total

		if summary.BestDay == nil || day.Percent > summary.BestDay.Percent {
			summary.BestDay = day
		}
	}

	summary.AveragePercent = math.Round(percentSum/float64(len(history))*10) / 10

	for _, day := range history {
		if day.Percent < streakThreshold {
			break
		}
		summary.Streak++
	}

	return summary
}

// project maps overall syllabus completion onto the outcome tiers. Tiers are
// checked highest first; each fires when its configured phase is more than 70%
// complete.
func (s *reportService) project(stats []*entity.PhaseStat) *entity.Projection {
	var total, completed int
	byPhase := make(map[string]*entity.PhaseStat, len(stats))
	for _, stat := range stats {
		total += stat.Total
		completed += stat.Completed
		byPhase[stat.Phase] = stat
	}

	if total == 0 {
		return &entity.Projection{Label: projectionNoData, OverallPercent: 0}
	}

	overall := math.Round(float64(completed)/float64(total)*100*10) / 10

	tiers := []struct {
		phase string
		label string
	}{
		{s.projection.PhaseD, projectionTierD},
		{s.projection.PhaseC, projectionTierC},
		{s.projection.PhaseB, projectionTierB},
		{s.projection.PhaseA, projectionTierA},
	}

	for _, tier := range tiers {
		stat, ok := byPhase[tier.phase]
		if !ok {
			continue
		}
		if float64(stat.Completed) > float64(stat.Total)*projectionThreshold {
			return &entity.Projection{Label: tier.label, OverallPercent: overall}
		}
	}

	return &entity.Projection{Label: projectionFloor, OverallPercent: overall}
}
