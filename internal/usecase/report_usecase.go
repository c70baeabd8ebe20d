package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// EfficiencyReport bundles everything the dashboard's progress view needs in
// one round trip.
type EfficiencyReport struct {
	History    []*entity.EfficiencyDay   `json:"history"`
	Summary    *entity.EfficiencySummary `json:"summary"`
	Projection *entity.Projection        `json:"projection"`
}

// ReportUsecase defines the read-only aggregation use cases.
type ReportUsecase interface {
	// Efficiency builds the per-day completion history with its summary,
	// streak and projected outcome.
	Efficiency(ctx context.Context) (*EfficiencyReport, error)

	// Phases aggregates syllabus completion per phase label.
	Phases(ctx context.Context) ([]*entity.PhaseStat, error)
}
