package entity

// EfficiencyDay is one row of the daily completion history. Rows exist only
// for dates that have at least one task, so Percent never divides by zero.
type EfficiencyDay struct {
	Date      string  `json:"date"`
	Total     int     `json:"total_tasks"`
	Completed int     `json:"completed_tasks"`
	Percent   float64 `json:"efficiency_percent"` // round(completed/total*100, 1)
}

// EfficiencySummary aggregates the history into the dashboard stat cards.
type EfficiencySummary struct {
	AveragePercent float64        `json:"average_percent"`
	BestDay        *EfficiencyDay `json:"best_day,omitempty"`
	DaysTracked    int            `json:"days_tracked"`
	TotalTasks     int            `json:"total_tasks"`
	Streak         int            `json:"streak"` // Consecutive most-recent days at >= 50%.
}

// PhaseStat is the per-phase completion count over the syllabus catalog.
type PhaseStat struct {
	Phase     string `json:"phase"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// Projection is the projected-outcome label with the overall completion ratio
// it was derived from.
type Projection struct {
	Label          string  `json:"label"`
	OverallPercent float64 `json:"overall_percent"`
}
