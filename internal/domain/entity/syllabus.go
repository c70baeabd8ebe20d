package entity

// SyllabusStatus is the progress state of one syllabus chapter.
type SyllabusStatus string

const (
	StatusNotStarted SyllabusStatus = "Not Started"
	StatusInProgress SyllabusStatus = "In Progress"
	StatusCompleted  SyllabusStatus = "Completed"
)

// Valid reports whether the status is one of the three known values.
// The store layer trusts its caller; the HTTP boundary rejects anything else.
func (s SyllabusStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}

	return false
}

// SyllabusItem is one chapter of the fixed study curriculum. Items are seeded
// once from the built-in catalog; only Status changes afterwards.
type SyllabusItem struct {
	ID      int64          `json:"id"`
	Phase   string         `json:"phase"`   // Ordered human-meaningful grouping, not a foreign key.
	Subject string         `json:"subject"`
	Chapter string         `json:"chapter"`
	Status  SyllabusStatus `json:"status"`
}
