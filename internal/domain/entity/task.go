package entity

// DailyTask is one ad-hoc task scoped to a single calendar day.
// Date is an ISO-8601 date string (YYYY-MM-DD); tasks never move between dates.
type DailyTask struct {
	ID          int64  `json:"id"`
	TaskName    string `json:"task_name"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"is_completed"`
}
