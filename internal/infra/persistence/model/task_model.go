package model

// DailyTaskModel is the GORM-specific struct for the 'daily_tasks' table.
// Date is an ISO-8601 date string; tasks never move between dates.
type DailyTaskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	TaskName    string `gorm:"type:varchar(512);not null"`
	Date        string `gorm:"type:varchar(10);index;not null"`
	IsCompleted bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (DailyTaskModel) TableName() string {
	return "daily_tasks"
}
