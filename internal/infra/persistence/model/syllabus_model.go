package model

// SyllabusItemModel is the GORM-specific struct for the 'syllabus_tracker'
// table. Rows are seeded once from the built-in catalog.
type SyllabusItemModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Phase   string `gorm:"type:varchar(64)"`
	Subject string `gorm:"type:varchar(64)"`
	Chapter string `gorm:"type:varchar(255)"`
	Status  string `gorm:"type:varchar(32);not null;default:'Not Started'"`
}

// TableName explicitly sets the table name for GORM.
func (SyllabusItemModel) TableName() string {
	return "syllabus_tracker"
}
