package model

import "time"

// LoginAttemptModel is the GORM-specific struct for the 'login_attempts'
// table. Append-only; rows reference devices loosely by device_id so they can
// outlive the device record.
type LoginAttemptModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	DeviceID  string `gorm:"type:varchar(64);index"`
	IPAddress string `gorm:"type:varchar(64)"`
	Timestamp time.Time
	Status    string `gorm:"type:varchar(64)"`
	UserAgent string `gorm:"type:varchar(512)"`
}

// TableName explicitly sets the table name for GORM.
func (LoginAttemptModel) TableName() string {
	return "login_attempts"
}
