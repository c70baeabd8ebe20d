package model

import "time"

// AuthorizedDeviceModel is the GORM-specific struct for the
// 'authorized_devices' table. One row per client-held device identifier.
type AuthorizedDeviceModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	DeviceID     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	DeviceName   string `gorm:"type:varchar(255)"`
	IPAddress    string `gorm:"type:varchar(64)"`
	UserAgent    string `gorm:"type:varchar(512)"`
	FirstLogin   time.Time
	LastLogin    time.Time
	IsApproved   bool   `gorm:"not null;default:false"`
	SessionToken string `gorm:"type:varchar(64)"`
	TokenExpiry  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthorizedDeviceModel) TableName() string {
	return "authorized_devices"
}
