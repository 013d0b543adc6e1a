package models

import "time"

// SessionModel represents the database persistence model for session records.
type SessionModel struct {
	ID           string     `gorm:"primarykey;size:64"`
	UserID       uint       `gorm:"not null;index"`
	LoginTime    time.Time  `gorm:"not null"`
	LogoutTime   *time.Time `gorm:""`
	IPAddress    string     `gorm:"size:45"`
	UserAgent    string     `gorm:"size:512"`
	DeviceType   string     `gorm:"size:20;default:unknown"`
	Browser      string     `gorm:"size:50;default:unknown"`
	OS           string     `gorm:"size:50;default:unknown"`
	IsActive     bool       `gorm:"not null;default:true;index"`
	LastActivity time.Time  `gorm:"not null"`
	ExpiresAt    time.Time  `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "session_logs"
}
