package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint            `gorm:"primarykey"`
	FirstName    string          `gorm:"not null;size:100"`
	LastName     string          `gorm:"not null;size:100"`
	Username     string          `gorm:"uniqueIndex;not null;size:100"`
	Email        string          `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string          `gorm:"not null;size:255"`
	Gender       string          `gorm:"not null;default:other;size:20"`
	DateOfBirth  *datatypes.Date `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
