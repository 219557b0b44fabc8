package models

import "time"

// User represents a user account in the system. Emails are stored
// lowercased so lookups are case-insensitive.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName  string    `gorm:"not null" json:"displayName"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
}
