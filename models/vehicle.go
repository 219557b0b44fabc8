package models

import "time"

// Vehicle is a vehicle record owned by a single user. The plate is unique
// within that user's set, not globally, hence the composite index.
type Vehicle struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_vehicles_user_plate" json:"-"`
	Plate     string    `gorm:"not null;uniqueIndex:idx_vehicles_user_plate" json:"plate"`
	Brand     string    `gorm:"not null" json:"brand"`
	Model     string    `gorm:"not null" json:"model"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
