package models

import (
	"fmt"
	"time"
)

// User is a staff account for the management endpoints. Guests never
// authenticate; they submit bookings and messages anonymously.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      int       `json:"role" gorm:"default:1"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) ValidateRole() error {
	if u.Role < 1 || u.Role > 2 {
		return fmt.Errorf("invalid role: %d, must be 1 or 2", u.Role)
	}
	return nil
}
