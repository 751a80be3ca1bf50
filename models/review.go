package models

import (
	"fmt"
	"time"
)

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	GuestName  string    `json:"guestName" gorm:"size:100;not null"`
	Rating     int       `json:"rating" gorm:"not null"`
	Text       string    `json:"text" gorm:"not null"`
	Avatar     string    `json:"avatar,omitempty"`
	IsApproved bool      `json:"isApproved" gorm:"default:false;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (r *Review) ValidateRating() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("invalid rating: %d, must be between 1 and 5", r.Rating)
	}
	return nil
}
