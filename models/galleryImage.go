package models

import (
	"fmt"
	"time"
)

type GalleryImage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image" gorm:"not null"`
	AltText     string    `json:"altText" gorm:"size:200"`
	IsFeatured  bool      `json:"isFeatured" gorm:"default:false;index"`
	Order       int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (g *GalleryImage) ValidateOrder() error {
	if g.Order < 0 {
		return fmt.Errorf("invalid display order: %d, must not be negative", g.Order)
	}
	return nil
}
