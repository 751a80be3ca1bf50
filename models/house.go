package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type House struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity" gorm:"not null"`
	PricePerNight decimal.Decimal `json:"pricePerNight" gorm:"type:decimal(10,2);not null"`
	Image         string          `json:"image"`
	IsAvailable   bool            `json:"isAvailable" gorm:"default:true"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings      []Booking       `json:"bookings,omitempty" gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
}

func (h *House) ValidateCapacity() error {
	if h.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d, must be positive", h.Capacity)
	}
	return nil
}

func (h *House) ValidatePrice() error {
	if h.PricePerNight.IsNegative() {
		return fmt.Errorf("invalid price per night: %s, must not be negative", h.PricePerNight)
	}
	return nil
}
