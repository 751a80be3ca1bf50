package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type HouseResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Image         string          `json:"image,omitempty"`
	IsAvailable   bool            `json:"isAvailable"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type CreateHouseRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Image         string          `json:"image"`
	IsAvailable   *bool           `json:"isAvailable,omitempty"`
}

type UpdateHouseRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Capacity      *int             `json:"capacity,omitempty"`
	PricePerNight *decimal.Decimal `json:"pricePerNight,omitempty"`
	Image         *string          `json:"image,omitempty"`
	IsAvailable   *bool            `json:"isAvailable,omitempty"`
}
