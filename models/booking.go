package models

import (
	"time"

	"lesnoy/constants"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Code            string          `json:"code" gorm:"uniqueIndex;size:36"`
	HouseID         uint            `json:"houseId" gorm:"index;not null"`
	House           House           `json:"house" gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
	GuestName       string          `json:"guestName" gorm:"size:100;not null"`
	GuestPhone      string          `json:"guestPhone" gorm:"size:20;not null"`
	GuestEmail      string          `json:"guestEmail,omitempty"`
	CheckInDate     time.Time       `json:"checkInDate" gorm:"type:date;index"`
	CheckOutDate    time.Time       `json:"checkOutDate" gorm:"type:date"`
	GuestsCount     int             `json:"guestsCount" gorm:"not null"`
	TotalPrice      decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`
	Status          string          `json:"status" gorm:"size:20;default:pending;index"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsActive reports whether the booking counts toward availability.
// Cancelled and completed bookings never block a date range.
func (b *Booking) IsActive() bool {
	return b.Status == constants.BookingStatusPending || b.Status == constants.BookingStatusConfirmed
}
