package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest is the guest-facing booking submission.
// Dates use the ISO form 2006-01-02.
type CreateBookingRequest struct {
	HouseID         uint   `json:"houseId"`
	GuestName       string `json:"guestName"`
	GuestPhone      string `json:"guestPhone"`
	GuestEmail      string `json:"guestEmail,omitempty"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	GuestsCount     int    `json:"guestsCount"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// AvailabilityRequest mirrors the public AJAX contract; field names are
// part of the wire format consumed by the site frontend.
type AvailabilityRequest struct {
	HouseID  uint   `json:"house_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type PriceQuoteResponse struct {
	Nights        int             `json:"nights"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

type BookingHouseResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Image         string          `json:"image,omitempty"`
}

type BookingResponse struct {
	ID              uint                 `json:"id"`
	Code            string               `json:"code"`
	House           BookingHouseResponse `json:"house"`
	GuestName       string               `json:"guestName"`
	GuestPhone      string               `json:"guestPhone"`
	GuestEmail      string               `json:"guestEmail,omitempty"`
	CheckInDate     string               `json:"checkInDate"`
	CheckOutDate    string               `json:"checkOutDate"`
	GuestsCount     int                  `json:"guestsCount"`
	TotalPrice      decimal.Decimal      `json:"totalPrice"`
	Status          string               `json:"status"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type ChangeBookingStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}
