package services

import (
	"time"

	"lesnoy/constants"
	"lesnoy/dto"
	"lesnoy/errors"
	"lesnoy/models"
	"lesnoy/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// activeStatuses are the booking states that block a date range.
var activeStatuses = []string{constants.BookingStatusPending, constants.BookingStatusConfirmed}

// allowedTransitions is the admin status adjudication matrix. A booking
// leaves pending by being confirmed or cancelled; a confirmed booking is
// either cancelled or completed. Terminal states never change.
var allowedTransitions = map[string][]string{
	constants.BookingStatusPending:   {constants.BookingStatusConfirmed, constants.BookingStatusCancelled},
	constants.BookingStatusConfirmed: {constants.BookingStatusCancelled, constants.BookingStatusCompleted},
}

// Nights returns the whole-day difference between two calendar dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// GetHouse loads a house by id, mapping a missing row to ErrHouseNotFound.
func GetHouse(db *gorm.DB, houseID uint) (*models.House, error) {
	var house models.House
	if err := db.First(&house, houseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

// CheckAvailability reports whether the house is free for the half-open
// range [checkIn, checkOut). An existing pending or confirmed booking
// conflicts iff its check-in is before the requested check-out and its
// check-out is after the requested check-in.
func CheckAvailability(db *gorm.DB, houseID uint, checkIn, checkOut time.Time) (bool, error) {
	if _, err := GetHouse(db, houseID); err != nil {
		return false, err
	}

	var count int64
	err := db.Model(&models.Booking{}).
		Where("house_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			houseID, activeStatuses, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// CalculatePrice quotes a stay: nights times the house's nightly rate,
// computed in decimal so the cents survive the multiplication.
func CalculatePrice(db *gorm.DB, houseID uint, checkIn, checkOut time.Time) (*dto.PriceQuoteResponse, error) {
	house, err := GetHouse(db, houseID)
	if err != nil {
		return nil, err
	}

	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Check-out date must be after check-in date", nil)
	}

	total := house.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))

	return &dto.PriceQuoteResponse{
		Nights:        nights,
		PricePerNight: house.PricePerNight,
		TotalPrice:    total,
	}, nil
}

// CreateBooking validates a guest submission and persists it. The total
// price is computed from the house's current nightly rate and frozen
// into the record; it is never recomputed afterwards. Overlapping
// pending submissions are allowed and reconciled by staff.
func CreateBooking(db *gorm.DB, req *dto.CreateBookingRequest) (*models.Booking, error) {
	house, err := GetHouse(db, req.HouseID)
	if err != nil {
		return nil, err
	}
	if !house.IsAvailable {
		return nil, errors.NewAppError(errors.ErrCodeNotAvailable, "House is not open for booking", nil)
	}

	checkIn, checkOut, err := validator.ValidateBookingRequest(req, house)
	if err != nil {
		return nil, err
	}

	nights := Nights(checkIn, checkOut)
	totalPrice := house.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))

	booking := models.Booking{
		Code:            uuid.NewString(),
		HouseID:         house.ID,
		GuestName:       req.GuestName,
		GuestPhone:      req.GuestPhone,
		GuestEmail:      req.GuestEmail,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		GuestsCount:     req.GuestsCount,
		TotalPrice:      totalPrice,
		Status:          constants.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	}); err != nil {
		return nil, err
	}

	booking.House = *house
	return &booking, nil
}

// GetBookingByCode loads a booking and its house for the confirmation page.
func GetBookingByCode(db *gorm.DB, code string) (*models.Booking, error) {
	var booking models.Booking
	if err := db.Preload("House").Where("code = ?", code).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ChangeBookingStatus applies an admin status transition. The frozen
// total price is left untouched.
func ChangeBookingStatus(db *gorm.DB, bookingID uint, newStatus string) (*models.Booking, error) {
	var booking models.Booking
	if err := db.Preload("House").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	allowed := false
	for _, s := range allowedTransitions[booking.Status] {
		if s == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus,
			"Cannot change status from "+booking.Status+" to "+newStatus, errors.ErrInvalidTransition)
	}

	if err := db.Model(&booking).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	booking.Status = newStatus
	return &booking, nil
}

// CompletePastBookings moves confirmed bookings whose stay has ended to
// completed. Run daily by the cron job.
func CompletePastBookings(db *gorm.DB, today time.Time) (int64, error) {
	result := db.Model(&models.Booking{}).
		Where("status = ? AND check_out_date <= ?", constants.BookingStatusConfirmed, today).
		Update("status", constants.BookingStatusCompleted)
	return result.RowsAffected, result.Error
}
