package validator

import (
	"regexp"
	"time"

	"lesnoy/constants"
	"lesnoy/dto"
	"lesnoy/errors"
	"lesnoy/models"
)

const DateLayout = "2006-01-02"

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-\(\)]{10,}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ParseDate parses an ISO calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date format, expected YYYY-MM-DD", err)
	}
	return parsed, nil
}

// Today returns the current calendar date truncated to midnight UTC,
// matching the date-only storage of check-in and check-out.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateBookingRequest checks a guest submission. Rules are applied in
// order and the first failure rejects the whole submission.
func ValidateBookingRequest(req *dto.CreateBookingRequest, house *models.House) (checkIn, checkOut time.Time, err error) {
	if req.HouseID == 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "House is required", nil)
	}
	if req.GuestName == "" {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "Guest name is required", nil)
	}
	if req.GuestPhone == "" {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "Guest phone is required", nil)
	}
	if !isValidPhone(req.GuestPhone) {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidPhone, "Guest phone is invalid", nil)
	}
	if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidEmail, "Guest email is invalid", nil)
	}
	if req.CheckInDate == "" || req.CheckOutDate == "" {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "Check-in and check-out dates are required", nil)
	}
	if req.GuestsCount == 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "Guests count is required", nil)
	}

	checkIn, err = ParseDate(req.CheckInDate)
	if err != nil {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-in date", err)
	}
	checkOut, err = ParseDate(req.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-out date", err)
	}

	if checkIn.Before(Today()) {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidDate, "Check-in date cannot be in the past", nil)
	}
	if !checkOut.After(checkIn) {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidDate, "Check-out date must be after check-in date", nil)
	}

	if req.GuestsCount < constants.MinGuestsCount || req.GuestsCount > constants.MaxGuestsCount {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidGuests, "Guests count must be between 1 and 10", nil)
	}
	if house != nil && req.GuestsCount > house.Capacity {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidGuests, "Guests count exceeds house capacity", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateContactMessage checks the feedback form fields.
func ValidateContactMessage(msg *dto.ContactMessageRequest) error {
	if msg.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name is required", nil)
	}
	if msg.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !isValidEmail(msg.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is invalid", nil)
	}
	if msg.Phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone is required", nil)
	}
	if !isValidPhone(msg.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone is invalid", nil)
	}
	if msg.Message == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Message is required", nil)
	}
	return nil
}

func ValidateHouse(house *models.House) error {
	if house.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "House name is required", nil)
	}
	if err := house.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if err := house.ValidatePrice(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	return nil
}

func ValidateReview(review *models.Review) error {
	if review.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name is required", nil)
	}
	if err := review.ValidateRating(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if review.Text == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Review text is required", nil)
	}
	return nil
}

func ValidateGalleryImage(image *models.GalleryImage) error {
	if image.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title is required", nil)
	}
	if image.Image == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Image is required", nil)
	}
	if err := image.ValidateOrder(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	return nil
}

// ValidateEmail checks a bare email string.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is invalid", nil)
	}
	return nil
}

// ValidatePhone checks a bare phone string.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone is invalid", nil)
	}
	return nil
}
