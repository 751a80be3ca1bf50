package validator

import (
	"testing"

	"lesnoy/dto"
	"lesnoy/errors"
	"lesnoy/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-01")
	assert.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, 1, parsed.Day())

	_, err = ParseDate("01.06.2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestPhoneValidation(t *testing.T) {
	valid := []string{
		"+7 999 123-45-67",
		"89991234567",
		"+1 (555) 123-4567",
	}
	for _, phone := range valid {
		assert.NoError(t, ValidatePhone(phone), "phone %q should pass", phone)
	}

	invalid := []string{
		"12345",
		"not a phone",
		"+7 999 abc 45 67",
		"",
	}
	for _, phone := range invalid {
		assert.Error(t, ValidatePhone(phone), "phone %q should fail", phone)
	}
}

func TestEmailValidation(t *testing.T) {
	assert.NoError(t, ValidateEmail("guest@example.com"))
	assert.NoError(t, ValidateEmail("first.last+tag@sub.example.org"))
	assert.Error(t, ValidateEmail("guest@example"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("@example.com"))
}

func TestValidateBookingRequestFirstErrorWins(t *testing.T) {
	house := &models.House{Capacity: 4, PricePerNight: decimal.RequireFromString("2000.00")}

	// Both the name and the phone are missing; the name is reported.
	req := &dto.CreateBookingRequest{HouseID: 1}
	_, _, err := ValidateBookingRequest(req, house)
	assert.Error(t, err)
	assert.Equal(t, "Guest name is required", errors.GetAppError(err).Message)
}

func TestValidateBookingRequestEmailOptional(t *testing.T) {
	house := &models.House{Capacity: 4, PricePerNight: decimal.RequireFromString("2000.00")}

	req := &dto.CreateBookingRequest{
		HouseID:      1,
		GuestName:    "Ivan",
		GuestPhone:   "+7 999 123-45-67",
		CheckInDate:  Today().AddDate(0, 0, 1).Format(DateLayout),
		CheckOutDate: Today().AddDate(0, 0, 2).Format(DateLayout),
		GuestsCount:  2,
	}
	_, _, err := ValidateBookingRequest(req, house)
	assert.NoError(t, err)
}

func TestValidateBookingRequestDates(t *testing.T) {
	house := &models.House{Capacity: 4, PricePerNight: decimal.RequireFromString("2000.00")}

	base := func() *dto.CreateBookingRequest {
		return &dto.CreateBookingRequest{
			HouseID:      1,
			GuestName:    "Ivan",
			GuestPhone:   "+7 999 123-45-67",
			CheckInDate:  Today().Format(DateLayout),
			CheckOutDate: Today().AddDate(0, 0, 1).Format(DateLayout),
			GuestsCount:  2,
		}
	}

	// Check-in today is the boundary and is accepted.
	_, _, err := ValidateBookingRequest(base(), house)
	assert.NoError(t, err)

	req := base()
	req.CheckInDate = Today().AddDate(0, 0, -1).Format(DateLayout)
	_, _, err = ValidateBookingRequest(req, house)
	assert.Error(t, err)

	req = base()
	req.CheckOutDate = req.CheckInDate
	_, _, err = ValidateBookingRequest(req, house)
	assert.Error(t, err)
}

func TestValidateBookingRequestGuests(t *testing.T) {
	house := &models.House{Capacity: 4, PricePerNight: decimal.RequireFromString("2000.00")}

	base := func(guests int) *dto.CreateBookingRequest {
		return &dto.CreateBookingRequest{
			HouseID:      1,
			GuestName:    "Ivan",
			GuestPhone:   "+7 999 123-45-67",
			CheckInDate:  Today().AddDate(0, 0, 1).Format(DateLayout),
			CheckOutDate: Today().AddDate(0, 0, 3).Format(DateLayout),
			GuestsCount:  guests,
		}
	}

	_, _, err := ValidateBookingRequest(base(4), house)
	assert.NoError(t, err, "guests at capacity is fine")

	_, _, err = ValidateBookingRequest(base(5), house)
	assert.Error(t, err, "guests above capacity is rejected")

	_, _, err = ValidateBookingRequest(base(11), house)
	assert.Error(t, err)
}

func TestValidateContactMessage(t *testing.T) {
	valid := dto.ContactMessageRequest{
		Name:    "Maria",
		Email:   "maria@example.com",
		Phone:   "+7 999 123-45-67",
		Message: "Do you allow pets?",
	}
	assert.NoError(t, ValidateContactMessage(&valid))

	missing := valid
	missing.Message = ""
	assert.Error(t, ValidateContactMessage(&missing))

	badEmail := valid
	badEmail.Email = "maria@"
	assert.Error(t, ValidateContactMessage(&badEmail))
}

func TestValidateHouse(t *testing.T) {
	house := &models.House{
		Name:          "Pine Lodge",
		Capacity:      4,
		PricePerNight: decimal.RequireFromString("2000.00"),
	}
	assert.NoError(t, ValidateHouse(house))

	house.Capacity = 0
	assert.Error(t, ValidateHouse(house))

	house.Capacity = 4
	house.PricePerNight = decimal.RequireFromString("-1.00")
	assert.Error(t, ValidateHouse(house))
}

func TestValidateReview(t *testing.T) {
	review := &models.Review{GuestName: "Anna", Rating: 5, Text: "Lovely stay"}
	assert.NoError(t, ValidateReview(review))

	review.Rating = 0
	assert.Error(t, ValidateReview(review))
	review.Rating = 6
	assert.Error(t, ValidateReview(review))
}
