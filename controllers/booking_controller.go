package controllers

import (
	"log"
	"sort"
	"strconv"
	"time"

	"lesnoy/config"
	"lesnoy/dto"
	"lesnoy/errors"
	"lesnoy/models"
	"lesnoy/response"
	"lesnoy/services"
	"lesnoy/validator"

	"github.com/gin-gonic/gin"
)

// notifier broadcasts booking and contact events to staff dashboards.
// Set once during route setup.
var notifier *services.Notifier

func SetNotifier(n *services.Notifier) {
	notifier = n
}

const bookingsCacheKey = "bookings:all"

func loadBookings() ([]models.Booking, error) {
	var bookings []models.Booking

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, bookingsCacheKey, &bookings); err == nil && len(bookings) > 0 {
			return bookings, nil
		}
	}

	if err := config.DB.Preload("House").Find(&bookings).Error; err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, bookingsCacheKey, bookings, 5*time.Minute); err != nil {
			log.Printf("Failed to cache bookings: %v", err)
		}
	}
	return bookings, nil
}

func invalidateBookingsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, bookingsCacheKey); err != nil {
		log.Printf("Failed to invalidate bookings cache: %v", err)
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:   booking.ID,
		Code: booking.Code,
		House: dto.BookingHouseResponse{
			ID:            booking.House.ID,
			Name:          booking.House.Name,
			Capacity:      booking.House.Capacity,
			PricePerNight: booking.House.PricePerNight,
			Image:         booking.House.Image,
		},
		GuestName:       booking.GuestName,
		GuestPhone:      booking.GuestPhone,
		GuestEmail:      booking.GuestEmail,
		CheckInDate:     booking.CheckInDate.Format(validator.DateLayout),
		CheckOutDate:    booking.CheckOutDate.Format(validator.DateLayout),
		GuestsCount:     booking.GuestsCount,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		SpecialRequests: booking.SpecialRequests,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// parseAvailabilityRequest binds and checks the shared body of the two
// public AJAX endpoints.
func parseAvailabilityRequest(c *gin.Context) (req dto.AvailabilityRequest, checkIn, checkOut time.Time, ok bool) {
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return req, checkIn, checkOut, false
	}

	if req.HouseID == 0 || req.CheckIn == "" || req.CheckOut == "" {
		response.BadRequest(c, "Not all data provided")
		return req, checkIn, checkOut, false
	}

	var err error
	checkIn, err = validator.ParseDate(req.CheckIn)
	if err != nil {
		response.BadRequest(c, "Invalid check-in date")
		return req, checkIn, checkOut, false
	}
	checkOut, err = validator.ParseDate(req.CheckOut)
	if err != nil {
		response.BadRequest(c, "Invalid check-out date")
		return req, checkIn, checkOut, false
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "Check-out date must be after check-in date")
		return req, checkIn, checkOut, false
	}

	return req, checkIn, checkOut, true
}

// CheckAvailability answers whether a house is free for a date range.
func CheckAvailability(c *gin.Context) {
	req, checkIn, checkOut, ok := parseAvailabilityRequest(c)
	if !ok {
		return
	}

	available, err := services.CheckAvailability(config.DB, req.HouseID, checkIn, checkOut)
	if err != nil {
		if err == errors.ErrHouseNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	message := "Dates are available"
	if !available {
		message = "Dates are occupied"
	}
	response.Success(c, dto.AvailabilityResponse{
		Available: available,
		Message:   message,
	})
}

// CalculatePrice quotes a stay before the guest submits a booking.
func CalculatePrice(c *gin.Context) {
	req, checkIn, checkOut, ok := parseAvailabilityRequest(c)
	if !ok {
		return
	}

	quote, err := services.CalculatePrice(config.DB, req.HouseID, checkIn, checkOut)
	if err != nil {
		if err == errors.ErrHouseNotFound {
			response.NotFound(c)
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, quote)
}

// CreateBooking accepts a guest submission. On validation failure
// nothing is persisted and the reason is returned.
func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	booking, err := services.CreateBooking(config.DB, &request)
	if err != nil {
		if err == errors.ErrHouseNotFound {
			response.NotFound(c)
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	invalidateBookingsCache()
	notifier.NotifyNewBooking(booking)

	response.SuccessWithMessage(c, "Your booking request has been submitted", convertToBookingResponse(*booking))
}

// GetBookingByCode serves the confirmation page lookup.
func GetBookingByCode(c *gin.Context) {
	code := c.Param("code")

	booking, err := services.GetBookingByCode(config.DB, code)
	if err != nil {
		if err == errors.ErrBookingNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookings lists bookings for staff with status/house/date filters,
// newest first.
func GetBookings(c *gin.Context) {
	bookings, err := loadBookings()
	if err != nil {
		response.ServerError(c)
		return
	}

	statusFilter := c.Query("status")
	activeOnly := c.Query("active") == "true"
	houseStr := c.Query("houseId")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filtered := make([]models.Booking, 0)
	for _, booking := range bookings {
		if statusFilter != "" && booking.Status != statusFilter {
			continue
		}
		if activeOnly && !booking.IsActive() {
			continue
		}
		if houseStr != "" {
			if houseID, err := strconv.Atoi(houseStr); err == nil && booking.HouseID != uint(houseID) {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := validator.ParseDate(fromDateStr)
			if err != nil {
				response.BadRequest(c, "Invalid fromDate format")
				return
			}
			if booking.CheckInDate.Before(fromDate) {
				continue
			}
		}
		if toDateStr != "" {
			toDate, err := validator.ParseDate(toDateStr)
			if err != nil {
				response.BadRequest(c, "Invalid toDate format")
				return
			}
			if booking.CheckInDate.After(toDate) {
				continue
			}
		}
		filtered = append(filtered, booking)
	}

	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for _, booking := range filtered {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// ChangeBookingStatus applies an admin adjudication.
func ChangeBookingStatus(c *gin.Context) {
	var request dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if request.ID == 0 || request.Status == "" {
		response.BadRequest(c, "Booking id and status are required")
		return
	}

	booking, err := services.ChangeBookingStatus(config.DB, request.ID, request.Status)
	if err != nil {
		if err == errors.ErrBookingNotFound {
			response.NotFound(c)
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	invalidateBookingsCache()
	response.Success(c, convertToBookingResponse(*booking))
}
