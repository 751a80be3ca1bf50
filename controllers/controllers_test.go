package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lesnoy/config"
	"lesnoy/constants"
	"lesnoy/models"
	"lesnoy/response"
	"lesnoy/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.House{},
		&models.Booking{},
		&models.Review{},
		&models.GalleryImage{},
		&models.Contact{},
		&models.User{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.DB = setupTestDB(t)
	config.RedisClient = nil
	SetNotifier(nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/home", GetHome)
	v1.GET("/houses", GetAllHouses)
	v1.GET("/houses/:id", GetHouseDetail)
	v1.POST("/check-availability", CheckAvailability)
	v1.POST("/calculate-price", CalculatePrice)
	v1.POST("/bookings", CreateBooking)
	v1.GET("/bookings/:code", GetBookingByCode)
	v1.GET("/reviews", GetReviews)
	v1.POST("/reviews", CreateReview)
	v1.GET("/gallery", GetGallery)
	v1.GET("/contact", GetContact)
	v1.POST("/contact-message", SubmitContactMessage)
	v1.POST("/admin/contact", CreateContact)
	v1.PUT("/admin/contact", UpdateContact)
	v1.DELETE("/admin/contact", DeleteContact)
	v1.PUT("/admin/bookingStatus", ChangeBookingStatus)
	v1.GET("/admin/bookings", GetBookings)
	v1.POST("/admin/houses", CreateHouse)
	v1.PUT("/admin/houses/:id", UpdateHouse)
	v1.DELETE("/admin/houses/:id", DeleteHouse)
	return router
}

func createTestHouse(t *testing.T, price string, capacity int) *models.House {
	house := models.House{
		Name:          "Pine Lodge",
		Description:   "A cabin under the pines",
		Capacity:      capacity,
		PricePerNight: decimal.RequireFromString(price),
		IsAvailable:   true,
	}
	if err := config.DB.Create(&house).Error; err != nil {
		t.Fatalf("failed to create test house: %v", err)
	}
	return &house
}

func futureDate(days int) string {
	return validator.Today().AddDate(0, 0, days).Format(validator.DateLayout)
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mustDecimal(t *testing.T, v interface{}) decimal.Decimal {
	d, err := decimal.NewFromString(fmt.Sprint(v))
	if err != nil {
		t.Fatalf("value %v is not a decimal: %v", v, err)
	}
	return d
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var envelope response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "2000.00", 4)

	w := doJSON(router, "POST", "/api/v1/check-availability", gin.H{
		"house_id":  house.ID,
		"check_in":  futureDate(1),
		"check_out": futureDate(4),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, true, data["available"])
	assert.NotEmpty(t, data["message"])
}

func TestCheckAvailabilityEndpointOccupied(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "2000.00", 4)

	w := doJSON(router, "POST", "/api/v1/bookings", gin.H{
		"houseId":      house.ID,
		"guestName":    "Ivan",
		"guestPhone":   "+7 999 123-45-67",
		"checkInDate":  futureDate(1),
		"checkOutDate": futureDate(3),
		"guestsCount":  2,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/v1/check-availability", gin.H{
		"house_id":  house.ID,
		"check_in":  futureDate(2),
		"check_out": futureDate(5),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, false, data["available"])
}

func TestCheckAvailabilityEndpointBadInput(t *testing.T) {
	router := setupTestRouter(t)
	createTestHouse(t, "2000.00", 4)

	// Malformed JSON.
	req := httptest.NewRequest("POST", "/api/v1/check-availability", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing fields.
	w = doJSON(router, "POST", "/api/v1/check-availability", gin.H{"house_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Reversed dates.
	w = doJSON(router, "POST", "/api/v1/check-availability", gin.H{
		"house_id":  1,
		"check_in":  futureDate(4),
		"check_out": futureDate(1),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown house.
	w = doJSON(router, "POST", "/api/v1/check-availability", gin.H{
		"house_id":  999,
		"check_in":  futureDate(1),
		"check_out": futureDate(2),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalculatePriceEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "1500.00", 4)

	w := doJSON(router, "POST", "/api/v1/calculate-price", gin.H{
		"house_id":  house.ID,
		"check_in":  futureDate(1),
		"check_out": futureDate(4),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["nights"])
	assert.True(t, mustDecimal(t, data["price_per_night"]).Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, mustDecimal(t, data["total_price"]).Equal(decimal.RequireFromString("4500.00")))
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "2000.00", 4)

	w := doJSON(router, "POST", "/api/v1/bookings", gin.H{
		"houseId":      house.ID,
		"guestName":    "Ivan Petrov",
		"guestPhone":   "+7 999 123-45-67",
		"guestEmail":   "ivan@example.com",
		"checkInDate":  futureDate(1),
		"checkOutDate": futureDate(4),
		"guestsCount":  4,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope.Data.(map[string]interface{})
	assert.NotEmpty(t, data["code"])
	assert.Equal(t, "pending", data["status"])
	assert.True(t, mustDecimal(t, data["totalPrice"]).Equal(decimal.RequireFromString("6000.00")))

	// Confirmation lookup by code.
	w2 := doJSON(router, "GET", "/api/v1/bookings/"+data["code"].(string), nil)
	assert.Equal(t, http.StatusOK, w2.Code)
	envelope2 := decodeEnvelope(t, w2)
	data2 := envelope2.Data.(map[string]interface{})
	assert.Equal(t, data["code"], data2["code"])
	houseData := data2["house"].(map[string]interface{})
	assert.Equal(t, "Pine Lodge", houseData["name"])
}

func TestCreateBookingEndpointRejectsInvalid(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "2000.00", 4)

	w := doJSON(router, "POST", "/api/v1/bookings", gin.H{
		"houseId":      house.ID,
		"guestName":    "Ivan",
		"guestPhone":   "+7 999 123-45-67",
		"checkInDate":  futureDate(1),
		"checkOutDate": futureDate(4),
		"guestsCount":  5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetBookingByCodeNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, "GET", "/api/v1/bookings/missing-code", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangeBookingStatusEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "2000.00", 4)

	w := doJSON(router, "POST", "/api/v1/bookings", gin.H{
		"houseId":      house.ID,
		"guestName":    "Ivan",
		"guestPhone":   "+7 999 123-45-67",
		"checkInDate":  futureDate(1),
		"checkOutDate": futureDate(3),
		"guestsCount":  2,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w).Data.(map[string]interface{})
	bookingID := uint(data["id"].(float64))

	w = doJSON(router, "PUT", "/api/v1/admin/bookingStatus", gin.H{
		"id":     bookingID,
		"status": constants.BookingStatusConfirmed,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// pending is not reachable from confirmed.
	w = doJSON(router, "PUT", "/api/v1/admin/bookingStatus", gin.H{
		"id":     bookingID,
		"status": constants.BookingStatusPending,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingsFilters(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "2000.00", 4)

	for i := 0; i < 3; i++ {
		w := doJSON(router, "POST", "/api/v1/bookings", gin.H{
			"houseId":      house.ID,
			"guestName":    fmt.Sprintf("Guest %d", i),
			"guestPhone":   "+7 999 123-45-67",
			"checkInDate":  futureDate(1 + i),
			"checkOutDate": futureDate(3 + i),
			"guestsCount":  2,
		})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, "GET", "/api/v1/admin/bookings?status=pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, 3, envelope.Pagination.Total)

	w = doJSON(router, "GET", "/api/v1/admin/bookings?status=confirmed", nil)
	envelope = decodeEnvelope(t, w)
	assert.Equal(t, 0, envelope.Pagination.Total)
}

func TestReviewsModeration(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, "POST", "/api/v1/reviews", gin.H{
		"guestName": "Anna",
		"rating":    5,
		"text":      "Lovely stay",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Unapproved reviews stay off the public page.
	w = doJSON(router, "GET", "/api/v1/reviews", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, 0, envelope.Pagination.Total)

	config.DB.Model(&models.Review{}).Where("guest_name = ?", "Anna").Update("is_approved", true)

	w = doJSON(router, "GET", "/api/v1/reviews", nil)
	envelope = decodeEnvelope(t, w)
	assert.Equal(t, 1, envelope.Pagination.Total)
}

func TestReviewRatingBounds(t *testing.T) {
	router := setupTestRouter(t)

	for _, rating := range []int{0, 6} {
		w := doJSON(router, "POST", "/api/v1/reviews", gin.H{
			"guestName": "Anna",
			"rating":    rating,
			"text":      "Text",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d should be rejected", rating)
	}
}

func TestGalleryOrdering(t *testing.T) {
	router := setupTestRouter(t)

	config.DB.Create(&models.GalleryImage{Title: "Second", Image: "b.jpg", Order: 2})
	config.DB.Create(&models.GalleryImage{Title: "First", Image: "a.jpg", Order: 1})

	w := doJSON(router, "GET", "/api/v1/gallery", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	items := envelope.Data.([]interface{})
	assert.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "First", first["title"])
}

func TestContactSingleton(t *testing.T) {
	router := setupTestRouter(t)

	body := gin.H{
		"phone":   "+7 999 123-45-67",
		"email":   "info@example.com",
		"address": "1 Forest Road",
	}

	w := doJSON(router, "POST", "/api/v1/admin/contact", body)
	assert.Equal(t, http.StatusOK, w.Code)

	// The second record is refused.
	w = doJSON(router, "POST", "/api/v1/admin/contact", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Updates are the way to change it.
	body["address"] = "2 Forest Road"
	w = doJSON(router, "PUT", "/api/v1/admin/contact", body)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deletion is always refused.
	w = doJSON(router, "DELETE", "/api/v1/admin/contact", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.Contact{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestContactMessageValidation(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, "POST", "/api/v1/contact-message", gin.H{
		"name":    "Maria",
		"email":   "maria@example.com",
		"phone":   "+7 999 123-45-67",
		"message": "Do you allow pets?",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/v1/contact-message", gin.H{
		"name":    "Maria",
		"email":   "bad-email",
		"phone":   "+7 999 123-45-67",
		"message": "Hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHomeAggregate(t *testing.T) {
	router := setupTestRouter(t)
	createTestHouse(t, "2000.00", 4)
	config.DB.Create(&models.Review{GuestName: "Anna", Rating: 5, Text: "Great", IsApproved: true})
	config.DB.Create(&models.GalleryImage{Title: "View", Image: "v.jpg", IsFeatured: true})

	w := doJSON(router, "GET", "/api/v1/home", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope.Data.(map[string]interface{})
	assert.Len(t, data["houses"], 1)
	assert.Len(t, data["reviews"], 1)
	assert.Len(t, data["galleryImages"], 1)
}

func TestHouseListingFiltersAndPagination(t *testing.T) {
	router := setupTestRouter(t)
	for i := 1; i <= 8; i++ {
		config.DB.Create(&models.House{
			Name:          fmt.Sprintf("House %d", i),
			Capacity:      i,
			PricePerNight: decimal.NewFromInt(int64(1000 * i)),
			IsAvailable:   true,
		})
	}
	config.DB.Create(&models.House{
		Name:          "Hidden House",
		Capacity:      2,
		PricePerNight: decimal.NewFromInt(1000),
		IsAvailable:   false,
	})

	// Default page size hides the tail and the unlisted house.
	w := doJSON(router, "GET", "/api/v1/houses", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, 8, envelope.Pagination.Total)
	assert.Len(t, envelope.Data, constants.HousesPageSize)

	w = doJSON(router, "GET", "/api/v1/houses?capacity=7", nil)
	envelope = decodeEnvelope(t, w)
	assert.Equal(t, 2, envelope.Pagination.Total)

	w = doJSON(router, "GET", "/api/v1/houses?min_price=3000&max_price=5000", nil)
	envelope = decodeEnvelope(t, w)
	assert.Equal(t, 3, envelope.Pagination.Total)
}

func TestHouseDetailHidesUnavailable(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "2000.00", 4)
	config.DB.Model(house).Update("is_available", false)

	w := doJSON(router, "GET", fmt.Sprintf("/api/v1/houses/%d", house.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateHouseByPathID(t *testing.T) {
	router := setupTestRouter(t)
	house := createTestHouse(t, "1500.00", 4)

	w := doJSON(router, "PUT", fmt.Sprintf("/api/v1/admin/houses/%d", house.ID), gin.H{
		"name": "Birch Lodge",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.House
	assert.NoError(t, config.DB.First(&updated, house.ID).Error)
	assert.Equal(t, "Birch Lodge", updated.Name)
	assert.True(t, updated.PricePerNight.Equal(decimal.RequireFromString("1500.00")))

	w = doJSON(router, "PUT", "/api/v1/admin/houses/abc", gin.H{"name": "Cedar Lodge"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "PUT", "/api/v1/admin/houses/9999", gin.H{"name": "Cedar Lodge"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadPathsStayUpOnStorageFailure(t *testing.T) {
	router := setupTestRouter(t)

	// Tables were never migrated here, so every query errors out.
	broken, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open broken database: %v", err)
	}
	config.DB = broken

	for _, path := range []string{"/api/v1/houses", "/api/v1/reviews", "/api/v1/gallery"} {
		w := doJSON(router, "GET", path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		envelope := decodeEnvelope(t, w)
		assert.Empty(t, envelope.Data, path)
		if assert.NotNil(t, envelope.Pagination, path) {
			assert.Equal(t, 0, envelope.Pagination.Total, path)
		}
	}

	w := doJSON(router, "GET", "/api/v1/contact", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeEnvelope(t, w).Data)

	w = doJSON(router, "GET", "/api/v1/home", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	home, ok := decodeEnvelope(t, w).Data.(map[string]interface{})
	if assert.True(t, ok) {
		assert.Empty(t, home["houses"])
		assert.Empty(t, home["reviews"])
		assert.Empty(t, home["galleryImages"])
		assert.Nil(t, home["contact"])
	}
}
