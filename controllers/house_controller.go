package controllers

import (
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"lesnoy/config"
	"lesnoy/constants"
	"lesnoy/dto"
	"lesnoy/errors"
	"lesnoy/models"
	"lesnoy/response"
	"lesnoy/services"
	"lesnoy/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const housesCacheKey = "houses:available"

func convertToHouseResponse(house models.House) dto.HouseResponse {
	return dto.HouseResponse{
		ID:            house.ID,
		Name:          house.Name,
		Description:   house.Description,
		Capacity:      house.Capacity,
		PricePerNight: house.PricePerNight,
		Image:         house.Image,
		IsAvailable:   house.IsAvailable,
		CreatedAt:     house.CreatedAt,
		UpdatedAt:     house.UpdatedAt,
	}
}

// loadAvailableHouses returns bookable houses, preferring the redis
// cache. A storage failure degrades to an empty slice so listing pages
// stay up during outages.
func loadAvailableHouses() []models.House {
	var houses []models.House

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, housesCacheKey, &houses); err == nil && len(houses) > 0 {
			return houses
		}
	}

	if err := config.DB.Where("is_available = ?", true).Find(&houses).Error; err != nil {
		log.Printf("Failed to load houses, serving empty list: %v", err)
		return []models.House{}
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, housesCacheKey, houses, 10*time.Minute); err != nil {
			log.Printf("Failed to cache houses: %v", err)
		}
	}
	return houses
}

func invalidateHousesCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, housesCacheKey); err != nil {
		log.Printf("Failed to invalidate houses cache: %v", err)
	}
}

// GetAllHouses lists bookable houses with price/capacity filters,
// name+description search, sorting and pagination.
func GetAllHouses(c *gin.Context) {
	houses := loadAvailableHouses()

	minPriceStr := c.Query("min_price")
	maxPriceStr := c.Query("max_price")
	capacityStr := c.Query("capacity")
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort", constants.SortByName)

	page := 0
	limit := constants.HousesPageSize
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

	filtered := make([]models.House, 0)
	for _, house := range houses {
		if minPriceStr != "" {
			if minPrice, err := decimal.NewFromString(minPriceStr); err == nil && house.PricePerNight.LessThan(minPrice) {
				continue
			}
		}
		if maxPriceStr != "" {
			if maxPrice, err := decimal.NewFromString(maxPriceStr); err == nil && house.PricePerNight.GreaterThan(maxPrice) {
				continue
			}
		}
		if capacityStr != "" {
			if capacity, err := strconv.Atoi(capacityStr); err == nil && house.Capacity < capacity {
				continue
			}
		}
		if search != "" {
			decodedSearch, _ := url.QueryUnescape(search)
			needle := strings.ToLower(decodedSearch)
			if !strings.Contains(strings.ToLower(house.Name), needle) &&
				!strings.Contains(strings.ToLower(house.Description), needle) {
				continue
			}
		}
		filtered = append(filtered, house)
	}

	switch sortBy {
	case constants.SortByPriceLow:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].PricePerNight.LessThan(filtered[j].PricePerNight)
		})
	case constants.SortByPriceHigh:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].PricePerNight.GreaterThan(filtered[j].PricePerNight)
		})
	case constants.SortByCapacity:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].Capacity < filtered[j].Capacity
		})
	default:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.House{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	housesResponse := make([]dto.HouseResponse, 0, len(filtered))
	for _, house := range filtered {
		housesResponse = append(housesResponse, convertToHouseResponse(house))
	}

	response.SuccessWithPagination(c, housesResponse, page, limit, total)
}

// GetHouseDetail returns a single bookable house.
func GetHouseDetail(c *gin.Context) {
	houseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid house id")
		return
	}

	var house models.House
	if err := config.DB.Where("id = ? AND is_available = ?", houseID, true).First(&house).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToHouseResponse(house))
}

// SearchHouses ranks bookable houses against a free-text query.
func SearchHouses(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	houses := loadAvailableHouses()
	matched := services.SearchHouses(query, houses)

	housesResponse := make([]dto.HouseResponse, 0, len(matched))
	for _, house := range matched {
		housesResponse = append(housesResponse, convertToHouseResponse(house))
	}

	response.Success(c, housesResponse)
}

// CreateHouse adds a house (staff only).
func CreateHouse(c *gin.Context) {
	var request dto.CreateHouseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	house := models.House{
		Name:          request.Name,
		Description:   request.Description,
		Capacity:      request.Capacity,
		PricePerNight: request.PricePerNight,
		Image:         request.Image,
		IsAvailable:   true,
	}
	if request.IsAvailable != nil {
		house.IsAvailable = *request.IsAvailable
	}

	if err := validator.ValidateHouse(&house); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&house).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHousesCache()
	response.Success(c, convertToHouseResponse(house))
}

// UpdateHouse edits house fields (staff only). Price changes never touch
// existing bookings; their total price stays frozen.
func UpdateHouse(c *gin.Context) {
	houseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid house id")
		return
	}

	var request dto.UpdateHouseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var house models.House
	if err := config.DB.First(&house, houseID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != nil {
		house.Name = *request.Name
	}
	if request.Description != nil {
		house.Description = *request.Description
	}
	if request.Capacity != nil {
		house.Capacity = *request.Capacity
	}
	if request.PricePerNight != nil {
		house.PricePerNight = *request.PricePerNight
	}
	if request.Image != nil {
		house.Image = *request.Image
	}
	if request.IsAvailable != nil {
		house.IsAvailable = *request.IsAvailable
	}

	if err := validator.ValidateHouse(&house); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&house).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHousesCache()
	response.Success(c, convertToHouseResponse(house))
}

// DeleteHouse removes a house and cascades to its bookings (staff only).
func DeleteHouse(c *gin.Context) {
	houseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid house id")
		return
	}

	var house models.House
	if err := config.DB.First(&house, houseID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Select("Bookings").Delete(&house).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHousesCache()
	response.Success(c, gin.H{"id": house.ID})
}
