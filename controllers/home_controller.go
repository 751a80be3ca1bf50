package controllers

import (
	"log"

	"lesnoy/config"
	"lesnoy/dto"
	"lesnoy/models"
	"lesnoy/response"

	"github.com/gin-gonic/gin"
)

// GetHome aggregates the landing page: a few houses, recent approved
// reviews, featured gallery images and the contact block. Every section
// degrades to empty on storage errors so the page always renders.
func GetHome(c *gin.Context) {
	home := dto.HomeResponse{
		Houses:        []dto.HouseResponse{},
		Reviews:       []dto.ReviewResponse{},
		GalleryImages: []dto.GalleryImageResponse{},
	}

	var houses []models.House
	if err := config.DB.Where("is_available = ?", true).
		Order("price_per_night ASC").
		Limit(3).
		Find(&houses).Error; err != nil {
		log.Printf("Failed to load houses for home page: %v", err)
	} else {
		for _, house := range houses {
			home.Houses = append(home.Houses, convertToHouseResponse(house))
		}
	}

	var reviews []models.Review
	if err := config.DB.Where("is_approved = ?", true).
		Order("created_at DESC").
		Limit(3).
		Find(&reviews).Error; err != nil {
		log.Printf("Failed to load reviews for home page: %v", err)
	} else {
		for _, review := range reviews {
			home.Reviews = append(home.Reviews, convertToReviewResponse(review))
		}
	}

	var images []models.GalleryImage
	if err := config.DB.Where("is_featured = ?", true).
		Order("display_order ASC, created_at DESC").
		Limit(6).
		Find(&images).Error; err != nil {
		log.Printf("Failed to load gallery images for home page: %v", err)
	} else {
		for _, image := range images {
			home.GalleryImages = append(home.GalleryImages, convertToGalleryImageResponse(image))
		}
	}

	var contact models.Contact
	if err := config.DB.First(&contact).Error; err == nil {
		contactResponse := convertToContactResponse(contact)
		home.Contact = &contactResponse
	}

	response.Success(c, home)
}
