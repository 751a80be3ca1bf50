package controllers

import (
	"log"
	"strconv"

	"lesnoy/config"
	"lesnoy/constants"
	"lesnoy/dto"
	"lesnoy/errors"
	"lesnoy/models"
	"lesnoy/response"
	"lesnoy/validator"

	"github.com/gin-gonic/gin"
)

func convertToGalleryImageResponse(image models.GalleryImage) dto.GalleryImageResponse {
	return dto.GalleryImageResponse{
		ID:          image.ID,
		Title:       image.Title,
		Description: image.Description,
		Image:       image.Image,
		AltText:     image.AltText,
		IsFeatured:  image.IsFeatured,
		Order:       image.Order,
		CreatedAt:   image.CreatedAt,
	}
}

// GetGallery serves the public gallery, ordered by the manual display
// order and then recency. A storage failure renders an empty gallery.
func GetGallery(c *gin.Context) {
	page := 0
	limit := constants.GalleryPageSize
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

	var images []models.GalleryImage
	var total int64
	if err := config.DB.Model(&models.GalleryImage{}).Count(&total).Error; err != nil {
		log.Printf("Failed to count gallery images: %v", err)
		response.SuccessWithPagination(c, []dto.GalleryImageResponse{}, page, limit, 0)
		return
	}
	if err := config.DB.Order("display_order ASC, created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&images).Error; err != nil {
		log.Printf("Failed to load gallery images: %v", err)
		response.SuccessWithPagination(c, []dto.GalleryImageResponse{}, page, limit, 0)
		return
	}

	imageResponses := make([]dto.GalleryImageResponse, 0, len(images))
	for _, image := range images {
		imageResponses = append(imageResponses, convertToGalleryImageResponse(image))
	}

	response.SuccessWithPagination(c, imageResponses, page, limit, int(total))
}

// CreateGalleryImage adds a new image to the gallery.
func CreateGalleryImage(c *gin.Context) {
	var request dto.CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	image := models.GalleryImage{
		Title:       request.Title,
		Description: request.Description,
		Image:       request.Image,
		AltText:     request.AltText,
		IsFeatured:  request.IsFeatured,
		Order:       request.Order,
	}
	if err := validator.ValidateGalleryImage(&image); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Invalid gallery image data")
		return
	}
	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Gallery image created", convertToGalleryImageResponse(image))
}

// UpdateGalleryImage changes metadata or the display position of an
// image. Only the provided fields are touched.
func UpdateGalleryImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gallery image id")
		return
	}

	var image models.GalleryImage
	if err := config.DB.First(&image, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	if request.Title != nil {
		image.Title = *request.Title
	}
	if request.Description != nil {
		image.Description = *request.Description
	}
	if request.Image != nil {
		image.Image = *request.Image
	}
	if request.AltText != nil {
		image.AltText = *request.AltText
	}
	if request.IsFeatured != nil {
		image.IsFeatured = *request.IsFeatured
	}
	if request.Order != nil {
		image.Order = *request.Order
	}

	if err := validator.ValidateGalleryImage(&image); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Invalid gallery image data")
		return
	}

	if err := config.DB.Save(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Gallery image updated", convertToGalleryImageResponse(image))
}

// DeleteGalleryImage removes an image from the gallery.
func DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gallery image id")
		return
	}

	var image models.GalleryImage
	if err := config.DB.First(&image, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Gallery image deleted", nil)
}
