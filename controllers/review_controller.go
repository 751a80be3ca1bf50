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

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         review.ID,
		GuestName:  review.GuestName,
		Rating:     review.Rating,
		Text:       review.Text,
		Avatar:     review.Avatar,
		IsApproved: review.IsApproved,
		CreatedAt:  review.CreatedAt,
	}
}

// GetReviews serves the public reviews page: approved only, newest
// first. A storage failure renders an empty page instead of a 500.
func GetReviews(c *gin.Context) {
	page := 0
	limit := constants.ReviewsPageSize
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

	var reviews []models.Review
	var total int64
	query := config.DB.Model(&models.Review{}).Where("is_approved = ?", true)
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count reviews: %v", err)
		response.SuccessWithPagination(c, []dto.ReviewResponse{}, page, limit, 0)
		return
	}
	if err := query.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		log.Printf("Failed to load reviews: %v", err)
		response.SuccessWithPagination(c, []dto.ReviewResponse{}, page, limit, 0)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	response.SuccessWithPagination(c, reviewResponses, page, limit, int(total))
}

// CreateReview accepts a guest review. It stays hidden until a staff
// member approves it.
func CreateReview(c *gin.Context) {
	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	review := models.Review{
		GuestName:  request.GuestName,
		Rating:     request.Rating,
		Text:       request.Text,
		Avatar:     request.Avatar,
		IsApproved: false,
	}
	if err := validator.ValidateReview(&review); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Invalid review data")
		return
	}
	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Thank you! Your review will appear after moderation", convertToReviewResponse(review))
}

// GetAllReviews lists every review for moderation, pending first.
func GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Order("is_approved ASC, created_at DESC").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	response.Success(c, reviewResponses)
}

// ChangeReviewStatus publishes or hides a review.
func ChangeReviewStatus(c *gin.Context) {
	var request dto.ApproveReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if request.ID == 0 {
		response.BadRequest(c, "Review id is required")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&review).Update("is_approved", request.IsApproved).Error; err != nil {
		response.ServerError(c)
		return
	}

	review.IsApproved = request.IsApproved
	response.SuccessWithMessage(c, "Review status updated", convertToReviewResponse(review))
}

// DeleteReview removes a review permanently.
func DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Review deleted", nil)
}
