package controllers

import (
	"lesnoy/config"
	"lesnoy/dto"
	"lesnoy/models"
	"lesnoy/response"
	"lesnoy/services"

	"github.com/gin-gonic/gin"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// Login exchanges staff credentials for a JWT.
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if request.Email == "" || request.Password == "" {
		response.BadRequest(c, "Email and password are required")
		return
	}

	user, err := services.Authenticate(config.DB, request.Email, request.Password)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  convertToUserResponse(*user),
	})
}

// GetProfile returns the account behind the presented token.
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
