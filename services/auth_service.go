package services

import (
	"lesnoy/constants"
	"lesnoy/errors"
	"lesnoy/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Authenticate verifies staff credentials and returns the account.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "Account not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to look up account", err)
	}

	if user.Status != constants.UserStatusActive {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Account is inactive", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid email or password", err)
	}

	return &user, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
