package services

import (
	"os"
	"time"

	"lesnoy/errors"
	"lesnoy/models"

	"github.com/dgrijalva/jwt-go"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken issues a signed JWT for a staff account.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": user.ID,
			"role":   user.Role,
		},
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GetUserIDFromToken extracts the user id and role from a token string.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Cannot parse token claims", nil)
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "User info missing from token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "User id missing from token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Role missing from token", nil)
	}

	return uint(userID), int(role), nil
}
