package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lesnoy/constants"
	"lesnoy/models"
	"lesnoy/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/staff", AuthMiddleware(constants.RoleManager, constants.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/admin-only", AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupAuthRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/staff", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupAuthRouter()

	req := httptest.NewRequest("GET", "/staff", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupAuthRouter()

	token, err := services.GenerateToken(&models.User{ID: 1, Role: constants.RoleManager})
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRoleCheck(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupAuthRouter()

	token, err := services.GenerateToken(&models.User{ID: 1, Role: constants.RoleManager})
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
