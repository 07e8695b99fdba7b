package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"car_market/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(jwtUtil), func(c *gin.Context) {
		userID := c.MustGet(AuthUserKey).(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestJWTAuthMiddleware_MissingToken(t *testing.T) {
	router := setupAuthRouter(utils.NewJWTUtil("secret", 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access Denied")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupAuthRouter(utils.NewJWTUtil("secret", 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Token")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := utils.NewJWTUtil("secret", -1)
	token, err := expired.GenerateToken(uuid.New())
	require.NoError(t, err)

	router := setupAuthRouter(utils.NewJWTUtil("secret", 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJWTAuthMiddleware_RawToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	userID := uuid.New()
	token, err := jwtUtil.GenerateToken(userID)
	require.NoError(t, err)

	router := setupAuthRouter(jwtUtil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestJWTAuthMiddleware_BearerPrefixedToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	userID := uuid.New()
	token, err := jwtUtil.GenerateToken(userID)
	require.NoError(t, err)

	router := setupAuthRouter(jwtUtil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
