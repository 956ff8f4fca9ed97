package api

import (
	"errors"
	"net/http"
	"strings"

	"tvshow_admin/internal/apperror"
	"tvshow_admin/internal/store"
	"tvshow_admin/internal/utils"

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// TokenRequest is the body of POST /auth/token
type TokenRequest struct {
	Username string `json:"username" validate:"required"` // Username must be provided
	Password string `json:"password" validate:"required"` // Password must be provided
}

// TokenResponse carries a signed bearer token
type TokenResponse struct {
	Token string `json:"token"` // JWT token
}

func invalidCredentials() *apperror.Error {
	return apperror.New(http.StatusUnauthorized, "Invalid credentials", nil)
}

// TokenHandler authenticates a user and returns a JWT token
func TokenHandler(s *store.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest
		if !bindAndValidate(c, &req) {
			return
		}
		// Usernames are stored lowercase
		user, err := s.GetUserByUsername(c.Request.Context(), strings.ToLower(req.Username))
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(invalidCredentials())
			return
		}
		if err != nil {
			_ = c.Error(apperror.Internal("Failed to issue token", err))
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			_ = c.Error(invalidCredentials())
			return
		}
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			_ = c.Error(apperror.Internal("Failed to issue token", err))
			return
		}
		c.JSON(http.StatusOK, TokenResponse{Token: token})
	}
}

// HealthHandler reports whether the database is reachable
func HealthHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.Ping(c.Request.Context()); err != nil {
			_ = c.Error(apperror.New(http.StatusServiceUnavailable, "Database unavailable", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
