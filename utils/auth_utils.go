package utils

import (
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated user's claims, or nil for anonymous
// requests (routes behind OptionalAuthMiddleware).
func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
