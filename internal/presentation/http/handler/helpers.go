package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
)

// GetSessionUser extracts the signed-in user from the Gin context
func GetSessionUser(c *gin.Context) *entity.User {
	userVal, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := userVal.(entity.User)
	if !ok {
		return nil
	}
	return &user
}

// SessionUserName returns the signed-in user's display name, or empty
func SessionUserName(c *gin.Context) string {
	if user := GetSessionUser(c); user != nil {
		return user.Name
	}
	return ""
}
