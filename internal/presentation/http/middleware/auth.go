package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
)

// AuthMiddleware gates routes behind the persisted session: there is exactly
// one local operator, recorded by the store at login.
func AuthMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.CurrentUser()
		if user == nil {
			response.Unauthorized(c, "Sign in first")
			c.Abort()
			return
		}

		c.Set("user", *user)
		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...enum.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetSessionUser(c)
		if user == nil {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "You do not have permission to perform this action")
		c.Abort()
	}
}
