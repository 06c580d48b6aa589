package middleware

import (
	"net/http"

	"schedly-be/internal/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware returns a Gin middleware that validates the bearer token
// carried in the Authorization header. The header value is the token itself
// (no "Bearer " prefix). A missing token is rejected as unauthenticated,
// an invalid or expired one as forbidden; on success the identity claims
// are attached to the request context for downstream handlers.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "No token provided, unauthorized.",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Invalid token.",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
