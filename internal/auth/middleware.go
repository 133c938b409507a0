package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userCtxKey is the Gin context key used to store the authenticated user id.
const userCtxKey = "user_id"

// Middleware enforces bearer-token auth on protected routes and stores the
// verified user id in the request context.
func Middleware(tokens *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed token"})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userCtxKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id from the request context.
func UserID(c *gin.Context) int64 {
	v, _ := c.Get(userCtxKey)
	id, _ := v.(int64)
	return id
}
