package middleware

import (
	"net/http"
	"strings"

	"quefood/internal/auth"

	"github.com/gin-gonic/gin"
)

// PhoneNumberKey is where the validated caller identity lands in the
// gin context.
const PhoneNumberKey = "phoneNumber"

func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		phoneNumber, err := tokens.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(PhoneNumberKey, phoneNumber)
		c.Next()
	}
}
