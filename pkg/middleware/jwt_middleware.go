package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfare/pkg/utils"
)

func JWTAuthMiddleware(maker *utils.JWTMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondDetail(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := maker.ValidateToken(tokenString)
		if err != nil {
			utils.RespondDetail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
