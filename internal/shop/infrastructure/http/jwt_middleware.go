package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youngwishes/shop-service/internal/pkg/jwt"
	"github.com/youngwishes/shop-service/internal/pkg/logging"
)

func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse user token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Next()
	}
}
