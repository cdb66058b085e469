package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(requestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestId)
		c.Header(requestIdHeader, requestId)
		c.Next()
	}
}
