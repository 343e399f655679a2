package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coremade/core-hp/internal/constants"
)

// RequestID tags each request with an id, reusing the caller's X-Request-ID when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the current request id from context
func GetRequestID(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(constants.ContextKeyRequestID)
	if !exists {
		return "", false
	}
	id, ok := requestID.(string)
	return id, ok
}
