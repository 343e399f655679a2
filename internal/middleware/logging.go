package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apierrors "github.com/coremade/core-hp/internal/errors"
)

// Logger logs every completed request with its request id
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		requestID, _ := GetRequestID(c)
		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("url", c.Request.URL.String()).
			Int("status", status).
			Dur("latency", time.Since(begin)).
			Str("client_ip", c.ClientIP()).
			Msg("Completed request")
	}
}

// Recovery turns a panic into a 500 and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rvr := recover(); rvr != nil {
				requestID, _ := GetRequestID(c)
				log.Error().
					Interface("panic", rvr).
					Str("request_id", requestID).
					Str("method", c.Request.Method).
					Str("url", c.Request.URL.String()).
					Str("stack_trace", string(debug.Stack())).
					Msg("Recovered from panic")

				apierrors.InternalError(c, "Internal server error", nil)
				c.Abort()
			}
		}()

		c.Next()
	}
}
