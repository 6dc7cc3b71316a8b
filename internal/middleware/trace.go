package middleware

import (
	"chat-notification-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TraceHeader = "X-Request-ID"

// Trace tags every request with a trace id, reusing the caller's X-Request-ID when present.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Header(TraceHeader, traceID)
		c.Request = c.Request.WithContext(log.WithFields(c.Request.Context(), "trace_id", traceID))
		c.Next()
	}
}
