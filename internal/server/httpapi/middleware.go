package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/docport/internal/logging"
)

const (
	// RequestIDHeader carries the per-request ID back to the client.
	RequestIDHeader = "X-Request-Id"

	contextKeyRequestID = "request_id"
)

// RequestID assigns every request a fresh UUID, stores it on the gin context
// and echoes it in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(contextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one structured line per request after it completes.
func RequestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		l.Info(c.Request.Context(), "request",
			"request_id", c.GetString(contextKeyRequestID),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// requestLogger returns a child logger carrying the request ID so handler
// diagnostics can be correlated with the access log.
func (s *Server) requestLogger(c *gin.Context) logging.Logger {
	return s.logger.With("request_id", c.GetString(contextKeyRequestID))
}
