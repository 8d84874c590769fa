package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// HeaderUserID carries the caller identity, supplied by the gateway.
	HeaderUserID = "X-Sharer-User-Id"

	headerRequestID  = "X-Request-Id"
	contextUserIDKey = "userID"
)

// RequestID attaches a request id to every request, generating one when the
// caller did not send one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Set("requestID", requestID)
		c.Next()
	}
}

// Logger logs one line per request with method, path, status and latency.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("requestID")),
		)
	}
}

// Recovery converts panics into 500 responses without killing the process.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

// Identity parses the X-Sharer-User-Id header into the request context. A
// missing or malformed header leaves uuid.Nil in place; the services treat
// that as invalid input, so the request still fails with a domain error
// rather than a transport one.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				c.Set(contextUserIDKey, id)
			}
		}
		c.Next()
	}
}

// CallerID returns the caller identity extracted by Identity, or uuid.Nil.
func CallerID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
