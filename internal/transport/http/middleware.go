package http

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"banksystem/internal/metrics"
	"banksystem/internal/model"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Publisher sends an event to the message bus.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Metrics records request counts, durations and business response codes.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeOf(c)
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
		if code := c.GetString(responseCodeKey); code != "" {
			metrics.ResponseCodes.WithLabelValues(route, code).Inc()
		}
	}
}

// Audit publishes an AuditEvent for every request once it has been served.
// Publish failures are logged and never reach the client.
func Audit(pub Publisher, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := model.AuditEvent{
			ID:           uuid.NewString(),
			RequestID:    c.GetString(requestIDKey),
			Method:       c.Request.Method,
			Route:        routeOf(c),
			Status:       c.Writer.Status(),
			ResponseCode: c.GetString(responseCodeKey),
			LatencyMs:    time.Since(start).Milliseconds(),
			ClientIP:     c.ClientIP(),
			CreatedAt:    start.UTC(),
		}
		data, err := json.Marshal(event)
		if err != nil {
			log.Warn("audit: marshal event", zap.Error(err))
			return
		}
		if err := pub.Publish(model.AuditSubject, data); err != nil {
			log.Warn("audit: publish event",
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
		}
	}
}

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return c.Request.URL.Path
}
