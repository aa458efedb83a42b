package http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"banksystem/internal/metrics"
	"banksystem/internal/model"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	ReplayedHeader    = "Idempotent-Replayed"
)

// IdempotencyStore keeps responses of POST requests by idempotency key.
// Load returns nil when nothing is stored under key.
type IdempotencyStore interface {
	Load(ctx context.Context, key string) (*model.IdempotentResponse, error)
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Save(ctx context.Context, key string, resp model.IdempotentResponse, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// Idempotency replays the stored response of a POST carrying an
// Idempotency-Key header. Keys are scoped by route. A duplicate that arrives
// while the first request is still running gets 409. Responses with a 5xx
// status are not kept so the client can retry.
func Idempotency(store IdempotencyStore, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(IdempotencyHeader)
		if c.Request.Method != http.MethodPost || header == "" {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := routeOf(c) + ":" + header

		stored, err := store.Load(ctx, key)
		if err != nil {
			log.Error("idempotency: load", zap.String("key", key), zap.Error(err))
			abortWithResult(c, InternalError())
			return
		}
		if stored != nil {
			if stored.Pending {
				abortWithResult(c, Conflict(model.ErrorResponse(model.CodeRequestInProgress)))
				return
			}
			metrics.IdempotentReplays.Inc()
			c.Set(responseCodeKey, stored.Code)
			c.Header(ReplayedHeader, "true")
			c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
			c.Abort()
			return
		}

		reserved, err := store.Reserve(ctx, key, ttl)
		if err != nil {
			log.Error("idempotency: reserve", zap.String("key", key), zap.Error(err))
			abortWithResult(c, InternalError())
			return
		}
		if !reserved {
			abortWithResult(c, Conflict(model.ErrorResponse(model.CodeRequestInProgress)))
			return
		}

		// the client may be gone already; the outcome must still be recorded
		ctx = context.WithoutCancel(ctx)
		release := func() {
			if err := store.Release(ctx, key); err != nil {
				log.Warn("idempotency: release", zap.String("key", key), zap.Error(err))
			}
		}

		// A panicking handler ends up as a 500 in the recovery middleware,
		// which runs after this one has unwound.
		defer func() {
			if p := recover(); p != nil {
				release()
				panic(p)
			}
		}()

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if rec.Status() >= http.StatusInternalServerError {
			release()
			return
		}
		resp := model.IdempotentResponse{
			Status: rec.Status(),
			Code:   c.GetString(responseCodeKey),
			Body:   rec.body.Bytes(),
		}
		if err := store.Save(ctx, key, resp, ttl); err != nil {
			log.Warn("idempotency: save", zap.String("key", key), zap.Error(err))
		}
	}
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
