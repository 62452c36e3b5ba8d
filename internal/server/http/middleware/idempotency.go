package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the client-chosen retry key.
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyHitHeader marks responses replayed from the cache.
const IdempotencyHitHeader = "X-Idempotency-Hit"

// ResponseCache persists responses keyed by idempotency key so a retried
// request replays the original outcome instead of settling twice.
type ResponseCache interface {
	Get(ctx context.Context, key string) (status int, body []byte, found bool, err error)
	Save(ctx context.Context, key string, status int, body []byte) error
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.buf.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

// Idempotency replays cached responses for repeated keys. Requests without
// the header pass through untouched.
func Idempotency(cache ResponseCache, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		status, body, found, err := cache.Get(ctx, key)
		if err != nil {
			logger.Error("idempotency lookup failed", slog.String("error", err.Error()))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if found {
			c.Header(IdempotencyHitHeader, "true")
			c.Data(status, "application/json", body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		// Only settled outcomes are worth replaying: a retryable failure
		// must stay retryable.
		final := recorder.Status()
		if final >= http.StatusInternalServerError || final == http.StatusConflict {
			return
		}
		if err := cache.Save(ctx, key, final, recorder.buf.Bytes()); err != nil {
			logger.Error("idempotency save failed", slog.String("error", err.Error()))
		}
	}
}
