package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"investgrow.backend/internal/interfaces/http/response"
	"investgrow.backend/pkg/redis"
)

const (
	// IdempotencyHeader carries the client-chosen replay key.
	IdempotencyHeader = "Idempotency-Key"
	// lockDuration bounds how long a request may hold the processing lock.
	lockDuration = 30 * time.Second
	// retentionDuration is how long a recorded response stays replayable.
	retentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the recorded response when a request
// repeats an Idempotency-Key. Requests without the header pass through.
// A concurrent retry while the first attempt is still running gets 409.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s", userID, key)
		ctx := c.Request.Context()

		acquired, err := redisSetNX(ctx, storageKey, processingMarker, lockDuration)
		if err != nil {
			// Redis being down must not block writes; the handler runs
			// without the guard.
			c.Next()
			return
		}

		if !acquired {
			val, err := redisGet(ctx, storageKey)
			if err != nil || val == processingMarker {
				response.AbortError(c, http.StatusConflict, "Request already in progress")
				return
			}

			var stored storedResponse
			if err := json.Unmarshal([]byte(val), &stored); err != nil {
				response.AbortError(c, http.StatusConflict, "Request already in progress")
				return
			}
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(stored.Status, "application/json", []byte(stored.Body))
			c.Abort()
			return
		}

		recorder := bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		status := c.Writer.Status()
		if status >= 500 {
			// Server faults should be retryable with the same key.
			_ = redisDel(ctx, storageKey)
			return
		}

		payload, err := json.Marshal(storedResponse{Status: status, Body: recorder.body.String()})
		if err != nil {
			_ = redisDel(ctx, storageKey)
			return
		}
		_ = redisSet(ctx, storageKey, string(payload), retentionDuration)
	}
}
