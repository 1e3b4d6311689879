package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func withIdempotencyHooks(t *testing.T) {
	t.Helper()
	origGet := redisGet
	origSet := redisSet
	origSetNX := redisSetNX
	origDel := redisDel
	t.Cleanup(func() {
		redisGet = origGet
		redisSet = origSet
		redisSetNX = origSetNX
		redisDel = origDel
	})
}

func newIdempotencyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(UserIDKey, uuid.New()); c.Next() })
	r.Use(IdempotencyMiddleware())
	r.POST("/invest", func(c *gin.Context) { c.String(http.StatusCreated, `{"id":1}`) })
	r.POST("/fail", func(c *gin.Context) { c.String(http.StatusInternalServerError, "boom") })
	return r
}

func TestIdempotencyMiddleware_NoHeaderPassesThrough(t *testing.T) {
	withIdempotencyHooks(t)
	called := false
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) {
		called = true
		return true, nil
	}

	r := newIdempotencyRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/invest", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	require.False(t, called, "no key, no redis traffic")
}

func TestIdempotencyMiddleware_RecordsResponse(t *testing.T) {
	withIdempotencyHooks(t)
	var recorded string
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return true, nil }
	redisSet = func(_ context.Context, _ string, value interface{}, _ time.Duration) error {
		recorded = value.(string)
		return nil
	}
	redisDel = func(context.Context, string) error { return nil }

	r := newIdempotencyRouter()
	req := httptest.NewRequest(http.MethodPost, "/invest", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var stored storedResponse
	require.NoError(t, json.Unmarshal([]byte(recorded), &stored))
	require.Equal(t, http.StatusCreated, stored.Status)
	require.Equal(t, `{"id":1}`, stored.Body)
}

func TestIdempotencyMiddleware_ReplaysRecordedResponse(t *testing.T) {
	withIdempotencyHooks(t)
	payload, _ := json.Marshal(storedResponse{Status: http.StatusCreated, Body: `{"id":1}`})
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return false, nil }
	redisGet = func(context.Context, string) (string, error) { return string(payload), nil }

	handlerRuns := 0
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(UserIDKey, uuid.New()); c.Next() })
	r.Use(IdempotencyMiddleware())
	r.POST("/invest", func(c *gin.Context) { handlerRuns++; c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodPost, "/invest", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, `{"id":1}`, w.Body.String())
	require.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	require.Zero(t, handlerRuns, "handler must not run again")
}

func TestIdempotencyMiddleware_ConflictWhileProcessing(t *testing.T) {
	withIdempotencyHooks(t)
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return false, nil }
	redisGet = func(context.Context, string) (string, error) { return processingMarker, nil }

	r := newIdempotencyRouter()
	req := httptest.NewRequest(http.MethodPost, "/invest", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "Request already in progress")
}

func TestIdempotencyMiddleware_ServerErrorIsRetryable(t *testing.T) {
	withIdempotencyHooks(t)
	delCalled := false
	setCalled := false
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return true, nil }
	redisSet = func(context.Context, string, interface{}, time.Duration) error { setCalled = true; return nil }
	redisDel = func(context.Context, string) error { delCalled = true; return nil }

	r := newIdempotencyRouter()
	req := httptest.NewRequest(http.MethodPost, "/fail", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.True(t, delCalled, "lock released so the client can retry")
	require.False(t, setCalled)
}

func TestIdempotencyMiddleware_RedisDownPassesThrough(t *testing.T) {
	withIdempotencyHooks(t)
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) {
		return false, errors.New("redis down")
	}

	r := newIdempotencyRouter()
	req := httptest.NewRequest(http.MethodPost, "/invest", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, "unguarded but not blocked")
}

func TestIdempotencyMiddleware_UnparseableRecordConflicts(t *testing.T) {
	withIdempotencyHooks(t)
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return false, nil }
	redisGet = func(context.Context, string) (string, error) { return "not-json", nil }

	r := newIdempotencyRouter()
	req := httptest.NewRequest(http.MethodPost, "/invest", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusConflict, w.Code)
}
