package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(rdb *redis.Client, called *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id_validated", "u-1")
		c.Next()
	})
	r.POST("/salary/records", middleware.Idempotency(rdb), func(c *gin.Context) {
		*called = true
		c.JSON(http.StatusCreated, gin.H{
			"cache": c.GetString("idempotency_cache_key"),
			"lock":  c.GetString("idempotency_lock_key"),
		})
	})
	return r
}

func postWithKey(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/salary/records", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/salary/records:u-1:k-1"
	lockKey := cacheKey + ":lock"

	t.Run("nil redis passes through", func(t *testing.T) {
		called := false
		w := httptest.NewRecorder()
		newIdempotencyRouter(nil, &called).ServeHTTP(w, postWithKey("k-1"))

		assert.True(t, called)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		called := false
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb, &called).ServeHTTP(w, postWithKey(""))

		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cached response is replayed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"id":"rec-1"}`)

		called := false
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb, &called).ServeHTTP(w, postWithKey("k-1"))

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true,"data":{"id":"rec-1"}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate gets conflict", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		called := false
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb, &called).ServeHTTP(w, postWithKey("k-1"))

		assert.False(t, called)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})

	t.Run("first request acquires lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)

		called := false
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb, &called).ServeHTTP(w, postWithKey("k-1"))

		assert.True(t, called)
		assert.Contains(t, w.Body.String(), lockKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error does not block request", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetErr(errors.New("redis down"))

		called := false
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb, &called).ServeHTTP(w, postWithKey("k-1"))

		assert.True(t, called)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
