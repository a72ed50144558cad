package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// cacheWriter captures the response body and status while forwarding
// everything to the client.
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *cacheWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache returns middleware that serves GET responses from Redis
// for ttl. Only 200 responses are stored, and only JSON bodies are
// expected on the routes this wraps. When rdb is nil the middleware is
// a no-op so the service degrades gracefully without Redis.
func ResponseCache(rdb *redis.Client, prefix string, ttl time.Duration) echo.MiddlewareFunc {
	if rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := cacheKey(prefix, c)
			if body, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				return c.JSONBlob(http.StatusOK, body)
			}

			w := &cacheWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = w
			if err := next(c); err != nil {
				return err
			}
			if w.status == http.StatusOK && w.buf.Len() > 0 {
				// Best effort; a failed store only costs a cache miss.
				_ = rdb.Set(c.Request().Context(), key, w.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}

func cacheKey(prefix string, c echo.Context) string {
	// Hash the concrete request path, not the registered route, so
	// entries on parameterised routes do not collide across ids.
	u := c.Request().URL
	sum := sha1.Sum([]byte(u.Path + "?" + u.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}
