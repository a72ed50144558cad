package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestResponseCacheDisabledWithoutRedis(t *testing.T) {
	calls := 0
	e := echo.New()
	e.GET("/cached", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, map[string]int{"n": calls})
	}, ResponseCache(nil, "test", time.Minute))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/cached", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
	// With no Redis client every request must reach the handler.
	if calls != 2 {
		t.Fatalf("handler calls: got %d want 2", calls)
	}
}

func TestCacheKeyDistinguishesRequests(t *testing.T) {
	e := echo.New()
	newCtx := func(target, route string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath(route)
		return c
	}

	// Two ids on the same registered route must not share an entry,
	// otherwise one award's body would be served for every id.
	a := cacheKey("awards", newCtx("/awards/award-a", "/awards/:id"))
	b := cacheKey("awards", newCtx("/awards/award-b", "/awards/:id"))
	if a == b {
		t.Fatal("cache key collapses distinct path parameters")
	}

	p := cacheKey("awards", newCtx("/awards", "/awards"))
	q := cacheKey("awards", newCtx("/awards?page=2", "/awards"))
	if p == q {
		t.Fatal("cache key ignores the query string")
	}
}
