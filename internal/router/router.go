package router // package router defines how HTTP routes are registered for the API

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ausawards/admin-api/internal/handler"
	"github.com/ausawards/admin-api/internal/middleware"
)

// Register wires every route of the API onto the provided Echo
// instance. tokens verifies bearer tokens for the guarded routes; rdb
// may be nil, in which case the award read cache is disabled.
//
// Route guards follow one rule: session creation and refresh are open
// (they ARE the authentication), sign-out and /health/secure need any
// valid caller, and every admin mutation needs its own permission
// string carried in the caller's token.
func Register(e *echo.Echo, tokens middleware.TokenParser, rdb *redis.Client,
	health *handler.HealthHandler, sessions *handler.SessionHandler,
	users *handler.UserHandler, awards *handler.AwardHandler) {

	e.GET("/health", health.Health)
	e.GET("/health/secure", health.Health, middleware.RequireAuth(tokens))

	s := e.Group("/session")
	s.POST("", sessions.CreateSession)
	s.POST("/refresh", sessions.RefreshToken)
	s.DELETE("", sessions.SignOut, middleware.RequireAuth(tokens))

	e.POST("/users/create/admin", users.CreateAdmin,
		middleware.RequirePermission(tokens, "createAdminUser"))

	cache := middleware.ResponseCache(rdb, "awards", 30*time.Second)
	a := e.Group("/awards")
	a.GET("", awards.List, middleware.RequirePermission(tokens, "readAward"), cache)
	a.GET("/:id", awards.Get, middleware.RequirePermission(tokens, "readAward"), cache)
	a.POST("", awards.Create, middleware.RequirePermission(tokens, "createAward"))
	a.POST("/:id/alternateIds", awards.AddAlternateID,
		middleware.RequirePermission(tokens, "addAwardAlternateId"))
	a.POST("/:id/classifications", awards.AddClassification,
		middleware.RequirePermission(tokens, "addAwardClassification"))
	a.PUT("/:id/expired", awards.UpdateExpiryDate,
		middleware.RequirePermission(tokens, "updateAwardExpiryDate"))
	a.DELETE("/:id/expired", awards.RemoveExpiryDate,
		middleware.RequirePermission(tokens, "removeAwardExpiryDate"))
	a.PUT("/:id/classifications/:cid/active", awards.UpdateClassificationStatus,
		middleware.RequirePermission(tokens, "updateAwardClassificationActive"))
	a.PUT("/:id/classifications/:cid/note", awards.UpdateClassificationNote,
		middleware.RequirePermission(tokens, "updateAwardClassificationNote"))
}
