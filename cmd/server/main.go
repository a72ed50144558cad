package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ausawards/admin-api/internal/auth"
	"github.com/ausawards/admin-api/internal/config"
	"github.com/ausawards/admin-api/internal/database"
	"github.com/ausawards/admin-api/internal/handler"
	"github.com/ausawards/admin-api/internal/queue"
	"github.com/ausawards/admin-api/internal/repository"
	"github.com/ausawards/admin-api/internal/router"
	"github.com/ausawards/admin-api/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Optional collaborators: a nil Redis client disables the response
	// cache, a publisher with an unreachable broker only logs.
	rdb := config.NewCacheClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}
	events := queue.NewPublisher()
	go queue.StartSessionConsumer()

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec(cfg.JWTSecret, time.Duration(cfg.TokenTTLSec)*time.Second)

	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	awardRepo := repository.NewAwardRepo(db)

	sessionSvc := service.NewSessionService(
		cfg.SessionSecretLen, time.Duration(cfg.SessionTTLSec)*time.Second,
		hasher, codec, userRepo, roleRepo, sessionRepo)
	userSvc := service.NewUserService(hasher, userRepo)
	awardSvc := service.NewAwardService(awardRepo)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler

	router.Register(e, codec, rdb,
		handler.NewHealthHandler(cfg.AppName),
		handler.NewSessionHandler(sessionSvc, events),
		handler.NewUserHandler(userSvc),
		handler.NewAwardHandler(awardSvc))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
