package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tumbletown/signup-api/internal/config"
	"github.com/tumbletown/signup-api/internal/database"
	"github.com/tumbletown/signup-api/internal/handler"
	"github.com/tumbletown/signup-api/internal/middleware"
	"github.com/tumbletown/signup-api/internal/queue"
	"github.com/tumbletown/signup-api/internal/repository"
	"github.com/tumbletown/signup-api/internal/router"
	"github.com/tumbletown/signup-api/internal/service"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis backs the signup rate limiter and the events cache; when it
	// is unreachable both middlewares degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and caching disabled")
	}

	catalogRepo := repository.NewCatalogRepo(db)
	signupRepo := repository.NewSignupRepo(db)
	eventRepo := repository.NewEventRepo(db)

	registrations := service.NewRegistrationService(signupRepo, service.PublishSignupConfirmed)

	catalogHandler := handler.NewCatalogHandler(catalogRepo)
	eventHandler := handler.NewEventHandler(eventRepo)
	signupHandler := handler.NewSignupHandler(registrations)

	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Background consumer appending confirmed signups to logs/signup.log.
	go queue.StartSignupConsumer()

	e := echo.New()
	router.RegisterRoutes(e, catalogHandler, eventHandler, signupHandler, rateLimit, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
