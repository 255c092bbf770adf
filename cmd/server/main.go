package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/almhaga/brf-intranet/internal/config"
	"github.com/almhaga/brf-intranet/internal/database"
	"github.com/almhaga/brf-intranet/internal/handler"
	"github.com/almhaga/brf-intranet/internal/middleware"
	"github.com/almhaga/brf-intranet/internal/queue"
	"github.com/almhaga/brf-intranet/internal/repository"
	"github.com/almhaga/brf-intranet/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	apartments := repository.NewApartmentRepo(db)
	bookings := repository.NewBookingRepo(db)
	seasons := repository.NewSeasonRepo(db)
	pages := repository.NewPageRepo(db)

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users, tokens),
		Apartments: handler.NewApartmentHandler(apartments),
		Bookings:   handler.NewBookingHandler(bookings, apartments, seasons, users),
		Seasons:    handler.NewSeasonHandler(seasons),
		Pages:      handler.NewPageHandler(pages),
		AdminUsers: handler.NewAdminUserHandler(cfg, users, tokens),
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e, h, cfg.JWTSecret, cacheMW)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
