package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kartik-3/hall-booking/internal/config"
	"github.com/kartik-3/hall-booking/internal/handler"
	"github.com/kartik-3/hall-booking/internal/middleware"
	"github.com/kartik-3/hall-booking/internal/queue"
	"github.com/kartik-3/hall-booking/internal/repository"
	"github.com/kartik-3/hall-booking/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	// Redis is optional; a nil client disables rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	rooms := repository.NewRoomRepo()
	router.RegisterRoutes(e, handler.NewRoomHandler(rooms))

	// Background consumer appends admitted bookings to logs/booking.log.
	if os.Getenv("QUEUE_CONSUMER_ENABLED") == "true" {
		go func() {
			if err := queue.StartRoomBookedConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
