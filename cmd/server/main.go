package main

import (
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"concertd/internal/config"
	"concertd/internal/handler"
	"concertd/internal/logger"
	"concertd/internal/model"
	"concertd/internal/router"
	"concertd/internal/store"
)

// seed fills a fresh store with the two reference concerts the service
// has always started with, leaving the counter at 3.
func seed(s *store.ConcertStore) {
	concerts := []model.Concert{
		{
			ID:     1,
			Artist: "Pink Floyd",
			Venue:  "Werchter",
			Date:   time.Date(2017, time.July, 20, 20, 0, 0, 0, time.FixedZone("", -2*60*60)),
		},
		{
			ID:     2,
			Artist: "Kraftwerk",
			Venue:  "Domaine National de St Cloud",
			Date:   time.Date(2022, time.September, 26, 15, 0, 0, 0, time.FixedZone("", -2*60*60)),
		},
	}
	for _, c := range concerts {
		s.Insert(c)
		s.BumpPast(c.ID)
	}
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	s := store.New()
	seed(s)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	h := &handler.ConcertHandler{Store: s, Log: log}
	router.RegisterRoutes(e, h)

	addr := ":" + cfg.Port
	log.Info("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
