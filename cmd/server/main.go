package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/edusynth/internal/catalog"
	"github.com/iliyamo/edusynth/internal/config"
	"github.com/iliyamo/edusynth/internal/database"
	"github.com/iliyamo/edusynth/internal/handler"
	"github.com/iliyamo/edusynth/internal/middleware"
	"github.com/iliyamo/edusynth/internal/queue"
	"github.com/iliyamo/edusynth/internal/repository"
	"github.com/iliyamo/edusynth/internal/router"
	"github.com/iliyamo/edusynth/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("dotenv: %v", err)
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	users := repository.NewUserRepo(db)
	progress := repository.NewProgressRepo(db)

	audit := config.LoadAuditConfig()
	var events service.EventPublisher
	if audit.Enabled {
		events = service.NewAMQPPublisher(audit.URL)
	}
	if audit.Enabled && audit.ConsumerEnabled {
		go func() {
			if err := queue.StartAuditConsumer(ctx, audit.URL, audit.LogDir); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("audit consumer stopped: %v", err)
			}
		}()
	}

	auth, err := service.NewAuthService(users, events, cfg.JWTSecret,
		time.Duration(cfg.TokenTTLMin)*time.Minute, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and catalog cache disabled")
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	router.RegisterRoutes(e)
	router.RegisterAuth(e,
		handler.NewAuthHandler(auth, users, cfg.CookieSecure),
		auth,
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb),
	)
	router.RegisterCatalog(e,
		handler.NewCatalogHandler(catalog.Default()),
		middleware.ResponseCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterProgress(e, handler.NewProgressHandler(progress), auth)

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
