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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/starwars-api/config"
	"github.com/oksasatya/starwars-api/internal/container"
	"github.com/oksasatya/starwars-api/internal/infrastructure/database"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-api/internal/router"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	ctx := context.Background()

	db, err := database.Open(ctx, database.Options{
		URL:         cfg.NormalizedDatabaseURL(),
		SQLitePath:  cfg.SQLitePath,
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxConnLife: cfg.DBMaxConnLife,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	c := &container.Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		JWT:     helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL),
		Metrics: middleware.NewMetrics("starwars"),
	}

	// Redis catalog cache (optional)
	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			helpers.LogError(logger, "redis unreachable, catalog cache will miss until it recovers", err, nil)
		}
		c.Redis = rdb
	}

	// RabbitMQ favorite events (optional)
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQFavoritesQueue, cfg.AppName)
		if err != nil {
			helpers.LogError(logger, "rabbitmq unavailable, favorite events disabled", err, nil)
		} else {
			defer pub.Close()
			c.SetRabbitPub(pub)
		}
	}

	r := router.New(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
