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

	"technician-board/internal/api/routes"
	"technician-board/internal/config"
	"technician-board/internal/database"
	"technician-board/internal/database/seed"
	"technician-board/internal/logger"
	"technician-board/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	_ "technician-board/docs" // This is needed for swag
)

//	@title			Technician Board API
//	@version		1.0
//	@description	Shared board of technician to foreman assignments, grouped by department.

//	@contact.name	Shop Operations
//	@contact.email	ops@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3001
//	@BasePath	/

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.SeedOnEmpty {
		roster, err := seed.Default()
		if err != nil {
			logrus.Fatal("Failed to load default roster:", err)
		}
		n, err := seed.IfEmpty(ctx, db, roster, time.Now())
		if err != nil {
			logrus.Fatal("Failed to seed assignments:", err)
		}
		if n > 0 {
			logrus.WithField("rows", n).Info("Seeded assignments")
		}
	}

	deps := routes.Dependencies{}

	if cfg.PinRateLimitEnabled() {
		rdb, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logrus.Fatal("Failed to connect to redis:", err)
		}
		defer rdb.Close()
		deps.Redis = rdb
	} else {
		logrus.Warn("REDIS_URL not set, PIN attempts are not rate limited")
	}

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		deps.Registry = reg
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
