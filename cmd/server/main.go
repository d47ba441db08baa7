package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"car-registry-api/internal/config"
	"car-registry-api/internal/handlers"
	"car-registry-api/internal/middleware"
	"car-registry-api/pkg/server"
)

// @title Car Registry API
// @version 1.0
// @description CRUD REST API for managing vehicle records

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependencies
	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(container.Logger, cfg.IncludeStackTrace))
	router.Use(middleware.RequestLogger(container.Logger))
	router.Use(middleware.CORS(cfg.CORS.Origin, cfg.CORS.Credentials))
	router.Use(middleware.RequestSizeLimit(cfg.BodyLimitBytes))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		Config:        cfg,
		CarRepository: container.CarRepository,
		Logger:        container.Logger,
	})

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	container.Logger.WithField("addr", srv.Addr).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	container.Logger.Info("Server exited")
}
