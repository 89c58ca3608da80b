package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/reelfind/internal/config"
	"github.com/user/reelfind/internal/handler"
	"github.com/user/reelfind/internal/middleware"
	"github.com/user/reelfind/internal/repository"
	"github.com/user/reelfind/internal/router"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reelfind",
	})

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	// User store: postgres when configured, process-lifetime otherwise.
	var repos *repository.Repositories
	if cfg.DatabaseURL != "" {
		db, err := repository.InitDB(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database connection failed", "err", err)
		}
		sqlDB, _ := db.DB()
		defer sqlDB.Close()
		repos = repository.NewRepositories(db)
	} else {
		logger.Warn("DATABASE_URL not set, user accounts reset on restart")
		repos = repository.NewMemoryRepositories()
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.SiteURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Logger(logger))

	h := handler.NewHandler(repos, cfg, logger)
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Run the server in a goroutine so we can wait for signals.
	go func() {
		logger.Info("server listening", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", "err", err)
	}

	logger.Info("server exited")
}
