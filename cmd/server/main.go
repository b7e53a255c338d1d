package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamecatalog/backend/internal/app"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/logging"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamecatalog/backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Game Catalog API
// @version         1.0
// @description     Local game catalog: search, genre filter, add and detail view, plus display preferences.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	configPath := flag.String("config", "", "path to a .env config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// run serves the API until the process is interrupted. Deferred cleanup
// always runs before main exits.
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("start catalog: %w", err)
	}
	defer a.Close()

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(a, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.HTTPAddr, "games", a.Catalog.Len())
	logger.Info("swagger UI available", "url", "http://localhost"+cfg.HTTPAddr+"/swagger/index.html")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func newRouter(a *app.App, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	handler.New(a.Catalog, a.Preferences, a.Hub).Register(router.Group("/api/v1"))
	return router
}

// requestLogger logs method, path, status and duration of every request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}
