// Package main runs the event registration HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/govtec-events/backend/config"
	"github.com/govtec-events/backend/internal/codes"
	"github.com/govtec-events/backend/internal/middleware"
	"github.com/govtec-events/backend/internal/notify"
	"github.com/govtec-events/backend/internal/registrations"
	"github.com/govtec-events/backend/internal/store"
	"github.com/govtec-events/backend/pkg/database"
	"github.com/govtec-events/backend/pkg/queue"
	"github.com/govtec-events/backend/pkg/redis"
	"github.com/govtec-events/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	// Storage: in-memory by default, Postgres when DATABASE_URL is set.
	var st store.Storage
	if cfg.Database.URL != "" {
		pool, err := database.NewPostgresPool(ctx, cfg.Database.URL, logger)
		if err != nil {
			logger.Fatal("database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}
		st = store.NewPostgresStore(pool, cfg.Codes.Valid)
	} else {
		st = store.NewMemStore(cfg.Codes.Valid, logger)
	}

	sinks := []notify.Sink{
		notify.NewSheetsSink(cfg.Sheets, logger),
		notify.NewEmailSink(cfg.Email, logger),
	}
	dispatcher := notify.NewDispatcher(sinks, time.Duration(cfg.Notify.SinkTimeout)*time.Second, logger)

	// Notifications run inline unless Redis is configured, in which case
	// they are enqueued and handled by cmd/worker.
	var notifier notify.Notifier = dispatcher
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		notifier = notify.NewQueueNotifier(queue.NewQueue(rdb.Client, logger), logger)
	}

	registrationHandler := registrations.NewHandler(st, notifier, logger)
	codeHandler := codes.NewHandler(st, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.POST("/registrations", registrationHandler.Create)
		api.GET("/registrations", registrationHandler.List)
		api.GET("/registrations/:id", registrationHandler.GetByID)
		api.POST("/verify-code", codeHandler.Verify)
	}

	// SPA fallback: serve the client build for any non-API route.
	if cfg.Server.StaticDir != "" {
		router.NoRoute(spaHandler(cfg.Server.StaticDir))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// spaHandler serves files from dir, falling back to index.html for
// client-side routes. Unknown /api paths stay JSON 404s.
func spaHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			response.NotFound(c, "Not found")
			return
		}
		file := filepath.Join(dir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
