package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"platepix/backend/config"
	"platepix/backend/database"
	"platepix/backend/logging"
	"platepix/backend/metrics"
	"platepix/backend/middlewares"
	"platepix/backend/notify"
	"platepix/backend/routes"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logging.Fatal("invalid configuration", slog.String("error", err.Error()))
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := database.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	cancel()
	if err != nil {
		// Keep serving; /test reports the problem and writes fail with 500.
		logger.Warn("document store unavailable", slog.String("error", err.Error()))
		store = database.Unavailable(err)
	}
	store = database.Instrument(store)
	defer store.Close()

	var pub notify.Publisher = notify.Nop{}
	if cfg.RedisURL != "" {
		rp, err := notify.NewRedisPublisher(cfg.RedisURL, cfg.RedisQueue, logger)
		if err != nil {
			logger.Warn("inquiry notifications disabled", slog.String("error", err.Error()))
		} else {
			pub = rp
		}
	}
	defer pub.Close()

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.CORS(), middlewares.RequestLogger(logger), metrics.Middleware())
	routes.Register(r, cfg, store, pub, logger)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server failed", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("server exited")
}
