package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomasB/geolookup/internal/config"
	"github.com/TomasB/geolookup/internal/data"
	grpchandler "github.com/TomasB/geolookup/internal/handler/grpc"
	"github.com/TomasB/geolookup/internal/handler/health"
	"github.com/TomasB/geolookup/internal/handler/lookup"
	"github.com/TomasB/geolookup/internal/session"
	"github.com/TomasB/geolookup/internal/version"
	"github.com/TomasB/geolookup/internal/watch"
	geolookupv1 "github.com/TomasB/geolookup/pkg/geolookup/v1"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("service starting", "log_level", cfg.LogLevel.String(), "version", version.String())

	// Set Gin mode based on log level
	if cfg.LogLevel == slog.LevelDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(ginLogger(logger))
	router.Use(gin.Recovery())

	// The database is opened on first use; a missing file is reported by
	// /ready and by every lookup until a refresh finds it.
	locator := data.NewLocator(cfg.InstallRoot)
	sess := session.New(locator)
	defer sess.Close()

	slog.Info("database search paths", "candidates", locator.Candidates())

	health.NewHandler(sess).Register(router)
	lookup.NewHandler(sess).Register(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("service started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	var grpcSrv *grpc.Server
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			slog.Error("failed to listen for gRPC", "port", cfg.GRPCPort, "error", err)
			os.Exit(1)
		}
		grpcSrv = grpc.NewServer()
		geolookupv1.RegisterServer(grpcSrv, grpchandler.NewHandler(sess))

		go func() {
			slog.Info("gRPC service started", "port", cfg.GRPCPort)
			if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				slog.Error("gRPC server failed", "error", err)
				os.Exit(1)
			}
		}()
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if cfg.WatchDatabase {
		w, err := watch.New(sess, watch.DefaultDebounce, locator.Candidates()...)
		if err != nil {
			slog.Error("failed to start database watcher", "error", err)
			os.Exit(1)
		}
		go w.Run(watchCtx)
		slog.Info("watching database files")
	}

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("service shutting down")
	stopWatch()

	// Graceful shutdown with 30s timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("service stopped")
}

// ginLogger creates a Gin middleware that logs using slog
func ginLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		// Log request
		duration := time.Since(start)
		statusCode := c.Writer.Status()

		attrs := []any{
			"method", method,
			"path", path,
			"status", statusCode,
			"duration_ms", duration.Milliseconds(),
		}

		if len(c.Errors) > 0 {
			logger.Error("request completed with errors", append(attrs, "errors", c.Errors.String())...)
		} else if statusCode >= 500 {
			logger.Error("request completed", attrs...)
		} else if statusCode >= 400 {
			logger.Warn("request completed", attrs...)
		} else {
			logger.Info("request completed", attrs...)
		}
	}
}
