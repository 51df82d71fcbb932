package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awaissaddiqui/Flask-Server/internal/adapter/http/router"
	"github.com/awaissaddiqui/Flask-Server/internal/adapter/model"
	"github.com/awaissaddiqui/Flask-Server/internal/infrastructure/config"
	"github.com/awaissaddiqui/Flask-Server/internal/infrastructure/logger"
	"github.com/awaissaddiqui/Flask-Server/internal/infrastructure/metrics"
	"github.com/awaissaddiqui/Flask-Server/internal/infrastructure/netaddr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load the model once; it is shared read-only by every request
	classifier, err := model.Load(cfg.Model.Path)
	if err != nil {
		log.Error("Failed to load model", zap.String("path", cfg.Model.Path), zap.Error(err))
		return fmt.Errorf("failed to load model: %w", err)
	}
	log.Info("Model loaded",
		zap.String("path", classifier.Path()),
		zap.Int("classes", classifier.Classes()),
	)

	// Resolve the bind host
	host, err := netaddr.BindHost(context.Background(), cfg.Server.Host, cfg.Server.ProbeAddr)
	if err != nil {
		log.Warn("Failed to discover local IP", zap.String("probe", cfg.Server.ProbeAddr), zap.Error(err))
	} else {
		log.Info("Resolved bind host", zap.String("host", host))
	}

	// Setup router
	r := router.Setup(classifier, metrics.New(), log)

	// Bind before serving so an unusable host fails start-up
	addr := net.JoinHostPort(host, strconv.Itoa(cfg.Server.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("Failed to bind", zap.String("address", addr), zap.Error(err))
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", listener.Addr().String()))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err, ok := <-serveErr:
		if ok {
			log.Error("Server failed", zap.Error(err))
			return fmt.Errorf("server failed: %w", err)
		}
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
