// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aruales/apuntes/internal/api"
	"github.com/aruales/apuntes/internal/authservice"
	"github.com/aruales/apuntes/internal/commentservice"
	"github.com/aruales/apuntes/internal/mcpserver"
	"github.com/aruales/apuntes/internal/noteservice"
	"github.com/aruales/apuntes/internal/sse"
	"github.com/aruales/apuntes/internal/store"
)

// Run starts the HTTP API with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("seed_path", cfg.Seed.Path),
		slog.Bool("seed_watch", cfg.Seed.Watch),
		slog.String("log_level", cfg.App.LogLevel.String()))

	st, err := buildStore(cfg)
	if err != nil {
		return err
	}

	// SSE broker for mutation events.
	broker := sse.NewBroker()
	defer broker.Close()

	// Services and router.
	notes := noteservice.NewService(st, broker)
	comments := commentservice.NewService(st, broker)
	auth := authservice.NewService(st)
	h := api.NewHandler(notes, comments, auth)
	router := api.NewRouter(h, cfg.CORS.Origins, broker)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Dev-mode seed watcher.
	if cfg.Seed.Watch {
		g.Go(func() error {
			return store.Watch(gCtx, st, cfg.Seed.Path, logger, func(path string) {
				broker.PublishEntityEvent("store.reloaded", map[string]string{"seed": path})
			})
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the MCP stdio server over the same store and services.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	st, err := buildStore(app.config)
	if err != nil {
		return err
	}

	notes := noteservice.NewService(st, nil)
	comments := commentservice.NewService(st, nil)
	return mcpserver.New(notes, comments).ServeStdio()
}

// buildStore creates the entity store from the configured seed file, or the
// built-in demo dataset when no file is given.
func buildStore(cfg *Config) (*store.Store, error) {
	if cfg.Seed.Path == "" {
		return store.New(store.DefaultSeed()), nil
	}
	seed, err := store.LoadSeedFile(cfg.Seed.Path)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return store.New(seed), nil
}
