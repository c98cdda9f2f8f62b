// Package main is the entry point for the user service.
// It wires the store, modules, and HTTP server together.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rai/user-service-go/internal/platform/config"
	"github.com/rai/user-service-go/internal/platform/eventbus"
	"github.com/rai/user-service-go/internal/platform/httpserver"
	"github.com/rai/user-service-go/modules/notifications"
	"github.com/rai/user-service-go/modules/users"
	"github.com/rai/user-service-go/modules/users/domain"
	userspersistence "github.com/rai/user-service-go/modules/users/infrastructure/persistence"
)

func main() {
	// Initialize logger
	slogOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	slogJsonHandler := slog.NewJSONHandler(os.Stdout, slogOptions)
	logger := slog.New(slogJsonHandler)
	slog.SetDefault(logger)

	logger.Info("starting user service")

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize event bus (for inter-module communication)
	eventBus := eventbus.New(logger)

	// Initialize the store - a single in-memory repository owns all
	// user records for the lifetime of the process
	usersRepo := userspersistence.NewInMemoryRepository()

	// Initialize modules
	usersCfg := users.Config{
		Repository:     usersRepo,
		IDGenerator:    domain.NewUUIDGenerator(),
		EventPublisher: eventBus,
	}
	usersModule := users.New(usersCfg)

	notificationsCfg := notifications.Config{
		EventSubscriber: eventBus,
		Logger:          logger,
	}
	_ = notifications.New(notificationsCfg)

	// Build HTTP router
	router := buildRouter(usersModule)

	// Apply middleware
	handler := httpserver.Middleware(router, httpserver.Recovery(logger), httpserver.Logging(logger), httpserver.CORS([]string{"*"}))

	// Create server
	serverCfg := httpserver.DefaultConfig()
	serverCfg.Host = cfg.Server.Host
	serverCfg.Port = cfg.Server.Port
	server := httpserver.New(serverCfg, handler, logger)

	if cfg.Server.ServeDisabled {
		// Runtime-mode switch: wiring is complete, but no listener is
		// started so the service can be driven programmatically.
		logger.Info("automatic listener startup disabled")
		return
	}

	// Graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	logger.Info("server stopped")
}

// buildRouter creates the main HTTP router with all module handlers.
func buildRouter(usersModule users.Module) http.Handler {
	mux := http.NewServeMux()

	// Root greeting
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Hello World!"))
	})

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Each module registers its own routes
	usersModule.RegisterRoutes(mux)

	return mux
}
