package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"explorer/internal/auth"
	"explorer/internal/config"
	"explorer/internal/handler"
	"explorer/internal/middleware"
	"explorer/internal/repository"
	"explorer/internal/service/catalog"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	slog.SetDefault(logger)

	err = run(cfg, logger)
	closeLog()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// run owns every resource opened after logging, so deferred cleanup runs on
// both normal shutdown and startup failure.
func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"store", cfg.StoreDriver,
		"table_prefix", cfg.TablePrefix,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.Schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	folderService := catalog.NewFolderService(store.Folders, catalog.Options{
		VerifyParentExists: cfg.VerifyParentExists,
	}, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.HandleFunc("GET /api", handler.APIIndex)
	folderHandler.RegisterRoutes(mux)
	mux.HandleFunc("/", handler.NotFound)

	// Order: CORS → Recovery → Auth → RequestLogger → Routes
	var h http.Handler = mux
	h = middleware.RequestLogger(logger)(h)

	if cfg.AuthEnabled() {
		jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
		if err != nil {
			return fmt.Errorf("create JWT verifier: %w", err)
		}
		defer jwtVerifier.Close()

		h = middleware.Auth(jwtVerifier, logger, "/health", "/api")(h)
	} else {
		logger.Warn("authentication disabled (JWKS_URL not set)")
	}

	h = middleware.Recovery(logger)(h)

	// CORS must wrap auth so OPTIONS pre-flight requests succeed
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var listenErr error
	select {
	case listenErr = <-serverErr:
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	if listenErr != nil {
		return fmt.Errorf("listen: %w", listenErr)
	}

	logger.Info("server stopped")
	return nil
}
