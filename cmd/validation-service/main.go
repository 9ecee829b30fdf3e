package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veriscan/veriscan-backend/internal/idcheck/detector"
	"github.com/veriscan/veriscan-backend/internal/idcheck/fake"
	"github.com/veriscan/veriscan-backend/internal/idcheck/handler"
	"github.com/veriscan/veriscan-backend/internal/idcheck/service"
	"github.com/veriscan/veriscan-backend/internal/idcheck/validator"
	"github.com/veriscan/veriscan-backend/internal/idcheck/verify"
	"github.com/veriscan/veriscan-backend/pkg/config"
	"github.com/veriscan/veriscan-backend/pkg/httputil"
	"github.com/veriscan/veriscan-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("validation-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("validation-service", cfg.Server.Environment)
	log.Info().Msg("starting Validation Service")

	// Initialize components
	var verifier verify.Client = verify.Disabled{}
	if cfg.Verification.Enabled {
		verifier = verify.NewHTTPClient(cfg.Verification.BaseURL, cfg.Verification.Token, cfg.Verification.Timeout, log.Logger)
		log.Info().Str("base_url", cfg.Verification.BaseURL).Msg("licence registry verification enabled")
	}

	registry := validator.NewRegistry(verifier)
	typeDetector := detector.New(log.WithComponent("detector").Logger)
	fakeDetector := fake.NewDetector()
	validationService := service.New(typeDetector, fakeDetector, registry, log.WithComponent("service").Logger)
	validationHandler := handler.NewValidationHandler(validationService, cfg.Validation.MinimumAge, log)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "validation-service",
		})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Validation routes
	r.Route("/api/v1/documents", func(r chi.Router) {
		r.Post("/validate", validationHandler.Validate)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
