package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alclearn/admin-console/internal/config"
	"github.com/alclearn/admin-console/internal/logger"
	"github.com/alclearn/admin-console/internal/stub"
	"github.com/alclearn/admin-console/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.StubPort).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ALC stub API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Setup Router ──────────────────────────────────────────────────
	state := stub.NewState(cfg.StubJWTSecret, cfg.StubTokenTTL)
	r := state.Router(cfg.AllowedOrigins, log)

	srv := &http.Server{
		Addr:    ":" + cfg.StubPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		log.Info().
			Str("admin", stub.AdminEmail).
			Msg("Seeded admin account ready")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}

	log.Info().Msg("Server stopped")
}
