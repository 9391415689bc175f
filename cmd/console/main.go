package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/alclearn/admin-console/internal/config"
	"github.com/alclearn/admin-console/internal/console"
	"github.com/alclearn/admin-console/internal/logger"
	"github.com/alclearn/admin-console/internal/session"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("api", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ALC admin console")

	// ─── Open Session Store ────────────────────────────────────────────
	sessions, err := session.Open(cfg.SessionDBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer sessions.Close()

	// ─── Run Screen Loop ───────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := console.New(cfg, sessions, log)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Console exited with error")
	}
}
