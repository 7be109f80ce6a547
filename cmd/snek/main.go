// Package main is the entry point for Snek.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/snek/internal/game"
	"github.com/samdwyer/snek/internal/telemetry"
	"github.com/samdwyer/snek/internal/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Not fatal: env vars might be set directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	gameLog, closeLog, err := gameLogger(os.Getenv("SNEK_LOG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv())
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
		log.Info().Msg("telemetry disabled")
	case err != nil:
		// Game still works without observability
		log.Warn().Err(err).Msg("telemetry setup failed")
	default:
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("error shutting down telemetry")
			}
		}()
	}

	g, err := game.New(game.Config{},
		game.WithLogger(gameLog),
		game.WithTracer(telemetry.Tracer("game")),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize game")
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize terminal")
	}

	runErr := g.Run(ctx, ui.NewRenderer(screen))
	screen.Close()
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("game error")
	}

	if s := g.State(); s != nil {
		log.Info().Int("score", s.Score).Str("mode", s.Mode.String()).Msg("bye")
	}
}

// gameLogger returns the logger used while tcell owns the terminal.
// Without a log file, in-game logging is discarded.
func gameLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logger := zerolog.New(f).With().Timestamp().Str("component", "game").Logger()
	return logger, func() { _ = f.Close() }, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
