package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"cabriolet/internal/adapters/web"
	"cabriolet/internal/config"
	"cabriolet/internal/infrastructure/i18n"
	"cabriolet/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	catalog := i18n.Default()
	handler, err := web.NewHandler(catalog, cfg.Variant, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("variant", cfg.Variant).Msg("init text API")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("game_dir", cfg.GameDir).
		Strs("variants", catalog.Variants()).
		Int("keys", catalog.Canonical().Len()).
		Msg("starting Cabriolet server")

	srv := web.NewServer(cfg.Addr, web.NewRouter(handler, cfg.GameDir, logger), cfg.ShutdownTimeout, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
