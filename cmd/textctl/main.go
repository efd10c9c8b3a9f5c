package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"cabriolet/internal/adapters/cli"
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

	app := cli.New(i18n.Default(), os.Stdout, logger)
	os.Exit(app.Run(os.Args[1:]))
}
