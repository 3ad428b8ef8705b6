package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/okamoto/staff-records/internal/config"
	"github.com/okamoto/staff-records/internal/console"
	"github.com/okamoto/staff-records/internal/logging"
	"github.com/okamoto/staff-records/internal/menu"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadOptional(os.Getenv(config.EnvConfigPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	c := console.New(os.Stdin, os.Stdout, cfg.Console.FloatPrecision)
	record, err := menu.NewMenu(c, logger).Run()
	switch {
	case errors.Is(err, menu.ErrInvalidChoice), errors.Is(err, menu.ErrInvalidTypistChoice):
		// Invalid selection ends the run normally
	case err != nil:
		logger.Error("session failed", zap.Error(err))
	default:
		logger.Debug("session complete", zap.Stringer("kind", record.Kind()))
	}
}
