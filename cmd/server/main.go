package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/babelchat/babelchat-server/internal/app"
	"github.com/babelchat/babelchat-server/internal/config"
	"github.com/babelchat/babelchat-server/internal/log"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")

	var overrides config.Config
	flag.StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	flag.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.StringVar(&overrides.DatabasePath, "db", "", "path to SQLite database file")
	flag.StringVar(&overrides.TranslatorURL, "translator-url", "", "translation backend base URL")
	flag.Parse()

	bootLogger := log.New("info")
	cfg, configFile, err := config.Load(bootLogger, configPath)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	applyOverrides(&cfg, overrides)
	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", configFile).Str("addr", cfg.Addr).Msg("starting babelchat server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build application")
	}

	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}

// applyOverrides copies non-empty flag values over the loaded config.
func applyOverrides(cfg *config.Config, overrides config.Config) {
	if overrides.Addr != "" {
		cfg.Addr = overrides.Addr
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.DatabasePath != "" {
		cfg.DatabasePath = overrides.DatabasePath
	}
	if overrides.TranslatorURL != "" {
		cfg.TranslatorURL = overrides.TranslatorURL
	}
}
