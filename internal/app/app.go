package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/babelchat/babelchat-server/internal/auth"
	"github.com/babelchat/babelchat-server/internal/config"
	"github.com/babelchat/babelchat-server/internal/core"
	"github.com/babelchat/babelchat-server/internal/lang"
	"github.com/babelchat/babelchat-server/internal/service/moderation"
	"github.com/babelchat/babelchat-server/internal/store"
	"github.com/babelchat/babelchat-server/internal/store/sqlite"
	"github.com/babelchat/babelchat-server/internal/translate"
	transporthttp "github.com/babelchat/babelchat-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	st, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	logger.Info().Str("db_path", cfg.DatabasePath).Msg("database initialized")

	jwtConfig := &auth.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      30 * 24 * time.Hour,
	}
	authService := auth.NewService(st, jwtConfig)

	backend := translate.NewLibreTranslate(cfg.TranslatorURL, cfg.TranslatorAPIKey)
	translator := translate.NewAdapter(backend, logger)
	normalizer := lang.New(translator, logger)
	modService := moderation.NewService(st, logger)

	hub := core.NewHub(translator, normalizer, modService, modService, logger, core.Options{
		MaxLanguages:     cfg.MaxLanguages,
		MaxMessageLength: cfg.MaxMessageLength,
	})

	server := transporthttp.NewServer(transporthttp.Deps{
		Hub:        hub,
		Auth:       authService,
		Users:      st,
		Moderation: modService,
		Translator: translator,
		Normalizer: normalizer,
	}, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes database and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
