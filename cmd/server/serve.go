package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/letshang/api/internal/config"
	"github.com/letshang/api/internal/database"
	"github.com/letshang/api/internal/repository"
	"github.com/letshang/api/internal/server"
)

// shutdownGrace bounds how long in-flight requests get to finish after a signal.
const shutdownGrace = 10 * time.Second

func newServeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP server",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return serve(ctx, cfg)
		},
	}
}

// serve connects the store (if configured), builds the app, and listens until ctx ends.
func serve(ctx context.Context, cfg *config.Config) error {
	logger := log.Logger

	opts := server.Options{
		Logger:       logger,
		StoreTimeout: cfg.StoreTimeout,
	}

	if cfg.HasStore() {
		// One pool for the whole process; every handler shares it.
		db, err := database.Connect(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn().Err(err).Msg("closing database pool")
			}
		}()

		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
				return err
			}
		}

		opts.Activities = repository.NewActivityRepository(db)
		opts.Users = repository.NewUserRepository(db)
	} else {
		logger.Warn().Msg("DATABASE_URL is not set; serving static endpoints only")
	}

	app := server.New(opts)

	errc := make(chan error, 1)
	go func() {
		errc <- app.Listen(":" + cfg.Port)
	}()

	logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Bool("store", cfg.HasStore()).
		Msg("🚀 Let's hang server running")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
