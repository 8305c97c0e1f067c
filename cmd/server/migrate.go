package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/letshang/api/internal/config"
	"github.com/letshang/api/internal/database"
)

var errNoDatabase = errors.New("DATABASE_URL must be set to run migrations")

func newMigrateCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(_ context.Context, _ *cli.Command) error {
					if !cfg.HasStore() {
						return errNoDatabase
					}
					if err := database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
						return err
					}
					log.Info().Str("source", cfg.MigrationsPath).Msg("migrations applied")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Usage: "number of migrations to roll back",
						Value: 1,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					if !cfg.HasStore() {
						return errNoDatabase
					}
					steps := int(c.Int("steps"))
					if err := database.RollbackMigrations(cfg.MigrationsPath, cfg.DatabaseURL, steps); err != nil {
						return err
					}
					log.Info().Int("steps", steps).Msg("migrations rolled back")
					return nil
				},
			},
		},
	}
}
