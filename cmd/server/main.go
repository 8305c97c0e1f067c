// cmd/server/main.go
// This is the entry point for the Let's hang API server.
// The cmd/ folder holds executable binaries; internal/ holds the packages they are built from.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/letshang/api/internal/config"
	"github.com/letshang/api/internal/logging"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, short)
}

func main() {
	// Environment (and .env) first, so flags can fall back to those values.
	cfg := config.Load()

	app := &cli.Command{
		Name:      "letshang",
		Usage:     "Let's hang HTTP API",
		UsageText: "letshang [global options] [command]",
		Description: `Serves the Let's hang JSON API.

Run 'letshang' or 'letshang serve' to start the HTTP server.
Run 'letshang migrate up' to apply database migrations without serving.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       cfg.LogLevel,
				Destination: &cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:        "port",
				Aliases:     []string{"p"},
				Usage:       "HTTP port to listen on",
				Value:       cfg.Port,
				Destination: &cfg.Port,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			return ctx, logging.Setup(cfg.LogLevel, cfg.IsDevelopment())
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return serve(ctx, cfg)
		},
		Commands: []*cli.Command{
			newServeCmd(cfg),
			newMigrateCmd(cfg),
		},
	}

	// SIGINT / SIGTERM cancel ctx, which lets the server drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("exiting")
		stop()
		os.Exit(1)
	}
}
