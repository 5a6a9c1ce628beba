package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/burnbox/cmd/app/commands"
	"github.com/allisson/burnbox/internal/app"
	"github.com/allisson/burnbox/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.StoreDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "clean-expired",
			Usage: "Delete expired secrets and stale rate-limit counters",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				secretUseCase, err := container.SecretUseCase()
				if err != nil {
					return err
				}

				rateLimiter, err := container.RateLimiter()
				if err != nil {
					return err
				}

				return commands.RunCleanExpired(
					ctx,
					secretUseCase,
					rateLimiter,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}
