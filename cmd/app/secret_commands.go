package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/burnbox/cmd/app/commands"
	"github.com/allisson/burnbox/internal/client"
	"github.com/allisson/burnbox/internal/config"
	"github.com/allisson/burnbox/internal/password"
)

func getSecretCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "share",
			Usage: "Encrypt a secret locally and upload the sealed envelope",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "server",
					Aliases: []string{"s"},
					Value:   "",
					Usage:   "API base URL (defaults to SHARE_LINK_BASE)",
				},
				&cli.StringFlag{
					Name:  "link-base",
					Value: "",
					Usage: "Base URL for the printed link (defaults to the server URL)",
				},
				&cli.StringFlag{
					Name:  "file",
					Value: "",
					Usage: "Read the secret from this file instead of stdin",
				},
				&cli.BoolFlag{
					Name:    "generate",
					Aliases: []string{"g"},
					Value:   false,
					Usage:   "Synthesize a random password instead of reading input",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "aes-gcm",
					Usage:   "Encryption algorithm to use (aes-gcm or chacha20-poly1305)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			}, passwordPolicyFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()

				serverURL := cmd.String("server")
				if serverURL == "" {
					serverURL = cfg.ShareLinkBase
				}
				linkBase := cmd.String("link-base")
				if linkBase == "" {
					linkBase = serverURL
				}

				apiClient, err := client.New(serverURL)
				if err != nil {
					return err
				}

				ioTuple := commands.DefaultIO()
				if file := cmd.String("file"); file != "" {
					f, err := os.Open(file)
					if err != nil {
						return fmt.Errorf("failed to open input file: %w", err)
					}
					defer func() { _ = f.Close() }()
					ioTuple.Reader = f
				}

				return commands.RunShare(
					ctx,
					apiClient,
					ioTuple,
					cmd.Bool("generate"),
					policyFromFlags(cmd),
					cmd.String("algorithm"),
					linkBase,
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "retrieve",
			Usage:     "Fetch a shared secret and decrypt it locally",
			ArgsUsage: "<link|id>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "server",
					Aliases: []string{"s"},
					Value:   "",
					Usage:   "API base URL (defaults to SHARE_LINK_BASE)",
				},
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Value:   "",
					Usage:   "Decryption key when the argument is a bare identifier",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "aes-gcm",
					Usage:   "Encryption algorithm to use (aes-gcm or chacha20-poly1305)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()

				serverURL := cmd.String("server")
				if serverURL == "" {
					serverURL = cfg.ShareLinkBase
				}

				apiClient, err := client.New(serverURL)
				if err != nil {
					return err
				}

				return commands.RunRetrieve(
					ctx,
					apiClient,
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("key"),
					cmd.String("algorithm"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-password",
			Usage: "Synthesize a random password and assess its strength",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			}, passwordPolicyFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGeneratePassword(
					commands.DefaultIO().Writer,
					policyFromFlags(cmd),
					cmd.String("format"),
				)
			},
		},
	}
}

// passwordPolicyFlags returns the character-class policy flags shared by the
// share and generate-password commands. Classes are opt-out: every class is
// enabled unless its --no-* flag is set.
func passwordPolicyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"l"},
			Value:   16,
			Usage:   "Password length (8 to 128)",
		},
		&cli.BoolFlag{
			Name:  "no-uppercase",
			Value: false,
			Usage: "Exclude uppercase letters",
		},
		&cli.BoolFlag{
			Name:  "no-lowercase",
			Value: false,
			Usage: "Exclude lowercase letters",
		},
		&cli.BoolFlag{
			Name:  "no-numbers",
			Value: false,
			Usage: "Exclude numbers",
		},
		&cli.BoolFlag{
			Name:  "no-symbols",
			Value: false,
			Usage: "Exclude symbols",
		},
	}
}

func policyFromFlags(cmd *cli.Command) password.Policy {
	return password.Policy{
		Length:    int(cmd.Int("length")),
		Uppercase: !cmd.Bool("no-uppercase"),
		Lowercase: !cmd.Bool("no-lowercase"),
		Numbers:   !cmd.Bool("no-numbers"),
		Symbols:   !cmd.Bool("no-symbols"),
	}
}
