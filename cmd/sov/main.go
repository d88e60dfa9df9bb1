//
//  Copyright © Opsrig Inc. All rights reserved.
//

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/opsrig/scriptout/cmd/sov/subcommands/serve"
	"github.com/opsrig/scriptout/cmd/sov/subcommands/validate"
	"github.com/opsrig/scriptout/cmd/sov/version"
	"github.com/opsrig/scriptout/pkg/scriptoutput"
)

func main() {
	cmd := &cli.Command{
		Name:  "sov",
		Usage: "A CLI application for validating collection script output",
		Commands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Parse script output and report per-line validation issues; exits non-zero when errors are present",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Script output `FILE` to validate, or '-' for stdin. Can be specified multiple times.",
					},
					&cli.StringFlag{
						Name:     "mode",
						Aliases:  []string{"m"},
						Usage:    "Output mode.  Must be one of 'ad', 'collection' or 'batchcollection'",
						Required: true,
						Action: func(ctx context.Context, command *cli.Command, s string) error {
							mode, ok := scriptoutput.ParseMode(s)
							if !ok || mode == scriptoutput.ModeFreeform {
								return fmt.Errorf("unsupported mode: %s", s)
							}
							return nil
						},
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"o"},
						Usage:   "Report format.  Must be one of 'text', 'json' or 'yaml'",
						Value:   "text",
						Action: func(ctx context.Context, command *cli.Command, s string) error {
							if s != "text" && s != "json" && s != "yaml" {
								return fmt.Errorf("unsupported format: %s", s)
							}
							return nil
						},
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Also fail when output contains non-comment lines that do not match the format",
					},
				},
				Action: validate.Execute,
			},
			{
				Name:  "serve",
				Usage: "Creates a validation service",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "The TCP port to serve on.  Defaults to the configured server.port.",
					},
				},
				Action: serve.Execute,
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(ctx context.Context, command *cli.Command) error {
					fmt.Println(version.GetVersion())
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
