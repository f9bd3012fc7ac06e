package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aimanifest/aimanifest/internal/check"
	"github.com/aimanifest/aimanifest/internal/generate"
	"github.com/aimanifest/aimanifest/internal/validate"
)

func main() {
	app := &cli.App{
		Name:  "aimanifest",
		Usage: "validate, generate, and discover ai-manifest.json policy documents",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "validate a manifest file or a live site's well-known manifest",
				ArgsUsage: "[manifest file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "validate the manifest published by this site instead of a local file",
					},
					&cli.StringFlag{
						Name:  "schema",
						Usage: "override the schema endpoint",
					},
					&cli.StringFlag{
						Name:  "timeout",
						Usage: "fetch timeout, e.g. 5s",
					},
					formatFlag(),
					quietFlag(),
				},
				Action: validate.Action,
			},
			{
				Name:      "check",
				Usage:     "discover a site's manifest via well-known path, HTML link, or Link header",
				ArgsUsage: "<website>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "timeout",
						Usage: "per-fetch timeout, e.g. 5s",
					},
					formatFlag(),
					quietFlag(),
				},
				Action: check.Action,
			},
			{
				Name:  "batch",
				Usage: "check many sites concurrently",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated list of websites",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file with urls and concurrency",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "number of sites checked in parallel per group",
					},
					&cli.StringFlag{
						Name:  "timeout",
						Usage: "per-fetch timeout, e.g. 5s",
					},
					formatFlag(),
					quietFlag(),
				},
				Action: check.BatchAction,
			},
			{
				Name:      "analyze",
				Usage:     "discover a site's manifest and print a policy summary",
				ArgsUsage: "<website>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "timeout",
						Usage: "per-fetch timeout, e.g. 5s",
					},
					formatFlag(),
					quietFlag(),
				},
				Action: check.AnalyzeAction,
			},
			{
				Name:  "init",
				Usage: "generate a starter manifest from a template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "template",
						Value: "blog",
						Usage: "template to start from: blog, business, or premium",
					},
					&cli.StringFlag{
						Name:  "site-name",
						Usage: "site name for the generated manifest",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "site description",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "site base URL used to fill feed and booking links",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Value: ".",
						Usage: "directory the .well-known folder is created under",
					},
					&cli.BoolFlag{
						Name:  "stdout",
						Usage: "print the manifest instead of writing it",
					},
					quietFlag(),
				},
				Action: generate.InitAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "output format: json, yaml, or text",
	}
}

func quietFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "quiet",
		Usage: "only log errors",
	}
}
