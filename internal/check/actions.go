package check

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aimanifest/aimanifest/internal/common"
	"github.com/aimanifest/aimanifest/models"
	"github.com/aimanifest/aimanifest/pkg/discovery"
	"github.com/aimanifest/aimanifest/pkg/renderer"
)

// Action runs the discovery pipeline for one site. Exit code 1 signals no
// manifest was found.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	if c.Args().Len() == 0 {
		return fmt.Errorf("no website URL provided")
	}
	url := c.Args().First()

	checker, err := newChecker(c)
	if err != nil {
		return err
	}

	logger.Info("Checking website for manifest", "url", url)
	result := checker.CheckWebsite(url)

	out, err := renderer.Render(c.String("format"), result)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)

	if !result.Found {
		return cli.Exit("", 1)
	}
	return nil
}

// BatchAction checks many sites concurrently in fixed-size groups.
func BatchAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	urls, concurrency, err := batchInputs(c)
	if err != nil {
		return err
	}

	checker, err := newChecker(c)
	if err != nil {
		return err
	}

	logger.Info("Starting batch check", "url_count", len(urls), "concurrency", concurrency)
	results := checker.BatchCheck(urls, discovery.BatchOptions{
		Concurrency: concurrency,
		OnProgress: func(completed, total int) {
			logger.Info("Progress", "completed", completed, "total", total)
		},
	})

	out, err := renderer.Render(c.String("format"), results)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}

// AnalyzeAction discovers a site's manifest and prints the summary
// projection.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	if c.Args().Len() == 0 {
		return fmt.Errorf("no website URL provided")
	}
	url := c.Args().First()

	checker, err := newChecker(c)
	if err != nil {
		return err
	}

	logger.Info("Analyzing manifest", "url", url)
	summary, err := checker.AnalyzeManifest(url)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := renderer.Render(c.String("format"), summary)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}

func newChecker(c *cli.Context) (*discovery.Checker, error) {
	var timeout time.Duration
	if raw := c.String("timeout"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout duration: %w", err)
		}
		timeout = parsed
	}
	return discovery.NewCheckerWithOptions(discovery.Options{Timeout: timeout}), nil
}

// batchInputs merges the --urls flag and an optional --config YAML file.
// Flags win over config values.
func batchInputs(c *cli.Context) ([]string, int, error) {
	var urls []string
	concurrency := c.Int("concurrency")

	if configPath := c.String("config"); configPath != "" {
		config, err := models.LoadBatchConfig(configPath)
		if err != nil {
			return nil, 0, err
		}
		urls = config.URLs
		if concurrency == 0 {
			concurrency = config.Concurrency
		}
	}

	if raw := c.String("urls"); raw != "" {
		urls = urls[:0]
		for _, url := range strings.Split(raw, ",") {
			if url = strings.TrimSpace(url); url != "" {
				urls = append(urls, url)
			}
		}
	}

	if len(urls) == 0 {
		return nil, 0, fmt.Errorf("no URLs provided via --urls or --config")
	}
	return urls, concurrency, nil
}
