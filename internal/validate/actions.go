package validate

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aimanifest/aimanifest/internal/common"
	"github.com/aimanifest/aimanifest/models"
	"github.com/aimanifest/aimanifest/pkg/renderer"
	"github.com/aimanifest/aimanifest/pkg/storage"
	"github.com/aimanifest/aimanifest/pkg/validator"
)

// Action validates a manifest from a local file or a live site and renders
// the result. Exit code 1 signals an invalid manifest.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	timeout, err := parseTimeout(c.String("timeout"))
	if err != nil {
		return err
	}

	v := validator.NewWithOptions(validator.Options{
		SchemaURL: c.String("schema"),
		Timeout:   timeout,
	})

	var result *models.ValidationResult
	switch {
	case c.String("url") != "":
		url := c.String("url")
		logger.Info("Validating live manifest", "url", url)
		result = v.ValidateURL(url)
	case c.Args().Len() > 0:
		path := c.Args().First()
		logger.Info("Validating manifest file", "path", path)
		s := &storage.Storage{}
		data, err := s.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}
		result = v.Validate(string(data), "")
	default:
		return fmt.Errorf("provide a manifest file argument or --url")
	}

	out, err := renderer.Render(c.String("format"), result)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout duration: %w", err)
	}
	return timeout, nil
}
