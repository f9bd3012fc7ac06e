package generate

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aimanifest/aimanifest/internal/common"
	"github.com/aimanifest/aimanifest/pkg/generator"
	"github.com/aimanifest/aimanifest/pkg/storage"
)

// InitAction generates a manifest from a template and writes it to
// <output-dir>/.well-known/ai-manifest.json, or to stdout with --stdout.
func InitAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	manifest, err := generator.Generate(c.String("template"), generator.Options{
		SiteName:    c.String("site-name"),
		Description: c.String("description"),
		BaseURL:     common.NormalizeURL(c.String("url")),
	})
	if err != nil {
		return err
	}

	data, err := generator.Marshal(manifest)
	if err != nil {
		return err
	}

	if c.Bool("stdout") {
		os.Stdout.Write(data)
		return nil
	}

	s := &storage.Storage{}
	path, err := s.SaveManifest(c.String("output-dir"), data)
	if err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	logger.Info("Manifest written", "path", path, "template", c.String("template"))
	fmt.Printf("Manifest written to %s\n", path)
	return nil
}
