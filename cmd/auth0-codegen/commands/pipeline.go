package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcountryman/auth0-management-codegen/config"
	"github.com/mcountryman/auth0-management-codegen/errors"
	"github.com/mcountryman/auth0-management-codegen/fetch"
	"github.com/mcountryman/auth0-management-codegen/rustgen"
	"github.com/mcountryman/auth0-management-codegen/typegen"
)

// loadConfig loads configuration honouring the --config flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}

// applySourceFlags lets --manifest and --output override the config file
func applySourceFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("manifest") {
		cfg.Source.Manifest, _ = cmd.Flags().GetString("manifest")
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Path, _ = cmd.Flags().GetString("output")
	}
}

// generated is the rendered output of one pipeline run
type generated struct {
	Text  string
	Stats typegen.Stats
}

// runPipeline fetches descriptions, builds the tree and renders it
func runPipeline(ctx context.Context, cfg *config.Config) (*generated, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := fetch.New(cfg.Source, cfg.Swagger.VersionConstraint).Fetch(ctx)
	if err != nil {
		return nil, err
	}

	scope, stats, err := typegen.New(typegen.OptionsFromConfig(cfg)).Generate(ctx, res.Manifests)
	if err != nil {
		return nil, err
	}

	source := cfg.Source.BaseURL
	if cfg.Source.Manifest != "" {
		source = filepath.ToSlash(filepath.Base(cfg.Source.Manifest))
	}

	var sb strings.Builder
	for _, line := range typegen.Header(source, res.Listing.APIVersion) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(rustgen.Renderer{Indent: cfg.Render.Indent}.Render(scope))

	return &generated{Text: sb.String(), Stats: stats}, nil
}

func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == config.Stdout {
		_, err := cmd.OutOrStdout().Write([]byte(text))
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
