package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apiforge/cli/internal/cmdtypes"
	"github.com/apiforge/cli/internal/config"
	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the project configuration",
		Long: `Validate .apiforge.yaml against the built-in schema and show the
values a build would use.

The config path is resolved using precedence:
  --config flag > APIFORGE_CONFIG env > <dir>/.apiforge.yaml

Examples:
  # Validate the current project's configuration
  apiforge config vet

  # Validate another file
  apiforge config vet --config ./ci/apiforge.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(g)
		},
	}
}

func runVet(g *cmdtypes.GlobalConfig) error {
	path, err := configPath(g)
	if err != nil {
		return err
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewNotFoundError("configuration file not found", path,
			"Run 'apiforge config init' to create default configuration")
	}

	resolved, err := config.Resolve(config.ResolveOptions{
		ProjectDir: g.DirFlag,
		ConfigFlag: g.ConfigFlag,
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + output.StyleNoun.Render(path)))

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range resolved.Values {
		tbl.Row(v.Key, fmt.Sprint(v.Value), string(v.Source))
	}
	output.Println(tbl.String())
	return nil
}
