package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apiforge/cli/internal/cmdtypes"
	"github.com/apiforge/cli/internal/config"
	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default .apiforge.yaml",
		Long: `Create a project configuration file with every default spelled out.

The file is written to <dir>/.apiforge.yaml unless --config or
APIFORGE_CONFIG name another location. The module path is taken from the
project's go.mod when one exists.

Examples:
  # Initialize configuration in the current project
  apiforge config init

  # Overwrite an existing file
  apiforge config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(g *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(g)
	if err != nil {
		return err
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	cfg := config.DefaultConfig()

	paths, err := config.DefaultPaths(g.DirFlag)
	if err != nil {
		return err
	}
	if module, err := config.DetectModule(paths.GoMod); err != nil {
		output.Warn("could not read go.mod", "error", err)
	} else {
		cfg.Module = module
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.NewFilesystemError("mkdir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return oerrors.NewFilesystemError("write", path, err)
	}

	output.Println(output.FormatCheckmark("Config file created: " + output.StyleNoun.Render(path)))
	output.Println("Validate with: apiforge config vet")
	return nil
}
