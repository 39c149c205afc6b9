// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/apiforge/cli/internal/cmdtypes"
	"github.com/apiforge/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Manage the project's .apiforge.yaml file.`,
	}

	c.AddCommand(NewConfigInitCmd(g))
	c.AddCommand(NewConfigVetCmd(g))

	return c
}

// configPath resolves the config file location from the global flags
// without loading it.
func configPath(g *cmdtypes.GlobalConfig) (string, error) {
	resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue:  g.ConfigFlag,
		ProjectDir: g.DirFlag,
	})
	if err != nil {
		return "", err
	}
	return config.ExpandPath(resolved.Value.(string))
}
