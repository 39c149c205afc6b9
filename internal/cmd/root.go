// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/apiforge/cli/internal/cmd/config"
	"github.com/apiforge/cli/internal/cmdtypes"
	"github.com/apiforge/cli/internal/config"
	"github.com/apiforge/cli/internal/output"
	"github.com/apiforge/cli/internal/version"
)

// NewRootCmd creates the root command for the apiforge CLI.
func NewRootCmd() *cobra.Command {
	g := &cmdtypes.GlobalConfig{}
	var timestamps bool

	rootCmd := &cobra.Command{
		Use:   "apiforge",
		Short: "REST API scaffolding generator",
		Long: `apiforge generates the model, controller, route and transformer files of a
REST API resource and publishes the support files every generated API
needs: translations, request logger configuration, base controller and
error handler.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initializeGlobals(cmd, g, timestamps)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigFlag, "config", "", "Path to config file (env: APIFORGE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&g.DirFlag, "dir", "", "Project root (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewBuildCmd(g))
	rootCmd.AddCommand(NewTemplatesCmd(g))
	rootCmd.AddCommand(configcmd.NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and resolves configuration. A
// resolution failure is recorded rather than returned so that commands
// which do not need the project config still run.
func initializeGlobals(cmd *cobra.Command, g *cmdtypes.GlobalConfig, timestamps bool) {
	logCfg := output.LogConfig{Verbose: g.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	}
	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("apiforge started", "version", info.Version, "cue_sdk", info.CUESDKVersion)

	resolved, err := config.Resolve(config.ResolveOptions{
		ProjectDir: g.DirFlag,
		ConfigFlag: g.ConfigFlag,
	})
	if err != nil {
		output.Debug("config resolution failed", "error", err)
		g.ResolveErr = err
		return
	}
	g.Resolved = resolved

	// Flag > config > default(true).
	if logCfg.Timestamps == nil && resolved.Config.Log.Timestamps != nil {
		logCfg.Timestamps = resolved.Config.Log.Timestamps
		output.SetupLogging(logCfg)
	}
}
