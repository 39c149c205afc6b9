package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apiforge/cli/internal/output"
	"github.com/apiforge/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show apiforge version information.

Displays:
  - apiforge version, commit, and build date
  - Go toolchain and CUE SDK versions`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
