package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apiforge/cli/internal/assets"
	"github.com/apiforge/cli/internal/cmdtypes"
	"github.com/apiforge/cli/internal/cmdutil"
	"github.com/apiforge/cli/internal/config"
	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/fsys"
	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/output"
	"github.com/apiforge/cli/internal/pipeline"
	"github.com/apiforge/cli/internal/templates"
	"github.com/apiforge/cli/internal/writer"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.BuildFlags

	c := &cobra.Command{
		Use:   "build [ATTRIBUTES]...",
		Short: "Generate API scaffolding for one or more models",
		Long: `Generate the definition, controller, route and transformer of every model
given with -m, then publish the support files of the API.

The i-th positional argument is the attribute list of the i-th model, as
comma-separated name[:type] items. Types are string, text, integer, bigint,
float, decimal, boolean, date, datetime, timestamp, json and uuid.

Existing definition, controller and transformer files are never
overwritten. Route declarations are appended on every run.

Examples:
  # Scaffold a single model
  apiforge build -m User "name,email,age:integer"

  # Scaffold two models, skipping the translation bundles
  apiforge build -m Order -m order_line "total:float" "quantity:integer" -t=false`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, args, g, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runBuild(c *cobra.Command, args []string, g *cmdtypes.GlobalConfig, flags *cmdutil.BuildFlags) error {
	resolved, err := g.RequireConfig()
	if err != nil {
		return reportError("invalid configuration", err)
	}

	entities, err := cmdutil.ParseEntities(flags.Models, args)
	if err != nil {
		return reportError("invalid arguments", err)
	}

	trValue, trSet, err := flags.TranslationsFlag(c)
	if err != nil {
		return reportError("invalid arguments", err)
	}
	translations, err := config.ResolveTranslations(config.ResolveTranslationsOptions{
		FlagSet:     trSet,
		FlagValue:   trValue,
		ConfigValue: resolved.Config.Translations,
	})
	if err != nil {
		return reportError("invalid configuration", err)
	}
	config.LogResolvedValues([]config.ResolvedValue{translations})

	orch, err := newOrchestrator(resolved)
	if err != nil {
		return reportError("initializing build", err)
	}

	output.Println(output.StyleAction.Render("Building API..."))

	summary, runErr := orch.Run(c.Context(), pipeline.Options{
		Entities:     entities,
		Translations: translations.Value.(bool),
	})
	if summary != nil {
		cmdutil.WriteSummary(summary)
		if g.Verbose {
			cmdutil.WriteFileTree(filepath.Base(resolved.Paths.ProjectDir), summary)
		}
	}
	if runErr != nil {
		return reportError("build halted", runErr)
	}
	if summary.Incomplete() {
		return &oerrors.ExitError{Err: oerrors.ErrIncomplete, Code: cmdtypes.ExitIncomplete, Printed: true}
	}
	return nil
}

// newOrchestrator wires the pipeline for the resolved project.
func newOrchestrator(resolved *config.Resolved) (*pipeline.Orchestrator, error) {
	target := fsys.NewOS(resolved.Paths.ProjectDir)

	env := writer.Env{
		FS:        target,
		Templates: templates.NewEmbeddedStore(overrideDir(resolved)),
		Module:    resolved.Module,
		Layout:    resolved.Config.WriterLayout(),
	}

	return pipeline.New(pipeline.Config{
		Deriver:   naming.NewDeriver(resolved.Config.IrregularPlurals),
		Writers:   writer.All(env),
		Installer: assets.NewInstaller(target, resolved.Config.AssetDestinations()),
		Sink:      output.NewProgressSink(),
	})
}

// overrideDir returns the template override directory, relative paths
// being taken from the project root.
func overrideDir(resolved *config.Resolved) string {
	dir := resolved.Config.TemplatesDir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(resolved.Paths.ProjectDir, dir)
}
