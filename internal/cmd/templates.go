package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/apiforge/cli/internal/cmdtypes"
	"github.com/apiforge/cli/internal/output"
	"github.com/apiforge/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List artifact templates and their tokens",
		Long: `List every artifact template, where it is loaded from and the
{{TOKEN}} placeholders it uses.

A file named <id>.stub in the configured templates_dir replaces the
embedded template of the same id.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTemplates(g)
		},
	}
}

func runTemplates(g *cmdtypes.GlobalConfig) error {
	resolved, err := g.RequireConfig()
	if err != nil {
		return reportError("invalid configuration", err)
	}

	store := templates.NewEmbeddedStore(overrideDir(resolved))
	tbl, err := templateTable(store)
	if err != nil {
		return reportError("loading templates", err)
	}
	output.Println(tbl.String())
	return nil
}

func templateTable(store *templates.Store) (*output.Table, error) {
	tbl := output.NewTable("TEMPLATE", "SOURCE", "DESCRIPTION", "TOKENS")
	for _, id := range templates.IDs() {
		raw, err := store.Load(id)
		if err != nil {
			return nil, err
		}
		src, err := store.SourceOf(id)
		if err != nil {
			return nil, err
		}
		tbl.Row(string(id), string(src), id.Description(), strings.Join(templates.Tokens(raw), ", "))
	}
	return tbl, nil
}
