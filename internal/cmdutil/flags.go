// Package cmdutil provides shared command utilities. It centralizes
// build flag handling, entity argument parsing and summary output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apiforge/cli/internal/config"
	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/pipeline"
)

// BuildFlags holds the flags of the build command.
type BuildFlags struct {
	Models       []string
	Translations string
}

// AddTo registers the build flags on the given cobra command.
func (f *BuildFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.Models, "models", "m", nil,
		"Model to generate (can be repeated)")
	cmd.Flags().StringVarP(&f.Translations, "translations", "t", "",
		"Publish localized bundles (true/false, yes/no, on/off, 1/0)")
}

// TranslationsFlag parses --translations. set is false when the flag was
// not given on the command line.
func (f *BuildFlags) TranslationsFlag(cmd *cobra.Command) (value, set bool, err error) {
	if !cmd.Flags().Changed("translations") {
		return false, false, nil
	}
	value, err = config.ParseBool(f.Translations)
	if err != nil {
		return false, true, oerrors.NewValidationError(err.Error(), "", "--translations",
			"use true/false, 1/0, yes/no or on/off")
	}
	return value, true, nil
}

// ParseEntities pairs each model name with the positional argument at the
// same index. Each argument is a comma-separated "name[:type]" list.
// Arguments beyond the number of models are rejected.
func ParseEntities(models, args []string) ([]pipeline.EntitySpec, error) {
	if len(args) > len(models) {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("%d attribute lists given for %d models", len(args), len(models)),
			"", "", "pass one -m flag per attribute list")
	}

	specs := make([]pipeline.EntitySpec, 0, len(models))
	for i, name := range models {
		spec := pipeline.EntitySpec{Name: name}
		if i < len(args) {
			spec.Attributes = splitAttributes(args[i])
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func splitAttributes(list string) []string {
	var attrs []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			attrs = append(attrs, item)
		}
	}
	return attrs
}
