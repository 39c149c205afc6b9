package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	oerrors "github.com/apiforge/cli/internal/errors"
)

//go:embed schema.cue
var schemaCUE []byte

// Validator checks config files against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema.LookupPath(cue.ParsePath("#Config")),
	}, nil
}

// ValidateBytes validates YAML config data read from filename. Failures
// are validation DetailErrors carrying the CUE diagnostics.
func (v *Validator) ValidateBytes(filename string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("parsing YAML: %v", err), filename, "",
			"check the file is valid YAML")
	}

	value := v.ctx.BuildFile(file)
	if value.Err() != nil {
		return oerrors.NewValidationError(value.Err().Error(), filename, "", "")
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  formatCUEErrors(err),
			Location: filename,
			Field:    firstPath(err),
			Hint:     "run 'apiforge config init --force' to regenerate a valid file",
			Cause:    oerrors.ErrValidation,
		}
	}
	return nil
}

func formatCUEErrors(err error) string {
	var lines []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := strings.Join(e.Path(), "."); path != "" {
			msg = path + ": " + msg
		}
		lines = append(lines, msg)
	}
	return strings.Join(lines, "\n  ")
}

func firstPath(err error) string {
	for _, e := range cueerrors.Errors(err) {
		if p := e.Path(); len(p) > 0 {
			return strings.Join(p, ".")
		}
	}
	return ""
}
