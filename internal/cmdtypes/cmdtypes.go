// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/apiforge/cli/internal/config"
	oerrors "github.com/apiforge/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	ConfigFlag string // raw --config flag value
	DirFlag    string // raw --dir flag value
	Verbose    bool

	// Resolved is the project configuration. Nil when resolution failed;
	// ResolveErr then holds the reason.
	Resolved   *config.Resolved
	ResolveErr error
}

// RequireConfig returns the resolved configuration, or the error that
// prevented resolving it.
func (g *GlobalConfig) RequireConfig() (*config.Resolved, error) {
	if g.ResolveErr != nil {
		return nil, g.ResolveErr
	}
	if g.Resolved == nil {
		return nil, oerrors.Wrap(oerrors.ErrValidation, "configuration was not resolved")
	}
	return g.Resolved, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitIncomplete       = oerrors.ExitIncomplete
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
