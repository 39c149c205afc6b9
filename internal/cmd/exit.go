package cmd

import (
	"context"
	"errors"

	"github.com/apiforge/cli/internal/cmdtypes"
	"github.com/apiforge/cli/internal/cmdutil"
	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/output"
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case cmdtypes.ExitSuccess:
		return "Success"
	case cmdtypes.ExitGeneralError:
		return "General Error"
	case cmdtypes.ExitValidationError:
		return "Validation Error"
	case cmdtypes.ExitIncomplete:
		return "Generation Incomplete"
	case cmdtypes.ExitPermissionDenied:
		return "Permission Denied"
	case cmdtypes.ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// reportError prints err and marks it printed so Execute does not print
// it again.
func reportError(msg string, err error) error {
	cmdutil.PrintError(msg, err)
	return &cmdtypes.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: true}
}

// Execute runs the root command with args and returns the process exit
// code.
func Execute(ctx context.Context, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	code := oerrors.ExitCodeFromError(err)
	if err != nil {
		var exitErr *cmdtypes.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			cmdutil.PrintError("command failed", err)
		}
	}
	output.Debug("exiting", "code", code, "status", ExitCodeName(code))
	return code
}
