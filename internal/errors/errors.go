// Package errors provides sentinel and typed errors for the apiforge CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flags, arguments or config.
	ExitValidationError = 2

	// ExitIncomplete indicates one or more entities were not fully generated.
	ExitIncomplete = 3

	// ExitPermissionDenied indicates a filesystem permission failure.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a required file was not found.
	ExitNotFound = 5
)

// DetailError captures structured error information for the user.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the config field for validation errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidName):
		return ExitValidationError
	case errors.Is(err, ErrIncomplete):
		return ExitIncomplete
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrTemplateNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// InvalidNameError reports a malformed entity name. It aborts generation
// of that entity only.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid entity name %q: %s", e.Name, e.Reason)
}

// Is reports whether target is ErrInvalidName.
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// TemplateNotFoundError reports a template that could not be resolved.
type TemplateNotFoundError struct {
	Template string
	Cause    error
}

func (e *TemplateNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %q not found: %v", e.Template, e.Cause)
	}
	return fmt.Sprintf("template %q not found", e.Template)
}

// Is reports whether target is ErrTemplateNotFound.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Cause
}

// FileAlreadyExistsError reports a refusal to overwrite a generated file.
type FileAlreadyExistsError struct {
	Path string
}

func (e *FileAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// Is reports whether target is ErrFileExists.
func (e *FileAlreadyExistsError) Is(target error) bool {
	return target == ErrFileExists
}

// FilesystemIOError reports a filesystem failure. It is fatal to the
// enclosing pipeline phase.
type FilesystemIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemIOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is reports whether target is ErrFilesystem, or ErrPermission when the
// underlying cause is a permission failure.
func (e *FilesystemIOError) Is(target error) bool {
	switch target {
	case ErrFilesystem:
		return true
	case ErrPermission:
		return errors.Is(e.Err, fs.ErrPermission)
	}
	return false
}

func (e *FilesystemIOError) Unwrap() error {
	return e.Err
}

// NewFilesystemError wraps a raw filesystem error. A nil err returns nil.
func NewFilesystemError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var fsErr *FilesystemIOError
	if errors.As(err, &fsErr) {
		return err
	}
	return &FilesystemIOError{Op: op, Path: path, Err: err}
}
