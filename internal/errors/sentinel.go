package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (flags, arguments, config).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file or configuration was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidName indicates a malformed entity name.
	ErrInvalidName = errors.New("invalid entity name")

	// ErrTemplateNotFound indicates a template could not be resolved.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrFileExists indicates a write-new target already exists.
	ErrFileExists = errors.New("file already exists")

	// ErrFilesystem indicates a filesystem operation failed.
	ErrFilesystem = errors.New("filesystem error")

	// ErrIncomplete indicates generation finished with failed artifacts.
	ErrIncomplete = errors.New("generation incomplete")
)
