package templates

import (
	"embed"
	"errors"
	"io/fs"
	"os"

	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/output"
)

//go:embed stubs/*.stub
var stubsFS embed.FS

// Source tells where a template was resolved from.
type Source string

const (
	// SourceEmbedded means the stub bundled with the binary.
	SourceEmbedded Source = "embedded"

	// SourceOverride means a file from the configured override directory.
	SourceOverride Source = "override"
)

// Store resolves template ids to raw template text.
type Store struct {
	base     fs.FS
	override fs.FS
}

// NewStore creates a store backed by fsys. Stub files are expected at
// the root of fsys as "<id>.stub".
func NewStore(fsys fs.FS) *Store {
	return &Store{base: fsys}
}

// NewEmbeddedStore creates a store backed by the stubs bundled with the
// binary. A non-empty overrideDir is consulted first.
func NewEmbeddedStore(overrideDir string) *Store {
	sub, err := fs.Sub(stubsFS, "stubs")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	s := NewStore(sub)
	if overrideDir != "" {
		s.override = os.DirFS(overrideDir)
	}
	return s
}

// WithOverride returns a copy of the store that consults fsys before the
// base source.
func (s *Store) WithOverride(fsys fs.FS) *Store {
	return &Store{base: s.base, override: fsys}
}

// Load returns the raw text of the template. A missing template yields a
// TemplateNotFoundError.
func (s *Store) Load(id ID) (string, error) {
	text, _, err := s.resolve(id)
	return text, err
}

// SourceOf reports where the template would be loaded from.
func (s *Store) SourceOf(id ID) (Source, error) {
	_, src, err := s.resolve(id)
	return src, err
}

func (s *Store) resolve(id ID) (string, Source, error) {
	if !id.IsValid() {
		return "", "", &oerrors.TemplateNotFoundError{Template: string(id)}
	}

	if s.override != nil {
		data, err := fs.ReadFile(s.override, id.fileName())
		switch {
		case err == nil:
			output.Debug("using template override", "template", id)
			return string(data), SourceOverride, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", "", &oerrors.TemplateNotFoundError{Template: string(id), Cause: err}
		}
	}

	if s.base == nil {
		return "", "", &oerrors.TemplateNotFoundError{Template: string(id)}
	}
	data, err := fs.ReadFile(s.base, id.fileName())
	if err != nil {
		return "", "", &oerrors.TemplateNotFoundError{Template: string(id), Cause: err}
	}
	return string(data), SourceEmbedded, nil
}
