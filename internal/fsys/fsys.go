// Package fsys is the filesystem capability used by writers and asset
// installers. All paths are relative to a project root.
package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/apiforge/cli/internal/errors"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Filesystem is the set of mutations the generator performs.
type Filesystem interface {
	// Exists reports whether name exists.
	Exists(name string) (bool, error)

	// Read returns the contents of name.
	Read(name string) ([]byte, error)

	// WriteNew creates name with data. It refuses to touch an existing
	// file and returns a FileAlreadyExistsError instead.
	WriteNew(name string, data []byte) error

	// Append appends data to name, creating it when missing.
	Append(name string, data []byte) error

	// Copy copies srcPath from src to dst, creating parent directories and
	// overwriting dst.
	Copy(src fs.FS, srcPath, dst string) error

	// MakeDirectory creates name and any missing parents. An existing
	// directory is not an error.
	MakeDirectory(name string) error
}

// AferoFS implements Filesystem on top of an afero.Fs rooted at the
// project directory.
type AferoFS struct {
	fs afero.Fs
}

var _ Filesystem = (*AferoFS)(nil)

// New wraps an afero filesystem.
func New(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// NewOS returns a filesystem rooted at dir on the host OS.
func NewOS(dir string) *AferoFS {
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// NewMemory returns an in-memory filesystem.
func NewMemory() *AferoFS {
	return New(afero.NewMemMapFs())
}

// Afero exposes the underlying afero filesystem.
func (a *AferoFS) Afero() afero.Fs {
	return a.fs
}

// Exists reports whether name exists.
func (a *AferoFS) Exists(name string) (bool, error) {
	ok, err := afero.Exists(a.fs, clean(name))
	if err != nil {
		return false, oerrors.NewFilesystemError("stat", name, err)
	}
	return ok, nil
}

// Read returns the contents of name.
func (a *AferoFS) Read(name string) ([]byte, error) {
	data, err := afero.ReadFile(a.fs, clean(name))
	if err != nil {
		return nil, oerrors.NewFilesystemError("read", name, err)
	}
	return data, nil
}

// WriteNew creates name exclusively.
func (a *AferoFS) WriteNew(name string, data []byte) error {
	f, err := a.fs.OpenFile(clean(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &oerrors.FileAlreadyExistsError{Path: name}
		}
		return oerrors.NewFilesystemError("create", name, err)
	}
	return writeAndClose(f, name, data)
}

// Append appends data to name.
func (a *AferoFS) Append(name string, data []byte) error {
	f, err := a.fs.OpenFile(clean(name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return oerrors.NewFilesystemError("append", name, err)
	}
	return writeAndClose(f, name, data)
}

// Copy copies srcPath from src to dst, overwriting dst.
func (a *AferoFS) Copy(src fs.FS, srcPath, dst string) error {
	data, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return oerrors.NewFilesystemError("read", srcPath, err)
	}
	if err := a.MakeDirectory(path.Dir(filepath.ToSlash(dst))); err != nil {
		return err
	}
	f, err := a.fs.OpenFile(clean(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return oerrors.NewFilesystemError("copy", dst, err)
	}
	return writeAndClose(f, dst, data)
}

// MakeDirectory creates name and its parents.
func (a *AferoFS) MakeDirectory(name string) error {
	if name == "" || name == "." {
		return nil
	}
	if err := a.fs.MkdirAll(clean(name), dirPerm); err != nil {
		return oerrors.NewFilesystemError("mkdir", name, err)
	}
	return nil
}

func writeAndClose(f afero.File, name string, data []byte) error {
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil && cerr != nil {
		werr = cerr
	}
	if werr != nil {
		return oerrors.NewFilesystemError("write", name, werr)
	}
	return nil
}

func clean(name string) string {
	return filepath.FromSlash(path.Clean(filepath.ToSlash(name)))
}
