package fsys

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apiforge/cli/internal/errors"
)

func TestWriteNew(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.WriteNew("app/models/order.go", []byte("package models\n")))

	data, err := fsys.Read("app/models/order.go")
	require.NoError(t, err)
	assert.Equal(t, "package models\n", string(data))
}

func TestWriteNew_RefusesExisting(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteNew("app/models/order.go", []byte("original")))

	err := fsys.WriteNew("app/models/order.go", []byte("replacement"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrFileExists))

	var exists *oerrors.FileAlreadyExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "app/models/order.go", exists.Path)

	data, err := fsys.Read("app/models/order.go")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data), "existing file must be untouched")
}

func TestAppend_CreatesAndAppends(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.Append("routes/api.go", []byte("a\n")))
	require.NoError(t, fsys.Append("routes/api.go", []byte("b\n")))
	require.NoError(t, fsys.Append("routes/api.go", []byte("b\n")))

	data, err := fsys.Read("routes/api.go")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nb\n", string(data))
}

func TestCopy_OverwritesAndCreatesParents(t *testing.T) {
	fsys := NewMemory()
	src := fstest.MapFS{
		"bundle/requests_logger.yaml": {Data: []byte("enabled: true\n")},
	}

	require.NoError(t, fsys.WriteNew("config/requests_logger.yaml", []byte("enabled: false\n")))
	require.NoError(t, fsys.Copy(src, "bundle/requests_logger.yaml", "config/requests_logger.yaml"))

	data, err := fsys.Read("config/requests_logger.yaml")
	require.NoError(t, err)
	assert.Equal(t, "enabled: true\n", string(data))
}

func TestCopy_MissingSource(t *testing.T) {
	fsys := NewMemory()

	err := fsys.Copy(fstest.MapFS{}, "missing.yaml", "config/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrFilesystem))
}

func TestMakeDirectory_Idempotent(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.MakeDirectory("app/http/controllers/order"))
	require.NoError(t, fsys.MakeDirectory("app/http/controllers/order"))
	require.NoError(t, fsys.MakeDirectory(""))

	ok, err := fsys.Exists("app/http/controllers/order")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExists(t *testing.T) {
	fsys := NewMemory()

	ok, err := fsys.Exists("routes/api.go")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fsys.Append("routes/api.go", nil))
	ok, err = fsys.Exists("routes/api.go")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReadOnly_PermissionErrors(t *testing.T) {
	fsys := New(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	tests := []struct {
		name string
		op   func() error
	}{
		{"write new", func() error { return fsys.WriteNew("a.go", []byte("x")) }},
		{"append", func() error { return fsys.Append("routes/api.go", []byte("x")) }},
		{"mkdir", func() error { return fsys.MakeDirectory("app/models") }},
		{"copy", func() error {
			return fsys.Copy(fstest.MapFS{"a": {Data: []byte("x")}}, "a", "config/a")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrFilesystem), "got %v", err)
			assert.True(t, errors.Is(err, oerrors.ErrPermission), "got %v", err)
			assert.False(t, errors.Is(err, oerrors.ErrFileExists))
		})
	}
}

func TestNewOS_RootsPaths(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOS(dir)

	require.NoError(t, fsys.MakeDirectory("app/models"))
	require.NoError(t, fsys.WriteNew("app/models/order.go", []byte("package models\n")))

	ok, err := afero.Exists(afero.NewOsFs(), dir+"/app/models/order.go")
	require.NoError(t, err)
	assert.True(t, ok)
}
