package assets

import (
	"errors"
	"io/fs"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/fsys"
)

func TestInstallTranslations(t *testing.T) {
	mem := fsys.NewMemory()
	inst := NewInstaller(mem, DefaultDestinations())

	written, err := inst.InstallTranslations()
	require.NoError(t, err)

	sort.Strings(written)
	assert.Equal(t, []string{
		"resources/lang/en/messages.yaml",
		"resources/lang/en/validation.yaml",
		"resources/lang/es/messages.yaml",
		"resources/lang/es/validation.yaml",
	}, written)
}

func TestLocalizedBundles_HaveSameKeys(t *testing.T) {
	for _, file := range []string{"messages.yaml", "validation.yaml"} {
		en := loadKeys(t, "lang/en/"+file)
		es := loadKeys(t, "lang/es/"+file)
		assert.ElementsMatch(t, en, es, file)
	}
}

func loadKeys(t *testing.T, name string) []string {
	t.Helper()
	f, err := Bundle().Open(name)
	require.NoError(t, err)
	defer f.Close()

	var m map[string]string
	require.NoError(t, yaml.NewDecoder(f).Decode(&m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestInstallFixedAssets_Overwrite(t *testing.T) {
	mem := fsys.NewMemory()
	dest := DefaultDestinations()
	require.NoError(t, mem.WriteNew(dest.LoggerConfig, []byte("stale")))
	require.NoError(t, mem.WriteNew(dest.ErrorHandler, []byte("stale")))

	inst := NewInstaller(mem, dest)

	tests := []struct {
		name    string
		install func() (string, error)
		want    string
		marker  string
	}{
		{"logger config", inst.InstallLoggerConfig, dest.LoggerConfig, "should_log:"},
		{"base controller", inst.InstallBaseController, dest.BaseController, "type APIController struct{}"},
		{"error handler", inst.InstallErrorHandler, dest.ErrorHandler, "errhandler.SetDefault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.install()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			data, err := mem.Read(got)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.marker)
			assert.NotContains(t, string(data), "stale")
		})
	}
}

func TestInstall_CopiesVerbatim(t *testing.T) {
	mem := fsys.NewMemory()
	inst := NewInstaller(mem, DefaultDestinations())

	dst, err := inst.InstallBaseController()
	require.NoError(t, err)

	want, err := fs.ReadFile(Bundle(), controllerSource)
	require.NoError(t, err)
	got, err := mem.Read(dst)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInstall_MissingSource(t *testing.T) {
	inst := NewInstallerFrom(fstest.MapFS{}, fsys.NewMemory(), DefaultDestinations())

	_, err := inst.InstallErrorHandler()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "installing error handler")
	assert.True(t, errors.Is(err, oerrors.ErrFilesystem))

	_, err = inst.InstallTranslations()
	require.Error(t, err)
}

func TestInstall_ReadOnly(t *testing.T) {
	inst := NewInstaller(fsys.New(afero.NewReadOnlyFs(afero.NewMemMapFs())), DefaultDestinations())

	_, err := inst.InstallLoggerConfig()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPermission))

	written, err := inst.InstallTranslations()
	require.Error(t, err)
	assert.Empty(t, written)
	assert.True(t, errors.Is(err, oerrors.ErrPermission))
}
