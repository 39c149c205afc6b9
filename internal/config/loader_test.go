package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apiforge/cli/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeConfig(t, `
module: example.com/shop
translations: false
templates_dir: stubs
irregular_plurals:
  cactus: cacti
layout:
  models: internal/model
log:
  timestamps: false
`)

	cfg, found, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "example.com/shop", cfg.Module)
	require.NotNil(t, cfg.Translations)
	assert.False(t, *cfg.Translations)
	assert.Equal(t, "stubs", cfg.TemplatesDir)
	assert.Equal(t, map[string]string{"cactus": "cacti"}, cfg.IrregularPlurals)
	assert.Equal(t, "internal/model", cfg.Layout.Models)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.False(t, *cfg.Log.Timestamps)
}

func TestLoader_MissingFile(t *testing.T) {
	cfg, found, err := NewLoader().Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cfg.Translations)
	assert.Empty(t, cfg.Module)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "templates_dir: stubs\nlayout:\n  models: internal/model\n")
	t.Setenv("APIFORGE_TEMPLATES_DIR", "custom-stubs")
	t.Setenv("APIFORGE_LAYOUT_CONTROLLERS", "internal/http")

	cfg, _, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-stubs", cfg.TemplatesDir)
	assert.Equal(t, "internal/model", cfg.Layout.Models)
	assert.Equal(t, "internal/http", cfg.Layout.Controllers)
}

func TestLoader_ModuleEnvLeftToResolver(t *testing.T) {
	path := writeConfig(t, "module: example.com/file\n")
	t.Setenv(EnvModule, "example.com/env")

	cfg, _, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example.com/file", cfg.Module)
}

func TestLoadValidated_RejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "translations: maybe\n")

	_, found, err := LoadValidated(path)
	require.Error(t, err)
	assert.True(t, found)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestLoadValidated_MissingFile(t *testing.T) {
	cfg, found, err := LoadValidated(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.False(t, found)
	assert.NotNil(t, cfg)
}
