package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/apiforge/cli/internal/output"
)

// Environment variable prefix for apiforge configuration.
const envPrefix = "APIFORGE"

// Loader reads the config file and applies environment overrides for the
// keys that have no flag. Keys that also have a flag (module,
// translations) are layered by the Resolve helpers instead.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"templates_dir",
		"layout.models",
		"layout.controllers",
		"layout.transformers",
		"layout.routes",
		"layout.lang",
		"layout.logger_config",
		"layout.base_controller",
		"layout.error_handler",
		"log.timestamps",
	} {
		_ = v.BindEnv(key)
	}

	return &Loader{v: v}
}

// Load reads path. A missing file is not an error: the returned config
// then holds only environment values and found is false.
func (l *Loader) Load(path string) (cfg *Config, found bool, err error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, false, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expanded)
	l.v.SetConfigType("yaml")

	found = true
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("reading config file: %w", err)
		}
		found = false
		output.Debug("no config file", "path", expanded)
	}

	cfg = &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, found, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, found, nil
}

// LoadValidated reads path and, when it exists, validates the raw file
// against the schema before decoding it.
func LoadValidated(path string) (*Config, bool, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(expanded)
	switch {
	case err == nil:
		validator, verr := NewValidator()
		if verr != nil {
			return nil, false, verr
		}
		if verr := validator.ValidateBytes(expanded, data); verr != nil {
			return nil, true, verr
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, false, fmt.Errorf("reading config file: %w", err)
	}

	return NewLoader().Load(expanded)
}
