// Package reqlog logs incoming API requests.
//
// A Config loaded once at startup is shared by a Profile, which decides
// which requests are logged, and a Writer, which formats them.
package reqlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvEnabled overrides Config.Enabled when set.
const EnvEnabled = "REQUESTS_LOGGER_ENABLED"

// Config controls request logging.
type Config struct {
	// Enabled turns request logging on.
	Enabled bool `yaml:"enabled"`

	// LogFiles appends the names of uploaded files.
	LogFiles bool `yaml:"log_files"`

	// ShouldLog lists the logged HTTP methods, case-insensitive.
	ShouldLog []string `yaml:"should_log"`

	// Except lists body fields that are never logged.
	Except []string `yaml:"except"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		LogFiles:  false,
		ShouldLog: []string{"get", "post", "put", "patch", "delete"},
		Except:    []string{"password", "password_confirmation"},
	}
}

// ParseConfig decodes YAML over the defaults, then applies the
// REQUESTS_LOGGER_ENABLED override.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing request logger config: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the config at path. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		return cfg, applyEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading request logger config: %w", err)
	}
	return ParseConfig(data)
}

func applyEnv(cfg *Config) error {
	raw, ok := os.LookupEnv(EnvEnabled)
	if !ok || raw == "" {
		return nil
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvEnabled, err)
	}
	cfg.Enabled = enabled
	return nil
}
