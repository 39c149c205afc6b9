// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/apiforge/cli/internal/assets"
	"github.com/apiforge/cli/internal/writer"
)

// DefaultModule is the target module path used when neither the config
// nor a go.mod names one.
const DefaultModule = "example.com/app"

// LayoutConfig overrides target locations. Empty fields keep defaults.
type LayoutConfig struct {
	Models         string `mapstructure:"models" yaml:"models"`
	Controllers    string `mapstructure:"controllers" yaml:"controllers"`
	Transformers   string `mapstructure:"transformers" yaml:"transformers"`
	Routes         string `mapstructure:"routes" yaml:"routes"`
	Lang           string `mapstructure:"lang" yaml:"lang"`
	LoggerConfig   string `mapstructure:"logger_config" yaml:"logger_config"`
	BaseController string `mapstructure:"base_controller" yaml:"base_controller"`
	ErrorHandler   string `mapstructure:"error_handler" yaml:"error_handler"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Nil means on. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config is the project configuration, read from .apiforge.yaml in the
// project root.
type Config struct {
	// Module is the Go module path of the generated project.
	// Env: APIFORGE_MODULE. Default: detected from go.mod.
	Module string `mapstructure:"module" yaml:"module,omitempty"`

	// Translations installs the localized bundles. Nil means unset.
	// Env: APIFORGE_TRANSLATIONS. Default: true.
	Translations *bool `mapstructure:"translations" yaml:"translations,omitempty"`

	// TemplatesDir holds template overrides named <id>.stub.
	// Env: APIFORGE_TEMPLATES_DIR.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir,omitempty"`

	// IrregularPlurals extends the built-in irregular plural table.
	IrregularPlurals map[string]string `mapstructure:"irregular_plurals" yaml:"irregular_plurals,omitempty"`

	// Layout overrides target locations.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with every default populated. Used by
// `apiforge config init`.
func DefaultConfig() *Config {
	wl := writer.DefaultLayout()
	ad := assets.DefaultDestinations()
	translations := true
	return &Config{
		Translations: &translations,
		Layout: LayoutConfig{
			Models:         wl.ModelsDir,
			Controllers:    wl.ControllersDir,
			Transformers:   wl.TransformersDir,
			Routes:         wl.RoutesFile,
			Lang:           ad.LangDir,
			LoggerConfig:   ad.LoggerConfig,
			BaseController: ad.BaseController,
			ErrorHandler:   ad.ErrorHandler,
		},
	}
}

// WriterLayout returns the artifact layout with defaults filled in.
func (c *Config) WriterLayout() writer.Layout {
	l := writer.DefaultLayout()
	l.ModelsDir = or(c.Layout.Models, l.ModelsDir)
	l.ControllersDir = or(c.Layout.Controllers, l.ControllersDir)
	l.TransformersDir = or(c.Layout.Transformers, l.TransformersDir)
	l.RoutesFile = or(c.Layout.Routes, l.RoutesFile)
	return l
}

// AssetDestinations returns the asset targets with defaults filled in.
func (c *Config) AssetDestinations() assets.Destinations {
	d := assets.DefaultDestinations()
	d.LangDir = or(c.Layout.Lang, d.LangDir)
	d.LoggerConfig = or(c.Layout.LoggerConfig, d.LoggerConfig)
	d.BaseController = or(c.Layout.BaseController, d.BaseController)
	d.ErrorHandler = or(c.Layout.ErrorHandler, d.ErrorHandler)
	return d
}

// Marshal renders the config as YAML with a leading comment.
func (c *Config) Marshal() ([]byte, error) {
	body, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	header := "# apiforge project configuration.\n" +
		"# Values can be overridden with APIFORGE_* environment variables.\n"
	return append([]byte(header), body...), nil
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
