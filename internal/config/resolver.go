package config

import (
	"fmt"
	"os"
	"strings"

	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceGoMod indicates value was read from the project's go.mod.
	SourceGoMod ConfigSource = "go.mod"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables layered by the resolver.
const (
	EnvConfig       = "APIFORGE_CONFIG"
	EnvModule       = "APIFORGE_MODULE"
	EnvTranslations = "APIFORGE_TRANSLATIONS"
)

// ResolvedValue records a resolved value and the lower-precedence values
// it shadowed.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// ParseBool accepts true/false, 1/0, yes/no, on/off and t/f in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y", "on":
		return true, nil
	case "false", "f", "0", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
	// ProjectDir is the project root.
	ProjectDir string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) APIFORGE_CONFIG env, (3) <project>/.apiforge.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	result := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]any)}

	paths, err := DefaultPaths(opts.ProjectDir)
	if err != nil {
		return result, err
	}
	envValue := os.Getenv(EnvConfig)

	switch {
	case opts.FlagValue != "":
		result.Value, result.Source = opts.FlagValue, SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = paths.ConfigFile
	case envValue != "":
		result.Value, result.Source = envValue, SourceEnv
		result.Shadowed[SourceDefault] = paths.ConfigFile
	default:
		result.Value, result.Source = paths.ConfigFile, SourceDefault
	}

	return result, nil
}

// ResolveModuleOptions contains options for module path resolution.
type ResolveModuleOptions struct {
	// ConfigValue is the module from the config file (empty if not set).
	ConfigValue string
	// GoModPath is the project's go.mod.
	GoModPath string
}

// ResolveModule resolves the target module path using precedence:
// (1) APIFORGE_MODULE env, (2) config.module, (3) go.mod, (4) default.
func ResolveModule(opts ResolveModuleOptions) (ResolvedValue, error) {
	result := ResolvedValue{Key: "module", Shadowed: make(map[ConfigSource]any)}

	envValue := os.Getenv(EnvModule)
	goModValue, err := DetectModule(opts.GoModPath)
	if err != nil {
		return result, err
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceGoMod, goModValue},
		{SourceDefault, DefaultModule},
	}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value, result.Source = c.value, c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}

	return result, nil
}

// ResolveTranslationsOptions contains options for the translations toggle.
type ResolveTranslationsOptions struct {
	// FlagSet reports whether --translations was given.
	FlagSet bool
	// FlagValue is the parsed --translations value.
	FlagValue bool
	// ConfigValue is the config file value (nil if not set).
	ConfigValue *bool
}

// ResolveTranslations resolves the translations toggle using precedence:
// (1) --translations flag, (2) APIFORGE_TRANSLATIONS env,
// (3) config.translations, (4) true.
func ResolveTranslations(opts ResolveTranslationsOptions) (ResolvedValue, error) {
	result := ResolvedValue{Key: "translations", Shadowed: make(map[ConfigSource]any)}

	var envValue *bool
	if raw, ok := os.LookupEnv(EnvTranslations); ok && raw != "" {
		b, err := ParseBool(raw)
		if err != nil {
			return result, oerrors.NewValidationError(err.Error(), "", EnvTranslations,
				"use true/false, 1/0, yes/no or on/off")
		}
		envValue = &b
	}

	type candidate struct {
		source ConfigSource
		value  *bool
	}
	var flagValue *bool
	if opts.FlagSet {
		flagValue = &opts.FlagValue
	}
	defaultValue := true

	for _, c := range []candidate{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, &defaultValue},
	} {
		if c.value == nil {
			continue
		}
		if result.Source == "" {
			result.Value, result.Source = *c.value, c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = *c.value
		}
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
