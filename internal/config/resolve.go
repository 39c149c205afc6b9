package config

// ResolveOptions carries the flag inputs of a full resolution.
type ResolveOptions struct {
	ProjectDir string
	ConfigFlag string

	TranslationsSet bool
	Translations    bool
}

// Resolved is the fully resolved configuration of a run.
type Resolved struct {
	Paths       *Paths
	ConfigPath  string
	ConfigFound bool
	Config      *Config

	Module       string
	Translations bool

	// Values records where every layered value came from.
	Values []ResolvedValue
}

// Resolve locates, validates and loads the config file, then layers flags
// and environment over it.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	paths, err := DefaultPaths(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	pathValue, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue:  opts.ConfigFlag,
		ProjectDir: paths.ProjectDir,
	})
	if err != nil {
		return nil, err
	}
	configPath := pathValue.Value.(string)

	cfg, found, err := LoadValidated(configPath)
	if err != nil {
		return nil, err
	}

	moduleValue, err := ResolveModule(ResolveModuleOptions{
		ConfigValue: cfg.Module,
		GoModPath:   paths.GoMod,
	})
	if err != nil {
		return nil, err
	}

	translationsValue, err := ResolveTranslations(ResolveTranslationsOptions{
		FlagSet:     opts.TranslationsSet,
		FlagValue:   opts.Translations,
		ConfigValue: cfg.Translations,
	})
	if err != nil {
		return nil, err
	}

	values := []ResolvedValue{pathValue, moduleValue, translationsValue}
	LogResolvedValues(values)

	return &Resolved{
		Paths:        paths,
		ConfigPath:   configPath,
		ConfigFound:  found,
		Config:       cfg,
		Module:       moduleValue.Value.(string),
		Translations: translationsValue.Value.(bool),
		Values:       values,
	}, nil
}
