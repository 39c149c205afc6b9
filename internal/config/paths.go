package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// FileName is the config file looked up in the project root.
const FileName = ".apiforge.yaml"

// Paths contains the standard locations inside a project.
type Paths struct {
	// ProjectDir is the root all generated paths are relative to.
	ProjectDir string

	// ConfigFile is <ProjectDir>/.apiforge.yaml.
	ConfigFile string

	// GoMod is <ProjectDir>/go.mod.
	GoMod string
}

// DefaultPaths returns the paths for projectDir. An empty projectDir
// means the working directory.
func DefaultPaths(projectDir string) (*Paths, error) {
	if projectDir == "" {
		projectDir = "."
	}
	expanded, err := ExpandPath(projectDir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("resolving project dir: %w", err)
	}
	return &Paths{
		ProjectDir: abs,
		ConfigFile: filepath.Join(abs, FileName),
		GoMod:      filepath.Join(abs, "go.mod"),
	}, nil
}

// DetectModule returns the module path declared by the go.mod at path.
// A missing go.mod yields "" and no error.
func DetectModule(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	module := modfile.ModulePath(data)
	if module == "" {
		return "", fmt.Errorf("%s declares no module path", path)
	}
	return module, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported.
	return path, nil
}

// FileExists reports whether path exists.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
