// Package assets installs the fixed, non-parameterized files every API
// project receives. Installs always overwrite.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/apiforge/cli/internal/fsys"
)

//go:embed all:bundle
var bundleFS embed.FS

// Source paths inside the bundle.
const (
	langRoot           = "lang"
	loggerConfigSource = "config/requests_logger.yaml"
	controllerSource   = "api_controller.go.txt"
	handlerSource      = "handler.go.txt"
)

// Destinations holds the project-relative install targets.
type Destinations struct {
	LangDir        string
	LoggerConfig   string
	BaseController string
	ErrorHandler   string
}

// DefaultDestinations returns the conventional install targets.
func DefaultDestinations() Destinations {
	return Destinations{
		LangDir:        "resources/lang",
		LoggerConfig:   "config/requests_logger.yaml",
		BaseController: "app/http/controllers/api_controller.go",
		ErrorHandler:   "app/errors/handler.go",
	}
}

// Bundle returns the embedded asset tree.
func Bundle() fs.FS {
	sub, err := fs.Sub(bundleFS, "bundle")
	if err != nil {
		panic(err)
	}
	return sub
}

// Installer copies bundled assets into a project.
type Installer struct {
	fs   fsys.Filesystem
	src  fs.FS
	dest Destinations
}

// NewInstaller creates an installer for the embedded bundle.
func NewInstaller(target fsys.Filesystem, dest Destinations) *Installer {
	return NewInstallerFrom(Bundle(), target, dest)
}

// NewInstallerFrom creates an installer reading from src.
func NewInstallerFrom(src fs.FS, target fsys.Filesystem, dest Destinations) *Installer {
	return &Installer{fs: target, src: src, dest: dest}
}

// InstallTranslations copies every localized bundle under the lang
// directory and returns the written paths.
func (i *Installer) InstallTranslations() ([]string, error) {
	var written []string
	err := fs.WalkDir(i.src, langRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		dst := path.Join(i.dest.LangDir, p[len(langRoot)+1:])
		if err := i.fs.Copy(i.src, p, dst); err != nil {
			return err
		}
		written = append(written, dst)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("installing translations: %w", err)
	}
	return written, nil
}

// InstallLoggerConfig copies the request-logging configuration.
func (i *Installer) InstallLoggerConfig() (string, error) {
	return i.copy(loggerConfigSource, i.dest.LoggerConfig, "logger configuration")
}

// InstallBaseController copies the base controller all generated
// controllers embed.
func (i *Installer) InstallBaseController() (string, error) {
	return i.copy(controllerSource, i.dest.BaseController, "base controller")
}

// InstallErrorHandler copies the centralized error handler.
func (i *Installer) InstallErrorHandler() (string, error) {
	return i.copy(handlerSource, i.dest.ErrorHandler, "error handler")
}

func (i *Installer) copy(src, dst, what string) (string, error) {
	if err := i.fs.Copy(i.src, src, dst); err != nil {
		return "", fmt.Errorf("installing %s: %w", what, err)
	}
	return dst, nil
}
