// Package writer renders and persists the per-entity artifacts.
package writer

import (
	"fmt"
	"path"

	"github.com/apiforge/cli/internal/fsys"
	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/templates"
)

// Kind identifies an artifact. Each kind is backed by the template of the
// same name.
type Kind = templates.ID

// Action records what a successful write did.
type Action string

const (
	ActionCreated  Action = "created"
	ActionAppended Action = "appended"
)

// Result describes one persisted artifact.
type Result struct {
	Kind   Kind
	Path   string
	Action Action
}

// Writer persists one artifact for an entity.
type Writer interface {
	Kind() Kind
	Write(forms naming.Forms, attrs []naming.Attribute) (Result, error)
}

// ResourceActions is the action-set expression bound into controllers and
// routes. The form-only actions have no meaning for a JSON API.
const ResourceActions = "apikit.Except(apikit.ActionCreate, apikit.ActionEdit)"

// Layout holds the project-relative target locations of generated
// artifacts. Paths use forward slashes.
type Layout struct {
	ModelsDir       string
	ControllersDir  string
	TransformersDir string
	RoutesFile      string
}

// DefaultLayout returns the conventional project layout.
func DefaultLayout() Layout {
	return Layout{
		ModelsDir:       "app/models",
		ControllersDir:  "app/http/controllers",
		TransformersDir: "app/transformers",
		RoutesFile:      "routes/api.go",
	}
}

// Env carries what every writer needs.
type Env struct {
	FS        fsys.Filesystem
	Templates *templates.Store
	Module    string
	Layout    Layout
}

// All returns the writers in generation order.
func All(env Env) []Writer {
	return []Writer{
		NewDefinition(env),
		NewController(env),
		NewRoute(env),
		NewTransform(env),
	}
}

// baseContext holds the tokens shared by every template.
func (e Env) baseContext(forms naming.Forms) templates.Context {
	return templates.Context{
		"MODULE_PATH":         e.Module,
		"TYPE_NAME":           forms.TypeName,
		"VARIABLE_NAME":       forms.VariableName,
		"PACKAGE_NAME":        forms.PackageName,
		"TABLE_NAME":          forms.TableNameSingular,
		"TABLE_NAME_PLURAL":   forms.TableNamePlural,
		"ROUTE_SEGMENT":       forms.RouteSegment,
		"MODELS_IMPORT":       path.Join(e.Module, e.Layout.ModelsDir),
		"CONTROLLERS_IMPORT":  path.Join(e.Module, e.Layout.ControllersDir),
		"TRANSFORMERS_IMPORT": path.Join(e.Module, e.Layout.TransformersDir),
	}
}

// render loads id and substitutes ctx into it.
func (e Env) render(id templates.ID, ctx templates.Context) ([]byte, error) {
	if err := ctx.Validate(); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", id, err)
	}
	raw, err := e.Templates.Load(id)
	if err != nil {
		return nil, err
	}
	return []byte(templates.Render(raw, ctx)), nil
}

func controllerName(forms naming.Forms) string {
	return forms.TypeName + "Controller"
}

func transformerName(forms naming.Forms) string {
	return forms.TypeName + "Transformer"
}
