package writer

import (
	"fmt"
	"path"

	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/templates"
)

// apikitImport is the runtime package route blocks call into.
const apikitImport = "github.com/apiforge/cli/pkg/apikit"

// Route appends a registration block to the shared routes file. Blocks
// are never deduplicated: running twice for an entity appends twice.
type Route struct {
	env Env
}

// NewRoute creates a route registrar.
func NewRoute(env Env) *Route {
	return &Route{env: env}
}

// Kind returns templates.Route.
func (r *Route) Kind() Kind { return templates.Route }

// Write appends the rendered block. A missing routes file is started with
// a package clause and the apikit import.
func (r *Route) Write(forms naming.Forms, _ []naming.Attribute) (Result, error) {
	ctx := r.env.baseContext(forms).Merge(templates.Context{
		"CONTROLLER_NAME":  controllerName(forms),
		"RESOURCE_ACTIONS": ResourceActions,
	})
	data, err := r.env.render(templates.Route, ctx)
	if err != nil {
		return Result{}, err
	}

	target := r.env.Layout.RoutesFile
	exists, err := r.env.FS.Exists(target)
	if err != nil {
		return Result{}, err
	}
	if !exists {
		if err := r.env.FS.MakeDirectory(path.Dir(target)); err != nil {
			return Result{}, err
		}
		if err := r.env.FS.Append(target, routesHeader(target, path.Join(r.env.Module, r.env.Layout.ControllersDir))); err != nil {
			return Result{}, err
		}
	}

	if err := r.env.FS.Append(target, data); err != nil {
		return Result{}, err
	}
	return Result{Kind: r.Kind(), Path: target, Action: ActionAppended}, nil
}

// routesHeader starts a routes file. Controllers register themselves from
// their package init, so the header tells the reader to import each
// controller package before mounting.
func routesHeader(target, controllersImport string) []byte {
	pkg := path.Base(path.Dir(target))
	if pkg == "." || pkg == "/" {
		pkg = "routes"
	}
	return []byte(fmt.Sprintf(`// Package %[1]s declares the API resources.
//
// A declaration names its controller; the controller registers itself when
// its package is imported. Import every generated controller package for
// its side effects before mounting the router, for example:
//
//	import _ "%[2]s/<name>"
package %[1]s

import %[3]q
`, pkg, controllersImport, apikitImport))
}
