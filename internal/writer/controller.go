package writer

import (
	"path"

	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/templates"
)

// Controller writes the per-entity controller into its own package
// directory under the controllers root.
type Controller struct {
	env Env
}

// NewController creates a controller writer.
func NewController(env Env) *Controller {
	return &Controller{env: env}
}

// Kind returns templates.Controller.
func (c *Controller) Kind() Kind { return templates.Controller }

// Dir returns the per-entity controller directory.
func (c *Controller) Dir(forms naming.Forms) string {
	return path.Join(c.env.Layout.ControllersDir, forms.PackageName)
}

// Path returns the target path for forms.
func (c *Controller) Path(forms naming.Forms) string {
	return path.Join(c.Dir(forms), forms.TableNameSingular+"_controller.go")
}

// Write creates the entity directory if missing, then the controller file.
func (c *Controller) Write(forms naming.Forms, _ []naming.Attribute) (Result, error) {
	ctx := c.env.baseContext(forms).Merge(templates.Context{
		"CONTROLLER_NAME":  controllerName(forms),
		"TRANSFORMER_NAME": transformerName(forms),
		"RESOURCE_ACTIONS": ResourceActions,
	})
	data, err := c.env.render(templates.Controller, ctx)
	if err != nil {
		return Result{}, err
	}

	if err := c.env.FS.MakeDirectory(c.Dir(forms)); err != nil {
		return Result{}, err
	}
	target := c.Path(forms)
	if err := c.env.FS.WriteNew(target, data); err != nil {
		return Result{}, err
	}
	return Result{Kind: c.Kind(), Path: target, Action: ActionCreated}, nil
}
