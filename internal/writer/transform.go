package writer

import (
	"fmt"
	"path"
	"strings"

	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/templates"
)

// Transform writes the per-entity response transformer into the shared
// transformers directory.
type Transform struct {
	env Env
}

// NewTransform creates a transform writer.
func NewTransform(env Env) *Transform {
	return &Transform{env: env}
}

// Kind returns templates.Transform.
func (t *Transform) Kind() Kind { return templates.Transform }

// Path returns the target path for forms.
func (t *Transform) Path(forms naming.Forms) string {
	return path.Join(t.env.Layout.TransformersDir, forms.TableNameSingular+"_transformer.go")
}

// Write creates the transformers directory if missing, then the file.
func (t *Transform) Write(forms naming.Forms, attrs []naming.Attribute) (Result, error) {
	ctx := t.env.baseContext(forms).Merge(templates.Context{
		"TRANSFORMER_NAME":         transformerName(forms),
		"TRANSFORMABLE_ATTRIBUTES": transformableAttributes(forms, attrs),
	})
	data, err := t.env.render(templates.Transform, ctx)
	if err != nil {
		return Result{}, err
	}

	if err := t.env.FS.MakeDirectory(t.env.Layout.TransformersDir); err != nil {
		return Result{}, err
	}
	target := t.Path(forms)
	if err := t.env.FS.WriteNew(target, data); err != nil {
		return Result{}, err
	}
	return Result{Kind: t.Kind(), Path: target, Action: ActionCreated}, nil
}

// transformableAttributes renders one map entry per attribute.
func transformableAttributes(forms naming.Forms, attrs []naming.Attribute) string {
	var b strings.Builder
	for _, a := range attrs {
		fmt.Fprintf(&b, "\t\t%q: %s.%s,\n", a.Column(), forms.VariableName, a.FieldName())
	}
	return b.String()
}
