package writer

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/templates"
)

// Definition writes the model file for an entity.
type Definition struct {
	env Env
}

// NewDefinition creates a definition writer.
func NewDefinition(env Env) *Definition {
	return &Definition{env: env}
}

// Kind returns templates.Definition.
func (d *Definition) Kind() Kind { return templates.Definition }

// Path returns the target path for forms.
func (d *Definition) Path(forms naming.Forms) string {
	return path.Join(d.env.Layout.ModelsDir, forms.TableNameSingular+".go")
}

// Write renders the definition and creates it. An existing file is never
// overwritten.
func (d *Definition) Write(forms naming.Forms, attrs []naming.Attribute) (Result, error) {
	ctx := d.env.baseContext(forms).Merge(templates.Context{
		"ATTRIBUTE_FIELDS":  attributeFields(attrs),
		"ATTRIBUTE_IMPORTS": attributeImports(attrs),
	})
	data, err := d.env.render(templates.Definition, ctx)
	if err != nil {
		return Result{}, err
	}

	target := d.Path(forms)
	if err := d.env.FS.MakeDirectory(d.env.Layout.ModelsDir); err != nil {
		return Result{}, err
	}
	if err := d.env.FS.WriteNew(target, data); err != nil {
		return Result{}, err
	}
	return Result{Kind: d.Kind(), Path: target, Action: ActionCreated}, nil
}

// attributeFields renders one aligned struct field per attribute.
func attributeFields(attrs []naming.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}

	nameWidth, typeWidth := 0, 0
	for _, a := range attrs {
		goType, _ := a.GoType()
		nameWidth = max(nameWidth, len(a.FieldName()))
		typeWidth = max(typeWidth, len(goType))
	}

	var b strings.Builder
	for _, a := range attrs {
		goType, _ := a.GoType()
		fmt.Fprintf(&b, "\t%-*s %-*s `json:\"%s\" gorm:\"column:%s\"`\n",
			nameWidth, a.FieldName(), typeWidth, goType, a.Column(), a.Column())
	}
	return b.String()
}

// attributeImports renders the import lines the attribute types need.
func attributeImports(attrs []naming.Attribute) string {
	seen := make(map[string]bool)
	var pkgs []string
	for _, a := range attrs {
		if _, pkg := a.GoType(); pkg != "" && !seen[pkg] {
			seen[pkg] = true
			pkgs = append(pkgs, pkg)
		}
	}
	sort.Strings(pkgs)

	var b strings.Builder
	for _, pkg := range pkgs {
		fmt.Fprintf(&b, "\t%q\n", pkg)
	}
	return b.String()
}
