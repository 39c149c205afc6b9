package writer

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiforge/cli/internal/templates"
)

// parseGo parses src and reports duplicate struct fields and duplicate
// string keys in composite literals, which the parser alone accepts.
func parseGo(t *testing.T, name string, src string) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), name, src, parser.AllErrors)
	require.NoError(t, err, "%s:\n%s", name, src)

	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.StructType:
			seen := map[string]bool{}
			for _, f := range n.Fields.List {
				names := make([]string, 0, len(f.Names))
				for _, id := range f.Names {
					names = append(names, id.Name)
				}
				if sel, ok := f.Type.(*ast.SelectorExpr); ok && len(f.Names) == 0 {
					names = append(names, sel.Sel.Name)
				}
				for _, field := range names {
					assert.False(t, seen[field], "%s: duplicate field %s", name, field)
					seen[field] = true
				}
			}
		case *ast.CompositeLit:
			seen := map[string]bool{}
			for _, elt := range n.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					continue
				}
				lit, ok := kv.Key.(*ast.BasicLit)
				if !ok || lit.Kind != token.STRING {
					continue
				}
				key, _ := strconv.Unquote(lit.Value)
				assert.False(t, seen[key], "%s: duplicate key %q", name, key)
				seen[key] = true
			}
		}
		return true
	})
	return file
}

func TestWriters_RenderValidGo(t *testing.T) {
	tests := []struct {
		entity  string
		attrs   string
		pkgName string
	}{
		{entity: "order", attrs: "total:float,placed_at:datetime,note", pkgName: "order"},
		{entity: "OrderItem", attrs: "quantity:integer,order_id:bigint,meta:json", pkgName: "orderitem"},
		{entity: "package", attrs: "weight:decimal,tracking_code", pkgName: "pkgpackage"},
		{entity: "type", attrs: "label", pkgName: "pkgtype"},
		{entity: "map", attrs: "", pkgName: "pkgmap"},
		{entity: "respond", attrs: "body:text", pkgName: "respond"},
		{entity: "model", attrs: "type,range:int,package:text,func:boolean", pkgName: "model"},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			env, mem := testEnv(t)
			forms := mustDerive(t, tt.entity)
			attrs := mustAttrs(t, tt.attrs)

			for _, w := range All(env) {
				res, err := w.Write(forms, attrs)
				require.NoError(t, err, "%s writer", w.Kind())

				file := parseGo(t, res.Path, readString(t, mem, res.Path))
				if w.Kind() == templates.Controller {
					assert.Equal(t, tt.pkgName, file.Name.Name)
				}
			}
		})
	}
}

func TestRoute_RerunStillParses(t *testing.T) {
	env, mem := testEnv(t)
	w := NewRoute(env)

	for _, entity := range []string{"order", "package", "order"} {
		_, err := w.Write(mustDerive(t, entity), nil)
		require.NoError(t, err)
	}
	parseGo(t, "routes/api.go", readString(t, mem, "routes/api.go"))
}
