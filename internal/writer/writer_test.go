package writer

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/fsys"
	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/templates"
)

const testModule = "example.com/shop"

func testEnv(t *testing.T) (Env, *fsys.AferoFS) {
	t.Helper()
	mem := fsys.NewMemory()
	return Env{
		FS:        mem,
		Templates: templates.NewEmbeddedStore(""),
		Module:    testModule,
		Layout:    DefaultLayout(),
	}, mem
}

func mustDerive(t *testing.T, raw string) naming.Forms {
	t.Helper()
	forms, err := naming.Derive(raw)
	require.NoError(t, err)
	return forms
}

func mustAttrs(t *testing.T, list string) []naming.Attribute {
	t.Helper()
	attrs, err := naming.ParseAttributes("test", list)
	require.NoError(t, err)
	return attrs
}

func readString(t *testing.T, fs fsys.Filesystem, name string) string {
	t.Helper()
	data, err := fs.Read(name)
	require.NoError(t, err)
	return string(data)
}

func TestDefinition_Write(t *testing.T) {
	env, mem := testEnv(t)
	forms := mustDerive(t, "Order")

	res, err := NewDefinition(env).Write(forms, mustAttrs(t, "total:float,placed_at:datetime,note"))
	require.NoError(t, err)
	assert.Equal(t, Result{Kind: templates.Definition, Path: "app/models/order.go", Action: ActionCreated}, res)

	out := readString(t, mem, "app/models/order.go")
	assert.Contains(t, out, "package models")
	assert.Contains(t, out, "type Order struct {")
	assert.Contains(t, out, `"time"`)
	assert.Contains(t, out, "Total    float64")
	assert.Contains(t, out, "PlacedAt time.Time")
	assert.Contains(t, out, "`json:\"placed_at\" gorm:\"column:placed_at\"`")
	assert.Contains(t, out, `return "orders"`)
	assert.NotContains(t, out, "{{", "every token must be resolved")
}

func TestDefinition_RerunRefuses(t *testing.T) {
	env, mem := testEnv(t)
	forms := mustDerive(t, "Order")
	w := NewDefinition(env)

	_, err := w.Write(forms, nil)
	require.NoError(t, err)
	before := readString(t, mem, "app/models/order.go")

	_, err = w.Write(forms, mustAttrs(t, "total:float"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrFileExists))
	assert.Equal(t, before, readString(t, mem, "app/models/order.go"))
}

func TestController_Write(t *testing.T) {
	env, mem := testEnv(t)
	forms := mustDerive(t, "blog-category")

	res, err := NewController(env).Write(forms, nil)
	require.NoError(t, err)
	assert.Equal(t, "app/http/controllers/blogcategory/blog_category_controller.go", res.Path)
	assert.Equal(t, ActionCreated, res.Action)

	out := readString(t, mem, res.Path)
	assert.Contains(t, out, "package blogcategory")
	assert.Contains(t, out, "type BlogCategoryController struct")
	assert.Contains(t, out, `"example.com/shop/app/models"`)
	assert.Contains(t, out, `"example.com/shop/app/transformers"`)
	assert.Contains(t, out, "transformers.BlogCategoryTransformer{}")
	assert.Contains(t, out, ResourceActions)
	assert.NotContains(t, out, "{{")
}

func TestController_ExistingDirectoryIsFine(t *testing.T) {
	env, mem := testEnv(t)
	require.NoError(t, mem.MakeDirectory("app/http/controllers/order"))

	_, err := NewController(env).Write(mustDerive(t, "order"), nil)
	require.NoError(t, err)
}

func TestRoute_AppendsDuplicatesOnRerun(t *testing.T) {
	env, mem := testEnv(t)
	forms := mustDerive(t, "OrderItem")
	w := NewRoute(env)

	res, err := w.Write(forms, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Kind: templates.Route, Path: "routes/api.go", Action: ActionAppended}, res)

	_, err = w.Write(forms, nil)
	require.NoError(t, err)

	out := readString(t, mem, "routes/api.go")
	assert.Contains(t, out, "\npackage routes\n")
	assert.Contains(t, out, `import _ "example.com/shop/app/http/controllers/<name>"`, "header explains controller registration")
	assert.Equal(t, 1, strings.Count(out, "package routes"), "header is written once")
	block := `var _ = apikit.Resource("order_items", "OrderItemController", ` + ResourceActions + `)`
	assert.Equal(t, 2, strings.Count(out, block), "re-run appends a duplicate block")
}

func TestRoute_PreservesExistingContent(t *testing.T) {
	env, mem := testEnv(t)
	existing := "package routes\n\nimport \"github.com/apiforge/cli/pkg/apikit\"\n\n// custom\n"
	require.NoError(t, mem.WriteNew("routes/api.go", []byte(existing)))

	_, err := NewRoute(env).Write(mustDerive(t, "person"), nil)
	require.NoError(t, err)

	out := readString(t, mem, "routes/api.go")
	assert.True(t, strings.HasPrefix(out, existing))
	assert.Contains(t, out, `apikit.Resource("people", "PersonController"`)
}

func TestTransform_Write(t *testing.T) {
	env, mem := testEnv(t)
	forms := mustDerive(t, "order")

	res, err := NewTransform(env).Write(forms, mustAttrs(t, "total:float,status"))
	require.NoError(t, err)
	assert.Equal(t, "app/transformers/order_transformer.go", res.Path)

	out := readString(t, mem, res.Path)
	assert.Contains(t, out, "type OrderTransformer struct{}")
	assert.Contains(t, out, `"total": order.Total,`)
	assert.Contains(t, out, `"status": order.Status,`)
	assert.Contains(t, out, `import "example.com/shop/app/models"`)
}

func TestWriters_MissingTemplate(t *testing.T) {
	env, mem := testEnv(t)
	env.Templates = templates.NewStore(fstest.MapFS{})
	forms := mustDerive(t, "order")

	for _, w := range All(env) {
		t.Run(string(w.Kind()), func(t *testing.T) {
			_, err := w.Write(forms, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrTemplateNotFound))
			assert.False(t, errors.Is(err, oerrors.ErrFilesystem))
		})
	}

	// Nothing is touched when the template cannot be resolved.
	for _, p := range []string{"app", "routes"} {
		ok, err := mem.Exists(p)
		require.NoError(t, err)
		assert.False(t, ok, p)
	}
}

func TestWriters_ReadOnlyFilesystem(t *testing.T) {
	env, _ := testEnv(t)
	env.FS = fsys.New(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	forms := mustDerive(t, "order")

	for _, w := range All(env) {
		t.Run(string(w.Kind()), func(t *testing.T) {
			_, err := w.Write(forms, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrFilesystem))
			assert.True(t, errors.Is(err, oerrors.ErrPermission))
		})
	}
}

func TestWriters_CustomLayout(t *testing.T) {
	env, mem := testEnv(t)
	env.Layout = Layout{
		ModelsDir:       "internal/model",
		ControllersDir:  "internal/http",
		TransformersDir: "internal/view",
		RoutesFile:      "internal/router/routes.go",
	}
	forms := mustDerive(t, "order")

	for _, w := range All(env) {
		_, err := w.Write(forms, nil)
		require.NoError(t, err, w.Kind())
	}

	for _, p := range []string{
		"internal/model/order.go",
		"internal/http/order/order_controller.go",
		"internal/view/order_transformer.go",
		"internal/router/routes.go",
	} {
		ok, err := mem.Exists(p)
		require.NoError(t, err)
		assert.True(t, ok, p)
	}
	assert.Contains(t, readString(t, mem, "internal/router/routes.go"), "\npackage router\n")
	assert.Contains(t, readString(t, mem, "internal/http/order/order_controller.go"), `"example.com/shop/internal/model"`)
}

func TestAttributeFields_Alignment(t *testing.T) {
	got := attributeFields(mustAttrs(t, "id_code:int,name"))
	want := "\tIdCode int    `json:\"id_code\" gorm:\"column:id_code\"`\n" +
		"\tName   string `json:\"name\" gorm:\"column:name\"`\n"
	assert.Equal(t, want, got)
	assert.Empty(t, attributeFields(nil))
}

func TestAttributeImports_DedupSorted(t *testing.T) {
	got := attributeImports(mustAttrs(t, "a:time,b:json,c:date"))
	assert.Equal(t, "\t\"encoding/json\"\n\t\"time\"\n", got)
}
