package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apiforge/cli/internal/errors"
)

func TestParseAttributes(t *testing.T) {
	attrs, err := ParseAttributes("order", " total:Float, note ,, placed_at:datetime")
	require.NoError(t, err)
	assert.Equal(t, []Attribute{
		{Name: "total", Type: "float"},
		{Name: "note", Type: "string"},
		{Name: "placed_at", Type: "datetime"},
	}, attrs)

	empty, err := ParseAttributes("order", "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseAttributes_Errors(t *testing.T) {
	tests := []struct {
		name string
		list string
	}{
		{"unknown type", "total:money"},
		{"invalid name", "1st:int"},
		{"duplicate", "name,Name:text"},
		{"duplicate column", "order_id:int,orderId:int"},
		{"id", "id:int"},
		{"created_at", "created_at:datetime"},
		{"updated_at", "updatedAt:datetime"},
		{"deleted_at", "deleted_at:datetime"},
		{"embedded model", "model"},
		{"table name method", "table_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAttributes("order", tt.list)
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrInvalidName)
			assert.Contains(t, err.Error(), `"order"`)
		})
	}
}

func TestParseAttributes_KeywordNames(t *testing.T) {
	attrs, err := ParseAttributes("order", "type,range:int,package")
	require.NoError(t, err)

	want := [][2]string{{"Type", "type"}, {"Range", "range"}, {"Package", "package"}}
	for i, a := range attrs {
		assert.Equal(t, want[i][0], a.FieldName())
		assert.Equal(t, want[i][1], a.Column())
	}
}

func TestAttributeForms(t *testing.T) {
	a := Attribute{Name: "placedAt", Type: "timestamp"}
	assert.Equal(t, "PlacedAt", a.FieldName())
	assert.Equal(t, "placed_at", a.Column())

	goType, pkg := a.GoType()
	assert.Equal(t, "time.Time", goType)
	assert.Equal(t, "time", pkg)

	goType, pkg = Attribute{Name: "qty", Type: "int"}.GoType()
	assert.Equal(t, "int", goType)
	assert.Empty(t, pkg)
}
