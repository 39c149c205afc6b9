package naming

import (
	"strings"

	oerrors "github.com/apiforge/cli/internal/errors"
)

// Attribute is one entity attribute given as "name[:type]".
type Attribute struct {
	Name string
	Type string
}

// DefaultAttributeType is used when an attribute has no explicit type.
const DefaultAttributeType = "string"

// goTypes maps attribute types to Go field types and the import they need.
var goTypes = map[string]struct{ goType, pkg string }{
	"string":    {"string", ""},
	"text":      {"string", ""},
	"uuid":      {"string", ""},
	"int":       {"int", ""},
	"integer":   {"int", ""},
	"bigint":    {"int64", ""},
	"float":     {"float64", ""},
	"double":    {"float64", ""},
	"decimal":   {"float64", ""},
	"bool":      {"bool", ""},
	"boolean":   {"bool", ""},
	"date":      {"time.Time", "time"},
	"datetime":  {"time.Time", "time"},
	"timestamp": {"time.Time", "time"},
	"time":      {"time.Time", "time"},
	"json":      {"json.RawMessage", "encoding/json"},
}

// reservedFields are the field names every generated definition already
// has: the embedded gorm.Model with its promoted fields, and the TableName
// method. The transformer also emits their columns as keys.
var reservedFields = map[string]bool{
	"Model":     true,
	"Id":        true,
	"ID":        true,
	"CreatedAt": true,
	"UpdatedAt": true,
	"DeletedAt": true,
	"TableName": true,
}

// ParseAttributes parses a comma-separated attribute list such as
// "name,total:float". Empty items are ignored. owner names the entity in
// errors.
func ParseAttributes(owner, list string) ([]Attribute, error) {
	var attrs []Attribute
	seen := make(map[string]bool)

	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, typ, _ := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		typ = strings.ToLower(strings.TrimSpace(typ))
		if typ == "" {
			typ = DefaultAttributeType
		}

		if _, err := Segments(name); err != nil {
			return nil, &oerrors.InvalidNameError{Name: owner, Reason: "attribute " + quote(item) + " has an invalid name"}
		}
		if _, ok := goTypes[typ]; !ok {
			return nil, &oerrors.InvalidNameError{Name: owner, Reason: "attribute " + quote(item) + " has unknown type " + quote(typ)}
		}

		attr := Attribute{Name: name, Type: typ}
		if reservedFields[attr.FieldName()] {
			return nil, &oerrors.InvalidNameError{Name: owner, Reason: "attribute " + quote(name) + " is reserved for the generated model"}
		}

		key := attr.Column()
		if seen[key] {
			return nil, &oerrors.InvalidNameError{Name: owner, Reason: "attribute " + quote(name) + " is declared twice"}
		}
		seen[key] = true

		attrs = append(attrs, attr)
	}

	return attrs, nil
}

// FieldName returns the exported Go field name of the attribute.
func (a Attribute) FieldName() string {
	f, err := defaultDeriver.derive(a.Name)
	if err != nil {
		return a.Name
	}
	return f.TypeName
}

// Column returns the snake-case column / JSON key of the attribute.
func (a Attribute) Column() string {
	f, err := defaultDeriver.derive(a.Name)
	if err != nil {
		return a.Name
	}
	return f.TableNameSingular
}

// GoType returns the Go type of the attribute and the import path it
// requires ("" when none).
func (a Attribute) GoType() (string, string) {
	t, ok := goTypes[a.Type]
	if !ok {
		return "string", ""
	}
	return t.goType, t.pkg
}

func quote(s string) string {
	return `"` + s + `"`
}
