// Package naming derives the canonical name forms of an entity from the
// raw name given on the command line.
package naming

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/apiforge/cli/internal/errors"
)

// Forms holds every name form derived from a raw entity name.
type Forms struct {
	// TypeName is the upper-camel-case type name (e.g., "OrderItem").
	TypeName string

	// VariableName is the lower-camel-case variable name (e.g., "orderItem").
	VariableName string

	// TableNameSingular is the snake-case name (e.g., "order_item").
	TableNameSingular string

	// TableNamePlural is the pluralized snake-case name (e.g., "order_items").
	TableNamePlural string

	// RouteSegment is the URL segment the resource is served under.
	RouteSegment string

	// PackageName is the lowercase, separator-free Go package name
	// (e.g., "orderitem").
	PackageName string
}

// Deriver derives name forms using an irregular-plural table.
type Deriver struct {
	irregular map[string]string
}

var defaultDeriver = NewDeriver(nil)

// NewDeriver creates a deriver whose irregular table is the built-in one
// extended (and overridden) by extra.
func NewDeriver(extra map[string]string) *Deriver {
	table := make(map[string]string, len(builtinIrregulars)+len(extra))
	for k, v := range builtinIrregulars {
		table[k] = v
	}
	for k, v := range extra {
		table[strings.ToLower(k)] = strings.ToLower(v)
	}
	return &Deriver{irregular: table}
}

// Derive derives name forms with the built-in irregular table.
func Derive(raw string) (Forms, error) {
	return defaultDeriver.Derive(raw)
}

// generatedIdentifiers are the identifiers generated controllers and
// transformers already declare or import. A variable name equal to one of
// them would shadow it.
var generatedIdentifiers = map[string]bool{
	"c": true, "w": true, "r": true, "err": true, "items": true,
	"http": true, "gorm": true, "apikit": true, "errhandler": true, "respond": true,
	"controllers": true, "models": true, "transformers": true,
}

// Derive computes all name forms for raw. It has no side effects and
// always yields the same result for the same input.
//
// Forms used as Go identifiers never collide with keywords: a keyword
// package name gets a "pkg" prefix and a keyword variable name (or one
// the generated code already uses) gets an "Item" suffix, so "package"
// yields package "pkgpackage" and variable "packageItem".
func (d *Deriver) Derive(raw string) (Forms, error) {
	forms, err := d.derive(raw)
	if err != nil {
		return Forms{}, err
	}
	if token.IsKeyword(forms.PackageName) {
		forms.PackageName = "pkg" + forms.PackageName
	}
	if token.IsKeyword(forms.VariableName) || generatedIdentifiers[forms.VariableName] {
		forms.VariableName += "Item"
	}
	return forms, nil
}

// derive computes the forms without keyword escaping.
func (d *Deriver) derive(raw string) (Forms, error) {
	segs, err := Segments(raw)
	if err != nil {
		return Forms{}, err
	}

	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	var typeName, varName, pkg strings.Builder
	snake := make([]string, len(segs))
	for i, s := range segs {
		l := lower.String(s)
		snake[i] = l
		pkg.WriteString(l)
		typeName.WriteString(title.String(s))
		if i == 0 {
			varName.WriteString(l)
		} else {
			varName.WriteString(title.String(s))
		}
	}

	singular := strings.Join(snake, "_")
	plural := d.Pluralize(singular)

	return Forms{
		TypeName:          typeName.String(),
		VariableName:      varName.String(),
		TableNameSingular: singular,
		TableNamePlural:   plural,
		RouteSegment:      plural,
		PackageName:       pkg.String(),
	}, nil
}

// Segments splits raw into words on separators and case boundaries.
// "order-item", "order_item", "OrderItem" and "orderItem" all yield
// ["order", "item"] (case preserved); "HTTPServer" yields ["HTTP", "Server"].
func Segments(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &oerrors.InvalidNameError{Name: raw, Reason: "name is empty"}
	}

	hasLetter := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r), isSeparator(r):
		default:
			return nil, &oerrors.InvalidNameError{Name: raw, Reason: "contains invalid character " + quoteRune(r)}
		}
	}
	if !hasLetter {
		return nil, &oerrors.InvalidNameError{Name: raw, Reason: "must contain at least one letter"}
	}

	runes := []rune(trimmed)
	var segs []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			segs = append(segs, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	// Generated identifiers must start with a letter.
	if first := []rune(segs[0])[0]; !unicode.IsLetter(first) {
		return nil, &oerrors.InvalidNameError{Name: raw, Reason: "must start with a letter"}
	}

	return segs, nil
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.' || r == ' '
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}
