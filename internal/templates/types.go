// Package templates resolves artifact templates and renders them by
// textual placeholder substitution.
package templates

// ID identifies one artifact template.
type ID string

const (
	// Definition renders the domain-object (model) definition.
	Definition ID = "definition"

	// Controller renders the per-entity HTTP controller.
	Controller ID = "controller"

	// Route renders the block appended to the shared routes file.
	Route ID = "route"

	// Transform renders the per-entity response transformer.
	Transform ID = "transform"
)

// IDs returns all template ids in generation order.
func IDs() []ID {
	return []ID{Definition, Controller, Route, Transform}
}

// IsValid reports whether id names a known template.
func (id ID) IsValid() bool {
	switch id {
	case Definition, Controller, Route, Transform:
		return true
	default:
		return false
	}
}

// Description returns a one-line description of the template.
func (id ID) Description() string {
	switch id {
	case Definition:
		return "Domain model definition"
	case Controller:
		return "Resource controller"
	case Route:
		return "Route registration block"
	case Transform:
		return "Response transformer"
	default:
		return ""
	}
}

// fileName returns the stub file backing the template.
func (id ID) fileName() string {
	return string(id) + ".stub"
}
