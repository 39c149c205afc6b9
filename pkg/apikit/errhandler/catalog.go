package errhandler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Message keys of messages.yaml.
const (
	KeyUnauthenticated  = "unauthenticated"
	KeyForbidden        = "forbidden"
	KeyModelNotFound    = "model_not_found"
	KeyRouteNotFound    = "route_not_found"
	KeyMethodNotAllowed = "method_not_allowed"
	KeyConflict         = "conflict"
	KeyUnexpected       = "unexpected"
	KeyBadRequest       = "bad_request"
)

// validationDefault is the validation.yaml entry used for tags without
// their own message.
const validationDefault = "default"

// Catalog holds the translated messages of one locale. The zero value
// and nil both fall back to the built-in English text.
type Catalog struct {
	Messages   map[string]string
	Validation map[string]string
}

// LoadCatalog reads messages.yaml and validation.yaml from dir. A missing
// file leaves its map empty.
func LoadCatalog(dir string) (*Catalog, error) {
	c := &Catalog{}
	var err error
	if c.Messages, err = readMessages(filepath.Join(dir, "messages.yaml")); err != nil {
		return nil, err
	}
	if c.Validation, err = readMessages(filepath.Join(dir, "validation.yaml")); err != nil {
		return nil, err
	}
	return c, nil
}

func readMessages(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m := map[string]string{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// Message returns the message for key with :name placeholders replaced
// from pairs, or fallback when the key is unknown.
func (c *Catalog) Message(key, fallback string, pairs ...string) string {
	msg := fallback
	if c != nil {
		if m, ok := c.Messages[key]; ok {
			msg = m
		}
	}
	return replace(msg, pairs)
}

// ValidationMessage returns the message for a failed validation tag,
// looked up in order: the catalog's entry for tag, the built-in entry for
// tag, the catalog's default, the built-in default.
func (c *Catalog) ValidationMessage(tag, attribute, param string) string {
	msg, ok := c.validation(tag)
	if !ok {
		msg, ok = builtinValidation[tag]
	}
	if !ok {
		msg, ok = c.validation(validationDefault)
	}
	if !ok {
		msg = builtinValidation[validationDefault]
	}
	return replace(msg, []string{"attribute", attribute, "param", param})
}

func (c *Catalog) validation(tag string) (string, bool) {
	if c == nil {
		return "", false
	}
	m, ok := c.Validation[tag]
	return m, ok
}

func replace(msg string, pairs []string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		msg = strings.ReplaceAll(msg, ":"+pairs[i], pairs[i+1])
	}
	return msg
}

var builtinValidation = map[string]string{
	"required":        "The :attribute field is required.",
	"email":           "The :attribute must be a valid email address.",
	"min":             "The :attribute must be at least :param.",
	"max":             "The :attribute may not be greater than :param.",
	validationDefault: "The :attribute field is invalid.",
}
