// Package errhandler turns errors raised while serving a request into
// JSON error responses.
//
// A Handler evaluates an ordered list of rules and answers with the first
// one that matches. Errors no rule matches become a 500 response whose
// message is the error text when Debug is on.
package errhandler

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"

	"github.com/apiforge/cli/pkg/apikit/respond"
)

// Built-in response texts, used when no catalog overrides them.
const (
	msgUnauthenticated  = "Not authenticated."
	msgForbidden        = "You do not have permission to perform that action."
	msgModelNotFound    = "No query results for :model with the specified ID."
	msgRouteNotFound    = "We could not find the URL you requested."
	msgMethodNotAllowed = "The specified method for the request is not valid."
	msgConflict         = "The resource can not be deleted because it is related to another resource."
	msgUnexpected       = "An unexpected error has occurred. Please try again."
	msgBadRequest       = "The request body is not valid JSON."
)

// mysqlRowIsReferenced is ER_ROW_IS_REFERENCED_2: deleting a row that a
// foreign key still points to.
const mysqlRowIsReferenced = 1451

// Rule maps a class of errors to a response.
type Rule struct {
	Name    string
	Match   func(err error) bool
	Respond func(w http.ResponseWriter, err error, c *Catalog) error
}

// Handler renders errors as JSON responses.
type Handler struct {
	rules   []Rule
	catalog *Catalog

	// Debug exposes the text of unexpected errors.
	Debug bool
}

// New creates a handler that tries rules in order.
func New(debug bool, rules ...Rule) *Handler {
	return &Handler{rules: rules, Debug: debug}
}

// WithCatalog returns a copy of h that answers with c's messages.
func (h *Handler) WithCatalog(c *Catalog) *Handler {
	cp := *h
	cp.catalog = c
	return &cp
}

// Rules returns the rule names in evaluation order.
func (h *Handler) Rules() []string {
	names := make([]string, len(h.rules))
	for i, r := range h.rules {
		names[i] = r.Name
	}
	return names
}

// Resolve returns the first rule matching err.
func (h *Handler) Resolve(err error) (Rule, bool) {
	for _, r := range h.rules {
		if r.Match(err) {
			return r, true
		}
	}
	return Rule{}, false
}

// Render writes the response for err. Nil errors write nothing.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	var writeErr error
	if rule, ok := h.Resolve(err); ok {
		writeErr = rule.Respond(w, err, h.catalog)
	} else {
		log.Error("unhandled error", "method", r.Method, "path", r.URL.Path, "err", err)
		msg := h.catalog.Message(KeyUnexpected, msgUnexpected)
		if h.Debug {
			msg = err.Error()
		}
		writeErr = respond.ErrorResponse(w, msg, http.StatusInternalServerError)
	}
	if writeErr != nil {
		log.Error("writing error response", "method", r.Method, "path", r.URL.Path, "err", writeErr)
	}
}

var defaultHandler atomic.Pointer[Handler]

func init() {
	defaultHandler.Store(New(false, DefaultRules()...))
}

// SetDefault replaces the handler used by the package-level Render.
func SetDefault(h *Handler) {
	defaultHandler.Store(h)
}

// Default returns the handler used by the package-level Render.
func Default() *Handler {
	return defaultHandler.Load()
}

// Render writes the response for err with the default handler.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	Default().Render(w, r, err)
}

// DefaultRules returns the built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "validation",
			Match:   func(err error) bool { return as[validator.ValidationErrors](err) },
			Respond: respondValidation,
		},
		{
			Name:  "bad request",
			Match: func(err error) bool { return as[*respond.DecodeError](err) },
			Respond: func(w http.ResponseWriter, _ error, c *Catalog) error {
				return respond.ErrorResponse(w, c.Message(KeyBadRequest, msgBadRequest), http.StatusBadRequest)
			},
		},
		{
			Name:  "record not found",
			Match: func(err error) bool { return as[*RecordNotFoundError](err) },
			Respond: func(w http.ResponseWriter, err error, c *Catalog) error {
				var nf *RecordNotFoundError
				errors.As(err, &nf)
				return respond.ErrorResponse(w, c.Message(KeyModelNotFound, msgModelNotFound, "model", nf.Model), http.StatusNotFound)
			},
		},
		fixed("unauthenticated", ErrUnauthenticated, KeyUnauthenticated, msgUnauthenticated, http.StatusUnauthorized),
		fixed("forbidden", ErrForbidden, KeyForbidden, msgForbidden, http.StatusForbidden),
		fixed("route not found", ErrRouteNotFound, KeyRouteNotFound, msgRouteNotFound, http.StatusNotFound),
		fixed("method not allowed", ErrMethodNotAllowed, KeyMethodNotAllowed, msgMethodNotAllowed, http.StatusMethodNotAllowed),
		{
			Name:  "http error",
			Match: func(err error) bool { return as[*HTTPError](err) },
			Respond: func(w http.ResponseWriter, err error, _ *Catalog) error {
				var he *HTTPError
				errors.As(err, &he)
				return respond.ErrorResponse(w, he.Message, he.Status)
			},
		},
		{
			Name: "foreign key conflict",
			Match: func(err error) bool {
				var me *mysql.MySQLError
				return errors.As(err, &me) && me.Number == mysqlRowIsReferenced
			},
			Respond: func(w http.ResponseWriter, _ error, c *Catalog) error {
				return respond.ErrorResponse(w, c.Message(KeyConflict, msgConflict), http.StatusConflict)
			},
		},
	}
}

func fixed(name string, sentinel error, key, fallback string, status int) Rule {
	return Rule{
		Name:  name,
		Match: func(err error) bool { return errors.Is(err, sentinel) },
		Respond: func(w http.ResponseWriter, _ error, c *Catalog) error {
			return respond.ErrorResponse(w, c.Message(key, fallback), status)
		},
	}
}

// respondValidation answers 422 with every failed field mapped to its
// messages.
func respondValidation(w http.ResponseWriter, err error, c *Catalog) error {
	var verrs validator.ValidationErrors
	errors.As(err, &verrs)

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		attribute := strings.ReplaceAll(fe.Field(), "_", " ")
		fields[field] = append(fields[field], c.ValidationMessage(fe.Tag(), attribute, fe.Param()))
	}
	return respond.ErrorResponse(w, fields, http.StatusUnprocessableEntity)
}

// fieldPath drops the struct name from a validator namespace:
// "User.address.city" becomes "address.city".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func as[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
