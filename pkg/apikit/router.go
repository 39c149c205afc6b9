package apikit

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/apiforge/cli/pkg/apikit/errhandler"
)

// Router mounts registered resources on a ServeMux. Requests that match
// no route get JSON 404 and 405 responses from the error handler.
type Router struct {
	mux      *http.ServeMux
	db       *gorm.DB
	registry *Registry

	// paths maps a method-less pattern to the methods mounted on it.
	paths map[string][]string
	probe *http.ServeMux
}

// NewRouter creates a router over mux using the default registry.
func NewRouter(mux *http.ServeMux, db *gorm.DB) *Router {
	return &Router{
		mux:      mux,
		db:       db,
		registry: defaultRegistry,
		paths:    make(map[string][]string),
		probe:    http.NewServeMux(),
	}
}

// WithRegistry returns a copy of rt that mounts from reg.
func (rt *Router) WithRegistry(reg *Registry) *Router {
	cp := *rt
	cp.registry = reg
	return &cp
}

// Mount registers a handler for every declared action and returns the
// mounted patterns. A missing controller, a controller that does not
// implement a declared action, or two declarations claiming the same
// pattern is an error, and nothing is mounted. Mount also claims "/" for
// the fallback and must be called once.
func (rt *Router) Mount() ([]string, error) {
	type route struct {
		pattern string
		handler http.HandlerFunc
	}
	var routes []route
	seen := make(map[string]string)

	for _, d := range rt.registry.Resources() {
		factory, ok := rt.registry.factory(d.Controller)
		if !ok {
			return nil, fmt.Errorf("resource %q: controller %q is not registered", d.Segment, d.Controller)
		}
		ctrl := factory(rt.db)

		for _, a := range d.Actions.List() {
			h := handlerFor(ctrl, a)
			if h == nil {
				return nil, fmt.Errorf("resource %q: %s does not implement %s", d.Segment, d.Controller, a)
			}
			for _, p := range a.patterns(d.Segment) {
				if owner, dup := seen[p]; dup {
					return nil, fmt.Errorf("route %q declared by both %s and %s", p, owner, d.Controller)
				}
				seen[p] = d.Controller
				routes = append(routes, route{pattern: p, handler: h})
			}
		}
	}

	patterns := make([]string, 0, len(routes))
	for _, r := range routes {
		rt.mux.HandleFunc(r.pattern, r.handler)
		rt.track(r.pattern)
		patterns = append(patterns, r.pattern)
	}
	rt.mux.HandleFunc("/", rt.fallback)
	return patterns, nil
}

func (rt *Router) track(pattern string) {
	method, path, _ := strings.Cut(pattern, " ")
	if _, ok := rt.paths[path]; !ok {
		rt.probe.HandleFunc(path, func(http.ResponseWriter, *http.Request) {})
	}
	rt.paths[path] = append(rt.paths[path], method)
}

// fallback answers requests no route matched: 405 when the path exists
// under another method, 404 otherwise.
func (rt *Router) fallback(w http.ResponseWriter, r *http.Request) {
	if _, path := rt.probe.Handler(r); path != "" && path != "/" {
		if methods, ok := rt.paths[path]; ok {
			allowed := slices.Clone(methods)
			slices.Sort(allowed)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			errhandler.Render(w, r, errhandler.ErrMethodNotAllowed)
			return
		}
	}
	errhandler.Render(w, r, errhandler.ErrRouteNotFound)
}

func handlerFor(c Controller, a Action) http.HandlerFunc {
	switch a {
	case ActionIndex:
		if h, ok := c.(Indexer); ok {
			return h.Index
		}
	case ActionStore:
		if h, ok := c.(Storer); ok {
			return h.Store
		}
	case ActionShow:
		if h, ok := c.(Shower); ok {
			return h.Show
		}
	case ActionUpdate:
		if h, ok := c.(Updater); ok {
			return h.Update
		}
	case ActionDestroy:
		if h, ok := c.(Destroyer); ok {
			return h.Destroy
		}
	case ActionCreate:
		if h, ok := c.(FormController); ok {
			return h.Create
		}
	case ActionEdit:
		if h, ok := c.(FormController); ok {
			return h.Edit
		}
	}
	return nil
}
