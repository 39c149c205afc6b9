package apikit

import (
	"net/http"
	"slices"
	"sync"

	"gorm.io/gorm"
)

// Controller is a resource controller. It serves the actions it lists
// through the matching handler interfaces below.
type Controller interface {
	Actions() ActionSet
}

// Handler interfaces, one per action.
type (
	Indexer   interface{ Index(http.ResponseWriter, *http.Request) }
	Storer    interface{ Store(http.ResponseWriter, *http.Request) }
	Shower    interface{ Show(http.ResponseWriter, *http.Request) }
	Updater   interface{ Update(http.ResponseWriter, *http.Request) }
	Destroyer interface{ Destroy(http.ResponseWriter, *http.Request) }
)

// FormController serves the HTML form actions, create and edit.
type FormController interface {
	Create(http.ResponseWriter, *http.Request)
	Edit(http.ResponseWriter, *http.Request)
}

// Factory builds a controller for db.
type Factory func(db *gorm.DB) Controller

// Declaration is a resource route declaration.
type Declaration struct {
	Segment    string
	Controller string
	Actions    ActionSet
}

// Registry collects controller factories and resource declarations.
// Generated packages fill the default registry from init functions and
// package-level declarations.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	resources []Declaration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds the factory of a controller. A later registration of
// the same name replaces the earlier one.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Resource declares that segment is served by the named controller. It
// returns an empty value so that declarations can live in package-level
// var blocks. Repeated identical declarations are kept once.
func (r *Registry) Resource(segment, controller string, actions ActionSet) struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := Declaration{Segment: segment, Controller: controller, Actions: actions}
	if !slices.Contains(r.resources, d) {
		r.resources = append(r.resources, d)
	}
	return struct{}{}
}

// Resources returns the declarations in the order they were made.
func (r *Registry) Resources() []Declaration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.resources)
}

func (r *Registry) factory(name string) (Factory, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.factories[name]
	return f, ok
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by Register and Resource.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a controller factory to the default registry.
func Register(name string, f Factory) {
	defaultRegistry.Register(name, f)
}

// Resource adds a declaration to the default registry.
func Resource(segment, controller string, actions ActionSet) struct{} {
	return defaultRegistry.Resource(segment, controller, actions)
}
