package schema

import "fmt"

// Module is the interface domain packages implement to contribute their
// entity types to a registry.
type Module interface {
	Register(r *Registry)
}

// ModuleFunc adapts a plain function to the Module interface.
type ModuleFunc func(r *Registry)

// Register implements Module.
func (f ModuleFunc) Register(r *Registry) {
	f(r)
}

// Registry holds the entity types known to a single application instance,
// keyed by name. It is populated once at startup and read-only afterwards.
type Registry struct {
	entities map[string]*EntityType
	names    []string // registration order
}

// NewRegistry creates and initializes a new, empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]*EntityType),
	}
}

// Add registers an entity type. Registering two types with the same name is
// an error.
func (r *Registry) Add(et *EntityType) error {
	if _, exists := r.entities[et.Name()]; exists {
		return fmt.Errorf("entity type %q is already registered", et.Name())
	}
	r.entities[et.Name()] = et
	r.names = append(r.names, et.Name())
	return nil
}

// MustAdd is like Add but panics on a duplicate registration.
func (r *Registry) MustAdd(et *EntityType) {
	if err := r.Add(et); err != nil {
		panic(err)
	}
}

// Lookup finds a registered entity type by name.
func (r *Registry) Lookup(name string) (*EntityType, bool) {
	et, ok := r.entities[name]
	return et, ok
}

// Names returns the registered entity type names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
