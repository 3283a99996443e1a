// Package registry lets callers select a concrete error-correction
// protocol and factory builder pair by name, the way the CLI and HTTP API
// need to turn a "--protocol surface-code" flag into actual estimator
// collaborators.
package registry

import (
	"fmt"
	"sync"

	"github.com/kegliz/qre/qc/factorybuilder"
	"github.com/kegliz/qre/qc/protocol"
)

// Backend bundles a named error-correction protocol, its qubit model and
// its factory builder: everything qc/estimator.New needs besides the
// algorithm overhead and error budget.
type Backend struct {
	ECP     *protocol.SurfaceCode
	Qubit   *protocol.SuperconductingQubit
	Builder *factorybuilder.Distillation
}

// BackendFactory builds a Backend for a given physical (Clifford) gate
// error rate.
type BackendFactory func(cliffordErrorRate float64) *Backend

// Registry is a thread-safe name -> BackendFactory map.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]BackendFactory)}
}

// Register adds factory under name, failing if name is already taken.
func (r *Registry) Register(name string, factory BackendFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("registry: backend %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is like Register but panics on error; intended for package
// init() calls registering built-in backends.
func (r *Registry) MustRegister(name string, factory BackendFactory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Create builds a Backend from the factory registered under name.
func (r *Registry) Create(name string, cliffordErrorRate float64) (*Backend, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: no backend registered under %q", name)
	}
	return factory(cliffordErrorRate), nil
}

// ListBackends returns the names of every registered backend.
func (r *Registry) ListBackends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.MustRegister("surface-code", func(cliffordErrorRate float64) *Backend {
		qubit := protocol.NewSuperconductingQubit(cliffordErrorRate)
		return &Backend{
			ECP:   protocol.NewSurfaceCode(0.03, 0.01, 99, 100),
			Qubit: qubit,
			Builder: &factorybuilder.Distillation{
				PhysicalQubitsPerUnitCell: 100,
				RoundsPerUnitCell:         50,
				InputErrorRate:            cliffordErrorRate,
			},
		}
	})
}

// Create builds a Backend from the default registry.
func Create(name string, cliffordErrorRate float64) (*Backend, error) {
	return defaultRegistry.Create(name, cliffordErrorRate)
}

// ListBackends lists the backends registered in the default registry.
func ListBackends() []string {
	return defaultRegistry.ListBackends()
}

// Register adds a backend to the default registry.
func Register(name string, factory BackendFactory) error {
	return defaultRegistry.Register(name, factory)
}
