package kernels

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/born-ml/micro/internal/graph"
)

// Kernel is the two-phase contract every operator kernel implements.
type Kernel interface {
	// Configure validates op against g and caches derived parameters.
	Configure(op *graph.Operator, g *graph.Runtime) error
	// Execute runs the operator once. Panics if not configured.
	Execute(op *graph.Operator, g *graph.Runtime)
}

// Factory creates a fresh, unconfigured kernel instance.
type Factory func() Kernel

// Registry maps operator codes to kernel factories.
type Registry struct {
	factories map[graph.OpCode]Factory
}

// NewRegistry creates a registry with all supported kernels.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[graph.OpCode]Factory),
	}
	r.registerPool2D()
	return r
}

// registerPool2D adds the pooling family to the registry.
func (r *Registry) registerPool2D() {
	r.Register(graph.OpAveragePool2D, func() Kernel { return NewAveragePool2D() })
	r.Register(graph.OpMaxPool2D, func() Kernel { return NewMaxPool2D() })
	r.Register(graph.OpL2Pool2D, func() Kernel { return NewL2Pool2D() })
}

// Register adds or replaces the factory for an operator code.
func (r *Registry) Register(code graph.OpCode, factory Factory) {
	r.factories[code] = factory
}

// Get returns the factory for an operator code.
func (r *Registry) Get(code graph.OpCode) (Factory, bool) {
	f, ok := r.factories[code]
	return f, ok
}

// New creates an unconfigured kernel instance for code.
func (r *Registry) New(code graph.OpCode) (Kernel, error) {
	f, ok := r.Get(code)
	if !ok {
		return nil, errors.Errorf("unsupported operator: %s", code)
	}
	logger().Debug("created kernel", "op", code.String())
	return f(), nil
}

// SupportedOps returns the registered operator codes in ascending order.
func (r *Registry) SupportedOps() []graph.OpCode {
	ops := make([]graph.OpCode, 0, len(r.factories))
	for op := range r.factories {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
