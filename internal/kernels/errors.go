package kernels

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/micro/internal/graph"
)

// Configuration error causes. Every error returned by Configure matches
// ErrConfiguration and exactly one of the causes below.
var (
	ErrConfiguration    = errors.New("invalid operator configuration")
	ErrOpMismatch       = errors.New("operator code does not match kernel")
	ErrTopology         = errors.New("operator topology mismatch")
	ErrInvalidAttribute = errors.New("invalid operator attribute")
	ErrTypeMismatch     = errors.New("input and output element types differ")
	ErrUnsupportedType  = errors.New("unsupported element type")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrQuantization     = errors.New("invalid quantization parameters")
)

// ConfigError reports why an operator failed to configure.
type ConfigError struct {
	Op   graph.OpCode // Kernel operator code
	Name string       // Operator name (optional)
	Err  error        // Wrapped cause
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("configure %s %q: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("configure %s: %v", e.Op, e.Err)
}

// Unwrap returns the cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports ErrConfiguration membership.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(op *graph.Operator, code graph.OpCode, err error) *ConfigError {
	return &ConfigError{Op: code, Name: op.Name, Err: err}
}
