package graph

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/born-ml/micro/internal/tensor"
)

// TensorID indexes a tensor in the runtime graph's arena.
type TensorID int

// Runtime owns the tensors of one loaded graph and their backing buffers.
//
// Kernels get non-owning views of the buffers through DataByTensor. Views are
// valid until Close; they must not be retained past the call that obtained them,
// since the buffers may be reused between inferences.
type Runtime struct {
	tensors []*tensor.Descriptor
	buffers [][]byte
	index   map[*tensor.Descriptor]TensorID
	closed  bool
}

// NewRuntime creates an empty runtime graph.
func NewRuntime() *Runtime {
	return &Runtime{
		index: make(map[*tensor.Descriptor]TensorID),
	}
}

// AddTensor registers a descriptor and allocates its zero-initialised buffer.
func (g *Runtime) AddTensor(d *tensor.Descriptor) (TensorID, error) {
	if g.closed {
		return 0, errors.New("add tensor: runtime graph is closed")
	}
	if d == nil {
		return 0, errors.New("add tensor: nil descriptor")
	}
	if _, ok := g.index[d]; ok {
		return 0, errors.Errorf("add tensor: %s already registered", d)
	}

	id := TensorID(len(g.tensors))
	g.tensors = append(g.tensors, d)
	g.buffers = append(g.buffers, allocAligned(d.ByteSize()))
	g.index[d] = id
	return id, nil
}

// Tensor resolves a tensor id to its descriptor.
func (g *Runtime) Tensor(id TensorID) (*tensor.Descriptor, error) {
	if id < 0 || int(id) >= g.NumTensors() {
		return nil, errors.Errorf("tensor %d out of range [0, %d)", id, g.NumTensors())
	}
	return g.tensors[id], nil
}

// NumTensors returns the number of registered tensors.
func (g *Runtime) NumTensors() int {
	return len(g.tensors)
}

// DataByTensor returns a borrowed view of the tensor's backing buffer.
// Panics if the descriptor does not belong to this graph or the graph is closed.
func (g *Runtime) DataByTensor(d *tensor.Descriptor) tensor.Buffer {
	if g.closed {
		panic("data by tensor: runtime graph is closed")
	}
	id, ok := g.index[d]
	if !ok {
		panic(fmt.Sprintf("data by tensor: %s does not belong to this graph", d))
	}
	return tensor.NewBuffer(g.buffers[id], d.DType(), d.NumElements())
}

// Close releases every buffer. Any later buffer access panics.
func (g *Runtime) Close() {
	g.closed = true
	for i := range g.buffers {
		g.buffers[i] = nil
	}
}

// allocAligned returns a zeroed byte slice backed by 8-byte aligned memory,
// so typed views of any supported element type are aligned.
func allocAligned(size int) []byte {
	if size == 0 {
		return []byte{}
	}
	words := make([]uint64, (size+7)/8)
	//nolint:gosec // reinterpret aligned words as bytes, length bounded by allocation
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
}
