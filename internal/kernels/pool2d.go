package kernels

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/pal"
	"github.com/born-ml/micro/internal/tensor"
)

// State is the lifecycle state of a kernel instance.
type State int

// Kernel states.
const (
	Unconfigured State = iota
	Configured
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Configured:
		return "configured"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Pool2D is one instance of a 2D pooling kernel (average, max or L2).
//
// Configure caches the pooling parameters; Execute reuses them on every
// inference. The zero value is not usable; create instances with
// NewAveragePool2D, NewMaxPool2D or NewL2Pool2D.
type Pool2D struct {
	code   graph.OpCode
	state  State
	params pal.PoolParams
}

// NewAveragePool2D creates an unconfigured average pooling kernel.
func NewAveragePool2D() *Pool2D {
	return &Pool2D{code: graph.OpAveragePool2D}
}

// NewMaxPool2D creates an unconfigured max pooling kernel.
func NewMaxPool2D() *Pool2D {
	return &Pool2D{code: graph.OpMaxPool2D}
}

// NewL2Pool2D creates an unconfigured L2 pooling kernel (float only).
func NewL2Pool2D() *Pool2D {
	return &Pool2D{code: graph.OpL2Pool2D}
}

// Op returns the operator code the kernel implements.
func (k *Pool2D) Op() graph.OpCode {
	return k.code
}

// State returns the lifecycle state.
func (k *Pool2D) State() State {
	return k.state
}

// Params returns a copy of the cached parameters.
// Only meaningful once configured.
func (k *Pool2D) Params() pal.PoolParams {
	return k.params
}

// Configure validates op against its tensors in g and caches the pooling
// parameters. Each call recomputes the parameters from scratch; on failure
// the kernel is left unconfigured.
func (k *Pool2D) Configure(op *graph.Operator, g *graph.Runtime) error {
	k.state = Unconfigured
	k.params = pal.PoolParams{}

	params, err := configurePool2D(k.code, op, g)
	if err != nil {
		return configError(op, k.code, err)
	}

	k.params = params
	k.state = Configured
	return nil
}

// Execute runs the kernel on the current contents of the input tensor and
// overwrites the output tensor's data.
func (k *Pool2D) Execute(op *graph.Operator, g *graph.Runtime) {
	if k.state != Configured {
		panic(fmt.Sprintf("%s: execute called before a successful configure", k.code))
	}

	siso, err := NewSISO(op, g)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", k.code, err))
	}
	input, output := siso.Input(), siso.Output()
	inData := g.DataByTensor(input)
	outData := g.DataByTensor(output)

	switch k.code {
	case graph.OpAveragePool2D:
		executeAveragePool2D(&k.params, input, inData, output, outData)
	case graph.OpMaxPool2D:
		executeMaxPool2D(&k.params, input, inData, output, outData)
	case graph.OpL2Pool2D:
		executeL2Pool2D(&k.params, input, inData, output, outData)
	default:
		panic(fmt.Sprintf("pool2d: unknown operator %s", k.code))
	}
}

// pool2DOptions are the parsed attributes of a pooling operator.
type pool2DOptions struct {
	filterH, filterW int
	strideH, strideW int
	padding          graph.Padding
	activation       graph.Activation
}

func parsePool2DOptions(op *graph.Operator) (pool2DOptions, error) {
	var opts pool2DOptions

	ints := []struct {
		name string
		dst  *int
	}{
		{graph.AttrFilterHeight, &opts.filterH},
		{graph.AttrFilterWidth, &opts.filterW},
		{graph.AttrStrideH, &opts.strideH},
		{graph.AttrStrideW, &opts.strideW},
	}
	for _, attr := range ints {
		if !graph.HasAttr(op, attr.name) {
			return opts, errors.Wrapf(ErrInvalidAttribute, "missing %s", attr.name)
		}
		v := graph.GetAttrInt(op, attr.name, 0)
		if v <= 0 {
			return opts, errors.Wrapf(ErrInvalidAttribute, "%s must be positive, got %d", attr.name, v)
		}
		*attr.dst = int(v)
	}

	if !graph.HasAttr(op, graph.AttrPadding) {
		return opts, errors.Wrapf(ErrInvalidAttribute, "missing %s", graph.AttrPadding)
	}
	padding, err := graph.ParsePadding(graph.GetAttrString(op, graph.AttrPadding, ""))
	if err != nil {
		return opts, errors.Wrapf(ErrInvalidAttribute, "%s: %v", graph.AttrPadding, err)
	}
	opts.padding = padding

	act, err := graph.ParseActivation(graph.GetAttrString(op, graph.AttrFusedActivation, "NONE"))
	if err != nil {
		return opts, errors.Wrapf(ErrInvalidAttribute, "%s: %v", graph.AttrFusedActivation, err)
	}
	opts.activation = act

	return opts, nil
}

// supportsType reports whether the kernel has an execution path for dtype in
// this build.
func supportsType(code graph.OpCode, dtype tensor.DataType) bool {
	switch dtype {
	case tensor.Float32:
		return floatKernels
	case tensor.Int8, tensor.Int16:
		return quantKernels && code != graph.OpL2Pool2D
	default:
		return false
	}
}

// configurePool2D is the configure step shared by the pooling family.
func configurePool2D(code graph.OpCode, op *graph.Operator, g *graph.Runtime) (pal.PoolParams, error) {
	var params pal.PoolParams

	if op.Code != code {
		return params, errors.Wrapf(ErrOpMismatch, "got %s", op.Code)
	}

	siso, err := NewSISO(op, g)
	if err != nil {
		return params, err
	}
	opts, err := parsePool2DOptions(op)
	if err != nil {
		return params, err
	}

	input, output := siso.Input(), siso.Output()
	inShape, outShape := input.Shape(), output.Shape()
	if inShape.Rank() != 4 || outShape.Rank() != 4 {
		return params, errors.Wrapf(ErrShapeMismatch, "expected 4D NHWC tensors, got %v and %v", inShape, outShape)
	}

	dtype := input.DType()
	if dtype != output.DType() {
		return params, errors.Wrapf(ErrTypeMismatch, "input %s, output %s", dtype, output.DType())
	}
	if !supportsType(code, dtype) {
		return params, errors.Wrapf(ErrUnsupportedType, "%s", dtype)
	}

	if inShape[tensor.DimBatch] != outShape[tensor.DimBatch] {
		return params, errors.Wrapf(ErrShapeMismatch, "batch %d vs %d", inShape[tensor.DimBatch], outShape[tensor.DimBatch])
	}
	if inShape[tensor.DimChannels] != outShape[tensor.DimChannels] {
		return params, errors.Wrapf(ErrShapeMismatch, "channels %d vs %d", inShape[tensor.DimChannels], outShape[tensor.DimChannels])
	}

	outH := OutputSize(opts.padding, inShape[tensor.DimHeight], opts.filterH, opts.strideH)
	outW := OutputSize(opts.padding, inShape[tensor.DimWidth], opts.filterW, opts.strideW)
	if outH <= 0 || outW <= 0 {
		return params, errors.Wrapf(ErrShapeMismatch, "filter %dx%d does not fit input %v with %s padding",
			opts.filterH, opts.filterW, inShape, opts.padding)
	}
	want := tensor.Shape{inShape[tensor.DimBatch], outH, outW, inShape[tensor.DimChannels]}
	if !want.Equal(outShape) {
		return params, errors.Wrapf(ErrShapeMismatch, "output is %v, expected %v", outShape, want)
	}

	params.FilterHeight, params.FilterWidth = opts.filterH, opts.filterW
	params.StrideHeight, params.StrideWidth = opts.strideH, opts.strideW
	params.Padding.Top, params.Padding.Bottom = ComputePadding(opts.strideH, inShape[tensor.DimHeight], opts.filterH, outH)
	params.Padding.Left, params.Padding.Right = ComputePadding(opts.strideW, inShape[tensor.DimWidth], opts.filterW, outW)
	params.FloatActivationMin, params.FloatActivationMax = floatActivationRange(opts.activation)

	if dtype.IsQuantized() {
		if err := configureQuantization(&params, dtype, input, output, opts.activation); err != nil {
			return pal.PoolParams{}, err
		}
	}

	logger().Debug("configured kernel",
		"op", code.String(),
		"name", op.Name,
		"dtype", dtype.String(),
		"input", []int(inShape),
		"output", []int(outShape),
		"filter", fmt.Sprintf("%dx%d", opts.filterH, opts.filterW),
		"stride", fmt.Sprintf("%dx%d", opts.strideH, opts.strideW),
		"padding", opts.padding.String(),
		"activation", opts.activation.String())

	return params, nil
}

// configureQuantization fills the quantized clamp and requantization fields.
func configureQuantization(params *pal.PoolParams, dtype tensor.DataType, input, output *tensor.Descriptor, act graph.Activation) error {
	inQ, ok := input.Quantization()
	if !ok {
		return errors.Wrapf(ErrQuantization, "input %s has no quantization parameters", dtype)
	}
	outQ, ok := output.Quantization()
	if !ok {
		return errors.Wrapf(ErrQuantization, "output %s has no quantization parameters", dtype)
	}
	if dtype == tensor.Int16 && (inQ.ZeroPoint != 0 || outQ.ZeroPoint != 0) {
		return errors.Wrapf(ErrQuantization, "int16 tensors must be symmetric, got zero points %d and %d",
			inQ.ZeroPoint, outQ.ZeroPoint)
	}

	params.QuantizedActivationMin, params.QuantizedActivationMax = quantizedActivationRange(act, dtype, outQ)

	params.InputZeroPoint, params.OutputZeroPoint = inQ.ZeroPoint, outQ.ZeroPoint
	if inQ != outQ {
		params.Requantize = true
		params.Multiplier = float64(inQ.Scale) / float64(outQ.Scale)
	}
	return nil
}

func unsupportedType(code graph.OpCode, dtype tensor.DataType) string {
	return fmt.Sprintf("%s: unsupported element type %s", code, dtype)
}
