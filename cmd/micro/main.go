// Package main provides the micro kernels CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/kernels"
	"github.com/born-ml/micro/internal/pal"
	"github.com/born-ml/micro/internal/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "micro: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "Born micro kernels %s\n", version)
		return nil
	case "ops":
		return runOps(stdout)
	case "pool":
		return runPool(args[1:], stdout, stderr)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Born micro kernels - pooling operator kernels for small devices")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  ops        List registered kernels and the PAL implementation")
	fmt.Fprintln(w, "  pool       Run one pooling operator on a generated input")
}

func runOps(w io.Writer) error {
	reg := kernels.NewRegistry()
	fmt.Fprintf(w, "PAL: %s\n", pal.Implementation())
	for _, op := range reg.SupportedOps() {
		fmt.Fprintf(w, "  %s\n", op)
	}
	return nil
}

// poolConfig holds the pool command's flags.
type poolConfig struct {
	op         string
	dtype      string
	height     int
	width      int
	channels   int
	filter     int
	stride     int
	padding    string
	activation string
	scale      float64
	zeroPoint  int
	fill       string
	value      float64
	generic    bool
	dequant    bool
	verbose    bool
}

func runPool(args []string, stdout, stderr io.Writer) error {
	var cfg poolConfig
	fs := flag.NewFlagSet("pool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.op, "op", "avg", "pooling kind: avg, max or l2")
	fs.StringVar(&cfg.dtype, "dtype", "float32", "element type: float32, int8 or int16")
	fs.IntVar(&cfg.height, "h", 4, "input height")
	fs.IntVar(&cfg.width, "w", 4, "input width")
	fs.IntVar(&cfg.channels, "c", 1, "input channels")
	fs.IntVar(&cfg.filter, "filter", 2, "square window size")
	fs.IntVar(&cfg.stride, "stride", 2, "stride in both dimensions")
	fs.StringVar(&cfg.padding, "padding", "VALID", "padding policy: SAME or VALID")
	fs.StringVar(&cfg.activation, "act", "NONE", "fused activation: NONE, RELU, RELU6, RELU_N1_TO_1")
	fs.Float64Var(&cfg.scale, "scale", 1, "quantization scale (int8/int16)")
	fs.IntVar(&cfg.zeroPoint, "zp", 0, "quantization zero point (int8/int16)")
	fs.StringVar(&cfg.fill, "fill", "ramp", "input fill: ramp or const")
	fs.Float64Var(&cfg.value, "value", 1, "value for -fill const")
	fs.BoolVar(&cfg.dequant, "real", false, "print quantized outputs as dequantized real values")
	fs.BoolVar(&cfg.generic, "generic", false, "force the generic PAL implementation")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	kernels.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	if cfg.generic {
		pal.UseGeneric()
	}

	return pool(&cfg, stdout)
}

func pool(cfg *poolConfig, w io.Writer) error {
	code, err := parseOp(cfg.op)
	if err != nil {
		return err
	}
	dtype, err := parseDType(cfg.dtype)
	if err != nil {
		return err
	}
	padding, err := graph.ParsePadding(strings.ToUpper(cfg.padding))
	if err != nil {
		return err
	}
	act, err := graph.ParseActivation(strings.ToUpper(cfg.activation))
	if err != nil {
		return err
	}

	outH := kernels.OutputSize(padding, cfg.height, cfg.filter, cfg.stride)
	outW := kernels.OutputSize(padding, cfg.width, cfg.filter, cfg.stride)

	var quant *tensor.Quantization
	if dtype.IsQuantized() {
		quant = &tensor.Quantization{Scale: float32(cfg.scale), ZeroPoint: int32(cfg.zeroPoint)}
	}
	in, err := tensor.NewDescriptor("input", dtype, tensor.Shape{1, cfg.height, cfg.width, cfg.channels}, quant)
	if err != nil {
		return err
	}
	out, err := tensor.NewDescriptor("output", dtype, tensor.Shape{1, outH, outW, cfg.channels}, quant)
	if err != nil {
		return err
	}

	g := graph.NewRuntime()
	defer g.Close()
	inID, err := g.AddTensor(in)
	if err != nil {
		return err
	}
	outID, err := g.AddTensor(out)
	if err != nil {
		return err
	}

	fillInput(g.DataByTensor(in), cfg)

	op := &graph.Operator{
		Name:       "cli",
		Code:       code,
		Inputs:     []graph.TensorID{inID},
		Outputs:    []graph.TensorID{outID},
		Attributes: graph.Pool2DAttributes(cfg.filter, cfg.filter, cfg.stride, cfg.stride, padding, act),
	}

	k, err := kernels.NewRegistry().New(code)
	if err != nil {
		return err
	}
	if err := k.Configure(op, g); err != nil {
		return err
	}
	k.Execute(op, g)

	fmt.Fprintf(w, "%s %s -> %s\n", code, in, out)
	printNHWC(w, g.DataByTensor(out), out, cfg.dequant)
	return nil
}

func parseOp(s string) (graph.OpCode, error) {
	switch strings.ToLower(s) {
	case "avg", "average":
		return graph.OpAveragePool2D, nil
	case "max":
		return graph.OpMaxPool2D, nil
	case "l2":
		return graph.OpL2Pool2D, nil
	default:
		return 0, fmt.Errorf("unknown pooling kind %q", s)
	}
}

func parseDType(s string) (tensor.DataType, error) {
	switch strings.ToLower(s) {
	case "float32", "f32":
		return tensor.Float32, nil
	case "int8", "s8":
		return tensor.Int8, nil
	case "int16", "s16":
		return tensor.Int16, nil
	default:
		return 0, fmt.Errorf("unknown element type %q", s)
	}
}

// fillInput writes a ramp (0, 1, 2, ...) or a constant into buf.
// Integer values are stored as raw quantized levels, saturated to the type.
func fillInput(buf tensor.Buffer, cfg *poolConfig) {
	at := func(i int) float64 {
		if cfg.fill == "const" {
			return cfg.value
		}
		return float64(i)
	}

	switch buf.DType() {
	case tensor.Float32:
		data := buf.AsFloat32()
		for i := range data {
			data[i] = float32(at(i))
		}
	case tensor.Int8:
		data := buf.AsInt8()
		for i := range data {
			data[i] = int8(saturate(at(i), tensor.Int8))
		}
	case tensor.Int16:
		data := buf.AsInt16()
		for i := range data {
			data[i] = int16(saturate(at(i), tensor.Int16))
		}
	}
}

func saturate(v float64, dtype tensor.DataType) int32 {
	lo, hi := dtype.Range()
	switch {
	case v < float64(lo):
		return lo
	case v > float64(hi):
		return hi
	}
	return int32(v)
}

// printNHWC prints each channel of the first batch as a height x width grid.
// With dequant set, quantized levels are printed as dequantized values.
func printNHWC(w io.Writer, buf tensor.Buffer, d *tensor.Descriptor, dequant bool) {
	shape := d.Shape()
	h, wd, c := shape[tensor.DimHeight], shape[tensor.DimWidth], shape[tensor.DimChannels]
	q, quantized := d.Quantization()

	level := func(v int32) string {
		if dequant && quantized {
			return fmt.Sprintf("%g", q.Dequantize(v))
		}
		return fmt.Sprintf("%d", v)
	}
	value := func(i int) string {
		switch buf.DType() {
		case tensor.Float32:
			return fmt.Sprintf("%g", buf.AsFloat32()[i])
		case tensor.Int8:
			return level(int32(buf.AsInt8()[i]))
		case tensor.Int16:
			return level(int32(buf.AsInt16()[i]))
		default:
			return "?"
		}
	}

	for ch := 0; ch < c; ch++ {
		fmt.Fprintf(w, "channel %d:\n", ch)
		for y := 0; y < h; y++ {
			row := make([]string, wd)
			for x := 0; x < wd; x++ {
				row[x] = value(shape.Offset4D(0, y, x, ch))
			}
			fmt.Fprintf(w, "  [%s]\n", strings.Join(row, " "))
		}
	}
}
