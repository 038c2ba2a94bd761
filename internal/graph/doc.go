// Package graph provides the runtime graph: the tensor store that owns every
// tensor buffer, and the operator descriptions kernels are configured from.
//
// Kernels resolve tensors through the graph by TensorID and borrow buffers
// for the duration of a single execute call:
//
//	g := graph.NewRuntime()
//	in, _ := g.AddTensor(inDesc)
//	out, _ := g.AddTensor(outDesc)
//	op := &graph.Operator{
//	    Code:       graph.OpAveragePool2D,
//	    Inputs:     []graph.TensorID{in},
//	    Outputs:    []graph.TensorID{out},
//	    Attributes: graph.Pool2DAttributes(2, 2, 2, 2, graph.PaddingValid, graph.ActivationNone),
//	}
package graph
