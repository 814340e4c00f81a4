// File: lift.go
// Role: Tape-to-graph lifting. Builds a CircuitGraph from a linear
//       qtape.Tape, assigning each operation an integer order and each
//       resulting measurement node (after tensor-product splitting) an
//       order beyond the last operation.
package qgraph

import (
	"github.com/katalvlaran/qcut/dfs"
	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtape"
)

// Lift converts tape into a CircuitGraph. Tensor-product measurements
// are split into one independent single-Pauli measurement node per
// factor — the original shared order and tensor identity are discarded,
// since a cut can separate the factors into different fragments and
// each factor must stand on its own from that point on.
//
// Lift runs a cycle-detection pass (via dfs.DetectCycles) over the
// resulting backbone graph before returning: a per-wire chain plus
// terminal measurements can never legitimately contain a cycle, so a
// detected cycle always indicates a malformed input tape.
func Lift(tape *qtape.Tape) (*CircuitGraph, error) {
	cg := New()
	latest := make(map[qop.Wire]qop.Operator)
	order := 0

	for _, op := range tape.Operations {
		qop.SetOrder(op, float64(order))
		cg.AddNode(op)
		for _, w := range op.Wires() {
			if prev, ok := latest[w]; ok {
				if err := cg.AddEdge(prev, op, w); err != nil {
					return nil, err
				}
			}
			latest[w] = op
		}
		order++
	}

	for _, m := range tape.Measurements {
		for _, split := range m.SplitTensorProduct() {
			qop.SetOrder(split, float64(order))
			order++
			cg.AddNode(split)
			for _, w := range split.Wires() {
				prev, ok := latest[w]
				if !ok {
					continue
				}
				if err := cg.AddEdge(prev, split, w); err != nil {
					return nil, err
				}
			}
		}
	}

	cyclic, _, err := dfs.DetectCycles(cg.g)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, ErrCyclicGraph
	}

	return cg, nil
}
