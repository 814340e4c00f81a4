// File: cut.go
// Role: Wire-cut expansion. Replaces every WireCut node in a
//       CircuitGraph in place with a (MeasureNode, PrepareNode) pair per
//       wire it spans, splicing the cut's predecessors and successors on
//       each wire to the new pair.
// Determinism:
//   - The measure node takes the cut's own order; the prepare node
//     takes order+0.5, which linearises the pair without renumbering
//     any other node in the graph.
package cut

import (
	"github.com/katalvlaran/qcut/qgraph"
	"github.com/katalvlaran/qcut/qop"
)

// Expand replaces every WireCut node in cg with its expansion (the
// node's own Expansion if set, otherwise qop.SimpleExpansion). cg is
// mutated in place.
func Expand(cg *qgraph.CircuitGraph) error {
	for _, op := range cg.Nodes() {
		wc, ok := op.(*qop.WireCut)
		if !ok {
			continue
		}
		if err := expandOne(cg, wc); err != nil {
			return err
		}
	}
	return nil
}

// expandOne expands a single WireCut node into its measure/prepare pair.
func expandOne(cg *qgraph.CircuitGraph, c *qop.WireCut) error {
	wires := c.Wires()

	// Step 1: snapshot predecessors-by-wire and successors-by-wire.
	predecessors := make(map[qop.Wire]qop.Operator, len(wires))
	successors := make(map[qop.Wire]qop.Operator, len(wires))
	for _, w := range wires {
		if p, ok := cg.PredecessorOnWire(c, w); ok {
			predecessors[w] = p
		}
		if s, ok := cg.SuccessorOnWire(c, w); ok {
			successors[w] = s
		}
	}

	// Step 2: obtain the expansion.
	pairs := c.ResolveExpansion()(wires)
	if len(pairs) != len(wires) {
		return ErrExpansionShapeMismatch
	}
	for _, p := range pairs {
		if len(p.Measure.Terms) == 0 || len(p.Prepare.Terms) == 0 {
			return qop.ErrEmptyTerms
		}
	}

	// Step 3: remove c, insert the pair per wire, and reconnect.
	order := c.Order()
	cg.RemoveNode(c)

	for i, w := range wires {
		pair := pairs[i]
		qop.SetOrder(pair.Measure, order)
		qop.SetOrder(pair.Prepare, order+0.5)

		cg.AddNode(pair.Measure)
		cg.AddNode(pair.Prepare)
		if err := cg.AddEdge(pair.Measure, pair.Prepare, w); err != nil {
			return err
		}
		if pred, ok := predecessors[w]; ok {
			if err := cg.AddEdge(pred, pair.Measure, w); err != nil {
				return err
			}
		}
		if succ, ok := successors[w]; ok {
			if err := cg.AddEdge(pair.Prepare, succ, w); err != nil {
				return err
			}
		}
	}

	return nil
}
