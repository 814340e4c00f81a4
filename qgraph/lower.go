// File: lower.go
// Role: Graph-to-tape lowering. Linearises a fragment's nodes by order,
//       remaps wires through a wire_map that starts as
//       identity, and allocates a fresh wire whenever a MeasureNode is
//       emitted — so the post-measure portion of a fragment lives on a
//       logically disjoint wire from whatever the paired PrepareNode
//       (which belongs to a different fragment) re-enters.
package qgraph

import (
	"sort"

	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtape"
)

// ToTape linearises cg by ascending Order and emits a Tape with wires
// remapped so the post-measure portion of the fragment lives on a fresh
// wire. Node wires are mutated in place (via qop.SetWires) rather than
// copied, preserving MeasureNode/PrepareNode pointer identity — the join
// key fragment/configure/contract rely on end to end.
func ToTape(cg *CircuitGraph) *qtape.Tape {
	nodes := cg.Nodes()

	wireSet := make(map[qop.Wire]struct{})
	for _, n := range nodes {
		for _, w := range n.Wires() {
			wireSet[w] = struct{}{}
		}
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Order() < nodes[j].Order() })

	wireMap := make(map[qop.Wire]qop.Wire, len(wireSet))
	for w := range wireSet {
		wireMap[w] = w
	}

	tp := qtape.New()
	for _, op := range nodes {
		original := op.Wires()
		measuredWire := qop.Wire(0)
		isMeasureNode := false
		if mn, ok := op.(*qop.MeasureNode); ok {
			isMeasureNode = true
			measuredWire = mn.Wires()[0]
		}

		remapped := make([]qop.Wire, len(original))
		for i, w := range original {
			remapped[i] = wireMap[w]
		}
		qop.SetWires(op, remapped)

		if m, ok := op.(*qop.Measurement); ok {
			tp.AppendMeasurement(m)
		} else {
			tp.Append(op)
		}

		if isMeasureNode {
			fresh := smallestUnusedWire(wireSet)
			wireSet[fresh] = struct{}{}
			wireMap[measuredWire] = fresh
		}
	}
	return tp
}

// smallestUnusedWire allocates a fresh wire label: the smallest
// non-negative integer not already present in the fragment's wire set.
func smallestUnusedWire(used map[qop.Wire]struct{}) qop.Wire {
	for w := qop.Wire(0); ; w++ {
		if _, ok := used[w]; !ok {
			return w
		}
	}
}
