// File: oracle.go
// Role: Auto-cut oracle contract and named-oracle registry. Placement
//       heuristics themselves are out of scope for this module; this
//       package is the plumbing a real heuristic would be registered
//       under, plus InsertCuts, which splices an oracle's cut
//       instructions into a graph as WireCut nodes for a follow-up
//       cut.Expand pass.
package oracle

import (
	"github.com/katalvlaran/qcut/qgraph"
	"github.com/katalvlaran/qcut/qop"
)

// CutInstruction names a single edge to sever: the operator pair and
// the wire their edge carries.
type CutInstruction struct {
	OpU  qop.Operator
	OpV  qop.Operator
	Wire qop.Wire
}

// Config is an open, implementation-defined configuration record (e.g.
// max_wires, max_gates, num_partitions) passed to an Oracle.
type Config map[string]interface{}

// Diagnostics is an open key-value mapping an Oracle may return
// alongside its cut instructions.
type Diagnostics map[string]interface{}

// Oracle is a pure function from a circuit graph and configuration to a
// set of cut instructions plus diagnostics. Repeated calls on the same
// graph with the same Config must be deterministic.
type Oracle func(cg *qgraph.CircuitGraph, cfg Config) ([]CutInstruction, Diagnostics, error)

var registry = map[string]Oracle{}

// Register adds an Oracle under name, overwriting any previous
// registration under the same name.
func Register(name string, o Oracle) {
	registry[name] = o
}

// Lookup returns the Oracle registered under name, if any.
func Lookup(name string) (Oracle, bool) {
	o, ok := registry[name]
	return o, ok
}

// InsertCuts splices a set of cut instructions into cg as WireCut
// nodes, each replacing the named edge with opU -> WireCut -> opV on
// the same wire, ready for a follow-up cut.Expand pass. cg is mutated
// in place.
func InsertCuts(cg *qgraph.CircuitGraph, instructions []CutInstruction) error {
	for _, instr := range instructions {
		edgeID, ok := findEdge(cg, instr.OpU, instr.OpV, instr.Wire)
		if !ok {
			return ErrEdgeNotFound
		}
		if err := cg.RemoveEdge(edgeID); err != nil {
			return err
		}

		wc := qop.NewWireCut([]qop.Wire{instr.Wire})
		qop.SetOrder(wc, (instr.OpU.Order()+instr.OpV.Order())/2)

		cg.AddNode(wc)
		if err := cg.AddEdge(instr.OpU, wc, instr.Wire); err != nil {
			return err
		}
		if err := cg.AddEdge(wc, instr.OpV, instr.Wire); err != nil {
			return err
		}
	}
	return nil
}

func findEdge(cg *qgraph.CircuitGraph, u, v qop.Operator, w qop.Wire) (string, bool) {
	for _, e := range cg.Edges() {
		if e.From == u && e.To == v && e.Wire == w {
			return e.ID, true
		}
	}
	return "", false
}
