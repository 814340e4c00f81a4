// File: configure.go
// Role: Configuration expander. Enumerates the Cartesian product of
//       basis preparations and Pauli measurements at a fragment's cut
//       endpoints and synthesises one concrete tape per configuration,
//       each with a rewritten terminal observable.
// Determinism:
//   - Configurations are enumerated with prepare-tuples outermost, then
//     measure-tuples, each tuple iterating its nodes in fragment-tape
//     order — the order the tensor assembler's reshape depends on.
package configure

import (
	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtape"
)

// Result is the output of expanding one fragment tape into its
// Cartesian product of configurations.
type Result struct {
	// Tapes holds one synthesised tape per configuration: prepare-tuples
	// outermost, measure-tuples innermost, each tuple iterating its nodes
	// in fragment-tape order.
	Tapes []*qtape.Tape

	// PrepareNodes and MeasureNodes preserve the order the nodes appear
	// in the fragment tape — the tensor assembler indexes fragment axes
	// by position in these slices.
	PrepareNodes []*qop.PrepareNode
	MeasureNodes []*qop.MeasureNode
}

// Expand synthesises every configuration tape for a single fragment
// tape. fragment is not mutated.
func Expand(fragment *qtape.Tape) (*Result, error) {
	var prepareNodes []*qop.PrepareNode
	var measureNodes []*qop.MeasureNode
	for _, op := range fragment.Operations {
		switch o := op.(type) {
		case *qop.PrepareNode:
			prepareNodes = append(prepareNodes, o)
		case *qop.MeasureNode:
			measureNodes = append(measureNodes, o)
		}
	}

	userObservable, err := mergeUserMeasurements(fragment.Measurements)
	if err != nil {
		return nil, err
	}

	prepareTuples := cartesianPrep(prepareNodes)
	measureTuples := cartesianMeasure(measureNodes)

	tapes := make([]*qtape.Tape, 0, len(prepareTuples)*len(measureTuples))
	for _, pt := range prepareTuples {
		for _, mt := range measureTuples {
			tapes = append(tapes, synthesize(fragment, pt, mt, userObservable))
		}
	}

	return &Result{Tapes: tapes, PrepareNodes: prepareNodes, MeasureNodes: measureNodes}, nil
}

// mergeUserMeasurements recombines a fragment's terminal Measurement
// nodes into a single tensor-product Observable, sorted by wire. Lifting
// splits a tensor-product measurement into one single-Pauli Measurement
// node per factor; when a cut does not separate those factors across
// fragments, they land back in the same fragment tape and must be
// reassembled here from the wires they act on, rather than rejected
// outright. Two measurements naming the same wire cannot be reassembled
// into one tensor product and so remain a hard error.
func mergeUserMeasurements(measurements []*qop.Measurement) (*qop.Observable, error) {
	if len(measurements) == 0 {
		return nil, nil
	}

	var factors []qop.PauliFactor
	seen := make(map[qop.Wire]bool, len(measurements))
	for _, m := range measurements {
		if m.ReturnType != qop.Expectation {
			return nil, ErrUnsupportedReturnType
		}
		if err := m.Observable.Validate(); err != nil {
			return nil, err
		}
		for _, f := range m.Observable.Factors {
			if seen[f.Wire] {
				return nil, ErrMultipleUserMeasurements
			}
			seen[f.Wire] = true
			factors = append(factors, f)
		}
	}

	obs := qop.NewObservable(factors...).Sorted()
	return &obs, nil
}

// synthesize builds one configuration tape: every PrepareNode is
// replaced by its chosen term's gate sequence, every MeasureNode's
// chosen term is folded into the running T_cut tensor product, and
// every other operation is emitted unchanged.
//
// The T_cut accumulation runs inside a Builder Suppress scope: a
// MeasureNode's chosen Pauli is data describing the terminal
// observable, never an operation on the configuration tape itself, so
// it must not be recorded even transiently.
func synthesize(fragment *qtape.Tape, prepChoice []qop.PrepState, measChoice []qop.Pauli, userObservable *qop.Observable) *qtape.Tape {
	b := qtape.NewBuilder()

	var tCutFactors []qop.PauliFactor
	prepIdx, measIdx := 0, 0
	for _, op := range fragment.Operations {
		switch o := op.(type) {
		case *qop.PrepareNode:
			w := o.Wires()[0]
			for _, g := range prepChoice[prepIdx].Gates(w) {
				b.Apply(g)
			}
			prepIdx++
		case *qop.MeasureNode:
			w := o.Wires()[0]
			b.Suppress(func() {
				tCutFactors = append(tCutFactors, qop.PauliFactor{Wire: w, Pauli: measChoice[measIdx]})
			})
			measIdx++
		default:
			b.Apply(op)
		}
	}

	tCut := qop.NewObservable(tCutFactors...)
	b.Measure(qop.NewExpectationMeasurement(terminalObservable(fragment, tCut, userObservable)))

	return b.Tape()
}

// terminalObservable combines the fragment's running T_cut tensor
// product with the optional user observable into the single Observable
// the configuration tape's terminal measurement asks for.
func terminalObservable(fragment *qtape.Tape, tCut qop.Observable, userObservable *qop.Observable) qop.Observable {
	if userObservable != nil {
		return userObservable.Combine(tCut)
	}
	if !tCut.IsIdentityOnly() {
		return tCut
	}
	// Degenerate case: no user measurement, and T_cut is empty or
	// identity-only — measure the constant 1 on any wire.
	w := qop.Wire(0)
	if wires := fragment.Wires(); len(wires) > 0 {
		w = wires[0]
	}
	return qop.NewObservable(qop.PauliFactor{Wire: w, Pauli: qop.I})
}

// cartesianPrep enumerates every tuple of chosen terms, one per
// PrepareNode, in node order.
func cartesianPrep(nodes []*qop.PrepareNode) [][]qop.PrepState {
	if len(nodes) == 0 {
		return [][]qop.PrepState{{}}
	}
	tuples := [][]qop.PrepState{{}}
	for _, n := range nodes {
		next := make([][]qop.PrepState, 0, len(tuples)*len(n.Terms))
		for _, t := range tuples {
			for _, term := range n.Terms {
				tuple := append(append([]qop.PrepState(nil), t...), term)
				next = append(next, tuple)
			}
		}
		tuples = next
	}
	return tuples
}

// cartesianMeasure enumerates every tuple of chosen terms, one per
// MeasureNode, in node order.
func cartesianMeasure(nodes []*qop.MeasureNode) [][]qop.Pauli {
	if len(nodes) == 0 {
		return [][]qop.Pauli{{}}
	}
	tuples := [][]qop.Pauli{{}}
	for _, n := range nodes {
		next := make([][]qop.Pauli, 0, len(tuples)*len(n.Terms))
		for _, t := range tuples {
			for _, term := range n.Terms {
				tuple := append(append([]qop.Pauli(nil), t...), term)
				next = append(next, tuple)
			}
		}
		tuples = next
	}
	return tuples
}
