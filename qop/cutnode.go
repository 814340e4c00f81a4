// File: cutnode.go
// Role: WireCut (explicit cut marker) and the MeasureNode/PrepareNode
//       synthetic pair it expands into, plus the default "simple" term
//       sets and the PauliX/Hadamard/S gate sequences that realise the
//       four basis-state preparations (|0> needs no gate).
package qop

// CutPair is one (MeasureNode, PrepareNode) pair produced by expanding
// a WireCut on a single wire.
type CutPair struct {
	Measure *MeasureNode
	Prepare *PrepareNode
}

// Expansion is a user-suppliable (or default) function computing the
// measure/prepare pair for each wire a WireCut spans. A custom
// expansion must return one CutPair per wire, same as the built-in
// simple expansion, but terms may use any cardinality.
type Expansion func(wires []Wire) []CutPair

// WireCut is an explicit marker spanning one or more wires, instructing
// the transform to sever those wires at this point. A nil Expansion
// means the simple {I,X,Y,Z} / {|0>,|1>,|+>,|+i>} expansion is used.
type WireCut struct {
	base
	Expansion Expansion
}

// NewWireCut constructs a WireCut over wires with the default simple
// expansion.
func NewWireCut(wires []Wire) *WireCut {
	c := &WireCut{}
	c.wires = append([]Wire(nil), wires...)
	return c
}

// NewCustomWireCut constructs a WireCut with a caller-supplied
// expansion, e.g. one producing term sets of a different cardinality
// than the built-in four-term basis.
func NewCustomWireCut(wires []Wire, expansion Expansion) *WireCut {
	c := NewWireCut(wires)
	c.Expansion = expansion
	return c
}

// ResolveExpansion returns c.Expansion if set, otherwise the built-in
// SimpleExpansion.
func (c *WireCut) ResolveExpansion() Expansion {
	if c.Expansion != nil {
		return c.Expansion
	}
	return SimpleExpansion
}

// MeasureNode is a synthetic terminal marking the "cut" side of a wire
// cut. It carries the set of Pauli terms the configuration expander
// will measure in, one configuration tape per term.
type MeasureNode struct {
	base
	Terms []Pauli
}

// NewMeasureNode constructs a MeasureNode on a single wire with the
// given term set (at least one term required).
func NewMeasureNode(w Wire, terms ...Pauli) *MeasureNode {
	n := &MeasureNode{Terms: append([]Pauli(nil), terms...)}
	n.wires = []Wire{w}
	return n
}

// SimpleMeasureNode is the default MeasureNode: terms {I, X, Y, Z}.
func SimpleMeasureNode(w Wire) *MeasureNode {
	return NewMeasureNode(w, I, X, Y, Z)
}

// PrepState names one of the four basis-state preparations the simple
// cut expansion uses. Each resolves to a short gate sequence applied to
// a freshly-labelled wire.
type PrepState int

const (
	PrepZero  PrepState = iota // |0>: no gates — the wire is assumed freshly reset
	PrepOne                    // |1>: PauliX(wire)
	PrepPlus                   // |+>: Hadamard(wire)
	PrepPlusI                  // |+i>: Hadamard(wire); S(wire)
)

// String renders the canonical short name used in diagnostics.
func (p PrepState) String() string {
	switch p {
	case PrepZero:
		return "|0>"
	case PrepOne:
		return "|1>"
	case PrepPlus:
		return "|+>"
	case PrepPlusI:
		return "|+i>"
	default:
		return "PrepState(?)"
	}
}

// Gates returns the gate sequence that prepares this basis state on w,
// assuming the simulator has already reset w to |0>.
func (p PrepState) Gates(w Wire) []*Gate {
	switch p {
	case PrepZero:
		return nil
	case PrepOne:
		return []*Gate{NewGate("PauliX", []Wire{w})}
	case PrepPlus:
		return []*Gate{NewGate("Hadamard", []Wire{w})}
	case PrepPlusI:
		return []*Gate{NewGate("Hadamard", []Wire{w}), NewGate("S", []Wire{w})}
	default:
		return nil
	}
}

// PrepareNode is a synthetic initial marking the "prepare" side of a
// wire cut. It carries the set of basis-state preparations the
// configuration expander will splice in, one configuration tape per
// term.
type PrepareNode struct {
	base
	Terms []PrepState
}

// NewPrepareNode constructs a PrepareNode on a single wire with the
// given term set (at least one term required).
func NewPrepareNode(w Wire, terms ...PrepState) *PrepareNode {
	n := &PrepareNode{Terms: append([]PrepState(nil), terms...)}
	n.wires = []Wire{w}
	return n
}

// SimplePrepareNode is the default PrepareNode: terms {|0>, |1>, |+>, |+i>}.
func SimplePrepareNode(w Wire) *PrepareNode {
	return NewPrepareNode(w, PrepZero, PrepOne, PrepPlus, PrepPlusI)
}

// SimpleExpansion is the built-in wire-cut expansion: one
// (SimpleMeasureNode, SimplePrepareNode) pair per wire.
func SimpleExpansion(wires []Wire) []CutPair {
	pairs := make([]CutPair, len(wires))
	for i, w := range wires {
		pairs[i] = CutPair{Measure: SimpleMeasureNode(w), Prepare: SimplePrepareNode(w)}
	}
	return pairs
}
