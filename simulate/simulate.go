// File: simulate.go
// Role: Simulator contract and a reference statevector implementation
//       used by this module's own integration tests.
//       Production callers are expected to bind the Simulator interface
//       to a real backend; StateVector exists so the pipeline can be
//       exercised end-to-end without one.
// Determinism:
//   - Wire-to-qubit-index assignment is ascending Wire order, not
//     first-seen tape order, so two tapes over the same wire set always
//     agree on which statevector axis a wire occupies.
package simulate

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtape"
)

// Result is one configuration's flat result vector. Transform requires
// len(Result) == 1 for every configuration tape; that check belongs to
// the caller composing the full Transform, not to an individual
// Simulator.
type Result []float64

// Len and At satisfy the "length query and indexing" Result shape
// Transform's Finish closure consumes, so a Result can be passed there
// directly without conversion.
func (r Result) Len() int         { return len(r) }
func (r Result) At(i int) float64 { return r[i] }

// Simulator evaluates a sequence of fragment configuration tapes and
// returns a same-length, same-order sequence of results.
type Simulator interface {
	Simulate(tapes []*qtape.Tape) ([]Result, error)
}

// StateVector is a dense reference simulator good for tapes of a
// handful of wires — exactly the scale this pipeline's own fragment
// tapes run at after cutting.
type StateVector struct{}

// NewStateVector returns a StateVector simulator.
func NewStateVector() *StateVector { return &StateVector{} }

// Simulate runs each tape independently and returns its single
// expectation value as a one-element Result.
func (s *StateVector) Simulate(tapes []*qtape.Tape) ([]Result, error) {
	out := make([]Result, len(tapes))
	for i, t := range tapes {
		v, err := simulateOne(t)
		if err != nil {
			return nil, err
		}
		out[i] = Result{v}
	}
	return out, nil
}

func simulateOne(t *qtape.Tape) (float64, error) {
	if len(t.Measurements) != 1 {
		return 0, ErrExpectedSingleMeasurement
	}
	m := t.Measurements[0]
	if m.ReturnType != qop.Expectation {
		return 0, ErrUnsupportedReturnType
	}

	wires := sortedWires(t.Wires())
	index := make(map[qop.Wire]int, len(wires))
	for i, w := range wires {
		index[w] = i
	}

	state := make([]complex128, 1<<len(wires))
	state[0] = 1

	for _, op := range t.Operations {
		gate, ok := op.(*qop.Gate)
		if !ok {
			continue
		}
		if err := applyGate(state, index, gate); err != nil {
			return 0, err
		}
	}

	return expectation(state, index, m.Observable)
}

func sortedWires(ws []qop.Wire) []qop.Wire {
	out := append([]qop.Wire(nil), ws...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// applyGate dispatches a Gate to its matrix form by name. Unrecognised
// names are a hard error rather than a silent no-op, so a typo in a
// caller-synthesised tape surfaces immediately.
func applyGate(state []complex128, index map[qop.Wire]int, g *qop.Gate) error {
	wires := g.Wires()
	for _, w := range wires {
		if _, ok := index[w]; !ok {
			return ErrUnknownWire
		}
	}

	switch g.Name {
	case "Identity":
		return nil
	case "PauliX":
		return applySingle(state, index[wires[0]], pauliX())
	case "PauliY":
		return applySingle(state, index[wires[0]], pauliY())
	case "PauliZ":
		return applySingle(state, index[wires[0]], pauliZ())
	case "Hadamard":
		return applySingle(state, index[wires[0]], hadamard())
	case "S":
		return applySingle(state, index[wires[0]], phase(math.Pi/2))
	case "T":
		return applySingle(state, index[wires[0]], phase(math.Pi/4))
	case "RX":
		return applySingle(state, index[wires[0]], rx(angle(g)))
	case "RY":
		return applySingle(state, index[wires[0]], ry(angle(g)))
	case "RZ":
		return applySingle(state, index[wires[0]], rz(angle(g)))
	case "CNOT":
		return applyControlled(state, index[wires[0]], index[wires[1]], pauliX())
	case "CZ":
		return applyControlled(state, index[wires[0]], index[wires[1]], pauliZ())
	default:
		return ErrUnknownGate
	}
}

func angle(g *qop.Gate) float64 {
	if len(g.Params) == 0 {
		return 0
	}
	return g.Params[0]
}

// matrix2 is a dense 2x2 single-qubit gate, row-major.
type matrix2 [4]complex128

func pauliX() matrix2 { return matrix2{0, 1, 1, 0} }
func pauliY() matrix2 { return matrix2{0, -1i, 1i, 0} }
func pauliZ() matrix2 { return matrix2{1, 0, 0, -1} }

func hadamard() matrix2 {
	h := complex(1/math.Sqrt2, 0)
	return matrix2{h, h, h, -h}
}

func phase(theta float64) matrix2 {
	return matrix2{1, 0, 0, cmplx.Exp(complex(0, theta))}
}

func rx(theta float64) matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return matrix2{c, s, s, c}
}

func ry(theta float64) matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return matrix2{c, -s, s, c}
}

func rz(theta float64) matrix2 {
	neg := cmplx.Exp(complex(0, -theta/2))
	pos := cmplx.Exp(complex(0, theta/2))
	return matrix2{neg, 0, 0, pos}
}

// applySingle applies a 2x2 gate to the qubit at bit position target,
// pairing every amplitude index with its partner differing only in that
// bit.
func applySingle(state []complex128, target int, m matrix2) error {
	bit := 1 << target
	for i := 0; i < len(state); i++ {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := state[i], state[j]
		state[i] = m[0]*a0 + m[1]*a1
		state[j] = m[2]*a0 + m[3]*a1
	}
	return nil
}

// applyControlled applies a 2x2 gate to target only on amplitudes where
// the control bit is set.
func applyControlled(state []complex128, control, target int, m matrix2) error {
	controlBit := 1 << control
	targetBit := 1 << target
	for i := 0; i < len(state); i++ {
		if i&controlBit == 0 || i&targetBit != 0 {
			continue
		}
		j := i | targetBit
		a0, a1 := state[i], state[j]
		state[i] = m[0]*a0 + m[1]*a1
		state[j] = m[2]*a0 + m[3]*a1
	}
	return nil
}

// expectation computes <state|O|state> for a tensor-product Pauli
// observable by applying each non-identity factor to a copy of state
// and taking the inner product with the original.
func expectation(state []complex128, index map[qop.Wire]int, obs qop.Observable) (float64, error) {
	copyState := append([]complex128(nil), state...)
	for _, f := range obs.Factors {
		pos, ok := index[f.Wire]
		if !ok {
			return 0, ErrUnknownWire
		}
		var m matrix2
		switch f.Pauli {
		case qop.I:
			continue
		case qop.X:
			m = pauliX()
		case qop.Y:
			m = pauliY()
		case qop.Z:
			m = pauliZ()
		default:
			return 0, ErrNonPauliObservable
		}
		if err := applySingle(copyState, pos, m); err != nil {
			return 0, err
		}
	}

	var acc complex128
	for i := range state {
		acc += cmplx.Conj(state[i]) * copyState[i]
	}
	return real(acc), nil
}
