// File: tape.go
// Role: Tape — a linear sequence of operations followed by terminal
//       measurements: ordered operations, ordered measurements, and a
//       wire set, each exposing their own wire lists.
// Determinism:
//   - Wires() returns wires in first-seen order across operations then
//     measurements, deduplicated; callers needing a sorted set should
//     sort the result themselves (qgraph does, where order matters).
package qtape

import "github.com/katalvlaran/qcut/qop"

// Tape is an ordered list of operations followed by an ordered list of
// terminal measurements.
type Tape struct {
	Operations   []qop.Operator
	Measurements []*qop.Measurement
}

// New returns an empty Tape.
func New() *Tape {
	return &Tape{}
}

// Wires returns the deduplicated set of wires touched by this tape's
// operations and measurements, in first-seen order.
func (t *Tape) Wires() []qop.Wire {
	seen := make(map[qop.Wire]struct{})
	var out []qop.Wire
	note := func(ws []qop.Wire) {
		for _, w := range ws {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				out = append(out, w)
			}
		}
	}
	for _, op := range t.Operations {
		note(op.Wires())
	}
	for _, m := range t.Measurements {
		note(m.Wires())
	}
	return out
}

// Append appends op to the operation list and returns it, for chaining.
func (t *Tape) Append(op qop.Operator) qop.Operator {
	t.Operations = append(t.Operations, op)
	return op
}

// AppendMeasurement appends m to the measurement list and returns it.
func (t *Tape) AppendMeasurement(m *qop.Measurement) *qop.Measurement {
	t.Measurements = append(t.Measurements, m)
	return m
}
