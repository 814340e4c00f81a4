// File: measurement.go
// Role: Measurement operator — a terminal node bound to an observable
//       and a return type. Only ReturnType Expectation is supported; any
//       other value is a hard error, raised by the configure package
//       (not here, since construction itself is always legal — the
//       error belongs to the component that acts on the return type).
package qop

// ReturnType names the kind of result a Measurement asks for. The
// pipeline recognises all four values (matching a real gate-level
// simulator's vocabulary) but only Expectation is implemented; configure
// raises ErrUnsupportedReturnType for the rest.
type ReturnType int

const (
	Expectation ReturnType = iota
	Sample
	Variance
	Probability
)

// Measurement is a terminal node bound to an Observable and a
// ReturnType.
type Measurement struct {
	base
	ReturnType ReturnType
	Observable Observable
}

// NewMeasurement builds a Measurement over obs with the given return
// type. Its wire list is the observable's wire list.
func NewMeasurement(obs Observable, rt ReturnType) *Measurement {
	m := &Measurement{ReturnType: rt, Observable: obs}
	m.wires = obs.Wires()
	return m
}

// NewExpectationMeasurement is sugar for the only return type this
// pipeline fully supports.
func NewExpectationMeasurement(obs Observable) *Measurement {
	return NewMeasurement(obs, Expectation)
}

// SplitTensorProduct splits a multi-factor Measurement into one
// independent single-Pauli Measurement per factor, each preserving the
// original return type. A single-factor measurement is returned as a
// one-element slice containing an equivalent (but distinct) Measurement,
// so callers can always discard the original and use the split result
// uniformly.
func (m *Measurement) SplitTensorProduct() []*Measurement {
	out := make([]*Measurement, len(m.Observable.Factors))
	for i, f := range m.Observable.Factors {
		out[i] = NewMeasurement(NewObservable(f), m.ReturnType)
	}
	return out
}
