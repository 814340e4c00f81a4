// File: errors.go
// Role: Sentinel errors for the simulate package.
package simulate

import "errors"

// ErrUnknownGate indicates a tape operation named a gate this reference
// simulator does not implement.
var ErrUnknownGate = errors.New("simulate: unknown gate")

// ErrUnknownWire indicates an operation or measurement referenced a wire
// outside the tape's own wire set.
var ErrUnknownWire = errors.New("simulate: wire not present in tape")

// ErrExpectedSingleMeasurement indicates a tape did not carry exactly
// one terminal measurement — this reference simulator only evaluates
// single-observable expectation values.
var ErrExpectedSingleMeasurement = errors.New("simulate: tape must carry exactly one terminal measurement")

// ErrUnsupportedReturnType indicates a measurement asked for a return
// type other than Expectation.
var ErrUnsupportedReturnType = errors.New("simulate: only expectation-value measurements are supported")

// ErrNonPauliObservable indicates an observable factor was not one of
// {I, X, Y, Z}.
var ErrNonPauliObservable = errors.New("simulate: observable factor is not a valid Pauli")
