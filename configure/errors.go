// File: errors.go
// Role: Sentinel errors for the configure package.
package configure

import "errors"

var (
	// ErrMultipleUserMeasurements indicates a fragment tape retained more
	// than one user-supplied terminal Measurement naming the same wire —
	// these cannot be merged into a single tensor product, so more than
	// one per wire is not supported.
	ErrMultipleUserMeasurements = errors.New("configure: fragment has more than one user measurement")

	// ErrUnsupportedReturnType indicates a user Measurement asked for
	// anything other than an expectation value, which is a hard error.
	ErrUnsupportedReturnType = errors.New("configure: only expectation-value measurements are supported")
)
