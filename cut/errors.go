// File: errors.go
// Role: Sentinel errors for the cut package.
package cut

import "errors"

// ErrExpansionShapeMismatch indicates a wire-cut expansion function
// returned a different number of (MeasureNode, PrepareNode) pairs than
// the WireCut has wires — every user-supplied expansion must return one
// pair per wire, same shape as the built-in simple expansion.
var ErrExpansionShapeMismatch = errors.New("cut: expansion returned wrong number of pairs")
