// File: errors.go
// Role: Sentinel errors for the qgraph package.
package qgraph

import "errors"

var (
	// ErrCyclicGraph indicates a lifted circuit graph contains a cycle,
	// violating the per-wire total-order invariant every wire's chain
	// must satisfy. This signals a bug in the caller's tape construction
	// or a custom wire cut expansion.
	ErrCyclicGraph = errors.New("qgraph: lifted graph contains a cycle")

	// ErrUnknownNode indicates an Operator was looked up that this
	// CircuitGraph never registered.
	ErrUnknownNode = errors.New("qgraph: node not present in this graph")

	// ErrMalformedCut indicates a MeasureNode has an outgoing edge to
	// something other than a PrepareNode after cut expansion — a
	// programming error in a custom wire-cut expansion.
	ErrMalformedCut = errors.New("qgraph: measure node's successor is not a prepare node")
)
