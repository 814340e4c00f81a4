// File: errors.go
// Role: Sentinel errors for the qop package.
// Policy: callers branch with errors.Is, matching core/dfs/bfs convention.
package qop

import "errors"

var (
	// ErrInvalidPauli indicates a Pauli value outside {I, X, Y, Z}.
	ErrInvalidPauli = errors.New("qop: pauli value out of range")

	// ErrEmptyTerms indicates a MeasureNode/PrepareNode was constructed
	// with zero terms; the configuration expander requires at least one
	// term per synthetic node to enumerate a non-empty Cartesian product.
	ErrEmptyTerms = errors.New("qop: term set must be non-empty")

	// ErrWrongWireCount indicates a synthetic node (MeasureNode or
	// PrepareNode) was asked to act on something other than exactly one
	// wire: every cut endpoint acts on a single wire by construction.
	ErrWrongWireCount = errors.New("qop: synthetic node must act on exactly one wire")

	// ErrNonPauliObservable indicates an Observable factor referenced a
	// Pauli value outside {I, X, Y, Z}.
	ErrNonPauliObservable = errors.New("qop: observable contains non-Pauli factor")

	// ErrDuplicateWireFactor indicates an Observable names the same wire
	// more than once, which cannot be a valid tensor-product factor list.
	ErrDuplicateWireFactor = errors.New("qop: observable names the same wire twice")
)
