// File: errors.go
// Role: Sentinel errors for the contract package.
package contract

import "errors"

var (
	// ErrNodeNotInFragment indicates a communication-graph edge named a
	// MeasureNode/PrepareNode by identity that is absent from the
	// fragment its endpoint claims to belong to — a malformed
	// communication graph: every edge's pair must refer by identity to a
	// MeasureNode/PrepareNode present in its source/target fragment.
	ErrNodeNotInFragment = errors.New("contract: communication edge references a node absent from its fragment")

	// ErrFragmentCountMismatch indicates the number of fragment tensors
	// does not match the communication graph's declared fragment count.
	ErrFragmentCountMismatch = errors.New("contract: fragment tensor count does not match communication graph")
)
