// Package qcut implements circuit cutting for quantum circuits: a
// compile-time transform that rewrites a single tape of quantum
// operations into a collection of smaller fragment tapes whose
// individually-executed expectation values can be classically
// post-processed to recover the original circuit's expectation value.
//
// The pipeline, leaves first:
//
//	qop       — operator model (Wire, Gate, Measurement, WireCut, MeasureNode, PrepareNode)
//	qtape     — linear tape of operations + terminal measurements
//	qgraph    — tape↔graph lifting/lowering, CircuitGraph & CommunicationGraph
//	cut       — wire-cut expansion (measure/prepare pair splicing)
//	fragment  — weakly-connected-component fragmentation + communication graph
//	configure — per-fragment configuration expansion (Cartesian product of terms)
//	qtensor   — per-fragment tensor assembly + change-of-basis
//	contract  — einsum-index assignment + bounded-width contraction
//	oracle    — auto-cut oracle contract and named-oracle registry
//	simulate  — simulator contract (+ a reference statevector simulator for tests)
//
// Transform composes all of the above; see its doc comment for the full
// data flow. The transform is single-threaded and purely functional: no
// package here spawns goroutines or retains a graph shared across calls.
//
//	go get github.com/katalvlaran/qcut
package qcut
