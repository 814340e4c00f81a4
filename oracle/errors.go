// File: errors.go
// Role: Sentinel errors for the oracle package.
package oracle

import "errors"

// ErrEdgeNotFound indicates a CutInstruction named an (opU, opV, wire)
// triple that does not correspond to any edge currently in the graph —
// the oracle is a pure function of the graph it was handed, so a stale
// or fabricated instruction is a caller error.
var ErrEdgeNotFound = errors.New("oracle: cut instruction names an edge not present in the graph")

// ErrUnknownOracle indicates Lookup was asked for a name not present in
// the registry.
var ErrUnknownOracle = errors.New("oracle: no oracle registered under that name")
