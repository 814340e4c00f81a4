// File: contract.go
// Role: Contractor. Assigns a unique symbol to every cut and contracts
//       fragment tensors through the communication graph with a native
//       bounded-width pairwise walker in place of a general einsum
//       engine — communication graphs here are small enough that a
//       greedy pairwise walk never needs a smarter contraction order.
// Determinism:
//   - Symbols are assigned in two full sweeps over fragment index order
//     (all incoming edges first, then all outgoing), so a symbol is
//     always registered in meas_map before any outgoing edge looks it
//     up, regardless of which fragment happens to hold the measure or
//     prepare side of a given cut.
package contract

import (
	"github.com/katalvlaran/qcut/qgraph"
	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtensor"
)

// Symbol identifies one contracted axis (one cut). Plain ints rather
// than the single-character alphabet opt_einsum draws from, since a
// native contractor has no reason to cap the number of simultaneous
// cuts at the size of a printable symbol set.
type Symbol int

// AssignSymbols walks fragments in index order, registering a fresh
// Symbol for every cut's prepare axis and
// reusing it for the paired measure axis — placed at that node's exact
// position in prepareNodes[i]/measureNodes[i] so the result lines up
// with qtensor.Assemble's axis order regardless of communication-graph
// edge iteration order.
func AssignSymbols(comm *qgraph.CommunicationGraph, prepareNodes [][]*qop.PrepareNode, measureNodes [][]*qop.MeasureNode) ([][]Symbol, error) {
	n := comm.NumFragments
	axisSymbols := make([][]Symbol, n)
	for i := 0; i < n; i++ {
		axisSymbols[i] = make([]Symbol, len(prepareNodes[i])+len(measureNodes[i]))
	}

	measMap := make(map[*qop.MeasureNode]Symbol)
	next := Symbol(0)

	for i := 0; i < n; i++ {
		for _, e := range comm.Incoming(i) {
			pos := indexOfPrepare(prepareNodes[i], e.Pair.Prepare)
			if pos < 0 {
				return nil, ErrNodeNotInFragment
			}
			axisSymbols[i][pos] = next
			measMap[e.Pair.Measure] = next
			next++
		}
	}

	for i := 0; i < n; i++ {
		for _, e := range comm.Outgoing(i) {
			pos := indexOfMeasure(measureNodes[i], e.Pair.Measure)
			if pos < 0 {
				return nil, ErrNodeNotInFragment
			}
			sym, ok := measMap[e.Pair.Measure]
			if !ok {
				return nil, ErrNodeNotInFragment
			}
			axisSymbols[i][pos] = sym
		}
	}

	return axisSymbols, nil
}

func indexOfPrepare(nodes []*qop.PrepareNode, target *qop.PrepareNode) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

func indexOfMeasure(nodes []*qop.MeasureNode, target *qop.MeasureNode) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

// operand is one tensor mid-contraction: data in row-major order per
// shape, with shape[i]/symbols[i] naming the cardinality/identity of
// axis i.
type operand struct {
	data    []float64
	symbols []Symbol
	shape   []int
}

// Contract walks the fragment tensors to a single scalar by repeatedly
// contracting the pair sharing the most symbols — a naive greedy
// contraction order, adequate for the small communication graphs this
// pipeline produces.
func Contract(tensors []*qtensor.Tensor, axisSymbols [][]Symbol) (float64, error) {
	if len(tensors) != len(axisSymbols) {
		return 0, ErrFragmentCountMismatch
	}
	if len(tensors) == 0 {
		return 0, nil
	}

	operands := make([]*operand, len(tensors))
	for i, t := range tensors {
		operands[i] = &operand{
			data:    append([]float64(nil), t.Data...),
			symbols: append([]Symbol(nil), axisSymbols[i]...),
			shape:   append([]int(nil), t.Shape...),
		}
	}

	for len(operands) > 1 {
		bi, bj, shared := bestPair(operands)
		merged := contractPair(operands[bi], operands[bj], shared)
		next := make([]*operand, 0, len(operands)-1)
		for idx, o := range operands {
			if idx != bi && idx != bj {
				next = append(next, o)
			}
		}
		operands = append(next, merged)
	}

	final := operands[0]
	if len(final.data) != 1 {
		return 0, ErrFragmentCountMismatch
	}
	return final.data[0], nil
}

// bestPair returns the indices of the two operands sharing the most
// symbols (ties broken by the first pair found), plus the shared symbol
// list.
func bestPair(operands []*operand) (int, int, []Symbol) {
	bi, bj := 0, 1
	best := sharedSymbols(operands[0].symbols, operands[1].symbols)
	for i := 0; i < len(operands); i++ {
		for j := i + 1; j < len(operands); j++ {
			s := sharedSymbols(operands[i].symbols, operands[j].symbols)
			if len(s) > len(best) {
				bi, bj, best = i, j, s
			}
		}
	}
	return bi, bj, best
}

func sharedSymbols(a, b []Symbol) []Symbol {
	inB := make(map[Symbol]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []Symbol
	for _, s := range a {
		if inB[s] {
			out = append(out, s)
		}
	}
	return out
}

func freeSymbols(all, shared []Symbol) []Symbol {
	inShared := make(map[Symbol]bool, len(shared))
	for _, s := range shared {
		inShared[s] = true
	}
	var out []Symbol
	for _, s := range all {
		if !inShared[s] {
			out = append(out, s)
		}
	}
	return out
}

// sizeMap maps each axis symbol of o to its cardinality.
func sizeMap(o *operand) map[Symbol]int {
	m := make(map[Symbol]int, len(o.symbols))
	for i, s := range o.symbols {
		m[s] = o.shape[i]
	}
	return m
}

// strides returns the row-major stride for each positional axis of
// shape (last axis varies fastest).
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// unravel fills idx with the row-major multi-index of flat within shape.
func unravel(flat int, shape []int, idx []int) {
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 0 {
			idx[i] = 0
			continue
		}
		idx[i] = flat % shape[i]
		flat /= shape[i]
	}
}

// offsetOf computes the flat offset into an operand's data given a
// symbol-to-index assignment.
func offsetOf(symbols []Symbol, stride []int, assign map[Symbol]int) int {
	off := 0
	for i, s := range symbols {
		off += assign[s] * stride[i]
	}
	return off
}

// contractPair sums a and b over their shared symbols, returning a new
// operand whose symbols are a's free symbols followed by b's free
// symbols.
func contractPair(a, b *operand, shared []Symbol) *operand {
	aSizes := sizeMap(a)
	bSizes := sizeMap(b)

	aFree := freeSymbols(a.symbols, shared)
	bFree := freeSymbols(b.symbols, shared)
	outSymbols := append(append([]Symbol(nil), aFree...), bFree...)

	sizeOf := make(map[Symbol]int, len(aSizes)+len(bSizes))
	for s, n := range aSizes {
		sizeOf[s] = n
	}
	for s, n := range bSizes {
		sizeOf[s] = n
	}

	outShape := make([]int, len(outSymbols))
	for i, s := range outSymbols {
		outShape[i] = sizeOf[s]
	}
	outTotal := 1
	for _, n := range outShape {
		outTotal *= n
	}

	sharedShape := make([]int, len(shared))
	for i, s := range shared {
		sharedShape[i] = sizeOf[s]
	}
	sharedTotal := 1
	for _, n := range sharedShape {
		sharedTotal *= n
	}

	aStride := strides(a.shape)
	bStride := strides(b.shape)

	outData := make([]float64, outTotal)
	outIdx := make([]int, len(outSymbols))
	sharedIdx := make([]int, len(shared))

	for flatOut := 0; flatOut < outTotal; flatOut++ {
		unravel(flatOut, outShape, outIdx)
		assign := make(map[Symbol]int, len(outSymbols)+len(shared))
		for i, s := range outSymbols {
			assign[s] = outIdx[i]
		}

		var sum float64
		for flatShared := 0; flatShared < sharedTotal; flatShared++ {
			unravel(flatShared, sharedShape, sharedIdx)
			for i, s := range shared {
				assign[s] = sharedIdx[i]
			}
			sum += a.data[offsetOf(a.symbols, aStride, assign)] * b.data[offsetOf(b.symbols, bStride, assign)]
		}
		outData[flatOut] = sum
	}

	return &operand{data: outData, symbols: outSymbols, shape: outShape}
}
