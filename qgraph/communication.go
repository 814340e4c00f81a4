// File: communication.go
// Role: CommunicationGraph — the quotient multigraph over fragment
//       indices 0..F-1, whose edges carry the (MeasureNode, PrepareNode)
//       pair identifying the cut they represent.
package qgraph

import "github.com/katalvlaran/qcut/qop"

// CommunicationEdge is one cut edge lifted to the fragment level: a
// directed edge start-fragment -> end-fragment carrying the
// (MeasureNode, PrepareNode) pair that produced it. Multiple cut edges
// between the same fragment pair are represented as multiple
// CommunicationEdge values — this is why the communication graph is a
// *multi*graph rather than a simple graph.
type CommunicationEdge struct {
	From int
	To   int
	Pair qop.CutPair
}

// CommunicationGraph is the quotient graph produced by fragmenting a
// CircuitGraph at its cut edges.
type CommunicationGraph struct {
	NumFragments int
	Edges        []CommunicationEdge
}

// Incoming returns the edges whose To field is fragment i, i.e. the
// cuts where fragment i is the prepare side.
func (c *CommunicationGraph) Incoming(i int) []CommunicationEdge {
	var out []CommunicationEdge
	for _, e := range c.Edges {
		if e.To == i {
			out = append(out, e)
		}
	}
	return out
}

// Outgoing returns the edges whose From field is fragment i, i.e. the
// cuts where fragment i is the measure side.
func (c *CommunicationGraph) Outgoing(i int) []CommunicationEdge {
	var out []CommunicationEdge
	for _, e := range c.Edges {
		if e.From == i {
			out = append(out, e)
		}
	}
	return out
}
