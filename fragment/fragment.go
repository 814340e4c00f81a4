// File: fragment.go
// Role: Fragmenter. Severs every measure->prepare cut edge left by
//       cut.Expand, partitions the residual graph into
//       weakly connected components, and returns one CircuitGraph per
//       component plus the CommunicationGraph recording how the severed
//       edges rejoin them.
// Determinism:
//   - Components are discovered by scanning core.Graph.Vertices() in
//     its own sorted order and BFS-ing from the first unvisited vertex,
//     so fragment index assignment is stable across runs for the same
//     graph.
package fragment

import (
	"sort"

	"github.com/katalvlaran/qcut/bfs"
	"github.com/katalvlaran/qcut/core"
	"github.com/katalvlaran/qcut/qgraph"
	"github.com/katalvlaran/qcut/qop"
)

// Fragment splits cg into its weakly connected components after
// removing every measure->prepare cut edge. cg itself is mutated (the
// cut edges are removed from it); the returned fragments are fresh
// CircuitGraphs sharing cg's node identities by pointer.
func Fragment(cg *qgraph.CircuitGraph) ([]*qgraph.CircuitGraph, *qgraph.CommunicationGraph, error) {
	cutEdges, err := cg.CutEdges()
	if err != nil {
		return nil, nil, err
	}
	for _, e := range cutEdges {
		if err := cg.RemoveEdge(e.ID); err != nil {
			return nil, nil, err
		}
	}

	components, err := weaklyConnectedComponents(cg.Backbone())
	if err != nil {
		return nil, nil, err
	}

	fragments := make([]*qgraph.CircuitGraph, len(components))
	fragmentOf := make(map[string]int, len(cg.Nodes()))
	for i, ids := range components {
		keep := make(map[string]bool, len(ids))
		for _, id := range ids {
			keep[id] = true
			fragmentOf[id] = i
		}
		fragments[i] = cg.Subgraph(keep)
	}

	comm := &qgraph.CommunicationGraph{NumFragments: len(fragments)}
	for _, e := range cutEdges {
		measure, ok := e.From.(*qop.MeasureNode)
		if !ok {
			return nil, nil, qgraph.ErrMalformedCut
		}
		prepare, ok := e.To.(*qop.PrepareNode)
		if !ok {
			return nil, nil, qgraph.ErrMalformedCut
		}
		fromID, _ := cg.IDOf(measure)
		toID, _ := cg.IDOf(prepare)
		comm.Edges = append(comm.Edges, qgraph.CommunicationEdge{
			From: fragmentOf[fromID],
			To:   fragmentOf[toID],
			Pair: qop.CutPair{Measure: measure, Prepare: prepare},
		})
	}

	return fragments, comm, nil
}

// weaklyConnectedComponents returns every weakly connected component of
// g (a directed multigraph) as sorted slices of vertex IDs, by running
// bfs.BFS over an undirected view of g from each unvisited vertex in
// turn.
func weaklyConnectedComponents(g *core.Graph) ([][]string, error) {
	undirected := undirectedView(g)

	vertices := undirected.Vertices() // already sorted lexicographically
	visited := make(map[string]bool, len(vertices))

	var components [][]string
	for _, id := range vertices {
		if visited[id] {
			continue
		}
		res, err := bfs.BFS(undirected, id)
		if err != nil {
			return nil, err
		}
		component := append([]string(nil), res.Order...)
		sort.Strings(component)
		for _, v := range component {
			visited[v] = true
		}
		components = append(components, component)
	}
	return components, nil
}

// undirectedView builds a fresh, undirected multigraph with the same
// vertices and edges as g, ignoring edge direction — core.Graph has no
// built-in undirected projection, so this mirrors core.UnweightedView's
// copy-and-rebuild shape with WithDirected(false) instead.
func undirectedView(g *core.Graph) *core.Graph {
	out := core.NewGraph(core.WithDirected(false), core.WithMultiEdges(), core.WithLoops())
	for _, id := range g.Vertices() {
		_ = out.AddVertex(id)
	}
	for _, e := range g.Edges() {
		_, _ = out.AddEdge(e.From, e.To, 0)
	}
	return out
}
