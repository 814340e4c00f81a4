// File: circuit_graph.go
// Role: CircuitGraph — a directed multigraph over qop.Operator node
//       identities, wrapping a *core.Graph as its backbone. Nodes are
//       keyed by a synthetic string ID for core.Graph's string-keyed
//       API; the node's real identity is the Operator pointer itself,
//       recovered via idByNode/nodeByID. Per-wire predecessor/successor
//       are tracked alongside the backbone so cut expansion's snapshot
//       of predecessors-by-wire and successors-by-wire is O(1).
// Determinism:
//   - Node IDs are assigned "n1", "n2", ... in construction order,
//     mirroring core's own "e1", "e2", ... edge-ID convention.
// Concurrency:
//   - Not safe for concurrent use: the pipeline is single-threaded and
//     purely functional; core.Graph's own locks are simply unused
//     overhead here, not a requirement we rely on.
package qgraph

import (
	"fmt"

	"github.com/katalvlaran/qcut/core"
	"github.com/katalvlaran/qcut/qop"
)

// CircuitGraph is a directed multigraph of qop.Operator nodes, edges
// labelled by the qop.Wire they carry.
type CircuitGraph struct {
	g *core.Graph

	nodeByID map[string]qop.Operator
	idByNode map[qop.Operator]string

	edgeWire map[string]qop.Wire

	predOnWire map[string]map[qop.Wire]string
	succOnWire map[string]map[qop.Wire]string

	nextID int
}

// New returns an empty CircuitGraph.
func New() *CircuitGraph {
	return &CircuitGraph{
		g:          core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops()),
		nodeByID:   make(map[string]qop.Operator),
		idByNode:   make(map[qop.Operator]string),
		edgeWire:   make(map[string]qop.Wire),
		predOnWire: make(map[string]map[qop.Wire]string),
		succOnWire: make(map[string]map[qop.Wire]string),
	}
}

// AddNode registers op if not already present and returns its synthetic
// vertex ID.
func (cg *CircuitGraph) AddNode(op qop.Operator) string {
	if id, ok := cg.idByNode[op]; ok {
		return id
	}
	cg.nextID++
	id := fmt.Sprintf("n%d", cg.nextID)
	cg.nodeByID[id] = op
	cg.idByNode[op] = id
	_ = cg.g.AddVertex(id)
	return id
}

// AddEdge adds a directed edge u -> v labelled wire w, registering u and
// v as nodes first if needed.
func (cg *CircuitGraph) AddEdge(u, v qop.Operator, w qop.Wire) error {
	uid := cg.AddNode(u)
	vid := cg.AddNode(v)
	eid, err := cg.g.AddEdge(uid, vid, 0)
	if err != nil {
		return err
	}
	cg.edgeWire[eid] = w

	if cg.succOnWire[uid] == nil {
		cg.succOnWire[uid] = make(map[qop.Wire]string)
	}
	cg.succOnWire[uid][w] = vid

	if cg.predOnWire[vid] == nil {
		cg.predOnWire[vid] = make(map[qop.Wire]string)
	}
	cg.predOnWire[vid][w] = uid

	return nil
}

// RemoveNode removes op and all of its incident edges.
func (cg *CircuitGraph) RemoveNode(op qop.Operator) {
	id, ok := cg.idByNode[op]
	if !ok {
		return
	}
	_ = cg.g.RemoveVertex(id)
	delete(cg.nodeByID, id)
	delete(cg.idByNode, op)
	delete(cg.predOnWire, id)
	delete(cg.succOnWire, id)
}

// Nodes returns every registered Operator, in no particular order.
func (cg *CircuitGraph) Nodes() []qop.Operator {
	out := make([]qop.Operator, 0, len(cg.nodeByID))
	for _, op := range cg.nodeByID {
		out = append(out, op)
	}
	return out
}

// IDOf returns the synthetic vertex ID for op, if registered.
func (cg *CircuitGraph) IDOf(op qop.Operator) (string, bool) {
	id, ok := cg.idByNode[op]
	return id, ok
}

// NodeByID returns the Operator registered under id, if any.
func (cg *CircuitGraph) NodeByID(id string) (qop.Operator, bool) {
	op, ok := cg.nodeByID[id]
	return op, ok
}

// PredecessorOnWire returns the node immediately before op on wire w, if
// one exists (per-wire chains are total orders).
func (cg *CircuitGraph) PredecessorOnWire(op qop.Operator, w qop.Wire) (qop.Operator, bool) {
	id, ok := cg.idByNode[op]
	if !ok {
		return nil, false
	}
	pid, ok := cg.predOnWire[id][w]
	if !ok {
		return nil, false
	}
	return cg.nodeByID[pid], true
}

// SuccessorOnWire returns the node immediately after op on wire w, if
// one exists.
func (cg *CircuitGraph) SuccessorOnWire(op qop.Operator, w qop.Wire) (qop.Operator, bool) {
	id, ok := cg.idByNode[op]
	if !ok {
		return nil, false
	}
	sid, ok := cg.succOnWire[id][w]
	if !ok {
		return nil, false
	}
	return cg.nodeByID[sid], true
}

// Edge is a read-only view of one edge of the backbone graph, resolved
// back to Operator identities.
type Edge struct {
	ID   string
	From qop.Operator
	To   qop.Operator
	Wire qop.Wire
}

// Edges returns every edge in the graph, resolved to Operator endpoints.
func (cg *CircuitGraph) Edges() []Edge {
	raw := cg.g.Edges()
	out := make([]Edge, 0, len(raw))
	for _, e := range raw {
		out = append(out, Edge{
			ID:   e.ID,
			From: cg.nodeByID[e.From],
			To:   cg.nodeByID[e.To],
			Wire: cg.edgeWire[e.ID],
		})
	}
	return out
}

// RemoveEdge removes the backbone edge with the given ID.
func (cg *CircuitGraph) RemoveEdge(id string) error {
	if err := cg.g.RemoveEdge(id); err != nil {
		return err
	}
	delete(cg.edgeWire, id)
	return nil
}

// CutEdges returns every edge whose source is a *qop.MeasureNode. Each
// such edge's target MUST be a *qop.PrepareNode after cut expansion; a
// target of any other kind is a malformed-cut assertion failure
// (ErrMalformedCut), indicating a bug in a custom wire-cut expansion
// rather than a normal runtime condition.
func (cg *CircuitGraph) CutEdges() ([]Edge, error) {
	var out []Edge
	for _, e := range cg.Edges() {
		if _, isMeasure := e.From.(*qop.MeasureNode); !isMeasure {
			continue
		}
		if _, isPrepare := e.To.(*qop.PrepareNode); !isPrepare {
			return nil, ErrMalformedCut
		}
		out = append(out, e)
	}
	return out, nil
}

// Backbone exposes the underlying *core.Graph for packages (fragment)
// that need to run core/bfs/dfs algorithms directly against it.
func (cg *CircuitGraph) Backbone() *core.Graph {
	return cg.g
}

// Subgraph returns a new CircuitGraph containing exactly the nodes in
// keep (by synthetic ID) and the edges of this graph whose endpoints are
// both kept — an immutable-by-convention view sharing the same Operator
// identities as cg.
func (cg *CircuitGraph) Subgraph(keep map[string]bool) *CircuitGraph {
	induced := core.InducedSubgraph(cg.g, keep)

	out := &CircuitGraph{
		g:          induced,
		nodeByID:   make(map[string]qop.Operator),
		idByNode:   make(map[qop.Operator]string),
		edgeWire:   make(map[string]qop.Wire),
		predOnWire: make(map[string]map[qop.Wire]string),
		succOnWire: make(map[string]map[qop.Wire]string),
	}
	for id, op := range cg.nodeByID {
		if keep[id] {
			out.nodeByID[id] = op
			out.idByNode[op] = id
		}
	}
	for _, e := range induced.Edges() {
		w := cg.edgeWire[e.ID]
		out.edgeWire[e.ID] = w
		if out.succOnWire[e.From] == nil {
			out.succOnWire[e.From] = make(map[qop.Wire]string)
		}
		out.succOnWire[e.From][w] = e.To
		if out.predOnWire[e.To] == nil {
			out.predOnWire[e.To] = make(map[qop.Wire]string)
		}
		out.predOnWire[e.To][w] = e.From
	}
	return out
}
