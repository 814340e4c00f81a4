package qgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcut/dfs"
	"github.com/katalvlaran/qcut/qgraph"
	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtape"
)

func TestLift_SimpleChain(t *testing.T) {
	tp := qtape.New()
	h := tp.Append(qop.NewGate("Hadamard", []qop.Wire{0}))
	cnot := tp.Append(qop.NewGate("CNOT", []qop.Wire{0, 1}))
	tp.AppendMeasurement(qop.NewExpectationMeasurement(qop.NewObservable(
		qop.PauliFactor{Wire: 0, Pauli: qop.Z},
		qop.PauliFactor{Wire: 1, Pauli: qop.Z},
	)))

	cg, err := qgraph.Lift(tp)
	require.NoError(t, err)
	assert.Len(t, cg.Nodes(), 4) // H, CNOT, and two split measurements

	pred, ok := cg.PredecessorOnWire(cnot, 0)
	assert.True(t, ok)
	assert.Same(t, h, pred)
}

func TestLift_ProducesAcyclicBackbone(t *testing.T) {
	tp := qtape.New()
	tp.Append(qop.NewGate("H", []qop.Wire{0}))
	tp.Append(qop.NewGate("CNOT", []qop.Wire{0, 1}))
	cg, err := qgraph.Lift(tp)
	require.NoError(t, err)

	cyclic, _, err := dfs.DetectCycles(cg.Backbone())
	require.NoError(t, err)
	assert.False(t, cyclic)
}

func TestToTape_FreshWireOnMeasureNode(t *testing.T) {
	cg := qgraph.New()
	meas := qop.SimpleMeasureNode(0)
	qop.SetOrder(meas, 0)
	cg.AddNode(meas)

	after := qop.NewGate("H", []qop.Wire{0})
	qop.SetOrder(after, 1)
	require.NoError(t, cg.AddEdge(meas, after, 0))

	out := qgraph.ToTape(cg)
	require.Len(t, out.Operations, 2)
	assert.Equal(t, []qop.Wire{0}, meas.Wires(), "the measure node itself stays on its pre-measurement wire")
	assert.Equal(t, []qop.Wire{1}, after.Wires(), "anything after the measure node on wire 0 moves to a fresh wire")
}

func TestSubgraph_PreservesNodeIdentity(t *testing.T) {
	tp := qtape.New()
	h := tp.Append(qop.NewGate("H", []qop.Wire{0}))
	x := tp.Append(qop.NewGate("PauliX", []qop.Wire{1}))
	cg, err := qgraph.Lift(tp)
	require.NoError(t, err)

	hid, _ := cg.IDOf(h)
	sub := cg.Subgraph(map[string]bool{hid: true})
	require.Len(t, sub.Nodes(), 1)
	assert.Same(t, h, sub.Nodes()[0])
	_, found := sub.IDOf(x)
	assert.False(t, found)
}
