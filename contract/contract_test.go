package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcut/contract"
	"github.com/katalvlaran/qcut/qgraph"
	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtensor"
)

func TestContract_SingleFragmentNoCutsIsIdentity(t *testing.T) {
	tensors := []*qtensor.Tensor{{Shape: nil, Data: []float64{0.75}}}
	symbols := [][]contract.Symbol{{}}

	result, err := contract.Contract(tensors, symbols)
	require.NoError(t, err)
	assert.Equal(t, 0.75, result)
}

func TestAssignSymbols_PairsMeasureAndPrepareAcrossFragments(t *testing.T) {
	m := qop.SimpleMeasureNode(0)
	p := qop.SimplePrepareNode(0)

	comm := &qgraph.CommunicationGraph{
		NumFragments: 2,
		Edges: []qgraph.CommunicationEdge{
			{From: 0, To: 1, Pair: qop.CutPair{Measure: m, Prepare: p}},
		},
	}
	prepareNodes := [][]*qop.PrepareNode{nil, {p}}
	measureNodes := [][]*qop.MeasureNode{{m}, nil}

	symbols, err := contract.AssignSymbols(comm, prepareNodes, measureNodes)
	require.NoError(t, err)
	require.Len(t, symbols, 2)
	require.Len(t, symbols[0], 1)
	require.Len(t, symbols[1], 1)
	assert.Equal(t, symbols[0][0], symbols[1][0])
}

func TestAssignSymbols_UnknownPrepareIsError(t *testing.T) {
	m := qop.SimpleMeasureNode(0)
	p := qop.SimplePrepareNode(0)
	other := qop.SimplePrepareNode(1)

	comm := &qgraph.CommunicationGraph{
		NumFragments: 2,
		Edges: []qgraph.CommunicationEdge{
			{From: 0, To: 1, Pair: qop.CutPair{Measure: m, Prepare: p}},
		},
	}
	prepareNodes := [][]*qop.PrepareNode{nil, {other}} // p is not in fragment 1's list
	measureNodes := [][]*qop.MeasureNode{{m}, nil}

	_, err := contract.AssignSymbols(comm, prepareNodes, measureNodes)
	assert.ErrorIs(t, err, contract.ErrNodeNotInFragment)
}

func TestContract_TwoFragmentsOneSharedSymbolIsDotProduct(t *testing.T) {
	m := qop.SimpleMeasureNode(0)
	p := qop.SimplePrepareNode(0)
	comm := &qgraph.CommunicationGraph{
		NumFragments: 2,
		Edges: []qgraph.CommunicationEdge{
			{From: 0, To: 1, Pair: qop.CutPair{Measure: m, Prepare: p}},
		},
	}
	prepareNodes := [][]*qop.PrepareNode{nil, {p}}
	measureNodes := [][]*qop.MeasureNode{{m}, nil}

	symbols, err := contract.AssignSymbols(comm, prepareNodes, measureNodes)
	require.NoError(t, err)

	tensors := []*qtensor.Tensor{
		{Shape: []int{4}, Data: []float64{1, 2, 3, 4}},
		{Shape: []int{4}, Data: []float64{10, 20, 30, 40}},
	}

	result, err := contract.Contract(tensors, symbols)
	require.NoError(t, err)
	assert.Equal(t, 300.0, result)
}

func TestContract_FragmentCountMismatchIsError(t *testing.T) {
	tensors := []*qtensor.Tensor{{Shape: nil, Data: []float64{1}}}
	symbols := [][]contract.Symbol{{}, {}}

	_, err := contract.Contract(tensors, symbols)
	assert.ErrorIs(t, err, contract.ErrFragmentCountMismatch)
}
