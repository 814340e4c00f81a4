// File: transform.go
// Role: Top-level Transform — composes lifting, cut expansion, optional
//       auto-cut oracle insertion, fragmentation, lowering, and
//       configuration expansion, and returns a closure that finishes
//       the job (tensor assembly + contraction) once the caller's
//       simulator has evaluated every configuration tape.
package qcut

import (
	"github.com/katalvlaran/qcut/configure"
	"github.com/katalvlaran/qcut/contract"
	"github.com/katalvlaran/qcut/cut"
	"github.com/katalvlaran/qcut/fragment"
	"github.com/katalvlaran/qcut/oracle"
	"github.com/katalvlaran/qcut/qgraph"
	"github.com/katalvlaran/qcut/qop"
	"github.com/katalvlaran/qcut/qtape"
	"github.com/katalvlaran/qcut/qtensor"
)

// Result is the shape a simulator's per-configuration output must
// satisfy: a length query and indexing. simulate.Result implements
// this interface without importing this package.
type Result interface {
	Len() int
	At(i int) float64
}

// Plan is the output of Transform: the flat sequence of configuration
// tapes a simulator must evaluate, plus the closure that turns the
// simulator's per-tape results into the final contracted scalar.
type Plan struct {
	// Tapes is the flat concatenation of every fragment's configuration
	// tapes, in fragment-index order. A Simulator must return one Result
	// per entry, in this same order.
	Tapes []*qtape.Tape

	// Finish takes the simulator's results for Tapes, in the same order,
	// and runs tensor assembly and contraction to yield the original
	// circuit's expectation value.
	Finish func(results []Result) (float64, error)
}

// Option configures a Transform call.
type Option func(*transformConfig)

type transformConfig struct {
	oracleName string
	oracleCfg  oracle.Config
}

// WithOracle runs the named registered oracle against the lifted graph
// before fragmentation, splicing its cut instructions in as WireCut
// nodes and re-running cut expansion.
func WithOracle(name string, cfg oracle.Config) Option {
	return func(tc *transformConfig) {
		tc.oracleName = name
		tc.oracleCfg = cfg
	}
}

// Transform runs the full lift/cut/fragment/configure pipeline and
// returns the tapes a simulator must evaluate plus the closure that
// finishes the contraction. tape is not mutated.
func Transform(tape *qtape.Tape, opts ...Option) (*Plan, error) {
	tc := &transformConfig{}
	for _, opt := range opts {
		opt(tc)
	}

	cg, err := qgraph.Lift(tape)
	if err != nil {
		return nil, err
	}

	if err := cut.Expand(cg); err != nil {
		return nil, err
	}

	if tc.oracleName != "" {
		o, ok := oracle.Lookup(tc.oracleName)
		if !ok {
			return nil, oracle.ErrUnknownOracle
		}
		instructions, _, err := o(cg, tc.oracleCfg)
		if err != nil {
			return nil, err
		}
		if err := oracle.InsertCuts(cg, instructions); err != nil {
			return nil, err
		}
		if err := cut.Expand(cg); err != nil {
			return nil, err
		}
	}

	fragments, comm, err := fragment.Fragment(cg)
	if err != nil {
		return nil, err
	}

	n := len(fragments)
	prepareNodes := make([][]*qop.PrepareNode, n)
	measureNodes := make([][]*qop.MeasureNode, n)
	configCounts := make([]int, n)

	var flatTapes []*qtape.Tape
	offsets := make([]int, n)

	for i, frag := range fragments {
		fragTape := qgraph.ToTape(frag)
		res, err := configure.Expand(fragTape)
		if err != nil {
			return nil, err
		}
		prepareNodes[i] = res.PrepareNodes
		measureNodes[i] = res.MeasureNodes
		configCounts[i] = len(res.Tapes)
		offsets[i] = len(flatTapes)
		flatTapes = append(flatTapes, res.Tapes...)
	}

	axisSymbols, err := contract.AssignSymbols(comm, prepareNodes, measureNodes)
	if err != nil {
		return nil, err
	}

	finish := func(results []Result) (float64, error) {
		if len(results) != len(flatTapes) {
			return 0, ErrResultCountMismatch
		}

		tensors := make([]*qtensor.Tensor, n)
		for i := range fragments {
			scalars := make([]float64, configCounts[i])
			for j := 0; j < configCounts[i]; j++ {
				r := results[offsets[i]+j]
				if r.Len() != 1 {
					return 0, ErrResultArityMismatch
				}
				scalars[j] = r.At(0)
			}

			prepCards := termCounts(prepareNodes[i])
			measCards := measureTermCounts(measureNodes[i])
			t, err := qtensor.Assemble(scalars, prepCards, measCards)
			if err != nil {
				return 0, err
			}
			tensors[i] = t
		}

		return contract.Contract(tensors, axisSymbols)
	}

	return &Plan{Tapes: flatTapes, Finish: finish}, nil
}

func termCounts(nodes []*qop.PrepareNode) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = len(n.Terms)
	}
	return out
}

func measureTermCounts(nodes []*qop.MeasureNode) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = len(n.Terms)
	}
	return out
}
