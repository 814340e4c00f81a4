// File: qtensor.go
// Role: Tensor assembler. Reshapes a fragment's flat per-configuration
//       scalars into an axis-per-endpoint tensor,
//       scales it, and applies a change-of-basis matrix along every
//       prepare axis.
// Determinism:
//   - Data is stored row-major (axis 0 varies slowest), matching the
//     configure package's outermost-prepare iteration order.
package qtensor

import "math"

// Tensor is a dense tensor over a fixed per-axis cardinality, stored
// row-major.
type Tensor struct {
	Shape []int
	Data  []float64
}

// Assemble builds a fragment's tensor from its flat configuration
// scalars. prepareCardinalities and measureCardinalities give, in
// fragment-tape node order, the number of terms each prepare/measure
// endpoint carries — the axis sizes are read from the nodes rather than
// hard-coded to 4, since a custom wire-cut expansion may use a different
// term count.
func Assemble(scalars []float64, prepareCardinalities, measureCardinalities []int) (*Tensor, error) {
	shape := make([]int, 0, len(prepareCardinalities)+len(measureCardinalities))
	shape = append(shape, prepareCardinalities...)
	shape = append(shape, measureCardinalities...)

	total := 1
	for _, s := range shape {
		total *= s
	}
	if len(scalars) != total {
		return nil, ErrScalarCountMismatch
	}

	scale := math.Pow(2, -float64(len(shape))/2)
	data := make([]float64, total)
	for i, v := range scalars {
		data[i] = v * scale
	}

	t := &Tensor{Shape: shape, Data: data}
	for axis, card := range prepareCardinalities {
		if err := t.contractAxis(axis, ChangeOfBasisMatrix(card)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ChangeOfBasisMatrix returns the fixed 4x4 change-of-basis matrix for
// the standard simple-cut cardinality, converting the four basis-state
// preparation probabilities into Pauli-basis coefficients. For any
// other cardinality — only reachable via a custom wire-cut expansion —
// there is no standard transform to generalise to, so the identity
// matrix is returned: a custom expansion's term choices are taken to
// already be in the basis the caller wants contracted.
func ChangeOfBasisMatrix(n int) [][]float64 {
	if n == 4 {
		return [][]float64{
			{1, 1, 0, 0},
			{-1, -1, 2, 0},
			{-1, -1, 0, 2},
			{1, -1, 0, 0},
		}
	}
	return identity(n)
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

// contractAxis replaces t's data along axis with C applied to that axis:
// out[..., i, ...] = sum_j C[i][j] * t.Data[..., j, ...].
func (t *Tensor) contractAxis(axis int, c [][]float64) error {
	n := t.Shape[axis]
	if len(c) != n {
		return ErrMatrixShapeMismatch
	}

	inner := 1
	for i := axis + 1; i < len(t.Shape); i++ {
		inner *= t.Shape[i]
	}
	outer := 1
	for i := 0; i < axis; i++ {
		outer *= t.Shape[i]
	}

	out := make([]float64, len(t.Data))
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in
			for i := 0; i < n; i++ {
				var sum float64
				for j := 0; j < n; j++ {
					sum += c[i][j] * t.Data[base+j*inner]
				}
				out[base+i*inner] = sum
			}
		}
	}
	t.Data = out
	return nil
}
