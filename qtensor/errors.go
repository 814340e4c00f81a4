// File: errors.go
// Role: Sentinel errors for the qtensor package.
package qtensor

import "errors"

var (
	// ErrScalarCountMismatch indicates the flat scalar slice handed to
	// Assemble does not have exactly product(shape) elements.
	ErrScalarCountMismatch = errors.New("qtensor: scalar count does not match axis shape")

	// ErrMatrixShapeMismatch indicates a change-of-basis matrix's row
	// count does not match the axis cardinality it is being applied to.
	ErrMatrixShapeMismatch = errors.New("qtensor: change-of-basis matrix shape does not match axis cardinality")
)
