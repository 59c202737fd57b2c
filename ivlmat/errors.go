// Package ivlmat implements interval-valued vectors and matrices: verified
// matrix multiplication (naive and Rump's midpoint-radius algorithm),
// verified matrix inversion, verified eigenvalue enclosure, and operator
// norms — spec.md §4.5-§4.8.
package ivlmat

import "errors"

// Sentinel errors, one unified errors.go per package, matching
// lvlath/matrix/errors.go's convention.
var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("ivlmat: invalid shape")

	// ErrOutOfRange indicates an index outside a matrix's or vector's bounds.
	ErrOutOfRange = errors.New("ivlmat: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// (Add/Sub different shapes, MatMul inner-dimension mismatch, ...).
	ErrDimensionMismatch = errors.New("ivlmat: dimension mismatch")

	// ErrNonSquare is returned by MatInv/EigSolver when given a non-square
	// matrix.
	ErrNonSquare = errors.New("ivlmat: matrix is not square")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("ivlmat: nil matrix")
)

// errorf wraps err with an operation tag, matching the teacher's
// fmt.Errorf("%s: %w", tag, err) convention (lvlath/matrix/methods.go's
// matrixErrorf).
func errorf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
