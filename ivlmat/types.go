package ivlmat

import (
	"fmt"

	"github.com/katalvlaran/ivlath/ivl"
)

// OperandKind tags the element kind a MatMul call operates over, collapsing
// spec.md §9's "multiple dispatch on operand mixes" note into a single enum
// branched on once per call (real/complex, float/interval, rational bypass).
type OperandKind uint8

const (
	// RealFloat: both operands are plain float64 matrices (no rounding
	// error to track); MatMul still produces an Interval result so the
	// caller can compose it with interval-valued operands.
	RealFloat OperandKind = iota
	// RealInterval: both operands are real Interval matrices.
	RealInterval
	// ComplexFloat: both operands are plain complex128-valued matrices.
	ComplexFloat
	// ComplexIntervalKind: both operands are ComplexInterval matrices.
	ComplexIntervalKind
	// RealRational: operands carry exact rational bounds; Rump's algorithm
	// is unnecessary (no float rounding error exists) and MatMul always
	// uses the naive path for this kind.
	RealRational
	// ComplexRational: the complex analogue of RealRational.
	ComplexRational
)

// String implements fmt.Stringer.
func (k OperandKind) String() string {
	switch k {
	case RealFloat:
		return "real-float"
	case RealInterval:
		return "real-interval"
	case ComplexFloat:
		return "complex-float"
	case ComplexIntervalKind:
		return "complex-interval"
	case RealRational:
		return "real-rational"
	case ComplexRational:
		return "complex-rational"
	default:
		return fmt.Sprintf("OperandKind(%d)", uint8(k))
	}
}

// UsesRump reports whether MatMul should route this kind through Rump's
// midpoint-radius algorithm rather than the naive triple loop. Rational
// kinds bypass Rump per spec.md §4.6: no float rounding error exists for
// them, so the naive path is both exact and cheaper.
func (k OperandKind) UsesRump() bool {
	return k == RealInterval || k == ComplexIntervalKind || k == RealFloat || k == ComplexFloat
}

// Vector is a dense slice of real Interval values.
type Vector []ivl.Interval

// ComplexVector is a dense slice of ComplexInterval values.
type ComplexVector []ivl.ComplexInterval

// Matrix is a row-major dense rectangular array of Interval, mirroring
// lvlath/matrix.Dense's flat []float64 layout one level up (spec.md §3).
type Matrix struct {
	rows, cols int
	data       []ivl.Interval
}

// NewMatrix allocates a rows x cols Matrix with every cell the canonical
// zero Interval [0,0].
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errorf("NewMatrix", ErrBadShape)
	}
	data := make([]ivl.Interval, rows*cols)
	zero, _ := ivl.New(0, 0)
	for i := range data {
		data[i] = zero
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows reports the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the Interval at (i, j).
func (m *Matrix) At(i, j int) (ivl.Interval, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ivl.Interval{}, errorf("At", ErrOutOfRange)
	}
	return m.data[i*m.cols+j], nil
}

// Set overwrites the Interval at (i, j).
func (m *Matrix) Set(i, j int, v ivl.Interval) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return errorf("Set", ErrOutOfRange)
	}
	m.data[i*m.cols+j] = v
	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]ivl.Interval, len(m.data))}
	copy(out.data, m.data)
	return out
}

// SameShape reports whether m and n have identical dimensions.
func (m *Matrix) SameShape(n *Matrix) bool {
	return m.rows == n.rows && m.cols == n.cols
}

// ComplexMatrix is a row-major dense rectangular array of ComplexInterval.
type ComplexMatrix struct {
	rows, cols int
	data       []ivl.ComplexInterval
}

// NewComplexMatrix allocates a rows x cols ComplexMatrix with every cell
// the canonical zero ComplexInterval (0,0) + i(0,0).
func NewComplexMatrix(rows, cols int) (*ComplexMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errorf("NewComplexMatrix", ErrBadShape)
	}
	zeroPart, _ := ivl.New(0, 0)
	zero := ivl.NewComplex(zeroPart, zeroPart)
	data := make([]ivl.ComplexInterval, rows*cols)
	for i := range data {
		data[i] = zero
	}
	return &ComplexMatrix{rows: rows, cols: cols, data: data}, nil
}

// Rows reports the number of rows.
func (m *ComplexMatrix) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *ComplexMatrix) Cols() int { return m.cols }

// At returns the ComplexInterval at (i, j).
func (m *ComplexMatrix) At(i, j int) (ivl.ComplexInterval, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ivl.ComplexInterval{}, errorf("At", ErrOutOfRange)
	}
	return m.data[i*m.cols+j], nil
}

// Set overwrites the ComplexInterval at (i, j).
func (m *ComplexMatrix) Set(i, j int, v ivl.ComplexInterval) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return errorf("Set", ErrOutOfRange)
	}
	m.data[i*m.cols+j] = v
	return nil
}
