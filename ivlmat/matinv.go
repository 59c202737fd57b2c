package ivlmat

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ivlath/config"
	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/rounding"
)

// ErrSingular describes a matrix that is singular or whose inverse cannot be
// verified. MatInv does not return it: it reports that outcome as an
// all-NaI result with a nil error (spec.md §4.7's "fail to NaI, never
// guess").
var ErrSingular = errors.New("ivlmat: matrix is singular or inversion could not be verified")

// MatInv computes a verified enclosure of A^-1 via the Brouwer
// fixed-point / Neumann-series test (spec.md §4.7):
//
//	Stage 1 (Validate): A must be square.
//	Stage 2 (Approximate): invert mid(A) in plain float64 via gonum's LU.
//	Stage 3 (Residual): F = A*approxInv - I, computed in interval arithmetic
//	                     so F's width captures both approxInv's rounding
//	                     error and A's own input uncertainty.
//	Stage 4 (Contract):  Z1 = ||F||_inf; if Z1 >= 1 the Neumann series may
//	                     not converge -- return all-NaI.
//	Stage 5 (Inflate):   Y = ||approxInv * F||_inf; radius = Y/(1-Z1);
//	                     return approxInv with every entry widened by
//	                     radius (spec.md's enclosure: A^-1 subset
//	                     approxInv + [-radius,radius] elementwise).
//
// Complexity: O(n^3) for the float64 LU step plus O(n^3) interval matmuls
// for the residual and inflation products.
func MatInv(cfg config.Config, ops rounding.Ops, a *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, errorf("MatInv", ErrNilMatrix)
	}
	n := a.rows
	if n != a.cols {
		return nil, errorf("MatInv", ErrNonSquare)
	}

	// Stage 2: approximate inverse of the midpoint matrix.
	mid := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.data[i*n+j]
			mid.Set(i, j, (v.Bare.Lo+v.Bare.Hi)/2)
		}
	}
	var approx mat.Dense
	if err := approx.Inverse(mid); err != nil {
		return nai(n)
	}

	approxInv, err := NewMatrix(n, n)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			iv, err := ivl.New(approx.At(i, j), approx.At(i, j))
			if err != nil {
				return nai(n)
			}
			approxInv.data[i*n+j] = iv
		}
	}

	// Stage 3: residual F = A*approxInv - I.
	ab, err := MulNaive(ops, a, approxInv)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	f, err := NewMatrix(n, n)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	one, _ := ivl.New(1, 1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := ab.data[i*n+j]
			if i == j {
				v = v.Sub(ops, one)
			}
			f.data[i*n+j] = v
		}
	}

	// Stage 4: contraction test.
	z1, fNG, err := OpNormInf(ops, f)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	if z1 >= 1 {
		return nai(n)
	}

	// Stage 5: inflate approxInv by Y/(1-Z1).
	approxInvF, err := MulNaive(ops, approxInv, f)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	y, yNG, err := OpNormInf(ops, approxInvF)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	radius := ops.Div(y, ops.Sub(1, z1, rounding.RoundDown), rounding.RoundUp)

	ng := fNG || yNG
	result, err := NewMatrix(n, n)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			center := approxInv.data[i*n+j]
			lo := ops.Sub(center.Bare.Lo, radius, rounding.RoundDown)
			hi := ops.Add(center.Bare.Hi, radius, rounding.RoundUp)
			var iv ivl.Interval
			if ng {
				iv, err = ivl.FromNonRepresentable(lo, hi)
			} else {
				iv, err = ivl.New(lo, hi)
			}
			if err != nil {
				return nai(n)
			}
			result.data[i*n+j] = iv
		}
	}
	return result, nil
}

// nai returns an n x n Matrix with every entry the NaI sentinel.
func nai(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, errorf("MatInv", err)
	}
	for i := range m.data {
		m.data[i] = ivl.NaI
	}
	return m, nil
}
