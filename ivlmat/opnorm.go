package ivlmat

import (
	"math"

	"github.com/katalvlaran/ivlath/rounding"
)

// OpNorm1 returns ||A||_1 = max_j sum_i mag(A[i,j]), accumulated with
// round-up so the result is a valid (possibly over-wide) upper bound
// (spec.md §4.5). The NG flag of A is preserved and returned alongside.
func OpNorm1(ops rounding.Ops, a *Matrix) (norm float64, ng bool, err error) {
	if a == nil {
		return 0, false, errorf("OpNorm1", ErrNilMatrix)
	}
	best := 0.0
	for j := 0; j < a.cols; j++ {
		sum := 0.0
		for i := 0; i < a.rows; i++ {
			v := a.data[i*a.cols+j]
			ng = ng || v.NG
			sum = ops.Add(sum, mag(v.Bare.Lo, v.Bare.Hi), rounding.RoundUp)
		}
		if sum > best {
			best = sum
		}
	}
	return best, ng, nil
}

// OpNormInf returns ||A||_inf = max_i sum_j mag(A[i,j]), the row-sum
// analogue of OpNorm1.
func OpNormInf(ops rounding.Ops, a *Matrix) (norm float64, ng bool, err error) {
	if a == nil {
		return 0, false, errorf("OpNormInf", ErrNilMatrix)
	}
	best := 0.0
	for i := 0; i < a.rows; i++ {
		sum := 0.0
		for j := 0; j < a.cols; j++ {
			v := a.data[i*a.cols+j]
			ng = ng || v.NG
			sum = ops.Add(sum, mag(v.Bare.Lo, v.Bare.Hi), rounding.RoundUp)
		}
		if sum > best {
			best = sum
		}
	}
	return best, ng, nil
}

// mag returns max|x| over x in [lo, hi] -- the same magnitude the ivl
// package computes internally, duplicated here (unexported, one line) so
// ivlmat does not need an exported BareInterval accessor just for this.
func mag(lo, hi float64) float64 {
	return math.Max(math.Abs(lo), math.Abs(hi))
}
