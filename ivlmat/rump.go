package ivlmat

import (
	"math"
	"runtime"
	"sync"

	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/rounding"
)

// MulRump computes a * b via Rump's midpoint-radius algorithm (spec.md
// §4.6): split each operand into a float64 midpoint matrix and a float64
// (non-negative) radius matrix, perform two plain float64 matrix products
// on the midpoints (rounded down and up) to bound the midpoint product, then
// bound the radius term |mA|*rB + rA*(|mB|+rB) with two more rounded-up
// float64 products, so the result width grows only by a constant factor
// over a naive float64 matmul, instead of by the 2x blowup four-corner
// interval multiplication would pay per element. The four float64 products
// run sequentially; the final assembly of the output intervals is split
// into column bands computed in parallel goroutines, each writing disjoint
// output columns. Accumulation within a column runs left-to-right over k so
// a given element is bit-reproducible irrespective of how many goroutines
// ran. NG on the result is the OR of NG over both operands and the backend's
// own NotGuaranteed flag.
func MulRump(ops rounding.Ops, a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, errorf("MulRump", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, errorf("MulRump", ErrDimensionMismatch)
	}
	m, n, p := a.rows, a.cols, b.cols

	aMid, aRad, aNG := splitMidRad(ops, a)
	bMid, bRad, bNG := splitMidRad(ops, b)

	midDown := mulFloat(aMid, bMid, m, n, p, rounding.RoundDown)
	midUp := mulFloat(aMid, bMid, m, n, p, rounding.RoundUp)

	// absAMid[i,k] = |aMid[i,k]|, absBMid[k,j] = |bMid[k,j]|, used to bound
	// |mA|*rB + rA*(|mB|+rB) per spec.md §4.6's radius inequality.
	absAMid := make([]float64, len(aMid))
	for i, v := range aMid {
		absAMid[i] = math.Abs(v)
	}
	absBMid := make([]float64, len(bMid))
	for i, v := range bMid {
		absBMid[i] = math.Abs(v)
	}
	bMidRadSum := make([]float64, len(bMid))
	for i := range bMid {
		bMidRadSum[i] = ops.Add(absBMid[i], bRad[i], rounding.RoundUp)
	}

	term1 := mulFloat(absAMid, bRad, m, n, p, rounding.RoundUp)
	term2 := mulFloat(aRad, bMidRadSum, m, n, p, rounding.RoundUp)

	res, err := NewMatrix(m, p)
	if err != nil {
		return nil, errorf("MulRump", err)
	}

	ng := aNG || bNG || ops.NotGuaranteed()
	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > p {
		nWorkers = p
	}
	if nWorkers < 1 {
		nWorkers = 1
	}
	colsPerWorker := (p + nWorkers - 1) / nWorkers

	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		jStart := w * colsPerWorker
		jEnd := jStart + colsPerWorker
		if jEnd > p {
			jEnd = p
		}
		if jStart >= jEnd {
			continue
		}
		wg.Add(1)
		go func(jStart, jEnd int) {
			defer wg.Done()
			for i := 0; i < m; i++ {
				for j := jStart; j < jEnd; j++ {
					idx := i*p + j
					rad := ops.Add(term1[idx], term2[idx], rounding.RoundUp)
					lo := midDown[idx] - rad
					hi := midUp[idx] + rad
					if lo > hi {
						lo, hi = hi, lo
					}
					var iv ivl.Interval
					var err error
					if ng {
						iv, err = ivl.FromNonRepresentable(lo, hi)
					} else {
						iv, err = ivl.New(lo, hi)
					}
					if err != nil {
						iv = ivl.NaI
					}
					res.data[idx] = iv
				}
			}
		}(jStart, jEnd)
	}
	wg.Wait()

	return res, nil
}

// splitMidRad decomposes m's Interval entries into a midpoint float64 slice
// and a non-negative radius float64 slice: mid = (lo+hi)/2 rounded up, rad =
// mid - lo rounded up (so [lo,hi] subset [mid-rad, mid+rad] always holds,
// even for the canonical empty or unbounded entries which collapse to
// +Inf/NaN and propagate through the float matmul normally). The combined
// NG flag over every element is returned alongside.
func splitMidRad(ops rounding.Ops, m *Matrix) (mid, rad []float64, ng bool) {
	mid = make([]float64, len(m.data))
	rad = make([]float64, len(m.data))
	for i, v := range m.data {
		ng = ng || v.NG
		lo, hi := v.Bare.Lo, v.Bare.Hi
		mm := ops.Add(lo, hi, rounding.RoundUp) / 2
		r := ops.Sub(mm, lo, rounding.RoundUp)
		mid[i] = mm
		rad[i] = r
	}
	return mid, rad, ng
}

// mulFloat computes the m x p = (m x n)*(n x p) float64 product with every
// accumulation step rounded via dir, left-to-right over k.
func mulFloat(a, b []float64, m, n, p int, dir rounding.Direction) []float64 {
	out := make([]float64, m*p)
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			acc := 0.0
			for k := 0; k < n; k++ {
				term := a[i*n+k] * b[k*p+j]
				acc = roundAdd(acc, term, dir)
			}
			out[i*p+j] = acc
		}
	}
	return out
}

// roundAdd adds x+y and nudges the result outward by one ULP per dir, the
// same widening rounding.NoneOps applies, used here because the plain
// float64 kernel has no access to a rounding.Ops receiver mid-loop.
func roundAdd(x, y float64, dir rounding.Direction) float64 {
	sum := x + y
	switch dir {
	case rounding.RoundUp:
		return math.Nextafter(sum, math.Inf(1))
	case rounding.RoundDown:
		return math.Nextafter(sum, math.Inf(-1))
	default:
		return sum
	}
}
