package ivlmat

import (
	"math"

	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/rounding"
)

// addComplexMatrices and subComplexMatrices are the elementwise
// ComplexMatrix Add/Sub helpers EigSolver's similarity-refinement step
// (B = Lambda + correction, AV - VLambda) builds on, the complex analogue
// of addMatrices/subMatrices.
func addComplexMatrices(ops rounding.Ops, a, b *ComplexMatrix) (*ComplexMatrix, error) {
	if a == nil || b == nil {
		return nil, errorf("addComplexMatrices", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, errorf("addComplexMatrices", ErrDimensionMismatch)
	}
	out := &ComplexMatrix{rows: a.rows, cols: a.cols, data: make([]ivl.ComplexInterval, len(a.data))}
	for i, av := range a.data {
		out.data[i] = av.Add(ops, b.data[i])
	}
	return out, nil
}

func subComplexMatrices(ops rounding.Ops, a, b *ComplexMatrix) (*ComplexMatrix, error) {
	if a == nil || b == nil {
		return nil, errorf("subComplexMatrices", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, errorf("subComplexMatrices", ErrDimensionMismatch)
	}
	out := &ComplexMatrix{rows: a.rows, cols: a.cols, data: make([]ivl.ComplexInterval, len(a.data))}
	for i, av := range a.data {
		out.data[i] = av.Sub(ops, b.data[i])
	}
	return out, nil
}

// complexIdentity returns the n x n ComplexMatrix identity (thin 1 on the
// diagonal, thin 0 elsewhere).
func complexIdentity(n int) (*ComplexMatrix, error) {
	m, err := NewComplexMatrix(n, n)
	if err != nil {
		return nil, err
	}
	one, _ := ivl.New(1, 1)
	zero, _ := ivl.New(0, 0)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = ivl.NewComplex(one, zero)
	}
	return m, nil
}

// thinComplexMatrix lifts a plain n x n complex128 slice into a
// ComplexMatrix of thin (zero-radius) ComplexInterval entries -- spec.md
// §4.8 step 3's "V = interval(midV)" literal lift.
func thinComplexMatrix(n int, vals []complex128) (*ComplexMatrix, error) {
	m, err := NewComplexMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		re, err := ivl.New(real(v), real(v))
		if err != nil {
			return nil, err
		}
		im, err := ivl.New(imag(v), imag(v))
		if err != nil {
			return nil, err
		}
		m.data[i] = ivl.NewComplex(re, im)
	}
	return m, nil
}

// complexMagBound returns a valid (rounded-up) upper bound on |z| for a
// ComplexInterval z: sqrt(mag(Re)^2 + mag(Im)^2), each step rounded toward
// +Inf so the bound never underestimates.
func complexMagBound(ops rounding.Ops, z ivl.ComplexInterval) float64 {
	mre := mag(z.Re.Bare.Lo, z.Re.Bare.Hi)
	mim := mag(z.Im.Bare.Lo, z.Im.Bare.Hi)
	sumSq := ops.Add(ops.Mul(mre, mre, rounding.RoundUp), ops.Mul(mim, mim, rounding.RoundUp), rounding.RoundUp)
	return ops.Sqrt(sumSq, rounding.RoundUp)
}

// ComplexOpNormInf returns ||A||_inf = max_i sum_j |A[i,j]| for a
// ComplexMatrix, the complex analogue of OpNormInf, used by
// ComplexMatInv's contraction test.
func ComplexOpNormInf(ops rounding.Ops, a *ComplexMatrix) (norm float64, ng bool, err error) {
	if a == nil {
		return 0, false, errorf("ComplexOpNormInf", ErrNilMatrix)
	}
	best := 0.0
	for i := 0; i < a.rows; i++ {
		sum := 0.0
		for j := 0; j < a.cols; j++ {
			v := a.data[i*a.cols+j]
			ng = ng || v.Re.NG || v.Im.NG
			sum = ops.Add(sum, complexMagBound(ops, v), rounding.RoundUp)
		}
		if sum > best {
			best = sum
		}
	}
	return best, ng, nil
}

// gaussJordanComplex inverts the n x n plain complex128 matrix a via
// Gauss-Jordan elimination with partial pivoting (by modulus). Returns
// ok=false when no pivot exceeds a small modulus threshold (a is
// numerically singular). This is the unverified float-level solve spec.md
// §4.8 step 2 calls "midV \ (...)" and the approximate inner inverse
// ComplexMatInv's verification wraps.
func gaussJordanComplex(n int, a [][]complex128) (inv [][]complex128, ok bool) {
	aug := make([][]complex128, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]complex128, 2*n)
		copy(aug[i], a[i])
		aug[i][n+i] = 1
	}
	for col := 0; col < n; col++ {
		pivot := col
		best := math.Hypot(real(aug[col][col]), imag(aug[col][col]))
		for r := col + 1; r < n; r++ {
			m := math.Hypot(real(aug[r][col]), imag(aug[r][col]))
			if m > best {
				best, pivot = m, r
			}
		}
		if best < 1e-14 {
			return nil, false
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		p := aug[col][col]
		for k := 0; k < 2*n; k++ {
			aug[col][k] /= p
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for k := 0; k < 2*n; k++ {
				aug[r][k] -= factor * aug[col][k]
			}
		}
	}
	inv = make([][]complex128, n)
	for i := 0; i < n; i++ {
		inv[i] = append([]complex128(nil), aug[i][n:]...)
	}
	return inv, true
}

// ComplexMatInv computes a verified enclosure of A^-1 for a square
// ComplexMatrix via the same Brouwer fixed-point / Neumann-series test as
// MatInv (spec.md §4.7), generalized to complex arithmetic: the
// approximate inverse comes from gaussJordanComplex on the midpoint matrix
// rather than gonum's real-only LU, and norms are ComplexOpNormInf instead
// of OpNormInf. Used internally by EigSolver's similarity-refinement step,
// which needs a verified inv(V) for a genuinely complex V.
func ComplexMatInv(ops rounding.Ops, a *ComplexMatrix) (*ComplexMatrix, error) {
	if a == nil {
		return nil, errorf("ComplexMatInv", ErrNilMatrix)
	}
	n := a.rows
	if n != a.cols {
		return nil, errorf("ComplexMatInv", ErrNonSquare)
	}

	mid := make([][]complex128, n)
	for i := 0; i < n; i++ {
		mid[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			v := a.data[i*n+j]
			mid[i][j] = complex((v.Re.Bare.Lo+v.Re.Bare.Hi)/2, (v.Im.Bare.Lo+v.Im.Bare.Hi)/2)
		}
	}
	approx, ok := gaussJordanComplex(n, mid)
	if !ok {
		return complexNaI(n)
	}
	flat := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		copy(flat[i*n:i*n+n], approx[i])
	}
	approxInv, err := thinComplexMatrix(n, flat)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}

	af, err := ComplexMulNaive(ops, a, approxInv)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}
	id, err := complexIdentity(n)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}
	f, err := subComplexMatrices(ops, af, id)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}

	z1, fNG, err := ComplexOpNormInf(ops, f)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}
	if z1 >= 1 {
		return complexNaI(n)
	}

	approxInvF, err := ComplexMulNaive(ops, approxInv, f)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}
	y, yNG, err := ComplexOpNormInf(ops, approxInvF)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}
	radius := ops.Div(y, ops.Sub(1, z1, rounding.RoundDown), rounding.RoundUp)

	ng := fNG || yNG
	result, err := NewComplexMatrix(n, n)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := approxInv.data[i*n+j]
			reLo := ops.Sub(c.Re.Bare.Lo, radius, rounding.RoundDown)
			reHi := ops.Add(c.Re.Bare.Hi, radius, rounding.RoundUp)
			imLo := ops.Sub(c.Im.Bare.Lo, radius, rounding.RoundDown)
			imHi := ops.Add(c.Im.Bare.Hi, radius, rounding.RoundUp)
			var re, im ivl.Interval
			if ng {
				re, err = ivl.FromNonRepresentable(reLo, reHi)
				if err == nil {
					im, err = ivl.FromNonRepresentable(imLo, imHi)
				}
			} else {
				re, err = ivl.New(reLo, reHi)
				if err == nil {
					im, err = ivl.New(imLo, imHi)
				}
			}
			if err != nil {
				return complexNaI(n)
			}
			result.data[i*n+j] = ivl.NewComplex(re, im)
		}
	}
	return result, nil
}

// complexNaI returns an n x n ComplexMatrix with every entry NaI.
func complexNaI(n int) (*ComplexMatrix, error) {
	m, err := NewComplexMatrix(n, n)
	if err != nil {
		return nil, errorf("ComplexMatInv", err)
	}
	for i := range m.data {
		m.data[i] = ivl.NaIComplex
	}
	return m, nil
}
