package ivlmat

import (
	"github.com/katalvlaran/ivlath/config"
	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/rounding"
)

// MulNaive computes a * b via the triple-loop interval algorithm: each
// accumulator is an Interval updated by interval multiply-add, left-to-right
// over the inner index k for reproducibility (spec.md §4.6, §5's ordering
// guarantee). O(mnp) interval operations; tight but slow — grounded on
// lvlath/matrix/methods.go's Mul (same i-j-k loop nest, generalized from
// float64 accumulation to Interval accumulation).
func MulNaive(ops rounding.Ops, a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, errorf("MulNaive", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, errorf("MulNaive", ErrDimensionMismatch)
	}
	res, err := NewMatrix(a.rows, b.cols)
	if err != nil {
		return nil, errorf("MulNaive", err)
	}
	zero, _ := ivl.New(0, 0)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			acc := zero
			for k := 0; k < a.cols; k++ {
				av := a.data[i*a.cols+k]
				bv := b.data[k*b.cols+j]
				acc = acc.Add(ops, av.Mul(ops, bv))
			}
			res.data[i*res.cols+j] = acc
		}
	}
	return res, nil
}

// algorithmFor resolves the matmul algorithm a call should actually use:
// kind's own UsesRump() verdict overrides cfg whenever kind says Rump must
// not apply (the rational kinds, spec.md §4.6 — no float rounding error
// exists for them, so Rump's float-midpoint split would only add error for
// no benefit); otherwise cfg.MatMul() decides, per §6.1's `matmul` option.
// This is the single call site spec.md §9's "branch once per call on
// operand kind" dispatch note describes.
func algorithmFor(kind OperandKind, cfg config.Config) config.MatMul {
	if !kind.UsesRump() {
		return config.MatMulSlow
	}
	return cfg.MatMul()
}

// Mul computes a * b using the algorithm kind/cfg select: Rump's
// midpoint-radius kernel (default, config.MatMulFast, real/float/complex
// kinds) or the naive triple loop (config.MatMulSlow, or always for the
// rational kinds regardless of cfg), matching spec.md §4.6 and §6.1's
// `matmul` option.
func Mul(cfg config.Config, ops rounding.Ops, kind OperandKind, a, b *Matrix) (*Matrix, error) {
	if algorithmFor(kind, cfg) == config.MatMulSlow {
		return MulNaive(ops, a, b)
	}
	return MulRump(ops, a, b)
}

// addMatrices and subMatrices are the elementwise real-Matrix Add/Sub
// ScaleUpdate and the complex split-multiply combine step (cmatmul.go)
// build on, mirroring lvlath/matrix/methods.go's elementwise Add/Sub one
// level up (Interval cells instead of float64 cells).
func addMatrices(ops rounding.Ops, a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, errorf("addMatrices", ErrNilMatrix)
	}
	if !a.SameShape(b) {
		return nil, errorf("addMatrices", ErrDimensionMismatch)
	}
	res, err := NewMatrix(a.rows, a.cols)
	if err != nil {
		return nil, errorf("addMatrices", err)
	}
	for i, av := range a.data {
		res.data[i] = av.Add(ops, b.data[i])
	}
	return res, nil
}

func subMatrices(ops rounding.Ops, a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, errorf("subMatrices", ErrNilMatrix)
	}
	if !a.SameShape(b) {
		return nil, errorf("subMatrices", ErrDimensionMismatch)
	}
	res, err := NewMatrix(a.rows, a.cols)
	if err != nil {
		return nil, errorf("subMatrices", err)
	}
	for i, av := range a.data {
		res.data[i] = av.Sub(ops, b.data[i])
	}
	return res, nil
}

// ScaleUpdate computes C := alpha*(A*B) + beta*C_prev, the general form
// MatMul's scaling parameters produce (spec.md §4.6). alpha and beta are
// Intervals; NG on the result is the OR of NG on A, B, alpha, beta. Fast
// paths: alpha == [0,0] skips the A*B multiply entirely; beta == [0,0]
// skips reading C_prev; alpha/beta == [1,1] skip the corresponding Interval
// multiply.
func ScaleUpdate(cfg config.Config, ops rounding.Ops, kind OperandKind, a, b *Matrix, alpha ivl.Interval, prev *Matrix, beta ivl.Interval) (*Matrix, error) {
	if prev == nil {
		return nil, errorf("ScaleUpdate", ErrNilMatrix)
	}
	rows, cols := prev.rows, prev.cols
	res, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, errorf("ScaleUpdate", err)
	}

	isZero := func(v ivl.Interval) bool { return v.Bare.Lo == 0 && v.Bare.Hi == 0 }
	isOne := func(v ivl.Interval) bool { return v.Bare.Lo == 1 && v.Bare.Hi == 1 }

	ng := alpha.NG || beta.NG
	for _, m := range []*Matrix{a, b} {
		if m != nil {
			for _, v := range m.data {
				ng = ng || v.NG
			}
		}
	}

	var ab *Matrix
	if !isZero(alpha) {
		if a == nil || b == nil {
			return nil, errorf("ScaleUpdate", ErrNilMatrix)
		}
		ab, err = Mul(cfg, ops, kind, a, b)
		if err != nil {
			return nil, errorf("ScaleUpdate", err)
		}
		if ab.rows != rows || ab.cols != cols {
			return nil, errorf("ScaleUpdate", ErrDimensionMismatch)
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			term1, _ := ivl.New(0, 0)
			if ab != nil {
				v := ab.data[i*cols+j]
				if !isOne(alpha) {
					v = alpha.Mul(ops, v)
				}
				term1 = v
			}
			term2, _ := ivl.New(0, 0)
			if !isZero(beta) {
				v := prev.data[i*cols+j]
				if !isOne(beta) {
					v = beta.Mul(ops, v)
				}
				term2 = v
			}
			v := term1.Add(ops, term2)
			v.NG = v.NG || ng
			res.data[i*cols+j] = v
		}
	}
	return res, nil
}
