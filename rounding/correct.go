package rounding

import (
	"math"
	"math/big"
)

// guardPrec is the internal big.Float precision used to evaluate basic
// arithmetic before rounding back to float64 in the requested direction.
// It is generous enough that add/sub/mul are exact at this precision and
// div/sqrt incur no observable double-rounding error at binary64.
const guardPrec = 200

// CorrectOps implements Ops with correctly-rounded arithmetic: algebraic
// operations (add/sub/mul/div/sqrt/fma/inv, and rootn for n = 2) are
// evaluated in math/big.Float at guardPrec and rounded to float64 in the
// requested direction using big.Float's native rounding modes (math/big
// already supports the four IEEE directions ivlath needs, one-for-one).
// Pow, Atan2, RootN for n != 2 and the elementary transcendentals delegate
// to a Transcendental provider: the primary provider binds
// github.com/mexicantexan/go-mpfr (whose Float.RoundingMode is settable per
// call, meeting spec.md §6.3's external-library contract directly); the
// functions that binding does not wrap (Sin, Expm1, Log1p, Log2, Log10)
// always go to widenTranscendental (rounding/widen.go, built on
// github.com/ALTree/bigfloat), which implements §6.3's "widen to the
// next-higher precision, evaluate, round back out" clause.
type CorrectOps struct {
	trans Transcendental
}

// NewCorrectOps constructs a CorrectOps using the mpfr-backed transcendental
// provider, whose Sin, Expm1, Log1p, Log2 and Log10 delegate to the bigfloat
// widen path (see mpfrTranscendental).
func NewCorrectOps() CorrectOps {
	return CorrectOps{trans: mpfrTranscendental{fallback: widenTranscendental{}}}
}

// NotGuaranteed always reports false for the Correct backend.
func (CorrectOps) NotGuaranteed() bool { return false }

// bigMode maps a rounding Direction to math/big's native RoundingMode.
func bigMode(dir Direction) big.RoundingMode {
	switch dir {
	case RoundUp:
		return big.ToPositiveInf
	case RoundDown:
		return big.ToNegativeInf
	case RoundTowardZero:
		return big.ToZero
	default:
		return big.ToNearestEven
	}
}

// roundFloat64 rounds z to a float64 in the given direction. big.Float's
// Float64 always rounds to nearest on narrowing, so the narrowing step is
// done via a second, prec-53 big.Float carrying the same directional mode.
func roundFloat64(z *big.Float, dir Direction) float64 {
	if z.IsInf() {
		if z.Sign() > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	narrow := new(big.Float).SetPrec(53).SetMode(bigMode(dir))
	narrow.Set(z)
	f, _ := narrow.Float64()
	return f
}

func bigFrom(x float64) *big.Float {
	return new(big.Float).SetPrec(guardPrec).SetFloat64(x)
}

func (c CorrectOps) Add(x, y float64, dir Direction) float64 {
	z := new(big.Float).SetPrec(guardPrec).Add(bigFrom(x), bigFrom(y))
	return roundFloat64(z, dir)
}

func (c CorrectOps) Sub(x, y float64, dir Direction) float64 {
	z := new(big.Float).SetPrec(guardPrec).Sub(bigFrom(x), bigFrom(y))
	return roundFloat64(z, dir)
}

func (c CorrectOps) Mul(x, y float64, dir Direction) float64 {
	z := new(big.Float).SetPrec(guardPrec).Mul(bigFrom(x), bigFrom(y))
	return roundFloat64(z, dir)
}

func (c CorrectOps) Div(x, y float64, dir Direction) float64 {
	if y == 0 {
		return math.NaN()
	}
	z := new(big.Float).SetPrec(guardPrec).Quo(bigFrom(x), bigFrom(y))
	return roundFloat64(z, dir)
}

func (c CorrectOps) Sqrt(x float64, dir Direction) float64 {
	if x < 0 {
		return math.NaN()
	}
	z := new(big.Float).SetPrec(guardPrec).Sqrt(bigFrom(x))
	return roundFloat64(z, dir)
}

func (c CorrectOps) FMA(x, y, z float64, dir Direction) float64 {
	prod := new(big.Float).SetPrec(guardPrec).Mul(bigFrom(x), bigFrom(y))
	sum := new(big.Float).SetPrec(guardPrec).Add(prod, bigFrom(z))
	return roundFloat64(sum, dir)
}

func (c CorrectOps) Inv(x float64, dir Direction) float64 {
	return c.Div(1, x, dir)
}

func (c CorrectOps) RootN(x float64, n int, dir Direction) float64 {
	if n == 2 {
		return c.Sqrt(x, dir)
	}
	return c.trans.Pow(x, 1/float64(n), dir)
}

func (c CorrectOps) Pow(x, y float64, dir Direction) float64 { return c.trans.Pow(x, y, dir) }
func (c CorrectOps) Atan2(y, x float64, dir Direction) float64 {
	return c.trans.Atan2(y, x, dir)
}

func (c CorrectOps) Exp(x float64, dir Direction) float64   { return c.trans.Exp(x, dir) }
func (c CorrectOps) Exp2(x float64, dir Direction) float64  { return c.trans.Exp2(x, dir) }
func (c CorrectOps) Exp10(x float64, dir Direction) float64 { return c.trans.Exp10(x, dir) }
func (c CorrectOps) Expm1(x float64, dir Direction) float64 { return c.trans.Expm1(x, dir) }
func (c CorrectOps) Log(x float64, dir Direction) float64   { return c.trans.Log(x, dir) }
func (c CorrectOps) Log2(x float64, dir Direction) float64  { return c.trans.Log2(x, dir) }
func (c CorrectOps) Log10(x float64, dir Direction) float64 { return c.trans.Log10(x, dir) }
func (c CorrectOps) Log1p(x float64, dir Direction) float64 { return c.trans.Log1p(x, dir) }
func (c CorrectOps) Sin(x float64, dir Direction) float64   { return c.trans.Sin(x, dir) }
func (c CorrectOps) Cos(x float64, dir Direction) float64   { return c.trans.Cos(x, dir) }
func (c CorrectOps) Tan(x float64, dir Direction) float64   { return c.trans.Tan(x, dir) }
func (c CorrectOps) Asin(x float64, dir Direction) float64  { return c.trans.Asin(x, dir) }
func (c CorrectOps) Acos(x float64, dir Direction) float64  { return c.trans.Acos(x, dir) }
func (c CorrectOps) Atan(x float64, dir Direction) float64  { return c.trans.Atan(x, dir) }
func (c CorrectOps) Sinh(x float64, dir Direction) float64  { return c.trans.Sinh(x, dir) }
func (c CorrectOps) Cosh(x float64, dir Direction) float64  { return c.trans.Cosh(x, dir) }
func (c CorrectOps) Tanh(x float64, dir Direction) float64  { return c.trans.Tanh(x, dir) }
