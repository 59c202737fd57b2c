package rounding

import "github.com/mexicantexan/go-mpfr"

// mpfrTranscendental wraps github.com/mexicantexan/go-mpfr, the pack's only
// binding exposing a correctly-rounded math library with a settable
// per-call rounding direction (mpfr.Float.RoundingMode) — exactly the
// contract spec.md §6.3 requires of the "correct" backend's external
// library.
//
// The vendored binding does not (yet) wrap every MPFR entry point:
// mpfr.Float has no Sin, Expm1, Log1p, Log2 or Log10 method. Those five
// calls delegate to fallback, which is exactly spec.md §6.3's fallback
// clause in practice: "if such a library is unavailable [for a given
// function], widen to the next-higher precision, evaluate, and round back
// out".
type mpfrTranscendental struct {
	fallback Transcendental
}

func mpfrRound(dir Direction) mpfr.Rnd {
	switch dir {
	case RoundUp:
		return mpfr.RoundUp
	case RoundDown:
		return mpfr.RoundDown
	case RoundTowardZero:
		return mpfr.RoundToward0
	default:
		return mpfr.RoundToNearest
	}
}

// mpfrWorkingPrec is comfortably above binary64's 53-bit mantissa so the
// final GetFloat64 narrowing is the only rounding step that matters.
const mpfrWorkingPrec = 120

// eval1 runs a unary mpfr op with the requested rounding direction and
// returns the float64 result.
func eval1(x float64, dir Direction, op func(dst, src *mpfr.Float) *mpfr.Float) float64 {
	rnd := mpfrRound(dir)
	src := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	src.SetRoundMode(rnd)
	src.SetFloat64(x)
	dst := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	dst.SetRoundMode(rnd)
	op(dst, src)

	return dst.GetFloat64()
}

func (m mpfrTranscendental) Exp(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Exp(src) })
}
func (m mpfrTranscendental) Exp2(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Exp2(src) })
}
func (m mpfrTranscendental) Exp10(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Exp10(src) })
}
func (m mpfrTranscendental) Expm1(x float64, dir Direction) float64 {
	return m.fallback.Expm1(x, dir)
}
func (m mpfrTranscendental) Log(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Log(src) })
}
func (m mpfrTranscendental) Log2(x float64, dir Direction) float64 {
	return m.fallback.Log2(x, dir)
}
func (m mpfrTranscendental) Log10(x float64, dir Direction) float64 {
	return m.fallback.Log10(x, dir)
}
func (m mpfrTranscendental) Log1p(x float64, dir Direction) float64 {
	return m.fallback.Log1p(x, dir)
}
func (m mpfrTranscendental) Sin(x float64, dir Direction) float64 {
	return m.fallback.Sin(x, dir)
}
func (m mpfrTranscendental) Cos(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Cos(src) })
}
func (m mpfrTranscendental) Tan(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Tan(src) })
}
func (m mpfrTranscendental) Asin(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Asin(src) })
}
func (m mpfrTranscendental) Acos(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Acos(src) })
}
func (m mpfrTranscendental) Atan(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Atan(src) })
}
func (m mpfrTranscendental) Sinh(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Sinh(src) })
}
func (m mpfrTranscendental) Cosh(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Cosh(src) })
}
func (m mpfrTranscendental) Tanh(x float64, dir Direction) float64 {
	return eval1(x, dir, func(dst, src *mpfr.Float) *mpfr.Float { return dst.Tanh(src) })
}

func (m mpfrTranscendental) Pow(x, y float64, dir Direction) float64 {
	rnd := mpfrRound(dir)
	bx := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	bx.SetRoundMode(rnd)
	bx.SetFloat64(x)
	by := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	by.SetRoundMode(rnd)
	by.SetFloat64(y)
	dst := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	dst.SetRoundMode(rnd)
	dst.Pow(bx, by)

	return dst.GetFloat64()
}

func (m mpfrTranscendental) Atan2(y, x float64, dir Direction) float64 {
	rnd := mpfrRound(dir)
	by := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	by.SetRoundMode(rnd)
	by.SetFloat64(y)
	bx := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	bx.SetRoundMode(rnd)
	bx.SetFloat64(x)
	dst := mpfr.NewFloatWithPrec(mpfrWorkingPrec)
	dst.SetRoundMode(rnd)
	dst.Atan2(by, bx)

	return dst.GetFloat64()
}
