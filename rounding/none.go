package rounding

import "math"

// NoneOps implements Ops with native float64 math, widened by one ULP in
// the requested direction via math.Nextafter. Selecting this backend
// (config.RoundingNone) approximates correct rounding conservatively and
// raises NG on every result (spec.md §4.1).
type NoneOps struct{}

// NotGuaranteed always reports true for the None backend.
func (NoneOps) NotGuaranteed() bool { return true }

// widen nudges v one ULP in dir's direction. RoundNearest and
// RoundTowardZero pass v through unwidened: the widening obligation only
// applies to the directed (outward) rounds BareInterval actually uses.
func widen(v float64, dir Direction) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	switch dir {
	case RoundUp:
		return math.Nextafter(v, math.Inf(1))
	case RoundDown:
		return math.Nextafter(v, math.Inf(-1))
	default:
		return v
	}
}

func (NoneOps) Add(x, y float64, dir Direction) float64 { return widen(x+y, dir) }
func (NoneOps) Sub(x, y float64, dir Direction) float64 { return widen(x-y, dir) }
func (NoneOps) Mul(x, y float64, dir Direction) float64 { return widen(x*y, dir) }
func (NoneOps) Div(x, y float64, dir Direction) float64 { return widen(x/y, dir) }
func (NoneOps) Sqrt(x float64, dir Direction) float64   { return widen(math.Sqrt(x), dir) }
func (NoneOps) FMA(x, y, z float64, dir Direction) float64 {
	return widen(math.FMA(x, y, z), dir)
}
func (NoneOps) Pow(x, y float64, dir Direction) float64 { return widen(math.Pow(x, y), dir) }
func (NoneOps) Inv(x float64, dir Direction) float64    { return widen(1/x, dir) }
func (NoneOps) RootN(x float64, n int, dir Direction) float64 {
	return widen(math.Pow(x, 1/float64(n)), dir)
}
func (NoneOps) Atan2(y, x float64, dir Direction) float64 { return widen(math.Atan2(y, x), dir) }

func (NoneOps) Exp(x float64, dir Direction) float64   { return widen(math.Exp(x), dir) }
func (NoneOps) Exp2(x float64, dir Direction) float64   { return widen(math.Exp2(x), dir) }
func (NoneOps) Exp10(x float64, dir Direction) float64  { return widen(math.Pow(10, x), dir) }
func (NoneOps) Expm1(x float64, dir Direction) float64  { return widen(math.Expm1(x), dir) }
func (NoneOps) Log(x float64, dir Direction) float64    { return widen(math.Log(x), dir) }
func (NoneOps) Log2(x float64, dir Direction) float64   { return widen(math.Log2(x), dir) }
func (NoneOps) Log10(x float64, dir Direction) float64  { return widen(math.Log10(x), dir) }
func (NoneOps) Log1p(x float64, dir Direction) float64  { return widen(math.Log1p(x), dir) }
func (NoneOps) Sin(x float64, dir Direction) float64    { return widen(math.Sin(x), dir) }
func (NoneOps) Cos(x float64, dir Direction) float64    { return widen(math.Cos(x), dir) }
func (NoneOps) Tan(x float64, dir Direction) float64    { return widen(math.Tan(x), dir) }
func (NoneOps) Asin(x float64, dir Direction) float64   { return widen(math.Asin(x), dir) }
func (NoneOps) Acos(x float64, dir Direction) float64   { return widen(math.Acos(x), dir) }
func (NoneOps) Atan(x float64, dir Direction) float64   { return widen(math.Atan(x), dir) }
func (NoneOps) Sinh(x float64, dir Direction) float64   { return widen(math.Sinh(x), dir) }
func (NoneOps) Cosh(x float64, dir Direction) float64   { return widen(math.Cosh(x), dir) }
func (NoneOps) Tanh(x float64, dir Direction) float64   { return widen(math.Tanh(x), dir) }
