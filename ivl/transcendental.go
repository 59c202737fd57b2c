package ivl

import (
	"math"

	"github.com/katalvlaran/ivlath/rounding"
)

// Each transcendental below returns (result, restricted): restricted
// reports that the input interval was clamped to the function's domain,
// the signal the Interval layer uses to degrade decoration to Trv
// (spec.md §4.2, §4.3).

// monotoneIncreasing evaluates f at a.Lo (RoundDown) and a.Hi (RoundUp): the
// shared shape of exp/exp2/exp10/log/log2/log10/log1p/asin/atan/sinh/tanh.
func monotoneIncreasing(f func(float64, rounding.Direction) float64, a BareInterval) BareInterval {
	if a.IsEmpty() {
		return Empty()
	}
	return BareInterval{Lo: f(a.Lo, rounding.RoundDown), Hi: f(a.Hi, rounding.RoundUp)}
}

// monotoneDecreasing is the mirror shape of acos.
func monotoneDecreasing(f func(float64, rounding.Direction) float64, a BareInterval) BareInterval {
	if a.IsEmpty() {
		return Empty()
	}
	return BareInterval{Lo: f(a.Hi, rounding.RoundDown), Hi: f(a.Lo, rounding.RoundUp)}
}

// Exp, Exp2, Exp10 are entire (domain = all reals), strictly increasing.
func Exp(ops rounding.Ops, a BareInterval) BareInterval   { return monotoneIncreasing(ops.Exp, a) }
func Exp2(ops rounding.Ops, a BareInterval) BareInterval  { return monotoneIncreasing(ops.Exp2, a) }
func Exp10(ops rounding.Ops, a BareInterval) BareInterval { return monotoneIncreasing(ops.Exp10, a) }
func Expm1(ops rounding.Ops, a BareInterval) BareInterval { return monotoneIncreasing(ops.Expm1, a) }

// Log restricts domain to (0, +Inf); restricted reports that a reached
// into (-Inf, 0].
func Log(ops rounding.Ops, a BareInterval) (BareInterval, bool) {
	return logFamily(ops.Log, a)
}
func Log2(ops rounding.Ops, a BareInterval) (BareInterval, bool) {
	return logFamily(ops.Log2, a)
}
func Log10(ops rounding.Ops, a BareInterval) (BareInterval, bool) {
	return logFamily(ops.Log10, a)
}

// Log1p restricts domain to (-1, +Inf).
func Log1p(ops rounding.Ops, a BareInterval) (BareInterval, bool) {
	if a.IsEmpty() || a.Hi <= -1 {
		return Empty(), !a.IsEmpty()
	}
	lo := a.Lo
	restricted := lo <= -1
	if restricted {
		lo = math.Nextafter(-1, 1)
	}
	return BareInterval{Lo: ops.Log1p(lo, rounding.RoundDown), Hi: ops.Log1p(a.Hi, rounding.RoundUp)}, restricted
}

func logFamily(f func(float64, rounding.Direction) float64, a BareInterval) (BareInterval, bool) {
	if a.IsEmpty() || a.Hi <= 0 {
		return Empty(), !a.IsEmpty()
	}
	lo := a.Lo
	restricted := lo <= 0
	if restricted {
		lo = math.SmallestNonzeroFloat64
	}
	return BareInterval{Lo: f(lo, rounding.RoundDown), Hi: f(a.Hi, rounding.RoundUp)}, restricted
}

// Asin, Acos restrict domain to [-1, 1].
func Asin(ops rounding.Ops, a BareInterval) (BareInterval, bool) {
	return clampedMonotone(ops.Asin, a, true)
}
func Acos(ops rounding.Ops, a BareInterval) (BareInterval, bool) {
	return clampedMonotone(ops.Acos, a, false)
}

func clampedMonotone(f func(float64, rounding.Direction) float64, a BareInterval, increasing bool) (BareInterval, bool) {
	if a.IsEmpty() || a.Lo > 1 || a.Hi < -1 {
		return Empty(), !a.IsEmpty()
	}
	lo, hi := a.Lo, a.Hi
	restricted := lo < -1 || hi > 1
	if lo < -1 {
		lo = -1
	}
	if hi > 1 {
		hi = 1
	}
	clamped := BareInterval{Lo: lo, Hi: hi}
	if increasing {
		return monotoneIncreasing(f, clamped), restricted
	}
	return monotoneDecreasing(f, clamped), restricted
}

// Atan, Sinh, Tanh are entire and strictly increasing.
func Atan(ops rounding.Ops, a BareInterval) BareInterval { return monotoneIncreasing(ops.Atan, a) }
func Sinh(ops rounding.Ops, a BareInterval) BareInterval { return monotoneIncreasing(ops.Sinh, a) }
func Tanh(ops rounding.Ops, a BareInterval) BareInterval { return monotoneIncreasing(ops.Tanh, a) }

// Cosh is even (minimum at 0), the same mig/mag shape PowInt uses for even
// exponents.
func Cosh(ops rounding.Ops, a BareInterval) BareInterval {
	if a.IsEmpty() {
		return Empty()
	}
	lo := mig(a.Lo, a.Hi)
	hi := mag(a.Lo, a.Hi)
	return BareInterval{Lo: ops.Cosh(lo, rounding.RoundDown), Hi: ops.Cosh(hi, rounding.RoundUp)}
}

const twoPi = 2 * math.Pi

// Sin, Cos, Tan locate interior extrema by reducing the input interval
// modulo the function's period and testing whether a half-period point
// (where the derivative vanishes) falls inside it, per spec.md §4.2.
func Sin(ops rounding.Ops, a BareInterval) BareInterval {
	return periodicExtrema(ops.Sin, a, twoPi, math.Pi/2)
}

func Cos(ops rounding.Ops, a BareInterval) BareInterval {
	return periodicExtrema(ops.Cos, a, twoPi, 0)
}

// Tan has period Pi and a pole at Pi/2 + k*Pi; restricted reports that a
// pole fell inside the input, in which case the enclosure must widen to
// Entire (the Interval layer degrades decoration to Trv on restricted).
func Tan(ops rounding.Ops, a BareInterval) (BareInterval, bool) {
	if a.IsEmpty() {
		return Empty(), false
	}
	if a.Hi-a.Lo >= math.Pi {
		return Entire(), true
	}
	// Check for a pole k*Pi + Pi/2 inside (a.Lo, a.Hi).
	k := math.Floor((a.Lo-math.Pi/2)/math.Pi + 1)
	pole := math.Pi/2 + k*math.Pi
	if pole > a.Lo && pole < a.Hi {
		return Entire(), true
	}
	return BareInterval{Lo: ops.Tan(a.Lo, rounding.RoundDown), Hi: ops.Tan(a.Hi, rounding.RoundUp)}, false
}

// periodicExtrema evaluates a periodic function f (period `period`, first
// maximum at `phase` after reduction) over a by checking the endpoints plus
// every interior point at which f attains +/-1 (its extrema), returning the
// hull. This realizes spec.md §4.2's "reduce argument modulo the period and
// test whether half-period points fall inside the input" rule generically
// for sin and cos (whose extrema are spaced by `period`/2 starting at
// `phase`).
func periodicExtrema(f func(float64, rounding.Direction) float64, a BareInterval, period, phase float64) BareInterval {
	if a.IsEmpty() {
		return Empty()
	}
	if a.Hi-a.Lo >= period {
		return BareInterval{Lo: -1, Hi: 1}
	}
	lo := math.Min(f(a.Lo, rounding.RoundDown), f(a.Hi, rounding.RoundDown))
	hi := math.Max(f(a.Lo, rounding.RoundUp), f(a.Hi, rounding.RoundUp))

	half := period / 2
	k := math.Floor((a.Lo - phase) / half)
	for x := phase + k*half; x <= a.Hi+half; x += half {
		if x >= a.Lo && x <= a.Hi {
			lo = math.Min(lo, f(x, rounding.RoundDown))
			hi = math.Max(hi, f(x, rounding.RoundUp))
		}
	}
	return BareInterval{Lo: lo, Hi: hi}
}
