package ivl

import (
	"math"

	"github.com/katalvlaran/ivlath/rounding"
)

// BareInterval is the closed real interval [Lo, Hi] (spec.md §3). The
// canonical empty value is (+Inf, -Inf); Entire is (-Inf, +Inf). Like the
// teacher's matrix.Dense, BareInterval is a concrete float64-keyed value
// type, never a generic one (see SPEC_FULL.md §9's Open Question).
type BareInterval struct {
	Lo, Hi float64
}

// Empty returns the canonical empty BareInterval.
func Empty() BareInterval { return BareInterval{Lo: math.Inf(1), Hi: math.Inf(-1)} }

// Entire returns (-Inf, +Inf), the BareInterval containing all reals.
func Entire() BareInterval { return BareInterval{Lo: math.Inf(-1), Hi: math.Inf(1)} }

// FromBounds constructs [lo, hi]. It fails with ErrInvalidBounds when
// lo > hi, lo = +Inf, or hi = -Inf — the canonical empty pair (+Inf, -Inf)
// is accepted and returned as Empty() explicitly, per spec.md §4.2.
func FromBounds(lo, hi float64) (BareInterval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Empty(), nil
	}
	if lo == math.Inf(1) && hi == math.Inf(-1) {
		return Empty(), nil
	}
	if lo == math.Inf(1) || hi == math.Inf(-1) || lo > hi {
		return BareInterval{}, errorf("from_bounds", ErrInvalidBounds)
	}
	return BareInterval{Lo: lo, Hi: hi}, nil
}

// Singleton returns from_bounds(x, x); a NaN x yields Empty, per spec.md
// §4.2.
func Singleton(x float64) BareInterval {
	if math.IsNaN(x) {
		return Empty()
	}
	return BareInterval{Lo: x, Hi: x}
}

// IsEmpty reports whether b is the canonical empty interval.
func (b BareInterval) IsEmpty() bool {
	return b.Lo > b.Hi || (math.IsInf(b.Lo, 1) && math.IsInf(b.Hi, -1))
}

// IsEntire reports whether b equals (-Inf, +Inf).
func (b BareInterval) IsEntire() bool {
	return !b.IsEmpty() && math.IsInf(b.Lo, -1) && math.IsInf(b.Hi, 1)
}

// Contains reports whether the real x lies in b.
func (b BareInterval) Contains(x float64) bool {
	return !b.IsEmpty() && b.Lo <= x && x <= b.Hi
}

// ContainsZero reports whether 0 is in b (used pervasively by div/log/pow
// domain checks).
func (b BareInterval) ContainsZero() bool { return b.Contains(0) }

// Hull returns the smallest BareInterval containing the union of a and b
// (the GLOSSARY's hull), treating Empty as the neutral element.
func Hull(a, b BareInterval) BareInterval {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	return BareInterval{Lo: math.Min(a.Lo, b.Lo), Hi: math.Max(a.Hi, b.Hi)}
}

// Add returns a + b, outward-rounded componentwise (spec.md §4.2).
func Add(ops rounding.Ops, a, b BareInterval) BareInterval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	return BareInterval{
		Lo: ops.Add(a.Lo, b.Lo, rounding.RoundDown),
		Hi: ops.Add(a.Hi, b.Hi, rounding.RoundUp),
	}
}

// Sub returns a - b, outward-rounded componentwise.
func Sub(ops rounding.Ops, a, b BareInterval) BareInterval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	return BareInterval{
		Lo: ops.Sub(a.Lo, b.Hi, rounding.RoundDown),
		Hi: ops.Sub(a.Hi, b.Lo, rounding.RoundUp),
	}
}

// Neg returns -a.
func Neg(a BareInterval) BareInterval {
	if a.IsEmpty() {
		return Empty()
	}
	return BareInterval{Lo: -a.Hi, Hi: -a.Lo}
}

// Mul returns a * b via the nine-case sign analysis on the endpoints
// (spec.md §4.2): the result is
// [min_down(ac, ad, bc, bd), max_up(ac, ad, bc, bd)] with directed rounding
// on each product. Entire/zero fast paths are handled as special cases of
// the same four-corner evaluation: a corner pairing 0 with an infinite
// bound contributes 0.
func Mul(ops rounding.Ops, a, b BareInterval) BareInterval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	corners := [4][2]float64{
		{a.Lo, b.Lo}, {a.Lo, b.Hi}, {a.Hi, b.Lo}, {a.Hi, b.Hi},
	}
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, c := range corners {
		if (c[0] == 0 && math.IsInf(c[1], 0)) || (c[1] == 0 && math.IsInf(c[0], 0)) {
			lo = math.Min(lo, 0)
			hi = math.Max(hi, 0)
			continue
		}
		down := ops.Mul(c[0], c[1], rounding.RoundDown)
		up := ops.Mul(c[0], c[1], rounding.RoundUp)
		lo = math.Min(lo, down)
		hi = math.Max(hi, up)
	}
	return BareInterval{Lo: lo, Hi: hi}
}

// Div returns a / b (spec.md §4.2). When 0 is not in b, this is
// multiplication by the outward-rounded reciprocal corners. When 0 is in b,
// the set-based flavor applies: a thin zero denominator yields empty;
// division by a zero-straddling interval yields entire (the exact
// semi-infinite-hull case is not distinguished further, matching the
// set-based flavor's conservative treatment).
func Div(ops rounding.Ops, a, b BareInterval) BareInterval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	if !b.ContainsZero() {
		corners := [4][2]float64{
			{a.Lo, b.Lo}, {a.Lo, b.Hi}, {a.Hi, b.Lo}, {a.Hi, b.Hi},
		}
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for _, c := range corners {
			lo = math.Min(lo, ops.Div(c[0], c[1], rounding.RoundDown))
			hi = math.Max(hi, ops.Div(c[0], c[1], rounding.RoundUp))
		}
		return BareInterval{Lo: lo, Hi: hi}
	}
	if b.Lo == 0 && b.Hi == 0 {
		return Empty()
	}
	return Entire()
}

// Sqrt is defined only on [max(lo, 0), hi] intersected with [0, +Inf);
// restricted reports whether the input extended below 0 (the Interval
// layer uses this to degrade decoration to Trv, spec.md §4.2).
func Sqrt(ops rounding.Ops, a BareInterval) (result BareInterval, restricted bool) {
	if a.IsEmpty() || a.Hi < 0 {
		return Empty(), a.Hi < 0 && !a.IsEmpty()
	}
	lo := a.Lo
	restricted = lo < 0
	if restricted {
		lo = 0
	}
	return BareInterval{
		Lo: ops.Sqrt(lo, rounding.RoundDown),
		Hi: ops.Sqrt(a.Hi, rounding.RoundUp),
	}, restricted
}

// PowInt raises a to the integer power n, per spec.md §4.2: odd and even
// exponents are handled separately; even powers use mig/mag for the
// zero-straddling interior case. Negative n with 0 in a yields Empty when a
// is a thin zero and Entire otherwise; both cases return ok=false to signal
// the degenerate case.
func PowInt(ops rounding.Ops, a BareInterval, n int) (result BareInterval, ok bool) {
	if a.IsEmpty() {
		return Empty(), true
	}
	if n == 0 {
		return Singleton(1), true
	}
	if n < 0 {
		if a.ContainsZero() {
			if a.Lo == 0 && a.Hi == 0 {
				return Empty(), false
			}
			return Entire(), false
		}
		inv, _ := FromBounds(ops.Inv(a.Hi, rounding.RoundDown), ops.Inv(a.Lo, rounding.RoundUp))
		return PowInt(ops, inv, -n)
	}
	if n%2 == 1 {
		return BareInterval{
			Lo: powDirected(ops, a.Lo, n, rounding.RoundDown),
			Hi: powDirected(ops, a.Hi, n, rounding.RoundUp),
		}, true
	}
	// Even power: monotone in |x|, so evaluate at mig/mag.
	lo := mig(a.Lo, a.Hi)
	hi := mag(a.Lo, a.Hi)
	return BareInterval{
		Lo: powDirected(ops, lo, n, rounding.RoundDown),
		Hi: powDirected(ops, hi, n, rounding.RoundUp),
	}, true
}

// powDirected computes x^n for a non-negative integer n via repeated
// directed multiplication, avoiding rounding.Ops.Pow's real-exponent path
// (which is unnecessary precision loss for an exact integer exponent).
func powDirected(ops rounding.Ops, x float64, n int, dir rounding.Direction) float64 {
	if n == 0 {
		return 1
	}
	result := x
	for i := 1; i < n; i++ {
		result = ops.Mul(result, x, dir)
	}
	return result
}

// PowReal raises a to a real interval exponent x, per spec.md §4.2:
// restricted to [0, +Inf) (the imaginary-result region is out of scope for
// a real-valued BareInterval), evaluated at the four corner combinations
// and hulled. x = [0.5, 0.5] is special-cased to Sqrt; a thin integer x is
// special-cased to PowInt.
func PowReal(ops rounding.Ops, a, x BareInterval) (result BareInterval, restricted bool) {
	if a.IsEmpty() || x.IsEmpty() {
		return Empty(), false
	}
	lo := a.Lo
	restricted = lo < 0
	if restricted {
		lo = 0
	}
	if lo > a.Hi {
		return Empty(), restricted
	}
	clamped := BareInterval{Lo: lo, Hi: a.Hi}

	if x.Lo == x.Hi {
		if x.Lo == 0.5 {
			sq, sqRestricted := Sqrt(ops, clamped)
			return sq, restricted || sqRestricted
		}
		if x.Lo == math.Trunc(x.Lo) {
			p, ok := PowInt(ops, clamped, int(x.Lo))
			return p, restricted || !ok
		}
	}

	corners := [4][2]float64{
		{clamped.Lo, x.Lo}, {clamped.Lo, x.Hi}, {clamped.Hi, x.Lo}, {clamped.Hi, x.Hi},
	}
	loResult := math.Inf(1)
	hiResult := math.Inf(-1)
	sawNaN := false
	for _, c := range corners {
		down := ops.Pow(c[0], c[1], rounding.RoundDown)
		up := ops.Pow(c[0], c[1], rounding.RoundUp)
		if math.IsNaN(down) || math.IsNaN(up) {
			sawNaN = true
			continue
		}
		loResult = math.Min(loResult, down)
		hiResult = math.Max(hiResult, up)
	}
	if sawNaN {
		// A corner evaluation left its domain (e.g. 0^negative); spec.md
		// §9's Open Question resolution: fall back to Entire, Trv.
		return Entire(), true
	}
	return BareInterval{Lo: loResult, Hi: hiResult}, restricted
}
