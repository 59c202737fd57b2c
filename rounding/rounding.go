// Package rounding provides the RoundedOps contract: float64 arithmetic and
// elementary functions evaluated with an explicit, per-call rounding
// direction so that BareInterval can build outward-rounded enclosures.
//
// Two backends are selectable via config.Rounding: Correct uses a
// correctly-rounded math library (github.com/mexicantexan/go-mpfr, falling
// back to a widen-and-round-back path over math/big and
// github.com/ALTree/bigfloat when mpfr cannot serve a given call); None
// uses the native math package and widens by one ULP, raising NG on every
// result it produces.
package rounding

import (
	"fmt"

	"github.com/katalvlaran/ivlath/config"
)

// Direction is the rounding direction requested of an Ops call.
type Direction uint8

const (
	// RoundNearest rounds to the nearest representable value, ties to even.
	RoundNearest Direction = iota
	// RoundUp rounds toward +Inf.
	RoundUp
	// RoundDown rounds toward -Inf.
	RoundDown
	// RoundTowardZero truncates toward zero.
	RoundTowardZero
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case RoundUp:
		return "RoundUp"
	case RoundDown:
		return "RoundDown"
	case RoundTowardZero:
		return "RoundTowardZero"
	default:
		return "RoundNearest"
	}
}

// Opposite returns the direction that rounds the opposite way; used when a
// caller needs the "other" outward bound from a single evaluation site
// (e.g. negation: round-up of -x is round-down of x negated).
func (d Direction) Opposite() Direction {
	switch d {
	case RoundUp:
		return RoundDown
	case RoundDown:
		return RoundUp
	default:
		return d
	}
}

// Ops is the RoundedOps contract of spec.md §4.1: every arithmetic and
// elementary-function primitive takes an explicit rounding Direction and
// returns the correctly-rounded (or, for the None backend, conservatively
// widened) result of the real operation.
type Ops interface {
	Add(x, y float64, dir Direction) float64
	Sub(x, y float64, dir Direction) float64
	Mul(x, y float64, dir Direction) float64
	Div(x, y float64, dir Direction) float64
	Sqrt(x float64, dir Direction) float64
	FMA(x, y, z float64, dir Direction) float64
	Pow(x, y float64, dir Direction) float64
	Inv(x float64, dir Direction) float64
	RootN(x float64, n int, dir Direction) float64
	Atan2(y, x float64, dir Direction) float64

	Exp(x float64, dir Direction) float64
	Exp2(x float64, dir Direction) float64
	Exp10(x float64, dir Direction) float64
	Expm1(x float64, dir Direction) float64
	Log(x float64, dir Direction) float64
	Log2(x float64, dir Direction) float64
	Log10(x float64, dir Direction) float64
	Log1p(x float64, dir Direction) float64
	Sin(x float64, dir Direction) float64
	Cos(x float64, dir Direction) float64
	Tan(x float64, dir Direction) float64
	Asin(x float64, dir Direction) float64
	Acos(x float64, dir Direction) float64
	Atan(x float64, dir Direction) float64
	Sinh(x float64, dir Direction) float64
	Cosh(x float64, dir Direction) float64
	Tanh(x float64, dir Direction) float64

	// NotGuaranteed reports whether results from this backend must raise
	// the NG flag (true for None; false for Correct).
	NotGuaranteed() bool
}

// For selects the Ops implementation matching c's Rounding option.
// Complexity: O(1).
func For(c config.Config) Ops {
	switch c.Rounding() {
	case config.RoundingNone:
		return NoneOps{}
	default:
		return NewCorrectOps()
	}
}

// errorf wraps err with an operation tag, matching the teacher's
// fmt.Errorf("%s: %w", tag, err) convention.
func errorf(op string, err error) error {
	return fmt.Errorf("rounding: %s: %w", op, err)
}
