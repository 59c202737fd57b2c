package ivl

import (
	"math"

	"github.com/katalvlaran/ivlath/decoration"
	"github.com/katalvlaran/ivlath/rounding"
)

// Interval is BareInterval plus a Decoration and the NG ("not guaranteed")
// flag: the full IEEE 1788 number (spec.md §3). NG records that somewhere
// in this value's provenance an operation occurred that is not guaranteed
// to enclose; it is OR-ed forward and never cleared.
type Interval struct {
	Bare BareInterval
	Dec  decoration.Decoration
	NG   bool
}

// NaI is the sentinel Not-an-Interval value: decoration Ill, NG true, bare
// value the canonical empty interval (spec.md §3).
var NaI = Interval{Bare: Empty(), Dec: decoration.Ill, NG: true}

// IsNaI reports whether v is the NaI sentinel (by decoration, not identity:
// any Ill-decorated value is treated as NaI, matching "any arithmetic on
// NaI returns NaI").
func (v Interval) IsNaI() bool { return v.Dec == decoration.Ill }

// decorationFor classifies a freshly computed BareInterval on its own
// shape: Com when bounded and non-empty, Dac when unbounded, Trv when
// empty (spec.md §3's decoration meanings).
func decorationFor(b BareInterval) decoration.Decoration {
	switch {
	case b.IsEmpty():
		return decoration.Trv
	case b.IsEntire(), isUnbounded(b):
		return decoration.Dac
	default:
		return decoration.Com
	}
}

func isUnbounded(b BareInterval) bool {
	return math.IsInf(b.Lo, 0) || math.IsInf(b.Hi, 0)
}

// New constructs an Interval from representable bounds: Com/Dac/Trv
// decoration per decorationFor, NG = false (representable-literal
// constructors never raise NG, per spec.md §3).
func New(lo, hi float64) (Interval, error) {
	b, err := FromBounds(lo, hi)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Bare: b, Dec: decorationFor(b), NG: false}, nil
}

// FromNonRepresentable constructs an Interval from a literal that is not
// exactly representable in the underlying float type (e.g. a decimal
// string converted upstream): it carries the same bounds as New but always
// raises NG, per spec.md §3 ("constructors from a non-representable
// literal raise NG").
func FromNonRepresentable(lo, hi float64) (Interval, error) {
	v, err := New(lo, hi)
	if err != nil {
		return Interval{}, err
	}
	v.NG = true
	return v, nil
}

// combine computes the result decoration/NG for a binary operation: the
// minimum (weakest) of the two input decorations, degraded further to the
// result bare shape's own decoration, with NG the OR of both inputs plus
// any intrinsic non-guarantee from the backend itself.
func combine(aDec, bDec decoration.Decoration, resultBare BareInterval, aNG, bNG, intrinsicNG bool) (decoration.Decoration, bool) {
	dec := decoration.Min(aDec, bDec)
	dec = decoration.Min(dec, decorationFor(resultBare))
	return dec, aNG || bNG || intrinsicNG
}

func (a Interval) binOp(ops rounding.Ops, b Interval, f func(rounding.Ops, BareInterval, BareInterval) BareInterval) Interval {
	if a.IsNaI() || b.IsNaI() {
		return NaI
	}
	bare := f(ops, a.Bare, b.Bare)
	dec, ng := combine(a.Dec, b.Dec, bare, a.NG, b.NG, ops.NotGuaranteed())
	return Interval{Bare: bare, Dec: dec, NG: ng}
}

// Add returns a + b.
func (a Interval) Add(ops rounding.Ops, b Interval) Interval { return a.binOp(ops, b, Add) }

// Sub returns a - b.
func (a Interval) Sub(ops rounding.Ops, b Interval) Interval { return a.binOp(ops, b, Sub) }

// Mul returns a * b.
func (a Interval) Mul(ops rounding.Ops, b Interval) Interval { return a.binOp(ops, b, Mul) }

// Neg returns -a.
func (a Interval) Neg() Interval {
	if a.IsNaI() {
		return NaI
	}
	return Interval{Bare: Neg(a.Bare), Dec: a.Dec, NG: a.NG}
}

// Div returns a / b, degrading decoration to Trv when b straddles zero
// (spec.md §4.2's division split makes the result non-continuous there).
func (a Interval) Div(ops rounding.Ops, b Interval) Interval {
	if a.IsNaI() || b.IsNaI() {
		return NaI
	}
	bare := Div(ops, a.Bare, b.Bare)
	dec, ng := combine(a.Dec, b.Dec, bare, a.NG, b.NG, ops.NotGuaranteed())
	if b.Bare.ContainsZero() && !(b.Bare.Lo == 0 && b.Bare.Hi == 0) {
		dec = decoration.Min(dec, decoration.Trv)
	}
	return Interval{Bare: bare, Dec: dec, NG: ng}
}

func (a Interval) unaryDec(bare BareInterval, restricted, intrinsicNG bool) (decoration.Decoration, bool) {
	dec := decoration.Min(a.Dec, decorationFor(bare))
	if restricted {
		dec = decoration.Min(dec, decoration.Trv)
	}
	return dec, a.NG || intrinsicNG
}

// Sqrt returns sqrt(a), degrading decoration to Trv when a extends below 0.
func (a Interval) Sqrt(ops rounding.Ops) Interval {
	if a.IsNaI() {
		return NaI
	}
	bare, restricted := Sqrt(ops, a.Bare)
	dec, ng := a.unaryDec(bare, restricted, ops.NotGuaranteed())
	return Interval{Bare: bare, Dec: dec, NG: ng}
}

// PowInt raises a to the integer exponent n.
func (a Interval) PowInt(ops rounding.Ops, n int) Interval {
	if a.IsNaI() {
		return NaI
	}
	bare, ok := PowInt(ops, a.Bare, n)
	dec, ng := a.unaryDec(bare, !ok, ops.NotGuaranteed())
	return Interval{Bare: bare, Dec: dec, NG: ng}
}

// PowReal raises a to the real interval exponent x.
func (a Interval) PowReal(ops rounding.Ops, x Interval) Interval {
	if a.IsNaI() || x.IsNaI() {
		return NaI
	}
	bare, restricted := PowReal(ops, a.Bare, x.Bare)
	dec := decoration.Min(decoration.Min(a.Dec, x.Dec), decorationFor(bare))
	if restricted {
		dec = decoration.Min(dec, decoration.Trv)
	}
	return Interval{Bare: bare, Dec: dec, NG: a.NG || x.NG || ops.NotGuaranteed()}
}

// unaryTranscendental wraps a BareInterval transcendental that never
// restricts its domain (Exp, Exp2, Exp10, Expm1, Atan, Sinh, Cosh, Tanh).
func (a Interval) unaryTranscendental(ops rounding.Ops, f func(rounding.Ops, BareInterval) BareInterval) Interval {
	if a.IsNaI() {
		return NaI
	}
	bare := f(ops, a.Bare)
	dec, ng := a.unaryDec(bare, false, ops.NotGuaranteed())
	return Interval{Bare: bare, Dec: dec, NG: ng}
}

// unaryTranscendentalRestricted wraps a BareInterval transcendental that
// reports domain restriction (Log family, Asin, Acos).
func (a Interval) unaryTranscendentalRestricted(ops rounding.Ops, f func(rounding.Ops, BareInterval) (BareInterval, bool)) Interval {
	if a.IsNaI() {
		return NaI
	}
	bare, restricted := f(ops, a.Bare)
	dec, ng := a.unaryDec(bare, restricted, ops.NotGuaranteed())
	return Interval{Bare: bare, Dec: dec, NG: ng}
}

func (a Interval) Exp(ops rounding.Ops) Interval   { return a.unaryTranscendental(ops, Exp) }
func (a Interval) Exp2(ops rounding.Ops) Interval  { return a.unaryTranscendental(ops, Exp2) }
func (a Interval) Exp10(ops rounding.Ops) Interval { return a.unaryTranscendental(ops, Exp10) }
func (a Interval) Expm1(ops rounding.Ops) Interval { return a.unaryTranscendental(ops, Expm1) }
func (a Interval) Atan(ops rounding.Ops) Interval  { return a.unaryTranscendental(ops, Atan) }
func (a Interval) Sinh(ops rounding.Ops) Interval  { return a.unaryTranscendental(ops, Sinh) }
func (a Interval) Cosh(ops rounding.Ops) Interval  { return a.unaryTranscendental(ops, Cosh) }
func (a Interval) Tanh(ops rounding.Ops) Interval  { return a.unaryTranscendental(ops, Tanh) }
func (a Interval) Sin(ops rounding.Ops) Interval   { return a.unaryTranscendental(ops, Sin) }
func (a Interval) Cos(ops rounding.Ops) Interval   { return a.unaryTranscendental(ops, Cos) }

func (a Interval) Log(ops rounding.Ops) Interval   { return a.unaryTranscendentalRestricted(ops, Log) }
func (a Interval) Log2(ops rounding.Ops) Interval  { return a.unaryTranscendentalRestricted(ops, Log2) }
func (a Interval) Log10(ops rounding.Ops) Interval { return a.unaryTranscendentalRestricted(ops, Log10) }
func (a Interval) Log1p(ops rounding.Ops) Interval { return a.unaryTranscendentalRestricted(ops, Log1p) }
func (a Interval) Asin(ops rounding.Ops) Interval  { return a.unaryTranscendentalRestricted(ops, Asin) }
func (a Interval) Acos(ops rounding.Ops) Interval  { return a.unaryTranscendentalRestricted(ops, Acos) }

// Tan degrades to Entire/Trv when a pole falls inside the input.
func (a Interval) Tan(ops rounding.Ops) Interval {
	if a.IsNaI() {
		return NaI
	}
	bare, restricted := Tan(ops, a.Bare)
	dec, ng := a.unaryDec(bare, restricted, ops.NotGuaranteed())
	return Interval{Bare: bare, Dec: dec, NG: ng}
}
