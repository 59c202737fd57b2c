package ivl

import (
	"github.com/katalvlaran/ivlath/decoration"
	"github.com/katalvlaran/ivlath/rounding"
)

// ComplexInterval is a pair of Interval (real, imaginary) with Gauss-style
// complex arithmetic (spec.md §3, §4.4). Both components always share the
// same decoration and NG flag on output of any operation.
type ComplexInterval struct {
	Re, Im Interval
}

// NaIComplex is the complex NaI sentinel: both parts are the real NaI.
var NaIComplex = ComplexInterval{Re: NaI, Im: NaI}

// IsNaI reports whether z is the complex NaI sentinel.
func (z ComplexInterval) IsNaI() bool { return z.Re.IsNaI() || z.Im.IsNaI() }

// NewComplex pairs a real and imaginary Interval, synchronizing their
// decoration (the min of both) and NG (the OR of both) per spec.md §3's
// ComplexInterval invariant.
func NewComplex(re, im Interval) ComplexInterval {
	dec := decoration.Min(re.Dec, im.Dec)
	ng := re.NG || im.NG
	re.Dec, im.Dec = dec, dec
	re.NG, im.NG = ng, ng
	return ComplexInterval{Re: re, Im: im}
}

// Add returns z + w via componentwise Interval addition.
func (z ComplexInterval) Add(ops rounding.Ops, w ComplexInterval) ComplexInterval {
	if z.IsNaI() || w.IsNaI() {
		return NaIComplex
	}
	return NewComplex(z.Re.Add(ops, w.Re), z.Im.Add(ops, w.Im))
}

// Sub returns z - w via componentwise Interval subtraction.
func (z ComplexInterval) Sub(ops rounding.Ops, w ComplexInterval) ComplexInterval {
	if z.IsNaI() || w.IsNaI() {
		return NaIComplex
	}
	return NewComplex(z.Re.Sub(ops, w.Re), z.Im.Sub(ops, w.Im))
}

// Mul returns z * w using the standard Gauss identity
// (a+ib)(c+id) = (ac-bd) + i(ad+bc), evaluated as four interval products and
// two combining sums, each with outward rounding inherited from
// BareInterval through Interval's own arithmetic (spec.md §4.4).
func (z ComplexInterval) Mul(ops rounding.Ops, w ComplexInterval) ComplexInterval {
	if z.IsNaI() || w.IsNaI() {
		return NaIComplex
	}
	ac := z.Re.Mul(ops, w.Re)
	bd := z.Im.Mul(ops, w.Im)
	ad := z.Re.Mul(ops, w.Im)
	bc := z.Im.Mul(ops, w.Re)
	re := ac.Sub(ops, bd)
	im := ad.Add(ops, bc)
	return NewComplex(re, im)
}

// Conj returns the complex conjugate of z: negate the imaginary part only.
func (z ComplexInterval) Conj() ComplexInterval {
	if z.IsNaI() {
		return NaIComplex
	}
	return NewComplex(z.Re, z.Im.Neg())
}
