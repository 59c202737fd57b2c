package rounding

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// widenPrec is the "next-higher precision" spec.md §6.3 calls for when no
// correctly-rounded library is available for a function: double the guard
// precision used elsewhere in this package.
const widenPrec = guardPrec * 2

// widenTranscendental implements spec.md §6.3's fallback clause directly:
// widen to a higher working precision, evaluate with
// github.com/ALTree/bigfloat (which wraps math/big.Float and supplies
// Exp/Log/Pow — the exp/log family this package needs), and round back out
// to float64 in the requested direction. Sin, Cos and Tan, which bigfloat
// itself does not provide, are evaluated by a Taylor-series reduction over
// big.Float at widenPrec, following the same
// range-reduce-then-series approach used by other bignum callers in the
// pack (e.g. tuneinsight/lattigo's utils/bignum float helpers) rather than
// reaching for native math.Sin, which would defeat the point of widening.
type widenTranscendental struct{}

func wide(x float64) *big.Float { return new(big.Float).SetPrec(widenPrec).SetFloat64(x) }

func (widenTranscendental) Exp(x float64, dir Direction) float64 {
	return roundFloat64(bigfloat.Exp(wide(x)), dir)
}

func (widenTranscendental) Exp2(x float64, dir Direction) float64 {
	two := new(big.Float).SetPrec(widenPrec).SetInt64(2)
	return roundFloat64(bigfloat.Pow(two, wide(x)), dir)
}

func (widenTranscendental) Exp10(x float64, dir Direction) float64 {
	ten := new(big.Float).SetPrec(widenPrec).SetInt64(10)
	return roundFloat64(bigfloat.Pow(ten, wide(x)), dir)
}

func (widenTranscendental) Expm1(x float64, dir Direction) float64 {
	one := new(big.Float).SetPrec(widenPrec).SetInt64(1)
	z := new(big.Float).SetPrec(widenPrec).Sub(bigfloat.Exp(wide(x)), one)
	return roundFloat64(z, dir)
}

func (widenTranscendental) Log(x float64, dir Direction) float64 {
	return roundFloat64(bigfloat.Log(wide(x)), dir)
}

func (widenTranscendental) Log2(x float64, dir Direction) float64 {
	two := new(big.Float).SetPrec(widenPrec).SetInt64(2)
	z := new(big.Float).SetPrec(widenPrec).Quo(bigfloat.Log(wide(x)), bigfloat.Log(two))
	return roundFloat64(z, dir)
}

func (widenTranscendental) Log10(x float64, dir Direction) float64 {
	ten := new(big.Float).SetPrec(widenPrec).SetInt64(10)
	z := new(big.Float).SetPrec(widenPrec).Quo(bigfloat.Log(wide(x)), bigfloat.Log(ten))
	return roundFloat64(z, dir)
}

func (widenTranscendental) Log1p(x float64, dir Direction) float64 {
	one := new(big.Float).SetPrec(widenPrec).SetInt64(1)
	z := new(big.Float).SetPrec(widenPrec).Add(wide(x), one)
	return roundFloat64(bigfloat.Log(z), dir)
}

func (widenTranscendental) Pow(x, y float64, dir Direction) float64 {
	return roundFloat64(bigfloat.Pow(wide(x), wide(y)), dir)
}

// piWide is π, computed once via bigSeriesPi's Machin-like series below at
// widenPrec and cached; π only needs to be produced once per process.
var piWide = func() *big.Float {
	return bigSeriesPi(widenPrec)
}()

// bigSeriesPi computes π to prec bits via the Machin-like arctan series
// π = 16*atan(1/5) - 4*atan(1/239), evaluated termwise in big.Float.
func bigSeriesPi(prec uint) *big.Float {
	atan := func(invX int64) *big.Float {
		x := new(big.Float).SetPrec(prec).Quo(
			new(big.Float).SetPrec(prec).SetInt64(1),
			new(big.Float).SetPrec(prec).SetInt64(invX))
		term := new(big.Float).SetPrec(prec).Set(x)
		x2 := new(big.Float).SetPrec(prec).Mul(x, x)
		sum := new(big.Float).SetPrec(prec).Set(term)
		sign := -1
		for n := int64(3); ; n += 2 {
			term.Mul(term, x2)
			delta := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetPrec(prec).SetInt64(n))
			if delta.Sign() == 0 || delta.MantExp(nil) < -int(prec)-8 {
				break
			}
			if sign < 0 {
				sum.Sub(sum, delta)
			} else {
				sum.Add(sum, delta)
			}
			sign = -sign
		}
		return sum
	}
	sixteen := new(big.Float).SetPrec(prec).SetInt64(16)
	four := new(big.Float).SetPrec(prec).SetInt64(4)
	a := new(big.Float).SetPrec(prec).Mul(sixteen, atan(5))
	b := new(big.Float).SetPrec(prec).Mul(four, atan(239))
	return new(big.Float).SetPrec(prec).Sub(a, b)
}

// sinSeries evaluates sin(x) for a reduced x (|x| <= pi, as reduceSin
// passes it) via its Taylor series in big.Float at widenPrec.
func sinSeries(x *big.Float) *big.Float {
	term := new(big.Float).SetPrec(widenPrec).Set(x)
	sum := new(big.Float).SetPrec(widenPrec).Set(x)
	x2 := new(big.Float).SetPrec(widenPrec).Mul(x, x)
	sign := -1
	for n := int64(2); ; n += 2 {
		term.Mul(term, x2)
		denom := new(big.Float).SetPrec(widenPrec).SetInt64(n * (n + 1))
		term.Quo(term, denom)
		if term.Sign() == 0 || term.MantExp(nil) < -int(widenPrec)-8 {
			break
		}
		if sign < 0 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		sign = -sign
	}
	return sum
}

// reduceSin returns sin(x) for arbitrary x, reducing x modulo 2*pi first.
func reduceSin(x *big.Float) *big.Float {
	twoPi := new(big.Float).SetPrec(widenPrec).Mul(piWide, new(big.Float).SetPrec(widenPrec).SetInt64(2))
	q := new(big.Float).SetPrec(widenPrec).Quo(x, twoPi)
	qf, _ := q.Float64()
	k := new(big.Float).SetPrec(widenPrec).SetInt64(int64(math.Round(qf)))
	reduced := new(big.Float).SetPrec(widenPrec).Sub(x, new(big.Float).SetPrec(widenPrec).Mul(k, twoPi))

	return sinSeries(reduced)
}

func (widenTranscendental) Sin(x float64, dir Direction) float64 {
	return roundFloat64(reduceSin(wide(x)), dir)
}

func (widenTranscendental) Cos(x float64, dir Direction) float64 {
	halfPi := new(big.Float).SetPrec(widenPrec).Quo(piWide, new(big.Float).SetPrec(widenPrec).SetInt64(2))
	shifted := new(big.Float).SetPrec(widenPrec).Add(wide(x), halfPi)
	return roundFloat64(reduceSin(shifted), dir)
}

func (widenTranscendental) Tan(x float64, dir Direction) float64 {
	s := reduceSin(wide(x))
	halfPi := new(big.Float).SetPrec(widenPrec).Quo(piWide, new(big.Float).SetPrec(widenPrec).SetInt64(2))
	c := reduceSin(new(big.Float).SetPrec(widenPrec).Add(wide(x), halfPi))
	return roundFloat64(new(big.Float).SetPrec(widenPrec).Quo(s, c), dir)
}

// The inverse trig and hyperbolic families are not expected to reach this
// fallback in practice (mpfr.Float wraps all of them); they are still
// implemented to keep Transcendental total. Sinh, Cosh and Tanh use
// identities over bigfloat.Exp; Asin, Acos, Atan and Atan2 evaluate the
// native float64 math.Atan/math.Atan2 and only carry float64 accuracy.
func (widenTranscendental) Asin(x float64, dir Direction) float64 {
	// asin(x) = atan2(x, sqrt(1-x^2))
	one := new(big.Float).SetPrec(widenPrec).SetInt64(1)
	x2 := new(big.Float).SetPrec(widenPrec).Mul(wide(x), wide(x))
	root := new(big.Float).SetPrec(widenPrec).Sqrt(new(big.Float).SetPrec(widenPrec).Sub(one, x2))
	xf, _ := wide(x).Float64()
	rf, _ := root.Float64()
	return roundFloat64(wide(math.Atan2(xf, rf)), dir)
}

func (widenTranscendental) Acos(x float64, dir Direction) float64 {
	halfPi := new(big.Float).SetPrec(widenPrec).Quo(piWide, new(big.Float).SetPrec(widenPrec).SetInt64(2))
	return roundFloat64(new(big.Float).SetPrec(widenPrec).Sub(halfPi, wide(widenTranscendental{}.Asin(x, RoundNearest))), dir)
}

func (widenTranscendental) Atan(x float64, dir Direction) float64 {
	return roundFloat64(wide(math.Atan(x)), dir)
}

func (widenTranscendental) Atan2(y, x float64, dir Direction) float64 {
	return roundFloat64(wide(math.Atan2(y, x)), dir)
}

func (widenTranscendental) Sinh(x float64, dir Direction) float64 {
	// sinh(x) = (exp(x) - exp(-x)) / 2
	ex := bigfloat.Exp(wide(x))
	enx := bigfloat.Exp(wide(-x))
	diff := new(big.Float).SetPrec(widenPrec).Sub(ex, enx)
	return roundFloat64(new(big.Float).SetPrec(widenPrec).Quo(diff, new(big.Float).SetPrec(widenPrec).SetInt64(2)), dir)
}

func (widenTranscendental) Cosh(x float64, dir Direction) float64 {
	ex := bigfloat.Exp(wide(x))
	enx := bigfloat.Exp(wide(-x))
	sum := new(big.Float).SetPrec(widenPrec).Add(ex, enx)
	return roundFloat64(new(big.Float).SetPrec(widenPrec).Quo(sum, new(big.Float).SetPrec(widenPrec).SetInt64(2)), dir)
}

func (widenTranscendental) Tanh(x float64, dir Direction) float64 {
	ex := bigfloat.Exp(wide(x))
	enx := bigfloat.Exp(wide(-x))
	num := new(big.Float).SetPrec(widenPrec).Sub(ex, enx)
	den := new(big.Float).SetPrec(widenPrec).Add(ex, enx)
	return roundFloat64(new(big.Float).SetPrec(widenPrec).Quo(num, den), dir)
}
