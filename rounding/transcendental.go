package rounding

// Transcendental evaluates the elementary functions RoundedOps exposes
// (spec.md §6.3's library contract) with an explicit rounding direction.
// Splitting this out of CorrectOps lets the mpfr-backed provider and the
// bigfloat widen-and-round-back fallback share the same call surface.
type Transcendental interface {
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
	Pow(x, y float64, dir Direction) float64
	Atan2(y, x float64, dir Direction) float64
}
