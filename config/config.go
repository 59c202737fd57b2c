// Package config defines the process-wide options recognized by ivlath
// (bound type, rounding backend, power and matmul algorithm selection) as an
// immutable value threaded explicitly through calls, never a mutable
// package-level singleton.
//
// Construction follows the functional-option pattern: NewMatrixOptions /
// Option / WithDirected in github.com/katalvlaran/lvlath/matrix.
package config

import "fmt"

// BoundType selects the element numeric type used by RoundedOps.
type BoundType uint8

const (
	// Binary64 is the default bound type (float64).
	Binary64 BoundType = iota
	// Binary32 names the float32 bound type.
	Binary32
	// Arbitrary names a big.Float-backed bound type.
	Arbitrary
)

// The bound type is recorded and reported by Config.BoundType only:
// rounding.For and the ivl/ivlmat types do not read it, and all arithmetic
// runs on float64 bounds whichever BoundType is set.

// String implements fmt.Stringer.
func (b BoundType) String() string {
	switch b {
	case Binary64:
		return "binary64"
	case Binary32:
		return "binary32"
	case Arbitrary:
		return "arbitrary-precision"
	default:
		return fmt.Sprintf("BoundType(%d)", uint8(b))
	}
}

// Flavor identifies the IEEE 1788 flavor in effect. SetBased is the only
// flavor this module implements.
type Flavor uint8

// SetBased is the only supported IEEE-1788 flavor.
const SetBased Flavor = 0

// String implements fmt.Stringer.
func (Flavor) String() string { return "set-based" }

// Rounding selects the RoundedOps backend.
type Rounding uint8

const (
	// RoundingCorrect uses a correctly-rounded math backend (default).
	RoundingCorrect Rounding = iota
	// RoundingNone widens native float ops by one ULP and raises NG.
	RoundingNone
)

// String implements fmt.Stringer.
func (r Rounding) String() string {
	if r == RoundingNone {
		return "none"
	}
	return "correct"
}

// Power names the exponentiation algorithm for non-integer powers. The
// value is recorded and reported by Config.Power only: ivl.PowReal does not
// read it and always evaluates the corner combinations directly.
type Power uint8

const (
	// PowerFast is the default power mode.
	PowerFast Power = iota
	// PowerSlow is the alternative power mode; PowReal evaluates it the
	// same way as PowerFast.
	PowerSlow
)

// String implements fmt.Stringer.
func (p Power) String() string {
	if p == PowerSlow {
		return "slow"
	}
	return "fast"
}

// MatMul selects the matrix-multiplication algorithm.
type MatMul uint8

const (
	// MatMulFast uses Rump's midpoint-radius algorithm (default).
	MatMulFast MatMul = iota
	// MatMulSlow uses the naive triple-loop interval algorithm.
	MatMulSlow
)

// String implements fmt.Stringer.
func (m MatMul) String() string {
	if m == MatMulSlow {
		return "slow"
	}
	return "fast"
}

// Config is the immutable, process-wide set of options recognized by
// ivlath. Build one with New and thread it explicitly through every call
// that needs rounding or algorithm-mode behavior; never store a Config in a
// package-level variable and mutate it mid-run (see spec.md §5).
type Config struct {
	boundType BoundType
	flavor    Flavor
	rounding  Rounding
	power     Power
	matmul    MatMul
}

// Option configures a Config instance.
type Option func(*Config)

// WithBoundType returns an Option that sets the element numeric type.
func WithBoundType(b BoundType) Option {
	return func(c *Config) { c.boundType = b }
}

// WithRounding returns an Option that selects the RoundedOps backend.
func WithRounding(r Rounding) Option {
	return func(c *Config) { c.rounding = r }
}

// WithPower returns an Option that selects the exponentiation algorithm.
func WithPower(p Power) Option {
	return func(c *Config) { c.power = p }
}

// WithMatMul returns an Option that selects the matrix-multiply algorithm.
func WithMatMul(m MatMul) Option {
	return func(c *Config) { c.matmul = m }
}

// New constructs a Config with the given Option functions applied over the
// spec-mandated defaults: Binary64, set-based flavor, correct rounding,
// fast power, fast matmul.
func New(opts ...Option) Config {
	c := Config{
		boundType: Binary64,
		flavor:    SetBased,
		rounding:  RoundingCorrect,
		power:     PowerFast,
		matmul:    MatMulFast,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// BoundType reports the configured element numeric type.
func (c Config) BoundType() BoundType { return c.boundType }

// Flavor reports the configured IEEE-1788 flavor.
func (c Config) Flavor() Flavor { return c.flavor }

// Rounding reports the configured RoundedOps backend.
func (c Config) Rounding() Rounding { return c.rounding }

// Power reports the configured exponentiation algorithm.
func (c Config) Power() Power { return c.power }

// MatMul reports the configured matrix-multiply algorithm.
func (c Config) MatMul() MatMul { return c.matmul }

// String implements fmt.Stringer, summarizing the active configuration.
func (c Config) String() string {
	return fmt.Sprintf("Config{bound=%s flavor=%s rounding=%s power=%s matmul=%s}",
		c.boundType, c.flavor, c.rounding, c.power, c.matmul)
}
