// Package ivl implements BareInterval, Interval, ComplexInterval and the NaI
// sentinel: the core IEEE 1788 set-based interval number type and its
// arithmetic, display, and decoration propagation.
package ivl

import "errors"

// Sentinel errors, matching the teacher's matrix/errors.go convention: one
// unified errors.go per package, every sentinel prefixed "ivl: ...", wrapped
// at call sites with errorf (an "op: err" wrapper that keeps errors.Is
// working) rather than redefined.
var (
	// ErrInvalidBounds is returned by from_bounds when a > b, a = +Inf, or
	// b = -Inf (spec.md §4.2), i.e. a pair that cannot denote a bounded or
	// canonical-empty BareInterval.
	ErrInvalidBounds = errors.New("ivl: invalid bounds")

	// ErrDomainError denotes a real-valued function evaluated outside its
	// mathematical domain. No function in this package returns it: the
	// arithmetic here reports domain restriction through empty results and
	// decorations instead.
	ErrDomainError = errors.New("ivl: domain error")

	// ErrDimensionMismatch denotes operands of mismatched length. No
	// function in this package returns it.
	ErrDimensionMismatch = errors.New("ivl: dimension mismatch")
)

// errorf wraps err with an operation tag, matching lvlath's
// fmt.Errorf("%s: %w", tag, err) convention.
func errorf(op string, err error) error {
	return &opError{op: op, err: err}
}

// opError is a lightweight %w-wrapping error avoiding an fmt.Errorf call at
// every construction site (FromBounds, which PowInt also calls for its
// negative-exponent reciprocal).
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
