// Package ivlath implements IEEE Std 1788-2015 set-based interval
// arithmetic and verified interval linear algebra in Go.
//
// Under the hood, the module is organized into:
//
//	config/   — process-wide options: bound type, rounding backend, power
//	            and matmul algorithm selection
//	rounding/ — the RoundedOps contract (Correct and None backends) every
//	            directed-rounding arithmetic and elementary function runs
//	            through
//	decoration/ — the IEEE 1788 decoration lattice (Com/Dac/Def/Trv/Ill)
//	ivl/      — BareInterval, Interval, ComplexInterval and their
//	            arithmetic, transcendental functions and formatting
//	ivlmat/   — interval-valued vectors and matrices: verified
//	            multiplication (naive and Rump's midpoint-radius
//	            algorithm), verified inversion, verified eigenvalue
//	            enclosure and operator norms
//
// See SPEC_FULL.md for the full specification this module implements.
package ivlath
