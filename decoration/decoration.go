// Package decoration implements the IEEE 1788 decoration lattice:
// {com, dac, def, trv, ill}, totally ordered com > dac > def > trv > ill.
// Every ivl operation computes its output decoration as the Min of its
// input decorations, possibly lowered further by a per-operation rule
// (e.g. sqrt of a partly-negative interval degrades to Trv).
package decoration

import "fmt"

// Decoration qualifies how well-defined an interval result is. Lower
// numeric value means a stronger guarantee: Com sorts first.
type Decoration uint8

const (
	// Com ("common"): bounded, non-empty, the operation is defined and
	// continuous on all of the input.
	Com Decoration = iota
	// Dac ("defined and continuous"): defined and continuous on the input,
	// but the result may be unbounded.
	Dac
	// Def ("defined"): defined on the input but possibly discontinuous.
	Def
	// Trv ("trivial"): no useful claim beyond containment.
	Trv
	// Ill ("ill-formed"): the value is NaI.
	Ill
)

// String implements fmt.Stringer.
func (d Decoration) String() string {
	switch d {
	case Com:
		return "com"
	case Dac:
		return "dac"
	case Def:
		return "def"
	case Trv:
		return "trv"
	case Ill:
		return "ill"
	default:
		return fmt.Sprintf("Decoration(%d)", uint8(d))
	}
}

// Min returns the weaker (numerically larger) of two decorations — the
// lattice meet every binary ivl operation starts its output decoration
// from.
func Min(a, b Decoration) Decoration {
	if a > b {
		return a
	}
	return b
}

// Degrade returns the weaker of d and floor — never strengthens d. Unary
// per-operation rules (sqrt, log, ...) call this to lower a decoration
// without accidentally raising one that was already weak.
func Degrade(d, floor Decoration) Decoration {
	return Min(d, floor)
}

// Valid reports whether d is one of the five defined lattice values.
func (d Decoration) Valid() bool {
	return d <= Ill
}
