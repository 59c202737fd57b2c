package ivl

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects the textual rendering of an Interval (spec.md §6.2).
type Style uint8

const (
	// InfSup renders "[lo, hi]".
	InfSup Style = iota
	// Midpoint renders "m ± r".
	Midpoint
	// Full renders all fields: bounds, decoration, NG.
	Full
)

// FormatOptions controls Interval.Format's output (spec.md §6.2): whether
// to show the decoration suffix, the NG underscore suffix, and how many
// significant digits to render bounds with.
type FormatOptions struct {
	Style             Style
	ShowDecoration    bool
	ShowNG            bool
	SignificantDigits int
}

// DefaultFormatOptions renders InfSup with no decoration suffix, no NG
// marker, and 6 significant digits.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Style: InfSup, SignificantDigits: 6}
}

// Format renders v per opts. This is the library's entire display surface
// (spec.md §1's Non-goals exclude anything beyond it — no literal parser,
// no locale-aware formatting).
func (v Interval) Format(opts FormatOptions) string {
	digits := opts.SignificantDigits
	if digits <= 0 {
		digits = 6
	}
	fmtNum := func(x float64) string { return strconv.FormatFloat(x, 'g', digits, 64) }

	var body string
	switch opts.Style {
	case Midpoint:
		mid := (v.Bare.Lo + v.Bare.Hi) / 2
		rad := mid - v.Bare.Lo
		body = fmt.Sprintf("%s ± %s", fmtNum(mid), fmtNum(rad))
	case Full:
		body = fmt.Sprintf("[%s, %s] dec=%s ng=%t", fmtNum(v.Bare.Lo), fmtNum(v.Bare.Hi), v.Dec, v.NG)
		return body
	default: // InfSup
		body = fmt.Sprintf("[%s, %s]", fmtNum(v.Bare.Lo), fmtNum(v.Bare.Hi))
	}

	var suffix strings.Builder
	if opts.ShowDecoration {
		suffix.WriteString("_")
		suffix.WriteString(v.Dec.String())
	}
	if opts.ShowNG && v.NG {
		suffix.WriteString("_")
	}
	return body + suffix.String()
}

// String implements fmt.Stringer using DefaultFormatOptions.
func (v Interval) String() string {
	return v.Format(DefaultFormatOptions())
}
