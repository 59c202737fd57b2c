package ivl

import "math"

// mag returns max|x| over x in [lo, hi]: the GLOSSARY's magnitude.
// Complexity: O(1).
func mag(lo, hi float64) float64 {
	return math.Max(math.Abs(lo), math.Abs(hi))
}

// mig returns min|x| over x in [lo, hi]: the GLOSSARY's mignitude. mig is 0
// whenever 0 is contained in [lo, hi].
// Complexity: O(1).
func mig(lo, hi float64) float64 {
	if lo <= 0 && hi >= 0 {
		return 0
	}
	return math.Min(math.Abs(lo), math.Abs(hi))
}
