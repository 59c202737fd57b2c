package ivl_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/rounding"
	"github.com/stretchr/testify/require"
)

func correctOps() rounding.Ops { return rounding.NewCorrectOps() }

func mustIvl(t *testing.T, lo, hi float64) ivl.BareInterval {
	t.Helper()
	b, err := ivl.FromBounds(lo, hi)
	require.NoError(t, err)
	return b
}

func TestFromBounds_InvalidOrdering(t *testing.T) {
	_, err := ivl.FromBounds(2, 1)
	require.ErrorIs(t, err, ivl.ErrInvalidBounds)
}

func TestFromBounds_CanonicalEmpty(t *testing.T) {
	b, err := ivl.FromBounds(math.Inf(1), math.Inf(-1))
	require.NoError(t, err)
	require.True(t, b.IsEmpty())
}

func TestSingleton_NaNIsEmpty(t *testing.T) {
	require.True(t, ivl.Singleton(math.NaN()).IsEmpty())
}

func TestAdd_S1(t *testing.T) {
	a := mustIvl(t, 1, 2)
	b := mustIvl(t, 3, 4)
	got := ivl.Add(correctOps(), a, b)
	require.Equal(t, 4.0, got.Lo)
	require.Equal(t, 6.0, got.Hi)
}

func TestMul_S2(t *testing.T) {
	a := mustIvl(t, -1, 1)
	got := ivl.Mul(correctOps(), a, a)
	require.Equal(t, -1.0, got.Lo)
	require.Equal(t, 1.0, got.Hi)
}

func TestPowInt_S3(t *testing.T) {
	a := mustIvl(t, -2, 3)
	got, ok := ivl.PowInt(correctOps(), a, 2)
	require.True(t, ok)
	require.Equal(t, 0.0, got.Lo)
	require.Equal(t, 9.0, got.Hi)
}

func TestSqrt_S4(t *testing.T) {
	a := mustIvl(t, -1, 4)
	got, restricted := ivl.Sqrt(correctOps(), a)
	require.True(t, restricted)
	require.Equal(t, 0.0, got.Lo)
	require.Equal(t, 2.0, got.Hi)
}

func TestPowReal_S5(t *testing.T) {
	ops := correctOps()
	a := mustIvl(t, 1, math.E)
	x := mustIvl(t, 0, 1)
	got, _ := ivl.PowReal(ops, a, x)
	require.InDelta(t, 1.0, got.Lo, 1e-9)
	require.InDelta(t, math.E, got.Hi, 1e-9)
	require.True(t, got.Contains(math.E))
}

func TestDiv_ZeroStraddlingYieldsEntire(t *testing.T) {
	ops := correctOps()
	a := mustIvl(t, 1, 2)
	b := mustIvl(t, -1, 1)
	got := ivl.Div(ops, a, b)
	require.True(t, got.IsEntire())
}

func TestDiv_ThinZeroDenominatorYieldsEmpty(t *testing.T) {
	ops := correctOps()
	a := mustIvl(t, 1, 2)
	b := ivl.Singleton(0)
	got := ivl.Div(ops, a, b)
	require.True(t, got.IsEmpty())
}

func TestHull_EmptyIsNeutral(t *testing.T) {
	a := ivl.Empty()
	b := mustIvl(t, 1, 2)
	require.Equal(t, b, ivl.Hull(a, b))
	require.Equal(t, b, ivl.Hull(b, a))
}

func TestMigMag_ViaPowInt(t *testing.T) {
	ops := correctOps()
	// [2,5]^2 does not straddle zero: mig=2, mag=5.
	got, ok := ivl.PowInt(ops, mustIvl(t, 2, 5), 2)
	require.True(t, ok)
	require.Equal(t, 4.0, got.Lo)
	require.Equal(t, 25.0, got.Hi)
}

func TestPowInt_OddPreservesSign(t *testing.T) {
	ops := correctOps()
	got, ok := ivl.PowInt(ops, mustIvl(t, -2, 3), 3)
	require.True(t, ok)
	require.Equal(t, -8.0, got.Lo)
	require.Equal(t, 27.0, got.Hi)
}

func TestTan_PoleWidensToEntire(t *testing.T) {
	ops := correctOps()
	got, restricted := ivl.Tan(ops, mustIvl(t, 1, 2)) // contains pi/2
	require.True(t, restricted)
	require.True(t, got.IsEntire())
}

func TestSin_FullPeriodIsMinusOneToOne(t *testing.T) {
	ops := correctOps()
	got := ivl.Sin(ops, mustIvl(t, 0, 2*math.Pi))
	require.InDelta(t, -1.0, got.Lo, 1e-9)
	require.InDelta(t, 1.0, got.Hi, 1e-9)
}

func TestLog_NegativeLoRestrictsDomain(t *testing.T) {
	ops := correctOps()
	got, restricted := ivl.Log(ops, mustIvl(t, -1, math.E))
	require.True(t, restricted)
	require.InDelta(t, 1.0, got.Hi, 1e-9)
}
