package ivl_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/decoration"
	"github.com/katalvlaran/ivlath/ivl"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, lo, hi float64) ivl.Interval {
	t.Helper()
	v, err := ivl.New(lo, hi)
	require.NoError(t, err)
	return v
}

func TestInterval_Add_S1(t *testing.T) {
	ops := correctOps()
	a := mustInterval(t, 1, 2)
	b := mustInterval(t, 3, 4)
	got := a.Add(ops, b)
	require.Equal(t, 4.0, got.Bare.Lo)
	require.Equal(t, 6.0, got.Bare.Hi)
	require.Equal(t, decoration.Com, got.Dec)
	require.False(t, got.NG)
}

func TestInterval_Identity(t *testing.T) {
	ops := correctOps()
	a := mustInterval(t, -3, 5)
	zero := mustInterval(t, 0, 0)
	one := mustInterval(t, 1, 1)

	require.Equal(t, a.Bare, a.Add(ops, zero).Bare)
	require.Equal(t, a.Bare, a.Mul(ops, one).Bare)

	mulZero := a.Mul(ops, zero)
	require.Equal(t, 0.0, mulZero.Bare.Lo)
	require.Equal(t, 0.0, mulZero.Bare.Hi)
}

func TestInterval_NGPropagates(t *testing.T) {
	ops := correctOps()
	a := mustInterval(t, 1, 2)
	b, err := ivl.FromNonRepresentable(3, 4)
	require.NoError(t, err)
	require.True(t, b.NG)

	got := a.Add(ops, b)
	require.True(t, got.NG)
}

func TestInterval_NaIPropagates(t *testing.T) {
	ops := correctOps()
	a := mustInterval(t, 1, 2)
	got := a.Add(ops, ivl.NaI)
	require.True(t, got.IsNaI())
}

func TestInterval_DecorationMonotone(t *testing.T) {
	ops := correctOps()
	a := mustInterval(t, -1, 4)
	got := a.Sqrt(ops)
	require.Equal(t, decoration.Trv, got.Dec)
}

func TestInterval_DivByZeroStraddlingDegradesDecoration(t *testing.T) {
	ops := correctOps()
	a := mustInterval(t, 1, 2)
	b := mustInterval(t, -1, 1)
	got := a.Div(ops, b)
	require.Equal(t, decoration.Trv, got.Dec)
	require.True(t, got.Bare.IsEntire())
}

func TestInterval_PowInt_S3(t *testing.T) {
	ops := correctOps()
	a := mustInterval(t, -2, 3)
	got := a.PowInt(ops, 2)
	require.Equal(t, 0.0, got.Bare.Lo)
	require.Equal(t, 9.0, got.Bare.Hi)
	require.Equal(t, decoration.Com, got.Dec)
}

func TestInterval_NGNeverClears(t *testing.T) {
	ops := correctOps()
	bNonRep, _ := ivl.FromNonRepresentable(1, 1)
	result := bNonRep
	for i := 0; i < 5; i++ {
		result = result.Add(ops, mustInterval(t, 0, 0))
		require.True(t, result.NG)
	}
}
