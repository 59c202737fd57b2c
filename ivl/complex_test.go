package ivl_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/ivl"
	"github.com/stretchr/testify/require"
)

func TestComplexMul_GaussIdentity(t *testing.T) {
	ops := correctOps()
	// (1+i2)(3+i4) = (3-8) + i(4+6) = -5 + i10
	z := ivl.NewComplex(mustInterval(t, 1, 1), mustInterval(t, 2, 2))
	w := ivl.NewComplex(mustInterval(t, 3, 3), mustInterval(t, 4, 4))
	got := z.Mul(ops, w)
	require.InDelta(t, -5.0, got.Re.Bare.Lo, 1e-9)
	require.InDelta(t, 10.0, got.Im.Bare.Lo, 1e-9)
}

func TestComplexConj(t *testing.T) {
	z := ivl.NewComplex(mustInterval(t, 1, 1), mustInterval(t, 2, 2))
	c := z.Conj()
	require.Equal(t, -2.0, c.Im.Bare.Lo)
}

func TestComplexNaIPropagates(t *testing.T) {
	ops := correctOps()
	z := ivl.NewComplex(mustInterval(t, 1, 1), mustInterval(t, 2, 2))
	got := z.Add(ops, ivl.NaIComplex)
	require.True(t, got.IsNaI())
}

func TestFormat_InfSup(t *testing.T) {
	v := mustInterval(t, 1, 2)
	require.Equal(t, "[1, 2]", v.Format(ivl.DefaultFormatOptions()))
}

func TestFormat_Midpoint(t *testing.T) {
	v := mustInterval(t, 1, 3)
	got := v.Format(ivl.FormatOptions{Style: ivl.Midpoint, SignificantDigits: 6})
	require.Equal(t, "2 ± 1", got)
}
