package ivlmat_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/ivlmat"
	"github.com/stretchr/testify/require"
)

func TestMulNaive_Identity(t *testing.T) {
	a := thinMatrix(t, 2, 2, []float64{1, 2, 3, 4})
	id := thinMatrix(t, 2, 2, []float64{1, 0, 0, 1})
	got, err := ivlmat.MulNaive(correctOps(), a, id)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := got.At(i, j)
			want, _ := a.At(i, j)
			require.InDelta(t, want.Bare.Lo, v.Bare.Lo, 1e-9)
			require.InDelta(t, want.Bare.Hi, v.Bare.Hi, 1e-9)
		}
	}
}

func TestMulNaive_DimensionMismatch(t *testing.T) {
	a := thinMatrix(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := thinMatrix(t, 2, 2, []float64{1, 0, 0, 1})
	_, err := ivlmat.MulNaive(correctOps(), a, b)
	require.Error(t, err)
}

func TestMulNaive_KnownProduct(t *testing.T) {
	// [[1,2],[3,4]] * [[5,6],[7,8]] = [[19,22],[43,50]]
	a := thinMatrix(t, 2, 2, []float64{1, 2, 3, 4})
	b := thinMatrix(t, 2, 2, []float64{5, 6, 7, 8})
	got, err := ivlmat.MulNaive(correctOps(), a, b)
	require.NoError(t, err)
	want := []float64{19, 22, 43, 50}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := got.At(i, j)
			require.InDelta(t, want[i*2+j], v.Bare.Lo, 1e-6)
			require.InDelta(t, want[i*2+j], v.Bare.Hi, 1e-6)
		}
	}
}

func TestScaleUpdate_AlphaZeroSkipsMultiply(t *testing.T) {
	prev := thinMatrix(t, 2, 2, []float64{1, 1, 1, 1})
	zero := mustIvl(t, 0, 0)
	one := mustIvl(t, 1, 1)
	got, err := ivlmat.ScaleUpdate(defaultCfg(), correctOps(), ivlmat.RealInterval, nil, nil, zero, prev, one)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := got.At(i, j)
			require.Equal(t, 1.0, v.Bare.Lo)
		}
	}
}

func TestScaleUpdate_GeneralForm(t *testing.T) {
	a := thinMatrix(t, 1, 1, []float64{2})
	b := thinMatrix(t, 1, 1, []float64{3})
	prev := thinMatrix(t, 1, 1, []float64{10})
	alpha := mustIvl(t, 1, 1)
	beta := mustIvl(t, 1, 1)
	got, err := ivlmat.ScaleUpdate(defaultCfg(), correctOps(), ivlmat.RealInterval, a, b, alpha, prev, beta)
	require.NoError(t, err)
	v, _ := got.At(0, 0)
	// 1*(2*3) + 1*10 = 16
	require.InDelta(t, 16.0, v.Bare.Lo, 1e-9)
}
