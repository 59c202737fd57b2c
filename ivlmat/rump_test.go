package ivlmat_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/ivlmat"
	"github.com/stretchr/testify/require"
)

func TestMulRump_AgreesWithNaiveOnThinInputs(t *testing.T) {
	a := thinMatrix(t, 2, 2, []float64{1, 2, 3, 4})
	b := thinMatrix(t, 2, 2, []float64{5, 6, 7, 8})
	naive, err := ivlmat.MulNaive(correctOps(), a, b)
	require.NoError(t, err)
	rump, err := ivlmat.MulRump(correctOps(), a, b)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			nv, _ := naive.At(i, j)
			rv, _ := rump.At(i, j)
			require.InDelta(t, nv.Bare.Lo, rv.Bare.Lo, 1e-6)
			require.InDelta(t, nv.Bare.Hi, rv.Bare.Hi, 1e-6)
		}
	}
}

func TestMulRump_EnclosesSquareOfAKnownInterval(t *testing.T) {
	// A*A where A = [[1,1],[0,1]] with thin entries: verify the result
	// interval contains the product computed independently.
	a := thinMatrix(t, 2, 2, []float64{1, 1, 0, 1})
	got, err := ivlmat.MulRump(correctOps(), a, a)
	require.NoError(t, err)
	// A*A = [[1,2],[0,1]]
	want := []float64{1, 2, 0, 1}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := got.At(i, j)
			w := want[i*2+j]
			require.True(t, v.Bare.Lo <= w+1e-9 && v.Bare.Hi >= w-1e-9,
				"entry (%d,%d): want %v enclosed in [%v,%v]", i, j, w, v.Bare.Lo, v.Bare.Hi)
		}
	}
}

func TestMulRump_DimensionMismatch(t *testing.T) {
	a := thinMatrix(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := thinMatrix(t, 2, 2, []float64{1, 0, 0, 1})
	_, err := ivlmat.MulRump(correctOps(), a, b)
	require.Error(t, err)
}
