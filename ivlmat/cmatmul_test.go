package ivlmat_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/config"
	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/ivlmat"
	"github.com/stretchr/testify/require"
)

// thinComplexMat builds a rows x cols ComplexMatrix of thin entries
// built from separate real and imaginary flat value slices.
func thinComplexMat(t *testing.T, rows, cols int, re, im []float64) *ivlmat.ComplexMatrix {
	t.Helper()
	require.Len(t, re, rows*cols)
	require.Len(t, im, rows*cols)
	m, err := ivlmat.NewComplexMatrix(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			k := i*cols + j
			reI := mustIvl(t, re[k], re[k])
			imI := mustIvl(t, im[k], im[k])
			require.NoError(t, m.Set(i, j, ivl.NewComplex(reI, imI)))
		}
	}
	return m
}

func TestComplexMulNaive_IdentityIsNoop(t *testing.T) {
	a := thinComplexMat(t, 2, 2, []float64{1, 2, 3, 4}, []float64{1, 0, -1, 2})
	id := thinComplexMat(t, 2, 2, []float64{1, 0, 0, 1}, []float64{0, 0, 0, 0})
	got, err := ivlmat.ComplexMulNaive(correctOps(), a, id)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := a.At(i, j)
			v, _ := got.At(i, j)
			require.InDelta(t, want.Re.Bare.Lo, v.Re.Bare.Lo, 1e-9)
			require.InDelta(t, want.Im.Bare.Lo, v.Im.Bare.Lo, 1e-9)
		}
	}
}

func TestComplexMulRump_MatchesNaive(t *testing.T) {
	a := thinComplexMat(t, 2, 2, []float64{1, 2, 3, 4}, []float64{2, -1, 0, 1})
	b := thinComplexMat(t, 2, 2, []float64{5, 6, 7, 8}, []float64{-1, 1, 2, 0})
	naive, err := ivlmat.ComplexMulNaive(correctOps(), a, b)
	require.NoError(t, err)
	rump, err := ivlmat.ComplexMulRump(correctOps(), a, b)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			wr, _ := naive.At(i, j)
			gr, _ := rump.At(i, j)
			require.InDelta(t, wr.Re.Bare.Lo, gr.Re.Bare.Lo, 1e-9)
			require.InDelta(t, wr.Im.Bare.Lo, gr.Im.Bare.Lo, 1e-9)
		}
	}
}

func TestMulComplex_RationalKindAlwaysNaive(t *testing.T) {
	a := thinComplexMat(t, 2, 2, []float64{1, 2, 3, 4}, []float64{0, 0, 0, 0})
	b := thinComplexMat(t, 2, 2, []float64{1, 0, 0, 1}, []float64{0, 0, 0, 0})
	cfg := config.New(config.WithMatMul(config.MatMulFast))

	naive, err := ivlmat.ComplexMulNaive(correctOps(), a, b)
	require.NoError(t, err)
	got, err := ivlmat.MulComplex(cfg, correctOps(), ivlmat.ComplexRational, a, b)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			wr, _ := naive.At(i, j)
			gr, _ := got.At(i, j)
			require.Equal(t, wr.Re.Bare, gr.Re.Bare)
		}
	}
}

func TestMulRealComplex_PromotesRealOperand(t *testing.T) {
	a := thinMatrix(t, 1, 2, []float64{2, 3})
	b := thinComplexMat(t, 2, 1, []float64{1, 1}, []float64{1, -1})
	got, err := ivlmat.MulRealComplex(defaultCfg(), correctOps(), ivlmat.ComplexIntervalKind, a, b)
	require.NoError(t, err)
	v, err := got.At(0, 0)
	require.NoError(t, err)
	// 2*(1+i) + 3*(1-i) = 5 - i
	require.InDelta(t, 5.0, v.Re.Bare.Lo, 1e-9)
	require.InDelta(t, -1.0, v.Im.Bare.Lo, 1e-9)
}

func TestComplexMatInv_IdentityIsSelfInverse(t *testing.T) {
	id := thinComplexMat(t, 2, 2, []float64{1, 0, 0, 1}, []float64{0, 0, 0, 0})
	inv, err := ivlmat.ComplexMatInv(correctOps(), id)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := inv.At(i, j)
			require.False(t, v.IsNaI())
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v.Re.Bare.Lo, 1e-6)
			require.InDelta(t, want, v.Re.Bare.Hi, 1e-6)
		}
	}
}

func TestComplexMatInv_SingularYieldsNaI(t *testing.T) {
	singular := thinComplexMat(t, 2, 2, []float64{1, 2, 2, 4}, []float64{0, 0, 0, 0})
	inv, err := ivlmat.ComplexMatInv(correctOps(), singular)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := inv.At(i, j)
			require.True(t, v.IsNaI())
		}
	}
}
