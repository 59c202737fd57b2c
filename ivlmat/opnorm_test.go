package ivlmat_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/ivlmat"
	"github.com/stretchr/testify/require"
)

func TestOpNorm1_MaxColumnSum(t *testing.T) {
	// [[1, -2], [3, 4]] -> col sums: |1|+|3|=4, |-2|+|4|=6
	m := thinMatrix(t, 2, 2, []float64{1, -2, 3, 4})
	norm, ng, err := ivlmat.OpNorm1(correctOps(), m)
	require.NoError(t, err)
	require.False(t, ng)
	require.InDelta(t, 6.0, norm, 1e-9)
}

func TestOpNormInf_MaxRowSum(t *testing.T) {
	// [[1, -2], [3, 4]] -> row sums: |1|+|-2|=3, |3|+|4|=7
	m := thinMatrix(t, 2, 2, []float64{1, -2, 3, 4})
	norm, ng, err := ivlmat.OpNormInf(correctOps(), m)
	require.NoError(t, err)
	require.False(t, ng)
	require.InDelta(t, 7.0, norm, 1e-9)
}

func TestOpNorm_NilMatrix(t *testing.T) {
	_, _, err := ivlmat.OpNorm1(correctOps(), nil)
	require.Error(t, err)
}
