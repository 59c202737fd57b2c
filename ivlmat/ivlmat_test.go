package ivlmat_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/config"
	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/ivlmat"
	"github.com/katalvlaran/ivlath/rounding"
	"github.com/stretchr/testify/require"
)

func correctOps() rounding.Ops { return rounding.NewCorrectOps() }

func mustIvl(t *testing.T, lo, hi float64) ivl.Interval {
	t.Helper()
	v, err := ivl.New(lo, hi)
	require.NoError(t, err)
	return v
}

// thinMatrix builds a rows x cols Matrix whose entries are the thin
// intervals [vals[i*cols+j], vals[i*cols+j]].
func thinMatrix(t *testing.T, rows, cols int, vals []float64) *ivlmat.Matrix {
	t.Helper()
	require.Len(t, vals, rows*cols)
	m, err := ivlmat.NewMatrix(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, mustIvl(t, vals[i*cols+j], vals[i*cols+j])))
		}
	}
	return m
}

func defaultCfg() config.Config { return config.New() }
