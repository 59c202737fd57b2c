package ivlmat_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/ivlmat"
	"github.com/stretchr/testify/require"
)

func TestEigSolver_SymmetricEnclosesKnownSpectrum(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	a := thinMatrix(t, 2, 2, []float64{2, 1, 1, 2})
	got, ng, err := ivlmat.EigSolver(defaultCfg(), correctOps(), a)
	require.NoError(t, err)
	require.False(t, ng)
	require.Len(t, got, 2)
	found1, found3 := false, false
	for _, z := range got {
		if z.Re.Bare.Lo <= 1+1e-6 && z.Re.Bare.Hi >= 1-1e-6 {
			found1 = true
		}
		if z.Re.Bare.Lo <= 3+1e-6 && z.Re.Bare.Hi >= 3-1e-6 {
			found3 = true
		}
	}
	require.True(t, found1, "expected an enclosure of eigenvalue 1")
	require.True(t, found3, "expected an enclosure of eigenvalue 3")

	// Similarity refinement must tighten the discs well below the
	// un-refined Gershgorin bound [0,4]; each disc should be disjoint from
	// the other eigenvalue and far narrower than the full spectrum width.
	for _, z := range got {
		width := z.Re.Bare.Hi - z.Re.Bare.Lo
		require.Less(t, width, 1.0, "disc should be tight after refinement, got width %v", width)
	}
	disjoint := got[0].Re.Bare.Hi < got[1].Re.Bare.Lo || got[1].Re.Bare.Hi < got[0].Re.Bare.Lo
	require.True(t, disjoint, "refined discs for a well-separated spectrum should be disjoint, got %v and %v", got[0].Re.Bare, got[1].Re.Bare)
}

func TestEigSolver_DiagonalMatrixEnclosesDiagonalEntries(t *testing.T) {
	a := thinMatrix(t, 3, 3, []float64{5, 0, 0, 0, -2, 0, 0, 0, 7})
	got, _, err := ivlmat.EigSolver(defaultCfg(), correctOps(), a)
	require.NoError(t, err)
	require.Len(t, got, 3)
	want := map[float64]bool{5: false, -2: false, 7: false}
	for _, z := range got {
		for w := range want {
			if z.Re.Bare.Lo <= w+1e-6 && z.Re.Bare.Hi >= w-1e-6 {
				want[w] = true
			}
		}
	}
	for w, found := range want {
		require.True(t, found, "expected an enclosure of eigenvalue %v", w)
	}
}

func TestEigSolver_NonSquareRejected(t *testing.T) {
	a := thinMatrix(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, _, err := ivlmat.EigSolver(defaultCfg(), correctOps(), a)
	require.Error(t, err)
}
