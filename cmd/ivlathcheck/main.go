// Command ivlathcheck is a runnable smoke driver exercising the full
// ivlath pipeline end to end: interval construction, directed-rounding
// arithmetic and transcendentals, and verified matrix multiplication,
// inversion and eigenvalue enclosure (spec.md §4, §5).
//
// Playground scenario: build a small interval matrix with genuine input
// uncertainty, multiply it by itself via Rump's algorithm, invert it, and
// enclose its spectrum -- then print every result with its decoration and
// NG flag so the enclosure guarantees are visible end to end.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/ivlath/config"
	"github.com/katalvlaran/ivlath/ivl"
	"github.com/katalvlaran/ivlath/ivlmat"
	"github.com/katalvlaran/ivlath/rounding"
)

func main() {
	cfg := config.New(config.WithRounding(config.RoundingCorrect), config.WithMatMul(config.MatMulFast))
	ops := rounding.For(cfg)

	a, err := ivl.New(1.0, 1.25)
	if err != nil {
		log.Fatalf("ivlathcheck: build a: %v", err)
	}
	b, err := ivl.New(2.0, 2.5)
	if err != nil {
		log.Fatalf("ivlathcheck: build b: %v", err)
	}

	sum := a.Add(ops, b)
	prod := a.Mul(ops, b)
	fmt.Printf("a = %s, b = %s\n", a, b)
	fmt.Printf("a + b = %s\n", sum)
	fmt.Printf("a * b = %s\n", prod)

	exp := a.Exp(ops)
	fmt.Printf("exp(a) = %s\n", exp)

	m, err := ivlmat.NewMatrix(2, 2)
	if err != nil {
		log.Fatalf("ivlathcheck: build matrix: %v", err)
	}
	entries := [][3]float64{{0, 0, 2}, {0, 1, 0}, {1, 0, 1}, {1, 1, 2}}
	for _, e := range entries {
		i, j, center := int(e[0]), int(e[1]), e[2]
		v, err := ivl.New(center-0.01, center+0.01)
		if err != nil {
			log.Fatalf("ivlathcheck: build entry (%d,%d): %v", i, j, err)
		}
		if err := m.Set(i, j, v); err != nil {
			log.Fatalf("ivlathcheck: set entry (%d,%d): %v", i, j, err)
		}
	}

	squared, err := ivlmat.Mul(cfg, ops, ivlmat.RealInterval, m, m)
	if err != nil {
		log.Fatalf("ivlathcheck: matmul: %v", err)
	}
	fmt.Println("M*M (Rump):")
	printMatrix(squared)

	inv, err := ivlmat.MatInv(cfg, ops, m)
	if err != nil {
		log.Fatalf("ivlathcheck: matinv: %v", err)
	}
	fmt.Println("inv(M):")
	printMatrix(inv)

	spectrum, ng, err := ivlmat.EigSolver(cfg, ops, m)
	if err != nil {
		log.Fatalf("ivlathcheck: eigsolver: %v", err)
	}
	fmt.Printf("spectrum(M) (ng=%v):\n", ng)
	for i, z := range spectrum {
		fmt.Printf("  lambda[%d]: Re=%s Im=%s\n", i, z.Re, z.Im)
	}

	norm1, ng1, err := ivlmat.OpNorm1(ops, m)
	if err != nil {
		log.Fatalf("ivlathcheck: opnorm1: %v", err)
	}
	fmt.Printf("||M||_1 = %g (ng=%v)\n", norm1, ng1)
}

func printMatrix(m *ivlmat.Matrix) {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			fmt.Printf("  [%d,%d] = %s\n", i, j, v)
		}
	}
}
