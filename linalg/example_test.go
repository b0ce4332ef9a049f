// SPDX-License-Identifier: MIT

package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/linalg"
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

// ExampleDet expands a 2×2 determinant.
func ExampleDet() {
	a, _ := sparse.FromValues[scalar.Float]([][]int{{2, 3}, {1, 4}})
	d, _ := linalg.Det(a)
	fmt.Println(d)
	// Output:
	// 5
}

// ExampleSolve solves a lower triangular system by forward substitution.
func ExampleSolve() {
	a, _ := sparse.FromValues[scalar.Float]([][]int{{2, 0}, {1, 3}}, sparse.WithDropZeros())
	b := sparse.Column[scalar.Float](2, 7)
	x, _ := linalg.Solve(a, b)
	fmt.Println(x)
	// Output:
	// [[1],
	//  [2]]
}

// ExampleMpower raises a shear matrix to the third power; the structural
// zero below the diagonal survives.
func ExampleMpower() {
	a, _ := sparse.FromValues[scalar.Int]([][]int{{1, 1}, {0, 1}}, sparse.WithDropZeros())
	p, _ := linalg.Mpower(a, 3)
	fmt.Println(p)
	// Output:
	// [[1, 3],
	//  [00, 1]]
}
