// SPDX-License-Identifier: MIT

package sparsity_test

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparsity"
)

// ExampleTriplet builds a pattern from coordinates and prints it.
func ExampleTriplet() {
	p, _, err := sparsity.Triplet(3, 3, []int{0, 1, 2, 2}, []int{0, 1, 0, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(p)
	// Output:
	// 3x3, 4 nnz
	// *..
	// .*.
	// *.*
}

// ExamplePattern_MaximumTransversal checks structural nonsingularity.
func ExamplePattern_MaximumTransversal() {
	p, _ := sparsity.FromMask([][]bool{
		{true, false, false},
		{true, false, false},
		{true, true, true},
	})
	_, colMatch := p.MaximumTransversal(0)
	fmt.Println("structural rank:", p.StructuralRank())
	fmt.Println("column 0 matched:", colMatch[0] >= 0)
	// Output:
	// structural rank: 2
	// column 0 matched: true
}

// ExamplePattern_BTF shows the block structure of a lower triangular
// pattern: no cycles, so every block is a single row/column.
func ExamplePattern_BTF() {
	d := sparsity.Lower(3).BTF()
	fmt.Println("blocks:", d.NumBlocks())
	// Output:
	// blocks: 3
}
