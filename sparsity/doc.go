// SPDX-License-Identifier: MIT

// Package sparsity implements the compressed-column sparsity pattern and
// every structural algorithm of lvsparse.
//
// What:
//
//   - Pattern: an immutable descriptor of the nonzero positions of an
//     nrow×ncol array in compressed column storage (colind/row).
//   - Element lookup and growth (Lookup, AddEntry), transpose with a
//     nonzero mapping, structural union/intersection with provenance,
//     sub-patterns, erasure, concatenation and splitting, products.
//   - Graph algorithms on the bipartite/directed graph of a pattern:
//     elimination tree, explicitly stacked depth-first search and reach,
//     strongly connected components, maximum transversal and the
//     Dulmage–Mendelsohn / block-triangular decomposition.
//
// Why:
//
//	Every value-bearing operation of the sparse package first asks this
//	package which positions exist and how nonzero indices move; the values
//	are then permuted with the returned mappings. Keeping the structure
//	independent of the element type lets the same decompositions serve
//	numeric and symbolic matrices.
//
// Immutability:
//
//	A *Pattern is never mutated after construction. Operations that change
//	the structure return a new *Pattern, so one pattern can be shared by any
//	number of matrices and read concurrently.
//
// Complexity:
//
//   - Lookup:                 O(log k), k = entries in the column
//   - Transpose/Combine/Sub:  O(nnz + nrow + ncol) (Sub adds a sort per column)
//   - EliminationTree:        O(nnz · α)
//   - SCC, DFS, Reach:        O(nnz + n)
//   - MaximumTransversal:     O(ncol · nnz) worst case, near linear in practice
//
// Errors:
//
//   - ErrBadPattern     inconsistent colind/row arrays
//   - ErrOutOfRange     row/column index outside the shape
//   - ErrDimensionMismatch, ErrNotSquare, ErrBadOffsets
//
// The algorithms follow the classical CSparse formulations (cs_etree,
// cs_dfs, cs_scc, cs_maxtrans, cs_dmperm) re-expressed over bounds-checked
// Go slices.
package sparsity
