// Package netlp is the linear-algebra kernel of a network simplex: a basis
// kept as a spanning tree instead of an LU factorization, and the sparse
// vectors that carry columns in and out of it.
//
// What is inside?
//
//	sparse/       Indexed (full-storage) and Packed sparse vectors, scans,
//	              arithmetic, tolerance comparison
//	network/      node–arc incidence matrix with row slacks and a basic-
//	              sequence list (the column source of a basis)
//	netbasis/     tree basis: FTRAN, BTRAN, ReplaceColumn, Check, Dump
//	cmd/netbasis  load a problem from yaml/json/toml, price it, pivot it
//
// Why a tree?
//
//   - Every basis of a network matrix is triangular up to permutation, so
//     B·x = b and yᵀ·B = cᵀ are walks along root paths.
//   - A basis change relinks one path; nothing is refactorized.
//   - All entries stay ±1; no numerical pivoting, no fill-in.
//
// Quick ASCII example:
//
//	root ← 0 ← 1        arc 1→0 at node 1, slack of row 0 at node 0
//
//	FTRAN e₁ → positions (1: -1, 0: +1)
//
// See netbasis.ExampleBasis for the same basis pivoting the slack of row 1
// in.
//
//	go get github.com/katalvlaran/netlp
package netlp
