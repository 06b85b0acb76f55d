// Package netbasis represents the basis of a network linear program as a
// spanning tree and solves with it without any numerical factorization.
//
// What:
//
//	Every basic column of a network matrix is an arc between two rows (or a
//	row and the virtual root). A nonsingular basis is a spanning tree over the
//	rows plus the root; node v stores the arc to its parent. FTRAN and BTRAN
//	reduce to walks along root paths, and a basis change is a local relink.
//
// Operations:
//
//   - NewFromFactorization, NewFromForest, Bootstrap: construction.
//   - ReplaceColumn: exchange the arc at one basis position for a new column.
//   - UpdateColumn / UpdateColumnDense: FTRAN, B·x = b (rows → positions).
//   - UpdateColumnTranspose / UpdateColumnTransposeDense: BTRAN, yᵀ·B = cᵀ
//     (positions → rows).
//   - Check, Dump, Dense: invariant validation and inspection.
//
// Scratch:
//
//	A Workspace holds the depth buckets, marks and dense accumulator. It is
//	clean between calls and can be shared by bases used one after another
//	(WithWorkspace).
//
// Errors:
//
//	Construction and ReplaceColumn return wrapped sentinels (ErrNotATree,
//	ErrSingularBasis, ErrNotNetworkColumn, ErrNotTreeArc, ErrPivotNotOnPath,
//	...); ReplaceColumn validates before it mutates, so a failed pivot leaves
//	the basis as it was. FTRAN/BTRAN trust their inputs.
//
// Not safe for concurrent use.
package netbasis
