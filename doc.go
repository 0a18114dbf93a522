// Package linalg is a small dense linear-algebra kernel and command-line tool.
//
// What is inside?
//
//   - matrix: immutable Vector and Dense values; determinant by Gaussian
//     elimination with partial pivoting, checked against a cofactor-expansion
//     oracle; cofactors, adjugate and inverse; product, scaling, transpose;
//     random integer fixtures; gonum interop.
//   - cmd/linalg: a CLI reading matrices from YAML (optionally zstd-compressed)
//     files: det, inverse, mul, random, check, version.
//   - examples: runnable programs (inverse round trip, oracle comparison,
//     linear system).
//
// Guarantees:
//
//   - No operation mutates its receiver; values are safe to share between
//     goroutines.
//   - Errors are sentinels (matrix.ErrSingular, matrix.ErrNonSquare, ...)
//     matched with errors.Is.
//
// Quick start:
//
//	m, _ := matrix.NewDense([][]int{{4, 7}, {2, 6}})
//	det, _ := m.Determinant() // 10
//	inv, _ := m.Inverse()     // [[0.6 -0.7] [-0.2 0.4]]
package linalg
