// Package matrix is a small dense linear-algebra kernel: immutable Vector and
// Dense values and the operations that compose into determinant and inverse.
//
// The package provides:
//
//   - Vector: Add, Sub, Scale, Dot, Magnitude; the elimination engine's row type.
//   - Dense: validated construction (NewDense, FromAny, NewFromVectors),
//     Scale, Mul, MulVec, Transpose, Submatrix.
//   - Determinant engine: DeterminantElimination (Gaussian elimination with
//     partial pivoting, O(n³)) and DeterminantCofactor (cofactor expansion
//     oracle, O(n!)); Determinant selects one via WithAlgorithm.
//   - Cofactor, CofactorMatrix, Adjugate and Inverse (adjugate / determinant).
//   - RandomMatrix for integer test fixtures; ToGonum/FromGonum for interop.
//
// Every operation returns a new value; no public method mutates its receiver,
// so values may be shared across goroutines without locking. Errors are
// package sentinels (ErrNonSquare, ErrSingular, ...) matched with errors.Is.
//
//	m, _ := matrix.NewDense([][]int{{1, 2}, {3, 4}})
//	det, _ := m.Determinant() // -2
//	inv, _ := m.Inverse()
package matrix
