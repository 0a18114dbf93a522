// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomMatrix returns a rows×cols matrix of independent, uniformly
// distributed integers in [lo, hi] (inclusive). It is a fixture generator,
// not part of the algorithmic core.
//
// Implementation:
//   - Stage 1: validate shape and range.
//   - Stage 2: draw lo + Int63n(hi-lo+1) per cell in row-major order.
//
// Determinism:
//   - With WithSeed the output is reproducible; otherwise seeded from the clock.
//
// Errors:
//   - ErrInvalidDimensions (rows ≤ 0 or cols ≤ 0).
//   - ErrInvalidArgument (lo > hi, or a span that overflows int64).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RandomMatrix(rows, cols, lo, hi int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opRandomMatrix, ErrInvalidDimensions)
	}
	if lo > hi {
		return nil, matrixErrorf(opRandomMatrix, fmt.Errorf("lo %d > hi %d: %w", lo, hi, ErrInvalidArgument))
	}
	span := int64(hi) - int64(lo) + 1
	if span <= 0 {
		return nil, matrixErrorf(opRandomMatrix, fmt.Errorf("range [%d,%d] too wide: %w", lo, hi, ErrInvalidArgument))
	}

	o := gatherOptions(opts...)
	seed := o.seed
	if !o.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m := newDense(rows, cols)
	for idx := range m.data {
		m.data[idx] = float64(int64(lo) + rng.Int63n(span))
	}

	return m, nil
}
