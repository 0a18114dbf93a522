// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose the unexported pivot selector and the internal options snapshot to matrix_test ONLY.
//   - Compiled only with the package tests; nothing here widens the production API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicSingularTolInvalid_TestOnly = panicSingularTolInvalid
	PanicAlgorithmInvalid_TestOnly   = panicAlgorithmInvalid
	PanicPivotingInvalid_TestOnly    = panicPivotingInvalid
)

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	SingularTol    float64
	Algorithm      Algorithm
	Pivoting       Pivoting
	Seed           int64
	Seeded         bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		SingularTol:    o.singularTol,
		Algorithm:      o.algorithm,
		Pivoting:       o.pivoting,
		Seed:           o.seed,
		Seeded:         o.seeded,
	}
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// SelectPivot_TestOnly runs the private pivot search over rows at column pos.
func SelectPivot_TestOnly(rows [][]float64, pos int, p Pivoting) int {
	vs := make([]Vector, len(rows))
	for i, r := range rows {
		vs[i] = NewVector(r)
	}

	return selectPivot(vs, pos, p)
}
