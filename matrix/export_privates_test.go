// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose the Pow failure wrapper and an options snapshot to matrix_test ONLY.
//   - Lives in a _test.go file, so it never widens the production API.

// ExportedPowStepErr exposes powStepErr; a square input never reaches it
// through Pow, so its wrapping contract is checked directly.
var ExportedPowStepErr = powStepErr

// OptionsSnapshot is a read-only view of the resolved codec options.
type OptionsSnapshot struct {
	Verb string
	Base int
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Verb: o.verb, Base: o.base}
}
