// SPDX-License-Identifier: MIT

package mat4

// Helpers visible to mat4_test only: resolved options and panic messages.

import "github.com/bik20/WebViewer/numeric"

// PanicEpsilonInvalid_TestOnly mirrors the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts for precision p.
func GatherOptionsSnapshot_TestOnly(p numeric.Precision, opts ...Option) OptionsSnapshot {
	o := gatherOptions(p, opts...)
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// ValidatesNaNInf_TestOnly reports the policy flag of m.
func ValidatesNaNInf_TestOnly[T numeric.Float](m *Matrix4x4[T]) bool { return m.validateNaNInf }
