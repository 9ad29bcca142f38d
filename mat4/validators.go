// SPDX-License-Identifier: MIT
// Package: mat4
//
// Purpose:
//  - One place for the guards shared by creators and algebra.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package mat4

import "github.com/bik20/WebViewer/numeric"

// validateLen ensures len(src) == Len.
func validateLen[T numeric.Float](src []T) error {
	if len(src) != Len {
		return ErrBadLength
	}

	return nil
}

// validateVector ensures an affine input has 3 or 4 components.
func validateVector[T numeric.Float](src []T) error {
	if n := len(src); n != 3 && n != 4 {
		return ErrBadVectorLength
	}

	return nil
}

// validateFinite rejects NaN/±Inf in src.
func validateFinite[T numeric.Float](src []T) error {
	for _, x := range src {
		if !numeric.IsFinite(x) {
			return ErrNaNInf
		}
	}

	return nil
}

// validateOperands rejects nil matrix operands. Generic over widths so the
// mixed-precision kernel can use it unchanged.
func validateOperands[D, A, B numeric.Float](dst *Matrix4x4[D], a *Matrix4x4[A], b *Matrix4x4[B]) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilMatrix
	}

	return nil
}
