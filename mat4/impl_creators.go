// SPDX-License-Identifier: MIT

// Package mat4 - creators: operations that overwrite the whole receiver.
//
// Behavior highlights:
//   - Creators overwrite; they never accumulate onto the previous content.
//   - Every failing creator leaves the receiver bit-identical.
//   - Trigonometry runs in float64; results are narrowed to T on store.

package mat4

import (
	"fmt"
	"math"

	"github.com/bik20/WebViewer/numeric"
)

// Set copies 16 row-major values into the receiver.
// MAIN DESCRIPTION:
//   - Bulk load with all-or-nothing semantics.
//
// Implementation:
//   - Stage 1: validate length (exactly 16).
//   - Stage 2: enforce numeric policy on every value.
//   - Stage 3: copy in order.
//
// Errors:
//   - ErrBadLength when len(src) != 16; ErrNaNInf under the finite-only policy.
//     Both belong to ErrInvalidArgument; the receiver is unchanged.
//
// Complexity:
//   - Time O(16), Space O(1).
func (m *Matrix4x4[T]) Set(src []T) error {
	if err := validateLen(src); err != nil {
		return mat4Errorf(opSet, fmt.Errorf("len=%d: %w", len(src), err))
	}
	if m.validateNaNInf {
		if err := validateFinite(src); err != nil {
			return mat4Errorf(opSet, err)
		}
	}
	copy(m.v[:], src)

	return nil
}

// SetFloat64s narrows src to T and behaves as Set.
func (m *Matrix4x4[T]) SetFloat64s(src []float64) error {
	if err := validateLen(src); err != nil {
		return mat4Errorf(opSet, fmt.Errorf("len=%d: %w", len(src), err))
	}
	buf := make([]T, Len)
	for i, x := range src {
		buf[i] = T(x)
	}

	return m.Set(buf)
}

// store narrows a float64 row-major buffer into the receiver.
func (m *Matrix4x4[T]) store(src *[Len]float64) {
	for i, x := range src {
		m.v[i] = T(x)
	}
}

// Identity overwrites the receiver with the identity matrix.
func (m *Matrix4x4[T]) Identity() { m.store(&identity) }

// Zero overwrites the receiver with the zero matrix.
func (m *Matrix4x4[T]) Zero() { m.v = [Len]T{} }

// affine splits a 3- or 4-component input into x, y, z, w (w=1 for 3).
func affine[T numeric.Float](src []T) (x, y, z, w T) {
	x, y, z, w = src[0], src[1], src[2], 1
	if len(src) == 4 {
		w = src[3]
	}

	return x, y, z, w
}

// checkAffine runs the shared Translation/Scale guards.
func (m *Matrix4x4[T]) checkAffine(tag string, src []T) error {
	if err := validateVector(src); err != nil {
		return mat4Errorf(tag, fmt.Errorf("len=%d: %w", len(src), err))
	}
	if m.validateNaNInf {
		if err := validateFinite(src); err != nil {
			return mat4Errorf(tag, err)
		}
	}

	return nil
}

// Translation builds the affine translation matrix
//
//	[1 0 0 x]
//	[0 1 0 y]
//	[0 0 1 z]
//	[0 0 0 w]
//
// from (x, y, z) with w=1, or from (x, y, z, w).
// Errors: ErrBadVectorLength for any other length, ErrNaNInf under the
// policy; the receiver is unchanged on error.
func (m *Matrix4x4[T]) Translation(v []T) error {
	if err := m.checkAffine(opTranslation, v); err != nil {
		return err
	}
	x, y, z, w := affine(v)
	m.v = [Len]T{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, w,
	}

	return nil
}

// Scale builds the diagonal matrix diag(x, y, z, w), w=1 when omitted.
// Same input contract and errors as Translation.
func (m *Matrix4x4[T]) Scale(v []T) error {
	if err := m.checkAffine(opScale, v); err != nil {
		return err
	}
	x, y, z, w := affine(v)
	m.v = [Len]T{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, w,
	}

	return nil
}

// RotationX overwrites the receiver with a right-handed rotation of angle
// radians about the X axis. Any angle is accepted as is (no normalisation).
func (m *Matrix4x4[T]) RotationX(angle float64) {
	s, c := math.Sincos(angle)
	m.store(&[Len]float64{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	})
}

// RotationY overwrites the receiver with a rotation about the Y axis.
func (m *Matrix4x4[T]) RotationY(angle float64) {
	s, c := math.Sincos(angle)
	m.store(&[Len]float64{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	})
}

// RotationZ overwrites the receiver with a rotation about the Z axis.
func (m *Matrix4x4[T]) RotationZ(angle float64) {
	s, c := math.Sincos(angle)
	m.store(&[Len]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}
