// SPDX-License-Identifier: MIT

// Package mat4: shape constants and the precision-erased Matrix interface.
package mat4

import "github.com/bik20/WebViewer/numeric"

const (
	// Size is the row and column count.
	Size = 4

	// Len is the element count, Size*Size.
	Len = Size * Size
)

// Matrix is the precision-erased view of a Matrix4x4, returned by
// NewWithPrecision when the width is only known at runtime.
//
// Values cross this boundary as float64; SetFloat64s narrows them to the
// instance width.
type Matrix interface {
	// Precision returns the storage width tag.
	Precision() numeric.Precision

	// Float64s returns the 16 row-major elements widened to float64.
	Float64s() [Len]float64

	// SetFloat64s behaves as Set after narrowing src to the instance width.
	SetFloat64s(src []float64) error

	Identity()
	Zero()
	RotationX(angle float64)
	RotationY(angle float64)
	RotationZ(angle float64)
	Transpose()

	String() string
}
