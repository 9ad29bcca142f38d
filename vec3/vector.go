// SPDX-License-Identifier: MIT

// Package vec3 - Vector3 storage & accessors.
//
// Purpose:
//   - Fixed 3-element storage; indexable components with safe accessors.
//   - Precision fixed by the type parameter and kept by Copy.
//
// Complexity quicksheet:
//   - Every method is O(1).

package vec3

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bik20/WebViewer/numeric"
)

// Size is the number of components of a Vector3.
const Size = 3

// Vector is the precision-erased view used on runtime selector paths.
type Vector interface {
	Precision() numeric.Precision
	Float64s() [Size]float64
	String() string
}

// Vector3 is a 3D point/direction with components x, y, z at indices 0..2.
type Vector3[T numeric.Float] struct {
	v [Size]T
}

var (
	_ Vector       = (*Vector3[float32])(nil)
	_ Vector       = (*Vector3[float64])(nil)
	_ fmt.Stringer = (*Vector3[float64])(nil)
)

// New returns the zero vector.
func New[T numeric.Float]() *Vector3[T] { return &Vector3[T]{} }

// Of returns the vector (x, y, z).
func Of[T numeric.Float](x, y, z T) *Vector3[T] {
	return &Vector3[T]{v: [Size]T{x, y, z}}
}

// FromSlice copies src into a new vector. len(src) must be 3.
func FromSlice[T numeric.Float](src []T) (*Vector3[T], error) {
	if len(src) != Size {
		return nil, fmt.Errorf("FromSlice(len=%d): %w", len(src), ErrBadLength)
	}
	out := &Vector3[T]{}
	copy(out.v[:], src)

	return out, nil
}

// NewWithPrecision builds a zero vector whose width is chosen at runtime.
// Unknown selectors fail with numeric.ErrUnknownPrecision.
func NewWithPrecision(p numeric.Precision) (Vector, error) {
	switch p {
	case numeric.Float32:
		return New[float32](), nil
	case numeric.Float64:
		return New[float64](), nil
	default:
		return nil, fmt.Errorf("vec3.NewWithPrecision(%s): %w", p, numeric.ErrUnknownPrecision)
	}
}

// X returns component 0.
func (v *Vector3[T]) X() T { return v.v[0] }

// Y returns component 1.
func (v *Vector3[T]) Y() T { return v.v[1] }

// Z returns component 2.
func (v *Vector3[T]) Z() T { return v.v[2] }

// Len is always 3.
func (v *Vector3[T]) Len() int { return Size }

// Precision returns the storage width tag.
func (v *Vector3[T]) Precision() numeric.Precision { return numeric.PrecisionOf[T]() }

// At returns component i or ErrOutOfRange.
func (v *Vector3[T]) At(i int) (T, error) {
	if i < 0 || i >= Size {
		return 0, fmt.Errorf("Vector3.At(%d): %w", i, ErrOutOfRange)
	}

	return v.v[i], nil
}

// SetAt stores x at component i or returns ErrOutOfRange.
func (v *Vector3[T]) SetAt(i int, x T) error {
	if i < 0 || i >= Size {
		return fmt.Errorf("Vector3.SetAt(%d): %w", i, ErrOutOfRange)
	}
	v.v[i] = x

	return nil
}

// Values returns a copy of the components.
func (v *Vector3[T]) Values() [Size]T { return v.v }

// Float64s returns the components widened to float64.
func (v *Vector3[T]) Float64s() [Size]float64 {
	return [Size]float64{float64(v.v[0]), float64(v.v[1]), float64(v.v[2])}
}

// Copy returns an independent vector of the same precision.
func (v *Vector3[T]) Copy() *Vector3[T] {
	cp := *v
	return &cp
}

// Equal reports exact component equality.
func (v *Vector3[T]) Equal(o *Vector3[T]) bool {
	if o == nil {
		return false
	}

	return v.v == o.v
}

// ApproxEqual reports |v[i]-o[i]| <= eps for every component.
func (v *Vector3[T]) ApproxEqual(o *Vector3[T], eps float64) bool {
	if o == nil {
		return false
	}
	for i := 0; i < Size; i++ {
		if math.Abs(float64(v.v[i])-float64(o.v[i])) > eps {
			return false
		}
	}

	return true
}

// String renders "(x, y, z)" with the shortest round-trip form of each
// component at the vector's own width.
func (v *Vector3[T]) String() string {
	bits := v.Precision().Bits()
	var b strings.Builder
	b.WriteString("(")
	for i := 0; i < Size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v.v[i]), 'g', -1, bits))
	}
	b.WriteString(")")

	return b.String()
}
