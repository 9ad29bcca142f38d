// SPDX-License-Identifier: MIT

// Package mat4 - Matrix4x4 storage (row-major) & safe accessors.
//
// Purpose:
//   - Fixed [16]T buffer with the explicit index formula 4*row + col.
//   - Guarantee safety at the public surface: At/SetAt/Row/Col return errors
//     instead of panicking.
//   - Keep the numeric policy (finite-only, epsilon) per instance.
//
// Complexity quicksheet:
//   - Every accessor is O(1); Copy/Convert/Equal are O(16).

package mat4

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bik20/WebViewer/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// identity is the row-major 4×4 identity in float64; narrowed on store.
var identity = [Len]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Matrix4x4 is a dense row-major 4×4 matrix.
//   - v holds 16 elements; element (row, col) is v[4*row+col].
//   - validateNaNInf and eps form the numeric policy (see options.go).
type Matrix4x4[T numeric.Float] struct {
	v              [Len]T
	validateNaNInf bool
	eps            float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Matrix4x4[float32])(nil)
	_ Matrix       = (*Matrix4x4[float64])(nil)
	_ fmt.Stringer = (*Matrix4x4[float64])(nil)
)

// New creates an identity matrix with storage width T.
// MAIN DESCRIPTION:
//   - Public constructor; the precision is fixed for the lifetime of the value.
//
// Implementation:
//   - Stage 1: resolve options (width-dependent epsilon).
//   - Stage 2: store the identity pattern.
//
// Complexity:
//   - Time O(16), Space O(16).
func New[T numeric.Float](opts ...Option) *Matrix4x4[T] {
	o := gatherOptions(numeric.PrecisionOf[T](), opts...)
	m := &Matrix4x4[T]{validateNaNInf: o.validateNaNInf, eps: o.eps}
	m.Identity()

	return m
}

// NewWithPrecision creates an identity matrix whose width is chosen at runtime.
// MAIN DESCRIPTION:
//   - Bridges a parsed precision selector to the generic type.
//
// Returns:
//   - *Matrix4x4[float32] for numeric.Float32, *Matrix4x4[float64] for numeric.Float64.
//
// Errors:
//   - numeric.ErrUnknownPrecision for any other tag; there is no fallback width.
func NewWithPrecision(p numeric.Precision, opts ...Option) (Matrix, error) {
	switch p {
	case numeric.Float32:
		return New[float32](opts...), nil
	case numeric.Float64:
		return New[float64](opts...), nil
	default:
		return nil, fmt.Errorf("mat4.%s(%s): %w", opNewPrecision, p, numeric.ErrUnknownPrecision)
	}
}

// Precision returns the storage width tag. Complexity: O(1).
func (m *Matrix4x4[T]) Precision() numeric.Precision { return numeric.PrecisionOf[T]() }

// Epsilon returns the ApproxEqual tolerance of this instance.
func (m *Matrix4x4[T]) Epsilon() float64 { return m.eps }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func indexOf(row, col int) (int, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, ErrOutOfRange
	}

	return row*Size + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix4x4[T]) At(row, col int) (T, error) {
	off, err := indexOf(row, col)
	if err != nil {
		return 0, mat4Errorf(opAt, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	return m.v[off], nil
}

// SetAt stores x at (row, col).
// Errors:
//   - ErrOutOfRange for bad indices; ErrNaNInf for non-finite x under the policy.
//
// Complexity: O(1).
func (m *Matrix4x4[T]) SetAt(row, col int, x T) error {
	off, err := indexOf(row, col)
	if err != nil {
		return mat4Errorf(opSetAt, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	if m.validateNaNInf && !numeric.IsFinite(x) {
		return mat4Errorf(opSetAt, fmt.Errorf("(%d,%d): %w", row, col, ErrNaNInf))
	}
	m.v[off] = x

	return nil
}

// Row returns row i as a copy.
func (m *Matrix4x4[T]) Row(i int) ([Size]T, error) {
	var out [Size]T
	if i < 0 || i >= Size {
		return out, mat4Errorf(opRow, fmt.Errorf("(%d): %w", i, ErrOutOfRange))
	}
	copy(out[:], m.v[i*Size:(i+1)*Size])

	return out, nil
}

// Col returns column j as a copy.
func (m *Matrix4x4[T]) Col(j int) ([Size]T, error) {
	var out [Size]T
	if j < 0 || j >= Size {
		return out, mat4Errorf(opCol, fmt.Errorf("(%d): %w", j, ErrOutOfRange))
	}
	for i := 0; i < Size; i++ {
		out[i] = m.v[i*Size+j]
	}

	return out, nil
}

// Values returns a copy of the 16 row-major elements.
func (m *Matrix4x4[T]) Values() [Len]T { return m.v }

// Float64s returns the 16 row-major elements widened to float64.
func (m *Matrix4x4[T]) Float64s() [Len]float64 {
	var out [Len]float64
	for i, x := range m.v {
		out[i] = float64(x)
	}

	return out
}

// Copy returns a deep, independent copy with the same precision and policy.
// Complexity: O(16).
func (m *Matrix4x4[T]) Copy() *Matrix4x4[T] {
	cp := *m // array field: value copy, no shared storage
	return &cp
}

// Convert returns a copy of m stored with width D. Values are narrowed or
// widened by Go conversion rules; the finite-only flag is carried over and
// the epsilon is re-resolved for D unless it differs from m's width default.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrNaNInf when m validates NaN/Inf and a value overflows D
//     (e.g. 1e300 narrowed to float32).
func Convert[D, S numeric.Float](m *Matrix4x4[S]) (*Matrix4x4[D], error) {
	if m == nil {
		return nil, mat4Errorf(opConvert, ErrNilMatrix)
	}
	out := &Matrix4x4[D]{validateNaNInf: m.validateNaNInf, eps: m.eps}
	if m.eps == gatherOptions(m.Precision()).eps {
		out.eps = gatherOptions(numeric.PrecisionOf[D]()).eps
	}
	for i, x := range m.v {
		out.v[i] = D(x)
	}
	if out.validateNaNInf {
		if err := validateFinite(out.v[:]); err != nil {
			return nil, mat4Errorf(opConvert, err)
		}
	}

	return out, nil
}

// Equal reports exact element-wise equality. A nil o is never equal.
func (m *Matrix4x4[T]) Equal(o *Matrix4x4[T]) bool {
	if o == nil {
		return false
	}

	return m.v == o.v
}

// ApproxEqual reports |m[i]-o[i]| <= m.Epsilon() for every element.
// Complexity: O(16).
func (m *Matrix4x4[T]) ApproxEqual(o *Matrix4x4[T]) bool {
	if o == nil {
		return false
	}
	for i := range m.v {
		if math.Abs(float64(m.v[i])-float64(o.v[i])) > m.eps {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write the shortest round-trip form of each value at the
//     instance width, using the standard delimiters.
//
// Returns:
//   - string: four lines "[a, b, c, d]".
func (m *Matrix4x4[T]) String() string {
	bits := m.Precision().Bits()
	var b strings.Builder
	var i, j int
	for i = 0; i < Size; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < Size; j++ {
			b.WriteString(strconv.FormatFloat(float64(m.v[i*Size+j]), 'g', -1, bits))
			if j+1 < Size {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
