// SPDX-License-Identifier: MIT
// Package mat4 - algebra kernels: product, composition, transpose, point transform.
//
// Purpose:
//   - Fixed 4×4 kernels with deterministic loop orders.
//   - Products accumulate in float64 and are narrowed once on store, so the
//     32-bit path rounds exactly once per element.
//
// Notes:
//   - Every kernel computes into a temporary first: the receiver may alias any
//     operand, and a failing call leaves it unchanged.

package mat4

import (
	"fmt"

	"github.com/bik20/WebViewer/numeric"
	"github.com/bik20/WebViewer/vec3"
)

// mul4 computes out = a × b over float64 buffers (i→k→j).
// Zero entries of a are not skipped: 0·Inf and 0·NaN must yield NaN.
func mul4(out, a, b *[Len]float64) {
	var (
		i, k, j    int
		av         float64
		rowA, rowB int
	)
	*out = [Len]float64{}
	for i = 0; i < Size; i++ {
		rowA = i * Size
		for k = 0; k < Size; k++ {
			av = a[rowA+k]
			rowB = k * Size
			for j = 0; j < Size; j++ {
				out[rowA+j] += av * b[rowB+j]
			}
		}
	}
}

// MultiplyInto stores a × b into dst, converting between widths.
// MAIN DESCRIPTION:
//   - Mixed-precision product: operands and destination may each be float32
//     or float64.
//
// Implementation:
//   - Stage 1: reject nil operands.
//   - Stage 2: widen a and b to float64 and multiply into a temporary.
//   - Stage 3: narrow into a dst-width temporary.
//   - Stage 4: enforce dst's numeric policy on the narrowed values, then assign.
//
// Behavior highlights:
//   - dst may be the same object as a or b.
//   - result[row][col] = Σ_k a[row][k]·b[k][col], IEEE semantics throughout
//     (a NaN/Inf operand poisons its whole row/column, even against zeros).
//
// Errors:
//   - ErrNilMatrix (an ErrInvalidOperand) when any matrix is nil.
//   - ErrNaNInf when dst validates NaN/Inf and the stored product would be
//     non-finite, including float32 overflow of a finite float64 sum.
//   - dst is unchanged on error.
//
// Complexity:
//   - Time O(64), Space O(1) (fixed buffers on the stack).
func MultiplyInto[D, A, B numeric.Float](dst *Matrix4x4[D], a *Matrix4x4[A], b *Matrix4x4[B]) error {
	if err := validateOperands(dst, a, b); err != nil {
		return mat4Errorf(opMultiply, err)
	}
	af, bf := a.Float64s(), b.Float64s()
	var out [Len]float64
	mul4(&out, &af, &bf)
	var narrow [Len]D
	for i, x := range out {
		narrow[i] = D(x)
	}
	if dst.validateNaNInf {
		if err := validateFinite(narrow[:]); err != nil {
			return mat4Errorf(opMultiply, err)
		}
	}
	dst.v = narrow

	return nil
}

// Multiply sets the receiver to a × b (standard row-major product).
// The receiver may alias a or b. Nil operands fail with ErrNilMatrix and
// leave the receiver unchanged.
func (m *Matrix4x4[T]) Multiply(a, b *Matrix4x4[T]) error {
	return MultiplyInto(m, a, b)
}

// Compose returns ms[0] × ms[1] × … × ms[n-1] as a new matrix.
// The result takes its precision from T and its numeric policy from ms[0];
// an empty chain yields the identity.
//
// Errors: ErrNilMatrix (with the offending position) for a nil element.
func Compose[T numeric.Float](ms ...*Matrix4x4[T]) (*Matrix4x4[T], error) {
	if len(ms) == 0 {
		return New[T](), nil
	}
	for i, m := range ms {
		if m == nil {
			return nil, mat4Errorf(opCompose, fmt.Errorf("[%d]: %w", i, ErrNilMatrix))
		}
	}
	acc := ms[0].Copy()
	for i := 1; i < len(ms); i++ {
		if err := acc.Multiply(acc, ms[i]); err != nil {
			return nil, mat4Errorf(opCompose, fmt.Errorf("[%d]: %w", i, err))
		}
	}

	return acc, nil
}

// Transpose replaces the receiver with its transpose, reading from a
// snapshot so overlapping source and destination cells stay consistent.
// Complexity: O(16).
func (m *Matrix4x4[T]) Transpose() {
	snap := m.v
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			m.v[i*Size+j] = snap[j*Size+i]
		}
	}
}

// MultiplyVec3 transforms the point v (implicit w=1) by the top three rows:
//
//	out[i] = M[i][0]*x + M[i][1]*y + M[i][2]*z + M[i][3],  i ∈ {0,1,2}
//
// The fourth row is ignored (no perspective divide). Returns a new vector of
// the receiver's precision; v is not modified.
//
// Errors: ErrNilVector (an ErrInvalidOperand) for a nil v.
func (m *Matrix4x4[T]) MultiplyVec3(v *vec3.Vector3[T]) (*vec3.Vector3[T], error) {
	if v == nil {
		return nil, mat4Errorf(opMultiplyVec3, ErrNilVector)
	}
	p := v.Float64s()
	var out [vec3.Size]T
	var base int
	for i := 0; i < vec3.Size; i++ {
		base = i * Size
		out[i] = T(float64(m.v[base])*p[0] +
			float64(m.v[base+1])*p[1] +
			float64(m.v[base+2])*p[2] +
			float64(m.v[base+3]))
	}

	return vec3.Of(out[0], out[1], out[2]), nil
}
