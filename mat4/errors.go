// SPDX-License-Identifier: MIT
// Package mat4: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations return these
// sentinels (optionally wrapped with an operation tag) and tests match them via
// errors.Is. No operation panics on a user-triggered error condition.

package mat4

import (
	"errors"
	"fmt"
)

// Two error families exist:
//   - ErrInvalidArgument: a value handed in has the wrong shape or content
//     (length, index, NaN/Inf). The receiver is left untouched.
//   - ErrInvalidOperand: a required matrix or vector operand is missing.
//
// Every specific sentinel below wraps exactly one family, so callers may match
// either the family or the specific condition.

var (
	// ErrInvalidArgument is the family of locally recoverable validation failures.
	ErrInvalidArgument = errors.New("mat4: invalid argument")

	// ErrInvalidOperand is the family of missing-operand failures (nil matrix/vector).
	ErrInvalidOperand = errors.New("mat4: invalid operand")
)

var (
	// ErrBadLength is returned by Set when the source does not hold exactly 16 values.
	ErrBadLength = fmt.Errorf("%w: need exactly 16 elements", ErrInvalidArgument)

	// ErrBadVectorLength is returned by Translation/Scale for inputs other than 3 or 4 components.
	ErrBadVectorLength = fmt.Errorf("%w: need 3 or 4 components", ErrInvalidArgument)

	// ErrOutOfRange indicates a row or column index outside [0,4).
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *Matrix4x4 operand was passed.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidOperand)

	// ErrNilVector indicates that a nil *vec3.Vector3 operand was passed.
	ErrNilVector = fmt.Errorf("%w: nil vector", ErrInvalidOperand)
)

// Operation tags used by mat4Errorf; keep in sync with method names.
const (
	opSet          = "Set"
	opSetAt        = "SetAt"
	opAt           = "At"
	opRow          = "Row"
	opCol          = "Col"
	opTranslation  = "Translation"
	opScale        = "Scale"
	opMultiply     = "Multiply"
	opMultiplyVec3 = "MultiplyVec3"
	opCompose      = "Compose"
	opConvert      = "Convert"
	opNewPrecision = "NewWithPrecision"
)

// mat4Errorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func mat4Errorf(tag string, err error) error {
	return fmt.Errorf("Matrix4x4.%s: %w", tag, err)
}
