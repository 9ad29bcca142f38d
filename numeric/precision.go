// SPDX-License-Identifier: MIT

// Package numeric - precision tag & generic element constraint.
//
// Purpose:
//   - Provide one constraint (Float) for element storage across packages.
//   - Map type parameters to a runtime Precision tag and back from strings.
//
// Notes:
//   - Named types with underlying float32/float64 are part of the family;
//     PrecisionOf inspects the kind, not the exact type.

package numeric

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

// Float is the element constraint for vectors and matrices: any type whose
// underlying type is float32 or float64.
type Float interface {
	constraints.Float
}

// Precision tags the storage width of one instance.
type Precision uint8

// Supported precisions. Unknown is the zero value and is never produced by
// a successful parse.
const (
	Unknown Precision = iota
	Float32           // 32-bit storage, tag "float"
	Float64           // 64-bit storage, tag "double"
)

// Canonical tags; the first entry of each family is what String returns.
const (
	tagFloat  = "float"
	tagDouble = "double"
)

// precisionByTag resolves every accepted spelling (lower-case, trimmed).
var precisionByTag = map[string]Precision{
	tagFloat:  Float32,
	"float32": Float32,
	"single":  Float32,
	tagDouble: Float64,
	"float64": Float64,
}

// String returns "float", "double" or "unknown".
func (p Precision) String() string {
	switch p {
	case Float32:
		return tagFloat
	case Float64:
		return tagDouble
	default:
		return "unknown"
	}
}

// Valid reports whether p names a supported width.
func (p Precision) Valid() bool { return p == Float32 || p == Float64 }

// Bits returns the storage width in bits (0 for Unknown).
func (p Precision) Bits() int {
	switch p {
	case Float32:
		return 32
	case Float64:
		return 64
	default:
		return 0
	}
}

// ParsePrecision resolves a runtime precision selector.
//
// Accepted (case-insensitive, blanks trimmed): "float", "float32", "single",
// "double", "float64". Anything else fails with ErrUnknownPrecision; the
// caller never gets a silent default width.
//
// Complexity: O(len(s)).
func ParsePrecision(s string) (Precision, error) {
	p, ok := precisionByTag[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Unknown, fmt.Errorf("ParsePrecision(%q): %w", s, ErrUnknownPrecision)
	}

	return p, nil
}

// PrecisionOf returns the tag matching the type parameter T.
func PrecisionOf[T Float]() Precision {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		return Float32
	}

	return Float64
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
