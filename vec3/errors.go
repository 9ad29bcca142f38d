// SPDX-License-Identifier: MIT
// Package vec3: sentinel error set. All messages carry the "vec3:" prefix;
// callers match with errors.Is.

package vec3

import "errors"

var (
	// ErrBadLength is returned when a source slice does not hold exactly 3 values.
	ErrBadLength = errors.New("vec3: need exactly 3 components")

	// ErrOutOfRange indicates a component index outside [0,3).
	ErrOutOfRange = errors.New("vec3: index out of range")
)
