// SPDX-License-Identifier: MIT

// Package numeric defines the precision family shared by vec3 and mat4.
//
// What & Why:
//
//	Every matrix and vector instance stores its elements with one fixed
//	floating-point width. The width is chosen at compile time through the
//	Float type parameter; Precision is the runtime tag of that choice and is
//	what callers parse from configuration ("float" / "double").
//
// Complexity:
//
//	All helpers run in O(1) time and allocate nothing.
package numeric
