// SPDX-License-Identifier: MIT

// Package mat4 provides Matrix4x4, a dense row-major 4×4 matrix for 3D
// graphics transformations.
//
// The package provides:
//
//   - Creators that overwrite the receiver: Identity, Zero, Translation,
//     Scale, RotationX, RotationY, RotationZ.
//   - Algebra: Multiply (aliasing-safe), MultiplyInto (mixed precision),
//     Compose, Transpose, MultiplyVec3 (affine point transform).
//   - Safe accessors (At/SetAt/Row/Col) returning sentinel errors, never panicking.
//
// Element (row, col) lives at index 4*row + col. Storage width is selected by
// the type parameter (float32 or float64) and is never changed by an
// operation; NewWithPrecision covers runtime selection ("float"/"double").
//
// Matrices carry no lock. Mutating methods need exclusive access; share
// across goroutines by Copy-then-mutate.
//
// See example_test.go for a model-transform pipeline.
package mat4
