// Package webviewer holds the numeric primitives of the WebViewer globe
// renderer: precision-tagged 3D points and 4×4 transform matrices.
//
// What is inside?
//
//	A small set of packages that scene code uses to place objects: build a
//	transform, compose transforms, move points.
//		• numeric/: precision family (float / double), Float constraint, parsing
//		• vec3/   : Vector3, the 3-component point
//		• mat4/   : Matrix4x4, row-major 4×4 transforms (identity, translation,
//		             scale, axis rotations, product, transpose, point transform)
//
// Guarantees:
//
//   - Errors, not panics: bad lengths, indices, nil operands and NaN/Inf
//     input are reported with sentinel errors (errors.Is).
//   - Precision is fixed per value by a type parameter; runtime selection
//     goes through numeric.ParsePrecision and never falls back silently.
//   - No hidden state, no locks: one owner per value, or copy-then-mutate.
//
// Quick example (rotate a point a quarter turn about Z):
//
//	m := mat4.New[float64]()
//	m.RotationZ(math.Pi / 2)
//	p, _ := m.MultiplyVec3(vec3.Of(1.0, 0, 0)) // ≈ (0, 1, 0)
//
// Out of scope: projection/camera, inversion, decompositions, any I/O.
package webviewer
