// SPDX-License-Identifier: MIT

// Package vec3 provides Vector3, the 3-component point type consumed by
// mat4 point transforms.
//
// Components are indexed 0..2 (x, y, z) and stored with the width chosen by
// the type parameter. Vectors are plain values behind a pointer: no locking,
// callers own synchronisation.
package vec3
