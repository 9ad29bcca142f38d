// SPDX-License-Identifier: MIT
// Package mat4_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures (sequential and random matrices).
//   - Keep all data finite to avoid numeric-policy interference.

package mat4_test

import (
	"math/rand"
	"testing"

	"github.com/bik20/WebViewer/mat4"
	"github.com/bik20/WebViewer/numeric"
	"github.com/stretchr/testify/require"
)

// seq16 returns 1..16 in row-major order.
func seq16[T numeric.Float]() []T {
	out := make([]T, mat4.Len)
	for i := range out {
		out[i] = T(i + 1)
	}

	return out
}

// MustFilled builds a matrix from 16 row-major values or fails the test.
func MustFilled[T numeric.Float](t testing.TB, vals []T) *mat4.Matrix4x4[T] {
	t.Helper()
	m := mat4.New[T]()
	require.NoError(t, m.Set(vals))

	return m
}

// RandomMatrix fills a float64 matrix with deterministic U(-1,1) values by seed.
func RandomMatrix(t testing.TB, seed int64) *mat4.Matrix4x4[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, mat4.Len)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustFilled(t, vals)
}

// MustConvert converts m to width D or fails the test.
func MustConvert[D, S numeric.Float](t testing.TB, m *mat4.Matrix4x4[S]) *mat4.Matrix4x4[D] {
	t.Helper()
	out, err := mat4.Convert[D](m)
	require.NoError(t, err)

	return out
}

// identityValues is I₄ in row-major order.
var identityValues = [mat4.Len]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}
