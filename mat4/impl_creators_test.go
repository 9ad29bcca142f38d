// SPDX-License-Identifier: MIT
// Package mat4_test contains unit tests for the overwrite creators.
package mat4_test

import (
	"math"
	"testing"

	"github.com/bik20/WebViewer/mat4"
	"github.com/stretchr/testify/require"
)

func TestSet_CopiesInOrder(t *testing.T) {
	m := mat4.New[float64]()
	require.NoError(t, m.Set(seq16[float64]()))
	for r := 0; r < mat4.Size; r++ {
		for c := 0; c < mat4.Size; c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, float64(4*r+c+1), v)
		}
	}
}

// TestSet_BadLength verifies 15/17-element input fails without mutation.
func TestSet_BadLength(t *testing.T) {
	m := MustFilled(t, seq16[float32]())
	before := m.Copy()

	for _, n := range []int{0, 15, 17} {
		err := m.Set(make([]float32, n))
		require.ErrorIs(t, err, mat4.ErrBadLength, "len=%d", n)
		require.ErrorIs(t, err, mat4.ErrInvalidArgument)
		require.True(t, m.Equal(before), "len=%d mutated receiver", n)
	}
	require.ErrorIs(t, m.Set(nil), mat4.ErrBadLength)
}

func TestSet_NaNInfAllOrNothing(t *testing.T) {
	m := mat4.New[float64]()
	src := seq16[float64]()
	src[15] = math.NaN()
	require.ErrorIs(t, m.Set(src), mat4.ErrNaNInf)
	require.Equal(t, identityValues, m.Values())

	loose := mat4.New[float64](mat4.WithNoValidateNaNInf())
	require.NoError(t, loose.Set(src))
}

func TestIdentityZero_Overwrite(t *testing.T) {
	m := MustFilled(t, seq16[float64]())
	m.Identity()
	require.Equal(t, identityValues, m.Values())

	m.Zero()
	require.Equal(t, [mat4.Len]float64{}, m.Values())
}

func TestTranslation_Layout(t *testing.T) {
	m := MustFilled(t, seq16[float64]()) // overwritten, not accumulated
	require.NoError(t, m.Translation([]float64{1, 2, 3}))
	require.Equal(t, [mat4.Len]float64{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	}, m.Values())

	require.NoError(t, m.Translation([]float64{4, 5, 6, 2}))
	require.Equal(t, [mat4.Len]float64{
		1, 0, 0, 4,
		0, 1, 0, 5,
		0, 0, 1, 6,
		0, 0, 0, 2,
	}, m.Values())
}

func TestScale_Layout(t *testing.T) {
	m := mat4.New[float32]()
	require.NoError(t, m.Scale([]float32{2, 3, 4}))
	require.Equal(t, [mat4.Len]float32{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 1,
	}, m.Values())

	require.NoError(t, m.Scale([]float32{1, 1, 1, 5}))
	v, _ := m.At(3, 3)
	require.Equal(t, float32(5), v)
}

// TestTranslationScale_BadLength covers every length outside {3,4}.
func TestTranslationScale_BadLength(t *testing.T) {
	m := MustFilled(t, seq16[float64]())
	before := m.Copy()

	for _, n := range []int{0, 1, 2, 5, 16} {
		in := make([]float64, n)
		require.ErrorIs(t, m.Translation(in), mat4.ErrBadVectorLength, "Translation len=%d", n)
		require.ErrorIs(t, m.Scale(in), mat4.ErrBadVectorLength, "Scale len=%d", n)
		require.True(t, m.Equal(before))
	}
	require.ErrorIs(t, m.Translation(nil), mat4.ErrInvalidArgument)
}

func TestTranslationScale_NaNInf(t *testing.T) {
	m := mat4.New[float64]()
	require.ErrorIs(t, m.Translation([]float64{1, math.Inf(1), 3}), mat4.ErrNaNInf)
	require.ErrorIs(t, m.Scale([]float64{1, 2, 3, math.NaN()}), mat4.ErrNaNInf)
	require.Equal(t, identityValues, m.Values())
}

// TestRotation_ZeroIsIdentity checks RotationX/Y/Z(0) == I₄.
func TestRotation_ZeroIsIdentity(t *testing.T) {
	m := MustFilled(t, seq16[float64]())
	for _, rot := range []func(float64){m.RotationX, m.RotationY, m.RotationZ} {
		rot(0)
		require.True(t, m.Equal(mat4.New[float64]()))
	}
}

func TestRotation_SignLayout(t *testing.T) {
	const a = 0.3
	s, c := math.Sin(a), math.Cos(a)
	cases := []struct {
		name string
		rot  func(*mat4.Matrix4x4[float64], float64)
		want [mat4.Len]float64
	}{
		{"X", (*mat4.Matrix4x4[float64]).RotationX, [mat4.Len]float64{
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1,
		}},
		{"Y", (*mat4.Matrix4x4[float64]).RotationY, [mat4.Len]float64{
			c, 0, s, 0,
			0, 1, 0, 0,
			-s, 0, c, 0,
			0, 0, 0, 1,
		}},
		{"Z", (*mat4.Matrix4x4[float64]).RotationZ, [mat4.Len]float64{
			c, -s, 0, 0,
			s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mat4.New[float64]()
			tc.rot(m, a)
			got := m.Values()
			for i := range got {
				require.InDelta(t, tc.want[i], got[i], 1e-15, "index %d", i)
			}
		})
	}
}

// TestRotation_AnyAngle ensures multi-turn and negative angles are used as is.
func TestRotation_AnyAngle(t *testing.T) {
	a := mat4.New[float64]()
	b := mat4.New[float64]()
	a.RotationY(0.7)
	b.RotationY(0.7 + 6*math.Pi)
	require.True(t, a.ApproxEqual(b))

	b.RotationY(-0.7)
	b.Transpose() // R(-θ) = R(θ)ᵀ
	require.True(t, a.ApproxEqual(b))
}

func TestRotation_Float32(t *testing.T) {
	m := mat4.New[float32]()
	m.RotationZ(math.Pi / 6)
	v, _ := m.At(1, 0)
	require.Equal(t, float32(math.Sin(math.Pi/6)), v)
}
