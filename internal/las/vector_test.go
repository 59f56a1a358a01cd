package las

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/lasfield/internal/testutil"
)

func assertVecInDelta(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-9, "z")
}

func TestVector_DirectXYZ(t *testing.T) {
	v := DefaultVector()
	assertVecInDelta(t, r3.Vec{X: 1, Y: 2, Z: -3}, v.DirectXYZ(1000, 2000, -3000))

	v.Z = Transform{Scale: 0.01, Offset: 100}
	assertVecInDelta(t, r3.Vec{X: 0, Y: 0, Z: 101}, v.DirectXYZ(0, 0, 100))
}

func TestVector_InverseXYZ(t *testing.T) {
	v := Vector{
		X: Transform{Scale: 0.001, Offset: 500000},
		Y: Transform{Scale: 0.001, Offset: 4000000},
		Z: Transform{Scale: 0.01, Offset: 0},
	}
	x, y, z, err := v.InverseXYZ(v.DirectXYZ(123456, -654321, 42))
	testutil.AssertNoError(t, err)
	assert.Equal(t, []int32{123456, -654321, 42}, []int32{x, y, z})
}

func TestVector_InverseXYZ_ReportsAxis(t *testing.T) {
	v := DefaultVector()
	_, _, _, err := v.InverseXYZ(r3.Vec{X: 1, Y: 1e9, Z: 1})
	testutil.AssertErrorIs(t, err, ErrInvalidInverseTransform)
	assert.True(t, strings.HasPrefix(err.Error(), "y: "), err.Error())

	var inv *InvalidInverseTransformError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, v.Y, inv.Transform)
}

func TestVector_Validate(t *testing.T) {
	assert.NoError(t, DefaultVector().Validate())

	v := DefaultVector()
	v.Z.Scale = 0
	err := v.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "z: ")
}

func TestBounds_Grow(t *testing.T) {
	b := EmptyBounds()
	b.Grow(r3.Vec{X: 1, Y: -2, Z: 3})
	assert.Equal(t, Bounds{Min: r3.Vec{X: 1, Y: -2, Z: 3}, Max: r3.Vec{X: 1, Y: -2, Z: 3}}, b)

	b.Grow(r3.Vec{X: -1, Y: 5, Z: 3})
	assert.Equal(t, Bounds{Min: r3.Vec{X: -1, Y: -2, Z: 3}, Max: r3.Vec{X: 1, Y: 5, Z: 3}}, b)
}

func TestBounds_Adapt(t *testing.T) {
	half := Transform{Scale: 0.5}
	v := Vector{X: half, Y: half, Z: half}
	b := Bounds{
		Min: r3.Vec{X: 0.3, Y: -0.3, Z: 1.2},
		Max: r3.Vec{X: 1.1, Y: 0.7, Z: 1.2},
	}

	got, err := b.Adapt(v)
	require.NoError(t, err)
	assert.Equal(t, Bounds{
		Min: r3.Vec{X: 0, Y: -0.5, Z: 1},
		Max: r3.Vec{X: 1.5, Y: 1, Z: 1.5},
	}, got)
}

func TestBounds_AdaptContainsInput(t *testing.T) {
	v := DefaultVector()
	b := EmptyBounds()
	for _, p := range []r3.Vec{
		{X: 0.00049, Y: -12.3456789, Z: 7.77777},
		{X: 1234.56789, Y: 0.0001, Z: -0.0009},
		{X: -0.0004, Y: 3.14159265, Z: 2.71828},
	} {
		b.Grow(p)
	}

	got, err := b.Adapt(v)
	require.NoError(t, err)
	assert.LessOrEqual(t, got.Min.X, b.Min.X)
	assert.LessOrEqual(t, got.Min.Y, b.Min.Y)
	assert.LessOrEqual(t, got.Min.Z, b.Min.Z)
	assert.GreaterOrEqual(t, got.Max.X, b.Max.X)
	assert.GreaterOrEqual(t, got.Max.Y, b.Max.Y)
	assert.GreaterOrEqual(t, got.Max.Z, b.Max.Z)
}

func TestBounds_AdaptEmpty(t *testing.T) {
	_, err := EmptyBounds().Adapt(DefaultVector())
	testutil.AssertErrorIs(t, err, ErrInvalidInverseTransform)
	assert.True(t, strings.HasPrefix(err.Error(), "min x: "), err.Error())

	b := Bounds{Max: r3.Vec{X: math.MaxInt32}}
	_, err = b.Adapt(DefaultVector())
	testutil.AssertErrorIs(t, err, ErrInvalidInverseTransform)
	assert.True(t, strings.HasPrefix(err.Error(), "max x: "), err.Error())
}
