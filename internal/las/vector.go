package las

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector holds one transform per axis, as stored in a LAS header.
type Vector struct {
	X Transform `json:"x"`
	Y Transform `json:"y"`
	Z Transform `json:"z"`
}

// DefaultVector returns the default transform on every axis.
func DefaultVector() Vector {
	return Vector{X: DefaultTransform(), Y: DefaultTransform(), Z: DefaultTransform()}
}

// DirectXYZ converts stored integer coordinates to a real point.
func (v Vector) DirectXYZ(x, y, z int32) r3.Vec {
	return r3.Vec{X: v.X.Direct(x), Y: v.Y.Direct(y), Z: v.Z.Direct(z)}
}

// InverseXYZ converts a real point to stored integer coordinates. The error
// from the first axis that fails is returned.
func (v Vector) InverseXYZ(p r3.Vec) (x, y, z int32, err error) {
	return v.inverseXYZ(p, RoundNearest)
}

func (v Vector) inverseXYZ(p r3.Vec, mode RoundingMode) (x, y, z int32, err error) {
	if x, err = v.X.InverseWithRounding(p.X, mode); err != nil {
		return 0, 0, 0, fmt.Errorf("x: %w", err)
	}
	if y, err = v.Y.InverseWithRounding(p.Y, mode); err != nil {
		return 0, 0, 0, fmt.Errorf("y: %w", err)
	}
	if z, err = v.Z.InverseWithRounding(p.Z, mode); err != nil {
		return 0, 0, 0, fmt.Errorf("z: %w", err)
	}
	return x, y, z, nil
}

// Validate checks every axis.
func (v Vector) Validate() error {
	for _, a := range []struct {
		name string
		t    Transform
	}{{"x", v.X}, {"y", v.Y}, {"z", v.Z}} {
		if err := a.t.Validate(); err != nil {
			return fmt.Errorf("%s: %w", a.name, err)
		}
	}
	return nil
}

// Bounds is an axis-aligned box in real coordinates.
type Bounds struct {
	Min r3.Vec
	Max r3.Vec
}

// EmptyBounds returns an inverted box that the first Grow replaces.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// Grow extends the box to contain p.
func (b *Bounds) Grow(p r3.Vec) {
	b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
}

// Adapt snaps the box onto the integer grid of v. Minima are floored and
// maxima ceiled, so for positive scales the result always contains the
// original box.
func (b Bounds) Adapt(v Vector) (Bounds, error) {
	minX, minY, minZ, err := v.inverseXYZ(b.Min, RoundFloor)
	if err != nil {
		return Bounds{}, fmt.Errorf("min %w", err)
	}
	maxX, maxY, maxZ, err := v.inverseXYZ(b.Max, RoundCeiling)
	if err != nil {
		return Bounds{}, fmt.Errorf("max %w", err)
	}
	return Bounds{
		Min: v.DirectXYZ(minX, minY, minZ),
		Max: v.DirectXYZ(maxX, maxY, maxZ),
	}, nil
}
