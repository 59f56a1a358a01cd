package las

import (
	"fmt"
	"math"
)

// DefaultScale is the millimetre resolution used when a header does not
// supply its own scale.
const DefaultScale = 0.001

// RoundingMode selects how InverseWithRounding turns a real-valued quotient
// into an integer.
type RoundingMode int

const (
	// RoundNearest rounds half away from zero. Inverse always uses it.
	RoundNearest RoundingMode = iota
	// RoundCeiling never undershoots the real value.
	RoundCeiling
	// RoundFloor never overshoots the real value.
	RoundFloor
)

func (r RoundingMode) String() string {
	switch r {
	case RoundNearest:
		return "nearest"
	case RoundCeiling:
		return "ceil"
	case RoundFloor:
		return "floor"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(r))
	}
}

func (r RoundingMode) apply(f float64) float64 {
	switch r {
	case RoundCeiling:
		return math.Ceil(f)
	case RoundFloor:
		return math.Floor(f)
	default:
		return math.Round(f)
	}
}

// Transform is a scale and an offset that maps a stored int32 coordinate to
// a real coordinate: scale * n + offset.
//
// A zero scale is not rejected here. Inverse then divides by zero and the
// result always fails the int32 range check; use Validate where a transform
// is built from untrusted input.
type Transform struct {
	Scale  float64 `json:"scale"`
	Offset float64 `json:"offset"`
}

// DefaultTransform returns the millimetre transform with no offset.
func DefaultTransform() Transform {
	return Transform{Scale: DefaultScale, Offset: 0}
}

// Direct applies the transform to a stored integer.
func (t Transform) Direct(n int32) float64 {
	return t.Scale*float64(n) + t.Offset
}

// Inverse maps a real coordinate back to the nearest stored integer.
// It returns an *InvalidInverseTransformError if the rounded value does not
// fit in an int32.
func (t Transform) Inverse(v float64) (int32, error) {
	return t.InverseWithRounding(v, RoundNearest)
}

// InverseWithRounding is Inverse with an explicit rounding mode. Bounding
// box writers use RoundFloor for minima and RoundCeiling for maxima so the
// stored box always contains the real extents.
func (t Transform) InverseWithRounding(v float64, mode RoundingMode) (int32, error) {
	n := mode.apply((v - t.Offset) / t.Scale)
	// Written so that NaN fails the check too.
	if !(n >= math.MinInt32 && n <= math.MaxInt32) {
		return 0, &InvalidInverseTransformError{ComputedValue: n, Transform: t}
	}
	return int32(n), nil
}

// Validate reports whether the transform can be inverted: the scale must be
// finite and non-zero, and the offset finite.
func (t Transform) Validate() error {
	if t.Scale == 0 || math.IsNaN(t.Scale) || math.IsInf(t.Scale, 0) {
		return fmt.Errorf("scale must be finite and non-zero, got %v", t.Scale)
	}
	if math.IsNaN(t.Offset) || math.IsInf(t.Offset, 0) {
		return fmt.Errorf("offset must be finite, got %v", t.Offset)
	}
	return nil
}

// String renders the affine formula for diagnostics.
func (t Transform) String() string {
	return fmt.Sprintf("`%v * x + %v`", t.Scale, t.Offset)
}
