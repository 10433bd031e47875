package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Tolerance is the single geometric tolerance, in model length units (mm).
// Every quantization, dedup, parallelism and overlap check in the engine
// goes through this one constant. Two coordinates closer than this are the
// same point.
const Tolerance = 1e-6

// quantScale converts a coordinate into quantized integer space
// (6 decimal places, the inverse of Tolerance).
const quantScale = 1e6

// Quantize snaps a coordinate to the shared tolerance grid.
func Quantize(v float64) int64 {
	return int64(math.Round(v * quantScale))
}

// EqualScalar reports whether two scalars are within Tolerance.
func EqualScalar(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// EqualPoint reports whether two plan points are within Tolerance.
func EqualPoint(a, b v2.Vec) bool {
	return a.Sub(b).Length() < Tolerance
}

// Cross2 returns the z component of the 2D cross product a × b.
func Cross2(a, b v2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// MinMax orders a pair of scalars ascending.
func MinMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// Clamp01 clamps t into the parametric range [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// DistPointSegment returns the distance from p to the segment a-b.
func DistPointSegment(p, a, b v2.Vec) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := Clamp01(p.Sub(a).Dot(d) / l2)
	closest := a.Add(d.MulScalar(t))
	return p.Sub(closest).Length()
}
