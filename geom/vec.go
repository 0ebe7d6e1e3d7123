package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// FromAngle returns the unit vector pointing along angle, in radians.
func FromAngle(angle float64) cp.Vector {
	return cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Heading returns the angle of v in radians.
func Heading(v cp.Vector) float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns the unit vector of v. The zero vector stays zero
// instead of producing NaNs.
func Normalize(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// Dist returns the distance between two points.
func Dist(a, b cp.Vector) float64 {
	return a.Sub(b).Length()
}
