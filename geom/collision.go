package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Overlaps reports whether a and b overlap with nonzero area. Rectangles
// that merely touch along an edge or corner do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.MaxX() && a.MaxX() > b.X &&
		a.Y < b.MaxY() && a.MaxY() > b.Y
}

// OverlapDepth returns the per-axis penetration between a and b, each
// component signed by the direction from a's center to b's center. Callers
// use it to pick a knockback direction, not for positional correction.
func OverlapDepth(a, b Rect) cp.Vector {
	ac := a.Center()
	bc := b.Center()
	return cp.Vector{
		X: math.Copysign((a.W+b.W)/2-math.Abs(bc.X-ac.X), bc.X-ac.X),
		Y: math.Copysign((a.H+b.H)/2-math.Abs(bc.Y-ac.Y), bc.Y-ac.Y),
	}
}

// ResolveAgainstObstacle pushes e out of o along the axis of minimum
// penetration, leaving the other axis untouched so movement along the
// obstacle face slides instead of sticking. Ties go to the X axis.
// Returns true when a correction was applied.
func ResolveAgainstObstacle(e *Rect, o Rect) bool {
	if e == nil || !Overlaps(*e, o) {
		return false
	}

	dx := o.MaxX() - e.X // push right
	if left := e.MaxX() - o.X; left < dx {
		dx = -left
	}
	dy := o.MaxY() - e.Y // push down
	if up := e.MaxY() - o.Y; up < dy {
		dy = -up
	}

	if math.Abs(dx) <= math.Abs(dy) {
		e.X += dx
	} else {
		e.Y += dy
	}
	return true
}
