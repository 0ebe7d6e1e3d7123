package geom

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) MaxX() float64 {
	return r.X + r.W
}

func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Center returns the rect's center point.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CenteredAt returns a w by h rect whose center sits at pt.
func CenteredAt(pt cp.Vector, w, h float64) Rect {
	return Rect{X: pt.X - w/2, Y: pt.Y - h/2, W: w, H: h}
}

// Contains reports whether pt lies inside r, edges included.
func (r Rect) Contains(pt cp.Vector) bool {
	return pt.X >= r.X && pt.X <= r.MaxX() && pt.Y >= r.Y && pt.Y <= r.MaxY()
}

// Inset shrinks r by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}
