package sim

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/zeebo/xxh3"

	"github.com/milk9111/topdown/geom"
)

// placementAttempts caps rejection sampling per placement. Placement is
// best effort: when every attempt violates a constraint the last candidate
// is returned anyway rather than failing the spawn.
const placementAttempts = 32

// RoomSeed derives the deterministic seed for a room's layout from the
// room name and the run seed. The same pair always lays the room out the
// same way.
func RoomSeed(name string, worldSeed uint64) uint64 {
	return xxh3.HashString(name) ^ worldSeed
}

// Constraint accepts or rejects one placement candidate.
type Constraint func(geom.Rect) bool

// MinDistance rejects candidates whose center lies within min of from.
func MinDistance(from cp.Vector, min float64) Constraint {
	return func(r geom.Rect) bool {
		return geom.Dist(r.Center(), from) >= min
	}
}

// AvoidRects rejects candidates that come within pad of any rect.
func AvoidRects(rects []geom.Rect, pad float64) Constraint {
	return func(r geom.Rect) bool {
		grown := r.Inset(-pad)
		for _, o := range rects {
			if geom.Overlaps(grown, o) {
				return false
			}
		}
		return true
	}
}

// Placer draws constrained random rects inside a room's bounds.
type Placer struct {
	bounds geom.Rect
	margin float64
	rng    *rand.Rand
}

// NewPlacer returns a placer that keeps candidates at least margin inside
// bounds on every side.
func NewPlacer(bounds geom.Rect, margin float64, rng *rand.Rand) *Placer {
	return &Placer{bounds: bounds, margin: margin, rng: rng}
}

// Place draws a w by h rect satisfying every constraint, retrying up to
// the attempt cap and then returning the final candidate regardless.
func (p *Placer) Place(w, h float64, constraints ...Constraint) geom.Rect {
	usable := p.bounds.Inset(p.margin)
	spanX := usable.W - w
	spanY := usable.H - h
	if spanX < 0 {
		spanX = 0
	}
	if spanY < 0 {
		spanY = 0
	}

	var candidate geom.Rect
	for attempt := 0; attempt < placementAttempts; attempt++ {
		candidate = geom.Rect{
			X: usable.X + p.rng.Float64()*spanX,
			Y: usable.Y + p.rng.Float64()*spanY,
			W: w,
			H: h,
		}
		ok := true
		for _, c := range constraints {
			if !c(candidate) {
				ok = false
				break
			}
		}
		if ok {
			return candidate
		}
	}
	return candidate
}
