package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/palette"
)

// Kind tags what an entity is. Exactly one payload pointer matching the
// kind is non-nil; the rest stay nil.
type Kind uint8

const (
	KindActor Kind = iota + 1
	KindHostile
	KindProjectile
	KindInteractable
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindHostile:
		return "hostile"
	case KindProjectile:
		return "projectile"
	case KindInteractable:
		return "interactable"
	}
	return "unknown"
}

// Entity is one simulated thing: the actor, a hostile, a projectile in
// flight, or a static interactable. Projectiles carry no payload beyond
// the shared state.
type Entity struct {
	Kind      Kind
	Pos       cp.Vector // top-left corner
	Vel       cp.Vector // pixels per second
	W, H      float64
	Facing    float64 // radians
	Speed     float64 // pixels per second
	Color     palette.Color
	Destroyed bool

	Actor        *Actor
	Hostile      *Hostile
	Interactable *Interactable
}

// Rect returns the entity's collision box.
func (e *Entity) Rect() geom.Rect {
	return geom.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

// Center returns the midpoint of the entity's collision box.
func (e *Entity) Center() cp.Vector {
	return cp.Vector{X: e.Pos.X + e.W/2, Y: e.Pos.Y + e.H/2}
}

// Knockback displaces the entity instantaneously along dir. dir is
// normalized first, so callers can hand in raw penetration vectors.
func (e *Entity) Knockback(dir cp.Vector, force float64) {
	e.Pos = e.Pos.Add(geom.Normalize(dir).Mult(force))
}

// Interactable is the payload for doors and other click targets. Triggers
// must never mutate the world directly; they queue events the host reacts
// to after the tick.
type Interactable struct {
	Label   string
	Radius  float64 // max actor distance for activation
	Hovered bool

	Guard   func(GuardState) bool
	Refusal string
	Trigger func()
}

func advanceProjectile(e *Entity, dt float64, b Bounds) {
	e.Pos = e.Pos.Add(e.Vel.Mult(dt))
	r := e.Rect()
	pb := b.PlayBounds()
	if r.MaxX() < pb.X || r.X > pb.MaxX() || r.MaxY() < pb.Y || r.Y > pb.MaxY() {
		e.Destroyed = true
	}
}

// clampToBounds keeps the entity's whole box inside the play bounds.
func clampToBounds(e *Entity, pb geom.Rect) {
	e.Pos.X = cp.Clamp(e.Pos.X, pb.X, pb.MaxX()-e.W)
	e.Pos.Y = cp.Clamp(e.Pos.Y, pb.Y, pb.MaxY()-e.H)
}
