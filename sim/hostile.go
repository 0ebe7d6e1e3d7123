package sim

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/geom"
)

// BehaviorState is a hostile's current disposition.
type BehaviorState uint8

const (
	StateIdle BehaviorState = iota
	StateChase
)

func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChase:
		return "chase"
	}
	return "unknown"
}

// Hostile is the payload for AI-driven enemies. Tuning comes from the
// archetype that spawned it.
type Hostile struct {
	Name  string
	HP    int
	MaxHP int
	State BehaviorState

	AggroRange   float64
	DeaggroRange float64
	IdleSpeed    float64
	ChaseSpeed   float64
	IdleInterval float64 // seconds between heading re-rolls

	ContactDamage  int
	KnockbackForce float64
	Score          int

	Target  Handle
	Heading cp.Vector // current wander direction, unit length
	IdleFor float64   // idle time since the last re-roll

	// JustDamaged latches a hit until a full behavior evaluation has run
	// with it visible, so damage always buys at least one CHASE tick even
	// when the attacker is outside deaggro range.
	JustDamaged bool
}

// ApplyDamage subtracts hit points from a hostile, latches the hit for the
// behavior evaluation, and flags the entity destroyed at zero HP. HP never
// goes negative.
func (e *Entity) ApplyDamage(amount int) {
	h := e.Hostile
	if h == nil || amount <= 0 {
		return
	}
	h.HP -= amount
	if h.HP < 0 {
		h.HP = 0
	}
	h.JustDamaged = true
	if h.HP <= 0 {
		e.Destroyed = true
	}
}

// advanceHostile runs one behavior evaluation and integrates movement.
// target is the resolved chase target and may be nil.
//
// Transition rules:
//
//	IDLE  -> CHASE when distance < aggro range, or the damage latch is set
//	CHASE -> IDLE when distance > deaggro range and the latch is clear
//	no valid target forces IDLE regardless of the latch
//
// The latch is consumed only by an evaluation that starts and ends in the
// same state. The evaluation that flips a state leaves it armed, so the
// following deaggro check still sees it.
func advanceHostile(e *Entity, target *Entity, dt float64, b Bounds, rng *rand.Rand) {
	h := e.Hostile
	if h == nil {
		return
	}

	prev := h.State
	if target == nil || target.Destroyed {
		h.State = StateIdle
	} else {
		dist := geom.Dist(e.Center(), target.Center())
		switch h.State {
		case StateIdle:
			if dist < h.AggroRange || h.JustDamaged {
				h.State = StateChase
			}
		case StateChase:
			if dist > h.DeaggroRange && !h.JustDamaged {
				h.State = StateIdle
			}
		}
	}
	if prev == h.State {
		h.JustDamaged = false
	}

	switch h.State {
	case StateIdle:
		h.IdleFor += dt
		if h.Heading == (cp.Vector{}) || h.IdleFor >= h.IdleInterval {
			h.IdleFor = 0
			h.Heading = geom.FromAngle(rng.Float64() * 2 * math.Pi)
		}
		e.Vel = h.Heading.Mult(h.IdleSpeed)
	case StateChase:
		dir := geom.Normalize(target.Center().Sub(e.Center()))
		e.Vel = dir.Mult(h.ChaseSpeed)
	}
	if e.Vel.Length() > 0 {
		e.Facing = geom.Heading(e.Vel)
	}

	e.Pos = e.Pos.Add(e.Vel.Mult(dt))
	clampToBounds(e, b.PlayBounds())
}
