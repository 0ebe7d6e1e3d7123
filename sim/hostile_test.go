package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/geom"
)

type stubBounds struct {
	r geom.Rect
}

func (b stubBounds) PlayBounds() geom.Rect { return b.r }

func wanderHostile() *Entity {
	return &Entity{
		Kind: KindHostile,
		Pos:  cp.Vector{X: 100, Y: 100},
		W:    20,
		H:    20,
		Hostile: &Hostile{
			Name:         "grub",
			HP:           3,
			MaxHP:        3,
			AggroRange:   150,
			DeaggroRange: 250,
			IdleSpeed:    40,
			ChaseSpeed:   90,
			IdleInterval: 1.5,
		},
	}
}

func targetAt(x, y float64) *Entity {
	return &Entity{Kind: KindActor, Pos: cp.Vector{X: x, Y: y}, W: 20, H: 20, Actor: &Actor{HP: 5, MaxHP: 5}}
}

func TestHostileStateTransitions(t *testing.T) {
	downed := targetAt(200, 100)
	downed.Destroyed = true

	cases := []struct {
		name   string
		start  BehaviorState
		target *Entity
		want   BehaviorState
	}{
		{"idle_aggros_in_range", StateIdle, targetAt(200, 100), StateChase},
		{"idle_holds_out_of_range", StateIdle, targetAt(800, 100), StateIdle},
		{"chase_holds_inside_deaggro", StateChase, targetAt(300, 100), StateChase},
		{"chase_drops_beyond_deaggro", StateChase, targetAt(800, 100), StateIdle},
		{"no_target_forces_idle", StateChase, nil, StateIdle},
		{"destroyed_target_forces_idle", StateChase, downed, StateIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			b := stubBounds{geom.Rect{W: 2000, H: 2000}}
			e := wanderHostile()
			e.Hostile.State = c.start

			advanceHostile(e, c.target, 1.0/60, b, rng)
			if e.Hostile.State != c.want {
				t.Fatalf("expected %s, got %s", c.want, e.Hostile.State)
			}
		})
	}
}

func TestDamageLatchBuysChase(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := stubBounds{geom.Rect{W: 2000, H: 2000}}
	e := wanderHostile()
	target := targetAt(1000, 100) // far beyond deaggro

	e.ApplyDamage(1)
	if !e.Hostile.JustDamaged {
		t.Fatal("expected the damage latch set")
	}

	advanceHostile(e, target, 1.0/60, b, rng)
	if e.Hostile.State != StateChase {
		t.Fatalf("expected damage to force a chase, got %s", e.Hostile.State)
	}

	// the flip left the latch armed, so one deaggro evaluation holds
	advanceHostile(e, target, 1.0/60, b, rng)
	if e.Hostile.State != StateChase {
		t.Fatalf("expected the chase to survive one evaluation, got %s", e.Hostile.State)
	}

	// the latch is spent now and deaggro wins
	advanceHostile(e, target, 1.0/60, b, rng)
	if e.Hostile.State != StateIdle {
		t.Fatalf("expected the chase to drop once the latch is spent, got %s", e.Hostile.State)
	}
}

func TestLatchSpentOnSteadyEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := stubBounds{geom.Rect{W: 2000, H: 2000}}
	e := wanderHostile()
	e.Hostile.State = StateChase
	target := targetAt(200, 100) // inside deaggro

	e.ApplyDamage(1)
	advanceHostile(e, target, 1.0/60, b, rng)
	if e.Hostile.State != StateChase {
		t.Fatalf("expected the chase to hold, got %s", e.Hostile.State)
	}
	if e.Hostile.JustDamaged {
		t.Fatal("expected the latch consumed by a steady evaluation")
	}
}

func TestApplyDamage(t *testing.T) {
	t.Run("chips_health", func(t *testing.T) {
		e := wanderHostile()
		e.ApplyDamage(1)
		if e.Hostile.HP != 2 || e.Destroyed {
			t.Fatalf("expected 2 hp alive, got %d destroyed=%v", e.Hostile.HP, e.Destroyed)
		}
		if !e.Hostile.JustDamaged {
			t.Fatal("expected the latch set")
		}
	})
	t.Run("clamps_at_zero_and_destroys", func(t *testing.T) {
		e := wanderHostile()
		e.ApplyDamage(5)
		if e.Hostile.HP != 0 {
			t.Fatalf("expected hp clamped to 0, got %d", e.Hostile.HP)
		}
		if !e.Destroyed {
			t.Fatal("expected the entity destroyed at zero hp")
		}
	})
	t.Run("ignores_nonpositive", func(t *testing.T) {
		e := wanderHostile()
		e.ApplyDamage(0)
		e.ApplyDamage(-2)
		if e.Hostile.HP != 3 || e.Hostile.JustDamaged {
			t.Fatalf("expected nonpositive damage ignored, got %d hp latch=%v", e.Hostile.HP, e.Hostile.JustDamaged)
		}
	})
	t.Run("no_payload_noop", func(t *testing.T) {
		e := &Entity{Kind: KindProjectile}
		e.ApplyDamage(1)
		if e.Destroyed {
			t.Fatal("expected no effect on a payload-less entity")
		}
	})
}

func TestIdleWanderHeading(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := stubBounds{geom.Rect{W: 2000, H: 2000}}
	e := wanderHostile()

	advanceHostile(e, nil, 1.0/60, b, rng)
	h := e.Hostile
	if math.Abs(h.Heading.Length()-1) > 1e-9 {
		t.Fatalf("expected a unit heading, got %v", h.Heading)
	}
	if math.Abs(e.Vel.Length()-h.IdleSpeed) > 1e-9 {
		t.Fatalf("expected idle speed %v, got %v", h.IdleSpeed, e.Vel.Length())
	}
	if e.Facing != geom.Heading(e.Vel) {
		t.Fatalf("expected facing to follow velocity, got %v", e.Facing)
	}

	first := h.Heading
	advanceHostile(e, nil, 0.5, b, rng)
	if h.Heading != first {
		t.Fatal("expected the heading to hold inside the interval")
	}
	advanceHostile(e, nil, 2.0, b, rng)
	if h.Heading == first {
		t.Fatal("expected a heading re-roll after the interval")
	}
}

func TestHostileClampedToBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := stubBounds{geom.Rect{W: 130, H: 130}}
	e := wanderHostile()
	e.Hostile.State = StateChase
	target := targetAt(200, 100) // chase straight right, off the edge

	advanceHostile(e, target, 10, b, rng)
	if e.Pos.X != 110 {
		t.Fatalf("expected the hostile pinned at the edge, got %v", e.Pos.X)
	}
}
