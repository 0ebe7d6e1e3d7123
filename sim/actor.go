package sim

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/palette"
)

// focusFactor slows movement while the focus key is held, for threading
// gaps between obstacles under fire.
const focusFactor = 0.45

// Actor is the player-controlled entity's payload.
type Actor struct {
	HP    int
	MaxHP int

	Invuln       float64 // seconds left in the post-hit window
	InvulnWindow float64 // window length applied on each hit

	FireCooldown float64 // seconds until the next shot
}

// TakeDamage applies damage unless the invulnerability window is still
// open. On a hit it clamps HP at zero and reopens the window. Returns true
// when damage was actually applied.
func (a *Actor) TakeDamage(amount int) bool {
	if a == nil || amount <= 0 || a.Invuln > 0 {
		return false
	}
	a.HP -= amount
	if a.HP < 0 {
		a.HP = 0
	}
	a.Invuln = a.InvulnWindow
	return true
}

func (w *World) updateActor(e *Entity, in InputSource, dt float64, shoot bool) {
	a := e.Actor
	if a == nil {
		return
	}

	speed := e.Speed
	if in.KeyDown("focus") {
		speed *= focusFactor
	}
	e.Vel = in.Move().Mult(speed)
	e.Pos = e.Pos.Add(e.Vel.Mult(dt))
	clampToBounds(e, w.PlayBounds())

	// aim follows the pointer even while standing still
	aim := in.Pointer().Sub(e.Center())
	if aim.Length() > 0 {
		e.Facing = geom.Heading(aim)
	}

	if a.Invuln > 0 {
		a.Invuln -= dt
		if a.Invuln < 0 {
			a.Invuln = 0
		}
	}
	if a.FireCooldown > 0 {
		a.FireCooldown -= dt
		if a.FireCooldown < 0 {
			a.FireCooldown = 0
		}
	}

	if shoot && a.FireCooldown <= 0 {
		w.fireProjectile(e)
		a.FireCooldown = w.cfg.Weapon.FireRate
	}
}

// fireProjectile stages a projectile at the actor's muzzle. It joins the
// live set next tick, so a shot never moves or collides on the tick it
// was fired.
func (w *World) fireProjectile(actor *Entity) {
	size := w.cfg.Weapon.ProjectileSize
	dir := geom.FromAngle(actor.Facing)
	gap := actor.W/2 + size
	muzzle := geom.CenteredAt(actor.Center().Add(dir.Mult(gap)), size, size)

	w.arena.Insert(Entity{
		Kind:   KindProjectile,
		Pos:    cp.Vector{X: muzzle.X, Y: muzzle.Y},
		Vel:    dir.Mult(w.cfg.Weapon.ProjectileSpeed),
		W:      size,
		H:      size,
		Facing: actor.Facing,
		Speed:  w.cfg.Weapon.ProjectileSpeed,
		Color:  palette.Brass,
	})
	w.log.Debug("projectile fired", zap.Float64("facing", actor.Facing))
}
