package prefabs

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/palette"
	"github.com/milk9111/topdown/sim"
)

// GuardCompiler turns a door guard expression into a closure over run
// state. The game wires this to the script package; tools that only need
// layout pass nil and get unguarded doors.
type GuardCompiler func(expr string) (func(sim.GuardState) bool, error)

// BuildTuning converts the tuning spec into the world's construction
// values.
func BuildTuning(spec *TuningSpec) (sim.ActorTuning, sim.WeaponTuning, error) {
	var actor sim.ActorTuning
	var weapon sim.WeaponTuning

	a := spec.Actor
	if a.Width <= 0 || a.Height <= 0 {
		return actor, weapon, fmt.Errorf("prefabs: actor size %vx%v is not positive", a.Width, a.Height)
	}
	if a.Health <= 0 {
		return actor, weapon, fmt.Errorf("prefabs: actor health %d is not positive", a.Health)
	}
	wp := spec.Weapon
	if wp.ProjectileSize <= 0 || wp.ProjectileSpeed <= 0 {
		return actor, weapon, fmt.Errorf("prefabs: weapon projectile tuning is not positive")
	}
	if wp.Damage <= 0 {
		return actor, weapon, fmt.Errorf("prefabs: weapon damage %d is not positive", wp.Damage)
	}

	actor = sim.ActorTuning{
		W:            a.Width,
		H:            a.Height,
		MoveSpeed:    a.MoveSpeed,
		MaxHP:        a.Health,
		InvulnWindow: a.InvulnSeconds,
	}
	weapon = sim.WeaponTuning{
		FireRate:        wp.FireRate,
		ProjectileSpeed: wp.ProjectileSpeed,
		ProjectileSize:  wp.ProjectileSize,
		Damage:          wp.Damage,
	}
	return actor, weapon, nil
}

// BuildArchetypes indexes hostile specs by name and resolves their palette
// tags.
func BuildArchetypes(spec *HostilesSpec) (map[string]sim.HostileArchetype, error) {
	out := make(map[string]sim.HostileArchetype, len(spec.Hostiles))
	for _, h := range spec.Hostiles {
		if h.Name == "" {
			return nil, fmt.Errorf("prefabs: hostile archetype with empty name")
		}
		if _, dup := out[h.Name]; dup {
			return nil, fmt.Errorf("prefabs: duplicate hostile archetype %q", h.Name)
		}
		if h.Width <= 0 || h.Height <= 0 {
			return nil, fmt.Errorf("prefabs: hostile %s size %vx%v is not positive", h.Name, h.Width, h.Height)
		}
		if h.Health <= 0 {
			return nil, fmt.Errorf("prefabs: hostile %s health %d is not positive", h.Name, h.Health)
		}
		if h.DeaggroRange < h.AggroRange {
			return nil, fmt.Errorf("prefabs: hostile %s deaggro range %v below aggro range %v",
				h.Name, h.DeaggroRange, h.AggroRange)
		}
		c, err := palette.Parse(h.Color)
		if err != nil {
			return nil, fmt.Errorf("prefabs: hostile %s: %w", h.Name, err)
		}
		out[h.Name] = sim.HostileArchetype{
			Name:           h.Name,
			W:              h.Width,
			H:              h.Height,
			MaxHP:          h.Health,
			AggroRange:     h.AggroRange,
			DeaggroRange:   h.DeaggroRange,
			IdleSpeed:      h.IdleSpeed,
			ChaseSpeed:     h.ChaseSpeed,
			IdleInterval:   h.IdleInterval,
			ContactDamage:  h.ContactDamage,
			KnockbackForce: h.Knockback,
			Score:          h.Score,
			Color:          c,
		}
	}
	return out, nil
}

// BuildRooms converts the room graph into sim configs, resolving archetype
// references and checking that every door leads somewhere that exists.
func BuildRooms(spec *RoomsSpec, archetypes map[string]sim.HostileArchetype, compileGuard GuardCompiler) (map[string]sim.RoomConfig, error) {
	known := make(map[string]bool, len(spec.Rooms))
	for _, r := range spec.Rooms {
		if r.Name == "" {
			return nil, fmt.Errorf("prefabs: room with empty name")
		}
		if known[r.Name] {
			return nil, fmt.Errorf("prefabs: duplicate room %q", r.Name)
		}
		known[r.Name] = true
	}

	out := make(map[string]sim.RoomConfig, len(spec.Rooms))
	for _, r := range spec.Rooms {
		if r.Width <= 0 || r.Height <= 0 {
			return nil, fmt.Errorf("prefabs: room %s size %vx%v is not positive", r.Name, r.Width, r.Height)
		}
		rc := sim.RoomConfig{
			Name:            r.Name,
			Bounds:          geom.Rect{W: r.Width, H: r.Height},
			Spawn:           cp.Vector{X: r.SpawnX, Y: r.SpawnY},
			ObstacleCount:   r.Obstacles.Count,
			ObstacleSizeMin: cp.Vector{X: r.Obstacles.MinW, Y: r.Obstacles.MinH},
			ObstacleSizeMax: cp.Vector{X: r.Obstacles.MaxW, Y: r.Obstacles.MaxH},
		}
		if !rc.Bounds.Contains(rc.Spawn) {
			return nil, fmt.Errorf("prefabs: room %s spawn (%v, %v) outside bounds", r.Name, r.SpawnX, r.SpawnY)
		}
		for _, sp := range r.Hostiles {
			arch, ok := archetypes[sp.Archetype]
			if !ok {
				return nil, fmt.Errorf("prefabs: room %s references unknown archetype %q", r.Name, sp.Archetype)
			}
			if sp.Count <= 0 {
				return nil, fmt.Errorf("prefabs: room %s spawns %d of %q", r.Name, sp.Count, sp.Archetype)
			}
			rc.Spawns = append(rc.Spawns, sim.HostileSpawn{Archetype: arch, Count: sp.Count})
		}
		for _, d := range r.Doors {
			if !known[d.To] {
				return nil, fmt.Errorf("prefabs: room %s door %q leads to unknown room %q", r.Name, d.Label, d.To)
			}
			door := sim.Door{
				Label:   d.Label,
				To:      d.To,
				Pos:     cp.Vector{X: d.X, Y: d.Y},
				Refusal: d.Refusal,
			}
			if d.Guard != "" && compileGuard != nil {
				guard, err := compileGuard(d.Guard)
				if err != nil {
					return nil, fmt.Errorf("prefabs: room %s door %q: %w", r.Name, d.Label, err)
				}
				door.Guard = guard
			}
			rc.Doors = append(rc.Doors, door)
		}
		out[r.Name] = rc
	}
	return out, nil
}
