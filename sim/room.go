package sim

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/palette"
)

// room layout tuning (pixels)
const (
	placementMargin   = 24.0  // keep spawned rects off the room edges
	obstacleClearance = 140.0 // obstacle distance from the actor spawn
	hostileClearance  = 200.0 // hostile distance from the actor spawn
	obstaclePad       = 12.0  // gap kept between hostiles and obstacles

	doorW          = 46.0
	doorH          = 54.0
	interactRadius = 120.0
)

// HostileArchetype is the spawn-time tuning for one hostile variant.
type HostileArchetype struct {
	Name           string
	W, H           float64
	MaxHP          int
	AggroRange     float64
	DeaggroRange   float64
	IdleSpeed      float64
	ChaseSpeed     float64
	IdleInterval   float64
	ContactDamage  int
	KnockbackForce float64
	Score          int
	Color          palette.Color
}

// HostileSpawn asks a room for Count copies of one archetype.
type HostileSpawn struct {
	Archetype HostileArchetype
	Count     int
}

// Door is a room exit. Guard, when set, decides whether the door opens;
// Refusal is shown when it does not.
type Door struct {
	Label   string
	To      string
	Pos     cp.Vector // center of the door quad
	Guard   func(GuardState) bool
	Refusal string
}

// RoomConfig describes one play area before layout.
type RoomConfig struct {
	Name   string
	Bounds geom.Rect
	Spawn  cp.Vector // actor position on entry

	ObstacleCount   int
	ObstacleSizeMin cp.Vector
	ObstacleSizeMax cp.Vector

	Spawns []HostileSpawn
	Doors  []Door
}

// PlacedHostile is one hostile's spawn rect resolved by layout.
type PlacedHostile struct {
	Archetype HostileArchetype
	Rect      geom.Rect
}

// RoomLayout is the deterministic placement result for a room and seed.
type RoomLayout struct {
	Obstacles []geom.Rect
	Hostiles  []PlacedHostile
}

// LayoutRoom computes obstacle and hostile placement for a room without
// touching any world state. EnterRoom and the roomgen tool both call this,
// so a previewed layout is exactly the layout the run produces.
func LayoutRoom(rc RoomConfig, worldSeed uint64) RoomLayout {
	rng := rand.New(rand.NewSource(int64(RoomSeed(rc.Name, worldSeed))))
	placer := NewPlacer(rc.Bounds, placementMargin, rng)

	var layout RoomLayout
	for i := 0; i < rc.ObstacleCount; i++ {
		w := rc.ObstacleSizeMin.X + rng.Float64()*(rc.ObstacleSizeMax.X-rc.ObstacleSizeMin.X)
		h := rc.ObstacleSizeMin.Y + rng.Float64()*(rc.ObstacleSizeMax.Y-rc.ObstacleSizeMin.Y)
		layout.Obstacles = append(layout.Obstacles, placer.Place(w, h,
			MinDistance(rc.Spawn, obstacleClearance)))
	}
	for _, sp := range rc.Spawns {
		for i := 0; i < sp.Count; i++ {
			r := placer.Place(sp.Archetype.W, sp.Archetype.H,
				MinDistance(rc.Spawn, hostileClearance),
				AvoidRects(layout.Obstacles, obstaclePad))
			layout.Hostiles = append(layout.Hostiles, PlacedHostile{
				Archetype: sp.Archetype,
				Rect:      r,
			})
		}
	}
	return layout
}
