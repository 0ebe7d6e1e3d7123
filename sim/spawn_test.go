package sim

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/geom"
)

func TestRoomSeedDerivation(t *testing.T) {
	if RoomSeed("warrens", 42) != RoomSeed("warrens", 42) {
		t.Fatal("expected the same room and seed to derive the same value")
	}
	if RoomSeed("warrens", 42) == RoomSeed("warrens", 43) {
		t.Fatal("expected different run seeds to derive different values")
	}
	if RoomSeed("warrens", 42) == RoomSeed("threshold", 42) {
		t.Fatal("expected different rooms to derive different values")
	}
}

func TestPlacerHonorsConstraints(t *testing.T) {
	bounds := geom.Rect{W: 800, H: 600}
	spawn := cp.Vector{X: 400, Y: 300}
	p := NewPlacer(bounds, 24, rand.New(rand.NewSource(11)))
	usable := bounds.Inset(24)

	for i := 0; i < 50; i++ {
		r := p.Place(40, 40, MinDistance(spawn, 150))
		if d := geom.Dist(r.Center(), spawn); d < 150 {
			t.Fatalf("placement %d: expected at least 150 from spawn, got %v", i, d)
		}
		if r.X < usable.X-1e-9 || r.Y < usable.Y-1e-9 ||
			r.X+r.W > usable.X+usable.W+1e-9 || r.Y+r.H > usable.Y+usable.H+1e-9 {
			t.Fatalf("placement %d: rect %+v escapes the margin", i, r)
		}
	}
}

func TestMinDistanceBoundary(t *testing.T) {
	c := MinDistance(cp.Vector{}, 100)
	at := func(cx, cy float64) geom.Rect {
		return geom.CenteredAt(cp.Vector{X: cx, Y: cy}, 10, 10)
	}
	if !c(at(100, 0)) {
		t.Fatal("expected a candidate exactly at the minimum accepted")
	}
	if c(at(99.9, 0)) {
		t.Fatal("expected a candidate inside the minimum rejected")
	}
}

func TestAvoidRects(t *testing.T) {
	blocked := []geom.Rect{{X: 100, Y: 100, W: 50, H: 50}}
	c := AvoidRects(blocked, 10)

	cases := []struct {
		name string
		rect geom.Rect
		want bool
	}{
		{"overlapping_rejected", geom.Rect{X: 140, Y: 140, W: 20, H: 20}, false},
		{"inside_pad_rejected", geom.Rect{X: 151, Y: 100, W: 20, H: 20}, false},
		{"clear_of_pad_accepted", geom.Rect{X: 165, Y: 100, W: 20, H: 20}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c(tc.rect); got != tc.want {
				t.Fatalf("expected %v for %+v, got %v", tc.want, tc.rect, got)
			}
		})
	}
}

func TestPlaceBestEffort(t *testing.T) {
	p := NewPlacer(geom.Rect{W: 400, H: 400}, 24, rand.New(rand.NewSource(3)))
	never := func(geom.Rect) bool { return false }

	r := p.Place(30, 30, never)
	if r.W != 30 || r.H != 30 {
		t.Fatalf("expected the last candidate back, got %+v", r)
	}
}

func layoutFixture() RoomConfig {
	return RoomConfig{
		Name:            "warrens",
		Bounds:          geom.Rect{W: 900, H: 700},
		Spawn:           cp.Vector{X: 450, Y: 350},
		ObstacleCount:   5,
		ObstacleSizeMin: cp.Vector{X: 40, Y: 40},
		ObstacleSizeMax: cp.Vector{X: 120, Y: 90},
		Spawns: []HostileSpawn{
			{Archetype: HostileArchetype{Name: "grub", W: 20, H: 20, MaxHP: 3}, Count: 3},
		},
	}
}

func TestLayoutRoomDeterminism(t *testing.T) {
	rc := layoutFixture()
	first := LayoutRoom(rc, 42)
	second := LayoutRoom(rc, 42)

	if len(first.Obstacles) != 5 || len(first.Hostiles) != 3 {
		t.Fatalf("expected 5 obstacles and 3 hostiles, got %d and %d",
			len(first.Obstacles), len(first.Hostiles))
	}
	for i := range first.Obstacles {
		if first.Obstacles[i] != second.Obstacles[i] {
			t.Fatalf("obstacle %d differs between identical layouts", i)
		}
	}
	for i := range first.Hostiles {
		if first.Hostiles[i].Rect != second.Hostiles[i].Rect {
			t.Fatalf("hostile %d differs between identical layouts", i)
		}
		if first.Hostiles[i].Archetype.Name != "grub" {
			t.Fatalf("hostile %d lost its archetype", i)
		}
	}
}

func TestLayoutRoomClearances(t *testing.T) {
	rc := layoutFixture()
	layout := LayoutRoom(rc, 99)

	for i, o := range layout.Obstacles {
		if d := geom.Dist(o.Center(), rc.Spawn); d < obstacleClearance {
			t.Fatalf("obstacle %d: expected at least %v from spawn, got %v", i, obstacleClearance, d)
		}
		if o.W < rc.ObstacleSizeMin.X || o.W > rc.ObstacleSizeMax.X ||
			o.H < rc.ObstacleSizeMin.Y || o.H > rc.ObstacleSizeMax.Y {
			t.Fatalf("obstacle %d: size %vx%v outside the configured range", i, o.W, o.H)
		}
	}
	for i, h := range layout.Hostiles {
		if d := geom.Dist(h.Rect.Center(), rc.Spawn); d < hostileClearance {
			t.Fatalf("hostile %d: expected at least %v from spawn, got %v", i, hostileClearance, d)
		}
		grown := h.Rect.Inset(-obstaclePad)
		for j, o := range layout.Obstacles {
			if geom.Overlaps(grown, o) {
				t.Fatalf("hostile %d landed within the pad of obstacle %d", i, j)
			}
		}
	}
}
