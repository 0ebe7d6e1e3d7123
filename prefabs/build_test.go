package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/topdown/palette"
	"github.com/milk9111/topdown/sim"
)

func validTuning() *TuningSpec {
	return &TuningSpec{
		Actor:  ActorSpec{Width: 20, Height: 20, MoveSpeed: 200, Health: 5, InvulnSeconds: 0.8},
		Weapon: WeaponSpec{FireRate: 0.25, ProjectileSpeed: 500, ProjectileSize: 6, Damage: 1},
	}
}

func validHostile(name string) HostileSpec {
	return HostileSpec{
		Name:         name,
		Width:        20,
		Height:       20,
		Health:       2,
		AggroRange:   100,
		DeaggroRange: 200,
		ChaseSpeed:   150,
		Color:        "moss",
	}
}

func validRoom(name string) RoomSpec {
	return RoomSpec{Name: name, Width: 400, Height: 300, SpawnX: 200, SpawnY: 150}
}

func TestEmbeddedSpecsBuild(t *testing.T) {
	tuning, err := LoadTuningSpec()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	actor, weapon, err := BuildTuning(tuning)
	if err != nil {
		t.Fatalf("build tuning: %v", err)
	}
	if actor.MaxHP != 6 {
		t.Fatalf("expected 6 actor hp, got %d", actor.MaxHP)
	}
	if weapon.Damage != 1 {
		t.Fatalf("expected damage 1, got %d", weapon.Damage)
	}

	hostiles, err := LoadHostilesSpec()
	if err != nil {
		t.Fatalf("load hostiles: %v", err)
	}
	archetypes, err := BuildArchetypes(hostiles)
	if err != nil {
		t.Fatalf("build archetypes: %v", err)
	}
	if len(archetypes) != 3 {
		t.Fatalf("expected 3 archetypes, got %d", len(archetypes))
	}
	if archetypes["skitter"].Color != palette.Fang {
		t.Fatalf("expected skitter in fang, got %v", archetypes["skitter"].Color)
	}

	roomsSpec, err := LoadRoomsSpec()
	if err != nil {
		t.Fatalf("load rooms: %v", err)
	}
	if roomsSpec.Bounty != 12 {
		t.Fatalf("expected a bounty of 12, got %d", roomsSpec.Bounty)
	}
	rooms, err := BuildRooms(roomsSpec, archetypes, nil)
	if err != nil {
		t.Fatalf("build rooms: %v", err)
	}
	if len(rooms) != 4 {
		t.Fatalf("expected 4 rooms, got %d", len(rooms))
	}

	threshold, ok := rooms["threshold"]
	if !ok {
		t.Fatal("expected the start room in the graph")
	}
	if threshold.Bounds.W != 960 || threshold.Bounds.H != 540 {
		t.Fatalf("expected threshold at 960x540, got %vx%v", threshold.Bounds.W, threshold.Bounds.H)
	}
	if len(threshold.Doors) != 2 {
		t.Fatalf("expected 2 doors out of threshold, got %d", len(threshold.Doors))
	}

	for name, rc := range rooms {
		for _, d := range rc.Doors {
			if _, ok := rooms[d.To]; !ok {
				t.Fatalf("room %s door %q leads to missing room %q", name, d.Label, d.To)
			}
			if d.Guard != nil {
				t.Fatalf("room %s door %q grew a guard without a compiler", name, d.Label)
			}
		}
		for _, sp := range rc.Spawns {
			if sp.Archetype.Name == "" || sp.Count <= 0 {
				t.Fatalf("room %s has an unresolved spawn %+v", name, sp)
			}
		}
	}
}

func TestBuildRoomsCompilesGuards(t *testing.T) {
	roomsSpec, err := LoadRoomsSpec()
	if err != nil {
		t.Fatalf("load rooms: %v", err)
	}
	hostiles, err := LoadHostilesSpec()
	if err != nil {
		t.Fatalf("load hostiles: %v", err)
	}
	archetypes, err := BuildArchetypes(hostiles)
	if err != nil {
		t.Fatalf("build archetypes: %v", err)
	}

	var exprs []string
	compiler := func(expr string) (func(sim.GuardState) bool, error) {
		exprs = append(exprs, expr)
		return func(sim.GuardState) bool { return true }, nil
	}
	rooms, err := BuildRooms(roomsSpec, archetypes, compiler)
	if err != nil {
		t.Fatalf("build rooms: %v", err)
	}

	want := []string{"quest_done", "kills >= 6", "score >= 600 || quest_done"}
	if len(exprs) != len(want) {
		t.Fatalf("expected %d guards compiled, got %d (%v)", len(want), len(exprs), exprs)
	}
	for i := range want {
		if exprs[i] != want[i] {
			t.Fatalf("guard %d: expected %q, got %q", i, want[i], exprs[i])
		}
	}

	guarded := 0
	for _, rc := range rooms {
		for _, d := range rc.Doors {
			if d.Guard != nil {
				guarded++
			}
		}
	}
	if guarded != len(want) {
		t.Fatalf("expected %d guarded doors, got %d", len(want), guarded)
	}
}

func TestBuildRoomsGuardErrorPropagates(t *testing.T) {
	room := validRoom("gatehouse")
	room.Doors = []DoorSpec{{Label: "gate", To: "gatehouse", X: 10, Y: 10, Guard: "score >= 1"}}
	spec := &RoomsSpec{Bounty: 1, Rooms: []RoomSpec{room}}

	failing := func(string) (func(sim.GuardState) bool, error) {
		return nil, errors.New("bad expression")
	}
	if _, err := BuildRooms(spec, nil, failing); err == nil {
		t.Fatal("expected the guard compile error to surface")
	}
}

func TestBuildRoomsRejectsBadGraphs(t *testing.T) {
	archetypes := map[string]sim.HostileArchetype{
		"grub": {Name: "grub", W: 20, H: 20, MaxHP: 1},
	}

	cases := []struct {
		name  string
		rooms []RoomSpec
	}{
		{"empty_room_name", []RoomSpec{validRoom("")}},
		{"duplicate_room", []RoomSpec{validRoom("twin"), validRoom("twin")}},
		{"nonpositive_size", []RoomSpec{{Name: "flat", Width: 0, Height: 300}}},
		{"spawn_outside_bounds", func() []RoomSpec {
			r := validRoom("adrift")
			r.SpawnX = 999
			return []RoomSpec{r}
		}()},
		{"unknown_archetype", func() []RoomSpec {
			r := validRoom("den")
			r.Hostiles = []SpawnSpec{{Archetype: "wisp", Count: 1}}
			return []RoomSpec{r}
		}()},
		{"zero_spawn_count", func() []RoomSpec {
			r := validRoom("den")
			r.Hostiles = []SpawnSpec{{Archetype: "grub", Count: 0}}
			return []RoomSpec{r}
		}()},
		{"door_to_unknown_room", func() []RoomSpec {
			r := validRoom("edge")
			r.Doors = []DoorSpec{{Label: "out", To: "nowhere", X: 10, Y: 10}}
			return []RoomSpec{r}
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := &RoomsSpec{Bounty: 1, Rooms: tc.rooms}
			if _, err := BuildRooms(spec, archetypes, nil); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestBuildArchetypesRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*HostileSpec)
	}{
		{"empty_name", func(h *HostileSpec) { h.Name = "" }},
		{"zero_health", func(h *HostileSpec) { h.Health = 0 }},
		{"zero_size", func(h *HostileSpec) { h.Width = 0 }},
		{"deaggro_below_aggro", func(h *HostileSpec) { h.DeaggroRange = h.AggroRange - 1 }},
		{"unknown_color", func(h *HostileSpec) { h.Color = "plaid" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := validHostile("grub")
			tc.mutate(&h)
			if _, err := BuildArchetypes(&HostilesSpec{Hostiles: []HostileSpec{h}}); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	t.Run("duplicate_name", func(t *testing.T) {
		spec := &HostilesSpec{Hostiles: []HostileSpec{validHostile("grub"), validHostile("grub")}}
		if _, err := BuildArchetypes(spec); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestBuildTuningRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TuningSpec)
	}{
		{"zero_actor_size", func(s *TuningSpec) { s.Actor.Width = 0 }},
		{"zero_actor_health", func(s *TuningSpec) { s.Actor.Health = 0 }},
		{"zero_projectile_speed", func(s *TuningSpec) { s.Weapon.ProjectileSpeed = 0 }},
		{"zero_damage", func(s *TuningSpec) { s.Weapon.Damage = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validTuning()
			tc.mutate(spec)
			if _, _, err := BuildTuning(spec); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
