package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and decodes one YAML spec, preferring a disk copy over
// the embedded default.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec holds the actor and weapon numbers.
type TuningSpec struct {
	Actor  ActorSpec  `yaml:"actor"`
	Weapon WeaponSpec `yaml:"weapon"`
}

type ActorSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MoveSpeed     float64 `yaml:"move_speed"`
	Health        int     `yaml:"health"`
	InvulnSeconds float64 `yaml:"invuln_seconds"`
}

type WeaponSpec struct {
	FireRate        float64 `yaml:"fire_rate"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileSize  float64 `yaml:"projectile_size"`
	Damage          int     `yaml:"damage"`
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// HostilesSpec lists every hostile archetype rooms can spawn.
type HostilesSpec struct {
	Hostiles []HostileSpec `yaml:"hostiles"`
}

type HostileSpec struct {
	Name          string  `yaml:"name"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	AggroRange    float64 `yaml:"aggro_range"`
	DeaggroRange  float64 `yaml:"deaggro_range"`
	IdleSpeed     float64 `yaml:"idle_speed"`
	ChaseSpeed    float64 `yaml:"chase_speed"`
	IdleInterval  float64 `yaml:"idle_interval"`
	ContactDamage int     `yaml:"contact_damage"`
	Knockback     float64 `yaml:"knockback"`
	Score         int     `yaml:"score"`
	Color         string  `yaml:"color"`
}

func LoadHostilesSpec() (*HostilesSpec, error) {
	spec, err := LoadSpec[HostilesSpec]("hostiles.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// RoomsSpec is the whole room graph plus the run's bounty target.
type RoomsSpec struct {
	Bounty int        `yaml:"bounty"`
	Rooms  []RoomSpec `yaml:"rooms"`
}

type RoomSpec struct {
	Name      string        `yaml:"name"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	SpawnX    float64       `yaml:"spawn_x"`
	SpawnY    float64       `yaml:"spawn_y"`
	Obstacles ObstaclesSpec `yaml:"obstacles"`
	Hostiles  []SpawnSpec   `yaml:"hostiles"`
	Doors     []DoorSpec    `yaml:"doors"`
}

type ObstaclesSpec struct {
	Count int     `yaml:"count"`
	MinW  float64 `yaml:"min_w"`
	MinH  float64 `yaml:"min_h"`
	MaxW  float64 `yaml:"max_w"`
	MaxH  float64 `yaml:"max_h"`
}

type SpawnSpec struct {
	Archetype string `yaml:"archetype"`
	Count     int    `yaml:"count"`
}

// DoorSpec places one exit. Guard is an optional tengo expression over the
// run state; Refusal is shown when the guard fails.
type DoorSpec struct {
	Label   string  `yaml:"label"`
	To      string  `yaml:"to"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Guard   string  `yaml:"guard"`
	Refusal string  `yaml:"refusal"`
}

func LoadRoomsSpec() (*RoomsSpec, error) {
	spec, err := LoadSpec[RoomsSpec]("rooms.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
