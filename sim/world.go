package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/palette"
	"github.com/milk9111/topdown/particle"
)

// maxTickDelta caps how much simulated time one Step may cover. Long
// stalls (window drags, debugger pauses) land as one 100ms tick instead
// of a huge teleporting delta.
const maxTickDelta = 100 * time.Millisecond

// feedback particle tuning
const (
	hitBurstCount  = 8
	hitBurstSpeed  = 180.0
	hitBurstSize   = 4.0
	killBurstCount = 18
	killBurstSpeed = 260.0
	killBurstSize  = 5.0
	wallSparkCount = 6
	wallSparkSpeed = 150.0
	hurtSprayCount = 12
	hurtSpraySpeed = 220.0
)

// ActorTuning sizes and paces the player-controlled entity.
type ActorTuning struct {
	W, H         float64
	MoveSpeed    float64
	MaxHP        int
	InvulnWindow float64
}

// WeaponTuning paces the actor's projectiles.
type WeaponTuning struct {
	FireRate        float64 // seconds between shots
	ProjectileSpeed float64
	ProjectileSize  float64
	Damage          int
}

// Config carries everything a World needs at construction. A zero Seed
// picks one from the clock; a nil Logger logs nowhere.
type Config struct {
	Actor       ActorTuning
	Weapon      WeaponTuning
	QuestTarget int
	Seed        uint64
	Logger      *zap.Logger
}

// GuardState is the snapshot of run progress exposed to door guards.
type GuardState struct {
	Score     int
	Kills     int
	HP        int
	QuestDone bool
}

// World owns the live simulation: the entity arena, particles, obstacles,
// quest state, and the per-tick pipeline. It draws through a RenderSurface
// and reads input through an InputSource, and never touches the display
// or input devices itself.
type World struct {
	cfg  Config
	log  *zap.Logger
	rng  *rand.Rand
	seed uint64

	arena     Arena
	particles *particle.System
	obstacles []geom.Rect

	actor  Handle
	quest  Quest
	score  int
	events EventQueue

	room RoomConfig

	prev    time.Time
	started bool
}

// NewWorld builds a world with the actor staged and no room entered yet.
// Call EnterRoom before the first Step.
func NewWorld(cfg Config) *World {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		cfg:       cfg,
		log:       cfg.Logger,
		rng:       rand.New(rand.NewSource(int64(cfg.Seed))),
		seed:      cfg.Seed,
		particles: particle.NewSystem(),
		quest:     Quest{Target: cfg.QuestTarget},
	}
	w.actor = w.arena.Insert(Entity{
		Kind:  KindActor,
		W:     cfg.Actor.W,
		H:     cfg.Actor.H,
		Speed: cfg.Actor.MoveSpeed,
		Color: palette.Bone,
		Actor: &Actor{
			HP:           cfg.Actor.MaxHP,
			MaxHP:        cfg.Actor.MaxHP,
			InvulnWindow: cfg.Actor.InvulnWindow,
		},
	})
	return w
}

// PlayBounds implements Bounds for entity updates.
func (w *World) PlayBounds() geom.Rect {
	return w.room.Bounds
}

// Seed returns the run seed layouts derive from.
func (w *World) Seed() uint64 {
	return w.seed
}

func (w *World) RoomName() string {
	return w.room.Name
}

func (w *World) Score() int {
	return w.score
}

// QuestState returns a copy of the bounty counters.
func (w *World) QuestState() Quest {
	return w.quest
}

// ActorHP returns current and max hit points. A defeated, already swept
// actor reads as zero.
func (w *World) ActorHP() (int, int) {
	if e := w.arena.Get(w.actor); e != nil && e.Actor != nil {
		return e.Actor.HP, e.Actor.MaxHP
	}
	return 0, w.cfg.Actor.MaxHP
}

// LiveEntities counts entities in the live set, for debug overlays.
func (w *World) LiveEntities() int {
	return w.arena.Live()
}

// ParticleCount returns live particles, for debug overlays.
func (w *World) ParticleCount() int {
	return w.particles.Len()
}

// DrainEvents hands the host everything the tick raised.
func (w *World) DrainEvents() []Event {
	return w.events.Drain()
}

func (w *World) guardState() GuardState {
	hp, _ := w.ActorHP()
	return GuardState{
		Score:     w.score,
		Kills:     w.quest.Current,
		HP:        hp,
		QuestDone: w.quest.Completed,
	}
}

// Step advances the simulation to now. The first call establishes the
// clock and simulates nothing.
func (w *World) Step(now time.Time, in InputSource) {
	dt := w.clampDelta(now)

	w.arena.BeginTick()

	fire := in.FireJustPressed()
	consumed := w.sampleInteractions(in.Pointer(), fire)

	w.updateEntities(in, dt, fire && !consumed)
	w.particles.Update(dt)

	w.resolveObstaclePushes()
	w.resolveProjectileObstacles()
	w.resolveProjectileHits()
	w.resolveContactDamage()

	w.arena.Sweep()

	if w.quest.CheckComplete() {
		w.events.Push(Event{Type: EventQuestCompleted, Data: QuestProgress{
			Current: w.quest.Current,
			Target:  w.quest.Target,
		}})
		w.log.Info("bounty complete", zap.Int("kills", w.quest.Current))
	}
}

func (w *World) clampDelta(now time.Time) float64 {
	if !w.started {
		w.started = true
		w.prev = now
		return 0
	}
	d := now.Sub(w.prev)
	w.prev = now
	if d < 0 {
		d = 0
	}
	if d > maxTickDelta {
		d = maxTickDelta
	}
	return d.Seconds()
}

// sampleInteractions refreshes hover state for every interactable and, on
// a fire press, activates the hovered one. Returns true when the press was
// consumed, which suppresses this tick's shooting. A press on a hovered
// interactable that is out of reach raises a notice and is not consumed.
func (w *World) sampleInteractions(pointer cp.Vector, fire bool) bool {
	actor := w.arena.Get(w.actor)
	consumed := false
	w.arena.Each(func(_ Handle, e *Entity) {
		it := e.Interactable
		if it == nil {
			return
		}
		it.Hovered = e.Rect().Contains(pointer)
		if !fire || consumed || !it.Hovered || actor == nil {
			return
		}
		if geom.Dist(actor.Center(), e.Center()) > it.Radius {
			w.events.Push(Event{Type: EventNotice, Data: Notice{Text: "Too far away."}})
			return
		}
		consumed = true
		if it.Guard != nil && !it.Guard(w.guardState()) {
			refusal := it.Refusal
			if refusal == "" {
				refusal = "It will not open."
			}
			w.events.Push(Event{Type: EventNotice, Data: Notice{Text: refusal}})
			return
		}
		if it.Trigger != nil {
			it.Trigger()
		}
	})
	return consumed
}

func (w *World) updateEntities(in InputSource, dt float64, shoot bool) {
	w.arena.Each(func(_ Handle, e *Entity) {
		switch e.Kind {
		case KindActor:
			w.updateActor(e, in, dt, shoot)
		case KindHostile:
			target := w.arena.Get(e.Hostile.Target)
			advanceHostile(e, target, dt, w, w.rng)
		case KindProjectile:
			advanceProjectile(e, dt, w)
		case KindInteractable:
			// static
		}
	})
}

// resolveObstaclePushes slides the actor and hostiles out of obstacles
// along the axis of least penetration.
func (w *World) resolveObstaclePushes() {
	w.arena.Each(func(_ Handle, e *Entity) {
		if e.Kind != KindActor && e.Kind != KindHostile {
			return
		}
		r := e.Rect()
		moved := false
		for _, o := range w.obstacles {
			if geom.ResolveAgainstObstacle(&r, o) {
				moved = true
			}
		}
		if moved {
			e.Pos = cp.Vector{X: r.X, Y: r.Y}
		}
	})
}

func (w *World) resolveProjectileObstacles() {
	w.arena.Each(func(_ Handle, e *Entity) {
		if e.Kind != KindProjectile {
			return
		}
		for _, o := range w.obstacles {
			if !geom.Overlaps(e.Rect(), o) {
				continue
			}
			e.Destroyed = true
			w.particles.Add(particle.Scatter(w.rng, e.Center(), palette.Brass, wallSparkCount, wallSparkSpeed))
			break
		}
	})
}

func (w *World) resolveProjectileHits() {
	w.arena.Each(func(_ Handle, p *Entity) {
		if p.Kind != KindProjectile {
			return
		}
		w.arena.Each(func(_ Handle, e *Entity) {
			if p.Destroyed || e.Kind != KindHostile {
				return
			}
			if !geom.Overlaps(p.Rect(), e.Rect()) {
				return
			}
			p.Destroyed = true
			e.ApplyDamage(w.cfg.Weapon.Damage)
			w.particles.Add(particle.Burst(w.rng, e.Center(), e.Color, hitBurstCount, hitBurstSpeed, hitBurstSize))
			if e.Destroyed {
				w.onHostileKilled(e)
			}
		})
	})
}

func (w *World) onHostileKilled(e *Entity) {
	h := e.Hostile
	w.score += h.Score
	w.particles.Add(particle.Burst(w.rng, e.Center(), e.Color, killBurstCount, killBurstSpeed, killBurstSize))
	w.events.Push(Event{Type: EventHostileKilled, Data: HostileKilled{Name: h.Name, Score: h.Score}})
	w.quest.Advance()
	if w.quest.Target > 0 {
		w.events.Push(Event{Type: EventQuestProgress, Data: QuestProgress{
			Current: w.quest.Current,
			Target:  w.quest.Target,
		}})
	}
	w.log.Debug("hostile killed",
		zap.String("name", h.Name),
		zap.Int("score", w.score),
		zap.Int("kills", w.quest.Current))
}

// resolveContactDamage hurts the actor on hostile contact and always
// knocks the hostile back along the contact normal, so a pair never stays
// interpenetrated across ticks.
func (w *World) resolveContactDamage() {
	actor := w.arena.Get(w.actor)
	if actor == nil || actor.Destroyed {
		return
	}
	w.arena.Each(func(_ Handle, e *Entity) {
		if e.Kind != KindHostile || actor.Destroyed {
			return
		}
		if !geom.Overlaps(actor.Rect(), e.Rect()) {
			return
		}
		h := e.Hostile
		if actor.Actor.TakeDamage(h.ContactDamage) {
			w.particles.Add(particle.Scatter(w.rng, actor.Center(), palette.Blood, hurtSprayCount, hurtSpraySpeed))
			w.events.Push(Event{Type: EventActorHealth, Data: ActorHealth{
				HP:    actor.Actor.HP,
				MaxHP: actor.Actor.MaxHP,
			}})
			if actor.Actor.HP <= 0 {
				actor.Destroyed = true
				w.events.Push(Event{Type: EventActorDefeated})
				w.log.Info("actor defeated", zap.String("room", w.room.Name), zap.Int("score", w.score))
			}
		}
		e.Knockback(geom.OverlapDepth(actor.Rect(), e.Rect()), h.KnockbackForce)
	})
}

// EnterRoom despawns everything but the actor, lays the new room out from
// its deterministic seed, and stages its hostiles and doors. Spawned
// entities join the live set on the next Step.
func (w *World) EnterRoom(rc RoomConfig) {
	w.arena.RemoveWhere(func(e *Entity) bool { return e.Kind != KindActor })
	w.arena.Sweep()
	w.particles.Clear()

	w.room = rc
	layout := LayoutRoom(rc, w.seed)
	w.obstacles = append(w.obstacles[:0], layout.Obstacles...)

	if actor := w.arena.Get(w.actor); actor != nil {
		spawn := geom.CenteredAt(rc.Spawn, actor.W, actor.H)
		actor.Pos = cp.Vector{X: spawn.X, Y: spawn.Y}
		actor.Vel = cp.Vector{}
	}
	for _, ph := range layout.Hostiles {
		w.spawnHostile(ph)
	}
	for _, d := range rc.Doors {
		w.spawnDoor(d)
	}

	w.events.Push(Event{Type: EventAreaEntered, Data: AreaEntered{Room: rc.Name}})
	w.log.Info("area entered",
		zap.String("room", rc.Name),
		zap.Uint64("seed", RoomSeed(rc.Name, w.seed)),
		zap.Int("obstacles", len(layout.Obstacles)),
		zap.Int("hostiles", len(layout.Hostiles)))
}

func (w *World) spawnHostile(ph PlacedHostile) {
	arch := ph.Archetype
	w.arena.Insert(Entity{
		Kind:  KindHostile,
		Pos:   cp.Vector{X: ph.Rect.X, Y: ph.Rect.Y},
		W:     arch.W,
		H:     arch.H,
		Speed: arch.ChaseSpeed,
		Color: arch.Color,
		Hostile: &Hostile{
			Name:           arch.Name,
			HP:             arch.MaxHP,
			MaxHP:          arch.MaxHP,
			State:          StateIdle,
			AggroRange:     arch.AggroRange,
			DeaggroRange:   arch.DeaggroRange,
			IdleSpeed:      arch.IdleSpeed,
			ChaseSpeed:     arch.ChaseSpeed,
			IdleInterval:   arch.IdleInterval,
			ContactDamage:  arch.ContactDamage,
			KnockbackForce: arch.KnockbackForce,
			Score:          arch.Score,
			Target:         w.actor,
			Heading:        geom.FromAngle(w.rng.Float64() * 2 * math.Pi),
		},
	})
}

func (w *World) spawnDoor(d Door) {
	rect := geom.CenteredAt(d.Pos, doorW, doorH)
	room, door := d.To, d.Label
	w.arena.Insert(Entity{
		Kind:  KindInteractable,
		Pos:   cp.Vector{X: rect.X, Y: rect.Y},
		W:     doorW,
		H:     doorH,
		Color: palette.Glow,
		Interactable: &Interactable{
			Label:   d.Label,
			Radius:  interactRadius,
			Guard:   d.Guard,
			Refusal: d.Refusal,
			Trigger: func() {
				w.events.Push(Event{Type: EventTransitionRequested, Data: TransitionRequested{
					Room: room,
					Door: door,
				}})
			},
		},
	})
}

// Draw emits the whole scene as quads: floor, obstacles, entities, then
// particles on top. A hovered interactable gets a pale underlay.
func (w *World) Draw(surface RenderSurface) {
	if surface == nil {
		return
	}
	surface.DrawQuad(w.room.Bounds, 0, palette.Floor, 1)
	for _, o := range w.obstacles {
		surface.DrawQuad(o, 0, palette.Slate, 1)
	}
	w.arena.Each(func(_ Handle, e *Entity) {
		if it := e.Interactable; it != nil && it.Hovered {
			surface.DrawQuad(e.Rect().Inset(-3), 0, palette.Bone, 0.5)
		}
		opacity := 1.0
		if e.Actor != nil && e.Actor.Invuln > 0 {
			opacity = 0.55
		}
		surface.DrawQuad(e.Rect(), e.Facing, e.Color, opacity)
	})
	w.particles.Each(func(p *particle.Particle) {
		surface.DrawQuad(geom.CenteredAt(p.Pos, p.Size, p.Size), 0, p.Color, p.Opacity())
	})
}
