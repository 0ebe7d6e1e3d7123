package sim

// Handle identifies an arena slot at a specific generation. The zero
// Handle is never valid, and a Handle outlives its entity safely: once the
// slot is reused the generation no longer matches and lookups return nil.
type Handle struct {
	id  int
	gen int
}

// Valid reports whether h could ever name a slot. It says nothing about
// whether the entity is still alive; use Arena.Get for that.
func (h Handle) Valid() bool {
	return h.id > 0
}

type slotState uint8

const (
	slotFree slotState = iota
	slotStaged
	slotLive
	slotDoomed
)

type slot struct {
	state slotState
	gen   int
	ent   Entity
}

// Arena owns all entity storage. Entities inserted mid-tick are staged and
// only join the live set at the next BeginTick, so a tick never iterates
// an entity it spawned itself. Nothing is freed mid-tick either: doomed
// and destroyed slots are released in one place, Sweep, at tick end.
type Arena struct {
	slots   []slot
	free    []int
	removal map[Handle]struct{}
}

// Insert stages e and returns its handle. The entity is visible to Get
// immediately but skipped by Each until the next BeginTick.
func (a *Arena) Insert(e Entity) Handle {
	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		idx = len(a.slots) - 1
	}
	s := &a.slots[idx]
	s.state = slotStaged
	s.ent = e
	return Handle{id: idx + 1, gen: s.gen}
}

// Get resolves a handle. It returns nil for stale generations, doomed
// slots, and anything already freed.
func (a *Arena) Get(h Handle) *Entity {
	if h.id <= 0 || h.id > len(a.slots) {
		return nil
	}
	s := &a.slots[h.id-1]
	if s.gen != h.gen {
		return nil
	}
	if s.state != slotLive && s.state != slotStaged {
		return nil
	}
	return &s.ent
}

// Kill marks the slot doomed and flags the entity destroyed. The entity
// stays physically present until Sweep.
func (a *Arena) Kill(h Handle) {
	if h.id <= 0 || h.id > len(a.slots) {
		return
	}
	s := &a.slots[h.id-1]
	if s.gen != h.gen || s.state == slotFree {
		return
	}
	s.state = slotDoomed
	s.ent.Destroyed = true
}

// QueueRemove schedules a slot for release at the next Sweep without
// touching the entity itself.
func (a *Arena) QueueRemove(h Handle) {
	if a.removal == nil {
		a.removal = make(map[Handle]struct{})
	}
	a.removal[h] = struct{}{}
}

// RemoveWhere queues every staged or live entity matching the predicate.
func (a *Arena) RemoveWhere(match func(*Entity) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.state != slotLive && s.state != slotStaged {
			continue
		}
		if match(&s.ent) {
			a.QueueRemove(Handle{id: i + 1, gen: s.gen})
		}
	}
}

// BeginTick promotes staged entities into the live set.
func (a *Arena) BeginTick() {
	for i := range a.slots {
		if a.slots[i].state == slotStaged {
			a.slots[i].state = slotLive
		}
	}
}

// Each visits live entities in slot order, skipping entities whose
// destroyed flag was raised earlier in the current tick.
func (a *Arena) Each(fn func(Handle, *Entity)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.state != slotLive || s.ent.Destroyed {
			continue
		}
		fn(Handle{id: i + 1, gen: s.gen}, &s.ent)
	}
}

// Sweep releases every doomed slot, every destroyed entity, and every slot
// queued for removal, bumping generations so stale handles die with them.
// The removal set is cleared afterward.
func (a *Arena) Sweep() {
	for i := range a.slots {
		s := &a.slots[i]
		if s.state == slotFree {
			continue
		}
		if s.state != slotDoomed && !s.ent.Destroyed {
			if _, queued := a.removal[Handle{id: i + 1, gen: s.gen}]; !queued {
				continue
			}
		}
		s.state = slotFree
		s.gen++
		s.ent = Entity{}
		a.free = append(a.free, i)
	}
	clear(a.removal)
}

// Live counts entities currently in the live set.
func (a *Arena) Live() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].state == slotLive {
			n++
		}
	}
	return n
}
