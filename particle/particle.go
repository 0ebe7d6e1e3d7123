package particle

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/palette"
)

// particle motion tuning
const (
	drag       = 0.95 // velocity retained per tick
	burstDecay = 0.03 // life lost per tick for ring bursts

	scatterDecayMin = 0.02
	scatterDecayMax = 0.05
	scatterSizeMin  = 2.0
	scatterSizeMax  = 5.0
)

// Particle is a short-lived cosmetic square. Particles never collide and
// never influence the simulation.
type Particle struct {
	Pos   cp.Vector
	Vel   cp.Vector
	Color palette.Color
	Size  float64
	Life  float64 // starts at 1, dead at or below 0
	Decay float64 // life lost each tick
}

// Opacity maps remaining life straight to draw opacity.
func (p *Particle) Opacity() float64 {
	if p.Life < 0 {
		return 0
	}
	return p.Life
}

// Burst spreads count particles evenly around a ring with a little angular
// jitter, so explosions read as circular without looking stamped.
func Burst(rng *rand.Rand, origin cp.Vector, c palette.Color, count int, speed, size float64) []Particle {
	if count <= 0 {
		return nil
	}
	out := make([]Particle, 0, count)
	jitter := math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + (rng.Float64()*2-1)*jitter
		v := speed * (0.5 + 0.5*rng.Float64())
		out = append(out, Particle{
			Pos:   origin,
			Vel:   cp.Vector{X: math.Cos(angle) * v, Y: math.Sin(angle) * v},
			Color: c,
			Size:  size,
			Life:  1,
			Decay: burstDecay,
		})
	}
	return out
}

// Scatter sprays count particles in fully random directions with randomized
// size and lifetime. Used for impacts where a ring would look too tidy.
func Scatter(rng *rand.Rand, origin cp.Vector, c palette.Color, count int, speed float64) []Particle {
	if count <= 0 {
		return nil
	}
	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		v := speed * (0.3 + 0.7*rng.Float64())
		out = append(out, Particle{
			Pos:   origin,
			Vel:   cp.Vector{X: math.Cos(angle) * v, Y: math.Sin(angle) * v},
			Color: c,
			Size:  scatterSizeMin + rng.Float64()*(scatterSizeMax-scatterSizeMin),
			Life:  1,
			Decay: scatterDecayMin + rng.Float64()*(scatterDecayMax-scatterDecayMin),
		})
	}
	return out
}

// System owns every live particle and compacts the backing slice in place
// each tick, so steady-state emission does not allocate.
type System struct {
	items []Particle
}

func NewSystem() *System {
	return &System{}
}

// Add appends freshly generated particles to the system.
func (s *System) Add(ps []Particle) {
	s.items = append(s.items, ps...)
}

// Update advances every particle by dt seconds and drops the dead ones.
func (s *System) Update(dt float64) {
	writeIdx := 0
	for i := range s.items {
		p := s.items[i]
		p.Pos = p.Pos.Add(p.Vel.Mult(dt))
		p.Vel = p.Vel.Mult(drag)
		p.Life -= p.Decay
		if p.Life <= 0 {
			continue
		}
		s.items[writeIdx] = p
		writeIdx++
	}
	s.items = s.items[:writeIdx]
}

// Each visits every live particle in emission order.
func (s *System) Each(fn func(*Particle)) {
	for i := range s.items {
		fn(&s.items[i])
	}
}

func (s *System) Len() int {
	return len(s.items)
}

// Clear drops all particles, live or not.
func (s *System) Clear() {
	s.items = s.items[:0]
}
