package particles

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r3"

	"emberfall/internal/core"
)

// System owns an unordered collection of particles and advances them in
// lockstep on a fixed timestep. It enforces no population cap; callers
// that need one can gate Spawn.
type System struct {
	cfg       Config
	rng       *core.RNG
	particles []*Particle
}

// NewSystem constructs a system with the given tuning and spawn seed.
func NewSystem(cfg Config, seed int64) *System {
	return &System{cfg: cfg, rng: core.NewRNG(seed)}
}

// Spawn appends a new falling particle at the given position.
func (s *System) Spawn(pos r3.Vec) {
	s.particles = append(s.particles, newParticle(pos, &s.cfg, s.rng))
}

// Tick advances every particle by one fixed step, then removes particles
// whose trail has fully decayed. Returns the number removed.
func (s *System) Tick(dt float64) int {
	for _, p := range s.particles {
		p.Tick(dt, &s.cfg)
	}

	live := s.particles[:0]
	for _, p := range s.particles {
		if p.Done() {
			continue
		}
		live = append(live, p)
	}
	removed := len(s.particles) - len(live)
	for i := len(live); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = live
	return removed
}

// Len reports the number of live particles.
func (s *System) Len() int { return len(s.particles) }

// Reset discards all particles and reseeds the spawn RNG.
func (s *System) Reset(seed int64) {
	s.particles = nil
	s.rng = core.NewRNG(seed)
}

// Trails yields one renderable polyline per particle whose trail holds at
// least two samples, ordered newest to oldest. The sequence is lazy and
// restartable; the yielded slices are owned by the particles and valid
// until the next Tick.
func (s *System) Trails() iter.Seq[Polyline] {
	return func(yield func(Polyline) bool) {
		for _, p := range s.particles {
			if len(p.strip) < 2 {
				continue
			}
			if !yield(p.strip) {
				return
			}
		}
	}
}

// Lights yields a point light descriptor for every live particle.
func (s *System) Lights() iter.Seq[Light] {
	return func(yield func(Light) bool) {
		for _, p := range s.particles {
			if !yield(p.Light()) {
				return
			}
		}
	}
}
