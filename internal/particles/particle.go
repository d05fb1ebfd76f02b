package particles

import (
	"gonum.org/v1/gonum/spatial/r3"

	"emberfall/internal/core"
)

// phase tags the motion model a particle is currently following.
type phase uint8

const (
	phaseFalling phase = iota
	phaseEnding
)

// endPath carries the cubic-Bézier approach synthesized when a particle
// crosses the orbit distance. Only meaningful while the phase is ending;
// the fourth control point is the particle's target.
type endPath struct {
	start, c1, c2 r3.Vec
	t             float64
}

// Particle is a single trail-emitting body attracted toward a perturbed
// copy of the attractor point.
type Particle struct {
	Position   r3.Vec
	Velocity   r3.Vec
	LightColor [3]float64

	target     r3.Vec
	phase      phase
	end        endPath
	trail      *Trail
	trailWidth float64
	strip      Polyline
}

// newParticle spawns a falling particle at pos. Velocity pushes away from
// the repulsor for an outward curving start; trail capacity, base width,
// target perturbation and light color are drawn from the config ranges.
func newParticle(pos r3.Vec, cfg *Config, rng *core.RNG) *Particle {
	length := rng.IntRange(cfg.TrailLenMin, cfg.TrailLenMax)
	width := rng.FloatRange(cfg.TrailWidthMin, cfg.TrailWidthMax)

	out := r3.Sub(pos, cfg.Repulsor)
	vel := r3.Add(r3.Scale(rng.FloatRange(cfg.OutwardVelMin, cfg.OutwardVelMax), out), cfg.Drift)

	jitter := r3.Vec{
		X: rng.FloatRange(-cfg.TargetJitter, cfg.TargetJitter),
		Y: rng.FloatRange(-cfg.TargetJitter, cfg.TargetJitter),
		Z: rng.FloatRange(-cfg.TargetJitter, cfg.TargetJitter),
	}

	p := &Particle{
		Position:   pos,
		Velocity:   vel,
		LightColor: [3]float64{0.2, 0.2, rng.FloatRange(cfg.LightBlueMin, cfg.LightBlueMax)},
		target:     r3.Add(cfg.Attractor, jitter),
		trail:      NewTrail(length),
		trailWidth: width,
	}
	p.trail.PushFront(Vertex{Pos: pos, Width: width})
	return p
}

// Tick advances the particle state machine by one fixed step and rebuilds
// the renderable strip when the trail holds at least two samples.
func (p *Particle) Tick(dt float64, cfg *Config) {
	switch p.phase {
	case phaseFalling:
		p.tickFalling(dt, cfg)
	case phaseEnding:
		p.tickEnding(dt, cfg)
	}

	if p.trail.Len() >= 2 {
		p.rebuildStrip()
	} else {
		p.strip = p.strip[:0]
	}
}

// Done reports whether the trail has fully decayed; the system removes the
// particle on the next reap.
func (p *Particle) Done() bool { return p.trail.Len() == 0 }

// Strip returns the current renderable polyline, newest to oldest, with
// depth-modulated widths. Empty until the trail holds two samples.
func (p *Particle) Strip() Polyline { return p.strip }

// Light returns the point light descriptor at the particle's position.
// The radius tracks the same depth modulation as the trail width.
func (p *Particle) Light() Light {
	return Light{
		Pos:    p.Position,
		Color:  p.LightColor,
		Radius: 3 * depthWidth(p.Position, 1),
	}
}

func (p *Particle) tickFalling(dt float64, cfg *Config) {
	d := r3.Sub(p.Position, p.target)
	if r3.Norm2(d) <= cfg.OrbitDistance*cfg.OrbitDistance {
		p.beginEnding(cfg)
		return
	}

	// Newton's law with masses folded into the strength constant:
	// a = Gravity / r^2, pointed at the target.
	accel := cfg.Gravity / r3.Norm2(d)
	p.Velocity = r3.Sub(p.Velocity, r3.Scale(dt*dt*accel, r3.Unit(d)))

	if speed := r3.Norm(p.Velocity); speed > cfg.MaxSpeed {
		p.Velocity = r3.Scale(cfg.MaxSpeed/speed, p.Velocity)
	}

	p.Position = r3.Add(p.Position, r3.Scale(dt, p.Velocity))
	p.trail.PushFront(Vertex{Pos: p.Position, Width: p.trailWidth})
}

// beginEnding synthesizes the Bézier approach path at the transition
// instant. c1 leads the current position along the velocity; c2 offsets c1
// sideways, with the offset sign flipped when it points away from the
// target so the turn always bends toward it.
func (p *Particle) beginEnding(cfg *Config) {
	start := p.Position
	c1 := r3.Add(start, r3.Scale(cfg.ControlLead, p.Velocity))

	side := r3.Cross(r3.Unit(p.Velocity), r3.Vec{Z: 1})
	if r3.Norm2(side) < 1e-12 {
		side = r3.Vec{Y: 1}
	} else {
		side = r3.Unit(side)
	}
	offset := r3.Scale(cfg.ControlSide*r3.Norm(p.Velocity), side)
	if r3.Dot(offset, r3.Sub(p.target, c1)) < 0 {
		offset = r3.Scale(-1, offset)
	}

	p.phase = phaseEnding
	p.end = endPath{start: start, c1: c1, c2: r3.Add(c1, offset)}
}

func (p *Particle) tickEnding(dt float64, cfg *Config) {
	p.end.t += dt / cfg.OrbitTime
	if p.end.t >= 1 {
		// Path finished: consume the trail at double rate instead of
		// moving the particle.
		p.trail.PopBack()
		p.trail.PopBack()
		return
	}

	pos := bezier(p.end.start, p.end.c1, p.end.c2, p.target, p.end.t)
	t4 := p.end.t * p.end.t * p.end.t * p.end.t
	width := p.trailWidth * (1 - t4)
	if floor := p.trailWidth * cfg.WidthFloor; width < floor {
		width = floor
	}

	p.Position = pos
	p.trail.ReplaceFront(Vertex{Pos: pos, Width: width})
}

// rebuildStrip regenerates the renderable polyline from the trail, newest
// to oldest, applying the depth-based width modulation per vertex.
func (p *Particle) rebuildStrip() {
	n := p.trail.Len()
	if cap(p.strip) < n {
		p.strip = make(Polyline, 0, p.trail.Cap())
	}
	p.strip = p.strip[:0]
	for i := 0; i < n; i++ {
		v := p.trail.At(i)
		p.strip = append(p.strip, Vertex{Pos: v.Pos, Width: depthWidth(v.Pos, v.Width)})
	}
}

// bezier evaluates a cubic Bézier via De Casteljau's repeated
// interpolation.
func bezier(p0, p1, p2, p3 r3.Vec, t float64) r3.Vec {
	a := lerpVec(p0, p1, t)
	b := lerpVec(p1, p2, t)
	c := lerpVec(p2, p3, t)
	ab := lerpVec(a, b, t)
	bc := lerpVec(b, c, t)
	return lerpVec(ab, bc, t)
}

func lerpVec(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
