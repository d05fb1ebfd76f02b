package particles

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"emberfall/internal/core"
)

const testDT = 1.0 / 60

func TestTrailBoundedWhileFalling(t *testing.T) {
	cfg := DefaultConfig()
	rng := core.NewRNG(1)
	p := newParticle(r3.Vec{X: 0.3, Y: 0.3, Z: 30}, &cfg, rng)

	for i := 0; i < 1000; i++ {
		p.Tick(testDT, &cfg)
		if p.phase != phaseFalling {
			break
		}
		if p.trail.Len() > p.trail.Cap() {
			t.Fatalf("trail length %d exceeded capacity %d", p.trail.Len(), p.trail.Cap())
		}
	}
}

func TestTransitionWithinOrbitDistanceTakesOneTick(t *testing.T) {
	cfg := DefaultConfig()
	rng := core.NewRNG(9)

	for trial := 0; trial < 100; trial++ {
		vel := r3.Vec{
			X: rng.FloatRange(-5, 5),
			Y: rng.FloatRange(-5, 5),
			Z: rng.FloatRange(-5, 5),
		}
		if r3.Norm(vel) < 0.01 {
			continue
		}
		p := &Particle{
			Position:   r3.Add(cfg.Attractor, r3.Vec{X: 0.1, Y: 0.1}),
			Velocity:   vel,
			target:     cfg.Attractor,
			trail:      NewTrail(10),
			trailWidth: 0.01,
		}

		p.Tick(testDT, &cfg)
		if p.phase != phaseEnding {
			t.Fatalf("trial %d: particle inside orbit distance did not transition", trial)
		}

		// The sideways control offset must bend the path toward the
		// target, never away from it.
		offset := r3.Sub(p.end.c2, p.end.c1)
		toTarget := r3.Sub(p.target, p.end.c1)
		if r3.Dot(offset, toTarget) < 0 {
			t.Fatalf("trial %d: control2 offset points away from target (dot=%v)",
				trial, r3.Dot(offset, toTarget))
		}
	}
}

func TestFallingOutsideOrbitDistanceStaysFalling(t *testing.T) {
	cfg := DefaultConfig()
	p := &Particle{
		Position:   r3.Add(cfg.Attractor, r3.Vec{Z: 10}),
		Velocity:   r3.Vec{Z: -1},
		target:     cfg.Attractor,
		trail:      NewTrail(10),
		trailWidth: 0.01,
	}

	p.Tick(testDT, &cfg)
	if p.phase != phaseFalling {
		t.Fatal("particle far from target left the falling phase")
	}
	if p.trail.Len() != 1 {
		t.Fatalf("trail length = %d after one falling tick, expected 1", p.trail.Len())
	}
}

func TestFallingClampsSpeed(t *testing.T) {
	cfg := DefaultConfig()
	p := &Particle{
		Position:   r3.Vec{Z: 1},
		Velocity:   r3.Vec{X: 100},
		target:     r3.Vec{},
		trail:      NewTrail(10),
		trailWidth: 0.01,
	}

	p.Tick(testDT, &cfg)
	if speed := r3.Norm(p.Velocity); speed > cfg.MaxSpeed+1e-9 {
		t.Fatalf("speed %v exceeds cap %v", speed, cfg.MaxSpeed)
	}
}

func TestEndingFollowsBezierAndTapersWidth(t *testing.T) {
	cfg := DefaultConfig()
	p := &Particle{
		Position:   r3.Vec{X: 1},
		Velocity:   r3.Vec{X: -1},
		target:     r3.Vec{},
		trail:      NewTrail(10),
		trailWidth: 0.01,
	}
	p.trail.PushFront(Vertex{Pos: p.Position, Width: p.trailWidth})
	p.phase = phaseEnding
	p.end = endPath{
		start: p.Position,
		c1:    r3.Vec{X: 0.9},
		c2:    r3.Vec{X: 0.5, Y: 0.1},
	}

	lenBefore := p.trail.Len()
	var lastWidth = math.Inf(1)
	for i := 0; i < 60; i++ {
		p.Tick(testDT, &cfg)
		if p.end.t >= 1 {
			break
		}
		if p.trail.Len() != lenBefore {
			t.Fatalf("trail grew during the end path: %d -> %d", lenBefore, p.trail.Len())
		}
		want := bezier(p.end.start, p.end.c1, p.end.c2, p.target, p.end.t)
		if r3.Norm(r3.Sub(p.Position, want)) > 1e-12 {
			t.Fatalf("tick %d: position off the Bézier path", i)
		}
		w := p.trail.At(0).Width
		if w > lastWidth+1e-12 {
			t.Fatalf("tick %d: trail width grew from %v to %v", i, lastWidth, w)
		}
		if floor := p.trailWidth * cfg.WidthFloor; w < floor-1e-12 {
			t.Fatalf("tick %d: width %v dropped below floor %v", i, w, floor)
		}
		lastWidth = w
	}
}

func TestFinishedPathDecaysTrailAtDoubleRate(t *testing.T) {
	cfg := DefaultConfig()
	p := &Particle{
		Position:   r3.Vec{X: 1},
		target:     r3.Vec{},
		trail:      NewTrail(8),
		trailWidth: 0.01,
	}
	for i := 0; i < 7; i++ {
		p.trail.PushFront(Vertex{Pos: r3.Vec{X: float64(i)}, Width: 0.01})
	}
	p.phase = phaseEnding
	p.end.t = 1

	pos := p.Position
	for want := 5; want >= 0; want -= 2 {
		p.Tick(testDT, &cfg)
		if got := p.trail.Len(); got != max(want, 0) {
			t.Fatalf("trail length = %d, expected %d", got, want)
		}
		if p.Position != pos {
			t.Fatal("position moved after the end path finished")
		}
	}
	if !p.Done() {
		t.Fatal("particle with empty trail not reported as done")
	}
}

func TestBezierEndpoints(t *testing.T) {
	p0 := r3.Vec{X: 1, Y: 2, Z: 3}
	p1 := r3.Vec{X: 4, Y: 0, Z: -1}
	p2 := r3.Vec{X: -2, Y: 5, Z: 0}
	p3 := r3.Vec{X: 0, Y: 0, Z: 0}

	if got := bezier(p0, p1, p2, p3, 0); r3.Norm(r3.Sub(got, p0)) > 1e-12 {
		t.Fatalf("bezier(0) = %v, expected start %v", got, p0)
	}
	if got := bezier(p0, p1, p2, p3, 1); r3.Norm(r3.Sub(got, p3)) > 1e-12 {
		t.Fatalf("bezier(1) = %v, expected end %v", got, p3)
	}

	// De Casteljau must agree with the polynomial form.
	tt := 0.37
	u := 1 - tt
	want := r3.Add(
		r3.Add(r3.Scale(u*u*u, p0), r3.Scale(3*u*u*tt, p1)),
		r3.Add(r3.Scale(3*u*tt*tt, p2), r3.Scale(tt*tt*tt, p3)),
	)
	if got := bezier(p0, p1, p2, p3, tt); r3.Norm(r3.Sub(got, want)) > 1e-9 {
		t.Fatalf("bezier(%v) = %v, expected %v", tt, got, want)
	}
}

func TestDepthWidthModulation(t *testing.T) {
	// Far positions thin out; the divisor is floored so near positions
	// never blow up.
	far := depthWidth(r3.Vec{Z: 30}, 1)
	near := depthWidth(r3.Vec{Z: 0}, 1)
	if far >= near {
		t.Fatalf("far width %v not thinner than near width %v", far, near)
	}
	if got := depthWidth(r3.Vec{Z: -40}, 1); got != 2 {
		t.Fatalf("floored width = %v, expected 2", got)
	}
}
