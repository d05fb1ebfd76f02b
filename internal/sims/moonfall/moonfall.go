// Package moonfall runs the particle-trail demo: motes of light drift off
// a moon disc, fall toward the staff attractor and charge it up.
package moonfall

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"emberfall/internal/config"
	"emberfall/internal/core"
	"emberfall/internal/particles"
)

// Config holds the moonfall scene parameters.
type Config struct {
	Width      int
	Height     int
	ViewWidth  float64
	ViewHeight float64
	MoonPos    r3.Vec
	MoonRadius float64
	EmitChance float64
	FullCharge int
	StepHz     float64
	Particles  particles.Config
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     630,
		ViewWidth:  1.56,
		ViewHeight: 0.96,
		MoonPos:    r3.Vec{X: 0.2, Y: 0.084, Z: 30},
		MoonRadius: 0.28,
		EmitChance: 0.05,
		FullCharge: 100,
		StepHz:     60,
		Particles:  particles.DefaultConfig(),
	}
}

// fromConfig populates a Config from the loaded file, keeping defaults for
// values that are absent or out of range.
func fromConfig(cfg *config.Config) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	mc := cfg.Moonfall
	if mc.Width > 0 {
		c.Width = mc.Width
	}
	if mc.Height > 0 {
		c.Height = mc.Height
	}
	if mc.ViewWidth > 0 {
		c.ViewWidth = mc.ViewWidth
	}
	if mc.ViewHeight > 0 {
		c.ViewHeight = mc.ViewHeight
	}
	c.MoonPos = r3.Vec{X: mc.Moon.X, Y: mc.Moon.Y, Z: mc.Moon.Z}
	if mc.MoonRadius > 0 {
		c.MoonRadius = mc.MoonRadius
	}
	if mc.EmitChance >= 0 && mc.EmitChance <= 1 {
		c.EmitChance = mc.EmitChance
	}
	if mc.FullCharge > 0 {
		c.FullCharge = mc.FullCharge
	}
	if mc.StepHz > 0 {
		c.StepHz = mc.StepHz
	}
	c.Particles = particlesFromConfig(cfg.Particles)
	return c
}

func particlesFromConfig(pc config.ParticlesConfig) particles.Config {
	c := particles.DefaultConfig()
	c.Attractor = r3.Vec{X: pc.Attractor.X, Y: pc.Attractor.Y, Z: pc.Attractor.Z}
	c.Drift = r3.Vec{X: pc.Drift.X, Y: pc.Drift.Y, Z: pc.Drift.Z}
	if pc.TargetJitter > 0 {
		c.TargetJitter = pc.TargetJitter
	}
	if pc.Gravity > 0 {
		c.Gravity = pc.Gravity
	}
	if pc.MaxSpeed > 0 {
		c.MaxSpeed = pc.MaxSpeed
	}
	if pc.OrbitDistance > 0 {
		c.OrbitDistance = pc.OrbitDistance
	}
	if pc.OrbitTime > 0 {
		c.OrbitTime = pc.OrbitTime
	}
	if pc.TrailLenMin >= 2 {
		c.TrailLenMin = pc.TrailLenMin
	}
	if pc.TrailLenMax >= c.TrailLenMin {
		c.TrailLenMax = pc.TrailLenMax
	}
	if pc.TrailWidthMin > 0 {
		c.TrailWidthMin = pc.TrailWidthMin
	}
	if pc.TrailWidthMax >= c.TrailWidthMin {
		c.TrailWidthMax = pc.TrailWidthMax
	}
	if pc.OutwardVelMin > 0 {
		c.OutwardVelMin = pc.OutwardVelMin
	}
	if pc.OutwardVelMax >= c.OutwardVelMin {
		c.OutwardVelMax = pc.OutwardVelMax
	}
	if pc.ControlLead > 0 {
		c.ControlLead = pc.ControlLead
	}
	if pc.ControlSide > 0 {
		c.ControlSide = pc.ControlSide
	}
	if pc.WidthFloor > 0 && pc.WidthFloor < 1 {
		c.WidthFloor = pc.WidthFloor
	}
	if pc.LightBlueMin > 0 {
		c.LightBlueMin = pc.LightBlueMin
	}
	if pc.LightBlueMax >= c.LightBlueMin {
		c.LightBlueMax = pc.LightBlueMax
	}
	return c
}

// Scene owns the particle system, the random emitter and the charge
// counter derived from completed particles.
type Scene struct {
	cfg       Config
	system    *particles.System
	rng       *core.RNG
	completed int
}

// New creates a moonfall scene. Spawned particles are repelled from the
// moon disc, so the moon position doubles as the particle repulsor.
func New(cfg Config) (*Scene, error) {
	cfg.Particles.Repulsor = cfg.MoonPos
	return &Scene{
		cfg:    cfg,
		system: particles.NewSystem(cfg.Particles, 1),
		rng:    core.NewRNG(1),
	}, nil
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "moonfall" }

// Size returns the logical pixel dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// StepSize returns the fixed simulation step in seconds.
func (s *Scene) StepSize() float64 { return 1 / s.cfg.StepHz }

// View returns the world-space dimensions of the camera plane.
func (s *Scene) View() (w, h float64) { return s.cfg.ViewWidth, s.cfg.ViewHeight }

// Reset discards all particles, the charge and reseeds the emitter.
func (s *Scene) Reset(seed int64) {
	s.system.Reset(seed)
	s.rng = core.NewRNG(seed ^ 0x6d6f6f6e)
	s.completed = 0
}

// Tick emits the occasional particle off the moon disc, advances the
// system and accumulates completed particles into the charge counter.
func (s *Scene) Tick(dt float64) {
	if s.rng.Chance(s.cfg.EmitChance) {
		s.system.Spawn(s.randomMoonPoint())
	}
	s.completed += s.system.Tick(dt)
}

// randomMoonPoint picks a uniformly distributed point inside the moon
// disc at the moon's depth.
func (s *Scene) randomMoonPoint() r3.Vec {
	radius := s.cfg.MoonRadius * math.Sqrt(s.rng.Float64())
	angle := s.rng.Float64() * 2 * math.Pi
	return r3.Vec{
		X: s.cfg.MoonPos.X + radius*math.Cos(angle),
		Y: s.cfg.MoonPos.Y + radius*math.Sin(angle),
		Z: s.cfg.MoonPos.Z,
	}
}

// SpawnAt spawns a particle at normalized screen coordinates in [0, 1],
// mapped through the camera view onto the moon's depth plane.
func (s *Scene) SpawnAt(nx, ny float64) {
	s.system.Spawn(r3.Vec{
		X: (nx - 0.5) * s.cfg.ViewWidth,
		Y: (0.5 - ny) * s.cfg.ViewHeight,
		Z: s.cfg.MoonPos.Z,
	})
}

// ChargeLevel reports the staff charge as a fraction in [0, 1), wrapping
// every FullCharge completed particles.
func (s *Scene) ChargeLevel() float64 {
	return float64(s.completed%s.cfg.FullCharge) / float64(s.cfg.FullCharge)
}

// Particles reports the live particle count.
func (s *Scene) Particles() int { return s.system.Len() }

// Trails yields the renderable trail polylines.
func (s *Scene) Trails() iter.Seq[particles.Polyline] { return s.system.Trails() }

// Lights yields the point-light descriptors.
func (s *Scene) Lights() iter.Seq[particles.Light] { return s.system.Lights() }

func init() {
	core.Register("moonfall", func(cfg *config.Config) (core.Scene, error) {
		return New(fromConfig(cfg))
	})
}
