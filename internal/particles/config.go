package particles

import "gonum.org/v1/gonum/spatial/r3"

// Config holds the tunables for particle motion, trails and lights.
// Components receive it at construction; there are no package globals.
type Config struct {
	// Attractor is the point particles gravitate toward. Each particle
	// targets the attractor perturbed by a random offset within
	// TargetJitter on every axis.
	Attractor    r3.Vec
	TargetJitter float64

	// Repulsor is the point freshly spawned particles are pushed away
	// from; spawn velocity is a random multiple of the offset from it
	// plus the constant Drift.
	Repulsor                     r3.Vec
	OutwardVelMin, OutwardVelMax float64
	Drift                        r3.Vec

	// Gravity is the inverse-square attraction strength; MaxSpeed caps
	// the velocity magnitude.
	Gravity  float64
	MaxSpeed float64

	// OrbitDistance is the distance to the target below which a falling
	// particle switches to its scripted end path, which then takes
	// OrbitTime seconds to traverse.
	OrbitDistance float64
	OrbitTime     float64

	// ControlLead and ControlSide scale the Bézier control points: c1
	// leads the transition position by ControlLead times the velocity,
	// c2 offsets c1 sideways by ControlSide times the speed.
	ControlLead float64
	ControlSide float64

	// Trail capacity and base width ranges, drawn per particle at spawn.
	TrailLenMin, TrailLenMax     int
	TrailWidthMin, TrailWidthMax float64

	// WidthFloor is the fraction of the base width the end-path taper
	// never drops below.
	WidthFloor float64

	// Light color blue channel range; red and green are fixed at 0.2.
	LightBlueMin, LightBlueMax float64
}

// DefaultConfig returns the tuning used by the moonfall demo.
func DefaultConfig() Config {
	return Config{
		Attractor:     r3.Vec{X: 0.012096, Y: 0.095921, Z: -0.1},
		TargetJitter:  0.05,
		Repulsor:      r3.Vec{X: 0.2, Y: 0.084, Z: 30},
		OutwardVelMin: 0.1,
		OutwardVelMax: 0.3,
		Drift:         r3.Vec{Z: -5},
		Gravity:       10000,
		MaxSpeed:      10,
		OrbitDistance: 0.25,
		OrbitTime:     1.5,
		ControlLead:   0.3,
		ControlSide:   0.15,
		TrailLenMin:   80,
		TrailLenMax:   160,
		TrailWidthMin: 0.005,
		TrailWidthMax: 0.015,
		WidthFloor:    0.25,
		LightBlueMin:  0.3,
		LightBlueMax:  0.4,
	}
}
