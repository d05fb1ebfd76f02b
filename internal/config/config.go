// Package config provides configuration loading and access for the demos.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Stepper   StepperConfig   `yaml:"stepper"`
	Fire      FireConfig      `yaml:"fire"`
	Moonfall  MoonfallConfig  `yaml:"moonfall"`
	Particles ParticlesConfig `yaml:"particles"`
}

// Vec3 is a 3D vector as it appears in the configuration file.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// StepperConfig holds fixed-timestep scheduling parameters.
type StepperConfig struct {
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"`
}

// FireConfig holds heat-field parameters for the bonfire scene.
type FireConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	CoolingRate float64 `yaml:"cooling_rate"`
	StepHz      float64 `yaml:"step_hz"`
	Scale       int     `yaml:"scale"`
}

// MoonfallConfig holds scene-level parameters for the moonfall demo.
type MoonfallConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
	Moon       Vec3    `yaml:"moon"`
	MoonRadius float64 `yaml:"moon_radius"`
	EmitChance float64 `yaml:"emit_chance"`
	FullCharge int     `yaml:"full_charge"`
	StepHz     float64 `yaml:"step_hz"`
}

// ParticlesConfig holds particle motion and trail parameters.
type ParticlesConfig struct {
	Attractor     Vec3    `yaml:"attractor"`
	TargetJitter  float64 `yaml:"target_jitter"`
	Gravity       float64 `yaml:"gravity"`
	MaxSpeed      float64 `yaml:"max_speed"`
	OrbitDistance float64 `yaml:"orbit_distance"`
	OrbitTime     float64 `yaml:"orbit_time"`
	TrailLenMin   int     `yaml:"trail_len_min"`
	TrailLenMax   int     `yaml:"trail_len_max"`
	TrailWidthMin float64 `yaml:"trail_width_min"`
	TrailWidthMax float64 `yaml:"trail_width_max"`
	OutwardVelMin float64 `yaml:"outward_vel_min"`
	OutwardVelMax float64 `yaml:"outward_vel_max"`
	Drift         Vec3    `yaml:"drift"`
	ControlLead   float64 `yaml:"control_lead"`
	ControlSide   float64 `yaml:"control_side"`
	WidthFloor    float64 `yaml:"width_floor"`
	LightBlueMin  float64 `yaml:"light_blue_min"`
	LightBlueMax  float64 `yaml:"light_blue_max"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps values that would break the simulations outright.
func (c *Config) normalize() {
	if c.Stepper.MaxStepsPerFrame < 1 {
		c.Stepper.MaxStepsPerFrame = 4
	}
	if c.Particles.TrailLenMin < 2 {
		c.Particles.TrailLenMin = 2
	}
	if c.Particles.TrailLenMax < c.Particles.TrailLenMin {
		c.Particles.TrailLenMax = c.Particles.TrailLenMin
	}
	if c.Particles.TrailWidthMax < c.Particles.TrailWidthMin {
		c.Particles.TrailWidthMax = c.Particles.TrailWidthMin
	}
	if c.Fire.Scale < 1 {
		c.Fire.Scale = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
