// Package bonfire runs the heat-field fire demo.
package bonfire

import (
	"emberfall/internal/config"
	"emberfall/internal/core"
	"emberfall/internal/fire"
)

// Config holds the bonfire scene parameters.
type Config struct {
	Width       int
	Height      int
	CoolingRate float64
	StepHz      float64
	Scale       int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 250, Height: 150, CoolingRate: 1.0 / 120, StepHz: 20, Scale: 4}
}

// fromConfig populates a Config from the loaded file, keeping defaults for
// values that are absent or out of range.
func fromConfig(cfg *config.Config) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	fc := cfg.Fire
	if fc.Width != 0 {
		c.Width = fc.Width
	}
	if fc.Height != 0 {
		c.Height = fc.Height
	}
	if fc.CoolingRate > 0 {
		c.CoolingRate = fc.CoolingRate
	}
	if fc.StepHz > 0 {
		c.StepHz = fc.StepHz
	}
	if fc.Scale > 0 {
		c.Scale = fc.Scale
	}
	return c
}

// Scene adapts a fire.Field to the core.Scene contract.
type Scene struct {
	cfg   Config
	field *fire.Field
}

// New creates a bonfire scene. Degenerate grid dimensions are rejected.
func New(cfg Config) (*Scene, error) {
	field, err := fire.New(cfg.Width, cfg.Height, cfg.CoolingRate)
	if err != nil {
		return nil, err
	}
	return &Scene{cfg: cfg, field: field}, nil
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "bonfire" }

// Size returns the logical pixel dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// StepSize returns the fixed simulation step in seconds.
func (s *Scene) StepSize() float64 { return 1 / s.cfg.StepHz }

// PreferredScale returns the pixel scale the demo looks best at.
func (s *Scene) PreferredScale() int { return s.cfg.Scale }

// Reset reinitializes the field with the provided seed.
func (s *Scene) Reset(seed int64) { s.field.Reset(seed) }

// Tick advances the field by one generation.
func (s *Scene) Tick(dt float64) { s.field.Propagate() }

// PixelSize returns the dimensions of the materialized color buffer.
func (s *Scene) PixelSize() core.Size { return core.Size{W: s.field.Width(), H: s.field.Height()} }

// Pixels fills dst with the current frame's RGBA colors.
func (s *Scene) Pixels(dst []byte) { s.field.Pixels(dst) }

func init() {
	core.Register("bonfire", func(cfg *config.Config) (core.Scene, error) {
		return New(fromConfig(cfg))
	})
}
