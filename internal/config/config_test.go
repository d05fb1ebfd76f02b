package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with empty path: %v", err)
	}
	if cfg.Fire.Width != 250 || cfg.Fire.Height != 150 {
		t.Fatalf("default fire grid = %dx%d, want 250x150", cfg.Fire.Width, cfg.Fire.Height)
	}
	if cfg.Moonfall.FullCharge != 100 {
		t.Fatalf("default full charge = %d, want 100", cfg.Moonfall.FullCharge)
	}
	if cfg.Particles.MaxSpeed != 10 {
		t.Fatalf("default max speed = %v, want 10", cfg.Particles.MaxSpeed)
	}
	if cfg.Stepper.MaxStepsPerFrame != 4 {
		t.Fatalf("default max steps per frame = %d, want 4", cfg.Stepper.MaxStepsPerFrame)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	body := "fire:\n  width: 64\nparticles:\n  max_speed: 3.5\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write user config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fire.Width != 64 {
		t.Fatalf("fire width = %d, want user override 64", cfg.Fire.Width)
	}
	if cfg.Particles.MaxSpeed != 3.5 {
		t.Fatalf("max speed = %v, want user override 3.5", cfg.Particles.MaxSpeed)
	}
	// Fields absent from the user file keep their defaults.
	if cfg.Fire.Height != 150 {
		t.Fatalf("fire height = %d, want default 150", cfg.Fire.Height)
	}
	if cfg.Moonfall.EmitChance != 0.05 {
		t.Fatalf("emit chance = %v, want default 0.05", cfg.Moonfall.EmitChance)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestNormalizeClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := "stepper:\n  max_steps_per_frame: 0\nfire:\n  scale: -2\nparticles:\n  trail_len_min: 1\n  trail_len_max: 0\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write user config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Stepper.MaxStepsPerFrame != 4 {
		t.Fatalf("max steps per frame = %d, want clamp to 4", cfg.Stepper.MaxStepsPerFrame)
	}
	if cfg.Fire.Scale != 1 {
		t.Fatalf("fire scale = %d, want clamp to 1", cfg.Fire.Scale)
	}
	if cfg.Particles.TrailLenMin != 2 || cfg.Particles.TrailLenMax != 2 {
		t.Fatalf("trail len = [%d, %d], want clamp to [2, 2]",
			cfg.Particles.TrailLenMin, cfg.Particles.TrailLenMax)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Moonfall.MoonRadius = 0.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if back.Moonfall.MoonRadius != 0.5 {
		t.Fatalf("moon radius = %v after round trip, want 0.5", back.Moonfall.MoonRadius)
	}
}
