package core

import "emberfall/internal/config"

// Size describes the logical pixel dimensions of a scene.
type Size struct {
	W int
	H int
}

// Scene defines the minimal contract a demo simulation must implement.
// Tick advances the simulation by exactly one fixed step of StepSize
// seconds; the caller owns the frame-step scheduling.
type Scene interface {
	Name() string
	Size() Size
	StepSize() float64
	Reset(seed int64)
	Tick(dt float64)
}

// Factory constructs a Scene from the loaded configuration.
type Factory func(cfg *config.Config) (Scene, error)

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}
