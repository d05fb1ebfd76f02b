//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"emberfall/internal/app"
	"emberfall/internal/config"
	"emberfall/internal/core"
	_ "emberfall/internal/sims/bonfire"
	_ "emberfall/internal/sims/moonfall"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneName := flag.String("scene", "moonfall", "scene to run")
	cfgPath := flag.String("config", "", "optional YAML config file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	factory, ok := core.Scenes()[*sceneName]
	if !ok {
		log.Fatalf("unknown scene %q", *sceneName)
	}

	scene, err := factory(cfg)
	if err != nil {
		log.Fatalf("create scene %q: %v", *sceneName, err)
	}
	scene.Reset(*seed)

	game := app.New(scene, cfg, *seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("emberfall — " + scene.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
