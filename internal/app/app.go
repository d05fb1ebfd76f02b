//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"emberfall/internal/config"
	"emberfall/internal/core"
	"emberfall/internal/render"
	"emberfall/internal/ui"
)

// pointerSpawner is implemented by scenes that spawn particles at the
// cursor while the mouse button is held.
type pointerSpawner interface {
	SpawnAt(nx, ny float64)
}

// chargeMeter is implemented by scenes that expose a derived charge level.
type chargeMeter interface {
	ChargeLevel() float64
}

// particleCounter is implemented by scenes that report a live entity count.
type particleCounter interface {
	Particles() int
}

// preferredScaler lets a scene pick the pixel scale it looks best at.
type preferredScaler interface {
	PreferredScale() int
}

// Game adapts a core.Scene to the ebiten.Game interface. The frame rate is
// ebiten's; simulation time is converted into fixed steps by a
// FrameStepper so a slow frame never triggers unbounded catch-up.
type Game struct {
	scene   core.Scene
	stepper *core.FrameStepper
	overlay *ui.Overlay

	firePainter  *render.FirePainter
	trailPainter *render.TrailPainter

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided scene.
func New(scene core.Scene, cfg *config.Config, seed int64) *Game {
	scale := 1
	if ps, ok := scene.(preferredScaler); ok && ps.PreferredScale() > 0 {
		scale = ps.PreferredScale()
	}

	maxSteps := 4
	if cfg != nil && cfg.Stepper.MaxStepsPerFrame > 0 {
		maxSteps = cfg.Stepper.MaxStepsPerFrame
	}
	step := time.Duration(scene.StepSize() * float64(time.Second))

	g := &Game{
		scene:   scene,
		stepper: core.NewFrameStepper(step, maxSteps),
		overlay: ui.NewOverlay(),
		scale:   scale,
		seed:    seed,
	}

	if ps, ok := scene.(render.PixelSource); ok {
		g.firePainter = render.NewFirePainter(ps.PixelSize())
	}
	if ts, ok := scene.(render.TrailSource); ok {
		vw, vh := ts.View()
		size := scene.Size()
		g.trailPainter = render.NewTrailPainter(render.Camera{
			ViewW:   vw,
			ViewH:   vh,
			ScreenW: float64(size.W * scale),
			ScreenH: float64(size.H * scale),
		})
	}
	return g
}

// Reset reinitializes the scene state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation by the fixed steps the
// elapsed frame time paid for.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()

	if spawner, ok := g.scene.(pointerSpawner); ok && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		size := g.scene.Size()
		spawner.SpawnAt(
			float64(x)/float64(size.W*g.scale),
			float64(y)/float64(size.H*g.scale),
		)
	}

	steps := g.stepper.Advance(time.Now())
	if g.paused {
		steps = 0
		if g.tickOnce {
			steps = 1
			g.tickOnce = false
		}
	}
	dt := g.scene.StepSize()
	for i := 0; i < steps; i++ {
		g.scene.Tick(dt)
	}

	g.overlay.SetStatus(g.status())
	return nil
}

func (g *Game) status() string {
	s := fmt.Sprintf("%s | %0.0f fps", g.scene.Name(), ebiten.ActualFPS())
	if pc, ok := g.scene.(particleCounter); ok {
		s += fmt.Sprintf(" | %d particles", pc.Particles())
	}
	if cm, ok := g.scene.(chargeMeter); ok {
		s += fmt.Sprintf(" | charge %3.0f%%", 100*cm.ChargeLevel())
	}
	if g.paused {
		s += " | paused"
	}
	return s
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.firePainter != nil {
		g.firePainter.Blit(screen, g.scene.(render.PixelSource), g.scale)
	}
	if g.trailPainter != nil {
		g.trailPainter.Draw(screen, g.scene.(render.TrailSource))
	}
	if cm, ok := g.scene.(chargeMeter); ok {
		g.drawChargeBar(screen, cm.ChargeLevel())
	}
	g.overlay.Draw(screen)
}

// drawChargeBar renders the staff charge as a thin bar along the bottom.
func (g *Game) drawChargeBar(screen *ebiten.Image, level float64) {
	size := g.scene.Size()
	w := float32(size.W * g.scale)
	h := float32(size.H * g.scale)

	const barH = 6
	vector.DrawFilledRect(screen, 0, h-barH, w, barH,
		color.RGBA{R: 16, G: 16, B: 32, A: 255}, false)
	vector.DrawFilledRect(screen, 0, h-barH, w*float32(level), barH,
		color.RGBA{R: 90, G: 110, B: 220, A: 255}, false)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size()
	return s.W * g.scale, s.H * g.scale
}
