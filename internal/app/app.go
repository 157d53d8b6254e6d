//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/ui"
	"lifegrid/internal/view"
)

var (
	backgroundColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	gridLineColor   = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	cellColor       = color.RGBA{R: 245, G: 245, B: 245, A: 255}
)

// Grid lines disappear below this zoom; they would be subpixel noise.
const gridLineMinZoom = 0.5

// Game drives the engine from ebiten's update loop: it polls input,
// forwards resolved cell coordinates and commands to the engine, and
// advances generations on the pacer's cadence. The engine itself never
// sees screen space or timers.
type Game struct {
	engine  *life.Engine
	cam     *view.Camera
	pacer   *core.Pacer
	painter *render.Painter
	hud     *ui.HUD
	cfg     config.Config

	prevMouseX int
	prevMouseY int
}

// New constructs the game around an engine.
func New(cfg config.Config, engine *life.Engine) *Game {
	return &Game{
		engine:  engine,
		cam:     view.NewCamera(cfg.Width, cfg.Height),
		pacer:   core.NewPacer(),
		painter: render.NewPainter(),
		hud:     ui.NewHUD(),
		cfg:     cfg,
	}
}

// Update polls input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.SetPaused(!g.engine.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.engine.SpeedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.engine.SlowDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.cam.Reset(g.cfg.Width, g.cfg.Height)
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		// Same configured seed, same soup: reproducible across runs.
		g.engine.Seed(pattern.Soup(pattern.SoupConfig{
			Radius:  g.cfg.Soup.Radius,
			Density: g.cfg.Soup.Density,
		}, g.cfg.Seed))
	}

	g.handleMouse()

	if !g.engine.Paused() && g.pacer.Due(g.engine.Rate()) {
		g.engine.Advance()
	}
	return nil
}

// handleMouse covers panning, zooming, and paint strokes. The right
// button owns the camera; a paint stroke in progress is abandoned the
// moment the right button goes down.
func (g *Game) handleMouse() {
	cx, cy := ebiten.CursorPosition()
	rightDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.prevMouseX, g.prevMouseY = cx, cy
	}
	if rightDown {
		g.cam.Pan(float64(cx-g.prevMouseX), float64(cy-g.prevMouseY))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.ZoomAt(float64(cx), float64(cy), wy)
	}

	switch {
	case rightDown && g.engine.Stroking():
		g.engine.EndStroke()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !rightDown:
		g.engine.BeginStroke(g.cam.CellAt(float64(cx), float64(cy), g.cfg.CellSize))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.engine.Stroking():
		g.engine.ContinueStroke(g.cam.CellAt(float64(cx), float64(cy), g.cfg.CellSize))
	case g.engine.Stroking():
		g.engine.EndStroke()
	}

	g.prevMouseX, g.prevMouseY = cx, cy
}

// Draw renders the world and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.cam.Zoom > gridLineMinZoom {
		g.painter.GridLines(screen, g.cam, g.cfg.CellSize, gridLineColor)
	}
	g.painter.Cells(screen, g.engine, g.cam, g.cfg.CellSize, cellColor)
	g.hud.Draw(screen, ui.Status{
		Paused:     g.engine.Paused(),
		Rate:       g.engine.Rate(),
		Generation: g.engine.Generation(),
		Population: g.engine.Population(),
		Zoom:       g.cam.Zoom,
	})
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until the user quits.
func Run(cfg config.Config) error {
	engine := life.New()
	engine.SetRate(time.Duration(cfg.Rate * float64(time.Second)))

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(New(cfg, engine)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
