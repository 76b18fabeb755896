//go:build ebiten

package app

import (
	"image/color"

	"waveline/internal/core"
	"waveline/internal/motion"
	"waveline/internal/render"
	"waveline/internal/sonify"
	"waveline/internal/ui"
	"waveline/pkg/wave"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudWidth = 240

// Game adapts the wave engine to the ebiten.Game interface.
type Game struct {
	engine  *wave.Engine
	tracker *motion.Tracker
	clock   *core.Clock
	rng     *core.RNG
	hud     *ui.HUD
	overlay *ui.Overlay
	audio   *sonify.Player

	lineWidth float32
	lineColor color.Color
	bgColor   color.Color

	outerW, outerH int
	viewW, viewH   int
	showHUD        bool

	heights []float32
	points  []render.Point
}

// New constructs a Game for the provided preset. audio may be nil.
func New(preset core.Preset, cfg *Config, audio *sonify.Player) *Game {
	e := wave.New()
	e.Configure(preset.Wave)
	g := &Game{
		engine:    e,
		tracker:   motion.NewTracker(preset.Motion),
		clock:     core.NewClock(),
		rng:       core.NewRNG(cfg.Seed),
		overlay:   ui.NewOverlay(),
		audio:     audio,
		lineWidth: preset.LineWidth,
		lineColor: color.RGBA{R: 230, G: 230, B: 235, A: 255},
		bgColor:   color.RGBA{R: 10, G: 10, B: 14, A: 255},
		showHUD:   cfg.HUD,
	}
	g.hud = ui.NewHUD(e, "Wave Controls", hudWidth)
	g.randomize()
	return g
}

func (g *Game) randomize() {
	p := wave.RandomWaveParams(g.rng)
	g.engine.SetWaveParams(p.Freq, p.Speed, p.Amp)
}

// Update handles input, keeps the engine sized to the view and computes the
// next frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.syncSize()
	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(g.viewW)
	}
	g.trackPointer()

	g.heights = g.engine.Compute(float32(g.clock.Millis()), float32(g.tracker.Phase()))
	g.tracker.Advance()
	g.audio.Update(g.engine.Displacement(), g.engine.CenterY())
	return nil
}

// syncSize resizes the engine when the window or HUD visibility changed.
func (g *Game) syncSize() {
	w, h := g.outerW, g.outerH
	if g.showHUD {
		w -= g.hud.Width()
	}
	if w < 0 {
		w = 0
	}
	if w == g.viewW && h == g.viewH {
		return
	}
	g.viewW, g.viewH = w, h
	g.engine.Resize(float32(w), float32(h))
	g.heights = nil
}

func (g *Game) trackPointer() {
	mx, my := ebiten.CursorPosition()
	now := g.clock.Millis()
	x, y := float64(mx), float64(my)
	inside := mx >= 0 && my >= 0 && mx < g.viewW && my < g.viewH
	switch {
	case !inside:
		if g.tracker.Over() {
			g.tracker.Leave()
		}
	case !g.tracker.Over():
		if g.tracker.Enter(x, y, now) {
			g.randomize()
		}
	default:
		if r, ok := g.tracker.Move(x, y, now); ok {
			g.engine.AddSource(float32(r.X), float32(r.Y), float32(r.Time), float32(r.Intensity))
		}
	}
}

// Draw strokes the wave line and any enabled overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)
	if g.heights != nil {
		g.points = render.AppendPolyline(g.points[:0], g.heights, g.engine.Step(), float32(g.viewW), g.engine.CenterY())
		for i := 1; i < len(g.points); i++ {
			a, b := g.points[i-1], g.points[i]
			vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, g.lineWidth, g.lineColor, true)
		}
	}
	g.overlay.Draw(screen, g.engine)
	if g.showHUD {
		g.hud.Draw(screen, g.viewW, g.viewH)
	}
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outerW, g.outerH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
