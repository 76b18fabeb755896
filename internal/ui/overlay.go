//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"waveline/internal/render"
	"waveline/pkg/wave"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const coverageStripHeight = 6

// Overlay draws optional debugging visuals on top of the wave line.
type Overlay struct {
	showSources  bool
	showCoverage bool

	coverageImg *ebiten.Image
	coverageBuf []byte
	tint        color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{tint: color.RGBA{R: 90, G: 180, B: 255, A: 255}}
}

// Update toggles overlay layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSources = !o.showSources
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCoverage = !o.showCoverage
	}
}

// Draw paints the enabled layers for the engine's last frame.
func (o *Overlay) Draw(screen *ebiten.Image, e *wave.Engine) {
	if o.showSources {
		o.drawSources(screen, e)
	}
	if o.showCoverage {
		o.drawCoverage(screen, e)
	}
}

func (o *Overlay) drawSources(screen *ebiten.Image, e *wave.Engine) {
	for _, s := range e.Sources() {
		alpha := uint8(40 + 200*s.Strength)
		vector.DrawFilledCircle(screen, s.X, s.Y, 2+6*s.Strength, color.NRGBA{R: 255, G: 140, B: 60, A: alpha}, true)
	}
	label := fmt.Sprintf("ripples %d/%d", e.Len(), wave.MaxSources)
	text.Draw(screen, label, basicfont.Face7x13, 8, 16, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func (o *Overlay) drawCoverage(screen *ebiten.Image, e *wave.Engine) {
	cov := e.Coverage()
	if len(cov) == 0 {
		return
	}
	if o.coverageImg == nil || o.coverageImg.Bounds().Dx() != len(cov) {
		o.coverageImg = ebiten.NewImage(len(cov), 1)
	}
	o.coverageBuf = render.CoveragePixels(o.coverageBuf, cov, o.tint)
	o.coverageImg.WritePixels(o.coverageBuf)

	_, h := e.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(e.Step()), coverageStripHeight)
	op.GeoM.Translate(0, float64(h)-coverageStripHeight)
	screen.DrawImage(o.coverageImg, op)
}
