// Package term draws the wave line in a terminal and turns mouse motion over
// the terminal into ripples.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"waveline/internal/core"
	"waveline/internal/motion"
	"waveline/internal/render"
	"waveline/pkg/wave"
)

// Each terminal cell stands in for a block of virtual pixels so the engine
// sees a surface of familiar size.
const (
	CellW = 8
	CellH = 16
)

// View couples an engine to a tcell screen.
type View struct {
	screen  tcell.Screen
	engine  *wave.Engine
	tracker *motion.Tracker
	clock   *core.Clock
	rng     *core.RNG

	cols, rows int
	rowBuf     []int
	heights    []float32
}

// NewView wires an engine configured from preset to screen. The screen must
// already be initialised.
func NewView(screen tcell.Screen, preset core.Preset, clock *core.Clock, seed int64) *View {
	e := wave.New()
	e.Configure(preset.Wave)
	v := &View{
		screen:  screen,
		engine:  e,
		tracker: motion.NewTracker(preset.Motion),
		clock:   clock,
		rng:     core.NewRNG(seed),
	}
	v.randomize()
	v.Resize()
	return v
}

// Engine exposes the underlying engine.
func (v *View) Engine() *wave.Engine { return v.engine }

// Resize matches the engine to the current screen size.
func (v *View) Resize() {
	v.cols, v.rows = v.screen.Size()
	v.engine.Resize(float32(v.cols*CellW), float32(v.rows*CellH))
	v.heights = nil
}

func (v *View) randomize() {
	p := wave.RandomWaveParams(v.rng)
	v.engine.SetWaveParams(p.Freq, p.Speed, p.Amp)
}

// HandleEvent applies a tcell event. It returns false when the user asked to
// quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			v.randomize()
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.Resize()
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		v.pointer(cx, cy)
	}
	return true
}

// pointer converts a cell position to virtual pixels at the cell centre.
func (v *View) pointer(cx, cy int) {
	now := v.clock.Millis()
	x := (float64(cx) + 0.5) * CellW
	y := (float64(cy) + 0.5) * CellH
	if cx < 0 || cy < 0 || cx >= v.cols || cy >= v.rows {
		v.tracker.Leave()
		return
	}
	if !v.tracker.Over() {
		if v.tracker.Enter(x, y, now) {
			v.randomize()
		}
		return
	}
	if r, ok := v.tracker.Move(x, y, now); ok {
		v.engine.AddSource(float32(r.X), float32(r.Y), float32(r.Time), float32(r.Intensity))
	}
}

// Frame computes one frame and advances the phase.
func (v *View) Frame() {
	v.heights = v.engine.Compute(float32(v.clock.Millis()), float32(v.tracker.Phase()))
	v.tracker.Advance()
}

// Draw paints the last computed frame.
func (v *View) Draw() {
	v.screen.Clear()
	if v.heights == nil {
		v.screen.Show()
		return
	}
	v.rowBuf = render.ColumnRows(v.rowBuf, v.heights, v.engine.Step(), v.cols, v.rows, CellW, CellH)
	cov := v.engine.Coverage()
	for c, row := range v.rowBuf {
		if row < 0 {
			continue
		}
		x := float32(c*CellW) + CellW/2
		j := render.SampleAt(x, v.engine.Step(), len(v.heights))
		if j < 0 {
			continue
		}
		level := float32(0)
		if j < len(cov) {
			level = cov[j]
		}
		v.screen.SetContent(c, row, glyphFor(v.heights[j], CellH), nil, styleFor(level))
	}
	v.screen.Show()
}

// glyphFor picks a block glyph by where the height falls inside its cell.
func glyphFor(h float32, cellH float32) rune {
	_, frac := math.Modf(float64(h / cellH))
	switch {
	case frac < 0.33:
		return '▔'
	case frac < 0.66:
		return '─'
	default:
		return '▁'
	}
}

// styleFor brightens the line under active ripples.
func styleFor(coverage float32) tcell.Style {
	if !(coverage > 0) {
		coverage = 0
	} else if coverage > 1 {
		coverage = 1
	}
	base := int32(150)
	g := base + int32(coverage*float32(255-base))
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(base-int32(coverage*100), g, 255))
}
