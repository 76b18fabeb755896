package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"waveline/internal/core"
)

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time { return c.t }

func newTestView(t *testing.T, preset string) (*View, tcell.SimulationScreen, *stepClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 10)

	p, ok := core.Lookup(preset)
	if !ok {
		t.Fatalf("no preset %q", preset)
	}
	sc := &stepClock{t: time.Unix(0, 0)}
	return NewView(screen, p, core.NewClockFunc(sc.now), 1), screen, sc
}

func TestViewSizesEngine(t *testing.T) {
	v, _, _ := newTestView(t, "default")
	e := v.Engine()
	if e.NumPoints() != 108 {
		t.Fatalf("num points %d, want 108", e.NumPoints())
	}
	if e.CenterY() != 80 {
		t.Fatalf("center %v, want 80", e.CenterY())
	}
}

func TestViewQuitKeys(t *testing.T) {
	v, _, _ := newTestView(t, "default")
	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if v.HandleEvent(ev) {
			t.Fatalf("key %v did not quit", ev.Name())
		}
	}
	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatal("r quit the view")
	}
}

func TestViewMouseAddsRipples(t *testing.T) {
	v, _, clk := newTestView(t, "default")
	v.HandleEvent(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	if v.Engine().Len() != 0 {
		t.Fatal("entering the surface added a ripple")
	}
	clk.t = clk.t.Add(16 * time.Millisecond)
	v.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if v.Engine().Len() != 1 {
		t.Fatalf("%d ripples after a move, want 1", v.Engine().Len())
	}
	src := v.Engine().Sources()[0]
	if src.X != 84 || src.Y != 88 || src.CreatedAt != 16 {
		t.Fatalf("ripple %+v", src)
	}
	if !(src.Intensity > 0) {
		t.Fatalf("intensity %v, want positive", src.Intensity)
	}

	v.HandleEvent(tcell.NewEventMouse(-1, -1, tcell.ButtonNone, tcell.ModNone))
	clk.t = clk.t.Add(16 * time.Millisecond)
	v.HandleEvent(tcell.NewEventMouse(20, 5, tcell.ButtonNone, tcell.ModNone))
	if v.Engine().Len() != 1 {
		t.Fatal("re-entry after leaving added a ripple")
	}
}

func TestViewReducedMotionIgnoresMouse(t *testing.T) {
	v, _, clk := newTestView(t, "reduced-motion")
	v.HandleEvent(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	clk.t = clk.t.Add(16 * time.Millisecond)
	v.HandleEvent(tcell.NewEventMouse(30, 8, tcell.ButtonNone, tcell.ModNone))
	if v.Engine().Len() != 0 {
		t.Fatal("reduced motion added a ripple")
	}
}

func TestViewDrawsOneCellPerColumn(t *testing.T) {
	v, screen, _ := newTestView(t, "default")
	v.Draw()
	for x := 0; x < 40; x++ {
		for y := 0; y < 10; y++ {
			if r, _, _, _ := screen.GetContent(x, y); r != ' ' {
				t.Fatalf("cell %d,%d = %q before the first frame", x, y, r)
			}
		}
	}

	v.Frame()
	v.Draw()
	for x := 0; x < 40; x++ {
		drawn := 0
		for y := 0; y < 10; y++ {
			r, _, _, _ := screen.GetContent(x, y)
			switch r {
			case ' ':
			case '▔', '─', '▁':
				drawn++
				if y < 4 || y > 5 {
					t.Fatalf("column %d drawn at row %d, want near the centre", x, y)
				}
			default:
				t.Fatalf("unexpected glyph %q", r)
			}
		}
		if drawn != 1 {
			t.Fatalf("column %d has %d cells, want 1", x, drawn)
		}
	}
}

func TestGlyphFor(t *testing.T) {
	cases := map[float32]rune{16: '▔', 24: '─', 30: '▁'}
	for h, want := range cases {
		if got := glyphFor(h, CellH); got != want {
			t.Fatalf("glyphFor(%v) = %q, want %q", h, got, want)
		}
	}
}
