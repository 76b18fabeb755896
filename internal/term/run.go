package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"waveline/internal/core"
	"waveline/internal/sonify"
)

// Run drives the view until the user quits. Events are pumped on a separate
// goroutine; the engine is only touched from the loop below.
func Run(screen tcell.Screen, v *View, fps int, audio *sonify.Player) {
	pace := core.NewFixedStep(fps)
	ticker := time.NewTicker(pace.Interval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !pace.ShouldStep() {
				continue
			}
			v.Frame()
			audio.Update(v.Engine().Displacement(), v.Engine().CenterY())
			v.Draw()
		}
	}
}
