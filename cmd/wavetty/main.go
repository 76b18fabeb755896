package main

import (
	"flag"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"waveline/internal/core"
	"waveline/internal/sonify"
	"waveline/internal/term"
)

func main() {
	presetName := flag.String("preset", "default", "preset name ("+strings.Join(core.Presets(), ", ")+")")
	fps := flag.Int("fps", 60, "frames per second")
	seed := flag.Int64("seed", 42, "seed for wave parameter randomisation")
	audio := flag.Bool("audio", false, "play a tone that follows ripple activity")
	flag.Parse()

	preset, ok := core.Lookup(*presetName)
	if !ok {
		log.Fatalf("unknown preset %q", *presetName)
	}

	// Audio starts before the screen takes over the terminal so its log
	// output stays readable.
	var player *sonify.Player
	if *audio {
		p, err := sonify.NewPlayer()
		if err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			player = p
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	view := term.NewView(screen, preset, core.NewClock(), *seed)
	term.Run(screen, view, *fps, player)
}
