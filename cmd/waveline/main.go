//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"waveline/internal/app"
	"waveline/internal/core"
	"waveline/internal/sonify"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	preset, ok := core.Lookup(cfg.Preset)
	if !ok {
		log.Fatalf("unknown preset %q", cfg.Preset)
	}

	var player *sonify.Player
	if cfg.Audio {
		p, err := sonify.NewPlayer()
		if err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			player = p
			defer player.Close()
		}
	}

	game := app.New(preset, cfg, player)

	ebiten.SetWindowTitle("waveline: " + preset.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
