package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"waveline/internal/core"
	"waveline/internal/motion"
	"waveline/pkg/wave"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	presetName := flag.String("preset", "default", "preset supplying the base configuration")
	width := flag.Float64("width", 900, "surface width")
	height := flag.Float64("height", 400, "surface height")
	frames := flag.Int("frames", 60, "number of frames to compute")
	dt := flag.Float64("dt", 1000.0/60, "milliseconds between frames")
	csv := flag.Bool("csv", false, "force CSV output even on a terminal")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	var sources kvList
	flag.Var(&sources, "source", "ripple in x,y,time,intensity form (repeatable)")
	flag.Parse()

	preset, ok := core.Lookup(*presetName)
	if !ok {
		log.Fatalf("unknown preset %q (have %s)", *presetName, strings.Join(core.Presets(), ", "))
	}

	cfg := preset.Wave
	params := wave.DefaultWaveParams()
	for _, kv := range overrides {
		key, value, found := strings.Cut(kv, "=")
		if !found || !wave.ApplyOverride(&cfg, &params, key, value) {
			log.Fatalf("invalid override %q", kv)
		}
	}
	if cfg.MaxLinger < cfg.MinLinger {
		cfg.MaxLinger = cfg.MinLinger
	}

	e := wave.New()
	e.Configure(cfg)
	e.SetWaveParams(params.Freq, params.Speed, params.Amp)
	e.Resize(float32(*width), float32(*height))
	for _, spec := range sources {
		r, err := parseSource(spec)
		if err != nil {
			log.Fatal(err)
		}
		e.AddSource(float32(r.X), float32(r.Y), float32(r.Time), float32(r.Intensity))
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	live := !*csv && term.IsTerminal(int(os.Stdout.Fd()))
	tracker := motion.NewTracker(preset.Motion)
	var heights []float32
	for f := 0; f < *frames; f++ {
		now := float32(float64(f) * *dt)
		heights = e.Compute(now, float32(tracker.Phase()))
		tracker.Advance()
		if live {
			fmt.Fprintf(out, "%5d %6.0fms %2d %s\n", f, now, e.Len(), sparkline(heights, e.CenterY(), cfg.GlobalAmp))
		}
	}
	if live {
		return
	}
	fmt.Fprintln(out, "index,x,height")
	for j, h := range heights {
		fmt.Fprintf(out, "%d,%g,%g\n", j, float32(j)*e.Step(), h)
	}
}
