package main

import (
	"fmt"
	"strconv"
	"strings"

	"waveline/internal/motion"
)

// parseSource reads a ripple in x,y,time,intensity form.
func parseSource(spec string) (motion.Ripple, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return motion.Ripple{}, fmt.Errorf("source %q: want x,y,time,intensity", spec)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return motion.Ripple{}, fmt.Errorf("source %q: %w", spec, err)
		}
		vals[i] = v
	}
	return motion.Ripple{X: vals[0], Y: vals[1], Time: vals[2], Intensity: vals[3]}, nil
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline draws heights around centerY, with span being the deviation
// mapped to the tallest and shortest glyphs. Screen y grows downward, so
// samples above the resting line get taller glyphs.
func sparkline(heights []float32, centerY, span float32) string {
	if span <= 0 {
		span = 1
	}
	var b strings.Builder
	top := len(sparkLevels) - 1
	for _, h := range heights {
		t := (centerY - h) / (2 * span)
		idx := int((t + 0.5) * float32(top))
		if idx < 0 {
			idx = 0
		} else if idx > top {
			idx = top
		}
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}
