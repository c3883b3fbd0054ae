package main

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeQuality scales the fitted image down to trade detail for speed.
var sizeQuality = map[string]float64{
	"small":  0.7,
	"medium": 0.85,
	"large":  1.0,
}

// parseFit parses "COLS,LINES". Either may be zero.
func parseFit(s string) (cols, lines int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("fit option must be comma separated, got %q", s)
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil || cols < 0 {
		return 0, 0, fmt.Errorf("fit columns must be a non-negative integer, got %q", parts[0])
	}
	if lines, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil || lines < 0 {
		return 0, 0, fmt.Errorf("fit lines must be a non-negative integer, got %q", parts[1])
	}
	return cols, lines, nil
}

// scalar returns the factor that shrinks a dx by dy image to fit cols by
// lines braille cells, keeping one line free for the prompt. Images are
// never scaled up. A zero cols or lines leaves that axis unconstrained.
func scalar(dx, dy, cols, lines int) float64 {
	if dx <= 0 || dy <= 0 {
		return 1
	}
	// Multiply cols by 2 since each braille symbol is 2 pixels wide
	// Multiply lines by 4 since each braille symbol is 4 pixels high
	scaleX := float64(cols*2) / float64(dx)
	scaleY := float64((lines-1)*4) / float64(dy)

	var scale float64
	switch {
	case cols == 0 && lines <= 1:
		scale = 1
	case cols == 0:
		scale = scaleY
	case lines <= 1:
		scale = scaleX
	case scaleX < scaleY:
		scale = scaleX
	default:
		scale = scaleY
	}
	if scale > 1.0 {
		return 1.0
	}
	return scale
}

// targetSize returns the pixel size to resize a dx by dy image to.
func targetSize(dx, dy, cols, lines int, size string) (width, height int, err error) {
	quality, ok := sizeQuality[strings.ToLower(size)]
	if !ok {
		return 0, 0, fmt.Errorf("size must be small, medium or large, got %q", size)
	}
	scale := scalar(dx, dy, cols, lines) * quality
	width, height = int(float64(dx)*scale), int(float64(dy)*scale)
	if width < 1 && dx > 0 {
		width = 1
	}
	if height < 1 && dy > 0 {
		height = 1
	}
	return width, height, nil
}
