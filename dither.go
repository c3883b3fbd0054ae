package brailler

import (
	"image"

	"github.com/makeworld-the-better-one/dither/v2"
)

// Dither runs error diffusion over the field and returns a dot for every
// pixel that quantizes to ink. Pixels are visited in row-major order and each
// is binarized against threshold: values below it become ink (0), the rest
// become paper (255). The quantization error is pushed to the unvisited
// neighbours named by kernel, dropping whatever falls outside the image.
//
// A nil kernel means dither.FloydSteinberg. The field itself is not changed.
func Dither(field *image.Gray, threshold uint8, kernel dither.ErrorDiffusionMatrix) []Dot {
	if kernel == nil {
		kernel = dither.FloydSteinberg
	}
	width, height := field.Rect.Dx(), field.Rect.Dy()
	spread := spreadOf(kernel)

	errs := make([]float32, len(field.Pix))
	for i, v := range field.Pix {
		errs[i] = float32(v)
	}

	var dots []Dot
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			old := float64(errs[idx])
			var quant float64 = 255
			if old < float64(threshold) {
				quant = 0
				dots = append(dots, Dot{X: float64(x), Y: float64(y)})
			}
			errs[idx] = float32(quant)

			diff := old - quant
			for _, s := range spread {
				nx, ny := x+s.dx, y+s.dy
				if nx < 0 || nx >= width || ny >= height {
					continue
				}
				n := ny*width + nx
				errs[n] = float32(float64(errs[n]) + diff*s.weight)
			}
		}
	}
	return dots
}

// ThresholdDots returns a dot for every pixel of the field below threshold,
// without diffusing any error.
func ThresholdDots(field *image.Gray, threshold uint8) []Dot {
	width := field.Rect.Dx()
	var dots []Dot
	for i, v := range field.Pix {
		if v < threshold {
			dots = append(dots, Dot{X: float64(i % width), Y: float64(i / width)})
		}
	}
	return dots
}

type spreadWeight struct {
	dx, dy int
	weight float64
}

// spreadOf flattens the nonzero entries of an error diffusion matrix into
// offsets from the current pixel. The current pixel sits in the first row,
// just left of its first nonzero entry.
func spreadOf(kernel dither.ErrorDiffusionMatrix) []spreadWeight {
	if len(kernel) == 0 {
		return nil
	}
	cur := 0
	for i, w := range kernel[0] {
		if w != 0 {
			cur = i - 1
			break
		}
	}
	var spread []spreadWeight
	for dy, row := range kernel {
		for col, w := range row {
			if w == 0 || (dy == 0 && col <= cur) {
				continue
			}
			spread = append(spread, spreadWeight{dx: col - cur, dy: dy, weight: float64(w)})
		}
	}
	return spread
}
