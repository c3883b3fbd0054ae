package brailler

import (
	"math"
)

// Dot is an ink decision at a point of the pixel grid. Dither places dots on
// integer coordinates. PoissonDisk places them anywhere in the image.
type Dot struct {
	X, Y float64
}

// Cell returns the braille cell containing the dot and the dot's sub-position
// within that cell.
func (d Dot) Cell() (cx, cy, sx, sy int) {
	fx, fy := int(math.Floor(d.X)), int(math.Floor(d.Y))
	return floorDiv(fx, 2), floorDiv(fy, 4), fx - floorDiv(fx, 2)*2, fy - floorDiv(fy, 4)*4
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
