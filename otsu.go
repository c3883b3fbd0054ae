package brailler

import (
	"image"
)

// Otsu returns the threshold that maximizes the between-class variance of the
// field's histogram, splitting it into samples at or below t and above t.
//
// Ties keep the lowest t. The scan stops as soon as the foreground class is
// empty, so a field with a single populated bin yields 0, as does any field
// whose mass sits entirely in bin 255.
func Otsu(field *image.Gray) uint8 {
	var hist [256]int
	for _, v := range field.Pix {
		hist[v]++
	}

	total := len(field.Pix)
	sum := 0
	for i, count := range hist {
		sum += i * count
	}

	var (
		sumB, wB  int
		varMax    float64
		threshold uint8
	)
	for t, count := range hist {
		wB += count
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += t * count

		mB := float64(sumB) / float64(wB)
		mF := float64(sum-sumB) / float64(wF)
		varBetween := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if varBetween > varMax {
			varMax = varBetween
			threshold = uint8(t)
		}
	}
	return threshold
}
