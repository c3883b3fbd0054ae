package brailler

import (
	"image"
)

// Percentiles used as the black and white points of Stretch. Clipping a
// percent at either end keeps a few outliers from flattening the stretch.
const (
	lowPercentile  = 0.01
	highPercentile = 0.99
)

// Stretch remaps the field so that its 1st percentile sample becomes 0 and
// its 99th percentile sample becomes 255, clamping whatever falls outside.
// The field is modified in place and returned. A field whose two percentiles
// are equal (flat images, empty images) is returned untouched.
func Stretch(field *image.Gray) *image.Gray {
	n := len(field.Pix)
	if n == 0 {
		return field
	}

	var hist [256]int
	for _, v := range field.Pix {
		hist[v]++
	}
	black := percentile(&hist, int(float64(n)*lowPercentile))
	white := percentile(&hist, int(float64(n)*highPercentile))
	if white == black {
		return field
	}

	scale := 255 / float64(white-black)
	for i, v := range field.Pix {
		field.Pix[i] = clamp((float64(v) - float64(black)) * scale)
	}
	return field
}

// percentile returns the sample at index rank of the sorted field, reading it
// off the histogram instead of sorting a copy.
func percentile(hist *[256]int, rank int) uint8 {
	seen := 0
	for v, count := range hist {
		seen += count
		if rank < seen {
			return uint8(v)
		}
	}
	return 255
}
