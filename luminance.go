package brailler

import (
	"image"
)

// Luminance converts a row-major RGBA buffer to a grayscale field using
// 0.299 R + 0.587 G + 0.114 B. The luminance is multiplied by gain before it
// is clamped to [0,255] and truncated. A gain of zero or less means 1.
//
// pix must hold width*height*4 bytes; Convert checks this before calling.
func Luminance(pix []byte, width, height int, gain float64) *image.Gray {
	if gain <= 0 {
		gain = 1
	}
	field := image.NewGray(image.Rect(0, 0, width, height))
	for i := range field.Pix {
		r, g, b := float64(pix[i*4]), float64(pix[i*4+1]), float64(pix[i*4+2])
		// Explicit conversions keep the compiler from fusing the
		// multiply-adds, which would change the truncated result.
		lum := float64(0.299*r) + float64(0.587*g) + float64(0.114*b)
		field.Pix[i] = clamp(lum * gain)
	}
	return field
}

// Invert replaces every sample v with 255-v, in place.
func Invert(field *image.Gray) *image.Gray {
	for i, v := range field.Pix {
		field.Pix[i] = 255 - v
	}
	return field
}

// clamp truncates v into a byte, saturating at 0 and 255.
func clamp(v float64) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
