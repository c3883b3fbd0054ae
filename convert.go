package brailler

import (
	"fmt"
	"image"
	"image/draw"
	"io"
)

/*
Convert renders a row-major, non-premultiplied RGBA buffer of a width by
height image as a braille mosaic. Every 2x4 block of pixels becomes one braille
glyph, see https://en.wikipedia.org/wiki/Braille_Patterns

The image is reduced to its luminance (scaled by cfg.Brightness). With
cfg.AutoCalibrate the luminance is contrast stretched and Otsu's method picks
the threshold; otherwise cfg.Threshold is used. The field is then inverted and
handed to the dot generator chosen by cfg.Method, and the dots are packed into
cells, averaging source colors per cell in Color mode.

A zero width or height gives an empty grid. A buffer whose length is not
width*height*4 is rejected with ErrBufferSize before it is read.
*/
func Convert(pix []byte, width, height int, cfg Config) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if want := width * height * 4; len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrBufferSize, len(pix), want, width, height)
	}
	if width == 0 || height == 0 {
		return &Grid{}, nil
	}

	field := Luminance(pix, width, height, cfg.Brightness)
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	// The threshold must come from the stretched field before it is inverted.
	if cfg.AutoCalibrate {
		Stretch(field)
		threshold = Otsu(field)
	}
	Invert(field)

	var dots []Dot
	switch cfg.Method {
	case MethodDither:
		dots = Dither(field, threshold, cfg.Kernel)
	case MethodPoisson:
		sampler := cfg.Poisson
		dots = sampler.Sample(field)
	case MethodThreshold:
		dots = ThresholdDots(field, threshold)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, cfg.Method)
	}

	var g *Grid
	switch cfg.ColorMode {
	case Mono:
		g = Pack(dots, width, height)
	case Color:
		g = PackColor(dots, pix, width, height)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownColorMode, cfg.ColorMode)
	}
	if cfg.Invert {
		g.invert()
	}
	return g, nil
}

// ConvertImage converts any image with Convert. The image is first drawn
// onto a non-premultiplied RGBA canvas, so its bounds need not start at (0, 0).
func ConvertImage(img image.Image, cfg Config) (*Grid, error) {
	canvas := toNRGBA(img)
	b := canvas.Bounds()
	// Sub-images keep the tail of their parent's buffer.
	return Convert(canvas.Pix[:b.Dx()*b.Dy()*4], b.Dx(), b.Dy(), cfg)
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == image.ZP && n.Stride == b.Dx()*4 {
		return n
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)
	return canvas
}

// Encode converts img with DefaultConfig and writes the glyphs to w, one line
// per row of cells.
func Encode(w io.Writer, img image.Image) error {
	g, err := ConvertImage(img, DefaultConfig())
	if err != nil {
		return err
	}
	return NewEncoder(w).Encode(g)
}
