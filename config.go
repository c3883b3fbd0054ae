package brailler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/makeworld-the-better-one/dither/v2"
)

// Method selects the dot generator.
type Method int

const (
	// MethodDither diffuses quantization error over the field. Deterministic.
	MethodDither Method = iota
	// MethodPoisson scatters dots with a variable-radius Poisson-disk sampler.
	MethodPoisson
	// MethodThreshold inks every pixel below the threshold, without diffusion.
	MethodThreshold
)

var methodNames = map[Method]string{
	MethodDither:    "dither",
	MethodPoisson:   "poisson",
	MethodThreshold: "threshold",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses a method name. "flow" and "scatter" are accepted as
// aliases of dither and poisson.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dither", "flow", "":
		return MethodDither, nil
	case "poisson", "scatter":
		return MethodPoisson, nil
	case "threshold":
		return MethodThreshold, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ColorMode selects whether cells carry averaged source colors.
type ColorMode int

const (
	Mono ColorMode = iota
	Color
)

func (c ColorMode) String() string {
	switch c {
	case Mono:
		return "mono"
	case Color:
		return "color"
	}
	return fmt.Sprintf("ColorMode(%d)", int(c))
}

// ParseColorMode parses "mono" or "color".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mono", "":
		return Mono, nil
	case "color", "colour":
		return Color, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

// Kernels are the error diffusion matrices ParseKernel knows by name.
var Kernels = map[string]dither.ErrorDiffusionMatrix{
	"floyd-steinberg":       dither.FloydSteinberg,
	"false-floyd-steinberg": dither.FalseFloydSteinberg,
	"jarvis-judice-ninke":   dither.JarvisJudiceNinke,
	"atkinson":              dither.Atkinson,
	"stucki":                dither.Stucki,
	"burkes":                dither.Burkes,
	"sierra":                dither.Sierra,
	"two-row-sierra":        dither.TwoRowSierra,
	"sierra-lite":           dither.SierraLite,
}

// ParseKernel looks up an error diffusion matrix by name. The empty name is
// Floyd-Steinberg.
func ParseKernel(s string) (dither.ErrorDiffusionMatrix, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return dither.FloydSteinberg, nil
	}
	if k, ok := Kernels[name]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
}

// DefaultThreshold is the fixed threshold used without auto-calibration.
const DefaultThreshold = 128

// Config holds the parameters of a conversion. It is passed by value and
// never retained.
type Config struct {
	Method    Method
	ColorMode ColorMode

	// Brightness multiplies the luminance before it is clamped. Zero means 1.
	Brightness float64

	// AutoCalibrate stretches the field's contrast and picks the threshold
	// with Otsu's method. Otherwise Threshold is used as is.
	AutoCalibrate bool
	// Threshold is the fixed threshold. Zero means DefaultThreshold.
	Threshold uint8

	// Kernel is the error diffusion matrix of MethodDither. Nil means
	// Floyd-Steinberg.
	Kernel dither.ErrorDiffusionMatrix

	// Invert flips every dot of the finished grid.
	Invert bool

	// Poisson configures MethodPoisson.
	Poisson PoissonDisk
}

// DefaultConfig returns a config that dithers in mono with auto-calibration.
func DefaultConfig() Config {
	return Config{
		Method:        MethodDither,
		ColorMode:     Mono,
		Brightness:    1,
		AutoCalibrate: true,
		Threshold:     DefaultThreshold,
	}
}

var (
	ErrBufferSize       = errors.New("brailler: pixel buffer does not match dimensions")
	ErrDimensions       = errors.New("brailler: negative dimensions")
	ErrUnknownMethod    = errors.New("brailler: unknown method")
	ErrUnknownColorMode = errors.New("brailler: unknown color mode")
	ErrUnknownKernel    = errors.New("brailler: unknown diffusion kernel")
	ErrUnknownFormat    = errors.New("brailler: unknown format")
)
