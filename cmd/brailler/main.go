package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/codegangsta/cli"
	"github.com/disintegration/imaging"
	"github.com/kevin-cantwell/brailler"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var log = newLogger(os.Stderr, false)

var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "config",
		Usage: "Read defaults from a `FILE` (.yaml, .yml or .toml). Flags override it.",
	},
	cli.StringFlag{
		Name:  "fit,f",
		Usage: "`FIT` = 80,25 scales down the image to fit 80 columns and 25 lines. Defaults to the terminal size.",
	},
	cli.StringFlag{
		Name:  "size",
		Usage: "`SIZE` of small, medium or large shrinks the fitted image to 70%, 85% or 100%.",
		Value: "large",
	},
	cli.StringFlag{
		Name:  "method,m",
		Usage: "`METHOD` of dither (flow), poisson (scatter) or threshold places the dots.",
		Value: "dither",
	},
	cli.StringFlag{
		Name:  "kernel,k",
		Usage: "Error diffusion `KERNEL` of the dither method: " + kernelNames() + ".",
		Value: "floyd-steinberg",
	},
	cli.StringFlag{
		Name:  "color",
		Usage: "`MODE` of mono or color. Color mode averages the image colors of every glyph.",
		Value: "mono",
	},
	cli.StringFlag{
		Name:  "format",
		Usage: "Output `FORMAT` of auto, plain, ansi or html. Auto writes ansi for color mode on a terminal.",
		Value: "auto",
	},
	cli.Float64Flag{
		Name:  "brightness,b",
		Usage: "`GAIN` = 1.0 gives the original luminance. Less than 1.0 darkens and more than 1.0 lightens the image.",
		Value: 1.0,
	},
	cli.IntFlag{
		Name:  "threshold,t",
		Usage: "Fixed `THRESHOLD` between 1 and 255. Turns off automatic contrast stretching and thresholding.",
	},
	cli.BoolFlag{
		Name:  "no-auto",
		Usage: "Turns off automatic contrast stretching and thresholding, using a threshold of 128.",
	},
	cli.BoolFlag{
		Name:  "invert,i",
		Usage: "Inverts the dots.",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "`SEED` of the poisson method, for repeatable output.",
	},
	cli.Float64Flag{
		Name:  "gamma,g",
		Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
		Value: 1.0,
	},
	cli.Float64Flag{
		Name:  "contrast,c",
		Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
	},
	cli.Float64Flag{
		Name:  "sharpen,s",
		Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
	},
	cli.Float64Flag{
		Name:  "sigmoid-midpoint",
		Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
		Value: 0.5,
	},
	cli.Float64Flag{
		Name:  "sigmoid-factor",
		Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
	},
	cli.BoolFlag{
		Name:  "play,p",
		Usage: "Animates gifs in the terminal. CTRL-C to quit.",
	},
	cli.BoolFlag{
		Name:  "verbose,V",
		Usage: "Logs debugging details to stderr. -v prints the version.",
	},
}

func main() {
	app := newApp()
	app.Action = func(c *cli.Context) error {
		opts, err := resolveOptions(c)
		if err != nil {
			return err
		}
		log = newLogger(os.Stderr, opts.Verbose)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, c.Args().First(), opts)
	}
	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// newApp declares the command without an action. The cli package adds its
// own "version, v" flag since Version is set.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "brailler"
	app.Usage = "A command-line tool for rendering images as unicode braille mosaics."
	app.UsageText = "1) brailler [options] [file]\n" +
		"   2) brailler [options] < [file]"
	app.Authors = []cli.Author{{Name: "Kevin Cantwell", Email: "kevin.cantwell@gmail.com"}}
	app.Flags = flags
	return app
}

func run(ctx context.Context, input string, opts options) error {
	var reader io.Reader = os.Stdin
	if input != "" {
		file, err := os.Open(input)
		if err != nil {
			return err
		}
		defer file.Close()
		reader = file
	}

	cols, lines, err := parseFit(opts.Fit)
	if err != nil {
		return err
	}
	if cols == 0 && lines == 0 {
		cols, lines, err = getTerminalSize()
		if err != nil {
			log.Debugf("no terminal size (%v), fitting to 80,25", err)
			cols, lines = 80, 25 // Small, but a pretty standard default
		}
	}

	r, err := newRenderer(opts, cols, lines, isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		return err
	}
	stdout := colorable.NewColorableStdout()
	if opts.Play {
		err := r.play(ctx, reader, stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return r.render(reader, stdout)
}

// renderer carries a run's settings from the decoded image to the output.
type renderer struct {
	opts        options
	cfg         brailler.Config
	format      brailler.Format
	cols, lines int
}

func newRenderer(opts options, cols, lines int, tty bool) (*renderer, error) {
	if _, ok := sizeQuality[strings.ToLower(opts.Size)]; !ok {
		return nil, fmt.Errorf("size must be small, medium or large, got %q", opts.Size)
	}
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	format, err := opts.format(tty)
	if err != nil {
		return nil, err
	}
	if opts.Gamma <= 0 {
		log.Warnf("gamma must be positive, ignoring %v", opts.Gamma)
		opts.Gamma = 1
	}
	return &renderer{opts: opts, cfg: cfg, format: format, cols: cols, lines: lines}, nil
}

func (r *renderer) render(in io.Reader, out io.Writer) error {
	img, kind, err := image.Decode(in)
	if err != nil {
		return err
	}
	log.Debugf("decoded %s image of %dx%d", kind, img.Bounds().Dx(), img.Bounds().Dy())

	start := time.Now()
	img = r.prepare(img)
	g, err := brailler.ConvertImage(img, r.cfg)
	if err != nil {
		return err
	}
	log.Debugf("converted %dx%d pixels to %dx%d cells with %v in %v",
		g.Dx, g.Dy, g.Width, g.Height, r.cfg.Method, time.Since(start))

	return brailler.NewEncoder(out, brailler.WithFormat(r.format)).Encode(g)
}

func (r *renderer) play(ctx context.Context, in io.Reader, out io.Writer) error {
	giff, err := gif.DecodeAll(in)
	if err != nil {
		return err
	}
	log.Debugf("decoded gif of %d frames, loop count %d", len(giff.Image), giff.LoopCount)
	if giff.LoopCount == 0 {
		log.Infof("looping forever, CTRL-C to quit")
	}

	player := brailler.NewGIFPlayer(out, nil, r.cfg, brailler.WithFormat(r.format))
	player.Filter = brailler.FilterFunc(r.prepare)
	return player.Play(ctx, giff)
}

// prepare resizes the image to fit and applies the image adjustments.
func (r *renderer) prepare(img image.Image) image.Image {
	b := img.Bounds()
	width, height, err := targetSize(b.Dx(), b.Dy(), r.cols, r.lines, r.opts.Size)
	if err == nil && (width != b.Dx() || height != b.Dy()) {
		img = resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	}

	o := r.opts
	if o.Gamma != 1 {
		img = imaging.AdjustGamma(img, o.Gamma)
	}
	if o.Sharpen > 0 {
		img = imaging.Sharpen(img, o.Sharpen)
	}
	if o.Contrast != 0 {
		img = imaging.AdjustContrast(img, o.Contrast)
	}
	if o.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, o.SigmoidMidpoint, o.SigmoidFactor)
	}
	return img
}

func kernelNames() string {
	names := make([]string, 0, len(brailler.Kernels))
	for name := range brailler.Kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
