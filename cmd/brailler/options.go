package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/brailler"
	"gopkg.in/yaml.v2"
)

// options are the resolved settings of one run. A config file supplies
// defaults and flags given on the command line override them.
type options struct {
	Fit    string `yaml:"fit" toml:"fit"`
	Size   string `yaml:"size" toml:"size"`
	Method string `yaml:"method" toml:"method"`
	Kernel string `yaml:"kernel" toml:"kernel"`
	Color  string `yaml:"color" toml:"color"`
	Format string `yaml:"format" toml:"format"`

	Brightness float64 `yaml:"brightness" toml:"brightness"`
	Threshold  int     `yaml:"threshold" toml:"threshold"`
	NoAuto     bool    `yaml:"no-auto" toml:"no-auto"`
	Invert     bool    `yaml:"invert" toml:"invert"`
	Seed       int64   `yaml:"seed" toml:"seed"`

	Gamma           float64 `yaml:"gamma" toml:"gamma"`
	Contrast        float64 `yaml:"contrast" toml:"contrast"`
	Sharpen         float64 `yaml:"sharpen" toml:"sharpen"`
	SigmoidMidpoint float64 `yaml:"sigmoid-midpoint" toml:"sigmoid-midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid-factor" toml:"sigmoid-factor"`

	Verbose bool `yaml:"verbose" toml:"verbose"`
	Play    bool `yaml:"-" toml:"-"`
}

func defaultOptions() options {
	return options{
		Size:            "large",
		Method:          "dither",
		Kernel:          "floyd-steinberg",
		Color:           "mono",
		Format:          "auto",
		Brightness:      1,
		Gamma:           1,
		SigmoidMidpoint: 0.5,
	}
}

// loadOptionsFile overlays the settings of a yaml or toml file, picked by
// extension, onto o. Keys missing from the file keep their values.
func loadOptionsFile(o *options, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, o); err != nil {
			return fmt.Errorf("config %s: %v", path, err)
		}
		return nil
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.UnmarshalStrict(data, o); err != nil {
			return fmt.Errorf("config %s: %v", path, err)
		}
		return nil
	}
	return fmt.Errorf("config %s: unknown config format, want .yaml, .yml or .toml", path)
}

// resolveOptions builds the options of a run from defaults, the config file
// named by --config and the flags that were set.
func resolveOptions(c *cli.Context) (options, error) {
	o := defaultOptions()
	if path := c.String("config"); path != "" {
		if err := loadOptionsFile(&o, path); err != nil {
			return o, err
		}
	}

	strs := map[string]*string{
		"fit": &o.Fit, "size": &o.Size, "method": &o.Method,
		"kernel": &o.Kernel, "color": &o.Color, "format": &o.Format,
	}
	for name, v := range strs {
		if c.IsSet(name) {
			*v = c.String(name)
		}
	}
	floats := map[string]*float64{
		"brightness": &o.Brightness, "gamma": &o.Gamma, "contrast": &o.Contrast,
		"sharpen": &o.Sharpen, "sigmoid-midpoint": &o.SigmoidMidpoint,
		"sigmoid-factor": &o.SigmoidFactor,
	}
	for name, v := range floats {
		if c.IsSet(name) {
			*v = c.Float64(name)
		}
	}
	bools := map[string]*bool{
		"no-auto": &o.NoAuto, "invert": &o.Invert, "verbose": &o.Verbose, "play": &o.Play,
	}
	for name, v := range bools {
		if c.IsSet(name) {
			*v = c.Bool(name)
		}
	}
	if c.IsSet("threshold") {
		o.Threshold = c.Int("threshold")
	}
	if c.IsSet("seed") {
		o.Seed = c.Int64("seed")
	}
	return o, nil
}

// config translates the options into a pipeline configuration.
func (o options) config() (brailler.Config, error) {
	cfg := brailler.DefaultConfig()
	var err error
	if cfg.Method, err = brailler.ParseMethod(o.Method); err != nil {
		return cfg, err
	}
	if cfg.ColorMode, err = brailler.ParseColorMode(o.Color); err != nil {
		return cfg, err
	}
	if cfg.Kernel, err = brailler.ParseKernel(o.Kernel); err != nil {
		return cfg, err
	}
	if o.Brightness < 0 {
		return cfg, fmt.Errorf("brightness must not be negative, got %v", o.Brightness)
	}
	cfg.Brightness = o.Brightness

	// A fixed threshold turns auto-calibration off.
	if o.Threshold != 0 || o.NoAuto {
		if o.Threshold < 0 || o.Threshold > 255 {
			return cfg, fmt.Errorf("threshold must be within 0 and 255, got %d", o.Threshold)
		}
		cfg.AutoCalibrate = false
		cfg.Threshold = uint8(o.Threshold)
	}
	cfg.Invert = o.Invert
	if o.Seed != 0 {
		cfg.Poisson.Rand = rand.New(rand.NewSource(o.Seed))
	}
	return cfg, nil
}

// format resolves the output format. "auto" writes ANSI colors for color
// mode on a terminal and plain glyphs otherwise.
func (o options) format(tty bool) (brailler.Format, error) {
	if strings.ToLower(o.Format) != "auto" {
		return brailler.ParseFormat(o.Format)
	}
	mode, err := brailler.ParseColorMode(o.Color)
	if err != nil {
		return brailler.Plain, err
	}
	if mode == brailler.Color && tty {
		return brailler.ANSI, nil
	}
	return brailler.Plain, nil
}
