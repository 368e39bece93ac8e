package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/midbel/tickchart"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultWidth  = 300
	defaultHeight = 300
	envPrefix     = "TICKCHART_"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatOps = "ops"
)

type Config struct {
	Width  float64 `yaml:"width" env:"WIDTH,overwrite"`
	Height float64 `yaml:"height" env:"HEIGHT,overwrite"`
	Format string  `yaml:"format" env:"FORMAT,overwrite"`
	Scheme string  `yaml:"scheme" env:"SCHEME,overwrite"`

	Smooth bool `yaml:"smooth" env:"SMOOTH,overwrite"`
	Dashed bool `yaml:"dashed" env:"DASHED,overwrite"`
	Values bool `yaml:"values" env:"VALUES,overwrite"`
	Labels bool `yaml:"labels" env:"LABELS,overwrite"`

	DateColumn  int `yaml:"date-column" env:"DATE_COLUMN,overwrite"`
	ValueColumn int `yaml:"value-column" env:"VALUE_COLUMN,overwrite"`

	Verbose bool `yaml:"verbose" env:"VERBOSE,overwrite"`
}

func defaultConfig() Config {
	return Config{
		Width:       defaultWidth,
		Height:      defaultHeight,
		Format:      FormatSVG,
		ValueColumn: 1,
	}
}

// loadConfig merges the defaults, the YAML file (if any) and the environment
// seen through lookup, in that order.
func loadConfig(ctx context.Context, file string, lookup envconfig.Lookuper) (Config, error) {
	cfg := defaultConfig()
	if file != "" {
		buf, err := os.ReadFile(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
		if err == nil {
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				return cfg, fmt.Errorf("%s: %w", file, err)
			}
		}
	}
	if lookup == nil {
		lookup = envconfig.OsLookuper()
	}
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(envPrefix, lookup),
	})
	if err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

func defineFlags(set *flag.FlagSet) {
	set.String("config", "", "configuration file")
	set.String("file", "", "output file")
	set.String("dir", "", "output directory when multiple files are given")
	set.Float64("width", defaultWidth, "chart width")
	set.Float64("height", defaultHeight, "chart height")
	set.String("format", FormatSVG, "output format (svg, png, ops)")
	set.String("scheme", "", "color scheme (category10, tableau10)")
	set.Bool("smooth", false, "draw a smoothed curve")
	set.Bool("dashed", false, "draw dashed gridlines")
	set.Bool("values", false, "draw value labels")
	set.Bool("labels", false, "draw date labels")
	set.Bool("v", false, "verbose")
}

// overrideConfig applies the flags explicitly given on the command line.
func overrideConfig(cfg *Config, set *flag.FlagSet) {
	set.Visit(func(f *flag.Flag) {
		get, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch v := get.Get().(type) {
		case float64:
			switch f.Name {
			case "width":
				cfg.Width = v
			case "height":
				cfg.Height = v
			}
		case string:
			switch f.Name {
			case "format":
				cfg.Format = v
			case "scheme":
				cfg.Scheme = v
			}
		case bool:
			switch f.Name {
			case "smooth":
				cfg.Smooth = v
			case "dashed":
				cfg.Dashed = v
			case "values":
				cfg.Values = v
			case "labels":
				cfg.Labels = v
			case "v":
				cfg.Verbose = v
			}
		}
	})
}

func flagString(set *flag.FlagSet, name string) string {
	if f := set.Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%gx%g: invalid chart size", c.Width, c.Height)
	}
	switch c.Format {
	case FormatSVG, FormatPNG, FormatOps:
	default:
		return fmt.Errorf("%s: unsupported output format", c.Format)
	}
	_, err := tickchart.SchemePalette(c.Scheme)
	return err
}

func (c Config) Options() tickchart.Options {
	return tickchart.Options{
		DashedGridlines: c.Dashed,
		SmoothedCurve:   c.Smooth,
		ShowValueLabels: c.Values,
		ShowAxisLabels:  c.Labels,
	}
}

func (c Config) Frame() tickchart.Frame {
	return tickchart.NewFrame(c.Width, c.Height)
}

func (c Config) Palette() tickchart.Palette {
	p, err := tickchart.SchemePalette(c.Scheme)
	if err != nil {
		return tickchart.DefaultPalette()
	}
	return p
}

func (c Config) Ext() string {
	if c.Format == FormatOps {
		return "txt"
	}
	return strings.ToLower(c.Format)
}
