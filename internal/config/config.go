// Package config loads the settings of the distplot command from
// defaults, an optional YAML file and DISTPLOT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/distplot"
)

// Global configuration structure.
type Global struct {
	Title  string  `mapstructure:"title" yaml:"title"`
	Width  float64 `mapstructure:"width" yaml:"width"`   // inches
	Height float64 `mapstructure:"height" yaml:"height"` // inches
	Output string  `mapstructure:"output" yaml:"output"`

	// Percentile box of the zoomed view.
	Low  float64 `mapstructure:"low" yaml:"low"`
	High float64 `mapstructure:"high" yaml:"high"`

	BinsFull int `mapstructure:"bins_full" yaml:"bins_full"`
	BinsZoom int `mapstructure:"bins_zoom" yaml:"bins_zoom"`

	FullTitle string `mapstructure:"full_title" yaml:"full_title"`
	ZoomTitle string `mapstructure:"zoom_title" yaml:"zoom_title"`
	XLabel    string `mapstructure:"x_label" yaml:"x_label"`
	YLabel    string `mapstructure:"y_label" yaml:"y_label"`

	// Input CSV files start with a header line.
	Header bool `mapstructure:"header" yaml:"header"`

	// Class limit reports.
	Fixed   bool `mapstructure:"fixed" yaml:"fixed"`
	AllBins bool `mapstructure:"all_bins" yaml:"all_bins"`

	// Aesthetics of points, histogram bars and axes, e.g. color: "#ff0000".
	Point map[string]string `mapstructure:"point" yaml:"point,omitempty"`
	Hist  map[string]string `mapstructure:"hist" yaml:"hist,omitempty"`
	Axis  map[string]string `mapstructure:"axis" yaml:"axis,omitempty"`
}

// Dir is the directory of the default config file, ~/.distplot.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".distplot"), nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. An explicit cfgFile must
// exist; ~/.distplot/config.yaml is optional.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DISTPLOT")
	v.AutomaticEnv()

	d := distplot.DefaultZoomOptions()
	v.SetDefault("title", "")
	v.SetDefault("width", float64(d.Size.Width/vg.Inch))
	v.SetDefault("height", float64(d.Size.Height/vg.Inch))
	v.SetDefault("output", "distplot.png")
	v.SetDefault("low", d.Low)
	v.SetDefault("high", d.High)
	v.SetDefault("bins_full", d.FullBins)
	v.SetDefault("bins_zoom", d.ZoomBins)
	v.SetDefault("full_title", d.FullTitle)
	v.SetDefault("zoom_title", d.ZoomTitle)
	v.SetDefault("x_label", d.XLabel)
	v.SetDefault("y_label", d.YLabel)
	v.SetDefault("header", false)
	v.SetDefault("fixed", false)
	v.SetDefault("all_bins", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// YAML returns c the way it would be stored in a config file.
func (c *Global) YAML() ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return b, nil
}

// Theme returns the configured aesthetics on top of distplot.DefaultTheme.
func (c *Global) Theme() *distplot.Theme {
	if len(c.Point) == 0 && len(c.Hist) == 0 && len(c.Axis) == 0 {
		return nil
	}
	return &distplot.Theme{
		PointStyle: distplot.AesMapping(c.Point),
		HistStyle:  distplot.AesMapping(c.Hist),
		AxisStyle:  distplot.AesMapping(c.Axis),
	}
}

// ZoomOptions converts c to the options of distplot.MakePlot.
func (c *Global) ZoomOptions() distplot.ZoomOptions {
	return distplot.ZoomOptions{
		Size: distplot.Size{
			Width:  vg.Length(c.Width) * vg.Inch,
			Height: vg.Length(c.Height) * vg.Inch,
		},
		FullBins:    c.BinsFull,
		ZoomBins:    c.BinsZoom,
		Low:         c.Low,
		High:        c.High,
		ExplicitBox: true,
		FullTitle:   c.FullTitle,
		ZoomTitle:   c.ZoomTitle,
		XLabel:      c.XLabel,
		YLabel:      c.YLabel,
		Theme:       c.Theme(),
	}
}

// ClassLimits returns the configured report layout.
func (c *Global) ClassLimits() distplot.ClassLimits {
	return distplot.ClassLimits{Fixed: c.Fixed, AllBins: c.AllBins}
}
