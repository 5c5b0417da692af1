// Package config loads viewer settings from YAML and command line flags
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete viewer configuration
type Config struct {
	Label     LabelConfig     `yaml:"label"`
	Indicator IndicatorConfig `yaml:"indicator"`
	Units     UnitsConfig     `yaml:"units"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Device    DeviceConfig    `yaml:"device"`
	Model     ModelConfig     `yaml:"model"`
	Watch     WatchConfig     `yaml:"watch"`
}

// LabelConfig controls the dimension labels
type LabelConfig struct {
	Mode         string  `yaml:"mode"`      // overlay, mesh
	FontSize     float64 `yaml:"font_size"` // pixels
	Font         string  `yaml:"font"`      // optional TTF path, Go Regular when empty
	StartVisible bool    `yaml:"start_visible"`
}

// IndicatorConfig controls the indicator lines
type IndicatorConfig struct {
	Style string `yaml:"style"` // thin, thick
	Color string `yaml:"color"` // #rrggbb or #rrggbbaa
}

// UnitsConfig controls label text
type UnitsConfig struct {
	Display    string  `yaml:"display"`     // in, mm, cm, m
	ModelScale float64 `yaml:"model_scale"` // meters per model unit
}

// ViewportConfig is the window or snapshot size in pixels
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DeviceConfig describes the display device
type DeviceConfig struct {
	Handheld string `yaml:"handheld"` // auto, true, false
}

// ModelConfig controls how models are loaded
type ModelConfig struct {
	ZUp bool `yaml:"z_up"` // convert Z-up (CAD) models to Y-up
}

// WatchConfig controls reloading on file changes
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Label: LabelConfig{
			Mode:     "overlay",
			FontSize: 14,
		},
		Indicator: IndicatorConfig{
			Style: "thin",
			Color: "#000000",
		},
		Units: UnitsConfig{
			Display:    "in",
			ModelScale: 1,
		},
		Viewport: ViewportConfig{
			Width:  1400,
			Height: 900,
		},
		Device: DeviceConfig{
			Handheld: "auto",
		},
		Model: ModelConfig{
			ZUp: true,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 300 * time.Millisecond,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every enumerated and numeric setting
func (c *Config) Validate() error {
	if _, err := dimension.ParseLabelMode(c.Label.Mode); err != nil {
		return fmt.Errorf("%w: label.mode: %v", ErrInvalid, err)
	}
	if c.Label.FontSize <= 0 {
		return fmt.Errorf("%w: label.font_size must be positive, got %v", ErrInvalid, c.Label.FontSize)
	}
	if _, err := dimension.IndicatorRendererByName(c.Indicator.Style); err != nil {
		return fmt.Errorf("%w: indicator.style: %v", ErrInvalid, err)
	}
	if _, err := ParseColor(c.Indicator.Color); err != nil {
		return fmt.Errorf("%w: indicator.color: %v", ErrInvalid, err)
	}
	if _, err := dimension.UnitsByName(c.Units.Display); err != nil {
		return fmt.Errorf("%w: units.display: %v", ErrInvalid, err)
	}
	if c.Units.ModelScale <= 0 {
		return fmt.Errorf("%w: units.model_scale must be positive, got %v", ErrInvalid, c.Units.ModelScale)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %dx%d", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := parseHandheld(c.Device.Handheld); err != nil {
		return fmt.Errorf("%w: device.handheld: %v", ErrInvalid, err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalid)
	}
	return nil
}

// RegisterFlags adds the overridable settings to a flag set
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String("label-mode", def.Label.Mode, "Label presenter (overlay, mesh)")
	fs.Float64("font-size", def.Label.FontSize, "Label font size in pixels")
	fs.Bool("show-dimensions", def.Label.StartVisible, "Show dimensions on startup")
	fs.String("indicator", def.Indicator.Style, "Indicator line style (thin, thick)")
	fs.String("units", def.Units.Display, "Label units (in, mm, cm, m)")
	fs.Float64("model-scale", def.Units.ModelScale, "Meters per model unit")
	fs.String("handheld", def.Device.Handheld, "Device class (auto, true, false)")
	fs.Bool("z-up", def.Model.ZUp, "Treat the model as Z-up")
	fs.Bool("watch", def.Watch.Enabled, "Reload the model when the file changes")
}

// ApplyFlags copies explicitly set flags over the configuration and
// validates the result. Flags that were not set keep the file's values.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err != nil || !fs.Changed(name) {
			return
		}
		if e := apply(); e != nil {
			err = fmt.Errorf("flag --%s: %w", name, e)
		}
	}

	set("label-mode", func() (e error) { c.Label.Mode, e = fs.GetString("label-mode"); return })
	set("font-size", func() (e error) { c.Label.FontSize, e = fs.GetFloat64("font-size"); return })
	set("show-dimensions", func() (e error) { c.Label.StartVisible, e = fs.GetBool("show-dimensions"); return })
	set("indicator", func() (e error) { c.Indicator.Style, e = fs.GetString("indicator"); return })
	set("units", func() (e error) { c.Units.Display, e = fs.GetString("units"); return })
	set("model-scale", func() (e error) { c.Units.ModelScale, e = fs.GetFloat64("model-scale"); return })
	set("handheld", func() (e error) { c.Device.Handheld, e = fs.GetString("handheld"); return })
	set("z-up", func() (e error) { c.Model.ZUp, e = fs.GetBool("z-up"); return })
	set("watch", func() (e error) { c.Watch.Enabled, e = fs.GetBool("watch"); return })
	if err != nil {
		return err
	}
	return c.Validate()
}

// ParseColor parses #rrggbb or #rrggbbaa
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb or #rrggbbaa, got %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseHandheld(s string) (*bool, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("expected auto, true or false, got %q", s)
	}
	return &b, nil
}

// HandheldFunc returns the device class check for the annotations. "auto"
// treats mobile platforms as handheld.
func (c *Config) HandheldFunc() func() bool {
	forced, err := parseHandheld(c.Device.Handheld)
	if err == nil && forced != nil {
		v := *forced
		return func() bool { return v }
	}
	goos := runtime.GOOS
	return func() bool { return goos == "android" || goos == "ios" }
}

// AnnotationOptions converts the configuration into annotation options. The
// caller supplies the overlay resources.
func (c *Config) AnnotationOptions() (dimension.Options, error) {
	opts := dimension.DefaultOptions()

	mode, err := dimension.ParseLabelMode(c.Label.Mode)
	if err != nil {
		return opts, err
	}
	renderer, err := dimension.IndicatorRendererByName(c.Indicator.Style)
	if err != nil {
		return opts, err
	}
	col, err := ParseColor(c.Indicator.Color)
	if err != nil {
		return opts, err
	}

	opts.Label = mode
	opts.FontSize = c.Label.FontSize
	opts.StartVisible = c.Label.StartVisible
	opts.Indicator = renderer
	opts.Color = col
	opts.Handheld = c.HandheldFunc()
	return opts, nil
}

// ControllerOptions converts the configuration into controller options
func (c *Config) ControllerOptions() (dimension.ControllerOptions, error) {
	opts := dimension.DefaultControllerOptions()

	ann, err := c.AnnotationOptions()
	if err != nil {
		return opts, err
	}
	units, err := dimension.UnitsByName(c.Units.Display)
	if err != nil {
		return opts, err
	}

	opts.Annotation = ann
	opts.Units = units
	opts.ModelScale = c.Units.ModelScale
	return opts, nil
}
