package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/spf13/pflag"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
label:
  mode: mesh
  start_visible: true
indicator:
  style: thick
  color: "#ff0000"
units:
  display: mm
  model_scale: 0.001
watch:
  debounce: 1s
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Label.Mode != "mesh" || !cfg.Label.StartVisible {
		t.Errorf("label failed: got %+v", cfg.Label)
	}
	if cfg.Label.FontSize != 14 {
		t.Errorf("missing keys should keep defaults: expected font size 14, got %v", cfg.Label.FontSize)
	}
	if cfg.Indicator.Style != "thick" {
		t.Errorf("indicator style failed: expected thick, got %q", cfg.Indicator.Style)
	}
	if cfg.Units.Display != "mm" || cfg.Units.ModelScale != 0.001 {
		t.Errorf("units failed: got %+v", cfg.Units)
	}
	if cfg.Watch.Debounce != time.Second || !cfg.Watch.Enabled {
		t.Errorf("watch failed: got %+v", cfg.Watch)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"label mode", "label: {mode: hologram}"},
		{"font size", "label: {font_size: 0}"},
		{"indicator style", "indicator: {style: dashed}"},
		{"indicator color", "indicator: {color: red}"},
		{"units", "units: {display: furlong}"},
		{"model scale", "units: {model_scale: -1}"},
		{"viewport", "viewport: {width: 0}"},
		{"handheld", "device: {handheld: sometimes}"},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.yaml))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dims.yaml")
	if err := os.WriteFile(path, []byte("units: {display: cm}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Units.Display != "cm" {
		t.Errorf("Load failed: expected cm, got %q", cfg.Units.Display)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--units", "m", "--show-dimensions", "--handheld", "true"}); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Indicator.Style = "thick"
	if err := cfg.ApplyFlags(fs); err != nil {
		t.Fatalf("ApplyFlags failed: %v", err)
	}

	if cfg.Units.Display != "m" || !cfg.Label.StartVisible {
		t.Errorf("flags not applied: got %+v %+v", cfg.Units, cfg.Label)
	}
	if cfg.Indicator.Style != "thick" {
		t.Errorf("unset flags should keep file values: expected thick, got %q", cfg.Indicator.Style)
	}
	if !cfg.HandheldFunc()() {
		t.Error("--handheld true should force handheld")
	}
}

func TestApplyFlagsValidates(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--label-mode", "hologram"}); err != nil {
		t.Fatal(err)
	}
	if err := Default().ApplyFlags(fs); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
	}{
		{"#000000", color.RGBA{A: 255}},
		{"#ff8000", color.RGBA{R: 255, G: 128, A: 255}},
		{"#11223344", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil || got != tt.expected {
			t.Errorf("ParseColor(%q) failed: expected %v, got %v (%v)", tt.in, tt.expected, got, err)
		}
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Error("short color should fail")
	}
}

func TestControllerOptions(t *testing.T) {
	cfg := Default()
	cfg.Label.Mode = "mesh"
	cfg.Indicator.Style = "thick"
	cfg.Units.Display = "mm"
	cfg.Device.Handheld = "false"

	opts, err := cfg.ControllerOptions()
	if err != nil {
		t.Fatalf("ControllerOptions failed: %v", err)
	}
	if opts.Annotation.Label != dimension.MeshLabels {
		t.Errorf("label mode failed: expected mesh, got %v", opts.Annotation.Label)
	}
	if opts.Annotation.Indicator.Name() != "thick" {
		t.Errorf("indicator failed: expected thick, got %q", opts.Annotation.Indicator.Name())
	}
	if opts.Units != dimension.Millimeters {
		t.Errorf("units failed: expected mm, got %v", opts.Units)
	}
	if opts.Annotation.Handheld() {
		t.Error("handheld false should not be handheld")
	}
}
