package dimension

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/philipparndt/gostl-dims/internal/overlay"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LabelMode selects the label presenter
type LabelMode int

const (
	// OverlayLabels draws labels as screen-space boxes
	OverlayLabels LabelMode = iota
	// MeshLabels draws labels as text meshes inside the scene
	MeshLabels
)

func (m LabelMode) String() string {
	if m == MeshLabels {
		return "mesh"
	}
	return "overlay"
}

// ParseLabelMode parses "overlay" or "mesh"
func ParseLabelMode(s string) (LabelMode, error) {
	switch strings.ToLower(s) {
	case "", "overlay":
		return OverlayLabels, nil
	case "mesh":
		return MeshLabels, nil
	}
	return 0, fmt.Errorf("unknown label mode %q", s)
}

// Options configures an annotation. The zero value is usable; missing fields
// fall back to DefaultOptions.
type Options struct {
	Label LabelMode
	// Layer receives overlay labels
	Layer *overlay.Layer
	// Measurer sizes overlay label boxes
	Measurer overlay.Measurer
	// FontSize is the overlay font size in pixels
	FontSize float64
	Sizing   Sizing
	// Face and MeshFontScale configure mesh labels; the em height is
	// MeshFontScale end-cap half extents
	Face          font.Face
	MeshFontScale float64
	Indicator     IndicatorRenderer
	Color         color.RGBA
	// Handheld reports the device class; thinner lines on handheld devices
	Handheld     func() bool
	StartVisible bool
	Axes         AxisTable
}

// DefaultOptions returns overlay labels with thin black indicators
func DefaultOptions() Options {
	return Options{
		Label:         OverlayLabels,
		Measurer:      overlay.FixedMeasurer{Advance: 0.6, LineHeight: 1.2},
		FontSize:      14,
		Sizing:        DefaultSizing(),
		Face:          basicfont.Face7x13,
		MeshFontScale: 3,
		Indicator:     ThinLine{},
		Color:         color.RGBA{A: 255},
		Handheld:      func() bool { return false },
		Axes:          DefaultAxisTable(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Layer == nil {
		o.Layer = overlay.NewLayer()
	}
	if o.Measurer == nil {
		o.Measurer = def.Measurer
	}
	if o.FontSize <= 0 {
		o.FontSize = def.FontSize
	}
	if o.Sizing == (Sizing{}) {
		o.Sizing = def.Sizing
	}
	if o.Face == nil {
		o.Face = def.Face
	}
	if o.MeshFontScale <= 0 {
		o.MeshFontScale = def.MeshFontScale
	}
	if o.Indicator == nil {
		o.Indicator = def.Indicator
	}
	if o.Handheld == nil {
		o.Handheld = def.Handheld
	}
	if o.Axes.isZero() {
		o.Axes = def.Axes
	}
	return o
}

func (o Options) newLabel(capHalfExtent float64) LabelPresenter {
	if o.Label == MeshLabels {
		return NewMeshLabel(o.Face, capHalfExtent*o.MeshFontScale, o.Color)
	}
	return NewOverlayLabel(o.Layer, o.Measurer, o.Sizing, o.FontSize, o.Color)
}
