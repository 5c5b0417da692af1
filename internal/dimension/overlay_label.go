package dimension

import (
	"image/color"

	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// labelClassName tags overlay elements created for annotations
const labelClassName = "dimension-label"

// OverlayLabel draws the annotation text as a box in an overlay layer. The
// element is only part of the layer while the label is shown.
type OverlayLabel struct {
	layer    *overlay.Layer
	element  *overlay.Element
	measurer overlay.Measurer
	sizing   Sizing
	box      overlay.Box
}

// NewOverlayLabel creates a detached label for layer
func NewOverlayLabel(layer *overlay.Layer, measurer overlay.Measurer, sizing Sizing, fontSize float64, c color.RGBA) *OverlayLabel {
	el := overlay.NewElement(labelClassName)
	el.Style.FontSize = fontSize
	el.Style.Padding = fontSize / 4
	el.Style.Color = c
	el.Style.Background = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	return &OverlayLabel{
		layer:    layer,
		element:  el,
		measurer: measurer,
		sizing:   sizing,
	}
}

// Element returns the backing overlay element
func (l *OverlayLabel) Element() *overlay.Element {
	return l.element
}

// Box returns the box computed by the last Layout
func (l *OverlayLabel) Box() overlay.Box {
	return l.box
}

// Attach implements LabelPresenter. Overlay labels live outside the scene.
func (l *OverlayLabel) Attach(*scene.Group, geometry.Vector3, AxisSpec) {}

// SetText implements LabelPresenter
func (l *OverlayLabel) SetText(text string) {
	l.element.Text = text
}

// Text implements LabelPresenter
func (l *OverlayLabel) Text() string {
	return l.element.Text
}

// Show implements LabelPresenter
func (l *OverlayLabel) Show() {
	if l.element.Attached() {
		return
	}
	if err := l.layer.Append(l.element); err != nil {
		Logger().Warn("overlay label append", "err", err)
	}
}

// Hide implements LabelPresenter
func (l *OverlayLabel) Hide() {
	if !l.element.Attached() {
		return
	}
	if err := l.layer.Remove(l.element); err != nil {
		Logger().Warn("overlay label remove", "err", err)
	}
}

// Layout implements LabelPresenter
func (l *OverlayLabel) Layout(layout LabelLayout) {
	vp := layout.Viewport
	l.element.Style.WidthVW = l.sizing.WidthVW(l.element.Text, vp.Aspect())

	box := l.element.BoundingBox(l.measurer, vp.Width)
	left, top := PlaceLabel(layout.Screen, box.Width, box.Height, layout.Spec.LabelShift)
	l.element.Style.Left = left
	l.element.Style.Top = top

	box.X, box.Y = left, top
	l.box = box
}

// Release implements LabelPresenter
func (l *OverlayLabel) Release() {
	l.Hide()
}
