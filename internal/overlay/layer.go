// Package overlay is a screen-space text layer drawn on top of the 3D view.
// Elements are only part of the layer while appended; renderers draw exactly
// what Elements returns.
package overlay

import (
	"errors"
	"image/color"
)

var (
	// ErrAttached is returned when appending an element that is already in a layer
	ErrAttached = errors.New("overlay: element already attached")
	// ErrDetached is returned when removing an element that is not in the layer
	ErrDetached = errors.New("overlay: element not attached")
)

// Style positions and sizes an element in pixels
type Style struct {
	Left, Top float64
	// WidthVW is the box width in viewport-width units (1vw = 1% of the
	// viewport width). Zero means the box hugs its text.
	WidthVW  float64
	FontSize float64
	Padding  float64
	Color    color.RGBA
	// Background is drawn behind the text when its alpha is non-zero
	Background color.RGBA
}

// Box is an element's bounding rectangle in pixels
type Box struct {
	X, Y, Width, Height float64
}

// Element is a single text box
type Element struct {
	ClassName string
	Text      string
	Style     Style
	layer     *Layer
}

// NewElement creates a detached element
func NewElement(className string) *Element {
	return &Element{ClassName: className}
}

// Attached reports whether the element is currently in a layer
func (e *Element) Attached() bool {
	return e.layer != nil
}

// BoundingBox measures the element as it would be laid out in a viewport of
// the given width
func (e *Element) BoundingBox(m Measurer, viewportWidth float64) Box {
	textWidth, textHeight := m.Measure(e.Text, e.Style.FontSize)

	width := textWidth + 2*e.Style.Padding
	if e.Style.WidthVW > 0 {
		width = e.Style.WidthVW / 100 * viewportWidth
	}
	if width < 0 {
		width = 0
	}

	return Box{
		X:      e.Style.Left,
		Y:      e.Style.Top,
		Width:  width,
		Height: textHeight + 2*e.Style.Padding,
	}
}

// Layer holds the attached elements in paint order
type Layer struct {
	elements []*Element
}

// NewLayer creates an empty layer
func NewLayer() *Layer {
	return &Layer{}
}

// Append attaches e on top of the existing elements
func (l *Layer) Append(e *Element) error {
	if e.layer != nil {
		return ErrAttached
	}
	e.layer = l
	l.elements = append(l.elements, e)
	return nil
}

// Remove detaches e
func (l *Layer) Remove(e *Element) error {
	if e.layer != l {
		return ErrDetached
	}
	for i, el := range l.elements {
		if el == e {
			l.elements = append(l.elements[:i], l.elements[i+1:]...)
			break
		}
	}
	e.layer = nil
	return nil
}

// Elements returns the attached elements in paint order
func (l *Layer) Elements() []*Element {
	out := make([]*Element, len(l.elements))
	copy(out, l.elements)
	return out
}

// Len returns the number of attached elements
func (l *Layer) Len() int {
	return len(l.elements)
}
