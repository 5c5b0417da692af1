// Package dimension renders measurement annotations: one scaled indicator line
// with two end-caps per principal axis of a model, each paired with a label
// that follows the indicator on screen as the camera moves.
package dimension

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// Axis selects which extent of the model an annotation measures
type Axis int

const (
	Width  Axis = iota // X
	Height             // Y
	Depth              // Z
)

// Axes lists the axes in construction order
var Axes = [3]Axis{Width, Height, Depth}

func (a Axis) String() string {
	switch a {
	case Width:
		return "width"
	case Height:
		return "height"
	case Depth:
		return "depth"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Component returns the coordinate index (0=X, 1=Y, 2=Z) the axis measures
func (a Axis) Component() int {
	return int(a)
}

func (a Axis) valid() bool {
	return a >= Width && a <= Depth
}

// ParseAxis parses "width", "height" or "depth" (also "x", "y", "z")
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "width", "x":
		return Width, nil
	case "height", "y":
		return Height, nil
	case "depth", "z":
		return Depth, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// AxisSpec is the fixed per-axis layout of an annotation
type AxisSpec struct {
	// Direction is the coordinate index the indicator lies along
	Direction int
	// CapDirection is the coordinate index the end-caps extend along
	CapDirection int
	// CapSign places the first cap at CapSign*(-size/2) and the second at
	// CapSign*(+size/2). Depth uses -1 so its caps stay on the camera side.
	CapSign float64
	// LabelShift moves an overlay label vertically, in label box heights.
	// Negative values move it up the screen.
	LabelShift float64
	// MeshOffset places an in-scene label relative to the anchor, in font sizes
	MeshOffset geometry.Vector3
}

// AxisTable holds one AxisSpec per Axis
type AxisTable [3]AxisSpec

// DefaultAxisTable returns the layout used by the viewers
func DefaultAxisTable() AxisTable {
	return AxisTable{
		Width: {
			Direction:    0,
			CapDirection: 1,
			CapSign:      1,
		},
		Height: {
			Direction:    1,
			CapDirection: 0,
			CapSign:      1,
		},
		Depth: {
			Direction:    2,
			CapDirection: 0,
			CapSign:      -1,
			LabelShift:   -0.5,
			MeshOffset:   geometry.NewVector3(0, 0.5, 0),
		},
	}
}

// Spec returns the layout for a
func (t AxisTable) Spec(a Axis) AxisSpec {
	return t[a]
}

func (t AxisTable) isZero() bool {
	return t == AxisTable{}
}
