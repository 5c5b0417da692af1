package dimension

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// Indicator is the line primitive set of one annotation: a unit main segment
// and two end-caps instantiated from one template, all sharing a material.
// Resizing only touches transforms; the buffers are built once.
type Indicator struct {
	spec          AxisSpec
	Main          *scene.Line
	Cap1          *scene.Line
	Cap2          *scene.Line
	capTemplate   *scene.Geometry
	material      *scene.Material
	capHalfExtent float64
	size          float64
}

// BuildIndicator creates the primitives for spec. The main segment runs from
// -0.5 to +0.5 along the indicator direction; caps span ±capHalfExtent along
// the cap direction.
func BuildIndicator(spec AxisSpec, capHalfExtent float64, material *scene.Material) *Indicator {
	var start, end, capStart, capEnd geometry.Vector3
	start = start.WithComponent(spec.Direction, -0.5)
	end = end.WithComponent(spec.Direction, 0.5)
	capStart = capStart.WithComponent(spec.CapDirection, -capHalfExtent)
	capEnd = capEnd.WithComponent(spec.CapDirection, capHalfExtent)

	capTemplate := scene.NewLineGeometry(capStart, capEnd)

	ind := &Indicator{
		spec:          spec,
		Main:          scene.NewLine("indicator", scene.NewLineGeometry(start, end), material),
		Cap1:          scene.NewLine("end-cap-1", capTemplate, material),
		Cap2:          scene.NewLine("end-cap-2", capTemplate, material),
		capTemplate:   capTemplate,
		material:      material,
		capHalfExtent: capHalfExtent,
	}
	ind.Scale(1)
	return ind
}

// Nodes returns the primitives in attach order
func (ind *Indicator) Nodes() []scene.Node {
	return []scene.Node{ind.Main, ind.Cap1, ind.Cap2}
}

// Material returns the shared material
func (ind *Indicator) Material() *scene.Material {
	return ind.material
}

// Scale stretches the main segment to size along the indicator direction and
// moves the caps to its ends. Negative sizes are treated as zero; zero
// collapses the indicator to a point with both caps coinciding.
func (ind *Indicator) Scale(size float64) {
	if size < 0 {
		size = 0
	}
	ind.size = size

	d := ind.spec.Direction
	mainT := ind.Main.Transform()
	mainT.Scale = geometry.NewVector3(1, 1, 1).WithComponent(d, size)

	half := size / 2 * ind.spec.CapSign
	ind.Cap1.Transform().Position = geometry.Vector3{}.WithComponent(d, -half)
	ind.Cap2.Transform().Position = geometry.Vector3{}.WithComponent(d, half)
}

// Size returns the current indicator length
func (ind *Indicator) Size() float64 {
	return ind.size
}

// CapHalfExtent returns the half length of each end-cap
func (ind *Indicator) CapHalfExtent() float64 {
	return ind.capHalfExtent
}

// Midpoint returns the middle of the scaled main segment in group space
func (ind *Indicator) Midpoint() geometry.Vector3 {
	pts := ind.Main.Geometry.Points
	mid := pts[0].Lerp(pts[1], 0.5)
	return mid.Hadamard(ind.Main.Transform().Scale)
}

// IndicatorRenderer decides how indicator lines are stroked
type IndicatorRenderer interface {
	Name() string
	Material(c color.RGBA, capHalfExtent float64, handheld bool) *scene.Material
}

// ThinLine strokes indicators with pixel-wide lines
type ThinLine struct{}

// Name implements IndicatorRenderer
func (ThinLine) Name() string { return "thin" }

// Material implements IndicatorRenderer
func (ThinLine) Material(c color.RGBA, _ float64, handheld bool) *scene.Material {
	width := 2.0
	if handheld {
		width = 1
	}
	return &scene.Material{Color: c, LineWidth: width}
}

// ThickLine strokes indicators with a width in world units, proportional to
// the end-cap size so it stays readable at the framed distance
type ThickLine struct{}

// Name implements IndicatorRenderer
func (ThickLine) Name() string { return "thick" }

// Material implements IndicatorRenderer
func (ThickLine) Material(c color.RGBA, capHalfExtent float64, handheld bool) *scene.Material {
	factor := 0.16
	if handheld {
		factor = 0.08
	}
	return &scene.Material{Color: c, LineWidth: capHalfExtent * factor, WorldUnits: true}
}

// IndicatorRendererByName returns "thin" or "thick"
func IndicatorRendererByName(name string) (IndicatorRenderer, error) {
	switch strings.ToLower(name) {
	case "", "thin":
		return ThinLine{}, nil
	case "thick":
		return ThickLine{}, nil
	}
	return nil, fmt.Errorf("unknown indicator style %q", name)
}
