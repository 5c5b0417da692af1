package dimension

import (
	"fmt"
	"math"

	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// EndCapHalfAngle is the angle, seen from the camera, that half an end-cap
// subtends at construction time
const EndCapHalfAngle = 0.024994793618920156

// Annotation measures one axis of a model: an indicator with end-caps inside
// its own group, a label anchor at the indicator's midpoint, and a label that
// follows the anchor on screen. Annotations start hidden.
type Annotation struct {
	axis      Axis
	spec      AxisSpec
	container scene.Container
	group     *scene.Group
	anchor    *scene.Anchor
	indicator *Indicator
	label     LabelPresenter

	endCapHalfExtent float64
	visible          bool
	released         bool
	screen           ScreenPoint
}

// New creates an annotation for axis and adds its group to container. The
// end-cap size is fixed from the camera's distance to its target now; later
// camera moves do not resize it. New panics on an axis other than Width,
// Height or Depth.
func New(axis Axis, container scene.Container, cam Camera, opts Options) *Annotation {
	opts = opts.withDefaults()
	if !axis.valid() {
		panic(fmt.Sprintf("dimension: invalid axis %d", int(axis)))
	}

	var capHalf float64
	if usable(cam) {
		capHalf = cam.DistanceToTarget() * math.Tan(EndCapHalfAngle)
	} else {
		Logger().Debug("annotation without camera, end-caps collapsed", "axis", axis)
	}

	spec := opts.Axes.Spec(axis)
	material := opts.Indicator.Material(opts.Color, capHalf, opts.Handheld())

	a := &Annotation{
		axis:             axis,
		spec:             spec,
		container:        container,
		group:            scene.NewGroup(axis.String() + "-dimension"),
		indicator:        BuildIndicator(spec, capHalf, material),
		label:            opts.newLabel(capHalf),
		endCapHalfExtent: capHalf,
	}

	for _, n := range a.indicator.Nodes() {
		a.group.Add(n)
	}
	a.anchor = scene.NewAnchor("label-anchor", a.indicator.Midpoint())
	a.group.Add(a.anchor)
	a.label.Attach(a.group, a.anchor.Transform().Position, spec)

	a.group.Transform().Visible = false
	if container != nil {
		container.Add(a.group)
	}

	if opts.StartVisible {
		a.Show()
	}
	return a
}

// Axis returns the measured axis
func (a *Annotation) Axis() Axis {
	return a.axis
}

// Group returns the annotation's root node
func (a *Annotation) Group() *scene.Group {
	return a.group
}

// Indicator returns the line primitives
func (a *Annotation) Indicator() *Indicator {
	return a.indicator
}

// Label returns the label presenter
func (a *Annotation) Label() LabelPresenter {
	return a.label
}

// EndCapHalfExtent returns the half length of each end-cap
func (a *Annotation) EndCapHalfExtent() float64 {
	return a.endCapHalfExtent
}

// Size returns the indicator length
func (a *Annotation) Size() float64 {
	return a.indicator.Size()
}

// SetSize rescales the indicator and moves the label anchor to its midpoint
func (a *Annotation) SetSize(size float64) {
	a.indicator.Scale(size)
	a.anchor.Transform().Position = a.indicator.Midpoint()
}

// Position returns the group position
func (a *Annotation) Position() geometry.Vector3 {
	return a.group.Transform().Position
}

// SetX moves the group along X
func (a *Annotation) SetX(v float64) { a.SetPosition(Width, v) }

// SetY moves the group along Y
func (a *Annotation) SetY(v float64) { a.SetPosition(Height, v) }

// SetZ moves the group along Z
func (a *Annotation) SetZ(v float64) { a.SetPosition(Depth, v) }

// SetPosition sets the group coordinate measured by axis
func (a *Annotation) SetPosition(axis Axis, v float64) {
	t := a.group.Transform()
	t.Position = t.Position.WithComponent(axis.Component(), v)
}

// SetText replaces the label text
func (a *Annotation) SetText(text string) {
	a.label.SetText(text)
}

// Text returns the label text
func (a *Annotation) Text() string {
	return a.label.Text()
}

// Visible reports whether the annotation is shown
func (a *Annotation) Visible() bool {
	return a.visible
}

// Show makes the indicator and label visible. Showing a shown annotation
// does nothing.
func (a *Annotation) Show() {
	if a.visible || a.released {
		return
	}
	a.visible = true
	a.group.Transform().Visible = true
	a.label.Show()
	Logger().Debug("annotation shown", "axis", a.axis)
}

// Hide removes the indicator and label from view. Hiding a hidden
// annotation does nothing.
func (a *Annotation) Hide() {
	if !a.visible {
		return
	}
	a.visible = false
	a.group.Transform().Visible = false
	a.label.Hide()
	Logger().Debug("annotation hidden", "axis", a.axis)
}

// LabelAnchor returns the label anchor in world space
func (a *Annotation) LabelAnchor() geometry.Vector3 {
	return scene.WorldPosition(a.anchor, geometry.Vector3{})
}

// Screen returns the label position computed by the last update
func (a *Annotation) Screen() ScreenPoint {
	return a.screen
}

// UpdateLabelPosition projects the label anchor for this frame and lays out
// the label. It does nothing while hidden and skips frames without a usable
// camera.
func (a *Annotation) UpdateLabelPosition(cam Camera, vp Viewport) {
	if !a.visible {
		return
	}
	world := a.LabelAnchor()
	p, ok := Project(world, cam, vp)
	if !ok {
		Logger().Debug("label projection skipped", "axis", a.axis)
		return
	}
	a.screen = p
	a.label.Layout(LabelLayout{
		Spec:     a.spec,
		Camera:   cam,
		Viewport: vp,
		Anchor:   world,
		Screen:   p,
	})
}

// Release hides the annotation, removes its group from the container and
// frees its geometry. The annotation must not be used afterwards.
func (a *Annotation) Release() {
	if a.released {
		return
	}
	a.Hide()
	a.label.Release()
	if a.container != nil {
		a.container.Remove(a.group)
	}
	a.indicator.Main.Geometry.Dispose()
	a.indicator.capTemplate.Dispose()
	a.released = true
}
