package dimension

import (
	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// Framer is implemented by cameras that can frame a bounding box
type Framer interface {
	FrameBounds(bbox geometry.BoundingBox)
}

// ControllerOptions configures a Controller
type ControllerOptions struct {
	Annotation Options
	Units      Units
	// ModelScale converts model units into meters
	ModelScale float64
	// FrameCamera frames the camera on the centered model before the
	// annotations are built, when the camera implements Framer
	FrameCamera bool
}

// DefaultControllerOptions labels in inches, treating model units as meters
func DefaultControllerOptions() ControllerOptions {
	return ControllerOptions{
		Annotation:  DefaultOptions(),
		Units:       Inches,
		ModelScale:  1,
		FrameCamera: true,
	}
}

// Controller owns the width, height and depth annotations of one model and
// toggles them as a set
type Controller struct {
	container   scene.Container
	camera      Camera
	opts        ControllerOptions
	annotations []*Annotation
	bounds      geometry.BoundingBox
	visible     bool
}

// NewController creates a controller without annotations; call Build once
// the model bounds are known
func NewController(container scene.Container, cam Camera, opts ControllerOptions) *Controller {
	if opts.Units == (Units{}) {
		opts.Units = Inches
	}
	if opts.ModelScale == 0 {
		opts.ModelScale = 1
	}
	opts.Annotation = opts.Annotation.withDefaults()
	return &Controller{
		container: container,
		camera:    cam,
		opts:      opts,
		visible:   opts.Annotation.StartVisible,
	}
}

// Layer returns the overlay layer labels are drawn into
func (c *Controller) Layer() *overlay.Layer {
	return c.opts.Annotation.Layer
}

// ModelOffset returns the translation that centers a model with the given
// bounds on X and Z, leaving it standing on its own base
func ModelOffset(bounds geometry.BoundingBox) geometry.Vector3 {
	if bounds.IsEmpty() {
		return geometry.Vector3{}
	}
	center := bounds.Center()
	return geometry.NewVector3(-center.X, 0, -center.Z)
}

// Build creates the three annotations for a model with the given bounds in
// model space. The model is expected to be translated by ModelOffset(bounds).
// Existing annotations are released first.
func (c *Controller) Build(bounds geometry.BoundingBox) {
	c.release()
	c.bounds = bounds

	size := bounds.Size()
	centered := bounds.Translate(ModelOffset(bounds))
	if bounds.IsEmpty() {
		size = geometry.Vector3{}
		centered = geometry.NewBoundingBoxFromPoints(geometry.Vector3{}, geometry.Vector3{})
	}
	if c.opts.FrameCamera {
		if f, ok := c.camera.(Framer); ok && usable(c.camera) {
			f.FrameBounds(centered)
		}
	}

	opts := c.opts.Annotation
	opts.StartVisible = c.visible

	min, max, mid := centered.Min, centered.Max, centered.Center()

	width := New(Width, c.container, c.camera, opts)
	capW := width.EndCapHalfExtent()
	width.SetSize(size.X)
	width.SetText(c.format(size.X))
	width.SetX(mid.X)
	width.SetY(min.Y)
	width.SetZ(max.Z + 2*capW)

	height := New(Height, c.container, c.camera, opts)
	capH := height.EndCapHalfExtent()
	height.SetSize(size.Y)
	height.SetText(c.format(size.Y))
	height.SetX(min.X - 2*capH)
	height.SetY(mid.Y)
	height.SetZ(mid.Z)

	depth := New(Depth, c.container, c.camera, opts)
	capD := depth.EndCapHalfExtent()
	depth.SetSize(size.Z)
	depth.SetText(c.format(size.Z))
	depth.SetX(max.X + 2*capD)
	depth.SetY(min.Y)
	depth.SetZ(mid.Z)

	c.annotations = []*Annotation{width, height, depth}
	Logger().Debug("dimensions built", "size", size, "visible", c.visible)
}

// Rebuild replaces the annotations after the model changed
func (c *Controller) Rebuild(bounds geometry.BoundingBox) {
	Logger().Debug("dimensions rebuild")
	c.Build(bounds)
}

func (c *Controller) format(modelLength float64) string {
	return c.opts.Units.Format(modelLength * c.opts.ModelScale)
}

// Bounds returns the model bounds passed to the last Build
func (c *Controller) Bounds() geometry.BoundingBox {
	return c.bounds
}

// Annotations returns width, height and depth, or nil before Build
func (c *Controller) Annotations() []*Annotation {
	return c.annotations
}

// Annotation returns the annotation for axis, nil before Build
func (c *Controller) Annotation(axis Axis) *Annotation {
	if int(axis) < 0 || int(axis) >= len(c.annotations) {
		return nil
	}
	return c.annotations[axis]
}

// Visible reports whether the annotations are shown
func (c *Controller) Visible() bool {
	return c.visible
}

// Show shows all annotations
func (c *Controller) Show() {
	c.visible = true
	for _, a := range c.annotations {
		a.Show()
	}
}

// Hide hides all annotations
func (c *Controller) Hide() {
	c.visible = false
	for _, a := range c.annotations {
		a.Hide()
	}
}

// Toggle flips visibility and returns the new state
func (c *Controller) Toggle() bool {
	if c.visible {
		c.Hide()
	} else {
		c.Show()
	}
	return c.visible
}

// Update lays out every visible label for this frame
func (c *Controller) Update(cam Camera, vp Viewport) {
	for _, a := range c.annotations {
		a.UpdateLabelPosition(cam, vp)
	}
}

// Release removes all annotations from the scene and the overlay
func (c *Controller) Release() {
	c.release()
}

func (c *Controller) release() {
	for _, a := range c.annotations {
		a.Release()
	}
	c.annotations = nil
}
