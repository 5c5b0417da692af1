package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/stl"
)

// ModelRenderer renders an STL model as a wireframe together with a scene
// graph of annotation lines and an overlay layer of labels
type ModelRenderer struct {
	widget.BaseWidget
	model     *stl.Model
	root      *scene.Group
	layer     *overlay.Layer
	measurer  overlay.Measurer
	camera    *Camera
	wireframe []fyne.CanvasObject
	overlays  []fyne.CanvasObject
	dragStart *fyne.Position
	width     float64
	height    float64
	onFrame   func(cam *Camera, width, height float64)
}

// NewModelRenderer creates a new 3D model renderer
func NewModelRenderer(model *stl.Model, root *scene.Group, layer *overlay.Layer) *ModelRenderer {
	r := &ModelRenderer{
		model:    model,
		root:     root,
		layer:    layer,
		measurer: TextMeasurer{},
		camera:   NewCamera(model.BoundingBox()),
	}
	r.ExtendBaseWidget(r)
	return r
}

// Camera returns the orbit camera
func (r *ModelRenderer) Camera() *Camera {
	return r.camera
}

// SetModel replaces the rendered model, keeping the camera
func (r *ModelRenderer) SetModel(model *stl.Model) {
	r.model = model
	r.Render(r.width, r.height)
}

// SetOnFrame sets a callback run before every redraw, after the camera has
// its final aspect ratio. Labels are laid out there.
func (r *ModelRenderer) SetOnFrame(callback func(cam *Camera, width, height float64)) {
	r.onFrame = callback
}

// CreateRenderer creates the renderer for the widget
func (r *ModelRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &modelWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render updates the 3D view
func (r *ModelRenderer) Render(width, height float64) {
	r.width = width
	r.height = height
	r.camera.SetViewport(width, height)

	if r.onFrame != nil {
		r.onFrame(r.camera, width, height)
	}

	r.wireframe = r.wireframe[:0]
	for _, triangle := range r.model.Triangles {
		vertices := [3][3]float64{}
		visible := true
		for i, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			x, y, z := r.camera.Project(v, width, height)
			vertices[i] = [3]float64{x, y, z}
			visible = visible && z > 0
		}
		if !visible {
			continue
		}

		for i := 0; i < 3; i++ {
			a, b := vertices[i], vertices[(i+1)%3]

			// Simple depth-based color
			avgZ := (a[2] + b[2]) / 2
			brightness := uint8(math.Max(60, math.Min(200, 200-avgZ*5)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(a[0]), float32(a[1]))
			line.Position2 = fyne.NewPos(float32(b[0]), float32(b[1]))
			r.wireframe = append(r.wireframe, line)
		}
	}

	r.overlays = r.overlays[:0]
	r.renderScene()
	r.renderLabels()

	r.Refresh()
}

func (r *ModelRenderer) renderScene() {
	if r.root == nil {
		return
	}
	scene.Walk(r.root, func(n scene.Node, world mgl64.Mat4) {
		line, ok := n.(*scene.Line)
		if !ok {
			return
		}
		for _, seg := range line.Segments(world) {
			x1, y1, z1 := r.camera.Project(seg[0], r.width, r.height)
			x2, y2, z2 := r.camera.Project(seg[1], r.width, r.height)
			if z1 <= 0 || z2 <= 0 {
				continue
			}
			l := canvas.NewLine(line.Material.Color)
			l.StrokeWidth = float32(line.Material.LineWidth)
			if line.Material.WorldUnits {
				l.StrokeWidth = float32(line.Material.LineWidth / (z1 * math.Tan(r.camera.FOV/2)) * r.height / 2)
			}
			l.Position1 = fyne.NewPos(float32(x1), float32(y1))
			l.Position2 = fyne.NewPos(float32(x2), float32(y2))
			r.overlays = append(r.overlays, l)
		}
	})
}

func (r *ModelRenderer) renderLabels() {
	if r.layer == nil {
		return
	}
	for _, el := range r.layer.Elements() {
		box := el.BoundingBox(r.measurer, r.width)

		if el.Style.Background.A > 0 {
			bg := canvas.NewRectangle(el.Style.Background)
			bg.Move(fyne.NewPos(float32(box.X), float32(box.Y)))
			bg.Resize(fyne.NewSize(float32(box.Width), float32(box.Height)))
			r.overlays = append(r.overlays, bg)
		}

		text := canvas.NewText(el.Text, el.Style.Color)
		text.TextSize = float32(el.Style.FontSize)
		text.Alignment = fyne.TextAlignCenter
		text.Move(fyne.NewPos(float32(box.X), float32(box.Y+el.Style.Padding)))
		text.Resize(fyne.NewSize(float32(box.Width), float32(box.Height-2*el.Style.Padding)))
		r.overlays = append(r.overlays, text)
	}
}

// Dragged handles mouse drag events for rotation
func (r *ModelRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (r *ModelRenderer) DragEnd() {
	r.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (r *ModelRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

// TextMeasurer measures overlay text with the current fyne theme font
type TextMeasurer struct{}

// Measure implements overlay.Measurer
func (TextMeasurer) Measure(text string, size float64) (float64, float64) {
	s := fyne.MeasureText(text, float32(size), fyne.TextStyle{})
	return float64(s.Width), float64(s.Height)
}

// modelWidgetRenderer implements fyne.WidgetRenderer
type modelWidgetRenderer struct {
	renderer *ModelRenderer
	objects  []fyne.CanvasObject
}

func (m *modelWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *modelWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *modelWidgetRenderer) Refresh() {
	m.objects = make([]fyne.CanvasObject, 0, len(m.renderer.wireframe)+len(m.renderer.overlays))
	m.objects = append(m.objects, m.renderer.wireframe...)
	m.objects = append(m.objects, m.renderer.overlays...)
	canvas.Refresh(m.renderer)
}

func (m *modelWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *modelWidgetRenderer) Destroy() {}
