package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/stl"
	"golang.org/x/image/font"
)

// FaceSource provides font faces by pixel size
type FaceSource interface {
	Face(size float64) (font.Face, error)
}

// Snapshot renders a model, a scene graph and an overlay layer offscreen
type Snapshot struct {
	Width, Height int
	Background    color.RGBA
	ModelColor    color.RGBA
	Faces         FaceSource
}

// NewSnapshot returns a snapshot renderer with the viewer's colors
func NewSnapshot(width, height int, faces FaceSource) *Snapshot {
	return &Snapshot{
		Width:      width,
		Height:     height,
		Background: color.RGBA{R: 245, G: 245, B: 245, A: 255},
		ModelColor: color.RGBA{R: 90, G: 140, B: 200, A: 255},
		Faces:      faces,
	}
}

// Render draws the model shaded by facing, then every visible node of root,
// then the overlay elements on top. model, root and layer may be nil.
func (s *Snapshot) Render(cam *Camera, model *stl.Model, root *scene.Group, layer *overlay.Layer) *image.RGBA {
	cam.SetViewport(float64(s.Width), float64(s.Height))
	c := NewCanvas(s.Width, s.Height, s.Background)

	if model != nil {
		s.drawModel(c, cam, model)
	}
	if root != nil {
		s.drawScene(c, cam, root)
	}
	if layer != nil {
		s.drawOverlay(c, layer)
	}
	return c.Image()
}

func (s *Snapshot) project(cam *Camera, p geometry.Vector3) ([3]float64, bool) {
	x, y, w := cam.Project(p, float64(s.Width), float64(s.Height))
	return [3]float64{x, y, w}, w > 0
}

func (s *Snapshot) drawModel(c *Canvas, cam *Camera, model *stl.Model) {
	light := cam.Position.Sub(cam.Target).Normalize()
	for _, tri := range model.Triangles {
		p1, ok1 := s.project(cam, tri.V1)
		p2, ok2 := s.project(cam, tri.V2)
		p3, ok3 := s.project(cam, tri.V3)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		shade := 0.35 + 0.65*math.Abs(tri.CalculateNormal().Dot(light))
		c.FillTriangle(p1, p2, p3, scaleColor(s.ModelColor, shade))
	}
}

func (s *Snapshot) drawScene(c *Canvas, cam *Camera, root *scene.Group) {
	// Lines go over the model; meshes are drawn last so label backings
	// cover the lines behind them.
	var meshes []*scene.Mesh
	var worlds []mgl64.Mat4
	scene.Walk(root, func(n scene.Node, world mgl64.Mat4) {
		switch node := n.(type) {
		case *scene.Line:
			s.drawLine(c, cam, node, world)
		case *scene.Mesh:
			meshes = append(meshes, node)
			worlds = append(worlds, world)
		}
	})

	for i, mesh := range meshes {
		for _, tri := range mesh.Triangles(worlds[i]) {
			p1, ok1 := s.project(cam, tri[0])
			p2, ok2 := s.project(cam, tri[1])
			p3, ok3 := s.project(cam, tri[2])
			if ok1 && ok2 && ok3 {
				c.FillTriangle(p1, p2, p3, mesh.Material.Color)
			}
		}
	}
}

func (s *Snapshot) drawLine(c *Canvas, cam *Camera, line *scene.Line, world mgl64.Mat4) {
	for _, seg := range line.Segments(world) {
		a, okA := s.project(cam, seg[0])
		b, okB := s.project(cam, seg[1])
		if !okA || !okB {
			continue
		}
		width := line.Material.LineWidth
		if line.Material.WorldUnits {
			width = s.worldToPixels(cam, width, (a[2]+b[2])/2)
		}
		c.DrawLine(int(math.Round(a[0])), int(math.Round(a[1])), int(math.Round(b[0])), int(math.Round(b[1])), width, line.Material.Color)
	}
}

// worldToPixels converts a length at view depth w into screen pixels
func (s *Snapshot) worldToPixels(cam *Camera, length, w float64) float64 {
	if w <= 0 {
		return 1
	}
	return length / (w * math.Tan(cam.FOV/2)) * float64(s.Height) / 2
}

func (s *Snapshot) drawOverlay(c *Canvas, layer *overlay.Layer) {
	if s.Faces == nil {
		return
	}
	for _, el := range layer.Elements() {
		face, err := s.Faces.Face(el.Style.FontSize)
		if err != nil {
			continue
		}
		m := faceMeasurer{face}
		box := el.BoundingBox(m, float64(s.Width))
		if el.Style.Background.A > 0 {
			c.FillRect(box.X, box.Y, box.Width, box.Height, el.Style.Background)
		}
		textWidth, _ := m.Measure(el.Text, el.Style.FontSize)
		c.DrawText(face, box.X+(box.Width-textWidth)/2, box.Y+el.Style.Padding, el.Text, el.Style.Color)
	}
}

// faceMeasurer measures with an already sized face
type faceMeasurer struct {
	face font.Face
}

func (m faceMeasurer) Measure(text string, _ float64) (float64, float64) {
	return float64(font.MeasureString(m.face, text)) / 64, float64(m.face.Metrics().Height) / 64
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Min(255, float64(c.R)*f)),
		G: uint8(math.Min(255, float64(c.G)*f)),
		B: uint8(math.Min(255, float64(c.B)*f)),
		A: c.A,
	}
}
