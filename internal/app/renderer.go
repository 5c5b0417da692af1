package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// cylinder sides used for indicator lines
const lineSegments = int32(6)

// drawScene renders the dimension scene graph (inside 3D mode). Lines become
// thin cylinders so their width does not depend on GL line support.
func (app *App) drawScene(screenHeight float64) {
	scene.Walk(app.Dimensions.root, func(n scene.Node, world mgl64.Mat4) {
		switch node := n.(type) {
		case *scene.Line:
			app.drawLine(node, world, screenHeight)
		case *scene.Mesh:
			col := toRaylibColor(node.Material.Color)
			for _, tri := range node.Triangles(world) {
				rl.DrawTriangle3D(toRaylibVector(tri[0]), toRaylibVector(tri[1]), toRaylibVector(tri[2]), col)
			}
		}
	})
}

func (app *App) drawLine(line *scene.Line, world mgl64.Mat4, screenHeight float64) {
	col := toRaylibColor(line.Material.Color)
	for _, seg := range line.Segments(world) {
		radius := line.Material.LineWidth / 2
		if !line.Material.WorldUnits {
			mid := seg[0].Lerp(seg[1], 0.5)
			radius *= app.worldPerPixel(mid, screenHeight)
		}
		rl.DrawCylinderEx(toRaylibVector(seg[0]), toRaylibVector(seg[1]), float32(radius), float32(radius), lineSegments, col)
	}
}

// worldPerPixel returns the world length one pixel covers at p
func (app *App) worldPerPixel(p geometry.Vector3, screenHeight float64) float64 {
	cam := app.Camera.camera
	if screenHeight <= 0 {
		return 0
	}
	depth := p.Sub(cam.Position).Dot(cam.Target.Sub(cam.Position).Normalize())
	return 2 * math.Abs(depth) * math.Tan(cam.FOV/2) / screenHeight
}

// drawLabels paints the overlay layer on top of the 3D view
func (app *App) drawLabels(screenWidth float64) {
	for _, el := range app.Dimensions.layer.Elements() {
		box := el.BoundingBox(app.UI.measurer, screenWidth)

		if el.Style.Background.A > 0 {
			rl.DrawRectangleRec(rl.Rectangle{
				X:      float32(box.X),
				Y:      float32(box.Y),
				Width:  float32(box.Width),
				Height: float32(box.Height),
			}, toRaylibColor(el.Style.Background))
		}

		textWidth, _ := app.UI.measurer.Measure(el.Text, el.Style.FontSize)
		pos := rl.Vector2{
			X: float32(box.X + (box.Width-textWidth)/2),
			Y: float32(box.Y + el.Style.Padding),
		}
		rl.DrawTextEx(app.UI.font, el.Text, pos, float32(el.Style.FontSize), 1, toRaylibColor(el.Style.Color))
	}
}

func toRaylibColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// fontMeasurer measures overlay text with the loaded raylib font
type fontMeasurer struct {
	font rl.Font
}

func (m fontMeasurer) Measure(text string, size float64) (float64, float64) {
	v := rl.MeasureTextEx(m.font, text, float32(size), 1)
	return float64(v.X), float64(v.Y)
}
