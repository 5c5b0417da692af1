package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/viewer"
)

// toRaylibCamera mirrors the orbit camera so the 3D pass and the label
// projection use the same view
func toRaylibCamera(c *viewer.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toRaylibVector(c.Position),
		Target:     toRaylibVector(c.Target),
		Up:         toRaylibVector(c.Up),
		Fovy:       float32(mgl64.RadToDeg(c.FOV)),
		Projection: rl.CameraPerspective,
	}
}

func toRaylibVector(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// resetCameraView frames the model again
func (app *App) resetCameraView() {
	app.Camera.camera.FrameBounds(app.Model.model.BoundingBox())
	app.Camera.defaultDist = app.Camera.camera.Distance
}

// setCameraTopView looks straight down
func (app *App) setCameraTopView() {
	app.Camera.camera.RotationX = math.Pi/2 - 0.1
	app.Camera.camera.RotationY = 0
	app.Camera.camera.UpdatePosition()
}

// setCameraFrontView looks along -Z
func (app *App) setCameraFrontView() {
	app.Camera.camera.RotationX = 0
	app.Camera.camera.RotationY = 0
	app.Camera.camera.UpdatePosition()
}

// setCameraRightView looks along -X
func (app *App) setCameraRightView() {
	app.Camera.camera.RotationX = 0
	app.Camera.camera.RotationY = math.Pi / 2
	app.Camera.camera.UpdatePosition()
}

// doPan moves the camera target in the view plane
func (app *App) doPan(deltaX, deltaY float64) {
	cam := app.Camera.camera

	forward := cam.Target.Sub(cam.Position).Normalize()
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Pan speed based on distance from target
	panSpeed := cam.Distance * 0.001

	cam.Target = cam.Target.Add(right.Mul(-deltaX * panSpeed)).Add(up.Mul(deltaY * panSpeed))
	cam.UpdatePosition()
}
