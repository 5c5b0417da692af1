package dimension

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

const tolerance = 1e-10

// fakeCamera projects with a fixed matrix; identity maps world X/Y straight
// to NDC
type fakeCamera struct {
	vp       mgl64.Mat4
	distance float64
	eye      geometry.Vector3
}

func newFakeCamera(distance float64) *fakeCamera {
	return &fakeCamera{vp: mgl64.Ident4(), distance: distance, eye: geometry.NewVector3(0, 0, distance)}
}

func (c *fakeCamera) ViewProjection() mgl64.Mat4 { return c.vp }
func (c *fakeCamera) DistanceToTarget() float64  { return c.distance }
func (c *fakeCamera) Eye() geometry.Vector3      { return c.eye }

// framingCamera records the last framed box
type framingCamera struct {
	fakeCamera
	framed *geometry.BoundingBox
}

func (c *framingCamera) FrameBounds(bbox geometry.BoundingBox) {
	c.framed = &bbox
	c.distance = bbox.Diagonal()
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}
