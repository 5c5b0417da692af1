package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// DefaultFOV is the vertical field of view used by the viewers (35 degrees)
var DefaultFOV = mgl64.DegToRad(35)

// framingFactor scales the half-diagonal distance used when framing a model
const framingFactor = 4.0

// Camera represents a perspective camera orbiting a target
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Aspect    float64 // Viewport width / height
	Near      float64
	Far       float64
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a new camera framing a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Up:     geometry.NewVector3(0, 1, 0),
		FOV:    DefaultFOV,
		Aspect: 1,
		Near:   0.1,
		Far:    1000,
	}
	c.FrameBounds(bbox)
	return c
}

// FrameBounds places the camera in front of the box (+Z), level with its
// vertical center, far enough back that the whole box fits the view.
func (c *Camera) FrameBounds(bbox geometry.BoundingBox) {
	center := bbox.Center()
	halfDiagonal := bbox.Diagonal() / 2
	distance := halfDiagonal * math.Cos(c.FOV/2) * framingFactor
	if distance < 0.1 {
		distance = 0.1
	}

	c.Target = center
	c.Distance = distance
	c.RotationX = 0
	c.RotationY = 0
	c.Near = distance / 1000
	c.Far = distance * 100
	c.UpdatePosition()
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Calculate position based on spherical coordinates
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// SetViewport updates the aspect ratio; zero sizes are ignored
func (c *Camera) SetViewport(width, height float64) {
	if width > 0 && height > 0 {
		c.Aspect = width / height
	}
}

// ViewMatrix returns the world-to-camera transform
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position.Vec3(), c.Target.Vec3(), c.Up.Vec3())
}

// ProjectionMatrix returns the perspective projection
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// DistanceToTarget returns the current distance between eye and target
func (c *Camera) DistanceToTarget() float64 {
	return c.Position.Distance(c.Target)
}

// Eye returns the camera position
func (c *Camera) Eye() geometry.Vector3 {
	return c.Position
}

// FieldOfView returns the vertical field of view in radians
func (c *Camera) FieldOfView() float64 {
	return c.FOV
}

// Project projects a 3D point to 2D screen coordinates. The third value is the
// view-space depth; points behind the camera have depth <= 0.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	clip := c.ViewProjection().Mul4x1(point.Vec3().Vec4(1))
	w := clip.W()
	if w == 0 {
		return 0, 0, 0
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w

	screenX := (ndcX + 1) / 2 * width
	screenY := (1 - ndcY) / 2 * height

	return screenX, screenY, w
}
