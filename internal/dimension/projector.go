package dimension

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// Camera is what the annotations need from the viewer's camera
type Camera interface {
	ViewProjection() mgl64.Mat4
	DistanceToTarget() float64
}

// Viewport is the drawable area in pixels
type Viewport struct {
	Width, Height float64
}

// Aspect returns Width/Height, or 0 for a zero-height viewport
func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 0
	}
	return v.Width / v.Height
}

// usable rejects nil cameras, including a nil pointer stored in the interface
func usable(cam Camera) bool {
	if cam == nil {
		return false
	}
	v := reflect.ValueOf(cam)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}

// ScreenPoint is a position in pixels, origin top-left, Y down
type ScreenPoint struct {
	X, Y float64
}

// Project maps a world position to screen pixels. It reports false when there
// is no camera or the point is on or behind the camera plane; callers skip
// the frame in that case.
func Project(world geometry.Vector3, cam Camera, vp Viewport) (ScreenPoint, bool) {
	if !usable(cam) {
		return ScreenPoint{}, false
	}
	clip := cam.ViewProjection().Mul4x1(world.Vec3().Vec4(1))
	if clip.W() <= 0 {
		return ScreenPoint{}, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return ScreenPoint{
		X: (ndcX + 1) / 2 * vp.Width,
		Y: (1 - ndcY) / 2 * vp.Height,
	}, true
}

// PlaceLabel returns the top-left corner of a label box of the given size so
// that it is horizontally centered on p and sits just above it. shift moves
// the box further, in box heights.
func PlaceLabel(p ScreenPoint, width, height, shift float64) (left, top float64) {
	left = p.X - width/2
	top = p.Y - height + shift*height
	return left, top
}
