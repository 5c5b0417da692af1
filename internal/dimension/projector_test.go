package dimension

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/viewer"
)

func TestProject(t *testing.T) {
	cam := newFakeCamera(10)
	vp := Viewport{Width: 800, Height: 600}

	tests := []struct {
		world    geometry.Vector3
		expected ScreenPoint
	}{
		{geometry.NewVector3(0, 0, 0), ScreenPoint{400, 300}},
		{geometry.NewVector3(1, 1, 0), ScreenPoint{800, 0}},
		{geometry.NewVector3(-1, -1, 0.5), ScreenPoint{0, 600}},
		{geometry.NewVector3(0.5, -0.5, 0), ScreenPoint{600, 450}},
	}
	for _, tt := range tests {
		got, ok := Project(tt.world, cam, vp)
		if !ok {
			t.Fatalf("Project(%v) unexpectedly skipped", tt.world)
		}
		if !approx(got.X, tt.expected.X) || !approx(got.Y, tt.expected.Y) {
			t.Errorf("Project(%v) failed: expected %v, got %v", tt.world, tt.expected, got)
		}
	}
}

func TestProjectPerspectiveDivide(t *testing.T) {
	cam := newFakeCamera(10)
	cam.vp = mgl64.Scale3D(1, 1, 1)
	cam.vp[15] = 2 // w = 2 for every point

	got, ok := Project(geometry.NewVector3(1, 1, 0), cam, Viewport{Width: 100, Height: 100})
	if !ok {
		t.Fatal("Project unexpectedly skipped")
	}
	if !approx(got.X, 75) || !approx(got.Y, 25) {
		t.Errorf("perspective divide failed: expected (75, 25), got %v", got)
	}
}

func TestProjectSkips(t *testing.T) {
	if _, ok := Project(geometry.Vector3{}, nil, Viewport{Width: 10, Height: 10}); ok {
		t.Error("nil camera should skip")
	}

	cam := newFakeCamera(1)
	cam.vp = mgl64.Mat4{}
	if _, ok := Project(geometry.Vector3{}, cam, Viewport{Width: 10, Height: 10}); ok {
		t.Error("w = 0 should skip")
	}

	var nilCam *viewer.Camera
	if _, ok := Project(geometry.Vector3{}, nilCam, Viewport{Width: 10, Height: 10}); ok {
		t.Error("nil camera pointer should skip")
	}
}

func TestProjectSkipsBehindCamera(t *testing.T) {
	cam := newFakeCamera(1)
	cam.vp = mgl64.Ident4()
	cam.vp[15] = -1 // w = -1 for every point

	if _, ok := Project(geometry.NewVector3(0.5, 0.5, 0), cam, Viewport{Width: 10, Height: 10}); ok {
		t.Error("point behind the camera should skip")
	}
}

func TestProjectZeroViewport(t *testing.T) {
	got, ok := Project(geometry.NewVector3(0.3, 0.7, 0), newFakeCamera(1), Viewport{})
	if !ok {
		t.Fatal("zero viewport should still project")
	}
	if got.X != 0 || got.Y != 0 {
		t.Errorf("zero viewport failed: expected origin, got %v", got)
	}
}

func TestPlaceLabel(t *testing.T) {
	tests := []struct {
		name              string
		width, height     float64
		shift             float64
		expectedLeft, top float64
	}{
		{"centered above", 100, 20, 0, 350, 280},
		{"shifted up half a box", 100, 20, -0.5, 350, 270},
		{"zero box", 0, 0, -0.5, 400, 300},
	}
	for _, tt := range tests {
		left, top := PlaceLabel(ScreenPoint{400, 300}, tt.width, tt.height, tt.shift)
		if !approx(left, tt.expectedLeft) || !approx(top, tt.top) {
			t.Errorf("%s failed: expected (%v, %v), got (%v, %v)", tt.name, tt.expectedLeft, tt.top, left, top)
		}
	}
}

func TestViewportAspect(t *testing.T) {
	if got := (Viewport{Width: 800, Height: 400}).Aspect(); got != 2 {
		t.Errorf("Aspect failed: expected 2, got %v", got)
	}
	if got := (Viewport{Width: 800}).Aspect(); got != 0 {
		t.Errorf("zero height Aspect failed: expected 0, got %v", got)
	}
}
