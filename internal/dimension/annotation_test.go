package dimension

import (
	"math"
	"testing"

	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/viewer"
)

func newTestAnnotation(axis Axis, mode LabelMode) (*Annotation, *scene.Group, *overlay.Layer) {
	root := scene.NewScene()
	layer := overlay.NewLayer()
	opts := DefaultOptions()
	opts.Label = mode
	opts.Layer = layer
	return New(axis, root, newFakeCamera(10), opts), root, layer
}

func TestAnnotationEndCapFromCameraDistance(t *testing.T) {
	a, _, _ := newTestAnnotation(Width, OverlayLabels)

	expected := 10 * math.Tan(EndCapHalfAngle)
	if !approx(a.EndCapHalfExtent(), expected) {
		t.Errorf("end-cap failed: expected %v, got %v", expected, a.EndCapHalfExtent())
	}
	if math.Abs(a.EndCapHalfExtent()-0.25) > 1e-3 {
		t.Errorf("end-cap at distance 10 should be about 0.25, got %v", a.EndCapHalfExtent())
	}

	capPoints := a.Indicator().Cap1.Geometry.Points
	if !approx(capPoints[1].Y, expected) {
		t.Errorf("cap template failed: expected %v, got %v", expected, capPoints[1].Y)
	}
}

func TestAnnotationStartsHidden(t *testing.T) {
	a, root, layer := newTestAnnotation(Height, OverlayLabels)

	if a.Visible() {
		t.Error("new annotation should be hidden")
	}
	if !root.Contains(a.Group()) {
		t.Error("group should be added to the container")
	}
	if a.Group().Transform().Visible {
		t.Error("hidden annotation group should be invisible")
	}
	if layer.Len() != 0 {
		t.Errorf("hidden label should not be attached, got %d elements", layer.Len())
	}
}

func TestAnnotationStartVisible(t *testing.T) {
	layer := overlay.NewLayer()
	opts := DefaultOptions()
	opts.Layer = layer
	opts.StartVisible = true

	a := New(Depth, scene.NewScene(), newFakeCamera(4), opts)
	if !a.Visible() || layer.Len() != 1 {
		t.Errorf("StartVisible failed: visible %v, elements %d", a.Visible(), layer.Len())
	}
}

func TestAnnotationShowHideIdempotent(t *testing.T) {
	a, _, layer := newTestAnnotation(Width, OverlayLabels)

	a.Show()
	a.Show()
	if !a.Visible() || layer.Len() != 1 || !a.Group().Transform().Visible {
		t.Errorf("Show failed: visible %v, elements %d", a.Visible(), layer.Len())
	}

	a.Hide()
	a.Hide()
	if a.Visible() || layer.Len() != 0 || a.Group().Transform().Visible {
		t.Errorf("Hide failed: visible %v, elements %d", a.Visible(), layer.Len())
	}
}

func TestAnnotationSetSizeMovesAnchor(t *testing.T) {
	a, _, _ := newTestAnnotation(Width, OverlayLabels)
	a.SetX(1)
	a.SetY(-2)
	a.SetZ(3)
	a.SetSize(6)

	expected := geometry.NewVector3(1, -2, 3)
	if got := a.LabelAnchor(); !got.ApproxEqual(expected, tolerance) {
		t.Errorf("anchor failed: expected %v, got %v", expected, got)
	}
	if a.Size() != 6 {
		t.Errorf("Size failed: expected 6, got %v", a.Size())
	}

	// Caps follow the size in world space
	cap2 := scene.WorldPosition(a.Indicator().Cap2, geometry.Vector3{})
	if !cap2.ApproxEqual(geometry.NewVector3(4, -2, 3), tolerance) {
		t.Errorf("cap2 world failed: expected (4, -2, 3), got %v", cap2)
	}

	a.SetPosition(Height, 5)
	if got := a.Position(); !got.ApproxEqual(geometry.NewVector3(1, 5, 3), tolerance) {
		t.Errorf("SetPosition failed: expected (1, 5, 3), got %v", got)
	}
}

func TestAnnotationUpdateLabelPosition(t *testing.T) {
	a, _, _ := newTestAnnotation(Width, OverlayLabels)
	a.SetText("78.72 in")
	a.SetSize(2)
	a.SetX(0.5)
	vp := Viewport{Width: 800, Height: 600}

	// Hidden: nothing happens
	a.UpdateLabelPosition(newFakeCamera(10), vp)
	if a.Screen() != (ScreenPoint{}) {
		t.Errorf("update while hidden should be a no-op, got %v", a.Screen())
	}

	a.Show()
	a.UpdateLabelPosition(newFakeCamera(10), vp)
	expected := ScreenPoint{600, 300}
	if a.Screen() != expected {
		t.Errorf("screen failed: expected %v, got %v", expected, a.Screen())
	}

	label := a.Label().(*OverlayLabel)
	box := label.Box()
	if !approx(box.X+box.Width/2, 600) {
		t.Errorf("label should be centered on the anchor, got left %v width %v", box.X, box.Width)
	}
	if !approx(box.Y+box.Height, 300) {
		t.Errorf("label bottom should sit on the anchor, got top %v height %v", box.Y, box.Height)
	}

	// Nil camera skips the frame and keeps the last position
	a.UpdateLabelPosition(nil, vp)
	if a.Screen() != expected {
		t.Errorf("nil camera should keep the last position, got %v", a.Screen())
	}
}

func TestAnnotationRelease(t *testing.T) {
	a, root, layer := newTestAnnotation(Height, OverlayLabels)
	a.Show()
	a.Release()

	if root.Contains(a.Group()) {
		t.Error("Release should remove the group from the container")
	}
	if layer.Len() != 0 {
		t.Error("Release should detach the label")
	}
	if !a.Indicator().Main.Geometry.Disposed() || !a.Indicator().Cap1.Geometry.Disposed() {
		t.Error("Release should dispose the indicator buffers")
	}

	a.Show()
	if a.Visible() {
		t.Error("released annotation should not show again")
	}
	a.Release()
}

func TestAnnotationMeshLabel(t *testing.T) {
	a, _, layer := newTestAnnotation(Depth, MeshLabels)
	a.SetText("157.44 in")
	a.Show()

	if layer.Len() != 0 {
		t.Error("mesh labels should not use the overlay layer")
	}
	label := a.Label().(*MeshLabel)
	if label.Mesh() == nil || label.Mesh().Parent() != a.Group() {
		t.Fatal("mesh label should be parented to the annotation group")
	}

	a.Hide()
	if scene.VisibleInHierarchy(label.Mesh()) {
		t.Error("hidden annotation should hide its mesh label")
	}
}

func TestAnnotationWithoutCamera(t *testing.T) {
	a := New(Width, scene.NewScene(), nil, DefaultOptions())
	if a.EndCapHalfExtent() != 0 {
		t.Errorf("end-cap without camera failed: expected 0, got %v", a.EndCapHalfExtent())
	}
	a.Show()
	a.UpdateLabelPosition(nil, Viewport{Width: 10, Height: 10})
}

func TestAnnotationEndCapFixedAcrossResize(t *testing.T) {
	cam := newFakeCamera(10)
	a := New(Width, scene.NewScene(), cam, DefaultOptions())

	expected := a.EndCapHalfExtent()
	template := a.Indicator().Cap1.Geometry
	points := append([]geometry.Vector3(nil), template.Points...)

	for i, size := range []float64{1, 5, 0, 2.5, 7} {
		if i == 2 {
			cam.distance = 100
		}
		a.SetSize(size)

		if a.EndCapHalfExtent() != expected || a.Indicator().CapHalfExtent() != expected {
			t.Errorf("SetSize(%v) end-cap failed: expected %v, got %v / %v",
				size, expected, a.EndCapHalfExtent(), a.Indicator().CapHalfExtent())
		}
		if a.Indicator().Cap1.Geometry != template || a.Indicator().Cap2.Geometry != template {
			t.Errorf("SetSize(%v) should keep the shared cap template", size)
		}
		for j, p := range template.Points {
			if p != points[j] {
				t.Errorf("SetSize(%v) cap point %d failed: expected %v, got %v", size, j, points[j], p)
			}
		}
	}
}

func TestAnnotationNilCameraPointer(t *testing.T) {
	var cam *viewer.Camera
	a := New(Width, scene.NewScene(), cam, DefaultOptions())
	if a.EndCapHalfExtent() != 0 {
		t.Errorf("end-cap with nil camera failed: expected 0, got %v", a.EndCapHalfExtent())
	}

	a.SetSize(2)
	a.Show()
	a.UpdateLabelPosition(cam, Viewport{Width: 800, Height: 600})
	if a.Screen() != (ScreenPoint{}) {
		t.Errorf("nil camera should skip the frame, got screen %v", a.Screen())
	}
}

func TestNewPanicsOnInvalidAxis(t *testing.T) {
	for _, axis := range []Axis{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%v) should panic", axis)
				}
			}()
			New(axis, scene.NewScene(), newFakeCamera(10), DefaultOptions())
		}()
	}
}
