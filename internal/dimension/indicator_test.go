package dimension

import (
	"image/color"
	"testing"

	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

func TestIndicatorCapsAtEnds(t *testing.T) {
	table := DefaultAxisTable()
	material := &scene.Material{}

	tests := []struct {
		axis Axis
		cap1 geometry.Vector3
		cap2 geometry.Vector3
	}{
		{Width, geometry.NewVector3(-1.5, 0, 0), geometry.NewVector3(1.5, 0, 0)},
		{Height, geometry.NewVector3(0, -1.5, 0), geometry.NewVector3(0, 1.5, 0)},
		{Depth, geometry.NewVector3(0, 0, 1.5), geometry.NewVector3(0, 0, -1.5)},
	}

	for _, tt := range tests {
		ind := BuildIndicator(table.Spec(tt.axis), 0.25, material)
		ind.Scale(3)

		if got := ind.Cap1.Transform().Position; !got.ApproxEqual(tt.cap1, tolerance) {
			t.Errorf("%v cap1 failed: expected %v, got %v", tt.axis, tt.cap1, got)
		}
		if got := ind.Cap2.Transform().Position; !got.ApproxEqual(tt.cap2, tolerance) {
			t.Errorf("%v cap2 failed: expected %v, got %v", tt.axis, tt.cap2, got)
		}

		// Scaled main segment spans the full size
		segs := ind.Main.Segments(ind.Main.Transform().Matrix())
		length := segs[0][0].Distance(segs[0][1])
		if !approx(length, 3) {
			t.Errorf("%v main length failed: expected 3, got %v", tt.axis, length)
		}
	}
}

func TestIndicatorSharesBuffers(t *testing.T) {
	material := &scene.Material{}
	ind := BuildIndicator(DefaultAxisTable().Spec(Width), 0.5, material)

	if ind.Cap1.Geometry != ind.Cap2.Geometry {
		t.Error("end-caps should share one template geometry")
	}
	if ind.Main.Material != material || ind.Cap1.Material != material || ind.Cap2.Material != material {
		t.Error("all primitives should share the material")
	}

	mainPoints := ind.Main.Geometry.Points
	ind.Scale(10)
	ind.Scale(4)
	if &ind.Main.Geometry.Points[0] != &mainPoints[0] {
		t.Error("Scale should not rebuild the main segment buffer")
	}

	capPoints := ind.Cap1.Geometry.Points
	expected := []geometry.Vector3{geometry.NewVector3(0, -0.5, 0), geometry.NewVector3(0, 0.5, 0)}
	for i := range expected {
		if !capPoints[i].ApproxEqual(expected[i], tolerance) {
			t.Errorf("cap point %d failed: expected %v, got %v", i, expected[i], capPoints[i])
		}
	}
}

func TestIndicatorZeroAndNegativeSize(t *testing.T) {
	ind := BuildIndicator(DefaultAxisTable().Spec(Height), 0.5, &scene.Material{})

	ind.Scale(0)
	if !ind.Cap1.Transform().Position.ApproxEqual(ind.Cap2.Transform().Position, tolerance) {
		t.Error("caps should coincide at size 0")
	}

	ind.Scale(-2)
	if ind.Size() != 0 {
		t.Errorf("negative size failed: expected 0, got %v", ind.Size())
	}
	if !ind.Cap1.Transform().Position.ApproxEqual(geometry.Vector3{}, tolerance) {
		t.Errorf("negative size cap failed: expected origin, got %v", ind.Cap1.Transform().Position)
	}
}

func TestIndicatorMidpoint(t *testing.T) {
	ind := BuildIndicator(DefaultAxisTable().Spec(Depth), 0.5, &scene.Material{})
	for _, size := range []float64{0, 1, 7.5} {
		ind.Scale(size)
		if mid := ind.Midpoint(); !mid.ApproxEqual(geometry.Vector3{}, tolerance) {
			t.Errorf("midpoint at size %v failed: expected origin, got %v", size, mid)
		}
	}
}

func TestIndicatorRenderers(t *testing.T) {
	c := color.RGBA{R: 10, A: 255}

	thin := ThinLine{}.Material(c, 1, false)
	thinHandheld := ThinLine{}.Material(c, 1, true)
	if thin.WorldUnits || thin.LineWidth != 2 || thinHandheld.LineWidth != 1 {
		t.Errorf("thin widths failed: got desktop %v handheld %v", thin.LineWidth, thinHandheld.LineWidth)
	}

	thick := ThickLine{}.Material(c, 1, false)
	thickHandheld := ThickLine{}.Material(c, 1, true)
	if !thick.WorldUnits {
		t.Error("thick lines should be sized in world units")
	}
	if thickHandheld.LineWidth >= thick.LineWidth {
		t.Errorf("handheld should be thinner: desktop %v handheld %v", thick.LineWidth, thickHandheld.LineWidth)
	}
	if thick.Color != c {
		t.Errorf("color failed: expected %v, got %v", c, thick.Color)
	}

	for _, name := range []string{"thin", "thick", ""} {
		if _, err := IndicatorRendererByName(name); err != nil {
			t.Errorf("IndicatorRendererByName(%q) failed: %v", name, err)
		}
	}
	if _, err := IndicatorRendererByName("dashed"); err == nil {
		t.Error("unknown style should fail")
	}
}
