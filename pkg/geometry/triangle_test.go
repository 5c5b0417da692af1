package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.CalculateNormal()
	expected := NewVector3(0, 0, 1)

	if !normal.ApproxEqual(expected, 1e-10) {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleMapRecomputesNormal(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	// Z-up to Y-up: (x, y, z) -> (x, z, -y)
	mapped := tri.Map(func(v Vector3) Vector3 { return NewVector3(v.X, v.Z, -v.Y) })

	if mapped.V3 != NewVector3(0, 0, -1) {
		t.Errorf("Map failed: expected V3 (0,0,-1), got %v", mapped.V3)
	}
	if !mapped.Normal.ApproxEqual(NewVector3(0, 1, 0), 1e-10) {
		t.Errorf("Map normal failed: expected (0,1,0), got %v", mapped.Normal)
	}
}
