package stl

import (
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// ToYUp converts a Z-up model (the usual STL convention) to the Y-up frame the
// viewer and the dimension annotations use. The model is modified in place.
func (m *Model) ToYUp() {
	for i, triangle := range m.Triangles {
		m.Triangles[i] = triangle.Map(func(v geometry.Vector3) geometry.Vector3 {
			return geometry.NewVector3(v.X, v.Z, -v.Y)
		})
	}
}

// Translate moves every vertex by offset
func (m *Model) Translate(offset geometry.Vector3) {
	for i, triangle := range m.Triangles {
		m.Triangles[i] = geometry.NewTriangle(
			triangle.Normal,
			triangle.V1.Add(offset),
			triangle.V2.Add(offset),
			triangle.V3.Add(offset),
		)
	}
}
