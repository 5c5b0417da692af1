// Package analysis computes the model statistics shown next to the dimensions
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/stl"
)

// Summary holds whole-model statistics
type Summary struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	BoxVolume     float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel walks every triangle once. Shared edges are counted per
// triangle.
func AnalyzeModel(model *stl.Model) Summary {
	s := Summary{
		BoundingBox:   model.BoundingBox(),
		TriangleCount: model.TriangleCount(),
	}
	if !s.BoundingBox.IsEmpty() {
		s.Dimensions = s.BoundingBox.Size()
		s.BoxVolume = s.BoundingBox.Volume()
	}

	minLength := math.MaxFloat64
	total := 0.0
	for _, t := range model.Triangles {
		s.SurfaceArea += t.Area()
		for _, length := range [3]float64{t.V1.Distance(t.V2), t.V2.Distance(t.V3), t.V3.Distance(t.V1)} {
			total += length
			minLength = math.Min(minLength, length)
			s.MaxEdgeLength = math.Max(s.MaxEdgeLength, length)
		}
	}

	s.EdgeCount = 3 * s.TriangleCount
	if s.EdgeCount > 0 {
		s.MinEdgeLength = minLength
		s.AvgEdgeLength = total / float64(s.EdgeCount)
	}
	return s
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
