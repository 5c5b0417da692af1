package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// Geometry is an immutable vertex buffer. Lines read Points as a strip,
// meshes read Indices as triangles.
type Geometry struct {
	Points   []geometry.Vector3
	Indices  []int
	disposed bool
}

// NewLineGeometry creates a line strip buffer
func NewLineGeometry(points ...geometry.Vector3) *Geometry {
	pts := make([]geometry.Vector3, len(points))
	copy(pts, points)
	return &Geometry{Points: pts}
}

// NewMeshGeometry creates an indexed triangle buffer
func NewMeshGeometry(vertices []geometry.Vector3, indices []int) *Geometry {
	return &Geometry{Points: vertices, Indices: indices}
}

// Bounds returns the bounding box of all points
func (g *Geometry) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range g.Points {
		bbox.Extend(p)
	}
	return bbox
}

// Center translates the points so the bounding box is centered on the origin
// and returns the offset that was applied.
func (g *Geometry) Center() geometry.Vector3 {
	offset := g.Bounds().Center().Mul(-1)
	for i := range g.Points {
		g.Points[i] = g.Points[i].Add(offset)
	}
	return offset
}

// Dispose releases the buffer. Disposed geometry draws nothing.
func (g *Geometry) Dispose() {
	g.Points = nil
	g.Indices = nil
	g.disposed = true
}

// Disposed reports whether Dispose was called
func (g *Geometry) Disposed() bool {
	return g.disposed
}

// Material describes how a primitive is drawn. A material may be shared.
type Material struct {
	Color color.RGBA
	// LineWidth is in pixels unless WorldUnits is set
	LineWidth  float64
	WorldUnits bool
	// Opaque meshes occlude what is behind them (label backing quads)
	Opaque bool
}

// Line draws its geometry as a connected strip
type Line struct {
	nodeBase
	Geometry *Geometry
	Material *Material
}

// NewLine creates a line node
func NewLine(name string, g *Geometry, m *Material) *Line {
	return &Line{nodeBase: newNodeBase(name), Geometry: g, Material: m}
}

// Segments returns the strip's segments transformed by world
func (l *Line) Segments(world mgl64.Mat4) [][2]geometry.Vector3 {
	pts := l.Geometry.Points
	if len(pts) < 2 {
		return nil
	}
	out := make([][2]geometry.Vector3, 0, len(pts)-1)
	prev := geometry.FromVec3(mgl64.TransformCoordinate(pts[0].Vec3(), world))
	for _, p := range pts[1:] {
		cur := geometry.FromVec3(mgl64.TransformCoordinate(p.Vec3(), world))
		out = append(out, [2]geometry.Vector3{prev, cur})
		prev = cur
	}
	return out
}

// Mesh draws its geometry as triangles
type Mesh struct {
	nodeBase
	Geometry *Geometry
	Material *Material
}

// NewMesh creates a mesh node
func NewMesh(name string, g *Geometry, m *Material) *Mesh {
	return &Mesh{nodeBase: newNodeBase(name), Geometry: g, Material: m}
}

// Triangles returns the mesh triangles transformed by world
func (m *Mesh) Triangles(world mgl64.Mat4) [][3]geometry.Vector3 {
	idx := m.Geometry.Indices
	out := make([][3]geometry.Vector3, 0, len(idx)/3)
	for i := 0; i+2 < len(idx); i += 3 {
		var tri [3]geometry.Vector3
		for k := 0; k < 3; k++ {
			p := m.Geometry.Points[idx[i+k]]
			tri[k] = geometry.FromVec3(mgl64.TransformCoordinate(p.Vec3(), world))
		}
		out = append(out, tri)
	}
	return out
}
