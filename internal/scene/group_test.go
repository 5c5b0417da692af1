package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

func TestGroupAddRemove(t *testing.T) {
	root := NewScene()
	group := NewGroup("dimension")

	root.Add(group)
	root.Add(group)

	if root.Len() != 1 {
		t.Fatalf("Add twice: expected 1 child, got %d", root.Len())
	}
	if group.Parent() != root {
		t.Errorf("Parent failed: expected root, got %v", group.Parent())
	}

	if !root.Remove(group) {
		t.Error("Remove failed: expected true")
	}
	if root.Remove(group) {
		t.Error("second Remove should report false")
	}
	if group.Parent() != nil {
		t.Errorf("Parent after Remove: expected nil, got %v", group.Parent())
	}
}

func TestGroupAddMovesNode(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	anchor := NewAnchor("anchor", geometry.Vector3{})

	a.Add(anchor)
	b.Add(anchor)

	if a.Contains(anchor) {
		t.Error("node should have left its old parent")
	}
	if !b.Contains(anchor) || anchor.Parent() != b {
		t.Error("node should belong to its new parent")
	}
}

func TestWorldPosition(t *testing.T) {
	root := NewScene()
	group := NewGroup("dimension")
	group.Transform().Position = geometry.NewVector3(1, 2, 3)
	root.Add(group)

	line := NewLine("line", NewLineGeometry(
		geometry.NewVector3(-0.5, 0, 0),
		geometry.NewVector3(0.5, 0, 0),
	), &Material{})
	line.Transform().Scale = geometry.NewVector3(4, 1, 1)
	group.Add(line)

	segments := line.Segments(line.WorldMatrix())
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	start, end := segments[0][0], segments[0][1]
	if !start.ApproxEqual(geometry.NewVector3(-1, 2, 3), 1e-10) {
		t.Errorf("start failed: got %v", start)
	}
	if math.Abs(start.Distance(end)-4) > 1e-10 {
		t.Errorf("world length failed: expected 4, got %v", start.Distance(end))
	}

	pos := WorldPosition(line, geometry.NewVector3(0.5, 0, 0))
	if !pos.ApproxEqual(geometry.NewVector3(3, 2, 3), 1e-10) {
		t.Errorf("WorldPosition failed: got %v", pos)
	}
}

func TestWalkPrunesInvisible(t *testing.T) {
	root := NewScene()
	shown := NewGroup("shown")
	hidden := NewGroup("hidden")
	hidden.Transform().Visible = false
	root.Add(shown)
	root.Add(hidden)
	hidden.Add(NewAnchor("inner", geometry.Vector3{}))
	shown.Add(NewAnchor("visible-inner", geometry.Vector3{}))

	var names []string
	Walk(root, func(n Node, _ mgl64.Mat4) {
		names = append(names, n.Name())
	})

	expected := []string{"scene", "shown", "visible-inner"}
	if len(names) != len(expected) {
		t.Fatalf("Walk failed: expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Walk[%d]: expected %s, got %s", i, expected[i], names[i])
		}
	}

	inner := hidden.Children()[0]
	if VisibleInHierarchy(inner) {
		t.Error("child of hidden group should not be visible in hierarchy")
	}
}

func TestGeometryCenter(t *testing.T) {
	g := NewMeshGeometry([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(4, 2, 0),
		geometry.NewVector3(4, 0, 1),
	}, []int{0, 1, 2})

	offset := g.Center()
	if !offset.ApproxEqual(geometry.NewVector3(-2, -1, -0.5), 1e-10) {
		t.Errorf("Center offset failed: got %v", offset)
	}
	if !g.Bounds().Center().ApproxEqual(geometry.Vector3{}, 1e-10) {
		t.Errorf("centered bounds failed: got %v", g.Bounds().Center())
	}

	g.Dispose()
	if !g.Disposed() || len(g.Points) != 0 {
		t.Error("Dispose should release the buffer")
	}
}

func TestMeshTriangles(t *testing.T) {
	mesh := NewMesh("quad", NewMeshGeometry([]geometry.Vector3{
		geometry.NewVector3(-1, -1, 0),
		geometry.NewVector3(1, -1, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(-1, 1, 0),
	}, []int{0, 1, 2, 0, 2, 3}), &Material{Opaque: true})
	mesh.Transform().Position = geometry.NewVector3(0, 0, 5)

	tris := mesh.Triangles(mesh.WorldMatrix())
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
	if tris[1][2] != geometry.NewVector3(-1, 1, 5) {
		t.Errorf("triangle vertex failed: got %v", tris[1][2])
	}
}
