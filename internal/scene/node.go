// Package scene is a small owning scene graph: groups own their children and
// keep the parent links themselves, so callers only ever Add or Remove.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// Transform is the local placement of a node relative to its parent
type Transform struct {
	Position geometry.Vector3
	Rotation mgl64.Quat
	Scale    geometry.Vector3
	Visible  bool
}

// NewTransform returns the identity transform, visible
func NewTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    geometry.NewVector3(1, 1, 1),
		Visible:  true,
	}
}

// Matrix returns translation * rotation * scale
func (t Transform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X, t.Position.Y, t.Position.Z)
	scale := mgl64.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z)
	return translate.Mul4(t.Rotation.Normalize().Mat4()).Mul4(scale)
}

// Node is anything that can live in the graph
type Node interface {
	Name() string
	Transform() *Transform
	Parent() *Group
	WorldMatrix() mgl64.Mat4
	base() *nodeBase
}

type nodeBase struct {
	name      string
	transform Transform
	parent    *Group
}

func newNodeBase(name string) nodeBase {
	return nodeBase{name: name, transform: NewTransform()}
}

func (n *nodeBase) base() *nodeBase { return n }

// Name returns the debug name given at construction
func (n *nodeBase) Name() string { return n.name }

// Transform returns the mutable local transform
func (n *nodeBase) Transform() *Transform { return &n.transform }

// Parent returns the owning group, nil for roots and detached nodes
func (n *nodeBase) Parent() *Group { return n.parent }

// WorldMatrix composes the local matrix with every ancestor's
func (n *nodeBase) WorldMatrix() mgl64.Mat4 {
	m := n.transform.Matrix()
	if n.parent != nil {
		m = n.parent.WorldMatrix().Mul4(m)
	}
	return m
}

// VisibleInHierarchy reports whether the node and all its ancestors are visible
func VisibleInHierarchy(n Node) bool {
	if !n.Transform().Visible {
		return false
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if !p.Transform().Visible {
			return false
		}
	}
	return true
}

// WorldPosition transforms a point in n's local space into world space
func WorldPosition(n Node, local geometry.Vector3) geometry.Vector3 {
	return geometry.FromVec3(mgl64.TransformCoordinate(local.Vec3(), n.WorldMatrix()))
}

// Anchor is an empty node used as a reference point
type Anchor struct {
	nodeBase
}

// NewAnchor creates an anchor at local position pos
func NewAnchor(name string, pos geometry.Vector3) *Anchor {
	a := &Anchor{nodeBase: newNodeBase(name)}
	a.transform.Position = pos
	return a
}
