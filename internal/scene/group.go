package scene

import "github.com/go-gl/mathgl/mgl64"

// Container accepts and releases nodes. Groups and scenes are containers.
type Container interface {
	Add(n Node)
	Remove(n Node) bool
}

// Group exclusively owns an ordered list of child nodes
type Group struct {
	nodeBase
	children []Node
}

// NewGroup creates an empty group
func NewGroup(name string) *Group {
	return &Group{nodeBase: newNodeBase(name)}
}

// NewScene creates the root group of a scene
func NewScene() *Group {
	return NewGroup("scene")
}

// Add appends n to the group. A node that already belongs to another group
// is moved; adding a node that is already a child is a no-op.
func (g *Group) Add(n Node) {
	b := n.base()
	if b.parent == g {
		return
	}
	if b.parent != nil {
		b.parent.Remove(n)
	}
	b.parent = g
	g.children = append(g.children, n)
}

// Remove detaches n, returning false if it is not a child of g
func (g *Group) Remove(n Node) bool {
	for i, child := range g.children {
		if child == n {
			g.children = append(g.children[:i], g.children[i+1:]...)
			n.base().parent = nil
			return true
		}
	}
	return false
}

// Contains reports whether n is a direct child
func (g *Group) Contains(n Node) bool {
	for _, child := range g.children {
		if child == n {
			return true
		}
	}
	return false
}

// Children returns a copy of the child list
func (g *Group) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)
	return out
}

// Len returns the number of direct children
func (g *Group) Len() int {
	return len(g.children)
}

// Walk calls fn for every visible node below root (root included) with its
// world matrix. Invisible nodes prune their whole subtree.
func Walk(root Node, fn func(n Node, world mgl64.Mat4)) {
	var parentWorld mgl64.Mat4
	if p := root.Parent(); p != nil {
		parentWorld = p.WorldMatrix()
	} else {
		parentWorld = mgl64.Ident4()
	}
	walk(root, parentWorld, fn)
}

func walk(n Node, parentWorld mgl64.Mat4, fn func(Node, mgl64.Mat4)) {
	t := n.Transform()
	if !t.Visible {
		return
	}
	world := parentWorld.Mul4(t.Matrix())
	fn(n, world)
	if g, ok := n.(*Group); ok {
		for _, child := range g.children {
			walk(child, world, fn)
		}
	}
}
