package dimension

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/internal/textmesh"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"golang.org/x/image/font"
)

// MeshLabel draws the annotation text as a mesh inside the annotation group,
// so the group's visibility hides it together with the indicator
type MeshLabel struct {
	face     font.Face
	size     float64
	depth    float64
	material *scene.Material
	backMat  *scene.Material

	group    *scene.Group
	text     string
	position geometry.Vector3
	rotation mgl64.Quat
	mesh     *scene.Mesh
	backing  *scene.Mesh
	screen   ScreenPoint
}

// NewMeshLabel creates a label whose em is size world units tall
func NewMeshLabel(face font.Face, size float64, c color.RGBA) *MeshLabel {
	return &MeshLabel{
		face:     face,
		size:     size,
		depth:    size / 10,
		material: &scene.Material{Color: c},
		backMat:  &scene.Material{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Opaque: true},
		rotation: mgl64.QuatIdent(),
	}
}

// Mesh returns the current text mesh, nil before Attach
func (l *MeshLabel) Mesh() *scene.Mesh {
	return l.mesh
}

// Backing returns the opaque quad behind the text
func (l *MeshLabel) Backing() *scene.Mesh {
	return l.backing
}

// Screen returns the projected anchor recorded by the last Layout
func (l *MeshLabel) Screen() ScreenPoint {
	return l.screen
}

// Attach implements LabelPresenter
func (l *MeshLabel) Attach(group *scene.Group, anchor geometry.Vector3, spec AxisSpec) {
	l.group = group
	l.position = anchor.Add(spec.MeshOffset.Mul(l.size))
	l.rebuild()
}

// SetText implements LabelPresenter. The mesh is rebuilt centered on its own
// origin and put back where the previous one was.
func (l *MeshLabel) SetText(text string) {
	l.text = text
	if l.group != nil {
		l.rebuild()
	}
}

func (l *MeshLabel) rebuild() {
	if l.mesh != nil {
		l.position = l.mesh.Transform().Position
		l.rotation = l.mesh.Transform().Rotation
	}
	l.dispose()

	g := textmesh.Build(l.face, l.text, textmesh.Options{Size: l.size, Depth: l.depth})
	back := textmesh.BackingQuad(g.Bounds(), l.size/4, -l.depth)

	l.mesh = scene.NewMesh("label", g, l.material)
	l.backing = scene.NewMesh("label-backing", back, l.backMat)
	for _, m := range []*scene.Mesh{l.backing, l.mesh} {
		m.Transform().Position = l.position
		m.Transform().Rotation = l.rotation
		l.group.Add(m)
	}
}

func (l *MeshLabel) dispose() {
	for _, m := range []*scene.Mesh{l.mesh, l.backing} {
		if m == nil {
			continue
		}
		if l.group != nil {
			l.group.Remove(m)
		}
		m.Geometry.Dispose()
	}
	l.mesh, l.backing = nil, nil
}

// Text implements LabelPresenter
func (l *MeshLabel) Text() string {
	return l.text
}

// Show implements LabelPresenter; visibility follows the annotation group
func (l *MeshLabel) Show() {}

// Hide implements LabelPresenter; visibility follows the annotation group
func (l *MeshLabel) Hide() {}

type eyeCamera interface {
	Eye() geometry.Vector3
}

// Layout implements LabelPresenter. Cameras that expose their eye position
// get the label turned to face them.
func (l *MeshLabel) Layout(layout LabelLayout) {
	l.screen = layout.Screen
	cam, ok := layout.Camera.(eyeCamera)
	if !ok || l.mesh == nil {
		return
	}
	d := cam.Eye().Sub(layout.Anchor)
	yaw := math.Atan2(d.X, d.Z)
	pitch := -math.Atan2(d.Y, math.Hypot(d.X, d.Z))
	l.rotation = mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}).Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0}))
	l.mesh.Transform().Rotation = l.rotation
	l.backing.Transform().Rotation = l.rotation
}

// Release implements LabelPresenter
func (l *MeshLabel) Release() {
	l.dispose()
	l.group = nil
}
