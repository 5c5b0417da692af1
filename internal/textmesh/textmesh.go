// Package textmesh builds extruded text geometry for labels that live inside
// the 3D scene. Glyphs are rasterized with the given face and every run of
// covered pixels in a row becomes a box, so the mesh keeps the glyph shapes
// without a triangulator.
package textmesh

import (
	"image"
	"image/color"

	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// coverage threshold for a pixel to be part of a glyph
const alphaCutoff = 128

// Options controls the size of the generated mesh in world units
type Options struct {
	// Size is the world height of one em
	Size float64
	// Depth is the extrusion along +Z
	Depth float64
}

// Build returns centered geometry for text. Empty or blank text yields an
// empty geometry rather than an error.
func Build(face font.Face, text string, opts Options) *scene.Geometry {
	em := float64(face.Metrics().Height) / 64
	if em <= 0 {
		em = 1
	}
	scale := opts.Size / em

	b := &builder{scale: scale, depth: opts.Depth}

	dot := fixed.Point26_6{}
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if ok && mask != nil {
			b.addGlyph(dr, mask, maskp)
		}
		dot.X += advance
		prev = r
	}

	g := scene.NewMeshGeometry(b.vertices, b.indices)
	if len(b.vertices) > 0 {
		g.Center()
	}
	return g
}

type builder struct {
	scale    float64
	depth    float64
	vertices []geometry.Vector3
	indices  []int
}

func (b *builder) addGlyph(dr image.Rectangle, mask image.Image, maskp image.Point) {
	for y := 0; y < dr.Dy(); y++ {
		runStart := -1
		for x := 0; x <= dr.Dx(); x++ {
			on := x < dr.Dx() && covered(mask, maskp.X+x, maskp.Y+y)
			if on && runStart < 0 {
				runStart = x
			}
			if !on && runStart >= 0 {
				b.addBox(dr.Min.X+runStart, dr.Min.X+x, dr.Min.Y+y)
				runStart = -1
			}
		}
	}
}

func covered(mask image.Image, x, y int) bool {
	a := color.AlphaModel.Convert(mask.At(x, y)).(color.Alpha)
	return a.A >= alphaCutoff
}

// addBox emits a box spanning pixel columns [x0, x1) of pixel row y.
// Pixel rows grow downwards, world Y grows upwards.
func (b *builder) addBox(x0, x1, y int) {
	left := float64(x0) * b.scale
	right := float64(x1) * b.scale
	top := -float64(y) * b.scale
	bottom := -float64(y+1) * b.scale

	base := len(b.vertices)
	for _, z := range []float64{0, b.depth} {
		b.vertices = append(b.vertices,
			geometry.NewVector3(left, bottom, z),
			geometry.NewVector3(right, bottom, z),
			geometry.NewVector3(right, top, z),
			geometry.NewVector3(left, top, z),
		)
	}

	faces := [][4]int{
		{4, 5, 6, 7}, // front
		{1, 0, 3, 2}, // back
		{0, 4, 7, 3}, // left
		{5, 1, 2, 6}, // right
		{7, 6, 2, 3}, // top
		{0, 1, 5, 4}, // bottom
	}
	for _, f := range faces {
		b.indices = append(b.indices,
			base+f[0], base+f[1], base+f[2],
			base+f[0], base+f[2], base+f[3],
		)
	}
}

// BackingQuad returns an opaque quad covering bounds plus padding, placed at z.
// It sits behind the text so the indicator lines do not show through.
func BackingQuad(bounds geometry.BoundingBox, padding, z float64) *scene.Geometry {
	if bounds.IsEmpty() {
		return scene.NewMeshGeometry(nil, nil)
	}
	minX, minY := bounds.Min.X-padding, bounds.Min.Y-padding
	maxX, maxY := bounds.Max.X+padding, bounds.Max.Y+padding
	return scene.NewMeshGeometry([]geometry.Vector3{
		geometry.NewVector3(minX, minY, z),
		geometry.NewVector3(maxX, minY, z),
		geometry.NewVector3(maxX, maxY, z),
		geometry.NewVector3(minX, maxY, z),
	}, []int{0, 1, 2, 0, 2, 3})
}
