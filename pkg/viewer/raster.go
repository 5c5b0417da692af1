package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is a software render target with a depth buffer
type Canvas struct {
	img     *image.RGBA
	zbuffer []float64
}

// NewCanvas creates a canvas cleared to background
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}
	return &Canvas{img: img, zbuffer: zbuffer}
}

// Image returns the rendered image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Depth returns the depth stored at a pixel, MaxFloat64 where nothing was drawn
func (c *Canvas) Depth(x, y int) float64 {
	b := c.img.Bounds()
	if x < 0 || y < 0 || x >= b.Max.X || y >= b.Max.Y {
		return math.MaxFloat64
	}
	return c.zbuffer[y*b.Max.X+x]
}

// FillTriangle fills a screen-space triangle with depth testing. Each vertex
// is (x, y, depth); smaller depths are closer.
func (c *Canvas) FillTriangle(p1, p2, p3 [3]float64, col color.RGBA) {
	vertices := [3][3]float64{p1, p2, p3}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 := vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 := vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 := vertices[2][0], vertices[2][1], vertices[2][2]

	bounds := c.img.Bounds()
	width := bounds.Max.X

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		var xs, zs [2]float64
		n := 0
		edge := func(ax, ay, az, bx, by, bz float64) {
			if n == 2 || ay == by || fy < ay || fy > by {
				return
			}
			t := (fy - ay) / (by - ay)
			xs[n] = ax + t*(bx-ax)
			zs[n] = az + t*(bz-az)
			n++
		}
		edge(x1, y1, z1, x2, y2, z2)
		edge(x2, y2, z2, x3, y3, z3)
		edge(x1, y1, z1, x3, y3, z3)
		if n < 2 {
			continue
		}

		xStart, xEnd, zStart, zEnd := xs[0], xs[1], zs[0], zs[1]
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		xStartInt := int(math.Max(0, math.Ceil(xStart)))
		xEndInt := int(math.Min(float64(bounds.Max.X-1), xEnd))

		for x := xStartInt; x <= xEndInt; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if z < c.zbuffer[idx] {
				c.zbuffer[idx] = z
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. Widths above one pixel
// stamp a square brush at every step. Lines ignore the depth buffer.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, lineWidth float64, col color.RGBA) {
	half := int(math.Round(lineWidth/2)) - 1
	if half < 0 {
		half = 0
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy
	for {
		c.stamp(x1, y1, half, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (c *Canvas) stamp(x, y, half int, col color.RGBA) {
	bounds := c.img.Bounds()
	for py := y - half; py <= y+half; py++ {
		for px := x - half; px <= x+half; px++ {
			if px >= 0 && px < bounds.Max.X && py >= 0 && py < bounds.Max.Y {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

// FillRect blends a rectangle over the image
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	r := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

// DrawText draws text with its top-left corner at (x, y)
func (c *Canvas) DrawText(face font.Face, x, y float64, text string, col color.RGBA) {
	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: col},
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y*64) + ascent},
	}
	d.DrawString(text)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
