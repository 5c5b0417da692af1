package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

const asciiCube = `solid box
  facet normal 0 0 -1
    outer loop
      vertex -1 -0.5 -2
      vertex 1 -0.5 -2
      vertex 1 0.5 -2
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex -1 -0.5 2
      vertex 1 0.5 2
      vertex -1 0.5 2
    endloop
  endfacet
endsolid box
`

func TestParseReaderASCII(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "box" {
		t.Errorf("Name failed: expected box, got %q", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("TriangleCount failed: expected 2, got %d", model.TriangleCount())
	}

	bbox := model.BoundingBox()
	if bbox.Min != geometry.NewVector3(-1, -0.5, -2) || bbox.Max != geometry.NewVector3(1, 0.5, 2) {
		t.Errorf("BoundingBox failed: got %v", bbox)
	}
}

func TestParseReaderBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary part")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	facet := [12]float32{0, 0, 1, 0, 0, 0, 3, 0, 0, 0, 4, 0}
	binary.Write(&buf, binary.LittleEndian, facet)
	binary.Write(&buf, binary.LittleEndian, uint16(0))

	model, err := ParseReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "binary part" {
		t.Errorf("Name failed: got %q", model.Name)
	}
	size := model.BoundingBox().Size()
	if math.Abs(size.X-3) > 1e-10 || math.Abs(size.Y-4) > 1e-10 {
		t.Errorf("Size failed: expected (3,4,0), got %v", size)
	}
}

func TestParseReaderEmpty(t *testing.T) {
	_, err := ParseReader(strings.NewReader("solid nothing\nendsolid nothing\n"))
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestModelToYUp(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	model.ToYUp()
	size := model.BoundingBox().Size()

	// Z extent becomes the height, Y extent becomes the depth
	expected := geometry.NewVector3(2, 4, 1)
	if !size.ApproxEqual(expected, 1e-10) {
		t.Errorf("ToYUp failed: expected size %v, got %v", expected, size)
	}
}

func TestModelTranslate(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	model.Translate(geometry.NewVector3(1, 0.5, 0))
	bbox := model.BoundingBox()
	if bbox.Min != geometry.NewVector3(0, 0, -2) {
		t.Errorf("Translate failed: got min %v", bbox.Min)
	}
}
