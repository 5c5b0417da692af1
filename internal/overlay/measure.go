package overlay

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Measurer reports the pixel size of a single line of text
type Measurer interface {
	Measure(text string, size float64) (width, height float64)
}

// FontMeasurer measures text with a TrueType font
type FontMeasurer struct {
	font  *opentype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFontMeasurer parses ttf, or the bundled Go Regular font when ttf is nil
func NewFontMeasurer(ttf []byte) (*FontMeasurer, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns a cached face at the given pixel size
func (m *FontMeasurer) Face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // size is in pixels
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face at %.1fpx: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// Measure implements Measurer. Non-positive sizes measure as zero.
func (m *FontMeasurer) Measure(text string, size float64) (float64, float64) {
	if size <= 0 {
		return 0, 0
	}
	face, err := m.Face(size)
	if err != nil {
		return 0, 0
	}
	advance := font.MeasureString(face, text)
	metrics := face.Metrics()
	return float64(advance) / 64, float64(metrics.Height) / 64
}

// FixedMeasurer assumes every rune has the same advance, in units of the font
// size. It is used when no font is available.
type FixedMeasurer struct {
	Advance    float64
	LineHeight float64
}

// Measure implements Measurer
func (m FixedMeasurer) Measure(text string, size float64) (float64, float64) {
	return float64(len([]rune(text))) * m.Advance * size, m.LineHeight * size
}
