package dimension

import (
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
)

// LabelLayout is the per-frame input of a label presenter
type LabelLayout struct {
	Spec     AxisSpec
	Camera   Camera
	Viewport Viewport
	// Anchor is the label anchor in world space
	Anchor geometry.Vector3
	// Screen is the projected anchor
	Screen ScreenPoint
}

// LabelPresenter shows an annotation's text. The overlay presenter draws a
// screen-space box, the mesh presenter a text mesh inside the scene.
type LabelPresenter interface {
	// Attach binds the presenter to the annotation group; anchor is the label
	// anchor in group space
	Attach(group *scene.Group, anchor geometry.Vector3, spec AxisSpec)
	SetText(text string)
	Text() string
	Show()
	Hide()
	Layout(l LabelLayout)
	Release()
}

// Sizing controls the responsive width of overlay labels
type Sizing struct {
	// NarrowUnitsPerDigit and WideUnitsPerDigit are viewport-width units per
	// digit below and above NarrowAspect
	NarrowUnitsPerDigit float64
	WideUnitsPerDigit   float64
	NarrowAspect        float64
	// MinDigits is the smallest digit span a label is sized for
	MinDigits int
}

// DefaultSizing returns the sizing used by the viewers
func DefaultSizing() Sizing {
	return Sizing{
		NarrowUnitsPerDigit: 5,
		WideUnitsPerDigit:   2.5,
		NarrowAspect:        1.25,
		MinDigits:           2,
	}
}

// BaseUnitsPerDigit returns the width per digit for a viewport aspect ratio
func (s Sizing) BaseUnitsPerDigit(aspect float64) float64 {
	if aspect < s.NarrowAspect {
		return s.NarrowUnitsPerDigit
	}
	return s.WideUnitsPerDigit
}

// WidthVW returns the label width in viewport-width units
func (s Sizing) WidthVW(text string, aspect float64) float64 {
	digits := DigitSpan(text)
	if digits < s.MinDigits {
		digits = s.MinDigits
	}
	return s.BaseUnitsPerDigit(aspect) * float64(digits)
}

// DigitSpan returns the decimal order of magnitude of the number text starts
// with: 2 for "123.45 in", 0 for "4.5 in". Text without a leading number
// counts as 0.
func DigitSpan(text string) int {
	text = strings.TrimSpace(text)
	end := 0
	for end < len(text) && strings.IndexByte("+-.0123456789", text[end]) >= 0 {
		end++
	}
	v, err := strconv.ParseFloat(text[:end], 64)
	if err != nil || v == 0 {
		return 0
	}
	span := int(math.Floor(math.Log10(math.Abs(v))))
	if span < 0 {
		return 0
	}
	return span
}
