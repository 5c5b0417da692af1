package dimension

import "testing"

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis     Axis
		expected string
	}{
		{Width, "width"},
		{Height, "height"},
		{Depth, "depth"},
		{Axis(7), "axis(7)"},
	}
	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.expected {
			t.Errorf("String failed: expected %q, got %q", tt.expected, got)
		}
	}
}

func TestParseAxis(t *testing.T) {
	for in, expected := range map[string]Axis{"width": Width, "Y": Height, " depth ": Depth} {
		got, err := ParseAxis(in)
		if err != nil || got != expected {
			t.Errorf("ParseAxis(%q) failed: expected %v, got %v (%v)", in, expected, got, err)
		}
	}
	if _, err := ParseAxis("diagonal"); err == nil {
		t.Error("ParseAxis should reject unknown axes")
	}
}

func TestDefaultAxisTable(t *testing.T) {
	table := DefaultAxisTable()

	tests := []struct {
		axis       Axis
		direction  int
		capDir     int
		capSign    float64
		labelShift float64
	}{
		{Width, 0, 1, 1, 0},
		{Height, 1, 0, 1, 0},
		{Depth, 2, 0, -1, -0.5},
	}
	for _, tt := range tests {
		spec := table.Spec(tt.axis)
		if spec.Direction != tt.direction || spec.CapDirection != tt.capDir {
			t.Errorf("%v directions failed: expected %d/%d, got %d/%d", tt.axis, tt.direction, tt.capDir, spec.Direction, spec.CapDirection)
		}
		if spec.CapSign != tt.capSign {
			t.Errorf("%v cap sign failed: expected %v, got %v", tt.axis, tt.capSign, spec.CapSign)
		}
		if spec.LabelShift != tt.labelShift {
			t.Errorf("%v label shift failed: expected %v, got %v", tt.axis, tt.labelShift, spec.LabelShift)
		}
	}
}
