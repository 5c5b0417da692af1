package dimension

import (
	"fmt"
	"strings"
)

// Units converts model lengths into label text
type Units struct {
	Name     string
	Suffix   string
	PerMeter float64
}

var (
	Inches      = Units{Name: "in", Suffix: "in", PerMeter: 39.36}
	Millimeters = Units{Name: "mm", Suffix: "mm", PerMeter: 1000}
	Centimeters = Units{Name: "cm", Suffix: "cm", PerMeter: 100}
	Meters      = Units{Name: "m", Suffix: "m", PerMeter: 1}
)

// UnitsByName returns the preset called name
func UnitsByName(name string) (Units, error) {
	for _, u := range []Units{Inches, Millimeters, Centimeters, Meters} {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return Units{}, fmt.Errorf("unknown units %q", name)
}

// Format renders meters with two decimals and the unit suffix
func (u Units) Format(meters float64) string {
	return fmt.Sprintf("%.2f %s", meters*u.PerMeter, u.Suffix)
}
