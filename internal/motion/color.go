package motion

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorSweep blends between two colours as a scalar moves through a domain.
type ColorSweep struct {
	from    colorful.Color
	to      colorful.Color
	mapping Mapping
}

// NewColorSweep parses two hex colours and returns a sweep across m.
func NewColorSweep(fromHex, toHex string, m Mapping) (ColorSweep, error) {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return ColorSweep{}, fmt.Errorf("sweep start %q: %w", fromHex, err)
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return ColorSweep{}, fmt.Errorf("sweep end %q: %w", toHex, err)
	}
	return ColorSweep{from: from, to: to, mapping: m}, nil
}

// MustColorSweep is NewColorSweep for package-level palettes.
func MustColorSweep(fromHex, toHex string, m Mapping) ColorSweep {
	s, err := NewColorSweep(fromHex, toHex, m)
	if err != nil {
		panic(err)
	}
	return s
}

// At returns the blended colour for v.
func (s ColorSweep) At(v float64) colorful.Color {
	return s.from.BlendLab(s.to, s.mapping.Progress(v)).Clamped()
}

// Hex returns the blended colour for v as "#rrggbb".
func (s ColorSweep) Hex(v float64) string {
	return s.At(v).Hex()
}
