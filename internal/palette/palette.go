// Package palette derives colour schemes from a base colour using hue rotation.
package palette

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Scheme identifies how a palette was derived.
type Scheme string

const (
	SchemeMonochromatic      Scheme = "monochromatic"
	SchemeAnalogous          Scheme = "analogous"
	SchemeComplementary      Scheme = "complementary"
	SchemeTriadic            Scheme = "triadic"
	SchemeSplitComplementary Scheme = "split-complementary"
	SchemeDominant           Scheme = "dominant"
)

// Schemes returns the hue-derived schemes in generation order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeMonochromatic,
		SchemeComplementary,
		SchemeAnalogous,
		SchemeTriadic,
		SchemeSplitComplementary,
	}
}

// ParseScheme converts a scheme name to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	for _, valid := range append(Schemes(), SchemeDominant) {
		if s == valid {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown scheme: %s (valid schemes: %v)", name, Schemes())
}

// Palette is a named, ordered sequence of colours derived from one base colour.
type Palette struct {
	Name   string          `json:"name"`
	Scheme Scheme          `json:"type"`
	Base   colour.Swatch   `json:"base"`
	Colors []colour.Swatch `json:"colors"`
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Hex returns the palette colours as hex strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}

// String returns a human-readable representation of the palette.
func (p Palette) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d colors):\n", p.Name, len(p.Colors))
	for i, c := range p.Colors {
		fmt.Fprintf(&b, "  %2d: %s %-18s %s\n", i+1, c.Hex(), c.Color.String(), c.Name)
	}
	return b.String()
}

func newPalette(scheme Scheme, name string, base colour.Color, colors []colour.Color) Palette {
	swatches := make([]colour.Swatch, len(colors))
	for i, c := range colors {
		swatches[i] = colour.NewSwatch(c)
	}
	return Palette{
		Name:   name,
		Scheme: scheme,
		Base:   colour.NewSwatch(base),
		Colors: swatches,
	}
}
