package palette

import (
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Scheme parameters.
const (
	complementLightDelta   = 20.0
	complementDesaturation = 30.0
	analogousAngle         = 30.0
	analogousLightDelta    = 20.0
	splitAngle             = 30.0
)

// monochromaticLadder is the lightness of each monochromatic step.
var monochromaticLadder = []float64{20, 40, 60, 80, 95}

// base returns the rounded HSL triple every scheme works from.
func base(c colour.Color) colour.HSL {
	return c.HSL().Round()
}

// Monochromatic keeps hue and saturation and walks a fixed lightness ladder.
func Monochromatic(c colour.Color) Palette {
	h := base(c)
	colors := make([]colour.Color, len(monochromaticLadder))
	for i, l := range monochromaticLadder {
		colors[i] = colour.FromHSL(h.H, h.S, l)
	}
	return newPalette(SchemeMonochromatic, "Monochromatic", c, colors)
}

// Complementary pairs the base with the opposite hue, plus lighter and darker
// complements and a desaturated base.
func Complementary(c colour.Color) Palette {
	h := base(c)
	comp := h.H + 180
	return newPalette(SchemeComplementary, "Complementary", c, []colour.Color{
		c,
		colour.FromHSL(comp, h.S, h.L),
		colour.FromHSL(comp, h.S, h.L+complementLightDelta),
		colour.FromHSL(comp, h.S, h.L-complementLightDelta),
		colour.FromHSL(h.H, h.S-complementDesaturation, h.L),
	})
}

// Analogous uses the neighbouring hues 30 degrees either side of the base,
// plus a lighter and a darker tint of the base.
func Analogous(c colour.Color) Palette {
	h := base(c)
	return newPalette(SchemeAnalogous, "Analogous", c, []colour.Color{
		colour.FromHSL(h.H-analogousAngle, h.S, h.L),
		c,
		colour.FromHSL(h.H+analogousAngle, h.S, h.L),
		colour.FromHSL(h.H, h.S, h.L+analogousLightDelta),
		colour.FromHSL(h.H, h.S, h.L-analogousLightDelta),
	})
}

// Triadic spaces three hues evenly around the wheel.
func Triadic(c colour.Color) Palette {
	h := base(c)
	return newPalette(SchemeTriadic, "Triadic", c, []colour.Color{
		c,
		colour.FromHSL(h.H+120, h.S, h.L),
		colour.FromHSL(h.H+240, h.S, h.L),
	})
}

// SplitComplementary uses the two hues either side of the complement.
func SplitComplementary(c colour.Color) Palette {
	h := base(c)
	comp := h.H + 180
	return newPalette(SchemeSplitComplementary, "Split Complementary", c, []colour.Color{
		c,
		colour.FromHSL(comp-splitAngle, h.S, h.L),
		colour.FromHSL(comp+splitAngle, h.S, h.L),
	})
}

// Dominant wraps extracted colours, most frequent first, as a palette.
// The first colour is used as the base. It returns false for an empty list.
func Dominant(colors []colour.Color) (Palette, bool) {
	if len(colors) == 0 {
		return Palette{}, false
	}
	return newPalette(SchemeDominant, "Dominant Colors", colors[0], colors), true
}

// ForScheme generates a single hue-derived scheme.
func ForScheme(s Scheme, c colour.Color) (Palette, error) {
	switch s {
	case SchemeMonochromatic:
		return Monochromatic(c), nil
	case SchemeComplementary:
		return Complementary(c), nil
	case SchemeAnalogous:
		return Analogous(c), nil
	case SchemeTriadic:
		return Triadic(c), nil
	case SchemeSplitComplementary:
		return SplitComplementary(c), nil
	default:
		return Palette{}, fmt.Errorf("scheme %s cannot be derived from a single colour", s)
	}
}

// Generate derives every hue-based scheme from c, in Schemes order.
func Generate(c colour.Color) []Palette {
	schemes := Schemes()
	out := make([]Palette, 0, len(schemes))
	for _, s := range schemes {
		p, _ := ForScheme(s, c)
		out = append(out, p)
	}
	return out
}
