package colour

import (
	"image/color"
	"math"
)

// MaxDistance is the distance between black and white in RGB space.
var MaxDistance = math.Sqrt(3 * 255 * 255)

// Distance returns the Euclidean distance between two colours in RGB space.
// The result is in the range [0, MaxDistance].
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.x.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := float64(r>>8) / 255.0
	gf := float64(g>>8) / 255.0
	bf := float64(b>>8) / 255.0

	return 0.2126*gammaCorrect(rf) + 0.7152*gammaCorrect(gf) + 0.0722*gammaCorrect(bf)
}

// gammaCorrect linearises an sRGB component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.x.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result does not depend on argument order.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormalizeHue(h1) - NormalizeHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// InterpolateHue moves from h1 towards h2 by fraction t along the shorter arc.
// The result is wrapped into [0, 360).
func InterpolateHue(h1, h2, t float64) float64 {
	diff := h2 - h1
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	return NormalizeHue(h1 + diff*t)
}

// Interpolate blends two colours in HSL space by fraction t in [0, 1].
// Hue follows the shorter arc; saturation and lightness are linear.
func Interpolate(a, b Color, t float64) Color {
	t = clamp(t, 0, 1)
	ha, hb := a.HSL(), b.HSL()

	return FromHSL(
		InterpolateHue(ha.H, hb.H, t),
		ha.S+(hb.S-ha.S)*t,
		ha.L+(hb.L-ha.L)*t,
	)
}

// Rotate returns the colour with its hue rotated by degrees.
func (c Color) Rotate(degrees float64) Color {
	h := c.HSL()
	return FromHSL(h.H+degrees, h.S, h.L)
}
