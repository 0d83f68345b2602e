package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/swatch/internal/security"
)

// HSL is a colour in the HSL colour space.
// H is the hue in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Round returns the HSL triple rounded to whole degrees and percentages,
// with hue 360 wrapped to 0.
func (h HSL) Round() HSL {
	return HSL{
		H: math.Mod(math.Round(h.H), 360),
		S: math.Round(h.S),
		L: math.Round(h.L),
	}
}

// String returns the colour in the format "hsl(h, s%, l%)" using rounded values.
func (h HSL) String() string {
	r := h.Round()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(r.H), int(r.S), int(r.L))
}

// Color converts the HSL value back to RGB.
func (h HSL) Color() Color {
	return FromHSL(h.H, h.S, h.L)
}

// HSL converts the colour to HSL colour space.
func (c Color) HSL() HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{H: NormalizeHue(h * 60), S: s * 100, L: l * 100}
}

// FromHSL converts HSL to RGB. h is the hue in degrees (any value, wrapped
// modulo 360), s and l are percentages clamped to [0, 100]. Each channel is
// rounded to the nearest integer and clamped to [0, 255].
func FromHSL(h, s, l float64) Color {
	h = NormalizeHue(h)
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	if s == 0 {
		v := channel(l)
		return Color{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: channel(hueToRGB(p, q, h+120)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = NormalizeHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// NormalizeHue wraps a hue in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod can return 360 for tiny negative inputs after the addition.
	if h >= 360 {
		h = 0
	}
	return h
}

// channel scales a [0, 1] component to a rounded, clamped 8-bit channel.
func channel(v float64) uint8 {
	return security.SafeUint8(int(math.Round(v * 255)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RoundChannel rounds a channel value to the nearest integer, clamped to [0, 255].
func RoundChannel(v float64) uint8 {
	return security.SafeUint8(int(math.Round(v)))
}
