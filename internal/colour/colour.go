// Package colour provides the colour value type and conversions between
// HEX, RGB and HSL, plus the distance and luminance primitives shared by
// the extraction, palette, gradient and contrast packages.
package colour

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// Color is an sRGB colour with 8-bit channels.
// It implements image/color.Color so it can be used with the standard image packages.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common colours.
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
)

// FormatError reports colour text that could not be parsed.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid colour format: %q (expected #RGB, #RRGGBB or rgb(r, g, b))", e.Input)
}

var rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// Parse parses a 3 or 6 digit hex colour (the leading # is optional) or an
// rgb(r, g, b) string. Any other input, including channel values above 255,
// returns a *FormatError.
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)

	if m := rgbPattern.FindStringSubmatch(strings.ToLower(s)); m != nil {
		var ch [3]uint8
		for i := range ch {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return Color{}, &FormatError{Input: text}
			}
			ch[i] = uint8(v)
		}
		return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, &FormatError{Input: text}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &FormatError{Input: text}
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParse is like Parse but panics on invalid input.
// It is intended for package-level tables and tests.
func MustParse(text string) Color {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as an upper-case 6 digit hex string (e.g., "#1A2B3C").
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the colour in the format "rgb(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. The colour is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// FromColor converts any image/color.Color to a Color, dropping alpha.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: nrgba.R, G: nrgba.G, B: nrgba.B}
}

// ParseAll parses every entry of texts, stopping at the first invalid one.
func ParseAll(texts []string) ([]Color, error) {
	colors := make([]Color, 0, len(texts))
	for _, t := range texts {
		c, err := Parse(t)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
