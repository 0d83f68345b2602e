package colour

import "encoding/json"

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSL  HSL    `json:"hsl"`
	Name string `json:"name,omitempty"`
}

// RGB holds the channel values for JSON output.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// JSON returns the JSON representation of the colour.
func (c Color) JSON() ColorJSON {
	return ColorJSON{
		Hex: c.Hex(),
		RGB: RGB{R: c.R, G: c.G, B: c.B},
		HSL: c.HSL().Round(),
	}
}

func marshalColour(c Color, name string) ([]byte, error) {
	j := c.JSON()
	j.Name = name
	return json.Marshal(j)
}
