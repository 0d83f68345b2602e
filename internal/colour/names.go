package colour

import (
	"math"
	"strings"
)

// namedColour is an entry in the fixed colour name table.
type namedColour struct {
	Name  string
	Color Color
}

// colourNames is searched in order; on equal distance the earlier entry wins.
var colourNames = []namedColour{
	{Name: "Black", Color: Color{0, 0, 0}},
	{Name: "White", Color: Color{255, 255, 255}},
	{Name: "Red", Color: Color{255, 0, 0}},
	{Name: "Lime", Color: Color{0, 255, 0}},
	{Name: "Blue", Color: Color{0, 0, 255}},
	{Name: "Yellow", Color: Color{255, 255, 0}},
	{Name: "Cyan", Color: Color{0, 255, 255}},
	{Name: "Magenta", Color: Color{255, 0, 255}},
	{Name: "Silver", Color: Color{192, 192, 192}},
	{Name: "Gray", Color: Color{128, 128, 128}},
	{Name: "Maroon", Color: Color{128, 0, 0}},
	{Name: "Olive", Color: Color{128, 128, 0}},
	{Name: "Green", Color: Color{0, 128, 0}},
	{Name: "Purple", Color: Color{128, 0, 128}},
	{Name: "Teal", Color: Color{0, 128, 128}},
	{Name: "Navy", Color: Color{0, 0, 128}},
	{Name: "Orange", Color: Color{255, 165, 0}},
	{Name: "Pink", Color: Color{255, 192, 203}},
	{Name: "Brown", Color: Color{165, 42, 42}},
	{Name: "Coral", Color: Color{255, 127, 80}},
	{Name: "Gold", Color: Color{255, 215, 0}},
	{Name: "Indigo", Color: Color{75, 0, 130}},
	{Name: "Violet", Color: Color{238, 130, 238}},
	{Name: "Turquoise", Color: Color{64, 224, 208}},
	{Name: "Salmon", Color: Color{250, 128, 114}},
	{Name: "Khaki", Color: Color{240, 230, 140}},
	{Name: "Lavender", Color: Color{230, 230, 250}},
	{Name: "Beige", Color: Color{245, 245, 220}},
	{Name: "Crimson", Color: Color{220, 20, 60}},
	{Name: "Sky Blue", Color: Color{135, 206, 235}},
	{Name: "Slate Gray", Color: Color{112, 128, 144}},
	{Name: "Forest Green", Color: Color{34, 139, 34}},
	{Name: "Chocolate", Color: Color{210, 105, 30}},
	{Name: "Tomato", Color: Color{255, 99, 71}},
	{Name: "Royal Blue", Color: Color{65, 105, 225}},
	{Name: "Charcoal", Color: Color{54, 69, 79}},
}

// Name returns the name of the closest entry in the colour name table.
// Names are advisory only and never take part in colour equality.
func (c Color) Name() string {
	best := ""
	bestDist := math.MaxFloat64
	for _, n := range colourNames {
		if d := Distance(c, n.Color); d < bestDist {
			best = n.Name
			bestDist = d
		}
	}
	return best
}

// LookupName returns the colour for an exact (case-insensitive) table name.
func LookupName(name string) (Color, bool) {
	for _, n := range colourNames {
		if strings.EqualFold(n.Name, strings.TrimSpace(name)) {
			return n.Color, true
		}
	}
	return Color{}, false
}

// Swatch is a colour with its advisory name attached.
type Swatch struct {
	Color
	Name string `json:"name"`
}

// NewSwatch names a colour using the nearest table entry.
func NewSwatch(c Color) Swatch {
	return Swatch{Color: c, Name: c.Name()}
}

// MarshalJSON includes the hex, rgb and hsl forms alongside the name.
func (s Swatch) MarshalJSON() ([]byte, error) {
	return marshalColour(s.Color, s.Name)
}
